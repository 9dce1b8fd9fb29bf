package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrBadSchema     = errors.New("corpus schema mismatch")
	ErrInvalidConfig = errors.New("invalid configuration")
)
