// Package store abstracts where the speech corpus comes from. The corpus is
// read in full once at startup; stores only ever serve complete snapshots.
package store

import (
	"context"

	"github.com/corpuslab/redfort/pkg/redfort/corpus"
)

// Store is a source of the full speech corpus.
type Store interface {
	// Speeches returns every corpus row, ordered by year.
	Speeches(ctx context.Context) ([]corpus.Speech, error)
	Close() error
}
