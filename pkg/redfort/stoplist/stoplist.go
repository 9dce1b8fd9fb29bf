// Package stoplist holds the fixed English stopword list and removes
// stopword tokens from the pipeline.
package stoplist

import (
	"sort"
	"strings"

	"github.com/corpuslab/redfort/pkg/redfort/ingest"
)

// Set is an immutable stopword membership set. Words are stored lowercase;
// the tokenizer has already normalized case, so lookups are exact.
type Set struct {
	stops map[string]struct{}
}

// New creates a stopword set from a term list.
func New(terms []string) *Set {
	stops := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		stops[t] = struct{}{}
	}
	return &Set{stops: stops}
}

// IsStop checks if a word is a stopword.
func (s *Set) IsStop(word string) bool {
	_, ok := s.stops[word]
	return ok
}

// Len returns the number of stopwords.
func (s *Set) Len() int {
	return len(s.stops)
}

// All returns all stopwords, sorted.
func (s *Set) All() []string {
	out := make([]string, 0, len(s.stops))
	for w := range s.stops {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Filter returns the tokens whose word is not in the set. Kept rows are
// passed through unchanged, so the result is a strict subset of the input.
func (s *Set) Filter(tokens []ingest.Token) []ingest.Token {
	kept := []ingest.Token{}
	for _, tok := range tokens {
		if s.IsStop(tok.Word) {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}
