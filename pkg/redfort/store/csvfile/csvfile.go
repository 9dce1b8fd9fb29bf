// Package csvfile serves the corpus straight from its CSV file.
package csvfile

import (
	"context"
	"sort"

	"github.com/corpuslab/redfort/pkg/redfort/corpus"
	"github.com/corpuslab/redfort/pkg/redfort/store"
)

type csvStore struct {
	path string
}

// Open returns a store reading from the CSV at path. The file is parsed on
// each Speeches call; callers load once and keep the result.
func Open(path string) store.Store {
	return &csvStore{path: path}
}

func (s *csvStore) Speeches(ctx context.Context) ([]corpus.Speech, error) {
	c, err := corpus.Load(s.path)
	if err != nil {
		return nil, err
	}
	speeches := append([]corpus.Speech(nil), c.Speeches()...)
	sort.Slice(speeches, func(i, j int) bool { return speeches[i].Year < speeches[j].Year })
	return speeches, nil
}

func (s *csvStore) Close() error { return nil }
