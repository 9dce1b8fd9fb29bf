package config

import (
	"fmt"

	"github.com/corpuslab/redfort/pkg/redfort/lexicon"
	"github.com/corpuslab/redfort/pkg/redfort/stoplist"
)

// Loader loads the lexicon resource files and constructs components.
type Loader struct {
	StoplistPath string
	LexiconPath  string
}

// Components holds the loaded lexicon components.
type Components struct {
	Stoplist *stoplist.Set
	Lexicon  *lexicon.Lexicon
}

// Load reads the resource files and returns initialized components. Missing
// paths yield empty components rather than errors, which keeps tests and
// partial tooling simple; the server config validates paths up front.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stoplist = stoplist.New(sl.Terms)
	} else {
		comp.Stoplist = stoplist.New(nil)
	}

	if l.LexiconPath != "" {
		ol, err := LoadOpinionLexicon(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load opinion lexicon: %w", err)
		}
		comp.Lexicon = lexicon.New(ol.Positive, ol.Negative)
	} else {
		comp.Lexicon = lexicon.New(nil, nil)
	}

	return comp, nil
}
