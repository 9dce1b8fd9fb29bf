// Package ingest turns filtered speeches into token rows for the analysis
// pipeline.
package ingest

import (
	"strings"
	"unicode"

	"github.com/corpuslab/redfort/pkg/redfort/corpus"
)

// Token is one word occurrence, carrying the grouping keys of the speech it
// came from. Downstream stages rely on the keys, never on token order.
type Token struct {
	Year  int    `json:"year"`
	PM    string `json:"pm"`
	Party string `json:"party"`
	Word  string `json:"word"`
}

// Tokenizer splits speech text into lowercase word tokens.
type Tokenizer struct{}

// NewTokenizer creates a tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Words splits text into lowercase tokens. A token is a maximal run of
// letters, digits, and underscores; punctuation and whitespace separate
// tokens and are discarded. Empty text yields no tokens.
func (t *Tokenizer) Words(text string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return words
}

// Tokenize explodes each filtered speech into one Token per word. Speeches
// with no text contribute nothing, and an empty input produces an empty
// (non-nil) result so downstream stages see zero rows rather than failing.
func (t *Tokenizer) Tokenize(entries []corpus.Entry) []Token {
	tokens := []Token{}
	for _, e := range entries {
		if e.Text == "" {
			continue
		}
		for _, w := range t.Words(e.Text) {
			tokens = append(tokens, Token{
				Year:  e.Year,
				PM:    e.PM,
				Party: e.Party,
				Word:  w,
			})
		}
	}
	return tokens
}
