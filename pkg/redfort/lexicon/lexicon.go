// Package lexicon labels tokens with sentiment polarity using a fixed
// opinion lexicon of positive and negative words.
package lexicon

import (
	"strings"

	"github.com/corpuslab/redfort/pkg/redfort/ingest"
)

// Polarity is the sentiment class of a lexicon word.
type Polarity string

const (
	Positive Polarity = "positive"
	Negative Polarity = "negative"
)

// SentimentToken is a token that appears in the opinion lexicon.
type SentimentToken struct {
	ingest.Token
	Polarity Polarity `json:"sentiment"`
}

// Lexicon holds the positive and negative word sets. The two lists are
// expected to be disjoint; a word present in both is labeled positive.
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// New creates a lexicon from positive and negative word lists. Words are
// lowercased so membership tests line up with tokenizer output.
func New(positive, negative []string) *Lexicon {
	return &Lexicon{
		positive: toSet(positive),
		negative: toSet(negative),
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// PositiveCount returns the number of positive lexicon words.
func (l *Lexicon) PositiveCount() int { return len(l.positive) }

// NegativeCount returns the number of negative lexicon words.
func (l *Lexicon) NegativeCount() int { return len(l.negative) }

// PolarityOf returns the polarity of a word and whether the word is in the
// lexicon at all. The positive list is checked first.
func (l *Lexicon) PolarityOf(word string) (Polarity, bool) {
	if _, ok := l.positive[word]; ok {
		return Positive, true
	}
	if _, ok := l.negative[word]; ok {
		return Negative, true
	}
	return "", false
}

// Label keeps only tokens present in the lexicon and attaches their
// polarity. Tokens in neither list are dropped.
func (l *Lexicon) Label(tokens []ingest.Token) []SentimentToken {
	labeled := []SentimentToken{}
	for _, tok := range tokens {
		pol, ok := l.PolarityOf(tok.Word)
		if !ok {
			continue
		}
		labeled = append(labeled, SentimentToken{Token: tok, Polarity: pol})
	}
	return labeled
}
