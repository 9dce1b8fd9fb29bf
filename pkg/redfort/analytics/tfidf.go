package analytics

import (
	"math"
	"sort"
	"unicode/utf8"

	"gonum.org/v1/gonum/floats"

	"github.com/corpuslab/redfort/pkg/redfort/ingest"
)

// minTermRunes excludes single-character words from the TF-IDF vocabulary.
// Such words still appear in the joined output, with score 0.
const minTermRunes = 2

// TFIDFEntry is one word's frequency in one speech together with its
// importance score relative to the per-year documents.
type TFIDFEntry struct {
	Year  int     `json:"year"`
	PM    string  `json:"pm"`
	Party string  `json:"party"`
	Word  string  `json:"word"`
	N     int     `json:"n"`
	Score float64 `json:"tf_idf"`
}

// TFIDF scores word importance per year. All tokens of a year form one
// pseudo-document; the score is raw term frequency times a smoothed inverse
// document frequency, L2-normalized within each year's document:
//
//	idf(w) = ln((1 + docs) / (1 + df(w))) + 1
//
// Scores are joined back onto per-(year, pm, party, word) counts; words
// outside the vocabulary keep score 0 rather than being dropped. The result
// is sorted by score descending. A single-year input is fine: every word's
// idf collapses to 1 and normalization still applies.
func TFIDF(tokens []ingest.Token) []TFIDFEntry {
	if len(tokens) == 0 {
		return []TFIDFEntry{}
	}

	type cell struct {
		group group
		word  string
	}
	counts := make(map[cell]int)
	docs := make(map[int]map[string]int)
	for _, tok := range tokens {
		counts[cell{group: groupOf(tok.Year, tok.PM, tok.Party), word: tok.Word}]++
		if utf8.RuneCountInString(tok.Word) < minTermRunes {
			continue
		}
		if docs[tok.Year] == nil {
			docs[tok.Year] = make(map[string]int)
		}
		docs[tok.Year][tok.Word]++
	}

	df := make(map[string]int)
	for _, doc := range docs {
		for w := range doc {
			df[w]++
		}
	}
	totalDocs := float64(len(docs))

	// Score one document per year, L2-normalized across its vocabulary.
	scores := make(map[int]map[string]float64, len(docs))
	for year, doc := range docs {
		words := make([]string, 0, len(doc))
		for w := range doc {
			words = append(words, w)
		}
		sort.Strings(words)

		vals := make([]float64, len(words))
		for i, w := range words {
			idf := math.Log((1+totalDocs)/(1+float64(df[w]))) + 1
			vals[i] = float64(doc[w]) * idf
		}
		if norm := floats.Norm(vals, 2); norm > 0 {
			floats.Scale(1/norm, vals)
		}

		scores[year] = make(map[string]float64, len(words))
		for i, w := range words {
			scores[year][w] = vals[i]
		}
	}

	out := make([]TFIDFEntry, 0, len(counts))
	for c, n := range counts {
		out = append(out, TFIDFEntry{
			Year:  c.group.Year,
			PM:    c.group.PM,
			Party: c.group.Party,
			Word:  c.word,
			N:     n,
			Score: scores[c.group.Year][c.word],
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// TopPerYear keeps the maxWords highest-scoring entries of each year,
// preserving the overall score ordering. This is what the importance plot
// facets on.
func TopPerYear(entries []TFIDFEntry, maxWords int) []TFIDFEntry {
	if maxWords <= 0 {
		return entries
	}
	kept := []TFIDFEntry{}
	perYear := make(map[int]int)
	for _, e := range entries {
		if perYear[e.Year] >= maxWords {
			continue
		}
		perYear[e.Year]++
		kept = append(kept, e)
	}
	return kept
}
