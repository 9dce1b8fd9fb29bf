// Package analytics computes the derived tables behind each plot: speech
// lengths, word frequencies, TF-IDF importance, sentiment counts, and
// single-word trends.
//
// Every function is a pure transformation over token rows. Zero-row input
// yields zero-row output; nothing here errors on an empty selection.
package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/corpuslab/redfort/pkg/redfort/corpus"
	"github.com/corpuslab/redfort/pkg/redfort/ingest"
	"github.com/corpuslab/redfort/pkg/redfort/internalerr"
	"github.com/corpuslab/redfort/pkg/redfort/lexicon"
)

// Facet is the secondary grouping dimension for the frequency and sentiment
// word plots.
type Facet int

const (
	FacetNone Facet = iota
	FacetYear
	FacetPM
	FacetParty
)

var facetNames = map[Facet]string{
	FacetNone:  "none",
	FacetYear:  "year",
	FacetPM:    "pm",
	FacetParty: "party",
}

func (f Facet) String() string {
	if name, ok := facetNames[f]; ok {
		return name
	}
	return "none"
}

// ParseFacet maps a facet name to its variant.
func ParseFacet(name string) (Facet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return FacetNone, nil
	case "year":
		return FacetYear, nil
	case "pm":
		return FacetPM, nil
	case "party":
		return FacetParty, nil
	}
	return FacetNone, fmt.Errorf("%w: unknown facet %q", internalerr.ErrInvalidInput, name)
}

// keyOf returns the facet value of a token, or "" for FacetNone.
func (f Facet) keyOf(tok ingest.Token) string {
	switch f {
	case FacetYear:
		return strconv.Itoa(tok.Year)
	case FacetPM:
		return tok.PM
	case FacetParty:
		return tok.Party
	}
	return ""
}

// group is the (year, pm, party) key every aggregation preserves.
type group struct {
	Year  int
	PM    string
	Party string
}

func groupOf(year int, pm, party string) group {
	return group{Year: year, PM: pm, Party: party}
}

func sortedGroups(m map[group]int) []group {
	groups := make([]group, 0, len(m))
	for g := range m {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Year != groups[j].Year {
			return groups[i].Year < groups[j].Year
		}
		if groups[i].PM != groups[j].PM {
			return groups[i].PM < groups[j].PM
		}
		return groups[i].Party < groups[j].Party
	})
	return groups
}

// SpeechLength is the word count of one speech.
type SpeechLength struct {
	Year  int    `json:"year"`
	PM    string `json:"pm"`
	Party string `json:"party"`
	Words int    `json:"words"`
}

// SpeechLengths counts tokens per speech, sorted by year.
func SpeechLengths(tokens []ingest.Token) []SpeechLength {
	counts := make(map[group]int)
	for _, tok := range tokens {
		counts[groupOf(tok.Year, tok.PM, tok.Party)]++
	}

	out := []SpeechLength{}
	for _, g := range sortedGroups(counts) {
		out = append(out, SpeechLength{Year: g.Year, PM: g.PM, Party: g.Party, Words: counts[g]})
	}
	return out
}

// WordCount is one word's frequency, optionally within a facet value.
type WordCount struct {
	Facet string `json:"facet,omitempty"`
	Word  string `json:"word"`
	N     int    `json:"n"`
}

// FrequentWords returns the maxWords most frequent words, overall or per
// facet value. Within a facet value rows are ordered by descending count;
// facet values themselves are ordered ascending.
func FrequentWords(tokens []ingest.Token, facet Facet, maxWords int) []WordCount {
	type cell struct {
		facet string
		word  string
	}
	counts := make(map[cell]int)
	for _, tok := range tokens {
		counts[cell{facet: facet.keyOf(tok), word: tok.Word}]++
	}

	byFacet := make(map[string][]WordCount)
	for c, n := range counts {
		byFacet[c.facet] = append(byFacet[c.facet], WordCount{Facet: c.facet, Word: c.word, N: n})
	}

	facets := make([]string, 0, len(byFacet))
	for f := range byFacet {
		facets = append(facets, f)
	}
	sort.Strings(facets)

	out := []WordCount{}
	for _, f := range facets {
		rows := byFacet[f]
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].N != rows[j].N {
				return rows[i].N > rows[j].N
			}
			return rows[i].Word < rows[j].Word
		})
		if maxWords > 0 && len(rows) > maxWords {
			rows = rows[:maxWords]
		}
		out = append(out, rows...)
	}
	return out
}

// SentimentWordCount is one lexicon word's frequency with its polarity.
type SentimentWordCount struct {
	Facet    string           `json:"facet,omitempty"`
	Word     string           `json:"word"`
	Polarity lexicon.Polarity `json:"sentiment"`
	N        int              `json:"n"`
}

// SentimentWords returns the maxWords most frequent sentiment-labeled words,
// overall or per facet value.
func SentimentWords(labeled []lexicon.SentimentToken, facet Facet, maxWords int) []SentimentWordCount {
	type cell struct {
		facet    string
		word     string
		polarity lexicon.Polarity
	}
	counts := make(map[cell]int)
	for _, tok := range labeled {
		counts[cell{facet: facet.keyOf(tok.Token), word: tok.Word, polarity: tok.Polarity}]++
	}

	byFacet := make(map[string][]SentimentWordCount)
	for c, n := range counts {
		byFacet[c.facet] = append(byFacet[c.facet], SentimentWordCount{
			Facet:    c.facet,
			Word:     c.word,
			Polarity: c.polarity,
			N:        n,
		})
	}

	facets := make([]string, 0, len(byFacet))
	for f := range byFacet {
		facets = append(facets, f)
	}
	sort.Strings(facets)

	out := []SentimentWordCount{}
	for _, f := range facets {
		rows := byFacet[f]
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].N != rows[j].N {
				return rows[i].N > rows[j].N
			}
			return rows[i].Word < rows[j].Word
		})
		if maxWords > 0 && len(rows) > maxWords {
			rows = rows[:maxWords]
		}
		out = append(out, rows...)
	}
	return out
}

// NetSentiment is the positive/negative balance of one speech.
type NetSentiment struct {
	Year     int    `json:"year"`
	PM       string `json:"pm"`
	Party    string `json:"party"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Net      int    `json:"net"`
}

// NetSentiments counts positive and negative tokens per speech. A group with
// only one polarity gets 0 for the other.
func NetSentiments(labeled []lexicon.SentimentToken) []NetSentiment {
	pos := make(map[group]int)
	neg := make(map[group]int)
	all := make(map[group]int)
	for _, tok := range labeled {
		g := groupOf(tok.Year, tok.PM, tok.Party)
		all[g]++
		if tok.Polarity == lexicon.Positive {
			pos[g]++
		} else {
			neg[g]++
		}
	}

	out := []NetSentiment{}
	for _, g := range sortedGroups(all) {
		out = append(out, NetSentiment{
			Year:     g.Year,
			PM:       g.PM,
			Party:    g.Party,
			Positive: pos[g],
			Negative: neg[g],
			Net:      pos[g] - neg[g],
		})
	}
	return out
}

// TrendPoint is one speech's count of the tracked word.
type TrendPoint struct {
	Year  int    `json:"year"`
	PM    string `json:"pm"`
	Party string `json:"party"`
	N     int    `json:"n"`
}

// WordTrend counts occurrences of word per speech, case-insensitive on the
// search term and exact-match on tokens. Every (year, pm, party) group in
// the input gets a row, zero-filled when the word never occurs, so trend
// charts keep continuous year coverage. The years with no data at all are
// excluded rather than zero-filled. Output is sorted ascending by year.
func WordTrend(tokens []ingest.Token, word string) []TrendPoint {
	target := strings.ToLower(strings.TrimSpace(word))

	counts := make(map[group]int)
	for _, tok := range tokens {
		if corpus.MissingYears[tok.Year] {
			continue
		}
		g := groupOf(tok.Year, tok.PM, tok.Party)
		if _, ok := counts[g]; !ok {
			counts[g] = 0
		}
		if tok.Word == target {
			counts[g]++
		}
	}

	out := []TrendPoint{}
	for _, g := range sortedGroups(counts) {
		out = append(out, TrendPoint{Year: g.Year, PM: g.PM, Party: g.Party, N: counts[g]})
	}
	return out
}
