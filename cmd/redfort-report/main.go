// redfort-report runs the full analysis pipeline over the corpus CSV and
// prints a JSON report: speech lengths, top TF-IDF words per year, net
// sentiment, and the trend of one chosen word.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/corpuslab/redfort/pkg/redfort/analytics"
	"github.com/corpuslab/redfort/pkg/redfort/config"
	"github.com/corpuslab/redfort/pkg/redfort/corpus"
	"github.com/corpuslab/redfort/pkg/redfort/ingest"
	"github.com/corpuslab/redfort/pkg/redfort/session"
)

type report struct {
	Inclusion     string                        `json:"inclusion"`
	SpeechLengths []analytics.SpeechLength      `json:"speech_lengths"`
	TopWords      []analytics.WordCount         `json:"top_words"`
	TFIDF         []analytics.TFIDFEntry        `json:"tf_idf"`
	NetSentiment  []analytics.NetSentiment      `json:"net_sentiment"`
	WordTrend     []analytics.TrendPoint        `json:"word_trend"`
	TrendWord     string                        `json:"trend_word"`
}

func main() {
	var (
		corpusPath = flag.String("corpus", "", "Path to corpus CSV (required)")
		stopCfg    = flag.String("stoplist", "", "Stopword list file (required)")
		lexCfg     = flag.String("lexicon", "", "Opinion lexicon file (required)")
		top        = flag.Int("top", session.DefaultMaxWords, "Words to keep per ranking")
		word       = flag.String("word", session.DefaultWord, "Word to trend")
	)
	flag.Parse()

	if *corpusPath == "" {
		log.Fatal("--corpus required")
	}
	if *stopCfg == "" {
		log.Fatal("--stoplist required")
	}
	if *lexCfg == "" {
		log.Fatal("--lexicon required")
	}

	c, err := corpus.Load(*corpusPath)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	loader := config.Loader{StoplistPath: *stopCfg, LexiconPath: *lexCfg}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load lexicons: %v", err)
	}

	minYear, maxYear := c.YearBounds()
	entries := c.Filter(corpus.Selection{
		FromYear: minYear,
		ToYear:   maxYear,
		PMs:      c.PMs(),
		Parties:  c.Parties(),
	})

	tok := ingest.NewTokenizer()
	tokens := tok.Tokenize(entries)
	nonstop := components.Stoplist.Filter(tokens)
	labeled := components.Lexicon.Label(nonstop)

	out := report{
		Inclusion:     c.InclusionNote(len(entries)),
		SpeechLengths: analytics.SpeechLengths(tokens),
		TopWords:      analytics.FrequentWords(nonstop, analytics.FacetNone, *top),
		TFIDF:         analytics.TopPerYear(analytics.TFIDF(tokens), *top),
		NetSentiment:  analytics.NetSentiments(labeled),
		WordTrend:     analytics.WordTrend(tokens, *word),
		TrendWord:     *word,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}
