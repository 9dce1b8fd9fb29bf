// Package redfort is the analytics engine behind the speech dashboard. It
// owns the read-only corpus, stoplist, and opinion lexicon loaded at process
// start, and turns one session's control state into the derived table for
// the selected plot.
package redfort

import (
	"fmt"

	"github.com/corpuslab/redfort/pkg/redfort/analytics"
	"github.com/corpuslab/redfort/pkg/redfort/corpus"
	"github.com/corpuslab/redfort/pkg/redfort/ingest"
	"github.com/corpuslab/redfort/pkg/redfort/internalerr"
	"github.com/corpuslab/redfort/pkg/redfort/lexicon"
	"github.com/corpuslab/redfort/pkg/redfort/session"
	"github.com/corpuslab/redfort/pkg/redfort/stoplist"
)

// Engine runs the analysis pipelines over immutable shared inputs. It holds
// no per-request state, so one Engine serves any number of sessions.
type Engine struct {
	corpus *corpus.Corpus
	stops  *stoplist.Set
	lex    *lexicon.Lexicon
	tok    *ingest.Tokenizer
}

// Options configures an Engine.
type Options struct {
	Corpus   *corpus.Corpus
	Stoplist *stoplist.Set
	Lexicon  *lexicon.Lexicon
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	return &Engine{
		corpus: opts.Corpus,
		stops:  opts.Stoplist,
		lex:    opts.Lexicon,
		tok:    ingest.NewTokenizer(),
	}
}

// Corpus returns the engine's corpus.
func (e *Engine) Corpus() *corpus.Corpus {
	return e.corpus
}

// Result is the output of one render: the derived table for the session's
// plot type plus the user-facing strings around it. Exactly one table field
// is populated, matching Plot.
type Result struct {
	Plot        session.PlotType `json:"-"`
	PlotName    string           `json:"plot"`
	Inclusion   string           `json:"inclusion"`
	MissingNote string           `json:"missing_note"`
	Explanation string           `json:"explanation"`

	// Empty means the selection had no prime ministers or no parties, so
	// no pipeline ran. The consumer should prompt for a selection.
	Empty bool `json:"empty"`

	SpeechLengths  []analytics.SpeechLength       `json:"speech_lengths,omitempty"`
	FrequentWords  []analytics.WordCount          `json:"frequent_words,omitempty"`
	TFIDF          []analytics.TFIDFEntry         `json:"tf_idf,omitempty"`
	SentimentWords []analytics.SentimentWordCount `json:"sentiment_words,omitempty"`
	NetSentiment   []analytics.NetSentiment       `json:"net_sentiment,omitempty"`
	WordTrend      []analytics.TrendPoint         `json:"word_trend,omitempty"`
}

// Render runs the pipeline path for the session's plot type over its
// filtered selection. An empty selection short-circuits before any analysis
// stage; a selection matching zero speeches still runs the pipeline, which
// tolerates zero rows end to end.
func (e *Engine) Render(s *session.Session) (Result, error) {
	s.Normalize(e.corpus)

	res := Result{
		Plot:        s.Plot,
		PlotName:    s.Plot.String(),
		MissingNote: corpus.MissingNote,
		Explanation: s.Plot.Explanation(),
	}

	if s.Selection.Empty() {
		res.Empty = true
		res.Inclusion = e.corpus.InclusionNote(0)
		return res, nil
	}

	entries := e.corpus.Filter(s.Selection)
	res.Inclusion = e.corpus.InclusionNote(len(entries))

	tokens := e.tok.Tokenize(entries)

	switch s.Plot {
	case session.PlotSpeechLength:
		res.SpeechLengths = analytics.SpeechLengths(tokens)

	case session.PlotFrequentWords:
		nonstop := e.stops.Filter(tokens)
		res.FrequentWords = analytics.FrequentWords(nonstop, s.Facet, s.MaxWords)

	case session.PlotImportantWords:
		// TF-IDF runs over raw tokens, stopwords included. The scores of
		// stopwords are dominated by their uniform spread across years, so
		// they rank low on their own.
		res.TFIDF = analytics.TopPerYear(analytics.TFIDF(tokens), s.MaxWords)

	case session.PlotSentimentWords:
		labeled := e.lex.Label(e.stops.Filter(tokens))
		res.SentimentWords = analytics.SentimentWords(labeled, s.Facet, s.MaxWords)

	case session.PlotNetSentiment:
		labeled := e.lex.Label(e.stops.Filter(tokens))
		res.NetSentiment = analytics.NetSentiments(labeled)

	case session.PlotWordTrend:
		res.WordTrend = analytics.WordTrend(tokens, s.ChosenWord)

	default:
		return Result{}, fmt.Errorf("%w: plot type %d", internalerr.ErrInvalidInput, int(s.Plot))
	}

	return res, nil
}
