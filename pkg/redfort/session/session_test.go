package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/corpuslab/redfort/pkg/redfort/analytics"
	"github.com/corpuslab/redfort/pkg/redfort/corpus"
	"github.com/corpuslab/redfort/pkg/redfort/internalerr"
)

func testCorpus() *corpus.Corpus {
	return corpus.New([]corpus.Speech{
		{Year: 1947, PM: "Nehru", Party: "INC", Text: "tryst with destiny"},
		{Year: 1998, PM: "Vajpayee", Party: "BJP", Text: "india stands strong"},
	})
}

func TestNewDefaults(t *testing.T) {
	c := testCorpus()
	s := New(c)

	if s.ID == "" {
		t.Error("expected a generated id")
	}
	if s.Selection.FromYear != 1947 || s.Selection.ToYear != 1998 {
		t.Errorf("unexpected year range: %+v", s.Selection)
	}
	if len(s.Selection.PMs) != 2 || len(s.Selection.Parties) != 2 {
		t.Errorf("expected every pm and party selected: %+v", s.Selection)
	}
	if s.Plot != PlotSpeechLength {
		t.Errorf("expected speech-length default, got %v", s.Plot)
	}
	if s.MaxWords != DefaultMaxWords {
		t.Errorf("expected max words %d, got %d", DefaultMaxWords, s.MaxWords)
	}
	if s.Facet != analytics.FacetNone {
		t.Errorf("expected no facet, got %v", s.Facet)
	}
	if s.ChosenWord != DefaultWord {
		t.Errorf("expected chosen word %q, got %q", DefaultWord, s.ChosenWord)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	c := testCorpus()
	s := New(c)

	s.Selection.PMs = []string{"Nehru"}
	s.Plot = PlotNetSentiment
	s.MaxWords = 3
	s.ChosenWord = "india"

	s.Reset(c)
	if len(s.Selection.PMs) != 2 || s.Plot != PlotSpeechLength || s.MaxWords != DefaultMaxWords || s.ChosenWord != DefaultWord {
		t.Errorf("reset incomplete: %+v", s)
	}
}

func TestNormalize(t *testing.T) {
	c := testCorpus()
	s := New(c)

	s.Selection.FromYear = 1900
	s.Selection.ToYear = 2100
	s.MaxWords = 0
	s.Normalize(c)

	if s.Selection.FromYear != 1947 || s.Selection.ToYear != 1998 {
		t.Errorf("year range not clamped: %+v", s.Selection)
	}
	if s.MaxWords != DefaultMaxWords {
		t.Errorf("max words not repaired, got %d", s.MaxWords)
	}
}

func TestManager(t *testing.T) {
	c := testCorpus()
	m := NewManager()

	a := m.Create(c)
	b := m.Create(c)
	if a.ID == b.ID {
		t.Fatal("sessions must have distinct ids")
	}
	if m.Len() != 2 {
		t.Errorf("expected 2 live sessions, got %d", m.Len())
	}

	got, err := m.Get(a.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != a {
		t.Error("Get returned a different session")
	}

	m.Delete(a.ID)
	if _, err := m.Get(a.ID); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	m.Delete(a.ID) // second delete is a no-op
	if m.Len() != 1 {
		t.Errorf("expected 1 session left, got %d", m.Len())
	}
}

func TestPlotTypeNames(t *testing.T) {
	want := []string{
		"Speech Length",
		"Most Frequent Words",
		"Most Important Words",
		"+/- Sentiment Words",
		"Net Sentiment",
		"Specific Word Trend",
	}
	types := PlotTypes()
	if len(types) != len(want) {
		t.Fatalf("expected %d plot types, got %d", len(want), len(types))
	}
	for i, p := range types {
		if p.String() != want[i] {
			t.Errorf("plot %d = %q, want %q", i, p.String(), want[i])
		}
		if p.Explanation() == "" {
			t.Errorf("plot %q has no explanation", p)
		}
	}
}

func TestParsePlotType(t *testing.T) {
	for _, p := range PlotTypes() {
		got, err := ParsePlotType(p.String())
		if err != nil {
			t.Errorf("ParsePlotType(%q): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("round trip failed for %q: got %v", p.String(), got)
		}
	}

	if _, err := ParsePlotType("net sentiment"); err != nil {
		t.Errorf("parse should be case-insensitive: %v", err)
	}

	if _, err := ParsePlotType("Word Cloud"); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for unknown name, got %v", err)
	}
}

func TestExplanationMentionsLexicon(t *testing.T) {
	// The two sentiment plots share the lexicon-based description.
	for _, p := range []PlotType{PlotSentimentWords, PlotNetSentiment} {
		if got := p.Explanation(); !strings.Contains(got, "opinion lexicon") {
			t.Errorf("%q explanation should mention the opinion lexicon: %q", p, got)
		}
	}
}
