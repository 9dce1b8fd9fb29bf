package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/corpuslab/redfort/pkg/redfort"
	"github.com/corpuslab/redfort/pkg/redfort/corpus"
	"github.com/corpuslab/redfort/pkg/redfort/lexicon"
	"github.com/corpuslab/redfort/pkg/redfort/session"
	"github.com/corpuslab/redfort/pkg/redfort/stoplist"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	c := corpus.New([]corpus.Speech{
		{Year: 1947, PM: "Nehru", Party: "INC", Text: "Long years ago we made a tryst with destiny. Freedom and hope."},
		{Year: 1948, PM: "Nehru", Party: "INC", Text: "Freedom brings grief and hope."},
		{Year: 1998, PM: "Vajpayee", Party: "BJP", Text: "India stands strong and proud."},
	})
	engine := redfort.New(redfort.Options{
		Corpus:   c,
		Stoplist: stoplist.New([]string{"a", "and", "the", "we", "with"}),
		Lexicon:  lexicon.New([]string{"freedom", "hope", "proud", "strong"}, []string{"grief"}),
	})

	h := NewHandler(engine, session.NewManager(), log.New(io.Discard, "", 0))
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func createSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var view struct {
		ID string `json:"id"`
	}
	decode(t, resp, &view)
	if view.ID == "" {
		t.Fatal("session id missing")
	}
	return view.ID
}

func TestMeta(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/meta")
	if err != nil {
		t.Fatalf("get meta: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var meta struct {
		YearMin     int      `json:"year_min"`
		YearMax     int      `json:"year_max"`
		PMs         []string `json:"pms"`
		PlotTypes   []string `json:"plot_types"`
		SpeechCount int      `json:"speech_count"`
		MissingNote string   `json:"missing_note"`
		DefaultWord string   `json:"default_word"`
	}
	decode(t, resp, &meta)

	if meta.YearMin != 1947 || meta.YearMax != 1998 {
		t.Errorf("unexpected year bounds: %d-%d", meta.YearMin, meta.YearMax)
	}
	if len(meta.PMs) != 2 {
		t.Errorf("unexpected pms: %v", meta.PMs)
	}
	if len(meta.PlotTypes) != 6 || meta.PlotTypes[0] != "Speech Length" {
		t.Errorf("unexpected plot types: %v", meta.PlotTypes)
	}
	if meta.SpeechCount != 3 {
		t.Errorf("unexpected speech count: %d", meta.SpeechCount)
	}
	if meta.MissingNote != corpus.MissingNote {
		t.Errorf("unexpected missing note: %q", meta.MissingNote)
	}
	if meta.DefaultWord != "freedom" {
		t.Errorf("unexpected default word: %q", meta.DefaultWord)
	}
}

func TestSessionLifecycle(t *testing.T) {
	srv := testServer(t)
	id := createSession(t, srv)

	resp, err := http.Get(srv.URL + "/api/sessions/" + id)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var view struct {
		ID       string `json:"id"`
		Plot     string `json:"plot"`
		MaxWords int    `json:"max_words"`
	}
	decode(t, resp, &view)
	if view.ID != id || view.Plot != "Speech Length" || view.MaxWords != session.DefaultMaxWords {
		t.Errorf("unexpected session view: %+v", view)
	}
}

func TestGetUnknownSession(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/sessions/01UNKNOWN")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestPlotDefault(t *testing.T) {
	srv := testServer(t)
	id := createSession(t, srv)

	resp, err := http.Post(srv.URL+"/api/sessions/"+id+"/plot", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("post plot: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res struct {
		Plot          string `json:"plot"`
		Inclusion     string `json:"inclusion"`
		SpeechLengths []struct {
			Year  int `json:"year"`
			Words int `json:"words"`
		} `json:"speech_lengths"`
	}
	decode(t, resp, &res)

	if res.Plot != "Speech Length" {
		t.Errorf("unexpected plot: %q", res.Plot)
	}
	if res.Inclusion != "3 speeches included." {
		t.Errorf("unexpected inclusion: %q", res.Inclusion)
	}
	if len(res.SpeechLengths) != 3 {
		t.Errorf("expected 3 rows, got %d", len(res.SpeechLengths))
	}
}

func TestPlotUpdatesControls(t *testing.T) {
	srv := testServer(t)
	id := createSession(t, srv)

	body, _ := json.Marshal(map[string]interface{}{
		"plot": "Specific Word Trend",
		"word": "india",
		"selection": map[string]interface{}{
			"from_year": 1947,
			"to_year":   1998,
			"pms":       []string{"Nehru", "Vajpayee"},
			"parties":   []string{"INC", "BJP"},
		},
	})
	resp, err := http.Post(srv.URL+"/api/sessions/"+id+"/plot", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post plot: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res struct {
		Plot      string `json:"plot"`
		WordTrend []struct {
			Year int `json:"year"`
			N    int `json:"n"`
		} `json:"word_trend"`
	}
	decode(t, resp, &res)

	if res.Plot != "Specific Word Trend" {
		t.Errorf("unexpected plot: %q", res.Plot)
	}
	if len(res.WordTrend) != 3 {
		t.Fatalf("expected 3 trend rows, got %d", len(res.WordTrend))
	}
	if res.WordTrend[2].Year != 1998 || res.WordTrend[2].N != 1 {
		t.Errorf("unexpected 1998 row: %+v", res.WordTrend[2])
	}

	// The controls stick on the session.
	getResp, err := http.Get(srv.URL + "/api/sessions/" + id)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	var view struct {
		Plot       string `json:"plot"`
		ChosenWord string `json:"chosen_word"`
	}
	decode(t, getResp, &view)
	if view.Plot != "Specific Word Trend" || view.ChosenWord != "india" {
		t.Errorf("controls not persisted: %+v", view)
	}
}

func TestPlotBadRequests(t *testing.T) {
	srv := testServer(t)
	id := createSession(t, srv)

	tests := []struct {
		name string
		body string
	}{
		{"unknown plot", `{"plot": "Word Cloud"}`},
		{"unknown facet", `{"facet": "decade"}`},
		{"malformed json", `{"plot": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/sessions/"+id+"/plot", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("post plot: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestPlotEmptySelection(t *testing.T) {
	srv := testServer(t)
	id := createSession(t, srv)

	body := `{"selection": {"from_year": 1947, "to_year": 1998, "pms": [], "parties": []}}`
	resp, err := http.Post(srv.URL+"/api/sessions/"+id+"/plot", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post plot: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res struct {
		Empty     bool   `json:"empty"`
		Inclusion string `json:"inclusion"`
	}
	decode(t, resp, &res)
	if !res.Empty {
		t.Error("expected empty result")
	}
	if res.Inclusion != "0 of 3 speeches included." {
		t.Errorf("unexpected inclusion: %q", res.Inclusion)
	}
}

func TestResetSession(t *testing.T) {
	srv := testServer(t)
	id := createSession(t, srv)

	body := `{"plot": "Net Sentiment", "max_words": 3}`
	resp, err := http.Post(srv.URL+"/api/sessions/"+id+"/plot", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post plot: %v", err)
	}
	resp.Body.Close()

	resetResp, err := http.Post(srv.URL+"/api/sessions/"+id+"/reset", "application/json", nil)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if resetResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resetResp.StatusCode)
	}

	var view struct {
		Plot     string `json:"plot"`
		MaxWords int    `json:"max_words"`
	}
	decode(t, resetResp, &view)
	if view.Plot != "Speech Length" || view.MaxWords != session.DefaultMaxWords {
		t.Errorf("reset incomplete: %+v", view)
	}
}
