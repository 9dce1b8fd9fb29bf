// Package httpapi exposes the dashboard engine over a small JSON API. It is
// the boundary the UI shell talks to: control metadata in, derived tables
// and captions out. Rendering charts from the tables is the shell's job.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/corpuslab/redfort/pkg/redfort"
	"github.com/corpuslab/redfort/pkg/redfort/analytics"
	"github.com/corpuslab/redfort/pkg/redfort/corpus"
	"github.com/corpuslab/redfort/pkg/redfort/internalerr"
	"github.com/corpuslab/redfort/pkg/redfort/session"
)

// Handler holds the HTTP handlers for the dashboard API.
type Handler struct {
	engine   *redfort.Engine
	sessions *session.Manager
	logger   *log.Logger
}

// NewHandler creates a Handler. A nil logger falls back to the default.
func NewHandler(engine *redfort.Engine, sessions *session.Manager, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{engine: engine, sessions: sessions, logger: logger}
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/meta", h.handleMeta)
	mux.HandleFunc("POST /api/sessions", h.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", h.handleGetSession)
	mux.HandleFunc("POST /api/sessions/{id}/reset", h.handleResetSession)
	mux.HandleFunc("POST /api/sessions/{id}/plot", h.handlePlot)
}

// --- Metadata ---

type metaResponse struct {
	YearMin     int      `json:"year_min"`
	YearMax     int      `json:"year_max"`
	PMs         []string `json:"pms"`
	Parties     []string `json:"parties"`
	PlotTypes   []string `json:"plot_types"`
	Facets      []string `json:"facets"`
	SpeechCount int      `json:"speech_count"`
	MissingNote string   `json:"missing_note"`

	DefaultMaxWords int    `json:"default_max_words"`
	DefaultWord     string `json:"default_word"`
}

func (h *Handler) handleMeta(w http.ResponseWriter, r *http.Request) {
	c := h.engine.Corpus()
	min, max := c.YearBounds()

	plots := make([]string, 0, len(session.PlotTypes()))
	for _, p := range session.PlotTypes() {
		plots = append(plots, p.String())
	}

	writeJSON(w, http.StatusOK, metaResponse{
		YearMin:         min,
		YearMax:         max,
		PMs:             c.PMs(),
		Parties:         c.Parties(),
		PlotTypes:       plots,
		Facets:          []string{"none", "year", "pm", "party"},
		SpeechCount:     c.SpeechCount(),
		MissingNote:     corpus.MissingNote,
		DefaultMaxWords: session.DefaultMaxWords,
		DefaultWord:     session.DefaultWord,
	})
}

// --- Sessions ---

type sessionView struct {
	ID         string           `json:"id"`
	Selection  corpus.Selection `json:"selection"`
	Plot       string           `json:"plot"`
	MaxWords   int              `json:"max_words"`
	Facet      string           `json:"facet"`
	ChosenWord string           `json:"chosen_word"`
}

func viewOf(s *session.Session) sessionView {
	return sessionView{
		ID:         s.ID,
		Selection:  s.Selection,
		Plot:       s.Plot.String(),
		MaxWords:   s.MaxWords,
		Facet:      s.Facet.String(),
		ChosenWord: s.ChosenWord,
	}
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create(h.engine.Corpus())
	h.logger.Printf("session %s created", s.ID)
	writeJSON(w, http.StatusCreated, viewOf(s))
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	writeJSON(w, http.StatusOK, viewOf(s))
}

func (h *Handler) handleResetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}
	s.Reset(h.engine.Corpus())
	writeJSON(w, http.StatusOK, viewOf(s))
}

// --- Plot rendering ---

// plotRequest updates a subset of the session controls before rendering.
// Absent fields keep their current values.
type plotRequest struct {
	Selection *corpus.Selection `json:"selection,omitempty"`
	Plot      string            `json:"plot,omitempty"`
	MaxWords  *int              `json:"max_words,omitempty"`
	Facet     *string           `json:"facet,omitempty"`
	Word      *string           `json:"word,omitempty"`
}

func (h *Handler) handlePlot(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown session")
		return
	}

	var req plotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if req.Selection != nil {
		s.Selection = *req.Selection
	}
	if req.Plot != "" {
		plot, err := session.ParsePlotType(req.Plot)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.Plot = plot
	}
	if req.MaxWords != nil {
		s.MaxWords = *req.MaxWords
	}
	if req.Facet != nil {
		facet, err := analytics.ParseFacet(*req.Facet)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.Facet = facet
	}
	if req.Word != nil {
		s.ChosenWord = *req.Word
	}

	res, err := h.engine.Render(s)
	if err != nil {
		if errors.Is(err, internalerr.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Printf("render session %s: %v", s.ID, err)
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}

	writeJSON(w, http.StatusOK, res)
}
