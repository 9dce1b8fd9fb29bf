// Package session holds per-session dashboard state: the corpus selection,
// the active plot type, and the plot-specific controls. Sessions are scoped
// per user so concurrent sessions never share mutable state; the corpus and
// lexicons stay read-only behind them.
package session

import (
	"crypto/rand"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/corpuslab/redfort/pkg/redfort/analytics"
	"github.com/corpuslab/redfort/pkg/redfort/corpus"
	"github.com/corpuslab/redfort/pkg/redfort/internalerr"
)

// Default control values.
const (
	DefaultMaxWords = 12
	DefaultWord     = "freedom"
)

// Session is one user's control state.
type Session struct {
	ID         string           `json:"id"`
	Selection  corpus.Selection `json:"selection"`
	Plot       PlotType         `json:"-"`
	MaxWords   int              `json:"max_words"`
	Facet      analytics.Facet  `json:"-"`
	ChosenWord string           `json:"chosen_word"`
}

// New creates a session with the default controls for the given corpus:
// the full year range, every prime minister and party, the speech-length
// plot, and the stock word-trend target.
func New(c *corpus.Corpus) *Session {
	s := &Session{ID: newID()}
	s.Reset(c)
	return s
}

// Reset restores every control to its corpus-derived default.
func (s *Session) Reset(c *corpus.Corpus) {
	min, max := c.YearBounds()
	s.Selection = corpus.Selection{
		FromYear: min,
		ToYear:   max,
		PMs:      c.PMs(),
		Parties:  c.Parties(),
	}
	s.Plot = PlotSpeechLength
	s.MaxWords = DefaultMaxWords
	s.Facet = analytics.FacetNone
	s.ChosenWord = DefaultWord
}

// Normalize repairs out-of-range controls instead of rejecting them: the
// year range is clamped to the corpus bounds and the word cap floored at 1.
func (s *Session) Normalize(c *corpus.Corpus) {
	s.Selection.Clamp(c)
	if s.MaxWords < 1 {
		s.MaxWords = DefaultMaxWords
	}
}

// Manager tracks live sessions by id. It is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	entropy  *ulid.MonotonicEntropy
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{
		entropy:  ulid.Monotonic(rand.Reader, 0),
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session with defaults drawn from the corpus.
func (m *Manager) Create(c *corpus.Corpus) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &Session{ID: ulid.MustNew(ulid.Now(), m.entropy).String()}
	s.Reset(c)
	m.sessions[s.ID] = s
	return s
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, internalerr.ErrNotFound
	}
	return s, nil
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

var (
	idMu      sync.Mutex
	idEntropy = ulid.Monotonic(rand.Reader, 0)
)

func newID() string {
	idMu.Lock()
	defer idMu.Unlock()
	return ulid.MustNew(ulid.Now(), idEntropy).String()
}
