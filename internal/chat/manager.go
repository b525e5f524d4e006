package chat

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dishalabs/disha-backend/internal/model"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("chat session not found")

// Manager owns the live sessions of this process. Sessions from different
// users are fully independent; they share nothing but the generator.
type Manager struct {
	gen         Generator
	maxHistory  int
	turnTimeout time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// Option tweaks manager defaults.
type Option func(*Manager)

// WithMaxHistory sets how many recent messages each session keeps in an
// outbound request.
func WithMaxHistory(n int) Option {
	return func(m *Manager) {
		if n > 1 {
			m.maxHistory = n
		}
	}
}

// WithTurnTimeout bounds each generation call.
func WithTurnTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.turnTimeout = d
		}
	}
}

func NewManager(gen Generator, opts ...Option) *Manager {
	m := &Manager{
		gen:         gen,
		maxHistory:  DefaultMaxHistory,
		turnTimeout: DefaultTurnTimeout,
		sessions:    make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a new session bound to the given user context.
func (m *Manager) Create(userCtx model.UserContext) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		userCtx:     userCtx,
		gen:         m.gen,
		maxHistory:  m.maxHistory,
		turnTimeout: m.turnTimeout,
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get looks a session up by id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close drops a session and frees its history.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
