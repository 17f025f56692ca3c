package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager holds the live checkout sessions of this process
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	opts     Options
	idleTTL  time.Duration
	log      *zap.Logger
}

// NewManager creates a manager whose sessions share opts. Sessions idle for
// longer than idleTTL are evicted by Sweep; zero disables eviction.
func NewManager(opts Options, idleTTL time.Duration) *Manager {
	opts = opts.withDefaults()
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		opts:     opts,
		idleTTL:  idleTTL,
		log:      opts.Logger,
	}
}

// Create starts a new session
func (m *Manager) Create() *Session {
	s := NewSession(uuid.New(), m.opts)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	m.log.Info("checkout session created", zap.String("session_id", s.ID().String()))
	return s
}

// Get returns a live session
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete closes and forgets a session
func (m *Manager) Delete(id uuid.UUID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	m.log.Info("checkout session deleted", zap.String("session_id", id.String()))
	return nil
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle since before now-idleTTL. Sessions with a
// payment in flight are kept until it confirms.
func (m *Manager) Sweep(now time.Time) int {
	if m.idleTTL <= 0 {
		return 0
	}
	cutoff := now.Add(-m.idleTTL)

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if !s.idleSince(cutoff) {
			continue
		}
		expired = append(expired, s)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	if len(expired) > 0 {
		m.log.Info("evicted idle checkout sessions", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps idle sessions every interval until ctx is done
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || m.idleTTL <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(m.opts.Now())
		}
	}
}

// Close closes every session and cancels their timers
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
