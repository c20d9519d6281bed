// Package session holds the state of each storefront visitor: the cart,
// the current catalog page and the view mode. Sessions share nothing but
// the read-only catalog.
package session // import "github.com/Xunop/e-livraria/internal/session"

import (
	"context"
	"sync"
	"time"

	"github.com/Xunop/e-livraria/internal/cart"
	"github.com/Xunop/e-livraria/internal/log"
	"github.com/Xunop/e-livraria/internal/model"
	"github.com/Xunop/e-livraria/internal/util"
	"go.uber.org/zap"
)

type Session struct {
	ID string

	mu       sync.Mutex
	cart     *cart.Cart
	page     int
	view     model.ViewMode
	lastSeen time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:       id,
		cart:     cart.New(),
		page:     1,
		view:     model.ViewList,
		lastSeen: now,
	}
}

// State is what a handler may read and change during one request.
type State struct {
	Cart *cart.Cart
	Page int
	View model.ViewMode
}

// Do runs fn with exclusive access to the session state and stores back
// the page and view it leaves behind.
func (s *Session) Do(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := &State{Cart: s.cart, Page: s.page, View: s.view}
	fn(st)
	if st.Page < 1 {
		st.Page = 1
	}
	s.page = st.Page
	s.view = st.View
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the session for id, starting a new one when id is unknown
// or expired. created reports whether a new session was started.
func (m *Manager) Get(id string) (s *Session, created bool) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok && (m.ttl <= 0 || s.idleSince(now) < m.ttl) {
		s.touch(now)
		return s, false
	}

	s = newSession(util.GenUUID(), now)
	m.sessions[s.ID] = s
	log.Debug("Session started", zap.String("session_id", s.ID))
	return s, true
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Expire drops the sessions idle for longer than the ttl and returns how
// many were dropped.
func (m *Manager) Expire() int {
	if m.ttl <= 0 {
		return 0
	}
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	expired := 0
	for id, s := range m.sessions {
		if s.idleSince(now) >= m.ttl {
			delete(m.sessions, id)
			expired++
		}
	}
	return expired
}

// Run expires idle sessions periodically until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	if m.ttl <= 0 {
		return
	}
	interval := m.ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Expire(); n > 0 {
				log.Debug("Expired idle sessions", zap.Int("count", n))
			}
		}
	}
}
