// Package session is the lifecycle root for the per-user state stores. A
// session is constructed once at login, handed by reference to whatever
// needs its stores, and torn down at logout — there are no ambient
// module-level stores.
package session

import (
	"context"
	"sync"

	"quickmart-api/statemachine"
	"quickmart-api/store"
)

// Session bundles one user's cart, order history and profile store together
// with any delivery timelines running on their behalf.
type Session struct {
	UserID string
	Cart   *store.CartStore
	Orders *store.OrderStore
	User   *store.UserStore

	mu        sync.Mutex
	timelines map[string]*store.Timeline
	closed    bool
}

func newSession(userID string) *Session {
	return &Session{
		UserID:    userID,
		Cart:      store.NewCartStore(),
		Orders:    store.NewOrderStore(),
		User:      store.NewUserStore(),
		timelines: make(map[string]*store.Timeline),
	}
}

// Track starts the delivery simulation for an order using the given steps.
// A timeline already running for the same order is stopped first, so each
// order has at most one schedule live at a time. Returns false after the
// session has been closed.
func (s *Session) Track(orderID string, steps []statemachine.TimelineStep) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if prev, ok := s.timelines[orderID]; ok {
		prev.Stop()
	}
	s.timelines[orderID] = store.StartTimeline(context.Background(), s.Orders, orderID, steps)
	return true
}

// StopTracking cancels the timeline for an order as a group — every step
// that has not fired yet is dropped. No-op when nothing is being tracked.
func (s *Session) StopTracking(orderID string) {
	s.mu.Lock()
	t, ok := s.timelines[orderID]
	if ok {
		delete(s.timelines, orderID)
	}
	s.mu.Unlock()
	if ok {
		t.Stop()
	}
}

// Close tears the session down, cancelling every running timeline.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	timelines := s.timelines
	s.timelines = make(map[string]*store.Timeline)
	s.mu.Unlock()

	for _, t := range timelines {
		t.Stop()
	}
}

// Manager owns every live session, keyed by user id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Start creates the session for a user, replacing (and closing) any
// previous one for the same user.
func (m *Manager) Start(userID string) *Session {
	m.mu.Lock()
	prev := m.sessions[userID]
	s := newSession(userID)
	m.sessions[userID] = s
	m.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
	return s
}

// Get returns the live session for a user, if any.
func (m *Manager) Get(userID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return s, ok
}

// End closes and forgets a user's session. No-op for unknown users.
func (m *Manager) End(userID string) {
	m.mu.Lock()
	s := m.sessions[userID]
	delete(m.sessions, userID)
	m.mu.Unlock()

	if s != nil {
		s.Close()
	}
}
