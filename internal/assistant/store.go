package assistant

import (
	"container/list"
	"sync"
)

const defaultMaxSessions = 1000

// Store keeps conversations by id. When full, the least recently used session is evicted.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*list.Element
	order    *list.List // front is most recently used; values are *Session
	max      int
}

// NewStore creates a Store holding at most max sessions (a default when max <= 0).
func NewStore(max int) *Store {
	if max <= 0 {
		max = defaultMaxSessions
	}
	return &Store{
		sessions: make(map[string]*list.Element),
		order:    list.New(),
		max:      max,
	}
}

// Get returns the session for id, creating it when id is empty or unknown. The
// boolean reports whether a new session was created.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if el, ok := s.sessions[id]; ok {
			s.order.MoveToFront(el)
			return el.Value.(*Session), false
		}
	}

	session := NewSession()
	if id != "" {
		session = NewSessionWithID(id)
	}
	if s.order.Len() >= s.max {
		s.evictOldest()
	}
	s.sessions[session.ID] = s.order.PushFront(session)
	return session, true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// Reset drops every session and returns how many were cleared.
func (s *Store) Reset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.order.Len()
	s.sessions = make(map[string]*list.Element)
	s.order.Init()
	return n
}

// caller holds s.mu.
func (s *Store) evictOldest() {
	el := s.order.Back()
	if el == nil {
		return
	}
	s.order.Remove(el)
	delete(s.sessions, el.Value.(*Session).ID)
}
