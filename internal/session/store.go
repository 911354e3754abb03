// Package session owns the process-wide user-to-session mapping. It is the
// only shared mutable state of the bot: every inbound event runs through
// Store.Update, which holds a per-user lock for the whole load-decide-mutate
// sequence so that two rapid events from one user cannot interleave, while
// unrelated users proceed in parallel.
package session

import (
	"sync"

	"github.com/evilgrin/evilgringpt/internal/domain"
)

type entry struct {
	mu      sync.Mutex
	session *domain.Session
}

type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry
}

func NewStore() *Store {
	return &Store{
		entries: make(map[int64]*entry),
	}
}

// lookup returns the entry for userID, creating an idle session on first
// contact. The store lock only guards the map; it is released before the
// per-user lock is taken.
func (s *Store) lookup(userID int64) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if !ok {
		e = &entry{session: domain.NewSession(userID)}
		s.entries[userID] = e
	}
	return e
}

// Update runs fn with exclusive access to the user's session. Calls for the
// same user serialize in arrival order; calls for different users do not
// block each other. fn may block on network I/O.
func (s *Store) Update(userID int64, fn func(*domain.Session)) {
	e := s.lookup(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
}

// GetOrCreate returns a copy of the user's session, creating it on first
// contact.
func (s *Store) GetOrCreate(userID int64) domain.Session {
	e := s.lookup(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone()
}

// Reset returns the user's session to its initial idle state and returns a
// copy of the result.
func (s *Store) Reset(userID int64) domain.Session {
	e := s.lookup(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.Reset()
	return e.session.Clone()
}
