package conversations

import (
	"sync"

	"github.com/google/uuid"
)

// sessionLocks serializes message appends per session so concurrent sends
// to the same conversation keep a strict append order. Entries live for
// the life of the process; the set of active sessions is small enough
// that reclamation is not worth the bookkeeping.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (s *sessionLocks) acquire(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}
