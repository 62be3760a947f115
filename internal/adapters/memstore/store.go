// Package memstore holds the session record in memory only. Used by tests
// and by the "memory" backend, where logins do not outlive the process.
package memstore

import (
	"context"
	"sync"

	"github.com/holidaze/holidaze-go/internal/domain/auth"
	"github.com/holidaze/holidaze-go/internal/ports"
)

// Store is a single-slot, mutex-guarded session store.
type Store struct {
	mu   sync.Mutex
	sess auth.Session
	set  bool
}

// New creates an empty in-memory session store.
func New() *Store {
	return &Store{}
}

func (s *Store) Save(_ context.Context, sess auth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
	s.set = true
	return nil
}

func (s *Store) Load(_ context.Context) (auth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return auth.Session{}, ports.ErrNoSession
	}
	return s.sess, nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = auth.Session{}
	s.set = false
	return nil
}
