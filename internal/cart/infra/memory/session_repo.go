package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/cart/app"
	"github.com/dwikikusuma/sweet-layers/internal/cart/domain"
)

type session struct {
	mu      sync.Mutex
	cart    domain.Cart
	touched time.Time
	// gone is set under mu once the session leaves the map.
	gone bool
}

// SessionRepo keeps carts in process memory. Mutations of one session are
// serialized by that session's lock, so they apply in arrival order and a read
// issued after a mutation returns observes it.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*session
	now      func() time.Time
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

func (r *SessionRepo) Create(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; ok {
		return fmt.Errorf("session %s already exists", sessionID)
	}
	r.sessions[sessionID] = &session{touched: r.now()}
	return nil
}

func (r *SessionRepo) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	s, err := r.lookup(sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gone {
		return domain.Cart{}, fmt.Errorf("session %s: %w", sessionID, app.ErrSessionNotFound)
	}
	s.touched = r.now()
	return s.cart.Clone(), nil
}

func (r *SessionRepo) Update(ctx context.Context, sessionID string, fn func(*domain.Cart)) (domain.Cart, error) {
	s, err := r.lookup(sessionID)
	if err != nil {
		return domain.Cart{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}
	return r.apply(s, sessionID, fn)
}

// apply runs fn under the session lock. Delete or Sweep may have dropped s
// between lookup and the lock.
func (r *SessionRepo) apply(s *session, sessionID string, fn func(*domain.Cart)) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gone {
		return domain.Cart{}, fmt.Errorf("session %s: %w", sessionID, app.ErrSessionNotFound)
	}
	fn(&s.cart)
	s.touched = r.now()
	return s.cart.Clone(), nil
}

func (r *SessionRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, app.ErrSessionNotFound)
	}
	s.mu.Lock()
	s.gone = true
	s.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

func (r *SessionRepo) Sweep(ctx context.Context, idleFor time.Duration) (int, error) {
	cutoff := r.now().Add(-idleFor)

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, s := range r.sessions {
		s.mu.Lock()
		idle := s.touched.Before(cutoff)
		if idle {
			s.gone = true
		}
		s.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *SessionRepo) lookup(sessionID string) (*session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, app.ErrSessionNotFound)
	}
	return s, nil
}
