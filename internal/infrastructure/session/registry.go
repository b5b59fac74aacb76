// Package session keeps per-shopper state: the simulated user, the cart and the wishlist.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/elegance/storefront/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const keyPrefix = "session:"

// Store is the cache a Registry keeps sessions in
type Store interface {
	domain.CacheRepository
	Touch(ctx context.Context, key string, ttl time.Duration) error
}

// State is what a session owns. Only touch it inside Session.Do.
type State = domain.ShopperState

// Session serializes every read and transition of one shopper's state
type Session struct {
	ID string

	mu    sync.Mutex
	state State
}

// Do runs fn with exclusive access to the session state
func (s *Session) Do(fn func(state *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}

// Registry creates and looks up sessions. Idle sessions expire after ttl.
type Registry struct {
	store    Store
	ttl      time.Duration
	newState func() State
	logger   *zap.Logger
}

// NewRegistry creates a registry backed by store. newState builds the state
// of each new session.
func NewRegistry(store Store, ttl time.Duration, newState func() State, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		store:    store,
		ttl:      ttl,
		newState: newState,
		logger:   logger.Named("session"),
	}
}

// Get returns a live session and extends its lifetime
func (r *Registry) Get(ctx context.Context, id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrSessionNotFound, id)
	}

	value, err := r.store.Get(ctx, keyPrefix+id)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, fmt.Errorf("%w: %q", domain.ErrSessionNotFound, id)
		}
		return nil, err
	}
	sess, ok := value.(*Session)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrSessionNotFound, id)
	}

	if err := r.store.Touch(ctx, keyPrefix+id, r.ttl); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		r.logger.Warn("failed to extend session", zap.String("session_id", id), zap.Error(err))
	}
	return sess, nil
}

// Create starts a new session from a fresh state
func (r *Registry) Create(ctx context.Context) (*Session, error) {
	sess := &Session{
		ID:    uuid.NewString(),
		state: r.newState(),
	}
	if err := r.store.Set(ctx, keyPrefix+sess.ID, sess, r.ttl); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	r.logger.Debug("session created", zap.String("session_id", sess.ID))
	return sess, nil
}

// GetOrCreate returns the session for id, or a new one when id is empty,
// malformed or expired. created reports which happened.
func (r *Registry) GetOrCreate(ctx context.Context, id string) (sess *Session, created bool, err error) {
	if id != "" {
		sess, err = r.Get(ctx, id)
		if err == nil {
			return sess, false, nil
		}
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return nil, false, err
		}
	}

	sess, err = r.Create(ctx)
	if err != nil {
		return nil, false, err
	}
	return sess, true, nil
}

// End forgets a session
func (r *Registry) End(ctx context.Context, id string) error {
	return r.store.Delete(ctx, keyPrefix+id)
}
