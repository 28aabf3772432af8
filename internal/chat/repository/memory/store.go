// Package memory provides the in-process session store. Sessions live in a
// bounded LRU with a TTL, so an abandoned conversation eventually vanishes
// without any background sweeper.
package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"digaxy-assistant/internal/chat/repository"
	"digaxy-assistant/internal/model"
)

const (
	// DefaultMaxEntries bounds concurrent sessions held in memory.
	DefaultMaxEntries = 10000

	// DefaultTTL is how long an idle session survives.
	DefaultTTL = 30 * time.Minute
)

// Store is an expirable-LRU-backed SessionRepository.
type Store struct {
	cache *expirable.LRU[string, *model.Session]
}

// New creates a session store with the given bounds. Zero values fall back
// to the defaults.
func New(maxEntries int, ttl time.Duration) *Store {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		cache: expirable.NewLRU[string, *model.Session](maxEntries, nil, ttl),
	}
}

// GetOrCreate returns the session for id, minting an ID when empty and a
// fresh session when none is stored.
func (s *Store) GetOrCreate(ctx context.Context, id string) (*model.Session, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if sess, ok := s.cache.Get(id); ok {
		return sess, nil
	}
	sess := model.NewSession(id)
	s.cache.Add(id, sess)
	return sess, nil
}

// Get returns the session for id or repository.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*model.Session, error) {
	if sess, ok := s.cache.Get(id); ok {
		return sess, nil
	}
	return nil, repository.ErrNotFound
}

// Save persists the session under its ID, refreshing its TTL.
func (s *Store) Save(ctx context.Context, sess *model.Session) error {
	s.cache.Add(sess.ID, sess)
	return nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.cache.Remove(id)
	return nil
}
