package repository

import (
	"context"
	"errors"

	"digaxy-assistant/internal/model"
)

// ErrNotFound is returned when no session exists for the given ID.
var ErrNotFound = errors.New("session not found")

// SessionRepository stores conversation sessions between turns. The engine
// only requires that the same session comes back on the next Step call;
// eviction and expiry policy belong to the implementation.
type SessionRepository interface {
	// GetOrCreate returns the session with the given ID, creating a fresh
	// one when none exists. An empty id asks the store to mint a new ID.
	GetOrCreate(ctx context.Context, id string) (*model.Session, error)

	// Get returns the session with the given ID or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Session, error)

	// Save persists the session under its ID.
	Save(ctx context.Context, s *model.Session) error

	// Delete removes the session. Deleting a missing session is a no-op.
	Delete(ctx context.Context, id string) error
}
