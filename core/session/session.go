package session

import (
	"context"
	"errors"
	"time"

	"craft-planner/core/pool"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// Session is a named inventory.
type Session struct {
	ID        string    `json:"id"`
	Pool      pool.Pool `json:"pool"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists sessions.
type Store interface {
	// Create starts a session with an empty pool.
	Create(ctx context.Context) (*Session, error)
	// Get returns the session or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)
	// SavePool replaces the pool of an existing session.
	SavePool(ctx context.Context, id string, p pool.Pool) (*Session, error)
	// Delete removes the session. Deleting an unknown id returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
