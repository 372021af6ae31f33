// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/receiptsplit/internal/models"
)

var (
	// ErrNotFound is returned when a session does not exist.
	ErrNotFound = errors.New("session not found")

	// ErrVersionConflict is returned by UpdateSession when the stored session
	// changed since it was read.
	ErrVersionConflict = errors.New("session was modified concurrently")
)

// Store defines the interface for session storage operations.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// CreateSession persists a new session.
	// ID, Title, CreatedAt and UpdatedAt are filled in when empty; Version starts at 1.
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session by its ID.
	// Returns ErrNotFound if the session does not exist.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// UpdateSession replaces the stored session if its version still equals
	// session.Version, then increments session.Version.
	// Returns ErrVersionConflict if another writer got there first.
	UpdateSession(ctx context.Context, session *models.Session) error

	// DeleteSession removes a session and everything attached to it.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteSessionsBefore removes sessions not updated since cutoff (Unix seconds)
	// and returns how many were removed.
	DeleteSessionsBefore(ctx context.Context, cutoff int64) (int64, error)

	// Close releases any resources held by the store.
	Close() error
}
