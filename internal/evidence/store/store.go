// Package store persists evidence records.
package store

import (
	"context"

	"research/internal/evidence/models"
)

// Store is the persistence port used by the evidence service.
//
// Implementations return copies: callers may mutate what they receive
// without affecting stored state. Missing records yield sentinel.ErrNotFound.
type Store interface {
	// Create assigns the next id and saves e.
	Create(ctx context.Context, e *models.Evidence) (*models.Evidence, error)
	FindByID(ctx context.Context, id int64) (*models.Evidence, error)
	// Update applies fn to one record atomically. If fn returns an error
	// nothing is written.
	Update(ctx context.Context, id int64, fn func(*models.Evidence) error) (*models.Evidence, error)
	// ListBySession returns the session's evidence in no particular order.
	ListBySession(ctx context.Context, sessionID string) ([]*models.Evidence, error)
}
