package store

import (
	"context"

	"github.com/tdw-edu/questions-api/internal/domain"
)

// RationaleStore defines the interface for rationale data persistence.
type RationaleStore interface {
	List(ctx context.Context) ([]*domain.Rationale, error)

	// GetByID returns ErrRationaleNotFound if the rationale does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Rationale, error)

	// Create and Update yield ErrInvalidReference for a solution id that
	// does not exist.
	Create(ctx context.Context, rationale *domain.Rationale) error
	Update(ctx context.Context, rationale *domain.Rationale) error

	Delete(ctx context.Context, id int64) error
}
