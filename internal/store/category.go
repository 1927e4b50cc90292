package store

import (
	"context"

	"github.com/tdw-edu/questions-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
// Returned categories carry their question ids in ascending order.
type CategoryStore interface {
	List(ctx context.Context) ([]*domain.Category, error)

	// GetByID returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int64) error

	// AddQuestion links a question to a category. Linking twice is a no-op.
	AddQuestion(ctx context.Context, categoryID, questionID int64) error

	// RemoveQuestion unlinks a question. Removing a missing link is a no-op.
	RemoveQuestion(ctx context.Context, categoryID, questionID int64) error
}
