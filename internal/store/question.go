package store

import (
	"context"

	"github.com/tdw-edu/questions-api/internal/domain"
)

// QuestionStore defines the interface for question data persistence.
// Returned questions carry their category ids in ascending order.
type QuestionStore interface {
	List(ctx context.Context) ([]*domain.Question, error)

	// GetByID returns ErrQuestionNotFound if the question does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Question, error)

	// Create inserts the question and sets its ID. A creator id that does
	// not exist yields ErrInvalidReference.
	Create(ctx context.Context, question *domain.Question) error

	// Update writes description, availability, state and creator.
	// Category links are managed through CategoryStore.
	Update(ctx context.Context, question *domain.Question) error

	// Delete removes the question together with its solutions, their
	// rationales and its category links.
	Delete(ctx context.Context, id int64) error
}
