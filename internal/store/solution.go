package store

import (
	"context"

	"github.com/tdw-edu/questions-api/internal/domain"
)

// SolutionField names a text column of a solution that can be probed with
// SolutionStore.ExistsByField.
type SolutionField string

// Searchable solution fields
const (
	SolutionStudent          SolutionField = "student"
	SolutionQuestionTitle    SolutionField = "question_title"
	SolutionProposedSolution SolutionField = "proposed_solution"
)

// SolutionStore defines the interface for solution data persistence.
type SolutionStore interface {
	List(ctx context.Context) ([]*domain.Solution, error)

	// GetByID returns ErrSolutionNotFound if the solution does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Solution, error)

	// ExistsByField reports whether any solution has exactly value in field.
	ExistsByField(ctx context.Context, field SolutionField, value string) (bool, error)

	// Create inserts the solution and sets its ID. A question id that does
	// not exist yields ErrInvalidReference.
	Create(ctx context.Context, solution *domain.Solution) error

	Update(ctx context.Context, solution *domain.Solution) error

	// Delete removes the solution and its rationales.
	Delete(ctx context.Context, id int64) error
}
