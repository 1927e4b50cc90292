package store

import (
	"context"

	"github.com/tdw-edu/questions-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// List returns every user ordered by id. The slice is empty, not nil,
	// when there are no users.
	List(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves a user with its authored question ids.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername retrieves a user by exact username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// ExistsByUsername reports whether any user has exactly this username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether any user has exactly this email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts the user and sets its ID. HashedPassword must be set;
	// the plaintext Password is never stored.
	// Returns ErrUsernameExists or ErrEmailExists on a unique violation.
	Create(ctx context.Context, user *domain.User) error

	// Update writes every column of an existing user.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user. Questions authored by the user lose their creator.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error
}
