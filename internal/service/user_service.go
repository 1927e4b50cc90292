package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/service/auth"
	"github.com/tdw-edu/questions-api/internal/store"
)

// UserService manages user accounts.
type UserService interface {
	// List returns every user. Admin only.
	List(ctx context.Context, p auth.Principal) ([]*domain.User, error)

	// Get returns the user with the given id.
	Get(ctx context.Context, p auth.Principal, id int64) (*domain.User, error)

	// Create registers a new user. Admin only; username, email and password
	// are required and the first two must be unique.
	Create(ctx context.Context, p auth.Principal, in UserPayload) (*domain.User, error)

	// Update applies the present fields of in to the user with the given id.
	Update(ctx context.Context, p auth.Principal, id int64, in UserPayload) (*domain.User, error)

	// Delete removes the user with the given id.
	Delete(ctx context.Context, p auth.Principal, id int64) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userStore store.UserStore, hasher auth.PasswordHasher, logger *slog.Logger) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		logger:    componentLogger(logger, "user_service"),
	}
}

// List implements UserService.List.
func (s *UserServiceImpl) List(ctx context.Context, p auth.Principal) ([]*domain.User, error) {
	const op = catalog.OpListUsers
	if err := requireAdmin(p, op); err != nil {
		return nil, err
	}

	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}
	if len(users) == 0 {
		return nil, notFound(op, ErrEmptyResult)
	}
	return users, nil
}

// Get implements UserService.Get.
func (s *UserServiceImpl) Get(ctx context.Context, p auth.Principal, id int64) (*domain.User, error) {
	const op = catalog.OpGetUser
	if err := requireAccess(p, id, op); err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}
	return user, nil
}

// Create implements UserService.Create.
func (s *UserServiceImpl) Create(ctx context.Context, p auth.Principal, in UserPayload) (*domain.User, error) {
	const op = catalog.OpCreateUser
	if err := requireAdmin(p, op); err != nil {
		return nil, err
	}
	if err := requireFields(in); err != nil {
		return nil, unprocessable(op, err)
	}

	if err := s.checkUnique(ctx, op, in); err != nil {
		return nil, err
	}

	user, err := domain.NewUser(*in.Username, *in.Email, *in.Password)
	if err != nil {
		return nil, unprocessable(op, err)
	}
	// Flags not sent default to false, including enabled.
	user.Enabled = deref(in.Enabled)
	user.IsTeacher = deref(in.IsTeacher)
	user.IsAdmin = deref(in.IsAdmin)

	if user.HashedPassword, err = s.hasher.Hash(user.Password); err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			return nil, badRequest(op, err)
		}
		return nil, storeFailure(s.logger, op, err)
	}

	s.logger.Info("user created", "user_id", user.ID, "by", p.UserID)
	return user, nil
}

// Update implements UserService.Update.
//
// Username and email are checked against every stored user, the target
// included, so resending the current value is rejected as a duplicate.
func (s *UserServiceImpl) Update(
	ctx context.Context,
	p auth.Principal,
	id int64,
	in UserPayload,
) (*domain.User, error) {
	const op = catalog.OpUpdateUser
	if err := requireAccess(p, id, op); err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}

	if err := rejectBlank(in.Username, in.Email, in.Password); err != nil {
		return nil, unprocessable(op, err)
	}
	if err := s.checkUnique(ctx, op, in); err != nil {
		return nil, err
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		if user.HashedPassword, err = s.hasher.Hash(*in.Password); err != nil {
			s.logger.Error("failed to hash password", "error", err, "user_id", id)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	if in.Enabled != nil {
		user.Enabled = *in.Enabled
	}
	if in.IsTeacher != nil {
		user.IsTeacher = *in.IsTeacher
	}
	if in.IsAdmin != nil {
		user.IsAdmin = *in.IsAdmin
	}

	if err := s.userStore.Update(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			return nil, badRequest(op, err)
		}
		return nil, storeFailure(s.logger, op, err)
	}

	s.logger.Info("user updated", "user_id", id, "by", p.UserID)
	return user, nil
}

// Delete implements UserService.Delete.
func (s *UserServiceImpl) Delete(ctx context.Context, p auth.Principal, id int64) error {
	const op = catalog.OpDeleteUser
	if err := requireAccess(p, id, op); err != nil {
		return err
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		return storeFailure(s.logger, op, err)
	}

	s.logger.Info("user deleted", "user_id", id, "by", p.UserID)
	return nil
}

// checkUnique rejects a present username, then a present email, that is
// already taken.
func (s *UserServiceImpl) checkUnique(ctx context.Context, op catalog.Operation, in UserPayload) error {
	if in.Username != nil {
		taken, err := s.userStore.ExistsByUsername(ctx, *in.Username)
		if err != nil {
			return storeFailure(s.logger, op, err)
		}
		if taken {
			s.logger.Debug("username already taken", "username", *in.Username)
			return NewOutcomeError(op, http.StatusBadRequest, store.ErrUsernameExists)
		}
	}

	if in.Email != nil {
		taken, err := s.userStore.ExistsByEmail(ctx, *in.Email)
		if err != nil {
			return storeFailure(s.logger, op, err)
		}
		if taken {
			s.logger.Debug("email already taken")
			return NewOutcomeError(op, http.StatusBadRequest, store.ErrEmailExists)
		}
	}
	return nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
