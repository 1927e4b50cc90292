package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/store"
)

const userColumns = `id, username, email, password_hash, enabled, is_teacher, is_admin`

// UserStore implements store.UserStore.
type UserStore struct {
	base
}

// NewUserStore creates a UserStore. If logger is nil, slog.Default() is used.
func NewUserStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *UserStore {
	return &UserStore{base: newBase(db, dialect, logger, "user_store")}
}

var _ store.UserStore = (*UserStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.HashedPassword,
		&u.Enabled,
		&u.IsTeacher,
		&u.IsAdmin,
	); err != nil {
		return nil, err
	}
	u.Questions = []int64{}
	return &u, nil
}

// List implements store.UserStore.List.
func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := s.log(ctx)

	rows, err := s.query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	users := []*domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, MapError(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	authored, err := s.groupedIDs(ctx,
		`SELECT creator_id, id FROM questions WHERE creator_id IS NOT NULL ORDER BY id`)
	if err != nil {
		log.Error("failed to load authored questions", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	for _, u := range users {
		u.Questions = orEmpty(authored[u.ID])
	}

	log.Debug("users listed", slog.Int("count", len(users)))
	return users, nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	u.Questions, err = s.ids(ctx, `SELECT id FROM questions WHERE creator_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, MapError(err)
	}
	return u, nil
}

// GetByUsername implements store.UserStore.GetByUsername.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (s *UserStore) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	u, err := scanUser(s.queryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log(ctx).Debug("user not found", slog.Any("key", arg))
			return nil, store.ErrUserNotFound
		}
		s.log(ctx).Error("failed to get user", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return u, nil
}

// ExistsByUsername implements store.UserStore.ExistsByUsername.
func (s *UserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	found, err := s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username)
	return found, MapError(err)
}

// ExistsByEmail implements store.UserStore.ExistsByEmail.
func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	found, err := s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
	return found, MapError(err)
}

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := s.log(ctx)

	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	if user.HashedPassword == "" {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}

	err := s.queryRow(ctx, `
		INSERT INTO users (username, email, password_hash, enabled, is_teacher, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.Enabled,
		user.IsTeacher,
		user.IsAdmin,
	).Scan(&user.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate user on create", slog.String("username", user.Username))
			return userDuplicateError(err)
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return MapError(err)
	}

	if user.Questions == nil {
		user.Questions = []int64{}
	}
	user.Password = ""

	log.Info("user created", slog.Int64("user_id", user.ID))
	return nil
}

// Update implements store.UserStore.Update.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	log := s.log(ctx)

	if user.HashedPassword == "" {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyHashedPassword)
	}

	result, err := s.exec(ctx, `
		UPDATE users
		SET username = $1, email = $2, password_hash = $3, enabled = $4, is_teacher = $5, is_admin = $6
		WHERE id = $7
	`,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.Enabled,
		user.IsTeacher,
		user.IsAdmin,
		user.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate user on update", slog.Int64("user_id", user.ID))
			return userDuplicateError(err)
		}
		log.Error("failed to update user", slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	user.Password = ""
	log.Info("user updated", slog.Int64("user_id", user.ID))
	return nil
}

// Delete implements store.UserStore.Delete.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	result, err := s.exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		s.log(ctx).Error("failed to delete user", slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	s.log(ctx).Info("user deleted", slog.Int64("user_id", id))
	return nil
}

// userDuplicateError tells username and email violations apart by the
// constraint text in the driver message.
func userDuplicateError(err error) error {
	if strings.Contains(err.Error(), "email") {
		return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
	}
	return fmt.Errorf("%w: %v", store.ErrUsernameExists, err)
}
