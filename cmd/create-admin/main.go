// Command create-admin bootstraps the first account: an enabled admin and
// teacher built from the admin.* settings. It refuses to overwrite an
// existing user.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tdw-edu/questions-api/internal/config"
	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/platform/logger"
	"github.com/tdw-edu/questions-api/internal/platform/migrations"
	"github.com/tdw-edu/questions-api/internal/platform/sqlstore"
	"github.com/tdw-edu/questions-api/internal/redact"
	"github.com/tdw-edu/questions-api/internal/service/auth"
	"github.com/tdw-edu/questions-api/internal/store"
)

var (
	// ErrAdminExists is returned when the username or email is taken.
	ErrAdminExists = errors.New("admin user already exists")
	// ErrAdminIncomplete is returned when a required admin setting is empty.
	ErrAdminIncomplete = errors.New("admin username, email and password are required")
)

func main() {
	if err := run(); err != nil {
		slog.Error("create-admin failed", "error", redact.Error(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sqlstore.Open(ctx, cfg.Database.Driver, cfg.Database.URL, sqlstore.Options{MaxOpenConns: 1})
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := migrations.Up(ctx, db, cfg.Database.Driver, l); err != nil {
		return err
	}

	dialect, err := sqlstore.NewDialect(cfg.Database.Driver)
	if err != nil {
		return err
	}

	u, err := createAdmin(ctx, sqlstore.NewUserStore(db, dialect, l), auth.NewBcrypt(cfg.Auth.BCryptCost), cfg.Admin)
	if err != nil {
		return err
	}

	l.Info("admin user created", "user_id", u.ID, "username", u.Username)
	return nil
}

// createAdmin stores an enabled admin and teacher with the given credentials.
func createAdmin(
	ctx context.Context,
	users store.UserStore,
	hasher auth.PasswordHasher,
	admin config.AdminConfig,
) (*domain.User, error) {
	if admin.Username == "" || admin.Email == "" || admin.Password == "" {
		return nil, ErrAdminIncomplete
	}

	taken, err := users.ExistsByUsername(ctx, admin.Username)
	if err == nil && !taken {
		taken, err = users.ExistsByEmail(ctx, admin.Email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if taken {
		return nil, ErrAdminExists
	}

	u, err := domain.NewUser(admin.Username, admin.Email, admin.Password)
	if err != nil {
		return nil, err
	}
	u.IsAdmin = true
	u.IsTeacher = true

	u.HashedPassword, err = hasher.Hash(admin.Password)
	if err != nil {
		return nil, err
	}
	u.Password = ""

	if err := users.Create(ctx, u); err != nil {
		if store.IsDuplicateError(err) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("failed to store admin user: %w", err)
	}
	return u, nil
}
