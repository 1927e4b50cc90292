package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/tdw-edu/questions-api/internal/config"
	"github.com/tdw-edu/questions-api/internal/platform/migrations"
	"github.com/tdw-edu/questions-api/internal/platform/sqlstore"
	"github.com/tdw-edu/questions-api/internal/redact"
)

// setupAppDatabase opens the configured database and brings its schema up to
// date.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sqlstore.Open(ctx, cfg.Database.Driver, cfg.Database.URL, sqlstore.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxOpenConns / 2,
		ConnMaxLifetime: 5 * time.Minute,
	})
	if err != nil {
		// The driver error may echo the DSN.
		return nil, fmt.Errorf("database setup failed: %s", redact.Error(err))
	}

	if err := migrations.Up(ctx, db, cfg.Database.Driver, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("Database connection established", "driver", cfg.Database.Driver)
	return db, nil
}
