package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tdw-edu/questions-api/internal/platform/migrations"
	"github.com/tdw-edu/questions-api/internal/platform/sqlstore"
)

// Dialect returns the dialect of the databases handed out by this package.
func Dialect() sqlstore.Dialect {
	d, err := sqlstore.NewDialect(sqlstore.DriverSQLite)
	if err != nil {
		panic(err)
	}
	return d
}

// GetTestDB opens a fresh, migrated in-memory database. The caller closes it.
func GetTestDB(ctx context.Context) (*sql.DB, error) {
	// A named shared-cache database lives as long as one connection is open;
	// a single connection keeps it alive and serializes access.
	dsn := fmt.Sprintf("file:test-%s?mode=memory&cache=shared", uuid.NewString())

	db, err := sqlstore.Open(ctx, sqlstore.DriverSQLite, dsn, sqlstore.Options{MaxOpenConns: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to open test database: %w", err)
	}
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	quiet := slog.New(slog.DiscardHandler)
	if err := migrations.Up(ctx, db, sqlstore.DriverSQLite, quiet); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// GetTestDBWithT is GetTestDB with the close registered on t.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	db, err := GetTestDB(context.Background())
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() { CleanupDB(t, db) })
	return db
}

// CleanupDB closes db, reporting a failure on t.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// WithTx runs fn inside a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Errorf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
