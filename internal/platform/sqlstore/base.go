package sqlstore

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/tdw-edu/questions-api/internal/platform/logger"
	"github.com/tdw-edu/questions-api/internal/store"
)

// base carries what every SQL store needs.
type base struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

func newBase(db store.DBTX, dialect Dialect, l *slog.Logger, component string) base {
	if db == nil {
		panic("db cannot be nil")
	}
	if l == nil {
		l = slog.Default()
	}
	return base{
		db:      db,
		dialect: dialect,
		logger:  l.With(slog.String("component", component)),
	}
}

// log returns the request-scoped logger when there is one.
func (b base) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, b.logger)
}

func (b base) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return b.db.ExecContext(ctx, b.dialect.Rebind(query), args...)
}

func (b base) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return b.db.QueryContext(ctx, b.dialect.Rebind(query), args...)
}

func (b base) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return b.db.QueryRowContext(ctx, b.dialect.Rebind(query), args...)
}

// exists runs a SELECT EXISTS(...) query.
func (b base) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found bool
	if err := b.queryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

// ids collects a single int64 column.
func (b base) ids(ctx context.Context, query string, args ...any) ([]int64, error) {
	rows, err := b.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// groupedIDs collects (parent, child) pairs into child ids per parent.
func (b base) groupedIDs(ctx context.Context, query string, args ...any) (map[int64][]int64, error) {
	rows, err := b.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make(map[int64][]int64)
	for rows.Next() {
		var parent, child int64
		if err := rows.Scan(&parent, &child); err != nil {
			return nil, err
		}
		out[parent] = append(out[parent], child)
	}
	return out, rows.Err()
}

// nullString stores empty strings as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

// orEmpty returns a non-nil slice.
func orEmpty(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
