package sqlstore

import (
	"fmt"
	"regexp"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

var placeholderRe = regexp.MustCompile(`\$\d+`)

// Dialect rewrites queries for a driver.
type Dialect struct {
	driver string
}

// NewDialect returns the dialect for driver, which must be DriverPostgres or
// DriverSQLite.
func NewDialect(driver string) (Dialect, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
		return Dialect{driver: driver}, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Driver returns the database/sql driver name.
func (d Dialect) Driver() string {
	return d.driver
}

// Rebind converts $N placeholders to ? for SQLite. PostgreSQL queries are
// returned unchanged. Placeholders must appear in ascending order, each once.
func (d Dialect) Rebind(query string) string {
	if d.driver == DriverSQLite {
		return placeholderRe.ReplaceAllString(query, "?")
	}
	return query
}
