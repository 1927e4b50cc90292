// Package sqlstore implements the store interfaces on database/sql.
//
// Queries are written once with PostgreSQL-style $N placeholders and rebound
// for the configured driver, so the same stores run against PostgreSQL (pgx
// stdlib driver) in production and SQLite (modernc.org/sqlite) in
// development and tests. Driver errors are translated to the store sentinel
// errors by MapError.
package sqlstore
