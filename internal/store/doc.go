// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the controllers, which only see lookups by field, saves and deletes.
//
// Implementations live in internal/platform/sqlstore. Every store reports
// missing rows with an entity-specific wrapper of ErrNotFound, unique
// violations with a wrapper of ErrDuplicate and dangling foreign keys with
// ErrInvalidReference.
package store
