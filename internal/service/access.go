package service

import (
	"fmt"
	"log/slog"

	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/service/auth"
	"github.com/tdw-edu/questions-api/internal/store"
)

// requireAdmin gates collection-level operations.
func requireAdmin(p auth.Principal, op catalog.Operation) error {
	if !p.IsAdmin {
		return forbidden(op)
	}
	return nil
}

// requireAccess gates item-level operations on the id taken from the path.
func requireAccess(p auth.Principal, id int64, op catalog.Operation) error {
	if !p.CanAccess(id) {
		return forbidden(op)
	}
	return nil
}

// storeFailure turns a repository error into the operation outcome: missing
// rows become 404, everything else is an unexpected persistence failure.
func storeFailure(logger *slog.Logger, op catalog.Operation, err error) error {
	if store.IsNotFoundError(err) {
		return notFound(op, err)
	}
	logger.Error("persistence failure", "operation", string(op), "error", err)
	return fmt.Errorf("%s: %w", op, err)
}

// componentLogger derives the controller logger; nil falls back to the
// default logger.
func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}
