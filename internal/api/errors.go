package api

import (
	"log/slog"
	"net/http"

	"github.com/tdw-edu/questions-api/internal/api/shared"
	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/redact"
	"github.com/tdw-edu/questions-api/internal/service"
)

// MapErrorToStatusCode maps a controller error to its HTTP status code.
// Outcome errors carry their own status; anything else is a persistence or
// infrastructure failure and maps to 500.
func MapErrorToStatusCode(err error) int {
	if oe, ok := service.AsOutcome(err); ok {
		return oe.Status
	}
	return http.StatusInternalServerError
}

// GetSafeErrorMessage returns the client-facing message for err. It never
// includes the error text itself.
func GetSafeErrorMessage(err error) string {
	if oe, ok := service.AsOutcome(err); ok {
		return oe.Message()
	}
	return catalog.MsgInternalError
}

// respondWithServiceError writes the error envelope for err. Failures other
// than expected outcomes are logged, redacted, at error level.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := MapErrorToStatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", redact.Error(err)))
	} else {
		log.Debug("request rejected",
			slog.Int("status", status),
			slog.String("error", redact.Error(err)))
	}

	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}
