package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tdw-edu/questions-api/internal/api/shared"
	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/redact"
	"github.com/tdw-edu/questions-api/internal/service/auth"
)

// TokenHeader is the legacy header carrying a bare token. Login echoes the
// issued token in it.
const TokenHeader = "X-Token"

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the token from the Authorization header (or the
// X-Token header) and stores the resulting principal in the request
// context. Any token problem answers 401 with the catalog message.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extractToken(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, catalog.MsgUnauthorized)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken),
				errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, catalog.MsgUnauthorized)
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, catalog.MsgInternalError)
			}
			return
		}

		ctx := shared.WithPrincipal(r.Context(), claims.Principal())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken reads "Authorization: Bearer <token>" first and falls back to
// the X-Token header, which may carry the token with or without the Bearer
// prefix.
func extractToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", auth.ErrInvalidToken
		}
		return strings.TrimSpace(token), nil
	}

	if header := strings.TrimSpace(r.Header.Get(TokenHeader)); header != "" {
		if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
			header = strings.TrimSpace(token)
		}
		if header != "" {
			return header, nil
		}
	}

	return "", auth.ErrMissingToken
}

// GetPrincipal extracts the principal from the request context.
// Returns the principal and a boolean indicating if it was found.
func GetPrincipal(r *http.Request) (auth.Principal, bool) {
	return shared.GetPrincipal(r.Context())
}
