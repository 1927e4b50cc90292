package api

import (
	"log/slog"
	"mime"
	"net/http"

	"github.com/tdw-edu/questions-api/internal/api/middleware"
	"github.com/tdw-edu/questions-api/internal/api/shared"
	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/platform/logger"
	"github.com/tdw-edu/questions-api/internal/service"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	loginService service.LoginService
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(loginService service.LoginService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		loginService: loginService,
		logger:       logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /login. Unreadable or incomplete credentials get the
// same 404 answer as wrong ones.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, err := readLoginRequest(r)
	if err != nil {
		log.Debug("unreadable login request", "error", err)
	}
	if err != nil || shared.ValidateRequest(req) != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, catalog.Message(catalog.OpLogin, http.StatusNotFound))
		return
	}

	result, err := h.loginService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondWithServiceError(w, r, log, err)
		return
	}

	w.Header().Set(middleware.TokenHeader, result.Token)
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token: result.Token,
		User:  result.User,
	})
}

// readLoginRequest reads the credentials from a form body, or from JSON for
// any other content type.
func readLoginRequest(r *http.Request) (LoginRequest, error) {
	var req LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
		return req, nil
	default:
		err := shared.DecodeJSON(r, &req)
		return req, err
	}
}
