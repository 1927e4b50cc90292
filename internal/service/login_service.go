package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/service/auth"
	"github.com/tdw-edu/questions-api/internal/store"
)

// LoginResult is a successful login: the signed token and the user it was
// issued for.
type LoginResult struct {
	Token string
	User  *domain.User
}

// LoginService exchanges credentials for a token.
type LoginService interface {
	// Login verifies the credentials. Missing credentials, an unknown
	// username and a wrong password all fail with the same 404 outcome.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// LoginServiceImpl implements LoginService.
type LoginServiceImpl struct {
	userStore  store.UserStore
	verifier   auth.PasswordVerifier
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewLoginService creates a new LoginService.
func NewLoginService(
	userStore store.UserStore,
	verifier auth.PasswordVerifier,
	jwtService auth.JWTService,
	logger *slog.Logger,
) LoginService {
	return &LoginServiceImpl{
		userStore:  userStore,
		verifier:   verifier,
		jwtService: jwtService,
		logger:     componentLogger(logger, "login_service"),
	}
}

// Login implements LoginService.Login.
func (s *LoginServiceImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	const op = catalog.OpLogin

	if username == "" || password == "" {
		return nil, notFound(op, ErrInvalidCredentials)
	}

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("login for unknown username")
			return nil, notFound(op, ErrInvalidCredentials)
		}
		return nil, storeFailure(s.logger, op, err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login with wrong password", "user_id", user.ID)
		return nil, notFound(op, ErrInvalidCredentials)
	}

	token, err := s.jwtService.GenerateToken(ctx, user)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &LoginResult{Token: token, User: user}, nil
}
