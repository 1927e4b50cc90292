package auth

import (
	"context"
	"time"

	"github.com/tdw-edu/questions-api/internal/domain"
)

// JWTService issues and validates the bearer tokens that identify a caller.
type JWTService interface {
	// GenerateToken signs a token embedding the user's id, username and
	// admin flag.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken verifies the signature and time claims of tokenString.
	// It returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of a token.
type Claims struct {
	UserID    int64     `json:"uid"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"isAdmin"`
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

// Principal returns the caller identity carried by the claims.
func (c *Claims) Principal() Principal {
	return Principal{UserID: c.UserID, IsAdmin: c.IsAdmin}
}
