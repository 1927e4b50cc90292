package api

import (
	"github.com/tdw-edu/questions-api/internal/domain"
)

// LoginRequest defines the payload for the login endpoint. It is read from
// a form-encoded or a JSON body.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response of the login endpoint.
type LoginResponse struct {
	Token string       `json:"X-Token"`
	User  *domain.User `json:"User"`
}
