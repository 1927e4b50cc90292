package auth

import "errors"

var (
	// ErrInvalidToken indicates that the token is malformed, has a bad
	// signature or carries unusable claims.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates that the token's exp claim is in the past.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates that the token's nbf or iat claim is in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates that the request carried no token at all.
	ErrMissingToken = errors.New("authentication token is missing")
)
