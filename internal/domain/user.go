package domain

import (
	"errors"
	"fmt"
)

// Common validation errors for User
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents an account of the questions API. Teachers may author
// questions; admins may manage every resource.
type User struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Password       string  `json:"-"` // Plaintext password, only set while creating or updating
	HashedPassword string  `json:"-"` // Never expose password hash in JSON
	Enabled        bool    `json:"enabled"`
	IsTeacher      bool    `json:"isTeacher"`
	IsAdmin        bool    `json:"isAdmin"`
	Questions      []int64 `json:"questions"`
}

// NewUser creates an enabled, non-privileged user with the given credentials.
// The caller is responsible for hashing the password before storing the user.
func NewUser(username, email, password string) (*User, error) {
	user := &User{
		Username:  username,
		Email:     email,
		Password:  password,
		Enabled:   true,
		Questions: []int64{},
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// A user must carry either a plaintext password (before hashing) or a hash.
func (u *User) Validate() error {
	if u.Username == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyUsername)
	}

	if u.Email == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyEmail)
	}

	if u.Password == "" && u.HashedPassword == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyPassword)
	}

	return nil
}
