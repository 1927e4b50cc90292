package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "wrapped ErrNotFound", err: fmt.Errorf("failed: %w", ErrNotFound), expected: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, expected: true},
		{name: "ErrQuestionNotFound", err: ErrQuestionNotFound, expected: true},
		{name: "ErrCategoryNotFound", err: ErrCategoryNotFound, expected: true},
		{name: "ErrSolutionNotFound", err: ErrSolutionNotFound, expected: true},
		{name: "wrapped ErrRationaleNotFound", err: fmt.Errorf("get: %w", ErrRationaleNotFound), expected: true},
		{name: "ErrDuplicate", err: ErrDuplicate, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "ErrDuplicate", err: ErrDuplicate, expected: true},
		{name: "ErrUsernameExists", err: ErrUsernameExists, expected: true},
		{name: "wrapped ErrEmailExists", err: fmt.Errorf("create: %w", ErrEmailExists), expected: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, expected: false},
		{name: "ErrInvalidReference", err: ErrInvalidReference, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDuplicateError(tt.err))
		})
	}
}

func TestEntityErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrUserNotFound, ErrQuestionNotFound))
	assert.False(t, errors.Is(ErrUsernameExists, ErrEmailExists))
	assert.Equal(t, "entity not found: user", ErrUserNotFound.Error())
}

func TestStoreError(t *testing.T) {
	cause := ErrSolutionNotFound
	err := NewStoreError("solution", "update", "no rows", cause)

	assert.Equal(t, "update operation on solution failed: no rows: entity not found: solution", err.Error())
	assert.ErrorIs(t, err, ErrSolutionNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	bare := NewStoreError("user", "create", "invalid", nil)
	assert.Equal(t, "create operation on user failed: invalid", bare.Error())
}
