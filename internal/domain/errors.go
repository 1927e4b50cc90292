// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrCreatorNotTeacher is returned when a non-teacher user is assigned as
	// the creator of a question.
	ErrCreatorNotTeacher = errors.New("question creator must be a teacher")

	// ErrNilCreator is returned when a nil user is assigned as creator.
	ErrNilCreator = errors.New("question creator cannot be nil")
)
