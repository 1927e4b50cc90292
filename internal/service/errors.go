package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tdw-edu/questions-api/internal/catalog"
)

// Causes wrapped by OutcomeError. Callers match them with errors.Is.
var (
	// ErrForbidden indicates the principal is neither an admin nor the owner
	// of the targeted id.
	ErrForbidden = errors.New("operation not permitted for principal")

	// ErrMissingField indicates a required payload field was absent or empty.
	ErrMissingField = errors.New("required field missing")

	// ErrEmptyResult indicates a list operation found nothing.
	ErrEmptyResult = errors.New("no entities found")

	// ErrInvalidCredentials indicates an unknown username or a wrong password.
	// Both cases share one error so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// OutcomeError is an expected, client-visible failure of a controller
// operation. Status is the HTTP status code; the message shown to clients is
// looked up in the catalog with (Op, Status).
type OutcomeError struct {
	Op     catalog.Operation
	Status int
	Err    error
}

// Error implements the error interface for OutcomeError.
func (e *OutcomeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed with status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s failed with status %d", e.Op, e.Status)
}

// Unwrap returns the cause.
func (e *OutcomeError) Unwrap() error {
	return e.Err
}

// Message returns the catalog message for the outcome.
func (e *OutcomeError) Message() string {
	return catalog.Message(e.Op, e.Status)
}

// NewOutcomeError creates an OutcomeError.
func NewOutcomeError(op catalog.Operation, status int, err error) *OutcomeError {
	return &OutcomeError{Op: op, Status: status, Err: err}
}

// AsOutcome extracts an OutcomeError from err's chain.
func AsOutcome(err error) (*OutcomeError, bool) {
	var oe *OutcomeError
	if errors.As(err, &oe) {
		return oe, true
	}
	return nil, false
}

func forbidden(op catalog.Operation) error {
	return NewOutcomeError(op, http.StatusForbidden, ErrForbidden)
}

func notFound(op catalog.Operation, err error) error {
	return NewOutcomeError(op, http.StatusNotFound, err)
}

func badRequest(op catalog.Operation, err error) error {
	return NewOutcomeError(op, http.StatusBadRequest, err)
}

func unprocessable(op catalog.Operation, err error) error {
	return NewOutcomeError(op, http.StatusUnprocessableEntity, err)
}
