package service

import (
	"github.com/go-playground/validator/v10"
)

// Payloads are optional-field structs: a nil member means the field was not
// sent, which is distinct from a present zero value. The `validate` tags
// describe what a create requires; updates apply whatever is present, except
// that text fields which must be non-empty cannot be blanked.

// UserPayload carries the writable fields of a user.
type UserPayload struct {
	Username  *string `json:"username"  validate:"required,min=1"`
	Email     *string `json:"email"     validate:"required,min=1"`
	Password  *string `json:"password"  validate:"required,min=1"`
	Enabled   *bool   `json:"enabled"`
	IsTeacher *bool   `json:"isTeacher"`
	IsAdmin   *bool   `json:"isAdmin"`
}

// QuestionPayload carries the writable fields of a question. Creator is the
// id of the authoring user.
type QuestionPayload struct {
	Description *string `json:"description" validate:"required"`
	Available   *bool   `json:"available"   validate:"required"`
	Creator     *int64  `json:"creator"     validate:"required"`
}

// CategoryPayload carries the writable fields of a category.
type CategoryPayload struct {
	Description *string `json:"description" validate:"required"`
	Available   *bool   `json:"available"   validate:"required"`
}

// SolutionPayload carries the writable fields of a solution.
type SolutionPayload struct {
	QuestionID       *int64  `json:"questionId"       validate:"required"`
	Student          *string `json:"student"          validate:"required,min=1"`
	QuestionTitle    *string `json:"questionTitle"    validate:"required,min=1"`
	ProposedSolution *string `json:"proposedSolution" validate:"required,min=1"`
}

// RationalePayload carries the writable fields of a rationale.
type RationalePayload struct {
	SolutionID *int64  `json:"solutionId" validate:"required"`
	Title      *string `json:"title"      validate:"required,min=1"`
	Justify    *bool   `json:"justify"    validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// rejectBlank fails when any present field is the empty string. Updates use
// it for fields that must stay non-empty once stored.
func rejectBlank(fields ...*string) error {
	for _, f := range fields {
		if f != nil && *f == "" {
			return ErrMissingField
		}
	}
	return nil
}

// requireFields validates a create payload against its tags.
func requireFields(payload any) error {
	if err := validate.Struct(payload); err != nil {
		return ErrMissingField
	}
	return nil
}
