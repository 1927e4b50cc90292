package domain

import (
	"errors"
	"fmt"
)

// QuestionState is the open/closed flag of a question.
type QuestionState string

// Possible question states
const (
	QuestionOpen   QuestionState = "open"
	QuestionClosed QuestionState = "closed"
)

// ErrInvalidQuestionState is returned for a state other than open or closed.
var ErrInvalidQuestionState = errors.New("invalid question state")

// Question is a statement authored by a teacher and grouped into categories.
//
// Available and State are two independent fields. Operations that change
// Available are expected to call Open or Close accordingly; the entity
// itself does not keep them in sync.
type Question struct {
	ID          int64         `json:"id"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	CreatorID   *int64        `json:"creator"`
	State       QuestionState `json:"state"`
	Categories  []int64       `json:"categories"`
}

// NewQuestion creates a closed question. When creator is non-nil it must be
// a teacher.
func NewQuestion(description string, creator *User, available bool) (*Question, error) {
	q := &Question{
		Description: description,
		Available:   available,
		State:       QuestionClosed,
		Categories:  []int64{},
	}

	if creator != nil {
		if err := q.SetCreator(creator); err != nil {
			return nil, err
		}
	}

	return q, nil
}

// SetCreator assigns the question's creator. It fails without modifying the
// question when the user is not a teacher.
func (q *Question) SetCreator(creator *User) error {
	if creator == nil {
		return ErrNilCreator
	}
	if !creator.IsTeacher {
		return ErrCreatorNotTeacher
	}

	id := creator.ID
	q.CreatorID = &id
	return nil
}

// Open marks the question as open.
func (q *Question) Open() {
	q.State = QuestionOpen
}

// Close marks the question as closed.
func (q *Question) Close() {
	q.State = QuestionClosed
}

// SetState opens the question when open is true and closes it otherwise.
func (q *Question) SetState(open bool) {
	if open {
		q.Open()
		return
	}
	q.Close()
}

// IsOpen reports whether the question is open.
func (q *Question) IsOpen() bool {
	return q.State == QuestionOpen
}

// Validate checks if the Question has valid data.
func (q *Question) Validate() error {
	if !IsValidQuestionState(q.State) {
		return fmt.Errorf("%w: %w: %q", ErrValidation, ErrInvalidQuestionState, q.State)
	}
	return nil
}

// IsValidQuestionState checks if the given state is a valid QuestionState.
func IsValidQuestionState(state QuestionState) bool {
	switch state {
	case QuestionOpen, QuestionClosed:
		return true
	default:
		return false
	}
}
