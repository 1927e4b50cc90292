package domain

import (
	"errors"
	"fmt"
)

// Common validation errors for Solution
var (
	ErrEmptySolutionQuestionID = errors.New("solution question ID cannot be empty")
	ErrEmptyStudent            = errors.New("solution student cannot be empty")
	ErrEmptyQuestionTitle      = errors.New("solution question title cannot be empty")
	ErrEmptyProposedSolution   = errors.New("proposed solution cannot be empty")
)

// Solution is a student's proposed answer to a question. QuestionTitle is a
// denormalized copy of the question text at the time of answering.
type Solution struct {
	ID               int64  `json:"id"`
	QuestionID       int64  `json:"questionId"`
	Student          string `json:"student"`
	QuestionTitle    string `json:"questionTitle"`
	ProposedSolution string `json:"proposedSolution"`
}

// NewSolution creates a solution for the given question.
func NewSolution(questionID int64, student, questionTitle, proposed string) (*Solution, error) {
	s := &Solution{
		QuestionID:       questionID,
		Student:          student,
		QuestionTitle:    questionTitle,
		ProposedSolution: proposed,
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks if the Solution has valid data.
func (s *Solution) Validate() error {
	switch {
	case s.QuestionID <= 0:
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptySolutionQuestionID)
	case s.Student == "":
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyStudent)
	case s.QuestionTitle == "":
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyQuestionTitle)
	case s.ProposedSolution == "":
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyProposedSolution)
	}
	return nil
}
