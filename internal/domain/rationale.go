package domain

import (
	"errors"
	"fmt"
)

// Common validation errors for Rationale
var (
	ErrEmptyRationaleSolutionID = errors.New("rationale solution ID cannot be empty")
	ErrEmptyRationaleTitle      = errors.New("rationale title cannot be empty")
)

// Rationale is the reasoning attached to a solution; Justify marks whether
// the reasoning holds.
type Rationale struct {
	ID         int64  `json:"id"`
	SolutionID int64  `json:"solutionId"`
	Title      string `json:"title"`
	Justify    bool   `json:"justify"`
}

// NewRationale creates a rationale for the given solution.
func NewRationale(solutionID int64, title string, justify bool) (*Rationale, error) {
	r := &Rationale{
		SolutionID: solutionID,
		Title:      title,
		Justify:    justify,
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks if the Rationale has valid data.
func (r *Rationale) Validate() error {
	if r.SolutionID <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyRationaleSolutionID)
	}
	if r.Title == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyRationaleTitle)
	}
	return nil
}
