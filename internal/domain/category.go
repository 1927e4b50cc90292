package domain

import "slices"

// Category groups questions. The relation is many-to-many.
type Category struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	Questions   []int64 `json:"questions"`
}

// NewCategory creates a category without questions.
func NewCategory(description string, available bool) *Category {
	return &Category{
		Description: description,
		Available:   available,
		Questions:   []int64{},
	}
}

// ContainsQuestion reports whether the question id is linked to the category.
func (c *Category) ContainsQuestion(questionID int64) bool {
	return slices.Contains(c.Questions, questionID)
}
