package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/store"
)

// QuestionStore is a mock of store.QuestionStore for use with testify/mock.
type QuestionStore struct {
	mock.Mock
}

var _ store.QuestionStore = (*QuestionStore)(nil)

// List is a mock implementation of store.QuestionStore.List
func (m *QuestionStore) List(ctx context.Context) ([]*domain.Question, error) {
	args := m.Called(ctx)
	if questions, ok := args.Get(0).([]*domain.Question); ok {
		return questions, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.QuestionStore.GetByID
func (m *QuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if q, ok := args.Get(0).(*domain.Question); ok {
		return q, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.QuestionStore.Create
func (m *QuestionStore) Create(ctx context.Context, question *domain.Question) error {
	return m.Called(ctx, question).Error(0)
}

// Update is a mock implementation of store.QuestionStore.Update
func (m *QuestionStore) Update(ctx context.Context, question *domain.Question) error {
	return m.Called(ctx, question).Error(0)
}

// Delete is a mock implementation of store.QuestionStore.Delete
func (m *QuestionStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
