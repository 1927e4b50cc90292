package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/service/auth"
	"github.com/tdw-edu/questions-api/internal/store"
)

// CategoryService manages categories and their question links.
type CategoryService interface {
	List(ctx context.Context, p auth.Principal) ([]*domain.Category, error)
	Get(ctx context.Context, p auth.Principal, id int64) (*domain.Category, error)
	Create(ctx context.Context, p auth.Principal, in CategoryPayload) (*domain.Category, error)
	Update(ctx context.Context, p auth.Principal, id int64, in CategoryPayload) (*domain.Category, error)
	Delete(ctx context.Context, p auth.Principal, id int64) error

	// LinkQuestion adds the question to the category and returns the
	// updated category. Linking twice is a no-op.
	LinkQuestion(ctx context.Context, p auth.Principal, id, questionID int64) (*domain.Category, error)

	// UnlinkQuestion removes the question from the category and returns the
	// updated category.
	UnlinkQuestion(ctx context.Context, p auth.Principal, id, questionID int64) (*domain.Category, error)
}

// CategoryServiceImpl implements CategoryService.
type CategoryServiceImpl struct {
	categoryStore store.CategoryStore
	questionStore store.QuestionStore
	logger        *slog.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(
	categoryStore store.CategoryStore,
	questionStore store.QuestionStore,
	logger *slog.Logger,
) CategoryService {
	return &CategoryServiceImpl{
		categoryStore: categoryStore,
		questionStore: questionStore,
		logger:        componentLogger(logger, "category_service"),
	}
}

// List implements CategoryService.List.
func (s *CategoryServiceImpl) List(ctx context.Context, p auth.Principal) ([]*domain.Category, error) {
	const op = catalog.OpListCategories
	if err := requireAdmin(p, op); err != nil {
		return nil, err
	}

	categories, err := s.categoryStore.List(ctx)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}
	if len(categories) == 0 {
		return nil, notFound(op, ErrEmptyResult)
	}
	return categories, nil
}

// Get implements CategoryService.Get.
func (s *CategoryServiceImpl) Get(ctx context.Context, p auth.Principal, id int64) (*domain.Category, error) {
	const op = catalog.OpGetCategory
	if err := requireAccess(p, id, op); err != nil {
		return nil, err
	}

	c, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}
	return c, nil
}

// Create implements CategoryService.Create. Descriptions are not required to
// be unique.
func (s *CategoryServiceImpl) Create(
	ctx context.Context,
	p auth.Principal,
	in CategoryPayload,
) (*domain.Category, error) {
	const op = catalog.OpCreateCategory
	if err := requireAdmin(p, op); err != nil {
		return nil, err
	}
	if err := requireFields(in); err != nil {
		return nil, unprocessable(op, err)
	}

	c := domain.NewCategory(*in.Description, *in.Available)
	if err := s.categoryStore.Create(ctx, c); err != nil {
		return nil, storeFailure(s.logger, op, err)
	}

	s.logger.Info("category created", "category_id", c.ID)
	return c, nil
}

// Update implements CategoryService.Update.
func (s *CategoryServiceImpl) Update(
	ctx context.Context,
	p auth.Principal,
	id int64,
	in CategoryPayload,
) (*domain.Category, error) {
	const op = catalog.OpUpdateCategory
	if err := requireAccess(p, id, op); err != nil {
		return nil, err
	}

	c, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}

	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Available != nil {
		c.Available = *in.Available
	}

	if err := s.categoryStore.Update(ctx, c); err != nil {
		return nil, storeFailure(s.logger, op, err)
	}

	s.logger.Info("category updated", "category_id", id)
	return c, nil
}

// Delete implements CategoryService.Delete.
func (s *CategoryServiceImpl) Delete(ctx context.Context, p auth.Principal, id int64) error {
	const op = catalog.OpDeleteCategory
	if err := requireAccess(p, id, op); err != nil {
		return err
	}

	if err := s.categoryStore.Delete(ctx, id); err != nil {
		return storeFailure(s.logger, op, err)
	}

	s.logger.Info("category deleted", "category_id", id)
	return nil
}

// LinkQuestion implements CategoryService.LinkQuestion.
func (s *CategoryServiceImpl) LinkQuestion(
	ctx context.Context,
	p auth.Principal,
	id, questionID int64,
) (*domain.Category, error) {
	return s.relink(ctx, p, catalog.OpLinkQuestion, id, questionID, s.categoryStore.AddQuestion)
}

// UnlinkQuestion implements CategoryService.UnlinkQuestion.
func (s *CategoryServiceImpl) UnlinkQuestion(
	ctx context.Context,
	p auth.Principal,
	id, questionID int64,
) (*domain.Category, error) {
	return s.relink(ctx, p, catalog.OpUnlinkQuestion, id, questionID, s.categoryStore.RemoveQuestion)
}

// relink checks access, the category (404) and the question (400), applies
// change and reloads the category.
func (s *CategoryServiceImpl) relink(
	ctx context.Context,
	p auth.Principal,
	op catalog.Operation,
	id, questionID int64,
	change func(ctx context.Context, categoryID, questionID int64) error,
) (*domain.Category, error) {
	if err := requireAccess(p, id, op); err != nil {
		return nil, err
	}

	if _, err := s.categoryStore.GetByID(ctx, id); err != nil {
		return nil, storeFailure(s.logger, op, err)
	}

	if _, err := s.questionStore.GetByID(ctx, questionID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, badRequest(op, err)
		}
		return nil, storeFailure(s.logger, op, err)
	}

	if err := change(ctx, id, questionID); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return nil, badRequest(op, err)
		}
		return nil, storeFailure(s.logger, op, err)
	}

	c, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}

	s.logger.Info("category questions changed",
		"operation", string(op),
		"category_id", id,
		"question_id", questionID)
	return c, nil
}
