package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/store"
)

// CategoryStore implements store.CategoryStore.
type CategoryStore struct {
	base
}

// NewCategoryStore creates a CategoryStore. If logger is nil, slog.Default() is used.
func NewCategoryStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *CategoryStore {
	return &CategoryStore{base: newBase(db, dialect, logger, "category_store")}
}

var _ store.CategoryStore = (*CategoryStore)(nil)

func scanCategory(row rowScanner) (*domain.Category, error) {
	var (
		c           domain.Category
		description sql.NullString
	)
	if err := row.Scan(&c.ID, &description, &c.Available); err != nil {
		return nil, err
	}
	c.Description = description.String
	c.Questions = []int64{}
	return &c, nil
}

// List implements store.CategoryStore.List.
func (s *CategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := s.query(ctx, `SELECT id, description, available FROM categories ORDER BY id`)
	if err != nil {
		s.log(ctx).Error("failed to list categories", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	categories := []*domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, MapError(err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	links, err := s.groupedIDs(ctx,
		`SELECT category_id, question_id FROM category_questions ORDER BY question_id`)
	if err != nil {
		return nil, MapError(err)
	}
	for _, c := range categories {
		c.Questions = orEmpty(links[c.ID])
	}
	return categories, nil
}

// GetByID implements store.CategoryStore.GetByID.
func (s *CategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := scanCategory(s.queryRow(ctx,
		`SELECT id, description, available FROM categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCategoryNotFound
		}
		s.log(ctx).Error("failed to get category", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	c.Questions, err = s.ids(ctx,
		`SELECT question_id FROM category_questions WHERE category_id = $1 ORDER BY question_id`, id)
	if err != nil {
		return nil, MapError(err)
	}
	return c, nil
}

// Create implements store.CategoryStore.Create.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	err := s.queryRow(ctx, `
		INSERT INTO categories (description, available)
		VALUES ($1, $2)
		RETURNING id
	`, nullString(category.Description), category.Available).Scan(&category.ID)
	if err != nil {
		s.log(ctx).Error("failed to create category", slog.String("error", err.Error()))
		return MapError(err)
	}
	if category.Questions == nil {
		category.Questions = []int64{}
	}

	s.log(ctx).Info("category created", slog.Int64("category_id", category.ID))
	return nil
}

// Update implements store.CategoryStore.Update.
func (s *CategoryStore) Update(ctx context.Context, category *domain.Category) error {
	result, err := s.exec(ctx, `
		UPDATE categories SET description = $1, available = $2 WHERE id = $3
	`, nullString(category.Description), category.Available, category.ID)
	if err != nil {
		s.log(ctx).Error("failed to update category", slog.String("error", err.Error()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

// Delete implements store.CategoryStore.Delete.
func (s *CategoryStore) Delete(ctx context.Context, id int64) error {
	result, err := s.exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		s.log(ctx).Error("failed to delete category", slog.String("error", err.Error()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

// AddQuestion implements store.CategoryStore.AddQuestion.
func (s *CategoryStore) AddQuestion(ctx context.Context, categoryID, questionID int64) error {
	_, err := s.exec(ctx, `
		INSERT INTO category_questions (category_id, question_id)
		VALUES ($1, $2)
		ON CONFLICT (category_id, question_id) DO NOTHING
	`, categoryID, questionID)
	if err != nil {
		s.log(ctx).Warn("failed to link question",
			slog.Int64("category_id", categoryID),
			slog.Int64("question_id", questionID),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	return nil
}

// RemoveQuestion implements store.CategoryStore.RemoveQuestion.
func (s *CategoryStore) RemoveQuestion(ctx context.Context, categoryID, questionID int64) error {
	_, err := s.exec(ctx,
		`DELETE FROM category_questions WHERE category_id = $1 AND question_id = $2`,
		categoryID, questionID)
	return MapError(err)
}
