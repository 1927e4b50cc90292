package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/store"
)

// RationaleStore implements store.RationaleStore.
type RationaleStore struct {
	base
}

// NewRationaleStore creates a RationaleStore. If logger is nil, slog.Default() is used.
func NewRationaleStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *RationaleStore {
	return &RationaleStore{base: newBase(db, dialect, logger, "rationale_store")}
}

var _ store.RationaleStore = (*RationaleStore)(nil)

func scanRationale(row rowScanner) (*domain.Rationale, error) {
	var r domain.Rationale
	if err := row.Scan(&r.ID, &r.SolutionID, &r.Title, &r.Justify); err != nil {
		return nil, err
	}
	return &r, nil
}

// List implements store.RationaleStore.List.
func (s *RationaleStore) List(ctx context.Context) ([]*domain.Rationale, error) {
	rows, err := s.query(ctx, `SELECT id, solution_id, title, justify FROM rationales ORDER BY id`)
	if err != nil {
		s.log(ctx).Error("failed to list rationales", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	rationales := []*domain.Rationale{}
	for rows.Next() {
		r, err := scanRationale(rows)
		if err != nil {
			return nil, MapError(err)
		}
		rationales = append(rationales, r)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return rationales, nil
}

// GetByID implements store.RationaleStore.GetByID.
func (s *RationaleStore) GetByID(ctx context.Context, id int64) (*domain.Rationale, error) {
	r, err := scanRationale(s.queryRow(ctx,
		`SELECT id, solution_id, title, justify FROM rationales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrRationaleNotFound
		}
		s.log(ctx).Error("failed to get rationale", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return r, nil
}

// Create implements store.RationaleStore.Create.
func (s *RationaleStore) Create(ctx context.Context, rationale *domain.Rationale) error {
	if err := rationale.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	err := s.queryRow(ctx, `
		INSERT INTO rationales (solution_id, title, justify)
		VALUES ($1, $2, $3)
		RETURNING id
	`, rationale.SolutionID, rationale.Title, rationale.Justify).Scan(&rationale.ID)
	if err != nil {
		s.log(ctx).Error("failed to create rationale",
			slog.Int64("solution_id", rationale.SolutionID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	s.log(ctx).Info("rationale created", slog.Int64("rationale_id", rationale.ID))
	return nil
}

// Update implements store.RationaleStore.Update. A dangling solution id is
// rejected by the foreign key and reported as store.ErrInvalidReference.
func (s *RationaleStore) Update(ctx context.Context, rationale *domain.Rationale) error {
	result, err := s.exec(ctx, `
		UPDATE rationales SET solution_id = $1, title = $2, justify = $3 WHERE id = $4
	`, rationale.SolutionID, rationale.Title, rationale.Justify, rationale.ID)
	if err != nil {
		s.log(ctx).Warn("failed to update rationale", slog.String("error", err.Error()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrRationaleNotFound)
}

// Delete implements store.RationaleStore.Delete.
func (s *RationaleStore) Delete(ctx context.Context, id int64) error {
	result, err := s.exec(ctx, `DELETE FROM rationales WHERE id = $1`, id)
	if err != nil {
		s.log(ctx).Error("failed to delete rationale", slog.String("error", err.Error()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrRationaleNotFound)
}
