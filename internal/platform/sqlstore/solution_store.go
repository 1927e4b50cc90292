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

const solutionColumns = `id, question_id, student, question_title, proposed_solution`

// existsBySolutionField holds one query per searchable column so the column
// name never comes from caller input.
var existsBySolutionField = map[store.SolutionField]string{
	store.SolutionStudent:          `SELECT EXISTS (SELECT 1 FROM solutions WHERE student = $1)`,
	store.SolutionQuestionTitle:    `SELECT EXISTS (SELECT 1 FROM solutions WHERE question_title = $1)`,
	store.SolutionProposedSolution: `SELECT EXISTS (SELECT 1 FROM solutions WHERE proposed_solution = $1)`,
}

// SolutionStore implements store.SolutionStore.
type SolutionStore struct {
	base
}

// NewSolutionStore creates a SolutionStore. If logger is nil, slog.Default() is used.
func NewSolutionStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *SolutionStore {
	return &SolutionStore{base: newBase(db, dialect, logger, "solution_store")}
}

var _ store.SolutionStore = (*SolutionStore)(nil)

func scanSolution(row rowScanner) (*domain.Solution, error) {
	var s domain.Solution
	if err := row.Scan(&s.ID, &s.QuestionID, &s.Student, &s.QuestionTitle, &s.ProposedSolution); err != nil {
		return nil, err
	}
	return &s, nil
}

// List implements store.SolutionStore.List.
func (s *SolutionStore) List(ctx context.Context) ([]*domain.Solution, error) {
	rows, err := s.query(ctx, `SELECT `+solutionColumns+` FROM solutions ORDER BY id`)
	if err != nil {
		s.log(ctx).Error("failed to list solutions", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	solutions := []*domain.Solution{}
	for rows.Next() {
		sol, err := scanSolution(rows)
		if err != nil {
			return nil, MapError(err)
		}
		solutions = append(solutions, sol)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return solutions, nil
}

// GetByID implements store.SolutionStore.GetByID.
func (s *SolutionStore) GetByID(ctx context.Context, id int64) (*domain.Solution, error) {
	sol, err := scanSolution(s.queryRow(ctx, `SELECT `+solutionColumns+` FROM solutions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSolutionNotFound
		}
		s.log(ctx).Error("failed to get solution", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return sol, nil
}

// ExistsByField implements store.SolutionStore.ExistsByField.
func (s *SolutionStore) ExistsByField(ctx context.Context, field store.SolutionField, value string) (bool, error) {
	query, ok := existsBySolutionField[field]
	if !ok {
		return false, fmt.Errorf("%w: unknown solution field %q", store.ErrInvalidEntity, field)
	}
	found, err := s.exists(ctx, query, value)
	return found, MapError(err)
}

// Create implements store.SolutionStore.Create.
func (s *SolutionStore) Create(ctx context.Context, solution *domain.Solution) error {
	if err := solution.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	err := s.queryRow(ctx, `
		INSERT INTO solutions (question_id, student, question_title, proposed_solution)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		solution.QuestionID,
		solution.Student,
		solution.QuestionTitle,
		solution.ProposedSolution,
	).Scan(&solution.ID)
	if err != nil {
		s.log(ctx).Error("failed to create solution",
			slog.Int64("question_id", solution.QuestionID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	s.log(ctx).Info("solution created", slog.Int64("solution_id", solution.ID))
	return nil
}

// Update implements store.SolutionStore.Update.
func (s *SolutionStore) Update(ctx context.Context, solution *domain.Solution) error {
	result, err := s.exec(ctx, `
		UPDATE solutions
		SET question_id = $1, student = $2, question_title = $3, proposed_solution = $4
		WHERE id = $5
	`,
		solution.QuestionID,
		solution.Student,
		solution.QuestionTitle,
		solution.ProposedSolution,
		solution.ID,
	)
	if err != nil {
		s.log(ctx).Error("failed to update solution", slog.String("error", err.Error()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrSolutionNotFound)
}

// Delete implements store.SolutionStore.Delete.
func (s *SolutionStore) Delete(ctx context.Context, id int64) error {
	result, err := s.exec(ctx, `DELETE FROM solutions WHERE id = $1`, id)
	if err != nil {
		s.log(ctx).Error("failed to delete solution", slog.String("error", err.Error()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrSolutionNotFound)
}
