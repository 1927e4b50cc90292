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

const questionColumns = `id, description, available, creator_id, state`

// QuestionStore implements store.QuestionStore.
type QuestionStore struct {
	base
}

// NewQuestionStore creates a QuestionStore. If logger is nil, slog.Default() is used.
func NewQuestionStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *QuestionStore {
	return &QuestionStore{base: newBase(db, dialect, logger, "question_store")}
}

var _ store.QuestionStore = (*QuestionStore)(nil)

func scanQuestion(row rowScanner) (*domain.Question, error) {
	var (
		q           domain.Question
		description sql.NullString
		creator     sql.NullInt64
		state       string
	)
	if err := row.Scan(&q.ID, &description, &q.Available, &creator, &state); err != nil {
		return nil, err
	}
	q.Description = description.String
	if creator.Valid {
		id := creator.Int64
		q.CreatorID = &id
	}
	q.State = domain.QuestionState(state)
	q.Categories = []int64{}
	return &q, nil
}

// List implements store.QuestionStore.List.
func (s *QuestionStore) List(ctx context.Context) ([]*domain.Question, error) {
	log := s.log(ctx)

	rows, err := s.query(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
	if err != nil {
		log.Error("failed to list questions", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	questions := []*domain.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, MapError(err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	links, err := s.groupedIDs(ctx,
		`SELECT question_id, category_id FROM category_questions ORDER BY category_id`)
	if err != nil {
		log.Error("failed to load question categories", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	for _, q := range questions {
		q.Categories = orEmpty(links[q.ID])
	}

	return questions, nil
}

// GetByID implements store.QuestionStore.GetByID.
func (s *QuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	q, err := scanQuestion(s.queryRow(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log(ctx).Debug("question not found", slog.Int64("question_id", id))
			return nil, store.ErrQuestionNotFound
		}
		s.log(ctx).Error("failed to get question", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	q.Categories, err = s.ids(ctx,
		`SELECT category_id FROM category_questions WHERE question_id = $1 ORDER BY category_id`, id)
	if err != nil {
		return nil, MapError(err)
	}
	return q, nil
}

// Create implements store.QuestionStore.Create.
func (s *QuestionStore) Create(ctx context.Context, question *domain.Question) error {
	log := s.log(ctx)

	if err := question.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	err := s.queryRow(ctx, `
		INSERT INTO questions (description, available, creator_id, state)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		nullString(question.Description),
		question.Available,
		nullInt64(question.CreatorID),
		string(question.State),
	).Scan(&question.ID)
	if err != nil {
		log.Error("failed to create question", slog.String("error", err.Error()))
		return MapError(err)
	}

	if question.Categories == nil {
		question.Categories = []int64{}
	}
	log.Info("question created",
		slog.Int64("question_id", question.ID),
		slog.String("state", string(question.State)))
	return nil
}

// Update implements store.QuestionStore.Update.
func (s *QuestionStore) Update(ctx context.Context, question *domain.Question) error {
	log := s.log(ctx)

	if err := question.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	result, err := s.exec(ctx, `
		UPDATE questions
		SET description = $1, available = $2, creator_id = $3, state = $4
		WHERE id = $5
	`,
		nullString(question.Description),
		question.Available,
		nullInt64(question.CreatorID),
		string(question.State),
		question.ID,
	)
	if err != nil {
		log.Error("failed to update question", slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrQuestionNotFound); err != nil {
		return err
	}

	log.Info("question updated", slog.Int64("question_id", question.ID))
	return nil
}

// Delete implements store.QuestionStore.Delete. Solutions, their rationales
// and category links go with it through ON DELETE CASCADE.
func (s *QuestionStore) Delete(ctx context.Context, id int64) error {
	result, err := s.exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		s.log(ctx).Error("failed to delete question", slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrQuestionNotFound); err != nil {
		return err
	}

	s.log(ctx).Info("question deleted", slog.Int64("question_id", id))
	return nil
}
