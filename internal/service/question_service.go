package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/service/auth"
	"github.com/tdw-edu/questions-api/internal/store"
)

// QuestionService manages questions.
type QuestionService interface {
	List(ctx context.Context, p auth.Principal) ([]*domain.Question, error)
	Get(ctx context.Context, p auth.Principal, id int64) (*domain.Question, error)
	Create(ctx context.Context, p auth.Principal, in QuestionPayload) (*domain.Question, error)
	Update(ctx context.Context, p auth.Principal, id int64, in QuestionPayload) (*domain.Question, error)
	Delete(ctx context.Context, p auth.Principal, id int64) error
}

// QuestionServiceImpl implements QuestionService.
type QuestionServiceImpl struct {
	questionStore store.QuestionStore
	userStore     store.UserStore
	logger        *slog.Logger
}

// NewQuestionService creates a new QuestionService. The user store resolves
// question creators.
func NewQuestionService(
	questionStore store.QuestionStore,
	userStore store.UserStore,
	logger *slog.Logger,
) QuestionService {
	return &QuestionServiceImpl{
		questionStore: questionStore,
		userStore:     userStore,
		logger:        componentLogger(logger, "question_service"),
	}
}

// List implements QuestionService.List.
func (s *QuestionServiceImpl) List(ctx context.Context, p auth.Principal) ([]*domain.Question, error) {
	const op = catalog.OpListQuestions
	if err := requireAdmin(p, op); err != nil {
		return nil, err
	}

	questions, err := s.questionStore.List(ctx)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}
	if len(questions) == 0 {
		return nil, notFound(op, ErrEmptyResult)
	}
	return questions, nil
}

// Get implements QuestionService.Get.
func (s *QuestionServiceImpl) Get(ctx context.Context, p auth.Principal, id int64) (*domain.Question, error) {
	const op = catalog.OpGetQuestion
	if err := requireAccess(p, id, op); err != nil {
		return nil, err
	}

	q, err := s.questionStore.GetByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}
	return q, nil
}

// Create implements QuestionService.Create. The creator must exist and be a
// teacher; the state follows the availability flag.
func (s *QuestionServiceImpl) Create(
	ctx context.Context,
	p auth.Principal,
	in QuestionPayload,
) (*domain.Question, error) {
	const op = catalog.OpCreateQuestion
	if err := requireAdmin(p, op); err != nil {
		return nil, err
	}
	if err := requireFields(in); err != nil {
		return nil, unprocessable(op, err)
	}

	q, err := domain.NewQuestion(*in.Description, nil, *in.Available)
	if err != nil {
		return nil, unprocessable(op, err)
	}
	if err := s.assignCreator(ctx, op, q, *in.Creator); err != nil {
		return nil, err
	}
	q.SetState(q.Available)

	if err := s.questionStore.Create(ctx, q); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			// creator deleted between lookup and insert
			return nil, notFound(op, err)
		}
		return nil, storeFailure(s.logger, op, err)
	}

	s.logger.Info("question created", "question_id", q.ID, "creator_id", *in.Creator)
	return q, nil
}

// Update implements QuestionService.Update. An empty description is ignored;
// a present availability flag also sets the state.
func (s *QuestionServiceImpl) Update(
	ctx context.Context,
	p auth.Principal,
	id int64,
	in QuestionPayload,
) (*domain.Question, error) {
	const op = catalog.OpUpdateQuestion
	if err := requireAccess(p, id, op); err != nil {
		return nil, err
	}

	q, err := s.questionStore.GetByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}

	if in.Description != nil && *in.Description != "" {
		q.Description = *in.Description
	}
	if in.Available != nil {
		q.Available = *in.Available
		q.SetState(*in.Available)
	}
	if in.Creator != nil {
		if err := s.assignCreator(ctx, op, q, *in.Creator); err != nil {
			return nil, err
		}
	}

	if err := s.questionStore.Update(ctx, q); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return nil, notFound(op, err)
		}
		return nil, storeFailure(s.logger, op, err)
	}

	s.logger.Info("question updated", "question_id", id)
	return q, nil
}

// Delete implements QuestionService.Delete. Solutions of the question, their
// rationales and the category links go with it.
func (s *QuestionServiceImpl) Delete(ctx context.Context, p auth.Principal, id int64) error {
	const op = catalog.OpDeleteQuestion
	if err := requireAccess(p, id, op); err != nil {
		return err
	}

	if err := s.questionStore.Delete(ctx, id); err != nil {
		return storeFailure(s.logger, op, err)
	}

	s.logger.Info("question deleted", "question_id", id)
	return nil
}

// assignCreator resolves the user and sets it as creator of q. An unknown
// user is 404, a non-teacher is 403.
func (s *QuestionServiceImpl) assignCreator(
	ctx context.Context,
	op catalog.Operation,
	q *domain.Question,
	userID int64,
) error {
	creator, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return storeFailure(s.logger, op, err)
	}

	if err := q.SetCreator(creator); err != nil {
		s.logger.Debug("rejected question creator", "user_id", userID, "error", err)
		return NewOutcomeError(op, http.StatusForbidden, err)
	}
	return nil
}
