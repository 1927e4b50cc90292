package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/service/auth"
	"github.com/tdw-edu/questions-api/internal/store"
)

// ErrSolutionValueTaken indicates an updated solution field collides with a
// value already stored in some solution.
var ErrSolutionValueTaken = errors.New("solution field value already exists")

// SolutionService manages solutions. Listing is open to every authenticated
// principal.
type SolutionService interface {
	List(ctx context.Context, p auth.Principal) ([]*domain.Solution, error)
	Get(ctx context.Context, p auth.Principal, id int64) (*domain.Solution, error)
	Create(ctx context.Context, p auth.Principal, in SolutionPayload) (*domain.Solution, error)
	Update(ctx context.Context, p auth.Principal, id int64, in SolutionPayload) (*domain.Solution, error)
	Delete(ctx context.Context, p auth.Principal, id int64) error
}

// SolutionServiceImpl implements SolutionService.
type SolutionServiceImpl struct {
	solutionStore store.SolutionStore
	questionStore store.QuestionStore
	logger        *slog.Logger
}

// NewSolutionService creates a new SolutionService.
func NewSolutionService(
	solutionStore store.SolutionStore,
	questionStore store.QuestionStore,
	logger *slog.Logger,
) SolutionService {
	return &SolutionServiceImpl{
		solutionStore: solutionStore,
		questionStore: questionStore,
		logger:        componentLogger(logger, "solution_service"),
	}
}

// List implements SolutionService.List.
func (s *SolutionServiceImpl) List(ctx context.Context, _ auth.Principal) ([]*domain.Solution, error) {
	const op = catalog.OpListSolutions

	solutions, err := s.solutionStore.List(ctx)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}
	if len(solutions) == 0 {
		return nil, notFound(op, ErrEmptyResult)
	}
	return solutions, nil
}

// Get implements SolutionService.Get.
func (s *SolutionServiceImpl) Get(ctx context.Context, p auth.Principal, id int64) (*domain.Solution, error) {
	const op = catalog.OpGetSolution
	if err := requireAccess(p, id, op); err != nil {
		return nil, err
	}

	sol, err := s.solutionStore.GetByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}
	return sol, nil
}

// Create implements SolutionService.Create. The question must exist; field
// values are not checked for uniqueness here.
func (s *SolutionServiceImpl) Create(
	ctx context.Context,
	p auth.Principal,
	in SolutionPayload,
) (*domain.Solution, error) {
	const op = catalog.OpCreateSolution
	if err := requireAdmin(p, op); err != nil {
		return nil, err
	}
	if err := requireFields(in); err != nil {
		return nil, unprocessable(op, err)
	}

	if _, err := s.questionStore.GetByID(ctx, *in.QuestionID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, badRequest(op, err)
		}
		return nil, storeFailure(s.logger, op, err)
	}

	sol, err := domain.NewSolution(*in.QuestionID, *in.Student, *in.QuestionTitle, *in.ProposedSolution)
	if err != nil {
		return nil, unprocessable(op, err)
	}

	if err := s.solutionStore.Create(ctx, sol); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return nil, badRequest(op, err)
		}
		return nil, storeFailure(s.logger, op, err)
	}

	s.logger.Info("solution created", "solution_id", sol.ID, "question_id", sol.QuestionID)
	return sol, nil
}

// Update implements SolutionService.Update. Each present text field is
// rejected when any stored solution already holds that exact value.
func (s *SolutionServiceImpl) Update(
	ctx context.Context,
	p auth.Principal,
	id int64,
	in SolutionPayload,
) (*domain.Solution, error) {
	const op = catalog.OpUpdateSolution
	if err := requireAccess(p, id, op); err != nil {
		return nil, err
	}

	sol, err := s.solutionStore.GetByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}

	if err := rejectBlank(in.Student, in.QuestionTitle, in.ProposedSolution); err != nil {
		return nil, unprocessable(op, err)
	}

	fields := []struct {
		field store.SolutionField
		value *string
		dst   *string
	}{
		{store.SolutionStudent, in.Student, &sol.Student},
		{store.SolutionQuestionTitle, in.QuestionTitle, &sol.QuestionTitle},
		{store.SolutionProposedSolution, in.ProposedSolution, &sol.ProposedSolution},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		taken, err := s.solutionStore.ExistsByField(ctx, f.field, *f.value)
		if err != nil {
			return nil, storeFailure(s.logger, op, err)
		}
		if taken {
			return nil, badRequest(op, fmt.Errorf("%w: %s", ErrSolutionValueTaken, f.field))
		}
		*f.dst = *f.value
	}

	if err := s.solutionStore.Update(ctx, sol); err != nil {
		return nil, storeFailure(s.logger, op, err)
	}

	s.logger.Info("solution updated", "solution_id", id)
	return sol, nil
}

// Delete implements SolutionService.Delete. Rationales of the solution are
// removed with it.
func (s *SolutionServiceImpl) Delete(ctx context.Context, p auth.Principal, id int64) error {
	const op = catalog.OpDeleteSolution
	if err := requireAccess(p, id, op); err != nil {
		return err
	}

	if err := s.solutionStore.Delete(ctx, id); err != nil {
		return storeFailure(s.logger, op, err)
	}

	s.logger.Info("solution deleted", "solution_id", id)
	return nil
}
