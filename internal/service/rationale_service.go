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

// RationaleService manages solution rationales.
type RationaleService interface {
	List(ctx context.Context, p auth.Principal) ([]*domain.Rationale, error)
	Get(ctx context.Context, p auth.Principal, id int64) (*domain.Rationale, error)
	Create(ctx context.Context, p auth.Principal, in RationalePayload) (*domain.Rationale, error)
	Update(ctx context.Context, p auth.Principal, id int64, in RationalePayload) (*domain.Rationale, error)
	Delete(ctx context.Context, p auth.Principal, id int64) error
}

// RationaleServiceImpl implements RationaleService.
type RationaleServiceImpl struct {
	rationaleStore store.RationaleStore
	solutionStore  store.SolutionStore
	logger         *slog.Logger
}

// NewRationaleService creates a new RationaleService.
func NewRationaleService(
	rationaleStore store.RationaleStore,
	solutionStore store.SolutionStore,
	logger *slog.Logger,
) RationaleService {
	return &RationaleServiceImpl{
		rationaleStore: rationaleStore,
		solutionStore:  solutionStore,
		logger:         componentLogger(logger, "rationale_service"),
	}
}

// List implements RationaleService.List.
func (s *RationaleServiceImpl) List(ctx context.Context, p auth.Principal) ([]*domain.Rationale, error) {
	const op = catalog.OpListRationales
	if err := requireAdmin(p, op); err != nil {
		return nil, err
	}

	rationales, err := s.rationaleStore.List(ctx)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}
	if len(rationales) == 0 {
		return nil, notFound(op, ErrEmptyResult)
	}
	return rationales, nil
}

// Get implements RationaleService.Get.
func (s *RationaleServiceImpl) Get(ctx context.Context, p auth.Principal, id int64) (*domain.Rationale, error) {
	const op = catalog.OpGetRationale
	if err := requireAccess(p, id, op); err != nil {
		return nil, err
	}

	r, err := s.rationaleStore.GetByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}
	return r, nil
}

// Create implements RationaleService.Create. The solution must exist.
func (s *RationaleServiceImpl) Create(
	ctx context.Context,
	p auth.Principal,
	in RationalePayload,
) (*domain.Rationale, error) {
	const op = catalog.OpCreateRationale
	if err := requireAdmin(p, op); err != nil {
		return nil, err
	}
	if err := requireFields(in); err != nil {
		return nil, unprocessable(op, err)
	}

	if _, err := s.solutionStore.GetByID(ctx, *in.SolutionID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, badRequest(op, err)
		}
		return nil, storeFailure(s.logger, op, err)
	}

	r, err := domain.NewRationale(*in.SolutionID, *in.Title, *in.Justify)
	if err != nil {
		return nil, unprocessable(op, err)
	}

	if err := s.rationaleStore.Create(ctx, r); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return nil, badRequest(op, err)
		}
		return nil, storeFailure(s.logger, op, err)
	}

	s.logger.Info("rationale created", "rationale_id", r.ID, "solution_id", r.SolutionID)
	return r, nil
}

// Update implements RationaleService.Update. A new solution id is not looked
// up; the storage foreign key rejects a dangling one.
func (s *RationaleServiceImpl) Update(
	ctx context.Context,
	p auth.Principal,
	id int64,
	in RationalePayload,
) (*domain.Rationale, error) {
	const op = catalog.OpUpdateRationale
	if err := requireAccess(p, id, op); err != nil {
		return nil, err
	}

	r, err := s.rationaleStore.GetByID(ctx, id)
	if err != nil {
		return nil, storeFailure(s.logger, op, err)
	}

	if err := rejectBlank(in.Title); err != nil {
		return nil, unprocessable(op, err)
	}

	if in.Title != nil {
		r.Title = *in.Title
	}
	if in.Justify != nil {
		r.Justify = *in.Justify
	}
	if in.SolutionID != nil {
		r.SolutionID = *in.SolutionID
	}

	if err := s.rationaleStore.Update(ctx, r); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			return nil, badRequest(op, err)
		}
		return nil, storeFailure(s.logger, op, err)
	}

	s.logger.Info("rationale updated", "rationale_id", id)
	return r, nil
}

// Delete implements RationaleService.Delete.
func (s *RationaleServiceImpl) Delete(ctx context.Context, p auth.Principal, id int64) error {
	const op = catalog.OpDeleteRationale
	if err := requireAccess(p, id, op); err != nil {
		return err
	}

	if err := s.rationaleStore.Delete(ctx, id); err != nil {
		return storeFailure(s.logger, op, err)
	}

	s.logger.Info("rationale deleted", "rationale_id", id)
	return nil
}
