package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tdw-edu/questions-api/internal/api/shared"
	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/platform/logger"
	"github.com/tdw-edu/questions-api/internal/service"
	"github.com/tdw-edu/questions-api/internal/service/auth"
)

// ResourceService is the controller surface shared by every entity kind:
// T is the entity, P its optional-field payload.
type ResourceService[T, P any] interface {
	List(ctx context.Context, p auth.Principal) ([]*T, error)
	Get(ctx context.Context, p auth.Principal, id int64) (*T, error)
	Create(ctx context.Context, p auth.Principal, in P) (*T, error)
	Update(ctx context.Context, p auth.Principal, id int64, in P) (*T, error)
	Delete(ctx context.Context, p auth.Principal, id int64) error
}

// ResourceHandler serves the collection and item routes of one entity kind.
type ResourceHandler[T, P any] struct {
	svc        ResourceService[T, P]
	collection string // envelope key of list responses
	item       string // envelope key of create responses
	logger     *slog.Logger
}

// NewResourceHandler creates a handler. collection and item are the JSON
// keys wrapping list and create responses.
func NewResourceHandler[T, P any](
	svc ResourceService[T, P],
	collection, item string,
	logger *slog.Logger,
) *ResourceHandler[T, P] {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResourceHandler[T, P]{
		svc:        svc,
		collection: collection,
		item:       item,
		logger:     logger.With(slog.String("component", collection+"_handler")),
	}
}

// NewUserHandler serves /users.
func NewUserHandler(svc service.UserService, logger *slog.Logger) *ResourceHandler[domain.User, service.UserPayload] {
	return NewResourceHandler[domain.User, service.UserPayload](svc, "users", "user", logger)
}

// NewQuestionHandler serves /questions.
func NewQuestionHandler(
	svc service.QuestionService,
	logger *slog.Logger,
) *ResourceHandler[domain.Question, service.QuestionPayload] {
	return NewResourceHandler[domain.Question, service.QuestionPayload](svc, "questions", "question", logger)
}

// NewCategoryHandler serves /categories.
func NewCategoryHandler(
	svc service.CategoryService,
	logger *slog.Logger,
) *ResourceHandler[domain.Category, service.CategoryPayload] {
	return NewResourceHandler[domain.Category, service.CategoryPayload](svc, "categories", "category", logger)
}

// NewSolutionHandler serves /solutions.
func NewSolutionHandler(
	svc service.SolutionService,
	logger *slog.Logger,
) *ResourceHandler[domain.Solution, service.SolutionPayload] {
	return NewResourceHandler[domain.Solution, service.SolutionPayload](svc, "solutions", "solution", logger)
}

// NewRationaleHandler serves /rationales.
func NewRationaleHandler(
	svc service.RationaleService,
	logger *slog.Logger,
) *ResourceHandler[domain.Rationale, service.RationalePayload] {
	return NewResourceHandler[domain.Rationale, service.RationalePayload](svc, "rationales", "rationale", logger)
}

// List handles GET /<collection>.
func (h *ResourceHandler[T, P]) List(w http.ResponseWriter, r *http.Request) {
	p, ok := handlePrincipal(w, r)
	if !ok {
		return
	}

	items, err := h.svc.List(r.Context(), p)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string][]*T{h.collection: items})
}

// Get handles GET /<collection>/{id}.
func (h *ResourceHandler[T, P]) Get(w http.ResponseWriter, r *http.Request) {
	p, id, ok := handlePrincipalAndPathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.svc.Get(r.Context(), p, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// Create handles POST /<collection>.
func (h *ResourceHandler[T, P]) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := handlePrincipal(w, r)
	if !ok {
		return
	}

	var in P
	if !decodePayload(w, r, &in) {
		return
	}

	item, err := h.svc.Create(r.Context(), p, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]*T{h.item: item})
}

// Update handles PUT /<collection>/{id}.
func (h *ResourceHandler[T, P]) Update(w http.ResponseWriter, r *http.Request) {
	p, id, ok := handlePrincipalAndPathID(w, r, "id")
	if !ok {
		return
	}

	var in P
	if !decodePayload(w, r, &in) {
		return
	}

	item, err := h.svc.Update(r.Context(), p, id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, catalog.StatusContentReturned, item)
}

// Delete handles DELETE /<collection>/{id}.
func (h *ResourceHandler[T, P]) Delete(w http.ResponseWriter, r *http.Request) {
	p, id, ok := handlePrincipalAndPathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), p, id); err != nil {
		h.fail(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}

// Options answers OPTIONS with the Allow header and an empty body. It needs
// no authentication.
func Options(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", methods)
		w.WriteHeader(http.StatusOK)
	}
}

func (h *ResourceHandler[T, P]) fail(w http.ResponseWriter, r *http.Request, err error) {
	respondWithServiceError(w, r, logger.FromContextOrDefault(r.Context(), h.logger), err)
}
