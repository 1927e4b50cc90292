package api

import (
	"log/slog"
	"net/http"

	"github.com/tdw-edu/questions-api/internal/api/shared"
	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/platform/logger"
	"github.com/tdw-edu/questions-api/internal/service"
)

// CategoryLinkHandler serves /categories/{id}/questions/{questionId}.
type CategoryLinkHandler struct {
	categoryService service.CategoryService
	logger          *slog.Logger
}

// NewCategoryLinkHandler creates a new CategoryLinkHandler.
func NewCategoryLinkHandler(categoryService service.CategoryService, logger *slog.Logger) *CategoryLinkHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryLinkHandler{
		categoryService: categoryService,
		logger:          logger.With(slog.String("component", "category_link_handler")),
	}
}

// Link handles PUT: the question is added to the category.
func (h *CategoryLinkHandler) Link(w http.ResponseWriter, r *http.Request) {
	p, id, ok := handlePrincipalAndPathID(w, r, "id")
	if !ok {
		return
	}
	questionID, err := getPathID(r, "questionId")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, catalog.MsgPathNotFound, err)
		return
	}

	c, err := h.categoryService.LinkQuestion(r.Context(), p, id, questionID)
	if err != nil {
		respondWithServiceError(w, r, logger.FromContextOrDefault(r.Context(), h.logger), err)
		return
	}
	shared.RespondWithJSON(w, r, catalog.StatusContentReturned, c)
}

// Unlink handles DELETE: the question is removed from the category.
func (h *CategoryLinkHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	p, id, ok := handlePrincipalAndPathID(w, r, "id")
	if !ok {
		return
	}
	questionID, err := getPathID(r, "questionId")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, catalog.MsgPathNotFound, err)
		return
	}

	c, err := h.categoryService.UnlinkQuestion(r.Context(), p, id, questionID)
	if err != nil {
		respondWithServiceError(w, r, logger.FromContextOrDefault(r.Context(), h.logger), err)
		return
	}
	shared.RespondWithJSON(w, r, catalog.StatusContentReturned, c)
}
