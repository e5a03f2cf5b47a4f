package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DiscussionHandler struct {
	service usecase.DiscussionService
	log     *zap.Logger
}

func NewDiscussionHandler(service usecase.DiscussionService, log *zap.Logger) *DiscussionHandler {
	return &DiscussionHandler{
		service: service,
		log:     log.With(zap.String("handler", "discussion")),
	}
}

// CreateDiscussion handles POST /api/discussions (protected)
func (h *DiscussionHandler) CreateDiscussion(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.CreateDiscussionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	discussion, err := h.service.CreateDiscussion(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, r, err, "create discussion")
		return
	}

	utils.ResponseCreated(w, r, "Discussion created", discussion)
}

// AddReply handles POST /api/discussions/{id}/replies (protected)
func (h *DiscussionHandler) AddReply(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.AddReplyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	discussion, err := h.service.AddReply(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "add reply")
		return
	}

	utils.ResponseCreated(w, r, "Reply added", discussion)
}

// GetDiscussions handles GET /api/discussions?category=
func (h *DiscussionHandler) GetDiscussions(w http.ResponseWriter, r *http.Request) {
	discussions, err := h.service.GetDiscussions(r.Context(), r.URL.Query().Get("category"), pageFromQuery(r))
	if err != nil {
		h.handleServiceError(w, r, err, "get discussions")
		return
	}

	utils.ResponseSuccess(w, r, "success", discussions)
}

// GetDiscussion handles GET /api/discussions/{id}
func (h *DiscussionHandler) GetDiscussion(w http.ResponseWriter, r *http.Request) {
	discussion, err := h.service.GetDiscussion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err, "get discussion")
		return
	}

	utils.ResponseSuccess(w, r, "success", discussion)
}

// DeleteDiscussion handles DELETE /api/discussions/{id} (admin only)
func (h *DiscussionHandler) DeleteDiscussion(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteDiscussion(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err, "delete discussion")
		return
	}

	utils.ResponseSuccess(w, r, "Discussion deleted", nil)
}

// DeleteReply handles DELETE /api/discussions/{id}/replies/{replyId} (admin only)
func (h *DiscussionHandler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteReply(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "replyId")); err != nil {
		h.handleServiceError(w, r, err, "delete reply")
		return
	}

	utils.ResponseSuccess(w, r, "Reply deleted", nil)
}

func (h *DiscussionHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	handleServiceError(w, r, h.log, err, operation)
}
