package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ListHandler struct {
	service usecase.ListService
	log     *zap.Logger
}

func NewListHandler(service usecase.ListService, log *zap.Logger) *ListHandler {
	return &ListHandler{
		service: service,
		log:     log.With(zap.String("handler", "list")),
	}
}

// CreateList handles POST /api/lists (protected)
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.CreateListRequest
	if !decodeBody(w, r, &req) {
		return
	}

	list, err := h.service.CreateList(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, r, err, "create list")
		return
	}

	utils.ResponseCreated(w, r, "List created", list)
}

// UpdateList handles PUT /api/lists/{id} (protected, owner only)
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateListRequest
	if !decodeBody(w, r, &req) {
		return
	}

	list, err := h.service.UpdateList(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "update list")
		return
	}

	utils.ResponseSuccess(w, r, "List updated", list)
}

// DeleteList handles DELETE /api/lists/{id} (protected, owner only)
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteList(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err, "delete list")
		return
	}

	utils.ResponseSuccess(w, r, "List deleted", nil)
}

// FollowList handles POST /api/lists/{id}/follow (protected)
func (h *ListHandler) FollowList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.service.FollowList(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err, "follow list")
		return
	}

	utils.ResponseSuccess(w, r, "List followed", nil)
}

// UnfollowList handles POST /api/lists/{id}/unfollow (protected)
func (h *ListHandler) UnfollowList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.service.UnfollowList(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err, "unfollow list")
		return
	}

	utils.ResponseSuccess(w, r, "List unfollowed", nil)
}

// GetLists handles GET /api/lists
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.service.GetLists(r.Context(), pageFromQuery(r))
	if err != nil {
		h.handleServiceError(w, r, err, "get lists")
		return
	}

	utils.ResponseSuccess(w, r, "success", lists)
}

// GetList handles GET /api/lists/{id}
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.GetList(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err, "get list")
		return
	}

	utils.ResponseSuccess(w, r, "success", list)
}

func (h *ListHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	handleServiceError(w, r, h.log, err, operation)
}
