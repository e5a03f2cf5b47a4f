package adaptor

import (
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler serves the caller's watchlist.
type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetWatchlist handles GET /api/watchlist (protected)
func (h *UserHandler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	movies, err := h.service.GetWatchlist(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, r, err, "get watchlist")
		return
	}

	utils.ResponseSuccess(w, r, "success", movies)
}

// AddToWatchlist handles POST /api/watchlist/{movieId} (protected)
func (h *UserHandler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.service.AddToWatchlist(r.Context(), userID, chi.URLParam(r, "movieId")); err != nil {
		h.handleServiceError(w, r, err, "add to watchlist")
		return
	}

	utils.ResponseSuccess(w, r, "Movie added to watchlist", nil)
}

// RemoveFromWatchlist handles DELETE /api/watchlist/{movieId} (protected)
func (h *UserHandler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveFromWatchlist(r.Context(), userID, chi.URLParam(r, "movieId")); err != nil {
		h.handleServiceError(w, r, err, "remove from watchlist")
		return
	}

	utils.ResponseSuccess(w, r, "Movie removed from watchlist", nil)
}

func (h *UserHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	handleServiceError(w, r, h.log, err, operation)
}
