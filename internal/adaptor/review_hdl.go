package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// AddReview handles POST /api/reviews/{movieId} (protected). A second
// review by the same user replaces the first and answers 200.
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.CreateReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, created, err := h.service.AddReview(r.Context(), userID, chi.URLParam(r, "movieId"), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "add review")
		return
	}

	if created {
		utils.ResponseCreated(w, r, "Review added", result)
		return
	}
	utils.ResponseSuccess(w, r, "Review updated", result)
}

// UpdateReview handles PUT /api/reviews/{movieId} (protected)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.service.UpdateReview(r.Context(), userID, chi.URLParam(r, "movieId"), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "update review")
		return
	}

	utils.ResponseSuccess(w, r, "Review updated", result)
}

// DeleteReview handles DELETE /api/reviews/{movieId} (protected)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.service.DeleteReview(r.Context(), userID, chi.URLParam(r, "movieId"))
	if err != nil {
		h.handleServiceError(w, r, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, r, "Review deleted", result)
}

// GetMovieReviews handles GET /api/reviews/{movieId}
func (h *ReviewHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.GetMovieReviews(r.Context(), chi.URLParam(r, "movieId"))
	if err != nil {
		h.handleServiceError(w, r, err, "get movie reviews")
		return
	}

	utils.ResponseSuccess(w, r, "success", reviews)
}

// GetHighlights handles GET /api/reviews/highlights
func (h *ReviewHandler) GetHighlights(w http.ResponseWriter, r *http.Request) {
	highlights, err := h.service.GetHighlights(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "get review highlights")
		return
	}

	utils.ResponseSuccess(w, r, "success", highlights)
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	handleServiceError(w, r, h.log, err, operation)
}
