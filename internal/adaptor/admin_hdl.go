package adaptor

import (
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler serves the admin dashboards and review moderation.
type AdminHandler struct {
	insights usecase.InsightsService
	reviews  usecase.ReviewService
	log      *zap.Logger
}

func NewAdminHandler(insights usecase.InsightsService, reviews usecase.ReviewService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		insights: insights,
		reviews:  reviews,
		log:      log.With(zap.String("handler", "admin")),
	}
}

// Statistics handles GET /api/admin/statistics (admin only)
func (h *AdminHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.insights.SiteStatistics(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "get site statistics")
		return
	}

	utils.ResponseSuccess(w, r, "success", stats)
}

// UserEngagement handles GET /api/admin/user-engagement (admin only)
func (h *AdminHandler) UserEngagement(w http.ResponseWriter, r *http.Request) {
	engagement, err := h.insights.UserEngagement(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "get user engagement")
		return
	}

	utils.ResponseSuccess(w, r, "success", engagement)
}

// ModerateReview handles DELETE /api/admin/movies/{movieId}/reviews/{reviewId} (admin only)
func (h *AdminHandler) ModerateReview(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviews.ModerateReview(r.Context(), chi.URLParam(r, "movieId"), chi.URLParam(r, "reviewId"))
	if err != nil {
		h.handleServiceError(w, r, err, "moderate review")
		return
	}

	utils.ResponseSuccess(w, r, "Review removed", result)
}

func (h *AdminHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	handleServiceError(w, r, h.log, err, operation)
}
