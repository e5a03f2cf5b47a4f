package adaptor

import (
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RecommendationHandler struct {
	service  usecase.RecommendationService
	insights usecase.InsightsService
	log      *zap.Logger
}

func NewRecommendationHandler(service usecase.RecommendationService, insights usecase.InsightsService, log *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service:  service,
		insights: insights,
		log:      log.With(zap.String("handler", "recommendation")),
	}
}

// Personalized handles GET /api/recommendations/personalized (protected)
func (h *RecommendationHandler) Personalized(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	movies, err := h.service.Personalized(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, r, err, "get personalized recommendations")
		return
	}

	utils.ResponseSuccess(w, r, "success", movies)
}

// Similar handles GET /api/recommendations/similar/{movieId}
func (h *RecommendationHandler) Similar(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.Similar(r.Context(), chi.URLParam(r, "movieId"))
	if err != nil {
		h.handleServiceError(w, r, err, "get similar movies")
		return
	}

	utils.ResponseSuccess(w, r, "success", movies)
}

// Trending handles GET /api/recommendations/trending
func (h *RecommendationHandler) Trending(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Trending(r.Context(), pageFromQuery(r))
	if err != nil {
		h.handleServiceError(w, r, err, "get trending movies")
		return
	}

	utils.ResponseSuccess(w, r, "success", page)
}

// TopRated handles GET /api/recommendations/top-rated
func (h *RecommendationHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.TopRated(r.Context(), pageFromQuery(r))
	if err != nil {
		h.handleServiceError(w, r, err, "get top rated movies")
		return
	}

	utils.ResponseSuccess(w, r, "success", page)
}

// Insights handles GET /api/recommendations/insights
func (h *RecommendationHandler) Insights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.insights.RecommendationInsights(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "get recommendation insights")
		return
	}

	utils.ResponseSuccess(w, r, "success", insights)
}

func (h *RecommendationHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	handleServiceError(w, r, h.log, err, operation)
}
