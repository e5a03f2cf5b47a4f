package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	adminHandler *adaptor.AdminHandler,
	deps routeDeps,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/reviews/highlights", reviewHandler.GetHighlights)
	r.Get("/reviews/{movieId}", reviewHandler.GetMovieReviews)

	// ==================== PROTECTED ROUTES ====================
	// One review per user and movie, addressed by the movie
	r.Group(func(r chi.Router) {
		r.Use(deps.auth)

		r.Post("/reviews/{movieId}", reviewHandler.AddReview)
		r.Put("/reviews/{movieId}", reviewHandler.UpdateReview)
		r.Delete("/reviews/{movieId}", reviewHandler.DeleteReview)
	})

	// ==================== ADMIN ROUTES ====================
	r.With(deps.auth, deps.admin).Delete("/admin/movies/{movieId}/reviews/{reviewId}", adminHandler.ModerateReview)
}

func wireRecommendation(
	r chi.Router,
	recommendationHandler *adaptor.RecommendationHandler,
	adminHandler *adaptor.AdminHandler,
	deps routeDeps,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/recommendations/similar/{movieId}", recommendationHandler.Similar)
	r.Get("/recommendations/trending", recommendationHandler.Trending)
	r.Get("/recommendations/top-rated", recommendationHandler.TopRated)
	r.Get("/recommendations/insights", recommendationHandler.Insights)

	// ==================== PROTECTED ROUTES ====================
	r.With(deps.auth).Get("/recommendations/personalized", recommendationHandler.Personalized)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.auth)
		r.Use(deps.admin)

		r.Get("/admin/statistics", adminHandler.Statistics)
		r.Get("/admin/user-engagement", adminHandler.UserEngagement)
	})
}
