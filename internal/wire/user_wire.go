package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, deps routeDeps) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.auth)

		r.Get("/watchlist", userHandler.GetWatchlist)
		r.Post("/watchlist/{movieId}", userHandler.AddToWatchlist)
		r.Delete("/watchlist/{movieId}", userHandler.RemoveFromWatchlist)
	})
}
