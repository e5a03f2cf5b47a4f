package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, deps routeDeps) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.auth)

		r.Get("/auth/profile", authHandler.GetProfile)
		r.Put("/auth/profile", authHandler.UpdateProfile)
		r.Post("/auth/wishlist/{movieId}", authHandler.AddToWishlist)
		r.Delete("/auth/wishlist/{movieId}", authHandler.RemoveFromWishlist)
	})
}
