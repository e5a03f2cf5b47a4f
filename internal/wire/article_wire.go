package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireArticle(r chi.Router, articleHandler *adaptor.ArticleHandler, deps routeDeps) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/articles", articleHandler.GetArticles)
	r.Get("/articles/search", articleHandler.SearchArticles)
	r.Get("/articles/{id}", articleHandler.GetArticle)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.auth)
		r.Use(deps.admin)

		r.Post("/articles", articleHandler.CreateArticle)
		r.Put("/articles/{id}", articleHandler.UpdateArticle)
		r.Delete("/articles/{id}", articleHandler.DeleteArticle)
	})
}
