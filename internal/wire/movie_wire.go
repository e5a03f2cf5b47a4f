package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	notificationHandler *adaptor.NotificationHandler,
	deps routeDeps,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/movies", movieHandler.GetMovies)
	r.Get("/movies/search", movieHandler.SearchMovies)
	r.Get("/movies/top-month", movieHandler.TopOfMonth)
	r.Get("/movies/top-genre", movieHandler.TopByGenre)

	// GET /api/movies/{id} also counts a view
	r.Get("/movies/{id}", movieHandler.GetMovieByID)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.auth)
		r.Use(deps.admin)

		r.Post("/movies", movieHandler.CreateMovie)
		r.Put("/movies/{id}", movieHandler.UpdateMovie)
		r.Delete("/movies/{id}", movieHandler.DeleteMovie)
		r.Put("/movies/{id}/box-office", movieHandler.UpdateBoxOffice)
		r.Post("/movies/upcoming/notify", notificationHandler.NotifyUpcoming)
	})
}

func wirePerson(r chi.Router, personHandler *adaptor.PersonHandler, deps routeDeps) {
	r.Get("/persons/{id}", personHandler.GetPerson)

	r.With(deps.auth, deps.admin).Post("/persons", personHandler.CreatePerson)
}
