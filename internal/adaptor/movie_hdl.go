package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context(), pageFromQuery(r))
	if err != nil {
		h.handleServiceError(w, r, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, r, "success", movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovieByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, r, "success", movie)
}

// SearchMovies handles GET /api/movies/search
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := request.SearchMoviesRequest{
		Title:            query.Get("title"),
		Genres:           utils.SplitList(query.Get("genre")),
		Director:         query.Get("director"),
		Actor:            query.Get("actor"),
		ReleaseYear:      utils.ParseInt(query.Get("releaseYear"), 0),
		ReleaseDecade:    utils.ParseInt(query.Get("releaseDecade"), 0),
		Language:         query.Get("language"),
		SortBy:           query.Get("sortBy"),
		PaginatedRequest: pageFromQuery(r),
	}

	for name, dst := range map[string]**float64{"minRating": &req.MinRating, "maxRating": &req.MaxRating} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		if *dst = utils.ParseFloat(raw); *dst == nil {
			utils.ResponseBadRequest(w, r, "Invalid "+name, nil)
			return
		}
	}

	movies, err := h.service.SearchMovies(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, r, "success", movies)
}

// TopOfMonth handles GET /api/movies/top-month
func (h *MovieHandler) TopOfMonth(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.TopOfMonth(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "get top movies of the month")
		return
	}

	utils.ResponseSuccess(w, r, "success", movies)
}

// TopByGenre handles GET /api/movies/top-genre?genre=
func (h *MovieHandler) TopByGenre(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.TopByGenre(r.Context(), r.URL.Query().Get("genre"))
	if err != nil {
		h.handleServiceError(w, r, err, "get top movies by genre")
		return
	}

	utils.ResponseSuccess(w, r, "success", movies)
}

// CreateMovie handles POST /api/movies (admin only)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovieRequest
	if !decodeBody(w, r, &req) {
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "create movie")
		return
	}

	utils.ResponseCreated(w, r, "Movie created", movie)
}

// UpdateMovie handles PUT /api/movies/{id} (admin only)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateMovieRequest
	if !decodeBody(w, r, &req) {
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, r, "Movie updated", movie)
}

// DeleteMovie handles DELETE /api/movies/{id} (admin only)
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMovie(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, r, "Movie deleted", nil)
}

// UpdateBoxOffice handles PUT /api/movies/{id}/box-office (admin only)
func (h *MovieHandler) UpdateBoxOffice(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBoxOfficeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	movie, err := h.service.UpdateBoxOffice(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "update box office")
		return
	}

	utils.ResponseSuccess(w, r, "Box office updated", movie)
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	handleServiceError(w, r, h.log, err, operation)
}
