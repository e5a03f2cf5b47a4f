package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type body struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) body {
	t.Helper()
	var b body
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &b))
	return b
}

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"not found", utils.ErrNotFound("Movie not found"), http.StatusNotFound, "Movie not found"},
		{"validation", utils.ErrValidation("Validation failed", map[string]string{"rating": "rating must be at least 1"}), http.StatusBadRequest, "Validation failed"},
		{"unauthorized", utils.ErrUnauthorized("Authentication required"), http.StatusUnauthorized, "Authentication required"},
		{"forbidden", utils.ErrForbidden("Invalid admin key"), http.StatusForbidden, "Invalid admin key"},
		{"conflict", utils.ErrConflict("Person already exists"), http.StatusConflict, "Person already exists"},
		{"wrapped internal", utils.ErrInternal("Failed to load movie", errors.New("dial tcp: refused")), http.StatusInternalServerError, "Internal server error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handleServiceError(recorder, httptest.NewRequest(http.MethodGet, "/", nil), zap.NewNop(), tc.err, "test")

			assert.Equal(t, tc.code, recorder.Code)
			b := decode(t, recorder)
			assert.False(t, b.Status)
			assert.Equal(t, tc.message, b.Message)
			assert.NotContains(t, recorder.Body.String(), "dial tcp")
		})
	}

	t.Run("validation fields are returned", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		err := utils.ErrValidation("Validation failed", map[string]string{"rating": "rating must be at least 1"})
		handleServiceError(recorder, httptest.NewRequest(http.MethodGet, "/", nil), zap.NewNop(), err, "test")

		var fields map[string]string
		require.NoError(t, json.Unmarshal(decode(t, recorder).Errors, &fields))
		assert.Equal(t, "rating must be at least 1", fields["rating"])
	})
}

type stubReviewService struct {
	usecase.ReviewService
	created bool
	err     error
	gotUser uuid.UUID
	gotID   string
}

func (s *stubReviewService) AddReview(ctx context.Context, userID uuid.UUID, movieID string, req *request.CreateReviewRequest) (*response.ReviewResultResponse, bool, error) {
	s.gotUser, s.gotID = userID, movieID
	if s.err != nil {
		return nil, false, s.err
	}
	return &response.ReviewResultResponse{
		Review: &response.ReviewResponse{MovieID: movieID, Rating: req.Rating},
		Movie:  response.RatingStatsResponse{AverageRating: float64(req.Rating), RatingCount: 1},
	}, s.created, nil
}

func reviewRouter(svc usecase.ReviewService, userID *uuid.UUID) http.Handler {
	h := NewReviewHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	if userID != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(utils.SetUserContext(req.Context(), *userID, "user")))
			})
		})
	}
	r.Post("/reviews/{movieId}", h.AddReview)
	return r
}

func TestAddReview(t *testing.T) {
	userID := uuid.New()
	movieID := uuid.NewString()

	t.Run("first review answers 201", func(t *testing.T) {
		svc := &stubReviewService{created: true}
		recorder := httptest.NewRecorder()
		reviewRouter(svc, &userID).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodPost, "/reviews/"+movieID, strings.NewReader(`{"rating":4}`)))

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, userID, svc.gotUser)
		assert.Equal(t, movieID, svc.gotID)

		var result response.ReviewResultResponse
		require.NoError(t, json.Unmarshal(decode(t, recorder).Data, &result))
		assert.Equal(t, 4.0, result.Movie.AverageRating)
	})

	t.Run("repeat review answers 200", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		reviewRouter(&stubReviewService{}, &userID).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodPost, "/reviews/"+movieID, strings.NewReader(`{"rating":2}`)))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		reviewRouter(&stubReviewService{}, nil).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodPost, "/reviews/"+movieID, strings.NewReader(`{"rating":2}`)))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		reviewRouter(&stubReviewService{}, &userID).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodPost, "/reviews/"+movieID, strings.NewReader(`{"rating":`)))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Invalid request body", decode(t, recorder).Message)
	})

	t.Run("unknown movie", func(t *testing.T) {
		svc := &stubReviewService{err: utils.ErrNotFound("Movie not found")}
		recorder := httptest.NewRecorder()
		reviewRouter(svc, &userID).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodPost, "/reviews/"+movieID, strings.NewReader(`{"rating":2}`)))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

type stubMovieService struct {
	usecase.MovieService
	got *request.SearchMoviesRequest
}

func (s *stubMovieService) SearchMovies(ctx context.Context, req *request.SearchMoviesRequest) (*response.PageResponse[response.MovieResponse], error) {
	s.got = req
	return response.NewPageResponse([]response.MovieResponse{}, req.Page, req.Limit), nil
}

func TestSearchMoviesQueryParsing(t *testing.T) {
	svc := &stubMovieService{}
	h := NewMovieHandler(svc, zap.NewNop())

	recorder := httptest.NewRecorder()
	h.SearchMovies(recorder, httptest.NewRequest(http.MethodGet,
		"/movies/search?title=dark&genre=Drama,%20Crime,&minRating=3.5&releaseDecade=1990&sortBy=rating&page=2&limit=5", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "dark", svc.got.Title)
	assert.Equal(t, []string{"Drama", "Crime"}, svc.got.Genres)
	require.NotNil(t, svc.got.MinRating)
	assert.Equal(t, 3.5, *svc.got.MinRating)
	assert.Nil(t, svc.got.MaxRating)
	assert.Equal(t, 1990, svc.got.ReleaseDecade)
	assert.Equal(t, "rating", svc.got.SortBy)
	assert.Equal(t, 2, svc.got.Page)
	assert.Equal(t, 5, svc.got.Limit)

	t.Run("non numeric rating", func(t *testing.T) {
		svc := &stubMovieService{}
		recorder := httptest.NewRecorder()
		NewMovieHandler(svc, zap.NewNop()).SearchMovies(recorder,
			httptest.NewRequest(http.MethodGet, "/movies/search?maxRating=high", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Nil(t, svc.got)
	})
}
