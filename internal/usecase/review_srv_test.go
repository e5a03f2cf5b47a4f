package usecase

import (
	"context"
	"testing"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRatingStats(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    RatingStats
	}{
		{"no ratings", nil, RatingStats{Average: 0, Count: 0}},
		{"single", []int{4}, RatingStats{Average: 4, Count: 1}},
		{"half", []int{4, 5}, RatingStats{Average: 4.5, Count: 2}},
		{"rounds down", []int{4, 4, 5}, RatingStats{Average: 4.3, Count: 3}},
		{"rounds up", []int{5, 5, 4}, RatingStats{Average: 4.7, Count: 3}},
		{"thirds", []int{1, 1, 2}, RatingStats{Average: 1.3, Count: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeRatingStats(tt.ratings))
		})
	}
}

type reviewFixture struct {
	movies  *fakeMovieRepo
	reviews *fakeReviewRepo
	svc     ReviewService
	movieID uuid.UUID
}

func newReviewFixture() *reviewFixture {
	movie := newMovie("X", "Drama")
	movies := newFakeMovieRepo(movie)
	reviews := newFakeReviewRepo()
	repo := &repository.Repository{Movie: movies, Review: reviews}
	return &reviewFixture{
		movies:  movies,
		reviews: reviews,
		svc:     NewReviewService(repo, nopLog),
		movieID: movie.ID,
	}
}

func (f *reviewFixture) stored() (float64, int) {
	m := f.movies.movies[f.movieID]
	return m.AverageRating, m.RatingCount
}

func TestReviewLifecycleKeepsStatsInSync(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	_, created, err := f.svc.AddReview(ctx, alice, f.movieID.String(), &request.CreateReviewRequest{Rating: 4})
	require.NoError(t, err)
	assert.True(t, created)

	res, created, err := f.svc.AddReview(ctx, bob, f.movieID.String(), &request.CreateReviewRequest{Rating: 5})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 4.5, res.Movie.AverageRating)
	assert.Equal(t, 2, res.Movie.RatingCount)

	avg, count := f.stored()
	assert.Equal(t, 4.5, avg)
	assert.Equal(t, 2, count)

	res, err = f.svc.DeleteReview(ctx, bob, f.movieID.String())
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Movie.AverageRating)
	assert.Equal(t, 1, res.Movie.RatingCount)

	res, err = f.svc.DeleteReview(ctx, alice, f.movieID.String())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Movie.AverageRating)
	assert.Equal(t, 0, res.Movie.RatingCount)

	avg, count = f.stored()
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0, count)
}

func TestAddReviewTwiceUpdatesExisting(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()
	user := uuid.New()

	first, created, err := f.svc.AddReview(ctx, user, f.movieID.String(), &request.CreateReviewRequest{Rating: 2})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := f.svc.AddReview(ctx, user, f.movieID.String(), &request.CreateReviewRequest{Rating: 5})
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, first.Review.ID, second.Review.ID)
	assert.Equal(t, 1, f.reviews.countFor(f.movieID))
	assert.Equal(t, 5.0, second.Movie.AverageRating)
	assert.Equal(t, 1, second.Movie.RatingCount)
}

func TestUpdateReview(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()
	user := uuid.New()

	_, err := f.svc.UpdateReview(ctx, user, f.movieID.String(), &request.UpdateReviewRequest{})
	assert.Equal(t, utils.KindNotFound, utils.ErrorKindOf(err))

	_, _, err = f.svc.AddReview(ctx, user, f.movieID.String(), &request.CreateReviewRequest{Rating: 3})
	require.NoError(t, err)

	text := "better on a second watch"
	rating := 4
	res, err := f.svc.UpdateReview(ctx, user, f.movieID.String(), &request.UpdateReviewRequest{Rating: &rating, ReviewText: &text})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Review.Rating)
	assert.Equal(t, &text, res.Review.ReviewText)
	assert.Equal(t, 4.0, res.Movie.AverageRating)
}

func TestReviewErrors(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()

	t.Run("invalid rating", func(t *testing.T) {
		f := newReviewFixture()
		_, _, err := f.svc.AddReview(ctx, user, f.movieID.String(), &request.CreateReviewRequest{Rating: 6})
		assert.Equal(t, utils.KindValidation, utils.ErrorKindOf(err))
	})

	t.Run("malformed movie id", func(t *testing.T) {
		f := newReviewFixture()
		_, _, err := f.svc.AddReview(ctx, user, "not-a-uuid", &request.CreateReviewRequest{Rating: 3})
		assert.Equal(t, utils.KindValidation, utils.ErrorKindOf(err))
	})

	t.Run("unknown movie", func(t *testing.T) {
		f := newReviewFixture()
		_, _, err := f.svc.AddReview(ctx, user, uuid.NewString(), &request.CreateReviewRequest{Rating: 3})
		assert.Equal(t, utils.KindNotFound, utils.ErrorKindOf(err))
	})

	t.Run("recompute failure surfaces", func(t *testing.T) {
		f := newReviewFixture()
		f.movies.statsErr = errStore
		_, _, err := f.svc.AddReview(ctx, user, f.movieID.String(), &request.CreateReviewRequest{Rating: 3})
		require.Error(t, err)
		assert.Equal(t, utils.KindInternal, utils.ErrorKindOf(err))
		assert.ErrorIs(t, err, errStore)
	})

	t.Run("delete without review", func(t *testing.T) {
		f := newReviewFixture()
		_, err := f.svc.DeleteReview(ctx, user, f.movieID.String())
		assert.Equal(t, utils.KindNotFound, utils.ErrorKindOf(err))
	})
}

func TestModerateReview(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()

	res, _, err := f.svc.AddReview(ctx, uuid.New(), f.movieID.String(), &request.CreateReviewRequest{Rating: 1})
	require.NoError(t, err)

	_, err = f.svc.ModerateReview(ctx, uuid.NewString(), res.Review.ID)
	assert.Equal(t, utils.KindNotFound, utils.ErrorKindOf(err))

	out, err := f.svc.ModerateReview(ctx, f.movieID.String(), res.Review.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Movie.RatingCount)
	assert.Equal(t, 0, f.reviews.countFor(f.movieID))
}
