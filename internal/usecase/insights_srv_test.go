package usecase

import (
	"context"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepo struct {
	repository.StatsRepository
	err   error
	limit int
}

func (f *fakeStatsRepo) TopMoviesByViews(_ context.Context, limit int) ([]entity.MovieViews, error) {
	f.limit = limit
	return []entity.MovieViews{{ID: uuid.New(), Title: "Heat", ViewCount: 42}}, nil
}

func (f *fakeStatsRepo) TopGenres(context.Context, int) ([]entity.NameCount, error) {
	return []entity.NameCount{{Name: "Drama", Count: 7}, {Name: "Action", Count: 3}}, nil
}

func (f *fakeStatsRepo) TopCast(context.Context, int) ([]entity.CastAppearance, error) {
	return nil, f.err
}

func (f *fakeStatsRepo) CountUsers(context.Context) (int64, error) { return 10, nil }

func (f *fakeStatsRepo) CountActiveUsers(context.Context) (int64, error) { return 4, f.err }

func (f *fakeStatsRepo) TopReviewers(context.Context, int) ([]entity.ReviewerCount, error) {
	return []entity.ReviewerCount{{UserID: uuid.New(), Username: "ana", ReviewCount: 9}}, nil
}

func (f *fakeStatsRepo) TopMoviesByAppearances(context.Context, int) ([]entity.MovieAppearances, error) {
	return []entity.MovieAppearances{{ID: uuid.New(), Title: "Big", Genres: []string{"Drama"}, TotalAppearances: 1}}, nil
}

func (f *fakeStatsRepo) TopFavoriteGenres(context.Context, int) ([]entity.NameCount, error) {
	return []entity.NameCount{{Name: "Drama", Count: 2}}, nil
}

func (f *fakeStatsRepo) TopFavoriteActors(context.Context, int) ([]entity.NameCount, error) {
	return []entity.NameCount{}, nil
}

func TestSiteStatistics(t *testing.T) {
	stats := &fakeStatsRepo{}
	svc := NewInsightsService(&repository.Repository{Stats: stats}, nopLog)

	got, err := svc.SiteStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, insightsLimit, stats.limit)
	require.Len(t, got.MostPopularMovies, 1)
	assert.Equal(t, int64(42), got.MostPopularMovies[0].ViewCount)
	assert.Equal(t, "Drama", got.TrendingGenres[0].Name)
	assert.NotNil(t, got.MostSearchedActors)
	assert.Empty(t, got.MostSearchedActors)
}

func TestUserEngagement(t *testing.T) {
	svc := NewInsightsService(&repository.Repository{Stats: &fakeStatsRepo{}}, nopLog)

	got, err := svc.UserEngagement(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.TotalUsers)
	assert.Equal(t, int64(4), got.ActiveUsers)
	require.Len(t, got.TopReviewers, 1)
	assert.Equal(t, int64(9), got.TopReviewers[0].ReviewCount)
}

func TestRecommendationInsights(t *testing.T) {
	svc := NewInsightsService(&repository.Repository{Stats: &fakeStatsRepo{}}, nopLog)

	got, err := svc.RecommendationInsights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Big", got.TopRecommendedMovies[0].Title)
	assert.Equal(t, []string{}, got.TopRecommendedMovies[0].Cast)
	assert.Len(t, got.MostPopularGenres, 1)
	assert.Empty(t, got.MostFavoritedActors)
}

func TestInsightsFailureIsInternal(t *testing.T) {
	svc := NewInsightsService(&repository.Repository{Stats: &fakeStatsRepo{err: errStore}}, nopLog)

	_, err := svc.SiteStatistics(context.Background())
	assert.Equal(t, utils.KindInternal, utils.ErrorKindOf(err))

	_, err = svc.UserEngagement(context.Background())
	assert.Equal(t, utils.KindInternal, utils.ErrorKindOf(err))
}
