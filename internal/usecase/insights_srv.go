package usecase

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const insightsLimit = 5

// InsightsService runs the dashboard aggregations. Queries within a call are
// independent and run concurrently; any failure fails the call.
type InsightsService interface {
	SiteStatistics(ctx context.Context) (*response.SiteStatisticsResponse, error)
	UserEngagement(ctx context.Context) (*response.UserEngagementResponse, error)
	RecommendationInsights(ctx context.Context) (*response.RecommendationInsightsResponse, error)
}

type insightsService struct {
	stats repository.StatsRepository
	log   *zap.Logger
}

func NewInsightsService(repo *repository.Repository, log *zap.Logger) InsightsService {
	return &insightsService{
		stats: repo.Stats,
		log:   log.With(zap.String("service", "insights")),
	}
}

func (s *insightsService) fail(op string, err error) error {
	s.log.Error("Aggregation failed", zap.String("op", op), zap.Error(err))
	return utils.ErrInternal("Failed to get "+op, err)
}

func (s *insightsService) SiteStatistics(ctx context.Context) (*response.SiteStatisticsResponse, error) {
	var (
		movies []entity.MovieViews
		genres []entity.NameCount
		cast   []entity.CastAppearance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		movies, err = s.stats.TopMoviesByViews(gctx, insightsLimit)
		return err
	})
	g.Go(func() (err error) {
		genres, err = s.stats.TopGenres(gctx, insightsLimit)
		return err
	})
	g.Go(func() (err error) {
		cast, err = s.stats.TopCast(gctx, insightsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.fail("site statistics", err)
	}

	return &response.SiteStatisticsResponse{
		MostPopularMovies:  response.MovieViewsToResponse(movies),
		TrendingGenres:     response.NameCountsToResponse(genres),
		MostSearchedActors: response.CastAppearancesToResponse(cast),
	}, nil
}

func (s *insightsService) UserEngagement(ctx context.Context) (*response.UserEngagementResponse, error) {
	var (
		total, active int64
		reviewers     []entity.ReviewerCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.stats.CountUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		active, err = s.stats.CountActiveUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		reviewers, err = s.stats.TopReviewers(gctx, insightsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.fail("user engagement", err)
	}

	return &response.UserEngagementResponse{
		TotalUsers:   total,
		ActiveUsers:  active,
		TopReviewers: response.ReviewersToResponse(reviewers),
	}, nil
}

func (s *insightsService) RecommendationInsights(ctx context.Context) (*response.RecommendationInsightsResponse, error) {
	var (
		movies []entity.MovieAppearances
		genres []entity.NameCount
		actors []entity.NameCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		movies, err = s.stats.TopMoviesByAppearances(gctx, insightsLimit)
		return err
	})
	g.Go(func() (err error) {
		genres, err = s.stats.TopFavoriteGenres(gctx, insightsLimit)
		return err
	})
	g.Go(func() (err error) {
		actors, err = s.stats.TopFavoriteActors(gctx, insightsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.fail("recommendation insights", err)
	}

	return &response.RecommendationInsightsResponse{
		TopRecommendedMovies: response.MovieAppearancesToResponse(movies),
		MostPopularGenres:    response.NameCountsToResponse(genres),
		MostFavoritedActors:  response.NameCountsToResponse(actors),
	}, nil
}
