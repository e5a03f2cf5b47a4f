package usecase

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recommendationLimit = 10

type RecommendationService interface {
	Personalized(ctx context.Context, userID uuid.UUID) ([]response.MovieResponse, error)
	Similar(ctx context.Context, movieID string) ([]response.MovieResponse, error)
	Trending(ctx context.Context, req request.PaginatedRequest) (*response.PageResponse[response.MovieResponse], error)
	TopRated(ctx context.Context, req request.PaginatedRequest) (*response.PageResponse[response.MovieResponse], error)
}

type recommendationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRecommendationService(repo *repository.Repository, log *zap.Logger) RecommendationService {
	return &recommendationService{
		repo: repo,
		log:  log.With(zap.String("service", "recommendation")),
	}
}

func (s *recommendationService) expand(ctx context.Context, movies []*entity.Movie) ([]response.MovieResponse, error) {
	persons, err := loadPersons(ctx, s.repo, movies...)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get recommendations", err)
	}
	return response.MoviesToResponse(movies, persons), nil
}

// Personalized matches movies sharing a favorite genre or starring an actor
// whose name is among the user's favorites. Names may match several persons;
// all of them count.
func (s *recommendationService) Personalized(ctx context.Context, userID uuid.UUID) ([]response.MovieResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get recommendations", err)
	}
	if user == nil {
		return nil, utils.ErrNotFound("User not found")
	}

	genres := utils.UniqueStrings(user.FavoriteGenres)
	actors := utils.UniqueStrings(user.FavoriteActors)
	if len(genres) == 0 && len(actors) == 0 {
		return nil, utils.ErrNotFound("No recommendations found")
	}

	var actorIDs []uuid.UUID
	if len(actors) > 0 {
		actorIDs, err = s.repo.Person.FindIDsByNames(ctx, actors, entity.PersonRoleActor)
		if err != nil {
			return nil, utils.ErrInternal("Failed to get recommendations", err)
		}
	}

	movies, err := s.repo.Movie.FindByGenresOrCast(ctx, genres, actorIDs, recommendationLimit)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get recommendations", err)
	}
	if len(movies) == 0 {
		return nil, utils.ErrNotFound("No recommendations found")
	}

	s.log.Debug("Personalized recommendations",
		zap.String("user_id", userID.String()),
		zap.Int("genres", len(genres)),
		zap.Int("actor_matches", len(actorIDs)),
		zap.Int("results", len(movies)),
	)

	return s.expand(ctx, movies)
}

func (s *recommendationService) Similar(ctx context.Context, movieID string) ([]response.MovieResponse, error) {
	id, err := parseID(movieID, "movie")
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get similar movies", err)
	}
	if movie == nil {
		return nil, utils.ErrNotFound("Movie not found")
	}

	similar, err := s.repo.Movie.FindSimilar(ctx, movie, recommendationLimit)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get similar movies", err)
	}

	// never recommend the reference movie itself
	filtered := similar[:0]
	for _, m := range similar {
		if m.ID != movie.ID {
			filtered = append(filtered, m)
		}
	}

	return s.expand(ctx, filtered)
}

func (s *recommendationService) Trending(ctx context.Context, req request.PaginatedRequest) (*response.PageResponse[response.MovieResponse], error) {
	movies, err := s.repo.Movie.ListByViewCount(ctx, req.Offset(), req.Limit)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get trending movies", err)
	}

	items, err := s.expand(ctx, movies)
	if err != nil {
		return nil, err
	}
	return response.NewPageResponse(items, req.Page, req.Limit), nil
}

func (s *recommendationService) TopRated(ctx context.Context, req request.PaginatedRequest) (*response.PageResponse[response.MovieResponse], error) {
	movies, err := s.repo.Movie.ListByRating(ctx, req.Offset(), req.Limit)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get top rated movies", err)
	}

	items, err := s.expand(ctx, movies)
	if err != nil {
		return nil, err
	}
	return response.NewPageResponse(items, req.Page, req.Limit), nil
}
