package usecase

import (
	"context"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService manages the caller's watchlist.
type UserService interface {
	GetWatchlist(ctx context.Context, userID uuid.UUID) ([]response.MovieSummary, error)
	AddToWatchlist(ctx context.Context, userID uuid.UUID, movieID string) error
	RemoveFromWatchlist(ctx context.Context, userID uuid.UUID, movieID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetWatchlist(ctx context.Context, userID uuid.UUID) ([]response.MovieSummary, error) {
	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get watchlist", err)
	}
	if user == nil {
		return nil, utils.ErrNotFound("User not found")
	}

	movies, err := us.repo.Movie.FindByIDs(ctx, user.Watchlist)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get watchlist", err)
	}
	return response.MoviesToSummary(movies), nil
}

func (us *userService) AddToWatchlist(ctx context.Context, userID uuid.UUID, movieID string) error {
	id, err := parseID(movieID, "movie")
	if err != nil {
		return err
	}

	if err := addToCollection(ctx, us.repo, userID, repository.CollectionWatchlist, id); err != nil {
		return err
	}

	us.log.Info("Added to watchlist",
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movieID),
	)
	return nil
}

func (us *userService) RemoveFromWatchlist(ctx context.Context, userID uuid.UUID, movieID string) error {
	id, err := parseID(movieID, "movie")
	if err != nil {
		return err
	}

	return storeErr(
		us.repo.User.RemoveFromCollection(ctx, userID, repository.CollectionWatchlist, id),
		"Failed to update watchlist", "User not found",
	)
}
