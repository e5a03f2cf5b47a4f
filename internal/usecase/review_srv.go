package usecase

import (
	"context"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const highlightsLimit = 5

type ReviewService interface {
	// AddReview creates the caller's review of a movie, or updates it when
	// one exists. The bool reports whether a review was created.
	AddReview(ctx context.Context, userID uuid.UUID, movieID string, req *request.CreateReviewRequest) (*response.ReviewResultResponse, bool, error)
	UpdateReview(ctx context.Context, userID uuid.UUID, movieID string, req *request.UpdateReviewRequest) (*response.ReviewResultResponse, error)
	DeleteReview(ctx context.Context, userID uuid.UUID, movieID string) (*response.ReviewResultResponse, error)

	// Admin moderation
	ModerateReview(ctx context.Context, movieID, reviewID string) (*response.ReviewResultResponse, error)

	GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error)
	GetHighlights(ctx context.Context) (*response.ReviewHighlightsResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// mutate locks the movie, applies fn and recomputes the movie's rating
// statistics, all in one transaction.
func (s *reviewService) mutate(ctx context.Context, movieID uuid.UUID, fn func(tx *repository.Repository) error) (RatingStats, error) {
	var stats RatingStats

	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		movie, err := tx.Movie.FindByIDForUpdate(ctx, movieID)
		if err != nil {
			return utils.ErrInternal("Failed to load movie", err)
		}
		if movie == nil {
			return utils.ErrNotFound("Movie not found")
		}

		if err := fn(tx); err != nil {
			return err
		}

		stats, err = recomputeRatingStats(ctx, tx, movieID)
		return err
	})
	if err != nil {
		if utils.ErrorKindOf(err) == utils.KindInternal {
			s.log.Error("Review mutation rolled back",
				zap.Error(err),
				zap.String("movie_id", movieID.String()),
			)
		}
		return RatingStats{}, err
	}

	return stats, nil
}

func resultResponse(review *entity.Review, stats RatingStats) *response.ReviewResultResponse {
	result := &response.ReviewResultResponse{
		Movie: response.RatingStatsResponse{AverageRating: stats.Average, RatingCount: stats.Count},
	}
	if review != nil {
		resp := response.ReviewToResponse(review, "")
		result.Review = &resp
	}
	return result
}

func (s *reviewService) AddReview(ctx context.Context, userID uuid.UUID, movieID string, req *request.CreateReviewRequest) (*response.ReviewResultResponse, bool, error) {
	if err := validate(s.log, "Add review", req); err != nil {
		return nil, false, err
	}

	movieUUID, err := parseID(movieID, "movie")
	if err != nil {
		return nil, false, err
	}

	var (
		review  *entity.Review
		created bool
	)

	stats, err := s.mutate(ctx, movieUUID, func(tx *repository.Repository) error {
		existing, err := tx.Review.FindByUserAndMovie(ctx, userID, movieUUID)
		if err != nil {
			return utils.ErrInternal("Failed to add review", err)
		}

		now := time.Now()
		if existing != nil {
			existing.Rating = req.Rating
			existing.ReviewText = req.ReviewText
			existing.UpdatedAt = now
			review = existing
			return storeErr(tx.Review.Update(ctx, existing), "Failed to add review", "Review not found")
		}

		review = &entity.Review{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID:     userID,
			MovieID:    movieUUID,
			Rating:     req.Rating,
			ReviewText: req.ReviewText,
		}
		created = true
		return storeErr(tx.Review.Create(ctx, review), "Failed to add review", "Review not found")
	})
	if err != nil {
		return nil, false, err
	}

	s.log.Info("Review saved",
		zap.String("review_id", review.ID.String()),
		zap.String("movie_id", movieID),
		zap.Bool("created", created),
		zap.Float64("average_rating", stats.Average),
		zap.Int("rating_count", stats.Count),
	)

	return resultResponse(review, stats), created, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, userID uuid.UUID, movieID string, req *request.UpdateReviewRequest) (*response.ReviewResultResponse, error) {
	if err := validate(s.log, "Update review", req); err != nil {
		return nil, err
	}

	movieUUID, err := parseID(movieID, "movie")
	if err != nil {
		return nil, err
	}

	var review *entity.Review
	stats, err := s.mutate(ctx, movieUUID, func(tx *repository.Repository) error {
		existing, err := tx.Review.FindByUserAndMovie(ctx, userID, movieUUID)
		if err != nil {
			return utils.ErrInternal("Failed to update review", err)
		}
		if existing == nil {
			return utils.ErrNotFound("Review not found")
		}

		if req.Rating != nil {
			existing.Rating = *req.Rating
		}
		if req.ReviewText != nil {
			existing.ReviewText = req.ReviewText
		}
		existing.UpdatedAt = time.Now()
		review = existing

		return storeErr(tx.Review.Update(ctx, existing), "Failed to update review", "Review not found")
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Review updated",
		zap.String("review_id", review.ID.String()),
		zap.String("movie_id", movieID),
	)

	return resultResponse(review, stats), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID uuid.UUID, movieID string) (*response.ReviewResultResponse, error) {
	movieUUID, err := parseID(movieID, "movie")
	if err != nil {
		return nil, err
	}

	stats, err := s.mutate(ctx, movieUUID, func(tx *repository.Repository) error {
		existing, err := tx.Review.FindByUserAndMovie(ctx, userID, movieUUID)
		if err != nil {
			return utils.ErrInternal("Failed to delete review", err)
		}
		if existing == nil {
			return utils.ErrNotFound("Review not found")
		}
		return storeErr(tx.Review.Delete(ctx, existing.ID), "Failed to delete review", "Review not found")
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Review deleted",
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movieID),
	)

	return resultResponse(nil, stats), nil
}

func (s *reviewService) ModerateReview(ctx context.Context, movieID, reviewID string) (*response.ReviewResultResponse, error) {
	movieUUID, err := parseID(movieID, "movie")
	if err != nil {
		return nil, err
	}
	reviewUUID, err := parseID(reviewID, "review")
	if err != nil {
		return nil, err
	}

	stats, err := s.mutate(ctx, movieUUID, func(tx *repository.Repository) error {
		review, err := tx.Review.FindByID(ctx, reviewUUID)
		if err != nil {
			return utils.ErrInternal("Failed to delete review", err)
		}
		if review == nil || review.MovieID != movieUUID {
			return utils.ErrNotFound("Review not found")
		}
		return storeErr(tx.Review.Delete(ctx, reviewUUID), "Failed to delete review", "Review not found")
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Review moderated",
		zap.String("review_id", reviewID),
		zap.String("movie_id", movieID),
	)

	return resultResponse(nil, stats), nil
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error) {
	movieUUID, err := parseID(movieID, "movie")
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get reviews", err)
	}
	if movie == nil {
		return nil, utils.ErrNotFound("Movie not found")
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieUUID)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get reviews", err)
	}

	out := make([]response.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, response.ReviewToResponse(&r.Review, r.Username))
	}
	return out, nil
}

func (s *reviewService) GetHighlights(ctx context.Context) (*response.ReviewHighlightsResponse, error) {
	topRated, err := s.repo.Movie.ListByRating(ctx, 0, highlightsLimit)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get review highlights", err)
	}

	mostDiscussed, err := s.repo.Movie.ListByRatingCount(ctx, highlightsLimit)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get review highlights", err)
	}

	return &response.ReviewHighlightsResponse{
		TopRatedMovies:      response.MoviesToRatingResponse(topRated),
		MostDiscussedMovies: response.MoviesToRatingResponse(mostDiscussed),
	}, nil
}
