package usecase

import (
	"context"
	"math"

	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
)

type RatingStats struct {
	Average float64
	Count   int
}

// ComputeRatingStats averages ratings rounded to one decimal. No ratings
// yields a zero average.
func ComputeRatingStats(ratings []int) RatingStats {
	if len(ratings) == 0 {
		return RatingStats{}
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))

	return RatingStats{
		Average: math.Round(avg*10) / 10,
		Count:   len(ratings),
	}
}

// recomputeRatingStats must run in the same transaction as the review
// mutation that triggered it.
func recomputeRatingStats(ctx context.Context, tx *repository.Repository, movieID uuid.UUID) (RatingStats, error) {
	ratings, err := tx.Review.RatingsByMovie(ctx, movieID)
	if err != nil {
		return RatingStats{}, utils.ErrInternal("Failed to update rating statistics", err)
	}

	stats := ComputeRatingStats(ratings)
	if err := tx.Movie.UpdateRatingStats(ctx, movieID, stats.Average, stats.Count); err != nil {
		return RatingStats{}, utils.ErrInternal("Failed to update rating statistics", err)
	}
	return stats, nil
}
