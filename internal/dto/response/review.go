package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type ReviewResponse struct {
	ID         string    `json:"id"`
	MovieID    string    `json:"movieId"`
	UserID     string    `json:"userId"`
	Username   string    `json:"username,omitempty"`
	Rating     int       `json:"rating"`
	ReviewText *string   `json:"reviewText,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type RatingStatsResponse struct {
	AverageRating float64 `json:"averageRating"`
	RatingCount   int     `json:"ratingCount"`
}

// ReviewResultResponse is returned by review writes together with the
// movie's recomputed statistics.
type ReviewResultResponse struct {
	Review *ReviewResponse     `json:"review,omitempty"`
	Movie  RatingStatsResponse `json:"movie"`
}

type MovieRatingResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	AverageRating float64 `json:"averageRating"`
	RatingCount   int     `json:"ratingCount"`
}

type ReviewHighlightsResponse struct {
	TopRatedMovies      []MovieRatingResponse `json:"topRatedMovies"`
	MostDiscussedMovies []MovieRatingResponse `json:"mostDiscussedMovies"`
}

// Helper converter
func ReviewToResponse(review *entity.Review, username string) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID.String(),
		MovieID:    review.MovieID.String(),
		UserID:     review.UserID.String(),
		Username:   username,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

func MoviesToRatingResponse(movies []*entity.Movie) []MovieRatingResponse {
	out := make([]MovieRatingResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, MovieRatingResponse{
			ID:            m.ID.String(),
			Title:         m.Title,
			AverageRating: m.AverageRating,
			RatingCount:   m.RatingCount,
		})
	}
	return out
}
