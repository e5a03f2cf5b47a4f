package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.ReviewWithUser, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	// RatingsByMovie returns every rating recorded for the movie.
	RatingsByMovie(ctx context.Context, movieID uuid.UUID) ([]int, error)
}

const reviewColumns = `id, user_id, movie_id, rating, review_text, created_at, updated_at`

type reviewRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewReviewRepository(db database.Querier, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func scanReview(row rowScanner) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.ReviewText,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, movie_id, rating, review_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.MovieID,
		review.Rating,
		review.ReviewText,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("movie_id", review.MovieID.String()),
		)
		return fmt.Errorf("create review for movie %s by user %s: %w",
			review.MovieID.String(), review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := scanReview(r.db.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.ReviewWithUser, error) {
	query := `
		SELECT r.id, r.user_id, r.movie_id, r.rating, r.review_text, r.created_at, r.updated_at,
		       u.username, u.email
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.movie_id = $1
		ORDER BY r.created_at DESC, r.id ASC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find reviews by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	reviews := make([]*entity.ReviewWithUser, 0)
	for rows.Next() {
		var review entity.ReviewWithUser
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.ReviewText,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.Username,
			&review.Email,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, rows.Err()
}

func (r *reviewRepository) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1 AND movie_id = $2
		LIMIT 1
	`

	review, err := scanReview(r.db.QueryRow(ctx, query, userID, movieID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find review by user %s and movie %s: %w",
			userID.String(), movieID.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, review_text = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.ReviewText,
		review.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

func (r *reviewRepository) RatingsByMovie(ctx context.Context, movieID uuid.UUID) ([]int, error) {
	rows, err := r.db.Query(ctx, `SELECT rating FROM reviews WHERE movie_id = $1`, movieID)
	if err != nil {
		r.log.Error("Failed to read movie ratings",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("read ratings for movie %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	ratings := make([]int, 0)
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			r.log.Error("Failed to scan rating", zap.Error(err))
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}
