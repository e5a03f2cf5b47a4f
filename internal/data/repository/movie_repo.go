package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	// CRUD Movie
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error)
	CountAll(ctx context.Context) (int64, error)
	Search(ctx context.Context, filter entity.MovieFilter, offset, limit int) ([]*entity.Movie, error)

	// Derived fields
	UpdateRatingStats(ctx context.Context, movieID uuid.UUID, average float64, count int) error
	UpdateBoxOffice(ctx context.Context, movieID uuid.UUID, boxOffice entity.BoxOffice) error
	IncrementViewCount(ctx context.Context, movieID uuid.UUID) error

	// Rankings
	FindByGenresOrCast(ctx context.Context, genres []string, castIDs []uuid.UUID, limit int) ([]*entity.Movie, error)
	FindSimilar(ctx context.Context, movie *entity.Movie, limit int) ([]*entity.Movie, error)
	ListByViewCount(ctx context.Context, offset, limit int) ([]*entity.Movie, error)
	ListByRating(ctx context.Context, offset, limit int) ([]*entity.Movie, error)
	ListByRatingCount(ctx context.Context, limit int) ([]*entity.Movie, error)
	TopRatedReleasedBetween(ctx context.Context, from, to time.Time, limit int) ([]*entity.Movie, error)
	TopRatedByGenre(ctx context.Context, genre string, limit int) ([]*entity.Movie, error)
	ReleasingBetween(ctx context.Context, from, to time.Time) ([]*entity.Movie, error)
}

const movieColumns = `
	id, title, genres, director_id, cast_ids, release_date, runtime, synopsis,
	language, cover_photo, trivia, goofs, soundtrack_info, age_rating,
	parental_guidance, box_office_domestic, box_office_international,
	box_office_opening_weekend, box_office_total_revenue, awards,
	average_rating, rating_count, view_count, created_at, updated_at`

type movieRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewMovieRepository(db database.Querier, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func scanMovie(row rowScanner) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genres,
		&movie.DirectorID,
		&movie.CastIDs,
		&movie.ReleaseDate,
		&movie.Runtime,
		&movie.Synopsis,
		&movie.Language,
		&movie.CoverPhoto,
		&movie.Trivia,
		&movie.Goofs,
		&movie.SoundtrackInfo,
		&movie.AgeRating,
		&movie.ParentalGuidance,
		&movie.BoxOffice.Domestic,
		&movie.BoxOffice.International,
		&movie.BoxOffice.OpeningWeekend,
		&movie.BoxOffice.TotalRevenue,
		&movie.Awards,
		&movie.AverageRating,
		&movie.RatingCount,
		&movie.ViewCount,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) queryMovies(ctx context.Context, op string, query string, args ...any) ([]*entity.Movie, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query movies", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.String("op", op), zap.Error(err))
			return nil, fmt.Errorf("%s: scan movie: %w", op, err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%s: iterate rows: %w", op, err)
	}

	return movies, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, genres, director_id, cast_ids, release_date,
		                    runtime, synopsis, language, cover_photo, trivia, goofs,
		                    soundtrack_info, age_rating, parental_guidance, awards,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		orEmpty(movie.Genres),
		movie.DirectorID,
		orEmpty(movie.CastIDs),
		movie.ReleaseDate,
		movie.Runtime,
		movie.Synopsis,
		movie.Language,
		movie.CoverPhoto,
		movie.Trivia,
		movie.Goofs,
		movie.SoundtrackInfo,
		movie.AgeRating,
		movie.ParentalGuidance,
		orEmpty(movie.Awards),
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.Movie, error) {
	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie %s: %w", id.String(), err)
	}
	return movie, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return r.findOne(ctx, `SELECT `+movieColumns+` FROM movies WHERE id = $1`, id)
}

// FindByIDForUpdate locks the movie row until the surrounding transaction
// ends, serialising writers of its derived fields.
func (r *movieRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return r.findOne(ctx, `SELECT `+movieColumns+` FROM movies WHERE id = $1 FOR UPDATE`, id)
}

func (r *movieRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Movie, error) {
	if len(ids) == 0 {
		return []*entity.Movie{}, nil
	}
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE id = ANY($1)
		ORDER BY array_position($1, id)
	`
	return r.queryMovies(ctx, "find movies by ids", query, ids)
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, genres = $3, director_id = $4, cast_ids = $5,
		    release_date = $6, runtime = $7, synopsis = $8, language = $9,
		    cover_photo = $10, trivia = $11, goofs = $12, soundtrack_info = $13,
		    age_rating = $14, parental_guidance = $15, awards = $16,
		    updated_at = $17
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		orEmpty(movie.Genres),
		movie.DirectorID,
		orEmpty(movie.CastIDs),
		movie.ReleaseDate,
		movie.Runtime,
		movie.Synopsis,
		movie.Language,
		movie.CoverPhoto,
		movie.Trivia,
		movie.Goofs,
		movie.SoundtrackInfo,
		movie.AgeRating,
		movie.ParentalGuidance,
		orEmpty(movie.Awards),
		movie.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the movie. Reviews and reminders go with it through
// ON DELETE CASCADE.
func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}

func (r *movieRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		ORDER BY release_date DESC, id ASC
		LIMIT $1 OFFSET $2
	`
	return r.queryMovies(ctx, "find all movies", query, limit, offset)
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return total, nil
}

// Search builds the WHERE clause from the non-empty filter fields. Director
// and actor accept either a person id or a case-insensitive name.
func (r *movieRepository) Search(ctx context.Context, filter entity.MovieFilter, offset, limit int) ([]*entity.Movie, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + movieColumns + ` FROM movies WHERE TRUE`)

	args := []any{}
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Title != "" {
		queryBuilder.WriteString(" AND title ILIKE '%' || " + next(filter.Title) + " || '%'")
	}
	if len(filter.Genres) > 0 {
		queryBuilder.WriteString(" AND genres && " + next(filter.Genres))
	}
	if filter.Director != "" {
		if id, err := uuid.Parse(filter.Director); err == nil {
			queryBuilder.WriteString(" AND director_id = " + next(id))
		} else {
			queryBuilder.WriteString(" AND director_id IN (SELECT id FROM persons WHERE name ILIKE " +
				next(filter.Director) + " AND role = 'Director')")
		}
	}
	if filter.Actor != "" {
		if id, err := uuid.Parse(filter.Actor); err == nil {
			queryBuilder.WriteString(" AND " + next(id) + " = ANY(cast_ids)")
		} else {
			queryBuilder.WriteString(" AND cast_ids && ARRAY(SELECT id FROM persons WHERE name ILIKE " +
				next(filter.Actor) + " AND role = 'Actor')")
		}
	}
	if filter.MinRating != nil {
		queryBuilder.WriteString(" AND average_rating >= " + next(*filter.MinRating))
	}
	if filter.MaxRating != nil {
		queryBuilder.WriteString(" AND average_rating <= " + next(*filter.MaxRating))
	}
	if filter.ReleaseYear > 0 {
		from := time.Date(filter.ReleaseYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		queryBuilder.WriteString(" AND release_date >= " + next(from) + " AND release_date < " + next(from.AddDate(1, 0, 0)))
	}
	if filter.ReleaseDecade > 0 {
		start := filter.ReleaseDecade - filter.ReleaseDecade%10
		from := time.Date(start, time.January, 1, 0, 0, 0, 0, time.UTC)
		queryBuilder.WriteString(" AND release_date >= " + next(from) + " AND release_date < " + next(from.AddDate(10, 0, 0)))
	}
	if filter.Language != "" {
		queryBuilder.WriteString(" AND language ILIKE '%' || " + next(filter.Language) + " || '%'")
	}

	switch filter.SortBy {
	case "rating":
		queryBuilder.WriteString(" ORDER BY average_rating DESC, id ASC")
	case "popularity":
		queryBuilder.WriteString(" ORDER BY view_count DESC, id ASC")
	case "releaseDate":
		queryBuilder.WriteString(" ORDER BY release_date DESC, id ASC")
	default:
		queryBuilder.WriteString(" ORDER BY created_at DESC, id ASC")
	}

	queryBuilder.WriteString(" LIMIT " + next(limit) + " OFFSET " + next(offset))

	movies, err := r.queryMovies(ctx, "search movies", queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}

	r.log.Debug("Movies searched",
		zap.Int("count", len(movies)),
		zap.Int("offset", offset),
		zap.Int("limit", limit),
	)
	return movies, nil
}

func (r *movieRepository) UpdateRatingStats(ctx context.Context, movieID uuid.UUID, average float64, count int) error {
	query := `
		UPDATE movies
		SET average_rating = $2, rating_count = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, movieID, average, count)
	if err != nil {
		r.log.Error("Failed to update movie rating stats",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.Float64("average", average),
			zap.Int("count", count),
		)
		return fmt.Errorf("update rating stats for movie %s: %w", movieID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *movieRepository) UpdateBoxOffice(ctx context.Context, movieID uuid.UUID, boxOffice entity.BoxOffice) error {
	query := `
		UPDATE movies
		SET box_office_domestic = $2, box_office_international = $3,
		    box_office_opening_weekend = $4, box_office_total_revenue = $5,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movieID,
		boxOffice.Domestic,
		boxOffice.International,
		boxOffice.OpeningWeekend,
		boxOffice.TotalRevenue,
	)
	if err != nil {
		r.log.Error("Failed to update box office",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("update box office for movie %s: %w", movieID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *movieRepository) IncrementViewCount(ctx context.Context, movieID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE movies SET view_count = view_count + 1 WHERE id = $1`, movieID)
	if err != nil {
		r.log.Error("Failed to increment view count",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("increment view count for movie %s: %w", movieID.String(), err)
	}
	return nil
}

func (r *movieRepository) FindByGenresOrCast(ctx context.Context, genres []string, castIDs []uuid.UUID, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE genres && $1 OR cast_ids && $2
		ORDER BY created_at ASC, id ASC
		LIMIT $3
	`
	return r.queryMovies(ctx, "find movies by genres or cast", query, orEmpty(genres), orEmpty(castIDs), limit)
}

func (r *movieRepository) FindSimilar(ctx context.Context, movie *entity.Movie, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE id <> $1 AND (genres && $2 OR director_id = $3)
		ORDER BY average_rating DESC, id ASC
		LIMIT $4
	`
	return r.queryMovies(ctx, "find similar movies", query, movie.ID, orEmpty(movie.Genres), movie.DirectorID, limit)
}

func (r *movieRepository) ListByViewCount(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		ORDER BY view_count DESC, id ASC
		LIMIT $1 OFFSET $2
	`
	return r.queryMovies(ctx, "list movies by view count", query, limit, offset)
}

func (r *movieRepository) ListByRating(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		ORDER BY average_rating DESC, id ASC
		LIMIT $1 OFFSET $2
	`
	return r.queryMovies(ctx, "list movies by rating", query, limit, offset)
}

func (r *movieRepository) ListByRatingCount(ctx context.Context, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		ORDER BY rating_count DESC, id ASC
		LIMIT $1
	`
	return r.queryMovies(ctx, "list movies by rating count", query, limit)
}

func (r *movieRepository) TopRatedReleasedBetween(ctx context.Context, from, to time.Time, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE release_date >= $1 AND release_date < $2
		ORDER BY average_rating DESC, id ASC
		LIMIT $3
	`
	return r.queryMovies(ctx, "top rated movies released between", query, from, to, limit)
}

func (r *movieRepository) TopRatedByGenre(ctx context.Context, genre string, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE $1 = ANY(genres)
		ORDER BY average_rating DESC, id ASC
		LIMIT $2
	`
	return r.queryMovies(ctx, "top rated movies by genre", query, genre, limit)
}

func (r *movieRepository) ReleasingBetween(ctx context.Context, from, to time.Time) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE release_date >= $1 AND release_date <= $2
		ORDER BY release_date ASC, id ASC
	`
	return r.queryMovies(ctx, "movies releasing between", query, from, to)
}
