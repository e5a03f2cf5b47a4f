package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// StatsRepository holds the read-only aggregation queries behind dashboards.
// Every ranking breaks ties by id or name ascending.
type StatsRepository interface {
	TopMoviesByViews(ctx context.Context, limit int) ([]entity.MovieViews, error)
	TopGenres(ctx context.Context, limit int) ([]entity.NameCount, error)
	TopCast(ctx context.Context, limit int) ([]entity.CastAppearance, error)

	CountUsers(ctx context.Context) (int64, error)
	// CountActiveUsers counts users with at least one review.
	CountActiveUsers(ctx context.Context) (int64, error)
	TopReviewers(ctx context.Context, limit int) ([]entity.ReviewerCount, error)

	TopMoviesByAppearances(ctx context.Context, limit int) ([]entity.MovieAppearances, error)
	TopFavoriteGenres(ctx context.Context, limit int) ([]entity.NameCount, error)
	TopFavoriteActors(ctx context.Context, limit int) ([]entity.NameCount, error)
}

type statsRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewStatsRepository(db database.Querier, log *zap.Logger) StatsRepository {
	return &statsRepository{
		db:  db,
		log: log.With(zap.String("repository", "stats")),
	}
}

// collect runs query and scans each row with scan.
func collect[T any](ctx context.Context, r *statsRepository, op, query string, scan func(pgx.Rows) (T, error), args ...any) ([]T, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to run aggregation", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			r.log.Error("Failed to scan aggregation row", zap.String("op", op), zap.Error(err))
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate rows: %w", op, err)
	}
	return out, nil
}

func scanNameCount(rows pgx.Rows) (entity.NameCount, error) {
	var nc entity.NameCount
	err := rows.Scan(&nc.Name, &nc.Count)
	return nc, err
}

func (r *statsRepository) count(ctx context.Context, op, query string) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, query).Scan(&n); err != nil {
		r.log.Error("Failed to count", zap.String("op", op), zap.Error(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (r *statsRepository) TopMoviesByViews(ctx context.Context, limit int) ([]entity.MovieViews, error) {
	query := `
		SELECT id, title, view_count
		FROM movies
		ORDER BY view_count DESC, id ASC
		LIMIT $1
	`
	return collect(ctx, r, "top movies by views", query, func(rows pgx.Rows) (entity.MovieViews, error) {
		var m entity.MovieViews
		err := rows.Scan(&m.ID, &m.Title, &m.ViewCount)
		return m, err
	}, limit)
}

// TopGenres counts one occurrence per genre listed on each movie.
func (r *statsRepository) TopGenres(ctx context.Context, limit int) ([]entity.NameCount, error) {
	query := `
		SELECT g.genre, COUNT(*) AS occurrences
		FROM movies m
		CROSS JOIN LATERAL unnest(m.genres) AS g(genre)
		GROUP BY g.genre
		ORDER BY occurrences DESC, g.genre ASC
		LIMIT $1
	`
	return collect(ctx, r, "top genres", query, scanNameCount, limit)
}

func (r *statsRepository) TopCast(ctx context.Context, limit int) ([]entity.CastAppearance, error) {
	query := `
		SELECT c.person_id, COALESCE(p.name, ''), COUNT(*) AS appearances
		FROM movies m
		CROSS JOIN LATERAL unnest(m.cast_ids) AS c(person_id)
		LEFT JOIN persons p ON p.id = c.person_id
		GROUP BY c.person_id, p.name
		ORDER BY appearances DESC, c.person_id ASC
		LIMIT $1
	`
	return collect(ctx, r, "top cast", query, func(rows pgx.Rows) (entity.CastAppearance, error) {
		var ca entity.CastAppearance
		err := rows.Scan(&ca.PersonID, &ca.Name, &ca.Count)
		return ca, err
	}, limit)
}

func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "count users", `SELECT COUNT(*) FROM users`)
}

func (r *statsRepository) CountActiveUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "count active users", `SELECT COUNT(DISTINCT user_id) FROM reviews`)
}

func (r *statsRepository) TopReviewers(ctx context.Context, limit int) ([]entity.ReviewerCount, error) {
	query := `
		SELECT u.id, u.username, COUNT(rv.id) AS review_count
		FROM users u
		JOIN reviews rv ON rv.user_id = u.id
		GROUP BY u.id, u.username
		ORDER BY review_count DESC, u.id ASC
		LIMIT $1
	`
	return collect(ctx, r, "top reviewers", query, func(rows pgx.Rows) (entity.ReviewerCount, error) {
		var rc entity.ReviewerCount
		err := rows.Scan(&rc.UserID, &rc.Username, &rc.ReviewCount)
		return rc, err
	}, limit)
}

func (r *statsRepository) TopMoviesByAppearances(ctx context.Context, limit int) ([]entity.MovieAppearances, error) {
	query := `
		SELECT id, title, genres, cast_ids,
		       cardinality(genres) + cardinality(cast_ids) AS total
		FROM movies
		ORDER BY total DESC, id ASC
		LIMIT $1
	`
	return collect(ctx, r, "top movies by appearances", query, func(rows pgx.Rows) (entity.MovieAppearances, error) {
		var ma entity.MovieAppearances
		err := rows.Scan(&ma.ID, &ma.Title, &ma.Genres, &ma.CastIDs, &ma.TotalAppearances)
		return ma, err
	}, limit)
}

func (r *statsRepository) TopFavoriteGenres(ctx context.Context, limit int) ([]entity.NameCount, error) {
	query := `
		SELECT g.genre, COUNT(*) AS fans
		FROM users u
		CROSS JOIN LATERAL unnest(u.favorite_genres) AS g(genre)
		GROUP BY g.genre
		ORDER BY fans DESC, g.genre ASC
		LIMIT $1
	`
	return collect(ctx, r, "top favorite genres", query, scanNameCount, limit)
}

func (r *statsRepository) TopFavoriteActors(ctx context.Context, limit int) ([]entity.NameCount, error) {
	query := `
		SELECT a.actor, COUNT(*) AS fans
		FROM users u
		CROSS JOIN LATERAL unnest(u.favorite_actors) AS a(actor)
		GROUP BY a.actor
		ORDER BY fans DESC, a.actor ASC
		LIMIT $1
	`
	return collect(ctx, r, "top favorite actors", query, scanNameCount, limit)
}
