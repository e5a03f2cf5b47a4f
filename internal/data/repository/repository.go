package repository

import (
	"context"
	"errors"

	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned by writes that matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
)

type Repository struct {
	db  database.PgxIface
	log *zap.Logger

	User       UserRepository
	Movie      MovieRepository
	Person     PersonRepository
	Review     ReviewRepository
	List       ListRepository
	Discussion DiscussionRepository
	Article    ArticleRepository
	Reminder   ReminderRepository
	Stats      StatsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	r := newRepository(db, log)
	r.db = db
	return r
}

func newRepository(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		log:        log,
		User:       NewUserRepository(q, log),
		Movie:      NewMovieRepository(q, log),
		Person:     NewPersonRepository(q, log),
		Review:     NewReviewRepository(q, log),
		List:       NewListRepository(q, log),
		Discussion: NewDiscussionRepository(q, log),
		Article:    NewArticleRepository(q, log),
		Reminder:   NewReminderRepository(q, log),
		Stats:      NewStatsRepository(q, log),
	}
}

// WithTx runs fn with repositories bound to a single transaction. A
// Repository without a pool (one already inside a transaction, or one
// assembled from mocks) runs fn against itself.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return database.InTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(newRepository(tx, r.log))
	})
}

// Ping reports whether the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.Ping(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// orEmpty keeps NOT NULL array and jsonb columns from receiving NULL.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
