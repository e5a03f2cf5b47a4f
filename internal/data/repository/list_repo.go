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

type ListRepository interface {
	Create(ctx context.Context, list *entity.List) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.List, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.List, error)
	Update(ctx context.Context, list *entity.List) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddFollower(ctx context.Context, listID, userID uuid.UUID) error
	RemoveFollower(ctx context.Context, listID, userID uuid.UUID) error
}

const listColumns = `id, title, description, movie_ids, owner_id, follower_ids, created_at, updated_at`

type listRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewListRepository(db database.Querier, log *zap.Logger) ListRepository {
	return &listRepository{
		db:  db,
		log: log.With(zap.String("repository", "list")),
	}
}

func scanList(row rowScanner) (*entity.List, error) {
	var list entity.List
	err := row.Scan(
		&list.ID,
		&list.Title,
		&list.Description,
		&list.MovieIDs,
		&list.OwnerID,
		&list.FollowerIDs,
		&list.CreatedAt,
		&list.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *listRepository) Create(ctx context.Context, list *entity.List) error {
	query := `
		INSERT INTO lists (id, title, description, movie_ids, owner_id, follower_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		list.ID,
		list.Title,
		list.Description,
		orEmpty(list.MovieIDs),
		list.OwnerID,
		orEmpty(list.FollowerIDs),
		list.CreatedAt,
		list.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create list",
			zap.Error(err),
			zap.String("owner_id", list.OwnerID.String()),
		)
		return fmt.Errorf("create list: %w", err)
	}

	return nil
}

func (r *listRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.List, error) {
	list, err := scanList(r.db.QueryRow(ctx, `SELECT `+listColumns+` FROM lists WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find list by ID",
			zap.Error(err),
			zap.String("list_id", id.String()),
		)
		return nil, fmt.Errorf("find list %s: %w", id.String(), err)
	}
	return list, nil
}

func (r *listRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.List, error) {
	query := `
		SELECT ` + listColumns + `
		FROM lists
		ORDER BY created_at DESC, id ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find lists", zap.Error(err))
		return nil, fmt.Errorf("find lists: %w", err)
	}
	defer rows.Close()

	lists := make([]*entity.List, 0)
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			r.log.Error("Failed to scan list row", zap.Error(err))
			return nil, fmt.Errorf("scan list row: %w", err)
		}
		lists = append(lists, list)
	}

	return lists, rows.Err()
}

func (r *listRepository) Update(ctx context.Context, list *entity.List) error {
	query := `
		UPDATE lists
		SET title = $2, description = $3, movie_ids = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		list.ID,
		list.Title,
		list.Description,
		orEmpty(list.MovieIDs),
		list.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update list",
			zap.Error(err),
			zap.String("list_id", list.ID.String()),
		)
		return fmt.Errorf("update list %s: %w", list.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *listRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM lists WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete list",
			zap.Error(err),
			zap.String("list_id", id.String()),
		)
		return fmt.Errorf("delete list %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *listRepository) AddFollower(ctx context.Context, listID, userID uuid.UUID) error {
	query := `
		UPDATE lists
		SET follower_ids = CASE WHEN $2 = ANY(follower_ids) THEN follower_ids
		                        ELSE array_append(follower_ids, $2) END,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, listID, userID)
	if err != nil {
		r.log.Error("Failed to add list follower",
			zap.Error(err),
			zap.String("list_id", listID.String()),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("follow list %s: %w", listID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *listRepository) RemoveFollower(ctx context.Context, listID, userID uuid.UUID) error {
	query := `UPDATE lists SET follower_ids = array_remove(follower_ids, $2), updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, listID, userID)
	if err != nil {
		r.log.Error("Failed to remove list follower",
			zap.Error(err),
			zap.String("list_id", listID.String()),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("unfollow list %s: %w", listID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
