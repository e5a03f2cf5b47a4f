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

type DiscussionRepository interface {
	Create(ctx context.Context, discussion *entity.Discussion) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Discussion, error)
	FindAll(ctx context.Context, category string, offset, limit int) ([]*entity.Discussion, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddReply(ctx context.Context, discussionID uuid.UUID, reply entity.Reply) error
	RemoveReply(ctx context.Context, discussionID, replyID uuid.UUID) error
}

const discussionColumns = `
	id, title, content, category, related_movie_id, related_person_id,
	user_id, replies, created_at`

type discussionRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewDiscussionRepository(db database.Querier, log *zap.Logger) DiscussionRepository {
	return &discussionRepository{
		db:  db,
		log: log.With(zap.String("repository", "discussion")),
	}
}

func scanDiscussion(row rowScanner) (*entity.Discussion, error) {
	var discussion entity.Discussion
	err := row.Scan(
		&discussion.ID,
		&discussion.Title,
		&discussion.Content,
		&discussion.Category,
		&discussion.RelatedMovieID,
		&discussion.RelatedPersonID,
		&discussion.UserID,
		&discussion.Replies,
		&discussion.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &discussion, nil
}

func (r *discussionRepository) Create(ctx context.Context, discussion *entity.Discussion) error {
	query := `
		INSERT INTO discussions (id, title, content, category, related_movie_id,
		                         related_person_id, user_id, replies, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		discussion.ID,
		discussion.Title,
		discussion.Content,
		discussion.Category,
		discussion.RelatedMovieID,
		discussion.RelatedPersonID,
		discussion.UserID,
		orEmpty(discussion.Replies),
		discussion.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create discussion",
			zap.Error(err),
			zap.String("user_id", discussion.UserID.String()),
		)
		return fmt.Errorf("create discussion: %w", err)
	}

	return nil
}

func (r *discussionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Discussion, error) {
	discussion, err := scanDiscussion(r.db.QueryRow(ctx, `SELECT `+discussionColumns+` FROM discussions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find discussion by ID",
			zap.Error(err),
			zap.String("discussion_id", id.String()),
		)
		return nil, fmt.Errorf("find discussion %s: %w", id.String(), err)
	}
	return discussion, nil
}

// FindAll lists discussions, newest first. An empty category matches all.
func (r *discussionRepository) FindAll(ctx context.Context, category string, offset, limit int) ([]*entity.Discussion, error) {
	query := `
		SELECT ` + discussionColumns + `
		FROM discussions
		WHERE ($1 = '' OR category = $1)
		ORDER BY created_at DESC, id ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, category, limit, offset)
	if err != nil {
		r.log.Error("Failed to find discussions",
			zap.Error(err),
			zap.String("category", category),
		)
		return nil, fmt.Errorf("find discussions: %w", err)
	}
	defer rows.Close()

	discussions := make([]*entity.Discussion, 0)
	for rows.Next() {
		discussion, err := scanDiscussion(rows)
		if err != nil {
			r.log.Error("Failed to scan discussion row", zap.Error(err))
			return nil, fmt.Errorf("scan discussion row: %w", err)
		}
		discussions = append(discussions, discussion)
	}

	return discussions, rows.Err()
}

func (r *discussionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM discussions WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete discussion",
			zap.Error(err),
			zap.String("discussion_id", id.String()),
		)
		return fmt.Errorf("delete discussion %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// AddReply appends in place so concurrent replies are not lost.
func (r *discussionRepository) AddReply(ctx context.Context, discussionID uuid.UUID, reply entity.Reply) error {
	query := `UPDATE discussions SET replies = replies || $2::jsonb WHERE id = $1`

	result, err := r.db.Exec(ctx, query, discussionID, []entity.Reply{reply})
	if err != nil {
		r.log.Error("Failed to add reply",
			zap.Error(err),
			zap.String("discussion_id", discussionID.String()),
		)
		return fmt.Errorf("add reply to discussion %s: %w", discussionID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *discussionRepository) RemoveReply(ctx context.Context, discussionID, replyID uuid.UUID) error {
	query := `
		UPDATE discussions
		SET replies = COALESCE(
			(SELECT jsonb_agg(elem ORDER BY ord)
			 FROM jsonb_array_elements(replies) WITH ORDINALITY AS t(elem, ord)
			 WHERE elem->>'id' <> $2),
			'[]'::jsonb)
		WHERE id = $1
		  AND EXISTS (SELECT 1 FROM jsonb_array_elements(replies) elem WHERE elem->>'id' = $2)
	`

	result, err := r.db.Exec(ctx, query, discussionID, replyID.String())
	if err != nil {
		r.log.Error("Failed to remove reply",
			zap.Error(err),
			zap.String("discussion_id", discussionID.String()),
			zap.String("reply_id", replyID.String()),
		)
		return fmt.Errorf("remove reply %s: %w", replyID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
