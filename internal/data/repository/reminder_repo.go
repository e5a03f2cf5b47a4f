package repository

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *entity.Reminder) error
	// FindPendingByUser returns the user's unsent reminders, soonest first.
	FindPendingByUser(ctx context.Context, userID uuid.UUID) ([]entity.DueReminder, error)
	// FindDue returns unsent reminders dated at or before asOf, for users
	// that opted into email notifications, grouped by user.
	FindDue(ctx context.Context, asOf time.Time) ([]entity.DueReminder, error)
	MarkSent(ctx context.Context, ids []uuid.UUID, sentAt time.Time) error
}

type reminderRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewReminderRepository(db database.Querier, log *zap.Logger) ReminderRepository {
	return &reminderRepository{
		db:  db,
		log: log.With(zap.String("repository", "reminder")),
	}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (id, user_id, movie_id, reminder_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		reminder.ID,
		reminder.UserID,
		reminder.MovieID,
		reminder.ReminderDate,
		reminder.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create reminder",
			zap.Error(err),
			zap.String("user_id", reminder.UserID.String()),
			zap.String("movie_id", reminder.MovieID.String()),
		)
		return fmt.Errorf("create reminder: %w", err)
	}

	return nil
}

const dueReminderSelect = `
	SELECT rm.id, u.id, u.username, u.email, m.id, m.title, m.release_date, rm.reminder_date
	FROM reminders rm
	JOIN users u ON u.id = rm.user_id
	JOIN movies m ON m.id = rm.movie_id`

func (r *reminderRepository) queryDue(ctx context.Context, op, query string, args ...any) ([]entity.DueReminder, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query reminders", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	reminders := make([]entity.DueReminder, 0)
	for rows.Next() {
		var due entity.DueReminder
		err := rows.Scan(
			&due.ReminderID,
			&due.UserID,
			&due.Username,
			&due.Email,
			&due.MovieID,
			&due.MovieTitle,
			&due.ReleaseDate,
			&due.ReminderDate,
		)
		if err != nil {
			r.log.Error("Failed to scan reminder row", zap.String("op", op), zap.Error(err))
			return nil, fmt.Errorf("%s: scan reminder: %w", op, err)
		}
		reminders = append(reminders, due)
	}

	return reminders, rows.Err()
}

func (r *reminderRepository) FindPendingByUser(ctx context.Context, userID uuid.UUID) ([]entity.DueReminder, error) {
	query := dueReminderSelect + `
		WHERE rm.user_id = $1 AND rm.sent_at IS NULL
		ORDER BY rm.reminder_date ASC, rm.id ASC
	`
	return r.queryDue(ctx, "find pending reminders", query, userID)
}

func (r *reminderRepository) FindDue(ctx context.Context, asOf time.Time) ([]entity.DueReminder, error) {
	query := dueReminderSelect + `
		WHERE rm.sent_at IS NULL AND rm.reminder_date <= $1 AND u.notify_email
		ORDER BY u.id ASC, rm.reminder_date ASC, rm.id ASC
	`
	return r.queryDue(ctx, "find due reminders", query, asOf)
}

func (r *reminderRepository) MarkSent(ctx context.Context, ids []uuid.UUID, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := r.db.Exec(ctx, `UPDATE reminders SET sent_at = $2 WHERE id = ANY($1) AND sent_at IS NULL`, ids, sentAt)
	if err != nil {
		r.log.Error("Failed to mark reminders sent",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return fmt.Errorf("mark reminders sent: %w", err)
	}
	return nil
}
