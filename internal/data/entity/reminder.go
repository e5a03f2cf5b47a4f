package entity

import (
	"time"

	"github.com/google/uuid"
)

type Reminder struct {
	BaseSimple
	UserID       uuid.UUID  `db:"user_id"`
	MovieID      uuid.UUID  `db:"movie_id"`
	ReminderDate time.Time  `db:"reminder_date"`
	SentAt       *time.Time `db:"sent_at"`
}

// DueReminder is a pending reminder joined with what the email needs.
type DueReminder struct {
	ReminderID   uuid.UUID
	UserID       uuid.UUID
	Username     string
	Email        string
	MovieID      uuid.UUID
	MovieTitle   string
	ReleaseDate  time.Time
	ReminderDate time.Time
}
