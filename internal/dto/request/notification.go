package request

import "time"

type SetReminderRequest struct {
	MovieID      string    `json:"movieId" validate:"required,uuid"`
	ReminderDate time.Time `json:"reminderDate" validate:"required"`
}
