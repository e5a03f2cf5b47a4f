package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	Base
	UserID     uuid.UUID `db:"user_id"`
	MovieID    uuid.UUID `db:"movie_id"`
	Rating     int       `db:"rating"` // 1-5
	ReviewText *string   `db:"review_text"`
}

// ReviewWithUser is a review joined to its author for listings.
type ReviewWithUser struct {
	Review
	Username string `db:"username"`
	Email    string `db:"email"`
}
