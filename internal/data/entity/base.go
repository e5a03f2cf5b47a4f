package entity

import (
	"time"

	"github.com/google/uuid"
)

type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

// Award is shared by movies and persons and stored as jsonb.
type Award struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Won      bool   `json:"won"`
	Year     int    `json:"year"`
}
