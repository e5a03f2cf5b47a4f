package entity

import "github.com/google/uuid"

type MovieViews struct {
	ID        uuid.UUID
	Title     string
	ViewCount int64
}

type MovieRating struct {
	ID            uuid.UUID
	Title         string
	AverageRating float64
	RatingCount   int
}

// NameCount is a generic "value -> occurrences" aggregate row.
type NameCount struct {
	Name  string
	Count int64
}

type CastAppearance struct {
	PersonID uuid.UUID
	Name     string
	Count    int64
}

type ReviewerCount struct {
	UserID      uuid.UUID
	Username    string
	ReviewCount int64
}

type MovieAppearances struct {
	ID               uuid.UUID
	Title            string
	Genres           []string
	CastIDs          []uuid.UUID
	TotalAppearances int
}
