package entity

import (
	"time"

	"github.com/google/uuid"
)

type BoxOffice struct {
	Domestic       float64 `db:"box_office_domestic"`
	International  float64 `db:"box_office_international"`
	OpeningWeekend float64 `db:"box_office_opening_weekend"`
	TotalRevenue   float64 `db:"box_office_total_revenue"`
}

type Movie struct {
	Base
	Title            string      `db:"title"`
	Genres           []string    `db:"genres"`
	DirectorID       uuid.UUID   `db:"director_id"`
	CastIDs          []uuid.UUID `db:"cast_ids"`
	ReleaseDate      time.Time   `db:"release_date"`
	Runtime          int         `db:"runtime"`
	Synopsis         string      `db:"synopsis"`
	Language         string      `db:"language"`
	CoverPhoto       *string     `db:"cover_photo"`
	Trivia           *string     `db:"trivia"`
	Goofs            *string     `db:"goofs"`
	SoundtrackInfo   *string     `db:"soundtrack_info"`
	AgeRating        *string     `db:"age_rating"`
	ParentalGuidance *string     `db:"parental_guidance"`
	BoxOffice        BoxOffice
	Awards           []Award `db:"awards"`

	// Maintained by the rating aggregator only.
	AverageRating float64 `db:"average_rating"`
	RatingCount   int     `db:"rating_count"`

	ViewCount int64 `db:"view_count"`
}

// MovieFilter drives the movie search query. Nil or zero fields are ignored.
type MovieFilter struct {
	Title         string
	Genres        []string
	Director      string
	Actor         string
	MinRating     *float64
	MaxRating     *float64
	ReleaseYear   int
	ReleaseDecade int
	Language      string
	SortBy        string
}
