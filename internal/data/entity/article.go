package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ArticleCategoryUpcoming = "Upcoming Movies"
	ArticleCategoryActor    = "Actor Updates"
	ArticleCategoryIndustry = "Industry News"
)

type Article struct {
	Base
	Title          string      `db:"title"`
	Content        string      `db:"content"`
	Category       string      `db:"category"`
	RelatedMovies  []uuid.UUID `db:"related_movies"`
	RelatedPersons []uuid.UUID `db:"related_persons"`
	CoverPhoto     *string     `db:"cover_photo"`
	CreatedBy      uuid.UUID   `db:"created_by"`
	PublishedDate  time.Time   `db:"published_date"`
}
