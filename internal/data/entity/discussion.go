package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	DiscussionCategoryMovie   = "Movie"
	DiscussionCategoryActor   = "Actor"
	DiscussionCategoryGenre   = "Genre"
	DiscussionCategoryGeneral = "General"
)

// Reply has no identity outside its discussion; it is stored embedded.
type Reply struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Discussion struct {
	BaseSimple
	Title           string     `db:"title"`
	Content         string     `db:"content"`
	Category        string     `db:"category"`
	RelatedMovieID  *uuid.UUID `db:"related_movie_id"`
	RelatedPersonID *uuid.UUID `db:"related_person_id"`
	UserID          uuid.UUID  `db:"user_id"`
	Replies         []Reply    `db:"replies"`
}
