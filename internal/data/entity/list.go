package entity

import "github.com/google/uuid"

type List struct {
	Base
	Title       string      `db:"title"`
	Description *string     `db:"description"`
	MovieIDs    []uuid.UUID `db:"movie_ids"`
	OwnerID     uuid.UUID   `db:"owner_id"`
	FollowerIDs []uuid.UUID `db:"follower_ids"`
}
