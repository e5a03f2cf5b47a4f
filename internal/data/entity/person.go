package entity

import "github.com/google/uuid"

const (
	PersonRoleActor    = "Actor"
	PersonRoleDirector = "Director"
)

// Person identity is effectively the (name, role) pair. Names alone are not
// unique.
type Person struct {
	Base
	Name        string      `db:"name"`
	Role        string      `db:"role"`
	Biography   *string     `db:"biography"`
	Awards      []Award     `db:"awards"`
	Filmography []uuid.UUID `db:"filmography"`
	Photos      []string    `db:"photos"`
}
