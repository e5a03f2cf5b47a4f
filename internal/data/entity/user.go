package entity

import "github.com/google/uuid"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type NotificationPreferences struct {
	Email     bool `db:"notify_email"`
	Dashboard bool `db:"notify_dashboard"`
}

type User struct {
	Base
	Username       string   `db:"username"`
	Email          string   `db:"email"`
	PasswordHash   string   `db:"password"`
	FavoriteGenres []string `db:"favorite_genres"`
	// Plain names, resolved to persons at recommendation time.
	FavoriteActors []string    `db:"favorite_actors"`
	Wishlist       []uuid.UUID `db:"wishlist"`
	Watchlist      []uuid.UUID `db:"watchlist"`
	FollowedLists  []uuid.UUID `db:"followed_lists"`
	Notifications  NotificationPreferences
	Role           UserRole `db:"role"`
}
