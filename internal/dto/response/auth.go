package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type NotificationPreferencesResponse struct {
	Email     bool `json:"email"`
	Dashboard bool `json:"dashboard"`
}

type UserResponse struct {
	ID                      string                          `json:"id"`
	Username                string                          `json:"username"`
	Email                   string                          `json:"email"`
	Role                    string                          `json:"role"`
	FavoriteGenres          []string                        `json:"favoriteGenres"`
	FavoriteActors          []string                        `json:"favoriteActors"`
	Wishlist                []string                        `json:"wishlist"`
	Watchlist               []string                        `json:"watchlist"`
	FollowedLists           []string                        `json:"followedLists"`
	NotificationPreferences NotificationPreferencesResponse `json:"notificationPreferences"`
	CreatedAt               time.Time                       `json:"createdAt"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UserToResponse never exposes the password hash.
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:             user.ID.String(),
		Username:       user.Username,
		Email:          user.Email,
		Role:           string(user.Role),
		FavoriteGenres: nonNil(user.FavoriteGenres),
		FavoriteActors: nonNil(user.FavoriteActors),
		Wishlist:       IDsToStrings(user.Wishlist),
		Watchlist:      IDsToStrings(user.Watchlist),
		FollowedLists:  IDsToStrings(user.FollowedLists),
		NotificationPreferences: NotificationPreferencesResponse{
			Email:     user.Notifications.Email,
			Dashboard: user.Notifications.Dashboard,
		},
		CreatedAt: user.CreatedAt,
	}
}
