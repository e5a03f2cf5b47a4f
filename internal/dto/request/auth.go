package request

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
	AdminKey string `json:"adminKey,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type NotificationPreferencesRequest struct {
	Email     *bool `json:"email,omitempty"`
	Dashboard *bool `json:"dashboard,omitempty"`
}

// UpdateProfileRequest applies only the fields that are present.
type UpdateProfileRequest struct {
	Username                *string                         `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email                   *string                         `json:"email,omitempty" validate:"omitempty,email"`
	FavoriteGenres          []string                        `json:"favoriteGenres,omitempty" validate:"omitempty,max=50,dive,required,max=50"`
	FavoriteActors          []string                        `json:"favoriteActors,omitempty" validate:"omitempty,max=50,dive,required,max=100"`
	NotificationPreferences *NotificationPreferencesRequest `json:"notificationPreferences,omitempty"`
}
