package request

type CreatePersonRequest struct {
	Name      string         `json:"name" validate:"required,max=255"`
	Role      string         `json:"role" validate:"required,max=50"`
	Biography *string        `json:"biography,omitempty"`
	Awards    []AwardRequest `json:"awards,omitempty" validate:"omitempty,dive"`
	Photos    []string       `json:"photos,omitempty" validate:"omitempty,dive,url"`
}
