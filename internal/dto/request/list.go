package request

type CreateListRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Movies      []string `json:"movies,omitempty" validate:"omitempty,dive,uuid"`
}

type UpdateListRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Movies      []string `json:"movies,omitempty" validate:"omitempty,dive,uuid"`
}
