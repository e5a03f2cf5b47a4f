package request

type CreateReviewRequest struct {
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	ReviewText *string `json:"reviewText,omitempty" validate:"omitempty,max=2000"`
}

type UpdateReviewRequest struct {
	Rating     *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	ReviewText *string `json:"reviewText,omitempty" validate:"omitempty,max=2000"`
}
