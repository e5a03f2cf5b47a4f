package request

type CreateDiscussionRequest struct {
	Title         string  `json:"title" validate:"required,max=255"`
	Content       string  `json:"content" validate:"required"`
	Category      string  `json:"category" validate:"required,oneof=Movie Actor Genre General"`
	RelatedMovie  *string `json:"relatedMovie,omitempty" validate:"omitempty,uuid"`
	RelatedPerson *string `json:"relatedPerson,omitempty" validate:"omitempty,uuid"`
}

type AddReplyRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}
