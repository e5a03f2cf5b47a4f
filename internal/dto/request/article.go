package request

type CreateArticleRequest struct {
	Title          string   `json:"title" validate:"required,max=255"`
	Content        string   `json:"content" validate:"required"`
	Category       string   `json:"category" validate:"required,oneof='Upcoming Movies' 'Actor Updates' 'Industry News'"`
	RelatedMovies  []string `json:"relatedMovies,omitempty" validate:"omitempty,dive,uuid"`
	RelatedPersons []string `json:"relatedPersons,omitempty" validate:"omitempty,dive,uuid"`
	CoverPhoto     *string  `json:"coverPhoto,omitempty" validate:"omitempty,url"`
}

type UpdateArticleRequest struct {
	Title          *string  `json:"title,omitempty" validate:"omitempty,max=255"`
	Content        *string  `json:"content,omitempty"`
	Category       *string  `json:"category,omitempty" validate:"omitempty,oneof='Upcoming Movies' 'Actor Updates' 'Industry News'"`
	RelatedMovies  []string `json:"relatedMovies,omitempty" validate:"omitempty,dive,uuid"`
	RelatedPersons []string `json:"relatedPersons,omitempty" validate:"omitempty,dive,uuid"`
	CoverPhoto     *string  `json:"coverPhoto,omitempty" validate:"omitempty,url"`
}
