package request

import "time"

type AwardRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
	Won      bool   `json:"won"`
	Year     int    `json:"year" validate:"omitempty,min=1870,max=2200"`
}

// CreateMovieRequest names the director and cast; they are resolved to
// persons (created on first use) by name.
type CreateMovieRequest struct {
	Title            string         `json:"title" validate:"required,max=255"`
	Genre            []string       `json:"genre" validate:"omitempty,dive,required,max=50"`
	Director         string         `json:"director" validate:"required,max=255"`
	Cast             []string       `json:"cast" validate:"omitempty,dive,required,max=255"`
	ReleaseDate      time.Time      `json:"releaseDate" validate:"required"`
	Runtime          int            `json:"runtime" validate:"required,min=1"`
	Synopsis         string         `json:"synopsis" validate:"required"`
	Language         string         `json:"language" validate:"required"`
	CoverPhoto       *string        `json:"coverPhoto,omitempty" validate:"omitempty,url"`
	Trivia           *string        `json:"trivia,omitempty"`
	Goofs            *string        `json:"goofs,omitempty"`
	SoundtrackInfo   *string        `json:"soundtrackInfo,omitempty"`
	AgeRating        *string        `json:"ageRating,omitempty"`
	ParentalGuidance *string        `json:"parentalGuidance,omitempty"`
	Awards           []AwardRequest `json:"awards,omitempty" validate:"omitempty,dive"`
}

// UpdateMovieRequest applies only the fields that are present. Rating
// statistics and box office figures are not editable here.
type UpdateMovieRequest struct {
	Title            *string        `json:"title,omitempty" validate:"omitempty,max=255"`
	Genre            []string       `json:"genre,omitempty" validate:"omitempty,dive,required,max=50"`
	Director         *string        `json:"director,omitempty" validate:"omitempty,max=255"`
	Cast             []string       `json:"cast,omitempty" validate:"omitempty,dive,required,max=255"`
	ReleaseDate      *time.Time     `json:"releaseDate,omitempty"`
	Runtime          *int           `json:"runtime,omitempty" validate:"omitempty,min=1"`
	Synopsis         *string        `json:"synopsis,omitempty"`
	Language         *string        `json:"language,omitempty"`
	CoverPhoto       *string        `json:"coverPhoto,omitempty" validate:"omitempty,url"`
	Trivia           *string        `json:"trivia,omitempty"`
	Goofs            *string        `json:"goofs,omitempty"`
	SoundtrackInfo   *string        `json:"soundtrackInfo,omitempty"`
	AgeRating        *string        `json:"ageRating,omitempty"`
	ParentalGuidance *string        `json:"parentalGuidance,omitempty"`
	Awards           []AwardRequest `json:"awards,omitempty" validate:"omitempty,dive"`
}

// UpdateBoxOfficeRequest keeps the stored value for any figure left out.
type UpdateBoxOfficeRequest struct {
	Domestic       *float64 `json:"domestic,omitempty" validate:"omitempty,min=0"`
	International  *float64 `json:"international,omitempty" validate:"omitempty,min=0"`
	OpeningWeekend *float64 `json:"openingWeekend,omitempty" validate:"omitempty,min=0"`
}

type SearchMoviesRequest struct {
	Title         string
	Genres        []string
	Director      string
	Actor         string
	MinRating     *float64 `validate:"omitempty,min=0,max=5"`
	MaxRating     *float64 `validate:"omitempty,min=0,max=5"`
	ReleaseYear   int      `validate:"omitempty,min=1870,max=2200"`
	ReleaseDecade int      `validate:"omitempty,min=1870,max=2200"`
	Language      string
	SortBy        string `validate:"omitempty,oneof=rating popularity releaseDate"`
	PaginatedRequest
}
