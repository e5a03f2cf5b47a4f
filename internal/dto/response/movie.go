package response

import (
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
)

type PersonSummary struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

type BoxOfficeResponse struct {
	Domestic       float64 `json:"domestic"`
	International  float64 `json:"international"`
	OpeningWeekend float64 `json:"openingWeekend"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

type MovieResponse struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Genre            []string          `json:"genre"`
	Director         PersonSummary     `json:"director"`
	Cast             []PersonSummary   `json:"cast"`
	ReleaseDate      time.Time         `json:"releaseDate"`
	Runtime          int               `json:"runtime"`
	Synopsis         string            `json:"synopsis"`
	Language         string            `json:"language"`
	CoverPhoto       *string           `json:"coverPhoto,omitempty"`
	Trivia           *string           `json:"trivia,omitempty"`
	Goofs            *string           `json:"goofs,omitempty"`
	SoundtrackInfo   *string           `json:"soundtrackInfo,omitempty"`
	AgeRating        *string           `json:"ageRating,omitempty"`
	ParentalGuidance *string           `json:"parentalGuidance,omitempty"`
	BoxOffice        BoxOfficeResponse `json:"boxOffice"`
	Awards           []AwardResponse   `json:"awards"`
	AverageRating    float64           `json:"averageRating"`
	RatingCount      int               `json:"ratingCount"`
	ViewCount        int64             `json:"viewCount"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// MovieSummary is the short form used inside other resources.
type MovieSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Genre       []string  `json:"genre"`
	ReleaseDate time.Time `json:"releaseDate"`
}

func personSummary(id uuid.UUID, persons map[uuid.UUID]*entity.Person) PersonSummary {
	summary := PersonSummary{ID: id.String()}
	if p, ok := persons[id]; ok {
		summary.Name = p.Name
		summary.Role = p.Role
	}
	return summary
}

// MovieToResponse resolves director and cast names from persons; ids that
// are missing from the map are returned without a name.
func MovieToResponse(movie *entity.Movie, persons map[uuid.UUID]*entity.Person) MovieResponse {
	cast := make([]PersonSummary, 0, len(movie.CastIDs))
	for _, id := range movie.CastIDs {
		cast = append(cast, personSummary(id, persons))
	}

	return MovieResponse{
		ID:               movie.ID.String(),
		Title:            movie.Title,
		Genre:            nonNil(movie.Genres),
		Director:         personSummary(movie.DirectorID, persons),
		Cast:             cast,
		ReleaseDate:      movie.ReleaseDate,
		Runtime:          movie.Runtime,
		Synopsis:         movie.Synopsis,
		Language:         movie.Language,
		CoverPhoto:       movie.CoverPhoto,
		Trivia:           movie.Trivia,
		Goofs:            movie.Goofs,
		SoundtrackInfo:   movie.SoundtrackInfo,
		AgeRating:        movie.AgeRating,
		ParentalGuidance: movie.ParentalGuidance,
		BoxOffice: BoxOfficeResponse{
			Domestic:       movie.BoxOffice.Domestic,
			International:  movie.BoxOffice.International,
			OpeningWeekend: movie.BoxOffice.OpeningWeekend,
			TotalRevenue:   movie.BoxOffice.TotalRevenue,
		},
		Awards:        AwardsToResponse(movie.Awards),
		AverageRating: movie.AverageRating,
		RatingCount:   movie.RatingCount,
		ViewCount:     movie.ViewCount,
		CreatedAt:     movie.CreatedAt,
		UpdatedAt:     movie.UpdatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie, persons map[uuid.UUID]*entity.Person) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, MovieToResponse(m, persons))
	}
	return out
}

func MovieToSummary(movie *entity.Movie) MovieSummary {
	return MovieSummary{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Genre:       nonNil(movie.Genres),
		ReleaseDate: movie.ReleaseDate,
	}
}

func MoviesToSummary(movies []*entity.Movie) []MovieSummary {
	out := make([]MovieSummary, 0, len(movies))
	for _, m := range movies {
		out = append(out, MovieToSummary(m))
	}
	return out
}

type PersonResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Biography   *string         `json:"biography,omitempty"`
	Awards      []AwardResponse `json:"awards"`
	Photos      []string        `json:"photos"`
	Filmography []MovieSummary  `json:"filmography"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func PersonToResponse(person *entity.Person, filmography []*entity.Movie) PersonResponse {
	return PersonResponse{
		ID:          person.ID.String(),
		Name:        person.Name,
		Role:        person.Role,
		Biography:   person.Biography,
		Awards:      AwardsToResponse(person.Awards),
		Photos:      nonNil(person.Photos),
		Filmography: MoviesToSummary(filmography),
		CreatedAt:   person.CreatedAt,
	}
}
