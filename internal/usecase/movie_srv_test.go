package usecase

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMovieResolvesPersons(t *testing.T) {
	existing := &entity.Person{Base: entity.Base{ID: uuid.New()}, Name: "Keanu Reeves", Role: entity.PersonRoleActor}
	persons := newFakePersonRepo(existing)
	movies := newFakeMovieRepo()
	svc := NewMovieService(&repository.Repository{Movie: movies, Person: persons}, nopLog)

	got, err := svc.CreateMovie(context.Background(), &request.CreateMovieRequest{
		Title:       "The Matrix",
		Genre:       []string{"Sci-Fi", "Action", "Sci-Fi"},
		Director:    "Lana Wachowski",
		Cast:        []string{"Keanu Reeves", "Carrie-Anne Moss"},
		ReleaseDate: time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC),
		Runtime:     136,
		Synopsis:    "A hacker learns the truth.",
		Language:    "English",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sci-Fi", "Action"}, got.Genre)
	assert.Equal(t, "Lana Wachowski", got.Director.Name)
	require.Len(t, got.Cast, 2)
	assert.Equal(t, existing.ID.String(), got.Cast[0].ID)
	assert.Equal(t, "Carrie-Anne Moss", got.Cast[1].Name)

	// director plus one new actor
	assert.Len(t, persons.persons, 3)
	movieID := uuid.MustParse(got.ID)
	assert.Equal(t, []uuid.UUID{movieID}, persons.filmography[existing.ID])
	assert.Len(t, persons.filmography, 3)
	assert.Contains(t, movies.movies, movieID)
}

func TestGetMovieCountsView(t *testing.T) {
	m := newMovie("Heat", "Crime")
	movies := newFakeMovieRepo(m)
	svc := NewMovieService(&repository.Repository{Movie: movies, Person: newFakePersonRepo()}, nopLog)

	got, err := svc.GetMovieByID(context.Background(), m.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)
	assert.Equal(t, int64(1), movies.movies[m.ID].ViewCount)

	_, err = svc.GetMovieByID(context.Background(), uuid.NewString())
	assert.Equal(t, utils.KindNotFound, utils.ErrorKindOf(err))
}

func TestUpdateBoxOfficeKeepsMissingFigures(t *testing.T) {
	m := newMovie("Jaws")
	m.BoxOffice = entity.BoxOffice{Domestic: 100, International: 50, OpeningWeekend: 7, TotalRevenue: 150}
	movies := newFakeMovieRepo(m)
	svc := NewMovieService(&repository.Repository{Movie: movies, Person: newFakePersonRepo()}, nopLog)

	intl := 80.0
	got, err := svc.UpdateBoxOffice(context.Background(), m.ID.String(), &request.UpdateBoxOfficeRequest{International: &intl})
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.BoxOffice.Domestic)
	assert.Equal(t, 80.0, got.BoxOffice.International)
	assert.Equal(t, 7.0, got.BoxOffice.OpeningWeekend)
	assert.Equal(t, 180.0, got.BoxOffice.TotalRevenue)
	assert.Equal(t, 180.0, movies.movies[m.ID].BoxOffice.TotalRevenue)
}

func TestTopByGenre(t *testing.T) {
	good := newMovie("Good", "Horror")
	good.AverageRating = 4.5
	okay := newMovie("Okay", "Horror")
	okay.AverageRating = 3
	svc := NewMovieService(&repository.Repository{
		Movie:  newFakeMovieRepo(good, okay, newMovie("Other", "Drama")),
		Person: newFakePersonRepo(),
	}, nopLog)

	_, err := svc.TopByGenre(context.Background(), " ")
	assert.Equal(t, utils.KindValidation, utils.ErrorKindOf(err))

	got, err := svc.TopByGenre(context.Background(), "Horror")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Good", got[0].Title)
}
