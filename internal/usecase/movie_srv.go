package usecase

import (
	"context"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const topMoviesLimit = 10

type MovieService interface {
	GetMovies(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	// GetMovieByID counts as a view of the movie.
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	SearchMovies(ctx context.Context, req *request.SearchMoviesRequest) (*response.PageResponse[response.MovieResponse], error)
	TopOfMonth(ctx context.Context) ([]response.MovieResponse, error)
	TopByGenre(ctx context.Context, genre string) ([]response.MovieResponse, error)

	// Admin
	CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.UpdateMovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
	UpdateBoxOffice(ctx context.Context, movieID string, req *request.UpdateBoxOfficeRequest) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
		now:  time.Now,
	}
}

func (s *movieService) expand(ctx context.Context, op string, movies ...*entity.Movie) ([]response.MovieResponse, error) {
	persons, err := loadPersons(ctx, s.repo, movies...)
	if err != nil {
		return nil, utils.ErrInternal("Failed to "+op, err)
	}
	return response.MoviesToResponse(movies, persons), nil
}

func (s *movieService) GetMovies(ctx context.Context, req request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies, err := s.repo.Movie.FindAll(ctx, req.Offset(), req.Limit)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get movies", err)
	}

	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get movies", err)
	}

	items, err := s.expand(ctx, "get movies", movies...)
	if err != nil {
		return nil, err
	}
	return response.NewPaginatedResponse(items, req.Page, req.Limit, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := parseID(movieID, "movie")
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get movie", err)
	}
	if movie == nil {
		return nil, utils.ErrNotFound("Movie not found")
	}

	// a lost view is not worth failing the read
	if err := s.repo.Movie.IncrementViewCount(ctx, id); err != nil {
		s.log.Warn("Failed to count movie view", zap.Error(err), zap.String("movie_id", movieID))
	} else {
		movie.ViewCount++
	}

	items, err := s.expand(ctx, "get movie", movie)
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *movieService) SearchMovies(ctx context.Context, req *request.SearchMoviesRequest) (*response.PageResponse[response.MovieResponse], error) {
	if err := validate(s.log, "Search movies", req); err != nil {
		return nil, err
	}
	if req.MinRating != nil && req.MaxRating != nil && *req.MinRating > *req.MaxRating {
		return nil, utils.ErrValidation("minRating cannot exceed maxRating", nil)
	}

	filter := entity.MovieFilter{
		Title:         strings.TrimSpace(req.Title),
		Genres:        utils.UniqueStrings(req.Genres),
		Director:      strings.TrimSpace(req.Director),
		Actor:         strings.TrimSpace(req.Actor),
		MinRating:     req.MinRating,
		MaxRating:     req.MaxRating,
		ReleaseYear:   req.ReleaseYear,
		ReleaseDecade: req.ReleaseDecade,
		Language:      strings.TrimSpace(req.Language),
		SortBy:        req.SortBy,
	}

	movies, err := s.repo.Movie.Search(ctx, filter, req.Offset(), req.Limit)
	if err != nil {
		return nil, utils.ErrInternal("Failed to search movies", err)
	}

	items, err := s.expand(ctx, "search movies", movies...)
	if err != nil {
		return nil, err
	}
	return response.NewPageResponse(items, req.Page, req.Limit), nil
}

// TopOfMonth ranks movies released in the current calendar month.
func (s *movieService) TopOfMonth(ctx context.Context) ([]response.MovieResponse, error) {
	now := s.now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	movies, err := s.repo.Movie.TopRatedReleasedBetween(ctx, from, from.AddDate(0, 1, 0), topMoviesLimit)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get top movies", err)
	}
	return s.expand(ctx, "get top movies", movies...)
}

func (s *movieService) TopByGenre(ctx context.Context, genre string) ([]response.MovieResponse, error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, utils.ErrValidation("Genre is required", map[string]string{"genre": "genre is required"})
	}

	movies, err := s.repo.Movie.TopRatedByGenre(ctx, genre, topMoviesLimit)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get top movies", err)
	}
	return s.expand(ctx, "get top movies", movies...)
}

// resolvePerson finds the person with name and role, creating one on first
// use. Names are not unique, so the oldest match wins.
func resolvePerson(ctx context.Context, tx *repository.Repository, name, role string, persons map[uuid.UUID]*entity.Person) (uuid.UUID, error) {
	name = strings.TrimSpace(name)

	person, err := tx.Person.FindByNameAndRole(ctx, name, role)
	if err != nil {
		return uuid.Nil, err
	}

	if person == nil {
		now := time.Now()
		person = &entity.Person{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name: name,
			Role: role,
		}
		if err := tx.Person.Create(ctx, person); err != nil {
			return uuid.Nil, err
		}
	}

	persons[person.ID] = person
	return person.ID, nil
}

func resolveCast(ctx context.Context, tx *repository.Repository, names []string, persons map[uuid.UUID]*entity.Person) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range utils.UniqueStrings(names) {
		id, err := resolvePerson(ctx, tx, name, entity.PersonRoleActor, persons)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	if err := validate(s.log, "Create movie", req); err != nil {
		return nil, err
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:            req.Title,
		Genres:           utils.UniqueStrings(req.Genre),
		ReleaseDate:      req.ReleaseDate,
		Runtime:          req.Runtime,
		Synopsis:         req.Synopsis,
		Language:         req.Language,
		CoverPhoto:       req.CoverPhoto,
		Trivia:           req.Trivia,
		Goofs:            req.Goofs,
		SoundtrackInfo:   req.SoundtrackInfo,
		AgeRating:        req.AgeRating,
		ParentalGuidance: req.ParentalGuidance,
		Awards:           awardsFrom(req.Awards),
	}

	persons := make(map[uuid.UUID]*entity.Person)
	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		directorID, err := resolvePerson(ctx, tx, req.Director, entity.PersonRoleDirector, persons)
		if err != nil {
			return err
		}
		castIDs, err := resolveCast(ctx, tx, req.Cast, persons)
		if err != nil {
			return err
		}
		movie.DirectorID = directorID
		movie.CastIDs = castIDs

		if err := tx.Movie.Create(ctx, movie); err != nil {
			return err
		}
		return tx.Person.AppendFilmography(ctx, append([]uuid.UUID{directorID}, castIDs...), movie.ID)
	})
	if err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, storeErr(err, "Failed to create movie", "Movie not found")
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.Int("cast", len(movie.CastIDs)),
	)

	resp := response.MovieToResponse(movie, persons)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.UpdateMovieRequest) (*response.MovieResponse, error) {
	if err := validate(s.log, "Update movie", req); err != nil {
		return nil, err
	}

	id, err := parseID(movieID, "movie")
	if err != nil {
		return nil, err
	}

	var movie *entity.Movie
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		movie, err = tx.Movie.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if movie == nil {
			return utils.ErrNotFound("Movie not found")
		}

		applyMovieUpdate(movie, req)

		persons := make(map[uuid.UUID]*entity.Person)
		var credited []uuid.UUID
		if req.Director != nil {
			if movie.DirectorID, err = resolvePerson(ctx, tx, *req.Director, entity.PersonRoleDirector, persons); err != nil {
				return err
			}
			credited = append(credited, movie.DirectorID)
		}
		if req.Cast != nil {
			if movie.CastIDs, err = resolveCast(ctx, tx, req.Cast, persons); err != nil {
				return err
			}
			credited = append(credited, movie.CastIDs...)
		}
		movie.UpdatedAt = time.Now()

		if err := tx.Movie.Update(ctx, movie); err != nil {
			return err
		}
		return tx.Person.AppendFilmography(ctx, credited, movie.ID)
	})
	if err != nil {
		return nil, storeErr(err, "Failed to update movie", "Movie not found")
	}

	s.log.Info("Movie updated", zap.String("movie_id", movieID))

	items, err := s.expand(ctx, "update movie", movie)
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

func applyMovieUpdate(movie *entity.Movie, req *request.UpdateMovieRequest) {
	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Genre != nil {
		movie.Genres = utils.UniqueStrings(req.Genre)
	}
	if req.ReleaseDate != nil {
		movie.ReleaseDate = *req.ReleaseDate
	}
	if req.Runtime != nil {
		movie.Runtime = *req.Runtime
	}
	if req.Synopsis != nil {
		movie.Synopsis = *req.Synopsis
	}
	if req.Language != nil {
		movie.Language = *req.Language
	}
	if req.CoverPhoto != nil {
		movie.CoverPhoto = req.CoverPhoto
	}
	if req.Trivia != nil {
		movie.Trivia = req.Trivia
	}
	if req.Goofs != nil {
		movie.Goofs = req.Goofs
	}
	if req.SoundtrackInfo != nil {
		movie.SoundtrackInfo = req.SoundtrackInfo
	}
	if req.AgeRating != nil {
		movie.AgeRating = req.AgeRating
	}
	if req.ParentalGuidance != nil {
		movie.ParentalGuidance = req.ParentalGuidance
	}
	if req.Awards != nil {
		movie.Awards = awardsFrom(req.Awards)
	}
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := parseID(movieID, "movie")
	if err != nil {
		return err
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		return storeErr(err, "Failed to delete movie", "Movie not found")
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}

// UpdateBoxOffice keeps stored figures for fields left out. Total revenue is
// always domestic plus international.
func (s *movieService) UpdateBoxOffice(ctx context.Context, movieID string, req *request.UpdateBoxOfficeRequest) (*response.MovieResponse, error) {
	if err := validate(s.log, "Update box office", req); err != nil {
		return nil, err
	}

	id, err := parseID(movieID, "movie")
	if err != nil {
		return nil, err
	}

	var movie *entity.Movie
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		movie, err = tx.Movie.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if movie == nil {
			return utils.ErrNotFound("Movie not found")
		}

		movie.BoxOffice = mergeBoxOffice(movie.BoxOffice, req)
		return tx.Movie.UpdateBoxOffice(ctx, id, movie.BoxOffice)
	})
	if err != nil {
		return nil, storeErr(err, "Failed to update box office", "Movie not found")
	}

	s.log.Info("Box office updated",
		zap.String("movie_id", movieID),
		zap.Float64("total_revenue", movie.BoxOffice.TotalRevenue),
	)

	items, err := s.expand(ctx, "update box office", movie)
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

func mergeBoxOffice(current entity.BoxOffice, req *request.UpdateBoxOfficeRequest) entity.BoxOffice {
	if req.Domestic != nil {
		current.Domestic = *req.Domestic
	}
	if req.International != nil {
		current.International = *req.International
	}
	if req.OpeningWeekend != nil {
		current.OpeningWeekend = *req.OpeningWeekend
	}
	current.TotalRevenue = current.Domestic + current.International
	return current
}
