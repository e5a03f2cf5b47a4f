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

type PersonService interface {
	CreatePerson(ctx context.Context, req *request.CreatePersonRequest) (*response.PersonResponse, error)
	GetPerson(ctx context.Context, personID string) (*response.PersonResponse, error)
}

type personService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPersonService(repo *repository.Repository, log *zap.Logger) PersonService {
	return &personService{
		repo: repo,
		log:  log.With(zap.String("service", "person")),
	}
}

func (s *personService) CreatePerson(ctx context.Context, req *request.CreatePersonRequest) (*response.PersonResponse, error) {
	if err := validate(s.log, "Create person", req); err != nil {
		return nil, err
	}

	now := time.Now()
	person := &entity.Person{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:      strings.TrimSpace(req.Name),
		Role:      req.Role,
		Biography: req.Biography,
		Awards:    awardsFrom(req.Awards),
		Photos:    req.Photos,
	}

	if err := s.repo.Person.Create(ctx, person); err != nil {
		return nil, utils.ErrInternal("Failed to create person", err)
	}

	s.log.Info("Person created",
		zap.String("person_id", person.ID.String()),
		zap.String("role", person.Role),
	)

	resp := response.PersonToResponse(person, nil)
	return &resp, nil
}

func (s *personService) GetPerson(ctx context.Context, personID string) (*response.PersonResponse, error) {
	id, err := parseID(personID, "person")
	if err != nil {
		return nil, err
	}

	person, err := s.repo.Person.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get person", err)
	}
	if person == nil {
		return nil, utils.ErrNotFound("Person not found")
	}

	movies, err := s.repo.Movie.FindByIDs(ctx, person.Filmography)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get person", err)
	}

	resp := response.PersonToResponse(person, movies)
	return &resp, nil
}
