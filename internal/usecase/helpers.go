package usecase

import (
	"context"
	"errors"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, utils.ErrValidation("Invalid "+what+" ID", map[string]string{what: "must be a valid UUID"})
	}
	return id, nil
}

func parseIDs(raw []string, what string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	seen := make(map[uuid.UUID]struct{}, len(raw))
	for _, r := range raw {
		id, err := parseID(r, what)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func validate(log *zap.Logger, op string, req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		log.Warn(op+" validation failed", zap.Any("errors", errs))
		return utils.ErrValidation("Validation failed: "+utils.FormatValidationErrors(errs), errs)
	}
	return nil
}

// storeErr passes nil and AppErrors through, maps repository.ErrNotFound to
// NotFound and wraps anything else as Internal with msg.
func storeErr(err error, msg, notFound string) error {
	var appErr *utils.AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return utils.ErrNotFound(notFound)
	default:
		return utils.ErrInternal(msg, err)
	}
}

func awardsFrom(in []request.AwardRequest) []entity.Award {
	out := make([]entity.Award, 0, len(in))
	for _, a := range in {
		out = append(out, entity.Award{Name: a.Name, Category: a.Category, Won: a.Won, Year: a.Year})
	}
	return out
}

// loadPersons resolves the director and cast of movies in one query.
func loadPersons(ctx context.Context, repo *repository.Repository, movies ...*entity.Movie) (map[uuid.UUID]*entity.Person, error) {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; !ok && id != uuid.Nil {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, m := range movies {
		add(m.DirectorID)
		for _, id := range m.CastIDs {
			add(id)
		}
	}

	persons := make(map[uuid.UUID]*entity.Person, len(ids))
	if len(ids) == 0 {
		return persons, nil
	}

	found, err := repo.Person.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range found {
		persons[p.ID] = p
	}
	return persons, nil
}
