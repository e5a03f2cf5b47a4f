package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PersonRepository interface {
	Create(ctx context.Context, person *entity.Person) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Person, error)
	// FindByNameAndRole returns the oldest match, if any.
	FindByNameAndRole(ctx context.Context, name, role string) (*entity.Person, error)
	// FindIDsByNames returns every person with the role whose name matches
	// one of names. A name may match several people.
	FindIDsByNames(ctx context.Context, names []string, role string) ([]uuid.UUID, error)
	AppendFilmography(ctx context.Context, personIDs []uuid.UUID, movieID uuid.UUID) error
}

const personColumns = `id, name, role, biography, awards, filmography, photos, created_at, updated_at`

type personRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPersonRepository(db database.Querier, log *zap.Logger) PersonRepository {
	return &personRepository{
		db:  db,
		log: log.With(zap.String("repository", "person")),
	}
}

func scanPerson(row rowScanner) (*entity.Person, error) {
	var person entity.Person
	err := row.Scan(
		&person.ID,
		&person.Name,
		&person.Role,
		&person.Biography,
		&person.Awards,
		&person.Filmography,
		&person.Photos,
		&person.CreatedAt,
		&person.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) Create(ctx context.Context, person *entity.Person) error {
	query := `
		INSERT INTO persons (id, name, role, biography, awards, filmography, photos, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		person.ID,
		person.Name,
		person.Role,
		person.Biography,
		orEmpty(person.Awards),
		orEmpty(person.Filmography),
		orEmpty(person.Photos),
		person.CreatedAt,
		person.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create person",
			zap.Error(err),
			zap.String("name", person.Name),
			zap.String("role", person.Role),
		)
		return fmt.Errorf("create person: %w", err)
	}

	return nil
}

func (r *personRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	person, err := scanPerson(r.db.QueryRow(ctx, `SELECT `+personColumns+` FROM persons WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find person by ID",
			zap.Error(err),
			zap.String("person_id", id.String()),
		)
		return nil, fmt.Errorf("find person %s: %w", id.String(), err)
	}
	return person, nil
}

func (r *personRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Person, error) {
	persons := make([]*entity.Person, 0, len(ids))
	if len(ids) == 0 {
		return persons, nil
	}

	query := `
		SELECT ` + personColumns + `
		FROM persons
		WHERE id = ANY($1)
		ORDER BY array_position($1, id)
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find persons by IDs", zap.Error(err), zap.Int("count", len(ids)))
		return nil, fmt.Errorf("find persons by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			r.log.Error("Failed to scan person row", zap.Error(err))
			return nil, fmt.Errorf("scan person row: %w", err)
		}
		persons = append(persons, person)
	}

	return persons, rows.Err()
}

func (r *personRepository) FindByNameAndRole(ctx context.Context, name, role string) (*entity.Person, error) {
	query := `
		SELECT ` + personColumns + `
		FROM persons
		WHERE name = $1 AND role = $2
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`

	person, err := scanPerson(r.db.QueryRow(ctx, query, name, role))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find person by name and role",
			zap.Error(err),
			zap.String("name", name),
			zap.String("role", role),
		)
		return nil, fmt.Errorf("find person %q (%s): %w", name, role, err)
	}
	return person, nil
}

func (r *personRepository) FindIDsByNames(ctx context.Context, names []string, role string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	if len(names) == 0 {
		return ids, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id FROM persons WHERE name = ANY($1) AND role = $2 ORDER BY id`, names, role)
	if err != nil {
		r.log.Error("Failed to resolve person names",
			zap.Error(err),
			zap.Strings("names", names),
			zap.String("role", role),
		)
		return nil, fmt.Errorf("resolve person names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			r.log.Error("Failed to scan person id", zap.Error(err))
			return nil, fmt.Errorf("scan person id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *personRepository) AppendFilmography(ctx context.Context, personIDs []uuid.UUID, movieID uuid.UUID) error {
	if len(personIDs) == 0 {
		return nil
	}

	query := `
		UPDATE persons
		SET filmography = array_append(filmography, $2), updated_at = NOW()
		WHERE id = ANY($1) AND NOT ($2 = ANY(filmography))
	`
	if _, err := r.db.Exec(ctx, query, personIDs, movieID); err != nil {
		r.log.Error("Failed to append filmography",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("append movie %s to filmography: %w", movieID.String(), err)
	}
	return nil
}
