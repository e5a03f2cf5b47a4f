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

// UserCollection names one of the uuid[] reference columns on users.
type UserCollection string

const (
	CollectionWishlist      UserCollection = "wishlist"
	CollectionWatchlist     UserCollection = "watchlist"
	CollectionFollowedLists UserCollection = "followed_lists"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	FindEmailSubscribers(ctx context.Context) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, user *entity.User) error

	// AddToCollection is a no-op when the id is already present.
	AddToCollection(ctx context.Context, userID uuid.UUID, collection UserCollection, id uuid.UUID) error
	RemoveFromCollection(ctx context.Context, userID uuid.UUID, collection UserCollection, id uuid.UUID) error
}

const userColumns = `
	id, username, email, password, favorite_genres, favorite_actors, wishlist,
	watchlist, followed_lists, notify_email, notify_dashboard, role,
	created_at, updated_at`

type userRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewUserRepository(db database.Querier, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func scanUser(row rowScanner) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.FavoriteGenres,
		&user.FavoriteActors,
		&user.Wishlist,
		&user.Watchlist,
		&user.FollowedLists,
		&user.Notifications.Email,
		&user.Notifications.Dashboard,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password, favorite_genres, favorite_actors,
		                   notify_email, notify_dashboard, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		orEmpty(user.FavoriteGenres),
		orEmpty(user.FavoriteActors),
		user.Notifications.Email,
		user.Notifications.Dashboard,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) findOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	user, err := scanUser(ur.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user",
			zap.Error(err),
			zap.String("where", where),
		)
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return ur.findOne(ctx, "id = $1", id)
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return ur.findOne(ctx, "LOWER(email) = LOWER($1)", email)
}

func (ur *userRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1) OR username = $2)`

	var exists bool
	if err := ur.db.QueryRow(ctx, query, email, username).Scan(&exists); err != nil {
		ur.log.Error("Failed to check user existence",
			zap.Error(err),
			zap.String("email", email),
			zap.String("username", username),
		)
		return false, fmt.Errorf("check user existence: %w", err)
	}
	return exists, nil
}

// FindEmailSubscribers lists users who opted into email notifications.
func (ur *userRepository) FindEmailSubscribers(ctx context.Context) ([]*entity.User, error) {
	rows, err := ur.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE notify_email ORDER BY id`)
	if err != nil {
		ur.log.Error("Failed to find email subscribers", zap.Error(err))
		return nil, fmt.Errorf("find email subscribers: %w", err)
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (ur *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, favorite_genres = $4, favorite_actors = $5,
		    notify_email = $6, notify_dashboard = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		orEmpty(user.FavoriteGenres),
		orEmpty(user.FavoriteActors),
		user.Notifications.Email,
		user.Notifications.Dashboard,
		user.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		ur.log.Error("Failed to update user profile",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (c UserCollection) column() (string, error) {
	switch c {
	case CollectionWishlist, CollectionWatchlist, CollectionFollowedLists:
		return string(c), nil
	default:
		return "", fmt.Errorf("unknown user collection %q", string(c))
	}
}

func (ur *userRepository) AddToCollection(ctx context.Context, userID uuid.UUID, collection UserCollection, id uuid.UUID) error {
	column, err := collection.column()
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %[1]s = CASE WHEN $2 = ANY(%[1]s) THEN %[1]s ELSE array_append(%[1]s, $2) END,
		    updated_at = NOW()
		WHERE id = $1
	`, column)

	result, err := ur.db.Exec(ctx, query, userID, id)
	if err != nil {
		ur.log.Error("Failed to add to user collection",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("collection", column),
		)
		return fmt.Errorf("add to %s of user %s: %w", column, userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (ur *userRepository) RemoveFromCollection(ctx context.Context, userID uuid.UUID, collection UserCollection, id uuid.UUID) error {
	column, err := collection.column()
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE users SET %[1]s = array_remove(%[1]s, $2), updated_at = NOW() WHERE id = $1`, column)

	result, err := ur.db.Exec(ctx, query, userID, id)
	if err != nil {
		ur.log.Error("Failed to remove from user collection",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("collection", column),
		)
		return fmt.Errorf("remove from %s of user %s: %w", column, userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
