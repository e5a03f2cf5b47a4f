package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)

	AddToWishlist(ctx context.Context, userID uuid.UUID, movieID string) error
	RemoveFromWishlist(ctx context.Context, userID uuid.UUID, movieID string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) tokenTTL() time.Duration {
	if s.config.JWT.ExpiryHours <= 0 {
		return time.Hour
	}
	return time.Duration(s.config.JWT.ExpiryHours) * time.Hour
}

func (s *authService) authResponse(user *entity.User) (*response.AuthResponse, error) {
	token, expiresAt, err := utils.IssueToken(s.config.JWT.Secret, user.ID, string(user.Role), s.tokenTTL())
	if err != nil {
		return nil, utils.ErrInternal("Failed to issue token", err)
	}
	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      response.UserToResponse(user),
	}, nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if err := validate(s.log, "Register", req); err != nil {
		return nil, err
	}

	// 2. Admin accounts need the admin key
	role := entity.RoleUser
	if req.Role == string(entity.RoleAdmin) {
		key := s.config.App.AdminKey
		if key == "" || subtle.ConstantTimeCompare([]byte(req.AdminKey), []byte(key)) != 1 {
			s.log.Warn("Admin registration with invalid key", zap.String("email", req.Email))
			return nil, utils.ErrForbidden("Invalid admin key")
		}
		role = entity.RoleAdmin
	}

	// 3. Email and username must be free
	exists, err := s.repo.User.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return nil, utils.ErrInternal("Failed to create account", err)
	}
	if exists {
		return nil, utils.ErrValidation("User already exists", nil)
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, utils.ErrInternal("Failed to process password", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hashedPassword,
		Notifications: entity.NotificationPreferences{
			Email:     true,
			Dashboard: true,
		},
		Role: role,
	}

	// 5. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.ErrValidation("User already exists", nil)
		}
		return nil, utils.ErrInternal("Failed to create account", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	return s.authResponse(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if err := validate(s.log, "Login", req); err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrInternal("Failed to log in", err)
	}

	// same answer for unknown email and wrong password
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Invalid login attempt", zap.String("email", req.Email))
		return nil, utils.ErrValidation("Invalid credentials", nil)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return s.authResponse(user)
}

func (s *authService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get profile", err)
	}
	if user == nil {
		return nil, utils.ErrNotFound("User not found")
	}
	return user, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if err := validate(s.log, "Update profile", req); err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = strings.ToLower(*req.Email)
	}
	if req.FavoriteGenres != nil {
		user.FavoriteGenres = utils.UniqueStrings(req.FavoriteGenres)
	}
	if req.FavoriteActors != nil {
		user.FavoriteActors = utils.UniqueStrings(req.FavoriteActors)
	}
	if prefs := req.NotificationPreferences; prefs != nil {
		if prefs.Email != nil {
			user.Notifications.Email = *prefs.Email
		}
		if prefs.Dashboard != nil {
			user.Notifications.Dashboard = *prefs.Dashboard
		}
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.ErrConflict("Username or email already in use")
		}
		return nil, storeErr(err, "Failed to update profile", "User not found")
	}

	s.log.Info("Profile updated", zap.String("user_id", userID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) AddToWishlist(ctx context.Context, userID uuid.UUID, movieID string) error {
	id, err := parseID(movieID, "movie")
	if err != nil {
		return err
	}
	return addToCollection(ctx, s.repo, userID, repository.CollectionWishlist, id)
}

func (s *authService) RemoveFromWishlist(ctx context.Context, userID uuid.UUID, movieID string) error {
	id, err := parseID(movieID, "movie")
	if err != nil {
		return err
	}
	return storeErr(
		s.repo.User.RemoveFromCollection(ctx, userID, repository.CollectionWishlist, id),
		"Failed to update wishlist", "User not found",
	)
}

// addToCollection requires the movie to exist.
func addToCollection(ctx context.Context, repo *repository.Repository, userID uuid.UUID, collection repository.UserCollection, movieID uuid.UUID) error {
	movie, err := repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return utils.ErrInternal("Failed to update "+string(collection), err)
	}
	if movie == nil {
		return utils.ErrNotFound("Movie not found")
	}

	return storeErr(
		repo.User.AddToCollection(ctx, userID, collection, movieID),
		"Failed to update "+string(collection), "User not found",
	)
}
