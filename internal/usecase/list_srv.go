package usecase

import (
	"context"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListService manages user curated movie lists. Only the owner may change
// or delete a list.
type ListService interface {
	CreateList(ctx context.Context, userID uuid.UUID, req *request.CreateListRequest) (*response.ListResponse, error)
	UpdateList(ctx context.Context, userID uuid.UUID, listID string, req *request.UpdateListRequest) (*response.ListResponse, error)
	DeleteList(ctx context.Context, userID uuid.UUID, listID string) error
	FollowList(ctx context.Context, userID uuid.UUID, listID string) error
	UnfollowList(ctx context.Context, userID uuid.UUID, listID string) error
	GetLists(ctx context.Context, req request.PaginatedRequest) ([]response.ListResponse, error)
	GetList(ctx context.Context, listID string) (*response.ListResponse, error)
}

type listService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewListService(repo *repository.Repository, log *zap.Logger) ListService {
	return &listService{
		repo: repo,
		log:  log.With(zap.String("service", "list")),
	}
}

// movieIDs parses raw ids and checks every movie exists.
func (s *listService) movieIDs(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	ids, err := parseIDs(raw, "movie")
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return ids, nil
	}

	movies, err := s.repo.Movie.FindByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrInternal("Failed to save list", err)
	}
	if len(movies) != len(ids) {
		return nil, utils.ErrValidation("List contains unknown movies", map[string]string{"movies": "every movie must exist"})
	}
	return ids, nil
}

func (s *listService) toResponses(ctx context.Context, lists ...*entity.List) ([]response.ListResponse, error) {
	var ids []uuid.UUID
	for _, l := range lists {
		ids = append(ids, l.MovieIDs...)
	}

	movies, err := s.repo.Movie.FindByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get lists", err)
	}
	byID := make(map[uuid.UUID]*entity.Movie, len(movies))
	for _, m := range movies {
		byID[m.ID] = m
	}

	out := make([]response.ListResponse, 0, len(lists))
	for _, l := range lists {
		listMovies := make([]*entity.Movie, 0, len(l.MovieIDs))
		for _, id := range l.MovieIDs {
			if m, ok := byID[id]; ok {
				listMovies = append(listMovies, m)
			}
		}
		out = append(out, response.ListToResponse(l, listMovies))
	}
	return out, nil
}

func (s *listService) findList(ctx context.Context, listID string) (*entity.List, error) {
	id, err := parseID(listID, "list")
	if err != nil {
		return nil, err
	}

	list, err := s.repo.List.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get list", err)
	}
	if list == nil {
		return nil, utils.ErrNotFound("List not found")
	}
	return list, nil
}

func (s *listService) findOwned(ctx context.Context, userID uuid.UUID, listID string) (*entity.List, error) {
	list, err := s.findList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if list.OwnerID != userID {
		s.log.Warn("List change by non owner",
			zap.String("list_id", listID),
			zap.String("user_id", userID.String()),
		)
		return nil, utils.ErrForbidden("Not authorized to modify this list")
	}
	return list, nil
}

func (s *listService) CreateList(ctx context.Context, userID uuid.UUID, req *request.CreateListRequest) (*response.ListResponse, error) {
	if err := validate(s.log, "Create list", req); err != nil {
		return nil, err
	}

	ids, err := s.movieIDs(ctx, req.Movies)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	list := &entity.List{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		MovieIDs:    ids,
		OwnerID:     userID,
	}

	if err := s.repo.List.Create(ctx, list); err != nil {
		return nil, utils.ErrInternal("Failed to create list", err)
	}

	s.log.Info("List created",
		zap.String("list_id", list.ID.String()),
		zap.String("owner_id", userID.String()),
	)

	return s.single(ctx, list)
}

func (s *listService) single(ctx context.Context, list *entity.List) (*response.ListResponse, error) {
	out, err := s.toResponses(ctx, list)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *listService) UpdateList(ctx context.Context, userID uuid.UUID, listID string, req *request.UpdateListRequest) (*response.ListResponse, error) {
	if err := validate(s.log, "Update list", req); err != nil {
		return nil, err
	}

	list, err := s.findOwned(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		list.Title = *req.Title
	}
	if req.Description != nil {
		list.Description = req.Description
	}
	if req.Movies != nil {
		if list.MovieIDs, err = s.movieIDs(ctx, req.Movies); err != nil {
			return nil, err
		}
	}
	list.UpdatedAt = time.Now()

	if err := s.repo.List.Update(ctx, list); err != nil {
		return nil, storeErr(err, "Failed to update list", "List not found")
	}

	s.log.Info("List updated", zap.String("list_id", listID))

	return s.single(ctx, list)
}

func (s *listService) DeleteList(ctx context.Context, userID uuid.UUID, listID string) error {
	list, err := s.findOwned(ctx, userID, listID)
	if err != nil {
		return err
	}

	if err := s.repo.List.Delete(ctx, list.ID); err != nil {
		return storeErr(err, "Failed to delete list", "List not found")
	}

	s.log.Info("List deleted", zap.String("list_id", listID))
	return nil
}

// FollowList records the follow on both the list and the user.
func (s *listService) FollowList(ctx context.Context, userID uuid.UUID, listID string) error {
	list, err := s.findList(ctx, listID)
	if err != nil {
		return err
	}

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.List.AddFollower(ctx, list.ID, userID); err != nil {
			return err
		}
		return tx.User.AddToCollection(ctx, userID, repository.CollectionFollowedLists, list.ID)
	})
	if err != nil {
		return storeErr(err, "Failed to follow list", "List not found")
	}

	s.log.Info("List followed",
		zap.String("list_id", listID),
		zap.String("user_id", userID.String()),
	)
	return nil
}

func (s *listService) UnfollowList(ctx context.Context, userID uuid.UUID, listID string) error {
	list, err := s.findList(ctx, listID)
	if err != nil {
		return err
	}

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.List.RemoveFollower(ctx, list.ID, userID); err != nil {
			return err
		}
		return tx.User.RemoveFromCollection(ctx, userID, repository.CollectionFollowedLists, list.ID)
	})
	if err != nil {
		return storeErr(err, "Failed to unfollow list", "List not found")
	}

	s.log.Info("List unfollowed",
		zap.String("list_id", listID),
		zap.String("user_id", userID.String()),
	)
	return nil
}

func (s *listService) GetLists(ctx context.Context, req request.PaginatedRequest) ([]response.ListResponse, error) {
	lists, err := s.repo.List.FindAll(ctx, req.Offset(), req.Limit)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get lists", err)
	}
	return s.toResponses(ctx, lists...)
}

func (s *listService) GetList(ctx context.Context, listID string) (*response.ListResponse, error) {
	list, err := s.findList(ctx, listID)
	if err != nil {
		return nil, err
	}
	return s.single(ctx, list)
}
