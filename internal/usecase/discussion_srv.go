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

type DiscussionService interface {
	CreateDiscussion(ctx context.Context, userID uuid.UUID, req *request.CreateDiscussionRequest) (*response.DiscussionResponse, error)
	AddReply(ctx context.Context, userID uuid.UUID, discussionID string, req *request.AddReplyRequest) (*response.DiscussionResponse, error)
	GetDiscussions(ctx context.Context, category string, req request.PaginatedRequest) ([]response.DiscussionResponse, error)
	GetDiscussion(ctx context.Context, discussionID string) (*response.DiscussionResponse, error)

	// Admin moderation
	DeleteDiscussion(ctx context.Context, discussionID string) error
	DeleteReply(ctx context.Context, discussionID, replyID string) error
}

var discussionCategories = map[string]struct{}{
	entity.DiscussionCategoryMovie:   {},
	entity.DiscussionCategoryActor:   {},
	entity.DiscussionCategoryGenre:   {},
	entity.DiscussionCategoryGeneral: {},
}

type discussionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDiscussionService(repo *repository.Repository, log *zap.Logger) DiscussionService {
	return &discussionService{
		repo: repo,
		log:  log.With(zap.String("service", "discussion")),
	}
}

func (s *discussionService) CreateDiscussion(ctx context.Context, userID uuid.UUID, req *request.CreateDiscussionRequest) (*response.DiscussionResponse, error) {
	if err := validate(s.log, "Create discussion", req); err != nil {
		return nil, err
	}

	discussion := &entity.Discussion{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		UserID:   userID,
		Replies:  []entity.Reply{},
	}

	if req.RelatedMovie != nil {
		id, err := parseID(*req.RelatedMovie, "relatedMovie")
		if err != nil {
			return nil, err
		}
		movie, err := s.repo.Movie.FindByID(ctx, id)
		if err != nil {
			return nil, utils.ErrInternal("Failed to create discussion", err)
		}
		if movie == nil {
			return nil, utils.ErrNotFound("Related movie not found")
		}
		discussion.RelatedMovieID = &id
	}

	if req.RelatedPerson != nil {
		id, err := parseID(*req.RelatedPerson, "relatedPerson")
		if err != nil {
			return nil, err
		}
		person, err := s.repo.Person.FindByID(ctx, id)
		if err != nil {
			return nil, utils.ErrInternal("Failed to create discussion", err)
		}
		if person == nil {
			return nil, utils.ErrNotFound("Related person not found")
		}
		discussion.RelatedPersonID = &id
	}

	if err := s.repo.Discussion.Create(ctx, discussion); err != nil {
		return nil, utils.ErrInternal("Failed to create discussion", err)
	}

	s.log.Info("Discussion created",
		zap.String("discussion_id", discussion.ID.String()),
		zap.String("category", discussion.Category),
	)

	resp := response.DiscussionToResponse(discussion)
	return &resp, nil
}

func (s *discussionService) AddReply(ctx context.Context, userID uuid.UUID, discussionID string, req *request.AddReplyRequest) (*response.DiscussionResponse, error) {
	if err := validate(s.log, "Add reply", req); err != nil {
		return nil, err
	}

	id, err := parseID(discussionID, "discussion")
	if err != nil {
		return nil, err
	}

	reply := entity.Reply{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Discussion.AddReply(ctx, id, reply); err != nil {
		return nil, storeErr(err, "Failed to add reply", "Discussion not found")
	}

	s.log.Info("Reply added",
		zap.String("discussion_id", discussionID),
		zap.String("reply_id", reply.ID.String()),
	)

	return s.GetDiscussion(ctx, discussionID)
}

func (s *discussionService) GetDiscussions(ctx context.Context, category string, req request.PaginatedRequest) ([]response.DiscussionResponse, error) {
	if category != "" {
		if _, ok := discussionCategories[category]; !ok {
			return nil, utils.ErrValidation("Invalid category", map[string]string{"category": "must be one of Movie, Actor, Genre, General"})
		}
	}

	discussions, err := s.repo.Discussion.FindAll(ctx, category, req.Offset(), req.Limit)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get discussions", err)
	}

	out := make([]response.DiscussionResponse, 0, len(discussions))
	for _, d := range discussions {
		out = append(out, response.DiscussionToResponse(d))
	}
	return out, nil
}

func (s *discussionService) GetDiscussion(ctx context.Context, discussionID string) (*response.DiscussionResponse, error) {
	id, err := parseID(discussionID, "discussion")
	if err != nil {
		return nil, err
	}

	discussion, err := s.repo.Discussion.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get discussion", err)
	}
	if discussion == nil {
		return nil, utils.ErrNotFound("Discussion not found")
	}

	resp := response.DiscussionToResponse(discussion)
	return &resp, nil
}

func (s *discussionService) DeleteDiscussion(ctx context.Context, discussionID string) error {
	id, err := parseID(discussionID, "discussion")
	if err != nil {
		return err
	}

	if err := s.repo.Discussion.Delete(ctx, id); err != nil {
		return storeErr(err, "Failed to delete discussion", "Discussion not found")
	}

	s.log.Info("Discussion deleted", zap.String("discussion_id", discussionID))
	return nil
}

func (s *discussionService) DeleteReply(ctx context.Context, discussionID, replyID string) error {
	id, err := parseID(discussionID, "discussion")
	if err != nil {
		return err
	}
	rid, err := parseID(replyID, "reply")
	if err != nil {
		return err
	}

	if err := s.repo.Discussion.RemoveReply(ctx, id, rid); err != nil {
		return storeErr(err, "Failed to delete reply", "Reply not found")
	}

	s.log.Info("Reply deleted",
		zap.String("discussion_id", discussionID),
		zap.String("reply_id", replyID),
	)
	return nil
}
