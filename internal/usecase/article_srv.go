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

type ArticleService interface {
	// Admin
	CreateArticle(ctx context.Context, authorID uuid.UUID, req *request.CreateArticleRequest) (*response.ArticleResponse, error)
	UpdateArticle(ctx context.Context, articleID string, req *request.UpdateArticleRequest) (*response.ArticleResponse, error)
	DeleteArticle(ctx context.Context, articleID string) error

	GetArticles(ctx context.Context, category string) ([]response.ArticleResponse, error)
	GetArticle(ctx context.Context, articleID string) (*response.ArticleResponse, error)
	// SearchArticles reports NotFound when nothing matches.
	SearchArticles(ctx context.Context, keyword, category string) ([]response.ArticleResponse, error)
}

type articleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewArticleService(repo *repository.Repository, log *zap.Logger) ArticleService {
	return &articleService{
		repo: repo,
		log:  log.With(zap.String("service", "article")),
	}
}

func (s *articleService) CreateArticle(ctx context.Context, authorID uuid.UUID, req *request.CreateArticleRequest) (*response.ArticleResponse, error) {
	if err := validate(s.log, "Create article", req); err != nil {
		return nil, err
	}

	movies, err := parseIDs(req.RelatedMovies, "relatedMovies")
	if err != nil {
		return nil, err
	}
	persons, err := parseIDs(req.RelatedPersons, "relatedPersons")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	article := &entity.Article{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:          req.Title,
		Content:        req.Content,
		Category:       req.Category,
		RelatedMovies:  movies,
		RelatedPersons: persons,
		CoverPhoto:     req.CoverPhoto,
		CreatedBy:      authorID,
		PublishedDate:  now,
	}

	if err := s.repo.Article.Create(ctx, article); err != nil {
		return nil, utils.ErrInternal("Failed to create article", err)
	}

	s.log.Info("Article created",
		zap.String("article_id", article.ID.String()),
		zap.String("category", article.Category),
	)

	resp := response.ArticleToResponse(article)
	return &resp, nil
}

func (s *articleService) findArticle(ctx context.Context, articleID string) (*entity.Article, error) {
	id, err := parseID(articleID, "article")
	if err != nil {
		return nil, err
	}

	article, err := s.repo.Article.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get article", err)
	}
	if article == nil {
		return nil, utils.ErrNotFound("Article not found")
	}
	return article, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, articleID string, req *request.UpdateArticleRequest) (*response.ArticleResponse, error) {
	if err := validate(s.log, "Update article", req); err != nil {
		return nil, err
	}

	article, err := s.findArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.RelatedMovies != nil {
		if article.RelatedMovies, err = parseIDs(req.RelatedMovies, "relatedMovies"); err != nil {
			return nil, err
		}
	}
	if req.RelatedPersons != nil {
		if article.RelatedPersons, err = parseIDs(req.RelatedPersons, "relatedPersons"); err != nil {
			return nil, err
		}
	}
	if req.CoverPhoto != nil {
		article.CoverPhoto = req.CoverPhoto
	}
	article.UpdatedAt = time.Now()

	if err := s.repo.Article.Update(ctx, article); err != nil {
		return nil, storeErr(err, "Failed to update article", "Article not found")
	}

	s.log.Info("Article updated", zap.String("article_id", articleID))

	resp := response.ArticleToResponse(article)
	return &resp, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, articleID string) error {
	id, err := parseID(articleID, "article")
	if err != nil {
		return err
	}

	if err := s.repo.Article.Delete(ctx, id); err != nil {
		return storeErr(err, "Failed to delete article", "Article not found")
	}

	s.log.Info("Article deleted", zap.String("article_id", articleID))
	return nil
}

func (s *articleService) GetArticles(ctx context.Context, category string) ([]response.ArticleResponse, error) {
	articles, err := s.repo.Article.Search(ctx, "", strings.TrimSpace(category))
	if err != nil {
		return nil, utils.ErrInternal("Failed to get articles", err)
	}
	return response.ArticlesToResponse(articles), nil
}

func (s *articleService) GetArticle(ctx context.Context, articleID string) (*response.ArticleResponse, error) {
	article, err := s.findArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	resp := response.ArticleToResponse(article)
	return &resp, nil
}

func (s *articleService) SearchArticles(ctx context.Context, keyword, category string) ([]response.ArticleResponse, error) {
	articles, err := s.repo.Article.Search(ctx, strings.TrimSpace(keyword), strings.TrimSpace(category))
	if err != nil {
		return nil, utils.ErrInternal("Failed to search articles", err)
	}
	if len(articles) == 0 {
		return nil, utils.ErrNotFound("No articles found")
	}
	return response.ArticlesToResponse(articles), nil
}
