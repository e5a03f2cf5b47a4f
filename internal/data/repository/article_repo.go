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

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Article, error)
	// Search matches keyword against title and content. Empty arguments
	// match everything.
	Search(ctx context.Context, keyword, category string) ([]*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const articleColumns = `
	id, title, content, category, related_movies, related_persons, cover_photo,
	created_by, published_date, created_at, updated_at`

type articleRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewArticleRepository(db database.Querier, log *zap.Logger) ArticleRepository {
	return &articleRepository{
		db:  db,
		log: log.With(zap.String("repository", "article")),
	}
}

func scanArticle(row rowScanner) (*entity.Article, error) {
	var article entity.Article
	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.Category,
		&article.RelatedMovies,
		&article.RelatedPersons,
		&article.CoverPhoto,
		&article.CreatedBy,
		&article.PublishedDate,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	query := `
		INSERT INTO articles (id, title, content, category, related_movies, related_persons,
		                      cover_photo, created_by, published_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		article.Category,
		orEmpty(article.RelatedMovies),
		orEmpty(article.RelatedPersons),
		article.CoverPhoto,
		article.CreatedBy,
		article.PublishedDate,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create article",
			zap.Error(err),
			zap.String("title", article.Title),
		)
		return fmt.Errorf("create article: %w", err)
	}

	return nil
}

func (r *articleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	article, err := scanArticle(r.db.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find article by ID",
			zap.Error(err),
			zap.String("article_id", id.String()),
		)
		return nil, fmt.Errorf("find article %s: %w", id.String(), err)
	}
	return article, nil
}

func (r *articleRepository) Search(ctx context.Context, keyword, category string) ([]*entity.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE ($1 = '' OR title ILIKE '%' || $1 || '%' OR content ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR category = $2)
		ORDER BY published_date DESC, id ASC
	`

	rows, err := r.db.Query(ctx, query, keyword, category)
	if err != nil {
		r.log.Error("Failed to search articles",
			zap.Error(err),
			zap.String("keyword", keyword),
			zap.String("category", category),
		)
		return nil, fmt.Errorf("search articles: %w", err)
	}
	defer rows.Close()

	articles := make([]*entity.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			r.log.Error("Failed to scan article row", zap.Error(err))
			return nil, fmt.Errorf("scan article row: %w", err)
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

func (r *articleRepository) Update(ctx context.Context, article *entity.Article) error {
	query := `
		UPDATE articles
		SET title = $2, content = $3, category = $4, related_movies = $5,
		    related_persons = $6, cover_photo = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		article.Category,
		orEmpty(article.RelatedMovies),
		orEmpty(article.RelatedPersons),
		article.CoverPhoto,
		article.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update article",
			zap.Error(err),
			zap.String("article_id", article.ID.String()),
		)
		return fmt.Errorf("update article %s: %w", article.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete article",
			zap.Error(err),
			zap.String("article_id", id.String()),
		)
		return fmt.Errorf("delete article %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
