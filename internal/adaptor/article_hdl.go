package adaptor

import (
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	service usecase.ArticleService
	log     *zap.Logger
}

func NewArticleHandler(service usecase.ArticleService, log *zap.Logger) *ArticleHandler {
	return &ArticleHandler{
		service: service,
		log:     log.With(zap.String("handler", "article")),
	}
}

// CreateArticle handles POST /api/articles (admin only)
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.CreateArticleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	article, err := h.service.CreateArticle(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, r, err, "create article")
		return
	}

	utils.ResponseCreated(w, r, "Article created", article)
}

// UpdateArticle handles PUT /api/articles/{id} (admin only)
func (h *ArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateArticleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	article, err := h.service.UpdateArticle(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, r, err, "update article")
		return
	}

	utils.ResponseSuccess(w, r, "Article updated", article)
}

// DeleteArticle handles DELETE /api/articles/{id} (admin only)
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteArticle(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err, "delete article")
		return
	}

	utils.ResponseSuccess(w, r, "Article deleted", nil)
}

// GetArticles handles GET /api/articles?category=
func (h *ArticleHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.GetArticles(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.handleServiceError(w, r, err, "get articles")
		return
	}

	utils.ResponseSuccess(w, r, "success", articles)
}

// GetArticle handles GET /api/articles/{id}
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.service.GetArticle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err, "get article")
		return
	}

	utils.ResponseSuccess(w, r, "success", article)
}

// SearchArticles handles GET /api/articles/search?keyword=&category=
func (h *ArticleHandler) SearchArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	articles, err := h.service.SearchArticles(r.Context(), query.Get("keyword"), query.Get("category"))
	if err != nil {
		h.handleServiceError(w, r, err, "search articles")
		return
	}

	utils.ResponseSuccess(w, r, "success", articles)
}

func (h *ArticleHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	handleServiceError(w, r, h.log, err, operation)
}
