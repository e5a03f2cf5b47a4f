// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/mailer"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the router and the services background jobs run against.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services and handlers and mounts every route.
func Wiring(repo *repository.Repository, config *utils.Config, sender mailer.Sender, tasks usecase.TaskQueue, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, sender, tasks, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, repo, config, logger),
		Service: service,
	}
}

// routeDeps carries the per-route middleware every wireX helper needs.
type routeDeps struct {
	auth  func(http.Handler) http.Handler
	admin func(http.Handler) http.Handler
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.App.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := repo.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseJSON(w, r, http.StatusServiceUnavailable, false, "Database unavailable", nil, nil)
			return
		}
		utils.ResponseSuccess(w, r, "OK", nil)
	})
	r.Handle("/metrics", promhttp.Handler())

	deps := routeDeps{
		auth:  middleware.Authenticate(config.JWT.Secret, logger),
		admin: middleware.Admin(logger),
	}

	r.Route("/api", func(r chi.Router) {
		if config.App.RateLimitRPM > 0 {
			r.Use(httprate.Limit(
				config.App.RateLimitRPM,
				time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					utils.ResponseTooManyRequests(w, r, "Too many requests, please try again later")
				}),
			))
		}
		if config.App.RequestTimeout > 0 {
			r.Use(chimw.Timeout(config.App.RequestTimeout))
		}

		wireAuth(r, handler.Auth, deps)
		wireUser(r, handler.User, deps)
		wireMovie(r, handler.Movie, handler.Notification, deps)
		wirePerson(r, handler.Person, deps)
		wireReview(r, handler.Review, handler.Admin, deps)
		wireRecommendation(r, handler.Recommendation, handler.Admin, deps)
		wireCommunity(r, handler.List, handler.Discussion, deps)
		wireArticle(r, handler.Article, deps)
		wireNotification(r, handler.Notification, deps)
	})

	return r
}
