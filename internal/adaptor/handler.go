package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth           *AuthHandler
	User           *UserHandler
	Movie          *MovieHandler
	Person         *PersonHandler
	Review         *ReviewHandler
	Recommendation *RecommendationHandler
	Admin          *AdminHandler
	List           *ListHandler
	Discussion     *DiscussionHandler
	Article        *ArticleHandler
	Notification   *NotificationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(service.Auth, log),
		User:           NewUserHandler(service.User, log),
		Movie:          NewMovieHandler(service.Movie, log),
		Person:         NewPersonHandler(service.Person, log),
		Review:         NewReviewHandler(service.Review, log),
		Recommendation: NewRecommendationHandler(service.Recommendation, service.Insights, log),
		Admin:          NewAdminHandler(service.Insights, service.Review, log),
		List:           NewListHandler(service.List, log),
		Discussion:     NewDiscussionHandler(service.Discussion, log),
		Article:        NewArticleHandler(service.Article, log),
		Notification:   NewNotificationHandler(service.Notification, log),
	}
}

// handleServiceError maps an AppError kind to its status code. Anything
// else is treated as internal and its detail only reaches the log.
func handleServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation string) {
	appErr := utils.AsAppError(err)
	switch appErr.Kind {
	case utils.KindNotFound:
		log.Debug(operation+" failed - not found", zap.String("message", appErr.Message))
		utils.ResponseNotFound(w, r, appErr.Message)

	case utils.KindValidation:
		log.Debug(operation+" validation failed", zap.String("message", appErr.Message))
		var fields any
		if len(appErr.Fields) > 0 {
			fields = appErr.Fields
		}
		utils.ResponseBadRequest(w, r, appErr.Message, fields)

	case utils.KindUnauthorized:
		log.Warn(operation+" failed - unauthorized", zap.String("message", appErr.Message))
		utils.ResponseUnauthorized(w, r, appErr.Message)

	case utils.KindForbidden:
		log.Warn(operation+" failed - forbidden", zap.String("message", appErr.Message))
		utils.ResponseForbidden(w, r, appErr.Message)

	case utils.KindConflict:
		log.Warn(operation+" failed - conflict", zap.String("message", appErr.Message))
		utils.ResponseConflict(w, r, appErr.Message)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, r, "Internal server error")
	}
}

// decodeBody writes a 400 and returns false when the body is not valid JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, r, "Invalid request body", nil)
		return false
	}
	return true
}

func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, r, "Authentication required")
	}
	return userID, ok
}

func pageFromQuery(r *http.Request) request.PaginatedRequest {
	query := r.URL.Query()
	return request.NewPaginatedRequest(
		utils.ParseInt(query.Get("page"), 1),
		utils.ParseInt(query.Get("limit"), 10),
	)
}
