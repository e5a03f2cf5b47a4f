package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/mailer"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth           AuthService
	User           UserService
	Movie          MovieService
	Person         PersonService
	Review         ReviewService
	Recommendation RecommendationService
	Insights       InsightsService
	List           ListService
	Discussion     DiscussionService
	Article        ArticleService
	Notification   NotificationService
}

func NewService(repo *repository.Repository, config *utils.Config, sender mailer.Sender, tasks TaskQueue, log *zap.Logger) *Service {
	return &Service{
		Auth:           NewAuthService(repo, config, log),
		User:           NewUserService(repo, log),
		Movie:          NewMovieService(repo, log),
		Person:         NewPersonService(repo, log),
		Review:         NewReviewService(repo, log),
		Recommendation: NewRecommendationService(repo, log),
		Insights:       NewInsightsService(repo, log),
		List:           NewListService(repo, log),
		Discussion:     NewDiscussionService(repo, log),
		Article:        NewArticleService(repo, log),
		Notification:   NewNotificationService(repo, sender, tasks, log),
	}
}
