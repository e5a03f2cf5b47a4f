package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/mailer"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const upcomingWindow = 7 * 24 * time.Hour

// TaskQueue accepts work to run after the request returns.
type TaskQueue interface {
	Submit(name string, task func(ctx context.Context) error) error
}

type NotificationService interface {
	Upcoming(ctx context.Context) ([]response.MovieSummary, error)
	SetReminder(ctx context.Context, userID uuid.UUID, req *request.SetReminderRequest) (*response.ReminderResponse, error)
	Dashboard(ctx context.Context, userID uuid.UUID) ([]response.ReminderResponse, error)

	// NotifyUpcoming queues one email per subscribed user listing the
	// movies released within the next week.
	NotifyUpcoming(ctx context.Context) (*response.UpcomingNotifyResponse, error)

	// SendDueReminders emails every user with due reminders once and marks
	// those reminders sent. Failed deliveries stay pending.
	SendDueReminders(ctx context.Context) (int, error)
}

type emailMovie struct {
	Title       string
	ReleaseDate time.Time
}

type emailData struct {
	Username string
	Movies   []emailMovie
}

type notificationService struct {
	repo   *repository.Repository
	mailer mailer.Sender
	tasks  TaskQueue
	log    *zap.Logger
	now    func() time.Time
}

func NewNotificationService(repo *repository.Repository, sender mailer.Sender, tasks TaskQueue, log *zap.Logger) NotificationService {
	return &notificationService{
		repo:   repo,
		mailer: sender,
		tasks:  tasks,
		log:    log.With(zap.String("service", "notification")),
		now:    time.Now,
	}
}

func (s *notificationService) upcomingMovies(ctx context.Context) ([]*entity.Movie, error) {
	now := s.now()
	movies, err := s.repo.Movie.ReleasingBetween(ctx, now, now.Add(upcomingWindow))
	if err != nil {
		return nil, utils.ErrInternal("Failed to get upcoming movies", err)
	}
	return movies, nil
}

func (s *notificationService) Upcoming(ctx context.Context) ([]response.MovieSummary, error) {
	movies, err := s.upcomingMovies(ctx)
	if err != nil {
		return nil, err
	}
	return response.MoviesToSummary(movies), nil
}

func (s *notificationService) SetReminder(ctx context.Context, userID uuid.UUID, req *request.SetReminderRequest) (*response.ReminderResponse, error) {
	if err := validate(s.log, "Set reminder", req); err != nil {
		return nil, err
	}

	movieID, err := parseID(req.MovieID, "movie")
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, utils.ErrInternal("Failed to set reminder", err)
	}
	if movie == nil {
		return nil, utils.ErrNotFound("Movie not found")
	}

	reminder := &entity.Reminder{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		UserID:       userID,
		MovieID:      movieID,
		ReminderDate: req.ReminderDate,
	}
	if err := s.repo.Reminder.Create(ctx, reminder); err != nil {
		return nil, utils.ErrInternal("Failed to set reminder", err)
	}

	s.log.Info("Reminder set",
		zap.String("user_id", userID.String()),
		zap.String("movie_id", req.MovieID),
		zap.Time("reminder_date", req.ReminderDate),
	)

	return &response.ReminderResponse{
		ID:           reminder.ID.String(),
		MovieID:      movie.ID.String(),
		MovieTitle:   movie.Title,
		ReleaseDate:  movie.ReleaseDate,
		ReminderDate: reminder.ReminderDate,
	}, nil
}

// Dashboard lists pending reminders, or nothing when the user turned
// dashboard notifications off.
func (s *notificationService) Dashboard(ctx context.Context, userID uuid.UUID) ([]response.ReminderResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get notifications", err)
	}
	if user == nil {
		return nil, utils.ErrNotFound("User not found")
	}
	if !user.Notifications.Dashboard {
		return []response.ReminderResponse{}, nil
	}

	pending, err := s.repo.Reminder.FindPendingByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrInternal("Failed to get notifications", err)
	}
	return response.RemindersToResponse(pending), nil
}

func (s *notificationService) NotifyUpcoming(ctx context.Context) (*response.UpcomingNotifyResponse, error) {
	movies, err := s.upcomingMovies(ctx)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, utils.ErrNotFound("No upcoming movies")
	}

	users, err := s.repo.User.FindEmailSubscribers(ctx)
	if err != nil {
		return nil, utils.ErrInternal("Failed to notify users", err)
	}

	list := make([]emailMovie, 0, len(movies))
	for _, m := range movies {
		list = append(list, emailMovie{Title: m.Title, ReleaseDate: m.ReleaseDate})
	}

	queued := 0
	for _, u := range users {
		email := u.Email
		data := emailData{Username: u.Username, Movies: list}
		err := s.tasks.Submit("upcoming_email", func(context.Context) error {
			return s.mailer.Send(email, mailer.TemplateUpcoming, data)
		})
		if err != nil {
			s.log.Warn("Failed to queue upcoming email", zap.Error(err), zap.String("user_id", u.ID.String()))
			continue
		}
		queued++
	}

	s.log.Info("Upcoming movie emails queued",
		zap.Int("movies", len(movies)),
		zap.Int("recipients", queued),
	)

	return &response.UpcomingNotifyResponse{Movies: len(movies), Recipients: queued}, nil
}

func (s *notificationService) SendDueReminders(ctx context.Context) (int, error) {
	now := s.now()
	due, err := s.repo.Reminder.FindDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("find due reminders: %w", err)
	}

	var (
		notified int
		failures []error
	)

	// rows arrive ordered by user
	for start := 0; start < len(due); {
		end := start
		for end < len(due) && due[end].UserID == due[start].UserID {
			end++
		}
		batch := due[start:end]
		start = end

		if err := ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		if err := s.remind(ctx, batch, now); err != nil {
			s.log.Warn("Reminder delivery failed",
				zap.Error(err),
				zap.String("user_id", batch[0].UserID.String()),
				zap.Int("reminders", len(batch)),
			)
			failures = append(failures, err)
			continue
		}
		notified++
	}

	return notified, errors.Join(failures...)
}

func (s *notificationService) remind(ctx context.Context, batch []entity.DueReminder, now time.Time) error {
	data := emailData{Username: batch[0].Username}
	ids := make([]uuid.UUID, 0, len(batch))
	for _, r := range batch {
		data.Movies = append(data.Movies, emailMovie{Title: r.MovieTitle, ReleaseDate: r.ReleaseDate})
		ids = append(ids, r.ReminderID)
	}

	if err := s.mailer.Send(batch[0].Email, mailer.TemplateReminder, data); err != nil {
		return fmt.Errorf("send reminder to user %s: %w", batch[0].UserID, err)
	}
	if err := s.repo.Reminder.MarkSent(ctx, ids, now); err != nil {
		return fmt.Errorf("mark reminders sent for user %s: %w", batch[0].UserID, err)
	}
	return nil
}
