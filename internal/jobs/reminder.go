package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	reminderScans = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_scans_total",
			Help: "Daily reminder scans, by outcome",
		},
		[]string{"outcome"},
	)
	reminderUsersNotified = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reminder_users_notified_total",
		Help: "Users emailed by the reminder scan",
	})
)

// ReminderSender delivers every due reminder and reports how many users
// were emailed.
type ReminderSender interface {
	SendDueReminders(ctx context.Context) (int, error)
}

// Scheduler runs the reminder scan once a day at a fixed local hour,
// independent of request handling.
type Scheduler struct {
	sender  ReminderSender
	hour    int
	timeout time.Duration
	log     *zap.Logger
	now     func() time.Time

	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func NewScheduler(sender ReminderSender, hour int, timeout time.Duration, log *zap.Logger) *Scheduler {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Scheduler{
		sender:  sender,
		hour:    hour,
		timeout: timeout,
		log:     log.With(zap.String("component", "reminder_scheduler")),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
}

// NextRun returns the first moment at hour:00 strictly after now.
func NextRun(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			next := NextRun(s.now(), s.hour)
			s.log.Info("Next reminder scan scheduled", zap.Time("at", next))

			timer := time.NewTimer(time.Until(next))
			select {
			case <-s.stop:
				timer.Stop()
				return
			case <-timer.C:
				s.RunOnce()
			}
		}
	}()
}

// RunOnce scans and sends reminders within the scheduler's timeout.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	// stopping the scheduler aborts an in-flight scan
	go func() {
		select {
		case <-s.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	start := time.Now()
	sent, err := s.sender.SendDueReminders(ctx)
	reminderUsersNotified.Add(float64(sent))
	if err != nil {
		reminderScans.WithLabelValues("error").Inc()
		s.log.Error("Reminder scan failed",
			zap.Error(err),
			zap.Int("users_notified", sent),
			zap.Duration("duration", time.Since(start)),
		)
		return
	}

	reminderScans.WithLabelValues("ok").Inc()
	s.log.Info("Reminder scan finished",
		zap.Int("users_notified", sent),
		zap.Duration("duration", time.Since(start)),
	)
}

// Stop ends the schedule and waits for a running scan, up to ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.once.Do(func() { close(s.stop) })

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
