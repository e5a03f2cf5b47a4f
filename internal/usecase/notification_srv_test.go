package usecase

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/mailer"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func due(user uuid.UUID, email, title string) entity.DueReminder {
	return entity.DueReminder{
		ReminderID: uuid.New(),
		UserID:     user,
		Username:   email,
		Email:      email,
		MovieID:    uuid.New(),
		MovieTitle: title,
	}
}

func TestSendDueRemindersGroupsPerUser(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	reminders := &fakeReminderRepo{due: []entity.DueReminder{
		due(alice, "alice@example.com", "Dune"),
		due(alice, "alice@example.com", "Heat"),
		due(bob, "bob@example.com", "Alien"),
	}}
	mail := &fakeMailer{failTo: map[string]bool{"bob@example.com": true}}
	repo := &repository.Repository{Reminder: reminders}
	svc := NewNotificationService(repo, mail, inlineQueue{}, nopLog)

	notified, err := svc.SendDueReminders(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, notified)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "alice@example.com", mail.sent[0].to)
	assert.Equal(t, mailer.TemplateReminder, mail.sent[0].template)
	data := mail.sent[0].data.(emailData)
	assert.Len(t, data.Movies, 2)

	// bob's reminder stays pending for the next run
	assert.ElementsMatch(t, []uuid.UUID{reminders.due[0].ReminderID, reminders.due[1].ReminderID}, reminders.sentIDs)
}

func TestSendDueRemindersNothingDue(t *testing.T) {
	repo := &repository.Repository{Reminder: &fakeReminderRepo{}}
	svc := NewNotificationService(repo, &fakeMailer{}, inlineQueue{}, nopLog)

	notified, err := svc.SendDueReminders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, notified)
}

func TestNotifyUpcoming(t *testing.T) {
	soon := newMovie("Soon")
	soon.ReleaseDate = time.Now().Add(48 * time.Hour)
	later := newMovie("Later")
	later.ReleaseDate = time.Now().Add(30 * 24 * time.Hour)

	users := &fakeUserRepo{users: []*entity.User{
		{Base: entity.Base{ID: uuid.New()}, Username: "a", Email: "a@example.com", Notifications: entity.NotificationPreferences{Email: true}},
		{Base: entity.Base{ID: uuid.New()}, Username: "b", Email: "b@example.com"},
	}}
	mail := &fakeMailer{}
	repo := &repository.Repository{Movie: newFakeMovieRepo(soon, later), User: users}
	svc := NewNotificationService(repo, mail, inlineQueue{}, nopLog)

	got, err := svc.NotifyUpcoming(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got.Movies)
	assert.Equal(t, 1, got.Recipients)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "a@example.com", mail.sent[0].to)
	assert.Equal(t, mailer.TemplateUpcoming, mail.sent[0].template)
}

func TestNotifyUpcomingWithoutMovies(t *testing.T) {
	repo := &repository.Repository{Movie: newFakeMovieRepo(), User: &fakeUserRepo{}}
	svc := NewNotificationService(repo, &fakeMailer{}, inlineQueue{}, nopLog)

	_, err := svc.NotifyUpcoming(context.Background())
	assert.Equal(t, utils.KindNotFound, utils.ErrorKindOf(err))
}
