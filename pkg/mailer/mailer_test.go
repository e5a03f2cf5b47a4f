package mailer

import (
	"errors"
	"testing"
	"time"

	"github.com/go-mail/mail/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDialer struct {
	failures int
	calls    int
}

func (d *fakeDialer) DialAndSend(m ...*mail.Message) error {
	d.calls++
	if d.calls <= d.failures {
		return errors.New("smtp down")
	}
	return nil
}

type templateMovie struct {
	Title       string
	ReleaseDate time.Time
}

func templateData() map[string]any {
	return map[string]any{
		"Username": "alice",
		"Movies": []templateMovie{
			{Title: "Dune <Part Two>", ReleaseDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestRender(t *testing.T) {
	for _, name := range []string{TemplateReminder, TemplateUpcoming} {
		t.Run(name, func(t *testing.T) {
			parts, err := Render(name, templateData())
			require.NoError(t, err)
			assert.NotEmpty(t, parts["subject"])
			assert.Contains(t, parts["plainBody"], "alice")
			assert.Contains(t, parts["plainBody"], "March 1, 2026")
			assert.Contains(t, parts["htmlBody"], "Dune &lt;Part Two&gt;")
		})
	}

	_, err := Render("missing.tmpl", nil)
	assert.Error(t, err)
}

func TestSendRetries(t *testing.T) {
	d := &fakeDialer{failures: 2}
	m := newMailer(d, "no-reply@movieapp.com", 3, 0, zap.NewNop())

	err := m.Send("alice@example.com", TemplateReminder, templateData())

	require.NoError(t, err)
	assert.Equal(t, 3, d.calls)
}

func TestSendGivesUpAfterRetries(t *testing.T) {
	d := &fakeDialer{failures: 10}
	m := newMailer(d, "no-reply@movieapp.com", 2, 0, zap.NewNop())

	err := m.Send("alice@example.com", TemplateReminder, templateData())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 2, d.calls)
}

func TestSendBreakerOpens(t *testing.T) {
	d := &fakeDialer{failures: 1000}
	m := newMailer(d, "no-reply@movieapp.com", 1, 0, zap.NewNop())

	for i := 0; i < 5; i++ {
		require.Error(t, m.Send("alice@example.com", TemplateReminder, templateData()))
	}
	calls := d.calls

	err := m.Send("alice@example.com", TemplateReminder, templateData())

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, calls, d.calls)
}
