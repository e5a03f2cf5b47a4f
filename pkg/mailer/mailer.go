package mailer

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/go-mail/mail/v2"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

//go:embed "templates"
var templateFS embed.FS

const (
	TemplateReminder = "reminder.tmpl"
	TemplateUpcoming = "upcoming.tmpl"
)

// ErrUnavailable is returned while the breaker is open and delivery is not
// attempted at all.
var ErrUnavailable = errors.New("mailer: delivery temporarily unavailable")

// Sender delivers a templated email to one recipient.
type Sender interface {
	Send(recipient, tmplName string, tmplData any) error
}

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Retries  int
	Timeout  time.Duration
}

type Mailer struct {
	dialer     dialer
	sender     string
	retries    int
	retryDelay time.Duration
	breaker    *gobreaker.CircuitBreaker[struct{}]
	log        *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Mailer {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.Timeout = cfg.Timeout
	return newMailer(d, cfg.From, cfg.Retries, 500*time.Millisecond, log)
}

func newMailer(d dialer, sender string, retries int, retryDelay time.Duration, log *zap.Logger) *Mailer {
	if retries < 1 {
		retries = 1
	}
	log = log.With(zap.String("component", "mailer"))

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "smtp",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Mail circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Mailer{
		dialer:     d,
		sender:     sender,
		retries:    retries,
		retryDelay: retryDelay,
		breaker:    breaker,
		log:        log,
	}
}

// Render executes the subject, plainBody and htmlBody blocks of a template.
func Render(tmplName string, tmplData any) (map[string]string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+tmplName)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", tmplName, err)
	}
	parts := map[string]string{
		"subject":   "",
		"plainBody": "",
		"htmlBody":  "",
	}
	for key := range parts {
		buf := new(bytes.Buffer)
		if err := tmpl.ExecuteTemplate(buf, key, tmplData); err != nil {
			return nil, fmt.Errorf("execute template %s/%s: %w", tmplName, key, err)
		}
		parts[key] = buf.String()
	}
	return parts, nil
}

func (m *Mailer) Send(recipient, tmplName string, tmplData any) error {
	parts, err := Render(tmplName, tmplData)
	if err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", recipient)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", parts["subject"])
	msg.SetBody("text/plain", parts["plainBody"])
	msg.AddAlternative("text/html", parts["htmlBody"])

	_, err = m.breaker.Execute(func() (struct{}, error) {
		var sendErr error
		for i := 0; i < m.retries; i++ {
			if sendErr = m.dialer.DialAndSend(msg); sendErr == nil {
				return struct{}{}, nil
			}
			if i < m.retries-1 {
				time.Sleep(m.retryDelay)
			}
		}
		return struct{}{}, sendErr
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrUnavailable
	}
	if err != nil {
		m.log.Error("Failed to send email",
			zap.String("template", tmplName),
			zap.Error(err))
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
