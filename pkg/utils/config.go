package utils

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	Reminder ReminderConfig
	Worker   WorkerConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	AdminKey        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	RateLimitRPM    int
	CORSOrigins     []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Retries  int
	Timeout  time.Duration
}

type ReminderConfig struct {
	Enabled bool
	// Hour of day (local time) the daily reminder scan fires at.
	Hour    int
	Timeout time.Duration
}

type WorkerConfig struct {
	Count     int
	QueueSize int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-catalog")
	viper.SetDefault("PORT", "5001")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REQUEST_TIMEOUT", "10s")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	viper.SetDefault("RATE_LIMIT_RPM", 300)
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 1)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_RETRIES", 3)
	viper.SetDefault("SMTP_TIMEOUT", "10s")
	viper.SetDefault("EMAIL_FROM", "no-reply@movieapp.com")
	viper.SetDefault("REMINDER_ENABLED", true)
	viper.SetDefault("REMINDER_HOUR", 8)
	viper.SetDefault("REMINDER_TIMEOUT", "5m")
	viper.SetDefault("WORKERS", 3)
	viper.SetDefault("WORKER_QUEUE_SIZE", 100)

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional, the environment alone is enough
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            viper.GetString("APP_NAME"),
			Port:            viper.GetString("PORT"),
			Debug:           viper.GetBool("DEBUG"),
			LogPath:         viper.GetString("LOG_PATH"),
			AdminKey:        viper.GetString("ADMIN_KEY"),
			RequestTimeout:  viper.GetDuration("REQUEST_TIMEOUT"),
			ShutdownTimeout: viper.GetDuration("SHUTDOWN_TIMEOUT"),
			RateLimitRPM:    viper.GetInt("RATE_LIMIT_RPM"),
			CORSOrigins:     splitCSV(viper.GetString("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
			Retries:  viper.GetInt("SMTP_RETRIES"),
			Timeout:  viper.GetDuration("SMTP_TIMEOUT"),
		},
		Reminder: ReminderConfig{
			Enabled: viper.GetBool("REMINDER_ENABLED"),
			Hour:    viper.GetInt("REMINDER_HOUR"),
			Timeout: viper.GetDuration("REMINDER_TIMEOUT"),
		},
		Worker: WorkerConfig{
			Count:     viper.GetInt("WORKERS"),
			QueueSize: viper.GetInt("WORKER_QUEUE_SIZE"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if config.Reminder.Hour < 0 || config.Reminder.Hour > 23 {
		return nil, errors.New("REMINDER_HOUR must be between 0 and 23")
	}

	return config, nil
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
