// main.go
package main

import (
	"log"

	"movie-catalog/cmd"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/jobs"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/mailer"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	sender := mailer.New(mailer.Config{
		Host:     config.Email.Host,
		Port:     config.Email.Port,
		Username: config.Email.User,
		Password: config.Email.Password,
		From:     config.Email.From,
		Retries:  config.Email.Retries,
		Timeout:  config.Email.Timeout,
	}, logger)

	// Background workers for outgoing email
	pool := jobs.NewPool(logger, config.Worker.Count, config.Worker.QueueSize)
	pool.Run()

	// Wire all dependencies
	app := wire.Wiring(repos, config, sender, pool, logger)

	hooks := []cmd.ShutdownHook{}
	if config.Reminder.Enabled {
		scheduler := jobs.NewScheduler(app.Service.Notification, config.Reminder.Hour, config.Reminder.Timeout, logger)
		scheduler.Start()
		hooks = append(hooks, scheduler.Stop)
	}
	hooks = append(hooks, pool.Shutdown)

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger, hooks...); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
