package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// ShutdownHook stops a background component once the server has drained.
type ShutdownHook func(ctx context.Context) error

// APIServer serves route until SIGINT or SIGTERM, then shuts the server down
// and runs hooks in order, all within shutdownTimeout.
func APIServer(route http.Handler, port string, shutdownTimeout time.Duration, log *zap.Logger, hooks ...ShutdownHook) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           route,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       time.Minute,
		ErrorLog:          zap.NewStdLog(log),
	}

	shutdownErr := make(chan error, 1)
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-ch
		log.Info("Shutting down server gracefully", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		errs := []error{server.Shutdown(ctx)}
		for _, hook := range hooks {
			errs = append(errs, hook(ctx))
		}
		shutdownErr <- errors.Join(errs...)
	}()

	log.Info("Server running", zap.String("addr", "http://localhost"+server.Addr))
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Error("Graceful shutdown timed out, forcing exit", zap.Duration("timeout", shutdownTimeout))
			return fmt.Errorf("graceful shutdown timed out: %w", err)
		}
		return err
	}

	log.Info("Server stopped")
	return nil
}
