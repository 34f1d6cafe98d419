package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/bff-service/internal/config"
	"github.com/deppfellow/bff-service/internal/database"
	"github.com/deppfellow/bff-service/internal/handler"
	"github.com/deppfellow/bff-service/internal/logger"
	"github.com/deppfellow/bff-service/internal/repository"
	"github.com/deppfellow/bff-service/internal/router"
	"github.com/deppfellow/bff-service/internal/server"
	"github.com/deppfellow/bff-service/internal/service"
	"github.com/rs/zerolog"
)

const defaultContextTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("new relic disabled")
	}

	// os.Exit skips deferred calls, so New Relic is flushed on both paths.
	if err := run(cfg, &log, loggerService); err != nil {
		log.Error().Err(err).Msg("server exited with error")
		loggerService.Shutdown()
		os.Exit(1)
	}

	loggerService.Shutdown()
}

func run(cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), defaultContextTimeout)
	err := database.Migrate(migrateCtx, log, cfg)
	cancelMigrate()
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	services, err := service.NewServices(srv, repository.NewRepositories())
	if err != nil {
		return fmt.Errorf("could not create services: %w", err)
	}

	r := router.NewRouter(srv, handler.NewHandlers(srv, services))
	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var startErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
	case startErr = <-serveErr:
		log.Error().Err(startErr).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultContextTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(startErr, fmt.Errorf("server forced to shutdown: %w", err))
	}
	if startErr != nil {
		return startErr
	}

	log.Info().Msg("server exited properly")
	return nil
}
