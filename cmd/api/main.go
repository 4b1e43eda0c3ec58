// Command api runs the HTTP backend for the research-matching
// platform: signup, research listings, and applications.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Showmick119/researchify-backend/internal/config"
	"github.com/Showmick119/researchify-backend/internal/database"
	"github.com/Showmick119/researchify-backend/internal/handler"
	"github.com/Showmick119/researchify-backend/internal/logger"
	"github.com/Showmick119/researchify-backend/internal/middleware"
	"github.com/Showmick119/researchify-backend/internal/repository"
	"github.com/Showmick119/researchify-backend/internal/router"
	"github.com/Showmick119/researchify-backend/internal/server"
	"github.com/Showmick119/researchify-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logger service")
	}

	appLogger := logger.New(cfg, loggerService)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, appLogger, cfg); err != nil {
		cancel()
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}
	cancel()

	srv, err := server.New(cfg, appLogger, loggerService)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.RegisterRoutes(e, handlers, middlewares)

	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}

	appLogger.Info().Msg("server stopped")
}
