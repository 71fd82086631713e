package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ayushqc/college-info-api/internal/config"
	"github.com/ayushqc/college-info-api/internal/database"
	"github.com/ayushqc/college-info-api/internal/handler"
	"github.com/ayushqc/college-info-api/internal/logger"
	"github.com/ayushqc/college-info-api/internal/repository"
	"github.com/ayushqc/college-info-api/internal/router"
	"github.com/ayushqc/college-info-api/internal/service"
	"github.com/ayushqc/college-info-api/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting College Info API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to MongoDB ────────────────────────────────────────────
	// No serving without a store: connection failure here is fatal.
	client, db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	collegeRepo := repository.NewCollegeRepository(db)
	timelineRepo := repository.NewTimelineRepository(db)
	credentialRepo := repository.NewCredentialRepository(db)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(credentialRepo, cfg, log)
	collegeService := service.NewCollegeService(collegeRepo)
	timelineService := service.NewTimelineService(timelineRepo, collegeRepo)
	exportService := service.NewExportService()

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		College:  handler.NewCollegeHandler(collegeService, exportService, log),
		Admin:    handler.NewAdminHandler(authService, log),
		Timeline: handler.NewTimelineHandler(timelineService, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
