package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/edudesk/attendance_service/internal/app"
	"github.com/edudesk/attendance_service/internal/config"
	"github.com/edudesk/attendance_service/internal/controller/handlers"
	"github.com/edudesk/attendance_service/internal/repository"
	"github.com/edudesk/attendance_service/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting attendance service",
		zap.String("environment", cfg.Environment),
		zap.Duration("token_ttl", cfg.TokenTTL))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, "migrations")
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}

	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	sessionRepo := repository.NewSessionRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	resultRepo := repository.NewLessonResultRepository(pool)

	attendanceService := service.NewAttendanceService(
		sessionRepo,
		scheduleRepo,
		profileRepo,
		resultRepo,
		cfg.TokenTTL,
		cfg.CheckinBaseURL,
		logger,
	)

	handler := handlers.NewAttendanceHandler(attendanceService, logger)
	router := handlers.NewRouter(handler, cfg.JWTSecret, cfg.Environment, logger)

	server := app.NewServer(cfg.HTTPAddr, router, logger)
	server.Start()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error("Failed to stop server gracefully", zap.Error(err))
	}

	logger.Info("Attendance service stopped")
}
