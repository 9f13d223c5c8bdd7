package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"timetable-tracker/config"
	_ "timetable-tracker/docs" // Swagger docs
	"timetable-tracker/internal/httpserver"
	"timetable-tracker/internal/tracker/usecase"
	"timetable-tracker/pkg/datemath"
	"timetable-tracker/pkg/log"
	"timetable-tracker/pkg/metrics"
)

// @title       Timetable Tracker API
// @description Recurring daily tasks with completion records, streaks, statistics and a yearly heatmap.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Timetable Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s %s", cfg.Storage.Driver, cfg.Storage.Path)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Tracker.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		return
	}

	// 4. Tracker domain
	repo, err := newRepository(cfg.Storage)
	if err != nil {
		logger.Error(ctx, "Failed to initialize storage: ", err)
		return
	}

	trackerUC := usecase.New(logger, repo, metrics.NewMetrics(), usecase.WithLocation(dateMathParser.Location()))
	if err := trackerUC.Load(ctx); err != nil {
		logger.Error(ctx, "Failed to load tracker state: ", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		RateLimit:      cfg.RateLimit,
		TrackerUseCase: trackerUC,
		DateParser:     dateMathParser,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
