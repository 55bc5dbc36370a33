package main

import (
	"flag"
	"fmt" // For errors before the logger is up
	"os"
	"time"

	"histbench-api/internal/config"
	"histbench-api/internal/dataset"
	"histbench-api/internal/logger"
	"histbench-api/internal/media"
	"histbench-api/internal/repository"
	"histbench-api/internal/service"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "dataset CSV to check (defaults to dataset.path from config)")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	path := cfg.Dataset.Path
	if *file != "" {
		path = *file
	}

	start := time.Now()
	table, err := dataset.NewLoader(path).Load()
	if err != nil {
		logger.Get().Error("Dataset check failed", zap.String("path", path), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	questions := service.NewQuestionService(repository.NewQuestionTable(table), media.NewResolver(cfg.Storage.BaseURL))
	stats := questions.GetStats()

	out, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		logger.Get().Error("Failed to encode stats", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	fmt.Println(string(out))

	logger.Get().Info("Dataset check passed",
		zap.String("path", path),
		zap.Int("rows", table.Len()),
		zap.Duration("duration", time.Since(start)),
	)
}
