// @title HistBench API
// @version 1.0
// @description Read-only browsing API for the HistBench question dataset.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "histbench-api/cmd/api/docs"
	"histbench-api/internal/adapter"
	"histbench-api/internal/cache"
	"histbench-api/internal/config"
	"histbench-api/internal/dataset"
	"histbench-api/internal/domain"
	"histbench-api/internal/handler"
	"histbench-api/internal/logger"
	"histbench-api/internal/media"
	"histbench-api/internal/metrics"
	"histbench-api/internal/repository"
	"histbench-api/internal/router"
	"histbench-api/internal/service"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Load the dataset before accepting traffic
	start := time.Now()
	table, err := dataset.NewLoader(cfg.Dataset.Path).Load()
	if err != nil {
		appLogger.Fatal("Failed to load dataset", zap.String("path", cfg.Dataset.Path), zap.Error(err))
	}
	metrics.RecordDatasetLoad(table.Len(), time.Since(start))

	questionRepository := repository.NewQuestionTable(table)
	resolver := media.NewResolver(cfg.Storage.BaseURL)

	// Media files come from a local directory when configured, otherwise from object storage
	var mediaSource domain.MediaSource
	if cfg.Media.Dir != "" {
		appLogger.Info("Serving media from local directory", zap.String("dir", cfg.Media.Dir))
		mediaSource = media.NewLocalSource(cfg.Media.Dir)
	} else {
		appLogger.Info("Serving media from object storage", zap.String("base_url", resolver.BaseURL()))
		mediaSource = media.NewRemoteSource(resolver.BaseURL(), cfg.Media.FetchTimeout)
	}

	// Conversion cache is optional
	var conversionCache domain.ConversionCache = domain.NoopCache{}
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, conversion cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			conversionCache = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Conversion cache connected", zap.String("address", cfg.Redis.Address))
		}
	}
	conversionTTL := cfg.ParseTTLStringOrDefault(cfg.Cache.ConversionTTL, 24*time.Hour)

	// Initialize services
	questionService := service.NewQuestionService(questionRepository, resolver)
	mediaService := service.NewMediaService(mediaSource, conversionCache, conversionTTL)

	app := router.New(cfg, router.Handlers{
		Question: handler.NewQuestionHandler(questionService),
		Media:    handler.NewMediaHandler(mediaService),
	})

	// Start server
	go func() {
		appLogger.Info("Starting server",
			zap.String("addr", cfg.Addr()),
			zap.Int("questions", table.Len()),
			zap.String("env", cfg.Logger.Env),
		)
		if err := app.Listen(cfg.Addr()); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
