package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/config"
	"github.com/cycleroute-microservice/internal/pkg/logger"
	"github.com/cycleroute-microservice/internal/repository/postgres"
	redisRepo "github.com/cycleroute-microservice/internal/repository/redis"
	"github.com/cycleroute-microservice/internal/worker"
	"github.com/cycleroute-microservice/internal/worker/score"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger; LOG_LEVEL follows .env changes like the API does
	log, level, err := logger.NewWithLevel(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	config.Watch(func(newLevel string) {
		level.SetLevel(logger.ParseLevel(newLevel))
	})

	log.Info("Starting Score Ingestion Worker",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := redisRepo.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories and workers
	scoreRepo := postgres.NewScoreRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Redis(), log)

	workerManager := worker.NewWorkerManager(log)
	ingestion := score.NewScoreIngestionWorker(
		streamRepo,
		scoreRepo,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	)
	ingestion.SetConsumerName(cfg.Worker.ConsumerName)
	workerManager.Register(ingestion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 6. Run until a signal arrives or a worker gives up
	select {
	case <-ctx.Done():
		log.Info("Received shutdown signal")
	case err := <-workerManager.Failed():
		log.Error("Worker stopped unexpectedly, shutting down", zap.Error(err))
	}
	stop()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
