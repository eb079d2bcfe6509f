package main

// @title Cycleroute Microservice API
// @version 1.0.0
// @description Велосипедная навигация по графу улиц OpenStreetMap с учётом инфраструктуры и оценок сообщества.
// @description
// @description Основные возможности:
// @description - Построение маршрута между двумя точками с учётом велодорожек, одностороннего движения и оценок
// @description - Выбор участка и расширение его до группы участков
// @description - Текущие, средние и исторические оценки участков, приём новых отчётов

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/cycleroute-microservice/docs"
	"github.com/cycleroute-microservice/internal/config"
	httpDelivery "github.com/cycleroute-microservice/internal/delivery/http"
	"github.com/cycleroute-microservice/internal/delivery/http/handler"
	"github.com/cycleroute-microservice/internal/pkg/logger"
	"github.com/cycleroute-microservice/internal/repository/cache"
	"github.com/cycleroute-microservice/internal/repository/postgres"
	redisRepo "github.com/cycleroute-microservice/internal/repository/redis"
	"github.com/cycleroute-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger; LOG_LEVEL is re-applied when .env changes
	log, level, err := logger.NewWithLevel(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	config.Watch(func(newLevel string) {
		parsed := logger.ParseLevel(newLevel)
		if parsed != level.Level() {
			level.SetLevel(parsed)
			log.Info("Log level changed", zap.String("level", parsed.String()))
		}
	})

	log.Info("Starting Cycleroute Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Float64("node_search_radius", cfg.Routing.NodeSearchRadius),
		zap.Float64("bbox_margin", cfg.Routing.BBoxMargin),
		zap.Int("bbox_max_retries", cfg.Routing.BBoxMaxRetries),
	)

	// 3. Connect to PostgreSQL (street network and scores)
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis (score submissions)
	redisClient, err := redisRepo.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	graphRepo := postgres.NewGraphRepository(db)
	wayRepo := postgres.NewWayRepository(db)
	scoreRepo := postgres.NewScoreRepository(db)
	statsRepo := postgres.NewStatsRepository(db, log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Redis(), log)
	cacheRepo := cache.NewCacheRepository(redisClient.Redis(), log)

	log.Info("Repositories initialized")

	// 6. Initialize use cases
	routeUC := usecase.NewRouteUseCase(graphRepo, scoreRepo, cfg.Routing, log)
	segmentUC := usecase.NewSegmentUseCase(wayRepo, scoreRepo, cfg.Routing, log)
	scoreUC := usecase.NewScoreUseCase(scoreRepo, streamRepo, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log)

	// 7. Initialize HTTP handlers and server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewRouteHandler(routeUC, cfg.Routing.RequestTimeout, log),
		handler.NewSegmentHandler(segmentUC, cfg.Routing.RequestTimeout, log),
		handler.NewScoreHandler(scoreUC, log),
		handler.NewStatsHandler(statsUC, log),
		map[string]httpDelivery.HealthChecker{
			"postgres": db,
			"redis":    redisClient,
		},
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
