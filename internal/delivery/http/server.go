package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/config"
	"github.com/cycleroute-microservice/internal/delivery/http/handler"
	"github.com/cycleroute-microservice/internal/delivery/http/middleware"
)

// HealthChecker - зависимость, доступность которой проверяет /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	routeHandler   *handler.RouteHandler
	segmentHandler *handler.SegmentHandler
	scoreHandler   *handler.ScoreHandler
	statsHandler   *handler.StatsHandler
	health         map[string]HealthChecker
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	routeHandler *handler.RouteHandler,
	segmentHandler *handler.SegmentHandler,
	scoreHandler *handler.ScoreHandler,
	statsHandler *handler.StatsHandler,
	health map[string]HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Cycleroute Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Routing.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		routeHandler:   routeHandler,
		segmentHandler: segmentHandler,
		scoreHandler:   scoreHandler,
		statsHandler:   statsHandler,
		health:         health,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthCheck)

	// Route
	api.Get("/route/:start_lng/:start_lat/:end_lng/:end_lat", s.routeHandler.GetRoute)

	// Segments
	api.Get("/segment/select/:way_id", s.segmentHandler.Select)
	api.Get("/segment/route/:way_id/:way_ids", s.segmentHandler.Merge)

	// Scores
	api.Get("/scores/current/:way_ids", s.scoreHandler.Current)
	api.Get("/scores/history/:way_ids", s.scoreHandler.History)
	api.Get("/scores/recent/:min_lng/:min_lat/:max_lng/:max_lat", s.scoreHandler.Recent)
	api.Get("/scores/aggregate/:way_id", s.scoreHandler.Aggregate)
	api.Post("/scores", s.scoreHandler.Submit)

	api.Get("/stats", s.statsHandler.GetStatistics)
}

// healthCheck godoc
// @Summary Проверка состояния
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) healthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK
	checks := make(fiber.Map, len(s.health))
	for name, checker := range s.health {
		if err := checker.Health(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = err.Error()
			status = "unhealthy"
			code = fiber.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, паники)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code == fiber.StatusNotFound {
				errCode = "NOT_FOUND"
			}
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
