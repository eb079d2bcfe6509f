package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/pkg/utils"
	"github.com/cycleroute-microservice/internal/pkg/validator"
	"github.com/cycleroute-microservice/internal/usecase/dto"
)

// RouteHandler - обработчик запросов маршрута
type RouteHandler struct {
	routeUC RouteService
	timeout time.Duration
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler; timeout ограничивает один запрос
func NewRouteHandler(routeUC RouteService, timeout time.Duration, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		timeout: timeout,
		logger:  logger,
	}
}

// GetRoute godoc
// @Summary Велосипедный маршрут между двумя точками
// @Description Строит маршрут по графу улиц с учётом инфраструктуры и оценок сообщества. Если маршрут не найден, ответ 200 с непустым полем error.
// @Tags Route
// @Produce json
// @Param start_lng path number true "Долгота начала"
// @Param start_lat path number true "Широта начала"
// @Param end_lng path number true "Долгота конца"
// @Param end_lat path number true "Широта конца"
// @Param format query string false "Дополнительный формат геометрии (polyline)"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/route/{start_lng}/{start_lat}/{end_lng}/{end_lat} [get]
func (h *RouteHandler) GetRoute(c *fiber.Ctx) error {
	coords, err := floatParams(c, "start_lng", "start_lat", "end_lng", "end_lat")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.RouteRequest{
		StartLng: coords[0],
		StartLat: coords[1],
		EndLng:   coords[2],
		EndLat:   coords[3],
		Format:   c.Query("format"),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	started := time.Now()
	result, err := h.routeUC.Route(ctx, req)
	if err != nil {
		h.logger.Warn("Route request failed", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    len(result.WayIDs),
		TimeMSec: float64(time.Since(started).Microseconds()) / 1000,
	})
}
