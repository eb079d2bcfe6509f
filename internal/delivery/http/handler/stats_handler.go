package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/pkg/utils"
)

type StatsHandler struct {
	statsUC StatsService
	logger  *zap.Logger
}

func NewStatsHandler(statsUC StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Статистика сети
// @Description Число участков, рёбер и узлов, сводка по отчётам и охват сети
// @Tags Stats
// @Produce json
// @Param refresh query bool false "Пересчитать, минуя сохранённый результат"
// @Success 200 {object} utils.SuccessResponse{data=domain.NetworkStats}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	var (
		stats *domain.NetworkStats
		err   error
	)
	if c.QueryBool("refresh") {
		stats, err = h.statsUC.RefreshStatistics(c.UserContext())
	} else {
		stats, err = h.statsUC.GetStatistics(c.UserContext())
	}
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
