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

// SegmentHandler - выбор участков на карте
type SegmentHandler struct {
	segmentUC SegmentService
	timeout   time.Duration
	logger    *zap.Logger
}

func NewSegmentHandler(segmentUC SegmentService, timeout time.Duration, logger *zap.Logger) *SegmentHandler {
	return &SegmentHandler{
		segmentUC: segmentUC,
		timeout:   timeout,
		logger:    logger,
	}
}

// Select godoc
// @Summary Выбор участка
// @Description Возвращает геометрию, концы, название и текущую оценку участка. Неизвестный участок даёт 200 с error.
// @Tags Segment
// @Produce json
// @Param way_id path int true "ID участка"
// @Success 200 {object} utils.SuccessResponse{data=dto.SegmentResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/segment/select/{way_id} [get]
func (h *SegmentHandler) Select(c *fiber.Ctx) error {
	wayID, err := wayIDParam(c, "way_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	result, err := h.segmentUC.Select(ctx, wayID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Merge godoc
// @Summary Расширение участка
// @Description Соединяет выбранный участок с группой участков самым длинным из четырёх вариантов пути.
// @Tags Segment
// @Produce json
// @Param way_id path int true "ID опорного участка"
// @Param way_ids path string true "ID участков группы, любой разделитель"
// @Success 200 {object} utils.SuccessResponse{data=dto.MergeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/segment/route/{way_id}/{way_ids} [get]
func (h *SegmentHandler) Merge(c *fiber.Ctx) error {
	anchor, err := wayIDParam(c, "way_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.MergeRequest{
		AnchorWayID: anchor,
		WayIDs:      c.Params("way_ids"),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	result, err := h.segmentUC.Merge(ctx, req)
	if err != nil {
		h.logger.Warn("Merge request failed", zap.Int64("anchor", anchor), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.WayIDs)})
}
