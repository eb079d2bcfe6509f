package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/pkg/errors"
	"github.com/cycleroute-microservice/internal/pkg/utils"
	"github.com/cycleroute-microservice/internal/pkg/validator"
	"github.com/cycleroute-microservice/internal/usecase/dto"
)

// ScoreHandler - оценки участков
type ScoreHandler struct {
	scoreUC ScoreService
	logger  *zap.Logger
}

func NewScoreHandler(scoreUC ScoreService, logger *zap.Logger) *ScoreHandler {
	return &ScoreHandler{
		scoreUC: scoreUC,
		logger:  logger,
	}
}

// Current godoc
// @Summary Текущие оценки участков
// @Description Последний по времени отчёт для каждого участка; null, если отчётов нет
// @Tags Scores
// @Produce json
// @Param way_ids path string true "ID участков, любой разделитель"
// @Success 200 {object} utils.SuccessResponse{data=dto.CurrentScoresResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/scores/current/{way_ids} [get]
func (h *ScoreHandler) Current(c *fiber.Ctx) error {
	ids, err := wayIDsParam(c, "way_ids")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.scoreUC.Current(c.UserContext(), ids)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Scores)})
}

// History godoc
// @Summary История отчётов
// @Description До 100 последних отчётов по участкам, новые первыми
// @Tags Scores
// @Produce json
// @Param way_ids path string true "ID участков, любой разделитель"
// @Success 200 {object} utils.SuccessResponse{data=dto.ScoreHistoryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/scores/history/{way_ids} [get]
func (h *ScoreHandler) History(c *fiber.Ctx) error {
	ids, err := wayIDsParam(c, "way_ids")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.scoreUC.History(c.UserContext(), ids)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total, Limit: 100})
}

// Recent godoc
// @Summary Последние отчёты в области карты
// @Tags Scores
// @Produce json
// @Param min_lng path number true "Минимальная долгота"
// @Param min_lat path number true "Минимальная широта"
// @Param max_lng path number true "Максимальная долгота"
// @Param max_lat path number true "Максимальная широта"
// @Success 200 {object} utils.SuccessResponse{data=dto.ScoreHistoryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/scores/recent/{min_lng}/{min_lat}/{max_lng}/{max_lat} [get]
func (h *ScoreHandler) Recent(c *fiber.Ctx) error {
	box, err := floatParams(c, "min_lng", "min_lat", "max_lng", "max_lat")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.RecentScoresRequest{MinLng: box[0], MinLat: box[1], MaxLng: box[2], MaxLat: box[3]}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.scoreUC.Recent(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total, Limit: 100})
}

// Aggregate godoc
// @Summary Средняя оценка участка
// @Description Среднее по всем отчётам с оценкой; именно это значение использует модель стоимости
// @Tags Scores
// @Produce json
// @Param way_id path int true "ID участка"
// @Success 200 {object} utils.SuccessResponse{data=dto.AggregateScoreResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/scores/aggregate/{way_id} [get]
func (h *ScoreHandler) Aggregate(c *fiber.Ctx) error {
	wayID, err := wayIDParam(c, "way_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.scoreUC.Aggregate(c.UserContext(), wayID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Submit godoc
// @Summary Новый отчёт об участках
// @Description Принимает оценку (0..1 или -1 без оценки) и публикует её в стрим; сохранение выполняет воркер
// @Tags Scores
// @Accept json
// @Produce json
// @Param request body dto.SubmitScoreRequest true "Отчёт"
// @Success 202 {object} utils.SuccessResponse{data=dto.SubmitScoreResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/scores [post]
func (h *ScoreHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"body": "malformed JSON"}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.scoreUC.Submit(c.UserContext(), req)
	if err != nil {
		h.logger.Error("Score submission failed", zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusAccepted)
	return utils.SendSuccess(c, result, nil)
}
