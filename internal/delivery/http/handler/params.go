package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cycleroute-microservice/internal/pkg/errors"
	"github.com/cycleroute-microservice/internal/pkg/utils"
)

// floatParams разбирает path-параметры как числа; первая ошибка возвращается как ErrInvalidCoordinates
func floatParams(c *fiber.Ctx, names ...string) ([]float64, error) {
	values := make([]float64, 0, len(names))
	for _, name := range names {
		v, err := strconv.ParseFloat(c.Params(name), 64)
		if err != nil {
			return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{"param": name})
		}
		values = append(values, v)
	}
	return values, nil
}

func wayIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidWayIDs.WithDetails(map[string]interface{}{"param": name})
	}
	return id, nil
}

// wayIDsParam извлекает идентификаторы из произвольного текста ("1,2", "[1 2]")
func wayIDsParam(c *fiber.Ctx, name string) ([]int64, error) {
	ids := utils.ParseWayIDs(c.Params(name))
	if len(ids) == 0 {
		return nil, errors.ErrInvalidWayIDs.WithDetails(map[string]interface{}{"param": name})
	}
	return ids, nil
}
