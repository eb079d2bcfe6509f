package repository

import (
	"context"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/paulmach/orb"
)

// GraphRepository - доступ к графу улиц в проекционной системе хранилища
type GraphRepository interface {
	// FindClosestNode возвращает ближайшую вершину в радиусе (проекционные единицы).
	// Координаты точки географические; перевод в проекцию выполняет реализация.
	FindClosestNode(ctx context.Context, lng, lat, radius float64) (*domain.Node, error)

	// GetEdgesInBound возвращает дуги внутри прямоугольника (EPSG:3857) вместе с тегами участков
	GetEdgesInBound(ctx context.Context, bound orb.Bound) ([]*domain.Edge, error)
}
