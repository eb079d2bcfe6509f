package repository

import (
	"context"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/paulmach/orb"
)

// WayRepository - доступ к участкам уличной сети
type WayRepository interface {
	// GetWay возвращает участок с геометрией в проекции хранилища
	GetWay(ctx context.Context, wayID int64) (*domain.Way, error)

	// GetWaysInBound возвращает участки, пересекающие прямоугольник (EPSG:3857)
	GetWaysInBound(ctx context.Context, bound orb.Bound) ([]*domain.Way, error)
}
