package repository

import (
	"context"
	"time"

	"github.com/cycleroute-microservice/internal/domain"
)

// CacheRepository хранит производные данные, которые дорого пересчитывать
type CacheRepository interface {
	// GetStats возвращает nil, nil при промахе
	GetStats(ctx context.Context) (*domain.NetworkStats, error)

	// SetStats сохраняет статистику с TTL
	SetStats(ctx context.Context, stats *domain.NetworkStats, ttl time.Duration) error
}
