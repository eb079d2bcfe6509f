package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/domain/repository"
)

const statsKey = "cycleroute:stats:network"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(client *redis.Client, logger *zap.Logger) repository.CacheRepository {
	return &cacheRepository{
		client: client,
		logger: logger,
	}
}

// GetStats читает статистику сети; отсутствие ключа не является ошибкой
func (r *cacheRepository) GetStats(ctx context.Context) (*domain.NetworkStats, error) {
	data, err := r.client.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get stats from cache", zap.String("key", statsKey), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	var stats domain.NetworkStats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", statsKey))
	return &stats, nil
}

func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.NetworkStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	if err := r.client.Set(ctx, statsKey, data, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", statsKey), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", statsKey), zap.Duration("ttl", ttl))
	return nil
}
