package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/domain/repository"
)

const statsTTL = time.Minute

// StatsUseCase обрабатывает бизнес-логику для статистики сети
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// GetStatistics возвращает статистику из кеша, при промахе считает по БД
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.NetworkStats, error) {
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	} else if cached != nil {
		uc.logger.Debug("Statistics fetched from cache")
		return cached, nil
	}

	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("get statistics from db: %w", err)
	}

	uc.store(ctx, stats)
	return stats, nil
}

// RefreshStatistics пересчитывает статистику в обход кеша и перезаписывает его
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.NetworkStats, error) {
	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh statistics: %w", err)
	}

	uc.store(ctx, stats)

	uc.logger.Info("Statistics refreshed",
		zap.Int("ways", stats.Network.Ways),
		zap.Int("scores", stats.Scores.Total),
	)
	return stats, nil
}

// ошибка кеша не мешает отдать уже посчитанные данные
func (uc *StatsUseCase) store(ctx context.Context, stats *domain.NetworkStats) {
	if err := uc.cacheRepo.SetStats(ctx, stats, statsTTL); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
	}
}
