package repository

import (
	"context"

	"github.com/cycleroute-microservice/internal/domain"
)

// StatsRepository интерфейс для работы со статистикой
type StatsRepository interface {
	// GetStatistics возвращает агрегированную статистику по сети и отчётам
	GetStatistics(ctx context.Context) (*domain.NetworkStats, error)
}
