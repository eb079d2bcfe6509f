package handler

import (
	"context"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/usecase/dto"
)

// RouteService - построение маршрута между двумя точками
type RouteService interface {
	Route(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error)
}

// SegmentService - выбор участка и его расширение до группы
type SegmentService interface {
	Select(ctx context.Context, wayID int64) (*dto.SegmentResponse, error)
	Merge(ctx context.Context, req dto.MergeRequest) (*dto.MergeResponse, error)
}

// ScoreService - чтение и приём оценок
type ScoreService interface {
	Current(ctx context.Context, wayIDs []int64) (*dto.CurrentScoresResponse, error)
	History(ctx context.Context, wayIDs []int64) (*dto.ScoreHistoryResponse, error)
	Recent(ctx context.Context, req dto.RecentScoresRequest) (*dto.ScoreHistoryResponse, error)
	Aggregate(ctx context.Context, wayID int64) (*dto.AggregateScoreResponse, error)
	Submit(ctx context.Context, req dto.SubmitScoreRequest) (*dto.SubmitScoreResponse, error)
}

// StatsService - сводная статистика сети
type StatsService interface {
	GetStatistics(ctx context.Context) (*domain.NetworkStats, error)
	RefreshStatistics(ctx context.Context) (*domain.NetworkStats, error)
}
