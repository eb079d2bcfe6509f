package repository

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/cycleroute-microservice/internal/domain"
)

// ScoreRepository - доступ к отчётам о пригодности участков
type ScoreRepository interface {
	// ListByWayIDs возвращает отчёты, затрагивающие хотя бы один участок, новые первыми
	ListByWayIDs(ctx context.Context, wayIDs []int64, limit int) ([]*domain.CyclabilityScore, error)

	// ListRecentInBound возвращает последние отчёты по участкам в прямоугольнике (EPSG:3857)
	ListRecentInBound(ctx context.Context, bound orb.Bound, limit int) ([]*domain.CyclabilityScore, error)

	// Insert сохраняет новый отчёт и возвращает его идентификатор
	Insert(ctx context.Context, score *domain.CyclabilityScore) (int32, error)
}
