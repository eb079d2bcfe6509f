package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/domain/repository"
	"github.com/cycleroute-microservice/internal/pkg/errors"
	"github.com/cycleroute-microservice/internal/pkg/geometry"
	"github.com/cycleroute-microservice/internal/pkg/utils"
	"github.com/cycleroute-microservice/internal/routing"
	"github.com/cycleroute-microservice/internal/usecase/dto"
)

const (
	historyLimit = 100
	maxWayIDs    = 500
)

// ScoreUseCase - чтение оценок участков и приём новых отчётов
type ScoreUseCase struct {
	scoreRepo  repository.ScoreRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
	now        func() time.Time
}

// NewScoreUseCase - создание нового ScoreUseCase
func NewScoreUseCase(
	scoreRepo repository.ScoreRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *ScoreUseCase {
	return &ScoreUseCase{
		scoreRepo:  scoreRepo,
		streamRepo: streamRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// Current - текущая (последняя по времени) оценка каждого участка
func (uc *ScoreUseCase) Current(ctx context.Context, wayIDs []int64) (*dto.CurrentScoresResponse, error) {
	if err := checkWayIDs(wayIDs); err != nil {
		return nil, err
	}

	reports, err := uc.scoreRepo.ListByWayIDs(ctx, wayIDs, 0)
	if err != nil {
		uc.logger.Error("Failed to list scores", zap.Int("ways", len(wayIDs)), zap.Error(err))
		return nil, err
	}

	latest := routing.LatestScores(reports)
	scores := make([]dto.WayScore, 0, len(wayIDs))
	for _, id := range wayIDs {
		scores = append(scores, dto.WayScore{WayID: id, Score: dto.NewScoreView(latest[id])})
	}

	return &dto.CurrentScoresResponse{Scores: scores}, nil
}

// History - последние отчёты по участкам, новые первыми
func (uc *ScoreUseCase) History(ctx context.Context, wayIDs []int64) (*dto.ScoreHistoryResponse, error) {
	if err := checkWayIDs(wayIDs); err != nil {
		return nil, err
	}

	reports, err := uc.scoreRepo.ListByWayIDs(ctx, wayIDs, historyLimit)
	if err != nil {
		uc.logger.Error("Failed to list score history", zap.Error(err))
		return nil, err
	}

	return toHistory(reports), nil
}

// Recent - последние отчёты по участкам в видимой области карты
func (uc *ScoreUseCase) Recent(ctx context.Context, req dto.RecentScoresRequest) (*dto.ScoreHistoryResponse, error) {
	if !utils.ValidateBound(req.MinLng, req.MinLat, req.MaxLng, req.MaxLat) {
		return nil, errors.ErrInvalidCoordinates
	}

	bound := geometry.ProjectedBound(orb.Point{req.MinLng, req.MinLat}, orb.Point{req.MaxLng, req.MaxLat}, 0)
	reports, err := uc.scoreRepo.ListRecentInBound(ctx, bound, historyLimit)
	if err != nil {
		uc.logger.Error("Failed to list recent scores", zap.Error(err))
		return nil, err
	}

	return toHistory(reports), nil
}

// Aggregate - средняя оценка участка, которую использует модель стоимости
func (uc *ScoreUseCase) Aggregate(ctx context.Context, wayID int64) (*dto.AggregateScoreResponse, error) {
	if wayID <= 0 {
		return nil, errors.ErrInvalidWayIDs
	}

	reports, err := uc.scoreRepo.ListByWayIDs(ctx, []int64{wayID}, 0)
	if err != nil {
		uc.logger.Error("Failed to aggregate score", zap.Int64("way_id", wayID), zap.Error(err))
		return nil, err
	}

	count := 0
	for _, r := range reports {
		if r.IsRated() && r.Covers(wayID) {
			count++
		}
	}

	avg, rated := routing.AverageScores(reports)[wayID]
	if !rated {
		avg = domain.Unrated
	}

	return &dto.AggregateScoreResponse{
		WayID:       wayID,
		Score:       avg,
		Rated:       rated,
		ReportCount: count,
	}, nil
}

// Submit - приём нового отчёта. Отчёт публикуется в стрим и сохраняется воркером.
func (uc *ScoreUseCase) Submit(ctx context.Context, req dto.SubmitScoreRequest) (*dto.SubmitScoreResponse, error) {
	if !domain.ValidScore(req.Score) {
		return nil, errors.ErrInvalidScore
	}
	if err := checkWayIDs(req.WayIDs); err != nil {
		return nil, err
	}

	event := domain.ScoreSubmittedEvent{
		EventID:            uuid.New(),
		Score:              req.Score,
		Comment:            req.Comment,
		WayIDs:             req.WayIDs,
		PhotoPath:          req.PhotoPath,
		PhotoPathThumbnail: req.PhotoPathThumbnail,
		SubmittedAt:        uc.now().UTC(),
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamScoreSubmitted, event); err != nil {
		uc.logger.Error("Failed to publish score", zap.String("event_id", event.EventID.String()), zap.Error(err))
		return nil, errors.ErrStreamError.Wrap(err)
	}

	uc.logger.Info("Score submitted",
		zap.String("event_id", event.EventID.String()),
		zap.Float64("score", event.Score),
		zap.Int("ways", len(event.WayIDs)),
	)

	return &dto.SubmitScoreResponse{
		EventID: event.EventID.String(),
		Status:  "accepted",
	}, nil
}

func checkWayIDs(ids []int64) error {
	if len(ids) == 0 || len(ids) > maxWayIDs {
		return errors.ErrInvalidWayIDs
	}
	for _, id := range ids {
		if id <= 0 {
			return errors.ErrInvalidWayIDs
		}
	}
	return nil
}

func toHistory(reports []*domain.CyclabilityScore) *dto.ScoreHistoryResponse {
	views := make([]dto.ScoreView, 0, len(reports))
	for _, r := range reports {
		views = append(views, *dto.NewScoreView(r))
	}
	return &dto.ScoreHistoryResponse{
		Reports: views,
		Total:   len(views),
	}
}
