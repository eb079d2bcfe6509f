package usecase

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cycleroute-microservice/internal/config"
	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/domain/repository"
	"github.com/cycleroute-microservice/internal/pkg/errors"
	"github.com/cycleroute-microservice/internal/pkg/geometry"
	"github.com/cycleroute-microservice/internal/pkg/utils"
	"github.com/cycleroute-microservice/internal/routing"
	"github.com/cycleroute-microservice/internal/usecase/dto"
)

const unknownSegment = "Unknown segment"

// SegmentUseCase - выбор участка и его расширение до группы участков
type SegmentUseCase struct {
	wayRepo   repository.WayRepository
	scoreRepo repository.ScoreRepository
	cfg       config.RoutingConfig
	logger    *zap.Logger
}

// NewSegmentUseCase - создание нового SegmentUseCase
func NewSegmentUseCase(
	wayRepo repository.WayRepository,
	scoreRepo repository.ScoreRepository,
	cfg config.RoutingConfig,
	logger *zap.Logger,
) *SegmentUseCase {
	return &SegmentUseCase{
		wayRepo:   wayRepo,
		scoreRepo: scoreRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// Select - участок по идентификатору вместе с текущей (последней) оценкой
func (uc *SegmentUseCase) Select(ctx context.Context, wayID int64) (*dto.SegmentResponse, error) {
	if wayID <= 0 {
		return nil, errors.ErrInvalidWayIDs
	}

	way, err := uc.wayRepo.GetWay(ctx, wayID)
	if err != nil {
		if stderrors.Is(err, errors.ErrWayNotFound) {
			uc.logger.Warn("Unknown segment", zap.Int64("way_id", wayID))
			return &dto.SegmentResponse{
				WayID:    wayID,
				Geometry: json.RawMessage(geometry.EmptyJSON),
				Error:    unknownSegment,
			}, nil
		}
		uc.logger.Error("Failed to get way", zap.Int64("way_id", wayID), zap.Error(err))
		return nil, err
	}

	resp := &dto.SegmentResponse{
		WayID:    way.WayID,
		Name:     way.DisplayName(),
		Geometry: uc.encode(geometry.LineToGeographic(way.Geom)),
		Source:   way.Source,
		Target:   way.Target,
	}

	reports, err := uc.scoreRepo.ListByWayIDs(ctx, []int64{wayID}, 0)
	if err != nil {
		uc.logger.Warn("Failed to load segment score", zap.Int64("way_id", wayID), zap.Error(err))
		return resp, nil
	}
	resp.Score = dto.NewScoreView(routing.LatestScores(reports)[wayID])

	return resp, nil
}

// Merge - расширение участка anchorWayID до участков, перечисленных в тексте.
// Перебираются четыре комбинации концов, выбирается результат с наибольшим
// числом точек.
func (uc *SegmentUseCase) Merge(ctx context.Context, req dto.MergeRequest) (*dto.MergeResponse, error) {
	targetIDs := utils.ParseWayIDs(req.WayIDs)

	anchor, targets, err := uc.loadWays(ctx, req.AnchorWayID, targetIDs)
	if err != nil {
		return nil, err
	}
	if anchor == nil {
		return &dto.MergeResponse{
			WayIDs:   []int64{},
			Geometry: json.RawMessage(geometry.EmptyJSON),
			Error:    unknownSegment,
		}, nil
	}

	// без целевых участков возвращаем сам участок
	if len(targets) == 0 {
		return uc.toResponse(routing.GroupRoute([]*domain.Way{anchor}), ""), nil
	}

	group := routing.GroupRoute(targets)
	bound := uc.mergeBound(anchor, targets)

	ways, err := uc.wayRepo.GetWaysInBound(ctx, bound)
	if err != nil {
		uc.logger.Error("Failed to load ways for merge", zap.Error(err))
		return nil, err
	}
	router := routing.NewLengthRouter(ways)

	merged, err := routing.ResolveMerge(ctx, anchor, group, func(_ context.Context, source, target int64) (domain.Route, error) {
		return router.Route(source, target), nil
	})
	if err != nil {
		return nil, err
	}

	msg := ""
	if len(merged.Geom) == 0 {
		msg = fmt.Sprintf("No route joins segment %d to segments %v", anchor.WayID, group.WayIDs)
	}
	return uc.toResponse(merged, msg), nil
}

// loadWays загружает опорный и целевые участки параллельно.
// Целевой участок, который не удалось загрузить, пропускается.
func (uc *SegmentUseCase) loadWays(ctx context.Context, anchorID int64, targetIDs []int64) (*domain.Way, []*domain.Way, error) {
	var (
		anchor  *domain.Way
		targets = make([]*domain.Way, len(targetIDs))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := uc.wayRepo.GetWay(gctx, anchorID)
		if err != nil {
			uc.logger.Warn("Failed to load anchor way", zap.Int64("way_id", anchorID), zap.Error(err))
			return gctx.Err()
		}
		anchor = w
		return nil
	})
	for i, id := range targetIDs {
		g.Go(func() error {
			w, err := uc.wayRepo.GetWay(gctx, id)
			if err != nil {
				uc.logger.Warn("Skipping unknown target way", zap.Int64("way_id", id), zap.Error(err))
				return gctx.Err()
			}
			targets[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	resolved := make([]*domain.Way, 0, len(targets))
	for _, w := range targets {
		if w != nil {
			resolved = append(resolved, w)
		}
	}
	return anchor, resolved, nil
}

// mergeBound - прямоугольник вокруг всех участков с отступом MergeBBoxMargin
func (uc *SegmentUseCase) mergeBound(anchor *domain.Way, targets []*domain.Way) orb.Bound {
	var geo orb.Bound
	first := true
	for _, w := range append([]*domain.Way{anchor}, targets...) {
		for _, p := range geometry.LineToGeographic(w.Geom) {
			if first {
				geo = orb.Bound{Min: p, Max: p}
				first = false
				continue
			}
			geo = geo.Extend(p)
		}
	}
	return geometry.ProjectedBound(geo.Min, geo.Max, uc.cfg.MergeBBoxMargin)
}

func (uc *SegmentUseCase) toResponse(r domain.Route, msg string) *dto.MergeResponse {
	return &dto.MergeResponse{
		WayIDs:   r.WayIDs,
		Geometry: uc.encode(r.Geom),
		Source:   r.Source,
		Target:   r.Target,
		Error:    msg,
	}
}

func (uc *SegmentUseCase) encode(points []orb.Point) json.RawMessage {
	text, err := geometry.Encode(points)
	if err != nil {
		uc.logger.Warn("Failed to encode segment geometry", zap.Error(err))
	}
	return json.RawMessage(text)
}
