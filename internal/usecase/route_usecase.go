package usecase

import (
	"context"
	"encoding/json"
	stderrors "errors"

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

const formatPolyline = "polyline"

// RouteUseCase - построение велосипедного маршрута между двумя точками
type RouteUseCase struct {
	graphRepo repository.GraphRepository
	scoreRepo repository.ScoreRepository
	cfg       config.RoutingConfig
	logger    *zap.Logger
}

// NewRouteUseCase - создание нового RouteUseCase
func NewRouteUseCase(
	graphRepo repository.GraphRepository,
	scoreRepo repository.ScoreRepository,
	cfg config.RoutingConfig,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		graphRepo: graphRepo,
		scoreRepo: scoreRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// Route - маршрут от точки старта до точки финиша.
// Ошибки поиска не превращаются в ошибки запроса: ответ всегда можно отрисовать,
// причина описывается в поле Error.
func (uc *RouteUseCase) Route(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	if !utils.ValidateCoordinates(req.StartLat, req.StartLng) || !utils.ValidateCoordinates(req.EndLat, req.EndLng) {
		return nil, errors.ErrInvalidCoordinates
	}

	start := orb.Point{req.StartLng, req.StartLat}
	end := orb.Point{req.EndLng, req.EndLat}

	startNode, endNode, err := uc.locatePair(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var path []domain.PathPoint
	switch {
	case startNode.IsEmpty() || endNode.IsEmpty():
		path = nil
	case startNode.NodeID == endNode.NodeID:
		path = []domain.PathPoint{{NodeID: startNode.NodeID, WayID: startNode.WayID, X: startNode.X, Y: startNode.Y}}
	default:
		path, err = uc.search(ctx, startNode, endNode)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			uc.logger.Error("Route search failed", zap.Error(err))
			return uc.toResponse(routing.Assemble(start, end, nil), req.Format), nil
		}
	}

	assembled := routing.Assemble(start, end, path)
	if assembled.Error != "" {
		uc.logger.Info("No route found",
			zap.Int64("start_node", startNode.NodeID),
			zap.Int64("end_node", endNode.NodeID),
			zap.Float64("crow_km", utils.CrowDistanceKm(req.StartLng, req.StartLat, req.EndLng, req.EndLat)),
		)
	}

	return uc.toResponse(assembled, req.Format), nil
}

// locatePair находит вершины старта и финиша параллельно.
// Вершина, которую не удалось найти, заменяется пустой.
func (uc *RouteUseCase) locatePair(ctx context.Context, start, end orb.Point) (domain.Node, domain.Node, error) {
	var startNode, endNode domain.Node

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		startNode = uc.locate(gctx, start, "start")
		return gctx.Err()
	})
	g.Go(func() error {
		endNode = uc.locate(gctx, end, "end")
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return domain.Node{}, domain.Node{}, err
	}

	return startNode, endNode, nil
}

func (uc *RouteUseCase) locate(ctx context.Context, p orb.Point, role string) domain.Node {
	node, err := uc.graphRepo.FindClosestNode(ctx, p.Lon(), p.Lat(), uc.cfg.NodeSearchRadius)
	if err != nil {
		if stderrors.Is(err, errors.ErrNodeNotFound) {
			uc.logger.Warn("No node within search radius",
				zap.String("role", role),
				zap.Float64("lng", p.Lon()),
				zap.Float64("lat", p.Lat()),
			)
		} else {
			uc.logger.Error("Failed to locate node", zap.String("role", role), zap.Error(err))
		}
		return domain.EmptyNode()
	}
	return *node
}

// search ищет путь в ограниченном прямоугольнике и расширяет его,
// если путь не найден.
func (uc *RouteUseCase) search(ctx context.Context, startNode, endNode domain.Node) ([]domain.PathPoint, error) {
	margin := uc.cfg.BBoxMargin

	for attempt := 0; attempt <= uc.cfg.BBoxMaxRetries; attempt++ {
		bound := geometry.ProjectedBound(startNode.Point(), endNode.Point(), margin)

		graph, err := uc.buildGraph(ctx, bound)
		if err != nil {
			return nil, err
		}

		path := graph.ShortestPath(startNode.NodeID, endNode.NodeID)
		if len(path) > 0 {
			return path, nil
		}

		uc.logger.Debug("No path within bounding box",
			zap.Int("attempt", attempt),
			zap.Float64("margin", margin),
			zap.Int("nodes", graph.NodeCount()),
		)
		margin *= uc.cfg.BBoxRetryFactor
	}

	return nil, nil
}

// buildGraph загружает дуги и оценки в прямоугольнике и рассчитывает стоимости
func (uc *RouteUseCase) buildGraph(ctx context.Context, bound orb.Bound) (*routing.Graph, error) {
	edges, err := uc.graphRepo.GetEdgesInBound(ctx, bound)
	if err != nil {
		return nil, err
	}

	scores := map[int64]float64{}
	if wayIDs := edgeWayIDs(edges); len(wayIDs) > 0 {
		reports, err := uc.scoreRepo.ListByWayIDs(ctx, wayIDs, 0)
		if err != nil {
			return nil, err
		}
		scores = routing.AverageScores(reports)
	}

	routing.ApplyCosts(edges, scores)
	return routing.NewGraph(edges), nil
}

func (uc *RouteUseCase) toResponse(r domain.AssembledRoute, format string) *dto.RouteResponse {
	resp := &dto.RouteResponse{
		Geometry:      uc.encode(r.Geometry),
		TotalLengthKm: r.TotalLengthKm,
		WayIDs:        r.WayIDs,
		Error:         r.Error,
	}
	if format == formatPolyline {
		resp.Polyline = geometry.EncodePolyline(r.Geometry)
	}
	return resp
}

func (uc *RouteUseCase) encode(points []orb.Point) json.RawMessage {
	text, err := geometry.Encode(points)
	if err != nil {
		uc.logger.Warn("Failed to encode route geometry", zap.Error(err))
	}
	return json.RawMessage(text)
}

func edgeWayIDs(edges []*domain.Edge) []int64 {
	seen := make(map[int64]struct{}, len(edges))
	ids := make([]int64, 0)
	for _, e := range edges {
		if _, ok := seen[e.WayID]; ok {
			continue
		}
		seen[e.WayID] = struct{}{}
		ids = append(ids, e.WayID)
	}
	return ids
}
