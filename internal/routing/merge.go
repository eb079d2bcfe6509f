package routing

import (
	"context"
	"math"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/pkg/geometry"
	"github.com/paulmach/orb"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// RouteFunc finds a route between two node ids. Missing endpoints (0) must
// yield an empty route rather than an error.
type RouteFunc func(ctx context.Context, source, target int64) (domain.Route, error)

// CandidatePairs lists the four directional combinations tried when merging an
// anchor way with a target group, in evaluation order.
func CandidatePairs(anchor *domain.Way, group domain.Route) [4][2]int64 {
	return [4][2]int64{
		{anchor.Source, group.Target},
		{anchor.Target, group.Source},
		{anchor.Source, group.Source},
		{anchor.Target, group.Target},
	}
}

// ResolveMerge computes the four candidates concurrently and keeps the one
// with the most geometry points. Point count is a path-complexity proxy, not
// a true length; it is kept deliberately.
func ResolveMerge(ctx context.Context, anchor *domain.Way, group domain.Route, route RouteFunc) (domain.Route, error) {
	pairs := CandidatePairs(anchor, group)
	candidates := make([]domain.Route, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	for i, pair := range pairs {
		g.Go(func() error {
			if pair[0] == 0 || pair[1] == 0 {
				candidates[i] = domain.EmptyRoute(pair[0], pair[1])
				return nil
			}
			r, err := route(gctx, pair[0], pair[1])
			if err != nil {
				return err
			}
			candidates[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Route{}, err
	}

	return SelectLongest(candidates), nil
}

// SelectLongest returns the candidate with the greatest number of geometry
// points. On ties the later candidate wins.
func SelectLongest(candidates []domain.Route) domain.Route {
	if len(candidates) == 0 {
		return domain.EmptyRoute(0, 0)
	}
	best := 0
	for i := 1; i < len(candidates); i++ {
		if len(candidates[i].Geom) >= len(candidates[best].Geom) {
			best = i
		}
	}
	return candidates[best]
}

// GroupRoute folds the resolved target ways into one route: ids and geometry
// concatenated, source of the first way and target of the last.
// Way geometry is expected in projected units; the result is geographic.
func GroupRoute(ways []*domain.Way) domain.Route {
	r := domain.EmptyRoute(0, 0)
	for _, w := range ways {
		if w == nil {
			continue
		}
		r.WayIDs = append(r.WayIDs, w.WayID)
		r.Geom = append(r.Geom, geometry.LineToGeographic(w.Geom)...)
		if r.Source == 0 {
			r.Source = w.Source
		}
		r.Target = w.Target
	}
	return r
}

// LengthRouter finds routes over a set of ways weighted by physical length
// only, ignoring cost. Ways are traversable in both directions.
type LengthRouter struct {
	g    *simple.WeightedUndirectedGraph
	ways map[[2]int64]*domain.Way
}

// NewLengthRouter indexes the ways. Between two nodes only the shortest way is kept.
func NewLengthRouter(ways []*domain.Way) *LengthRouter {
	lr := &LengthRouter{
		g:    simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
		ways: make(map[[2]int64]*domain.Way),
	}

	for _, w := range ways {
		if w == nil || w.Source == 0 || w.Target == 0 || w.Source == w.Target {
			continue
		}
		length := w.Length
		if length <= 0 {
			length = geometry.Length(w.Geom)
		}

		if e := lr.g.WeightedEdge(w.Source, w.Target); e != nil && e.Weight() <= length {
			continue
		}
		lr.g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(w.Source), T: simple.Node(w.Target), W: length})
		lr.ways[pairKey(w.Source, w.Target)] = w
	}

	return lr
}

// Route returns the length-shortest route between two nodes, or an empty
// route when either node is unknown or unreachable.
func (lr *LengthRouter) Route(source, target int64) domain.Route {
	r := domain.EmptyRoute(source, target)
	if source == target || lr.g.Node(source) == nil || lr.g.Node(target) == nil {
		return r
	}

	shortest := path.DijkstraFrom(simple.Node(source), lr.g)
	nodes, _ := shortest.To(target)
	if len(nodes) < 2 {
		return r
	}

	var geom []orb.Point
	for i := 0; i+1 < len(nodes); i++ {
		w := lr.ways[pairKey(nodes[i].ID(), nodes[i+1].ID())]
		if w == nil {
			continue
		}
		r.WayIDs = append(r.WayIDs, w.WayID)
		geom = append(geom, w.Geom...)
	}
	r.Geom = append(r.Geom, geometry.LineToGeographic(geom)...)
	return r
}

func pairKey(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}
	return [2]int64{a, b}
}
