package routing

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/pkg/geometry"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeWithPoints(n int) domain.Route {
	r := domain.EmptyRoute(0, 0)
	for i := 0; i < n; i++ {
		r.Geom = append(r.Geom, orb.Point{float64(i), 0})
	}
	return r
}

func TestSelectLongest(t *testing.T) {
	candidates := []domain.Route{routeWithPoints(3), routeWithPoints(7), routeWithPoints(5), routeWithPoints(2)}

	assert.Len(t, SelectLongest(candidates).Geom, 7)
}

func TestSelectLongest_TieKeepsLater(t *testing.T) {
	a := routeWithPoints(4)
	a.Source = 1
	b := routeWithPoints(4)
	b.Source = 2

	assert.Equal(t, int64(2), SelectLongest([]domain.Route{a, b}).Source)
	assert.Empty(t, SelectLongest(nil).Geom)
}

func TestResolveMerge(t *testing.T) {
	anchor := &domain.Way{WayID: 1, Source: 10, Target: 11}
	group := domain.Route{WayIDs: []int64{2}, Source: 20, Target: 21}

	lengths := map[[2]int64]int{
		{10, 21}: 3,
		{11, 20}: 7,
		{10, 20}: 5,
		{11, 21}: 2,
	}

	var mu sync.Mutex
	var calls [][2]int64
	route := func(_ context.Context, source, target int64) (domain.Route, error) {
		mu.Lock()
		calls = append(calls, [2]int64{source, target})
		mu.Unlock()
		r := routeWithPoints(lengths[[2]int64{source, target}])
		r.Source, r.Target = source, target
		return r, nil
	}

	merged, err := ResolveMerge(context.Background(), anchor, group, route)

	require.NoError(t, err)
	assert.Len(t, merged.Geom, 7)
	assert.Equal(t, int64(11), merged.Source)
	assert.Equal(t, int64(20), merged.Target)
	assert.ElementsMatch(t, [][2]int64{{10, 21}, {11, 20}, {10, 20}, {11, 21}}, calls)
}

func TestResolveMerge_MissingEndpointLoses(t *testing.T) {
	anchor := &domain.Way{WayID: 1, Source: 10, Target: 11}
	group := domain.EmptyRoute(0, 0)

	called := false
	route := func(_ context.Context, source, target int64) (domain.Route, error) {
		called = true
		return routeWithPoints(9), nil
	}

	merged, err := ResolveMerge(context.Background(), anchor, group, route)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Empty(t, merged.Geom)
}

func TestResolveMerge_PropagatesError(t *testing.T) {
	anchor := &domain.Way{WayID: 1, Source: 10, Target: 11}
	group := domain.Route{Source: 20, Target: 21}
	boom := errors.New("boom")

	_, err := ResolveMerge(context.Background(), anchor, group, func(context.Context, int64, int64) (domain.Route, error) {
		return domain.Route{}, boom
	})

	assert.ErrorIs(t, err, boom)
}

func projectedLine(points ...orb.Point) []orb.Point {
	out := make([]orb.Point, 0, len(points))
	for _, p := range points {
		out = append(out, geometry.ToProjected(p))
	}
	return out
}

func TestGroupRoute(t *testing.T) {
	ways := []*domain.Way{
		{WayID: 2, Source: 20, Target: 21, Geom: projectedLine(orb.Point{-73.5, 45.5}, orb.Point{-73.49, 45.5})},
		nil,
		{WayID: 3, Source: 21, Target: 22, Geom: projectedLine(orb.Point{-73.49, 45.5}, orb.Point{-73.48, 45.5})},
	}

	r := GroupRoute(ways)

	assert.Equal(t, []int64{2, 3}, r.WayIDs)
	assert.Equal(t, int64(20), r.Source)
	assert.Equal(t, int64(22), r.Target)
	require.Len(t, r.Geom, 4)
	assert.InDelta(t, -73.48, r.Geom[3][0], 1e-9)
}

func TestLengthRouter(t *testing.T) {
	p := func(lng float64) orb.Point { return orb.Point{lng, 45.5} }
	ways := []*domain.Way{
		{WayID: 1, Source: 1, Target: 2, Geom: projectedLine(p(-73.50), p(-73.49))},
		{WayID: 2, Source: 2, Target: 3, Geom: projectedLine(p(-73.49), p(-73.48))},
		// longer parallel way between 1 and 2 is ignored
		{WayID: 3, Source: 1, Target: 2, Geom: projectedLine(p(-73.50), orb.Point{-73.495, 45.51}, p(-73.49))},
		{WayID: 4, Source: 5, Target: 5, Geom: projectedLine(p(-73.0), p(-73.01))},
		{WayID: 5, Source: 8, Target: 9, Geom: projectedLine(p(-72.0), p(-72.01))},
	}
	lr := NewLengthRouter(ways)

	r := lr.Route(3, 1)
	assert.Equal(t, []int64{2, 1}, r.WayIDs)
	assert.Len(t, r.Geom, 4)
	assert.Equal(t, int64(3), r.Source)
	assert.Equal(t, int64(1), r.Target)

	assert.Empty(t, lr.Route(1, 9).Geom)
	assert.Empty(t, lr.Route(1, 1).Geom)
	assert.Empty(t, lr.Route(1, 404).Geom)
	assert.Empty(t, lr.Route(5, 5).WayIDs)
}
