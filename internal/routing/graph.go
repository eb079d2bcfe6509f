package routing

import (
	"github.com/cycleroute-microservice/internal/domain"
	"github.com/paulmach/orb"
)

type arc struct {
	to     int64
	cost   float64
	length float64
	wayID  int64
}

// Graph is an adjacency view over a bounded set of costed edges.
// Every edge contributes a forward arc (source to target, Cost) and a
// reverse arc (target to source, ReverseCost). Coordinates are projected.
type Graph struct {
	out   map[int64][]arc
	in    map[int64][]arc
	coord map[int64]orb.Point
}

// NewGraph builds the graph. Costs must already be attached (see ApplyCosts).
// Self loops never shorten a path and are skipped.
func NewGraph(edges []*domain.Edge) *Graph {
	g := &Graph{
		out:   make(map[int64][]arc),
		in:    make(map[int64][]arc),
		coord: make(map[int64]orb.Point),
	}

	for _, e := range edges {
		if e == nil {
			continue
		}
		g.coord[e.Source] = orb.Point{e.X1, e.Y1}
		g.coord[e.Target] = orb.Point{e.X2, e.Y2}

		if e.Source == e.Target {
			continue
		}
		g.addArc(e.Source, e.Target, e.Cost, e.Length, e.WayID)
		g.addArc(e.Target, e.Source, e.ReverseCost, e.Length, e.WayID)
	}

	return g
}

func (g *Graph) addArc(from, to int64, cost, length float64, wayID int64) {
	g.out[from] = append(g.out[from], arc{to: to, cost: cost, length: length, wayID: wayID})
	g.in[to] = append(g.in[to], arc{to: from, cost: cost, length: length, wayID: wayID})
}

// HasNode reports whether the node is part of the graph.
func (g *Graph) HasNode(id int64) bool {
	_, ok := g.coord[id]
	return ok
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int {
	return len(g.coord)
}
