package routing

import (
	"container/heap"
	"math"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/paulmach/orb/planar"
)

// ShortestPath finds a minimum-cost path from start to end with a
// bidirectional A* search using average potentials. The heuristic is the
// projected straight-line distance, which is a lower bound because every
// cost is at least the edge length.
//
// The result has one point per visited node; each carries the way and length
// of the edge it departs on, the final point carries its arriving way and a
// zero length. An empty slice means no path (or an unknown node). When start
// equals end the single node is returned.
func (g *Graph) ShortestPath(start, end int64) []domain.PathPoint {
	if !g.HasNode(start) || !g.HasNode(end) {
		return []domain.PathPoint{}
	}
	if start == end {
		p := g.coord[start]
		return []domain.PathPoint{{NodeID: start, X: p[0], Y: p[1]}}
	}

	s, t := g.coord[start], g.coord[end]
	potential := func(v int64) float64 {
		p := g.coord[v]
		return (planar.Distance(p, t) - planar.Distance(p, s)) / 2
	}

	fwd := newSearchSide(start)
	bwd := newSearchSide(end)

	best := math.Inf(1)
	var meet int64
	found := false

	for {
		fk, fok := fwd.minKey()
		bk, bok := bwd.minKey()
		if !fok || !bok || fk+bk >= best {
			break
		}

		if fk <= bk {
			if v, d, ok := fwd.expand(g.out, bwd, func(u, v int64) float64 { return potential(v) - potential(u) }); ok && d < best {
				best, meet, found = d, v, true
			}
		} else {
			if v, d, ok := bwd.expand(g.in, fwd, func(u, v int64) float64 { return potential(u) - potential(v) }); ok && d < best {
				best, meet, found = d, v, true
			}
		}
	}

	if !found {
		return []domain.PathPoint{}
	}
	return g.buildPath(fwd, bwd, start, end, meet)
}

func (g *Graph) buildPath(fwd, bwd *searchSide, start, end, meet int64) []domain.PathPoint {
	// forward half, collected meet -> start then reversed
	var head []step
	for v := meet; v != start; {
		st := fwd.parent[v]
		head = append(head, st)
		v = st.node
	}
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}

	// backward half, parents already point towards end
	tail := make([]step, 0)
	for v := meet; v != end; {
		st := bwd.parent[v]
		tail = append(tail, step{node: v, arc: arc{to: st.node, cost: st.arc.cost, length: st.arc.length, wayID: st.arc.wayID}})
		v = st.node
	}

	steps := append(head, tail...)
	points := make([]domain.PathPoint, 0, len(steps)+1)
	for _, st := range steps {
		p := g.coord[st.node]
		points = append(points, domain.PathPoint{
			NodeID: st.node,
			WayID:  st.arc.wayID,
			X:      p[0],
			Y:      p[1],
			Length: st.arc.length,
		})
	}

	last := g.coord[end]
	points = append(points, domain.PathPoint{
		NodeID: end,
		WayID:  steps[len(steps)-1].arc.wayID,
		X:      last[0],
		Y:      last[1],
	})
	return points
}

// step records how a node was reached: from node, over arc.
type step struct {
	node int64
	arc  arc
}

type searchSide struct {
	dist    map[int64]float64
	parent  map[int64]step
	settled map[int64]bool
	pq      *priorityQueue
}

func newSearchSide(origin int64) *searchSide {
	s := &searchSide{
		dist:    map[int64]float64{origin: 0},
		parent:  make(map[int64]step),
		settled: make(map[int64]bool),
		pq:      &priorityQueue{},
	}
	heap.Init(s.pq)
	heap.Push(s.pq, &pqItem{node: origin, priority: 0})
	return s
}

// minKey drops stale queue entries and returns the smallest live key.
func (s *searchSide) minKey() (float64, bool) {
	for s.pq.Len() > 0 {
		top := (*s.pq)[0]
		if s.settled[top.node] || top.priority > s.dist[top.node] {
			heap.Pop(s.pq)
			continue
		}
		return top.priority, true
	}
	return 0, false
}

// expand settles the closest node and relaxes its arcs with reduced costs.
// It returns the best meeting point found while relaxing, if any.
func (s *searchSide) expand(adj map[int64][]arc, other *searchSide, shift func(u, v int64) float64) (int64, float64, bool) {
	item := heap.Pop(s.pq).(*pqItem)
	u := item.node
	s.settled[u] = true

	var (
		meet  int64
		best  = math.Inf(1)
		found bool
	)

	if d, ok := other.dist[u]; ok {
		meet, best, found = u, s.dist[u]+d, true
	}

	for _, a := range adj[u] {
		if s.settled[a.to] {
			continue
		}
		w := math.Max(a.cost+shift(u, a.to), 0)
		nd := s.dist[u] + w

		if cur, ok := s.dist[a.to]; !ok || nd < cur {
			s.dist[a.to] = nd
			s.parent[a.to] = step{node: u, arc: a}
			heap.Push(s.pq, &pqItem{node: a.to, priority: nd})
		}

		if d, ok := other.dist[a.to]; ok && s.dist[a.to]+d < best {
			meet, best, found = a.to, s.dist[a.to]+d, true
		}
	}

	return meet, best, found
}

type pqItem struct {
	node     int64
	priority float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
