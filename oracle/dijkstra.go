// Package oracle - budgeted Dijkstra implementation of core.DistanceOracle.
package oracle

import (
	"container/heap"
	"errors"

	"github.com/katalvlaran/extprune/core"
)

// Sentinel errors returned by NewBoundedDijkstra.
var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("oracle: graph is nil")
	// ErrBadBudget is returned for a non-positive visit budget.
	ErrBadBudget = errors.New("oracle: visit budget must be positive")
)

// nodeItem is one (vertex, distance) heap entry. Stale duplicates are
// tolerated and skipped on pop (lazy decrease-key).
type nodeItem struct {
	vertex int
	dist   float64
}

// nodePQ is a min-heap of nodeItems ordered by distance.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// BoundedDijkstra implements core.DistanceOracle with per-lookup Dijkstra
// runs that settle at most maxVisits vertices.
type BoundedDijkstra struct {
	g         *core.Graph
	maxVisits int

	// lookup scratch, reset via the touched list after every run
	dist    []float64
	settled []bool
	touched []int
	pq      nodePQ
}

// NewBoundedDijkstra creates an oracle over g that settles at most
// maxVisits vertices per lookup.
func NewBoundedDijkstra(g *core.Graph, maxVisits int) (*BoundedDijkstra, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if maxVisits < 1 {
		return nil, ErrBadBudget
	}

	n := g.NumVertices()
	o := &BoundedDijkstra{
		g:         g,
		maxVisits: maxVisits,
		dist:      make([]float64, n),
		settled:   make([]bool, n),
		touched:   make([]int, 0, n),
		pq:        make(nodePQ, 0, n),
	}
	for v := range o.dist {
		o.dist[v] = core.Faraway
	}

	return o, nil
}

// SpecialDistance returns the budgeted shortest-path cost between v1 and
// v2, or unknown when the budget is exhausted first.
func (o *BoundedDijkstra) SpecialDistance(v1, v2 int) core.Distance {
	return o.SpecialDistanceExcluding(v1, v2, nil)
}

// SpecialDistanceExcluding is SpecialDistance over the subgraph without
// the edges accepted by omit. A nil omit excludes nothing.
func (o *BoundedDijkstra) SpecialDistanceExcluding(v1, v2 int, omit core.EdgeFilter) core.Distance {
	if v1 == v2 {
		return core.KnownDistance(0)
	}
	// symmetry: always search from the lower id
	source, target := v1, v2
	if source > target {
		source, target = target, source
	}

	defer o.reset()

	o.relax(source, 0)
	for visits := 0; o.pq.Len() > 0 && visits < o.maxVisits; {
		item := heap.Pop(&o.pq).(nodeItem)
		if o.settled[item.vertex] {
			continue // stale duplicate
		}
		o.settled[item.vertex] = true
		visits++

		if item.vertex == target {
			return core.KnownDistance(item.dist)
		}

		for _, arc := range o.g.Neighbors(item.vertex) {
			if omit != nil && omit(arc.Edge) {
				continue
			}
			o.relax(arc.Head, item.dist+arc.Cost)
		}
	}

	return core.UnknownDistance()
}

// relax pushes vertex v at distance d unless a better distance is known.
func (o *BoundedDijkstra) relax(v int, d float64) {
	if o.settled[v] || d >= o.dist[v] {
		return
	}
	if o.dist[v] == core.Faraway {
		o.touched = append(o.touched, v)
	}
	o.dist[v] = d
	heap.Push(&o.pq, nodeItem{vertex: v, dist: d})
}

// reset restores the scratch arrays for the next lookup.
func (o *BoundedDijkstra) reset() {
	for _, v := range o.touched {
		o.dist[v] = core.Faraway
		o.settled[v] = false
	}
	o.touched = o.touched[:0]
	o.pq = o.pq[:0]
}
