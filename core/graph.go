package core

// Graph is the read-only problem graph consumed by the rule-out engine.
//
// Lifecycle:
//  1. NewGraph(n, opts...) fixes the vertex count (and PC mode).
//  2. AddEdge appends undirected edges; ids are assigned densely from 0.
//  3. Finalize builds the CSR adjacency; afterwards the graph is immutable
//     and Neighbors/Degree become available.
//
// All query methods are safe for concurrent readers once finalized.
type Graph struct {
	numVertices int
	edges       []Edge

	// CSR adjacency, built by Finalize: arcs[start[v]:start[v+1]] are the
	// arcs leaving v. Two arcs per undirected edge.
	start []int
	arcs  []Arc

	// PC mode data; nil unless WithPrizeCollecting was given.
	prize      []float64
	isTerminal []bool
	pc         bool

	finalized bool
}

// NewGraph creates a graph with a fixed number of vertices.
// Returns ErrBadVertexCount if numVertices < 1.
func NewGraph(numVertices int, opts ...GraphOption) (*Graph, error) {
	if numVertices < 1 {
		return nil, ErrBadVertexCount
	}

	g := &Graph{numVertices: numVertices}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// AddEdge appends an undirected edge u—v with the given cost and returns
// its id. Ids are dense and stable: the i-th successful AddEdge returns i.
//
// Errors: ErrFinalized after Finalize, ErrVertexRange for bad endpoints,
// ErrNegativeCost for cost < 0.
func (g *Graph) AddEdge(u, v int, cost float64) (int, error) {
	if g.finalized {
		return NoEdge, ErrFinalized
	}
	if u < 0 || u >= g.numVertices || v < 0 || v >= g.numVertices {
		return NoEdge, ErrVertexRange
	}
	if cost < 0 {
		return NoEdge, ErrNegativeCost
	}

	g.edges = append(g.edges, Edge{U: u, V: v, Cost: cost})

	return len(g.edges) - 1, nil
}

// SetPrize assigns the PC prize of a vertex.
// Errors: ErrNotPrizeMode, ErrFinalized, ErrVertexRange, ErrNegativeCost.
func (g *Graph) SetPrize(v int, prize float64) error {
	if !g.pc {
		return ErrNotPrizeMode
	}
	if g.finalized {
		return ErrFinalized
	}
	if v < 0 || v >= g.numVertices {
		return ErrVertexRange
	}
	if prize < 0 {
		return ErrNegativeCost
	}

	g.prize[v] = prize

	return nil
}

// SetTerminal marks a vertex as a terminal (PC mode only).
func (g *Graph) SetTerminal(v int) error {
	if !g.pc {
		return ErrNotPrizeMode
	}
	if g.finalized {
		return ErrFinalized
	}
	if v < 0 || v >= g.numVertices {
		return ErrVertexRange
	}

	g.isTerminal[v] = true

	return nil
}

// Finalize builds the CSR adjacency and freezes the graph.
// Calling Finalize twice returns ErrFinalized.
//
// Complexity: O(V + E) time and memory (counting sort over arcs).
func (g *Graph) Finalize() error {
	if g.finalized {
		return ErrFinalized
	}

	n := g.numVertices
	g.start = make([]int, n+1)

	// 1. Count arcs per vertex (two per undirected edge).
	for _, e := range g.edges {
		g.start[e.U]++
		g.start[e.V]++
	}

	// 2. Prefix sums turn counts into end offsets.
	for v := 1; v <= n; v++ {
		g.start[v] += g.start[v-1]
	}

	// 3. Place arcs, filling each vertex range from its end backwards.
	g.arcs = make([]Arc, 2*len(g.edges))
	for id, e := range g.edges {
		g.start[e.U]--
		g.arcs[g.start[e.U]] = Arc{Head: e.V, Cost: e.Cost, Edge: id}

		g.start[e.V]--
		g.arcs[g.start[e.V]] = Arc{Head: e.U, Cost: e.Cost, Edge: id}
	}

	g.finalized = true

	return nil
}

// NumVertices returns the fixed vertex count.
func (g *Graph) NumVertices() int { return g.numVertices }

// NumEdges returns the number of undirected edges added so far.
func (g *Graph) NumEdges() int { return len(g.edges) }

// IsPrizeCollecting reports whether the graph carries PC data.
func (g *Graph) IsPrizeCollecting() bool { return g.pc }

// Neighbors returns the adjacency arcs of v as a shared sub-slice; callers
// must not mutate it. Panics with ErrNotFinalized before Finalize and
// ErrVertexRange for a bad id — both are programming errors, not runtime
// conditions.
func (g *Graph) Neighbors(v int) []Arc {
	if !g.finalized {
		panic(ErrNotFinalized)
	}
	if v < 0 || v >= g.numVertices {
		panic(ErrVertexRange)
	}

	return g.arcs[g.start[v]:g.start[v+1]]
}

// Degree returns the number of incident edges of v.
func (g *Graph) Degree(v int) int {
	return len(g.Neighbors(v))
}

// EdgeCost returns the cost of edge e. Panics with ErrEdgeRange for a bad id.
func (g *Graph) EdgeCost(e int) float64 {
	if e < 0 || e >= len(g.edges) {
		panic(ErrEdgeRange)
	}

	return g.edges[e].Cost
}

// EdgeEnds returns both endpoints of edge e.
func (g *Graph) EdgeEnds(e int) (u, v int) {
	if e < 0 || e >= len(g.edges) {
		panic(ErrEdgeRange)
	}

	return g.edges[e].U, g.edges[e].V
}

// Prize returns the PC prize of v, or 0 for non-PC graphs.
func (g *Graph) Prize(v int) float64 {
	if !g.pc {
		return 0
	}
	if v < 0 || v >= g.numVertices {
		panic(ErrVertexRange)
	}

	return g.prize[v]
}

// IsTerminal reports whether v is a terminal; always false for non-PC graphs.
func (g *Graph) IsTerminal(v int) bool {
	if !g.pc {
		return false
	}
	if v < 0 || v >= g.numVertices {
		panic(ErrVertexRange)
	}

	return g.isTerminal[v]
}
