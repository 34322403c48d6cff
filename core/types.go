// This file declares the sentinel errors, the Arc adjacency record, graph
// options, and the package-wide size bound MaxTreeDeg.
package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrBadVertexCount indicates a non-positive vertex count was passed to NewGraph.
	ErrBadVertexCount = errors.New("core: vertex count must be positive")

	// ErrVertexRange indicates a vertex id outside [0, NumVertices).
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrEdgeRange indicates an edge id outside [0, NumEdges).
	ErrEdgeRange = errors.New("core: edge id out of range")

	// ErrNegativeCost indicates a negative edge cost; the engine assumes
	// non-negative costs throughout.
	ErrNegativeCost = errors.New("core: negative edge cost")

	// ErrFinalized indicates a mutation was attempted after Finalize.
	ErrFinalized = errors.New("core: graph already finalized")

	// ErrNotFinalized indicates an adjacency query before Finalize.
	ErrNotFinalized = errors.New("core: graph not finalized")

	// ErrNotPrizeMode indicates a prize or terminal mutation on a graph that
	// was not created with WithPrizeCollecting.
	ErrNotPrizeMode = errors.New("core: graph is not prize-collecting")
)

// MaxTreeDeg bounds the number of sibling extensions considered from one
// tree vertex, and therefore the slot count of every distance-table level
// and the fan-out of every component MST. Extensions from vertices of
// higher degree are simply not attempted by the enclosing search.
const MaxTreeDeg = 8

// NoNode marks an absent vertex id (e.g. the parent of the tree root).
const NoNode = -1

// NoEdge marks an absent edge id.
const NoEdge = -1

// Arc is one directed adjacency record of the finalized graph.
// Every undirected edge contributes two arcs, one per endpoint.
type Arc struct {
	// Head is the vertex this arc points to.
	Head int

	// Cost is the cost of the underlying undirected edge.
	Cost float64

	// Edge is the id of the underlying undirected edge.
	Edge int
}

// Edge is one undirected edge of the graph.
type Edge struct {
	// U and V are the endpoints; U < V is not required.
	U, V int

	// Cost is the non-negative edge cost.
	Cost float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithPrizeCollecting arms prize-collecting (PC) mode: the graph carries a
// per-vertex prize array and terminal markers, and the engine applies
// prize credits in bottleneck and tree-cost computations.
func WithPrizeCollecting() GraphOption {
	return func(g *Graph) {
		g.pc = true
		g.prize = make([]float64, g.numVertices)
		g.isTerminal = make([]bool, g.numVertices)
	}
}
