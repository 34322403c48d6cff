package core

// EdgeFilter reports whether an edge must be ignored by an oracle lookup.
// It is how equality certificates exclude the edges they themselves would
// remove from the graph.
type EdgeFilter func(edge int) bool

// DistanceOracle supplies special distances (SDs): cheap, possibly loose
// upper bounds on true shortest-path costs between two vertices. The
// engine never computes raw shortest paths itself; it only consumes oracle
// answers and compares them to tree bottleneck values.
//
// Implementations must be deterministic and symmetric in the vertex pair.
// The engine calls the oracle on hot paths, so lookups should be cheap;
// "unknown" is always an acceptable answer and merely weakens pruning.
type DistanceOracle interface {
	// SpecialDistance returns an upper bound on the shortest-path cost
	// between v1 and v2, or an unknown Distance if none is available.
	SpecialDistance(v1, v2 int) Distance

	// SpecialDistanceExcluding is SpecialDistance restricted to paths that
	// avoid every edge accepted by omit. Used by equality certificates; a
	// nil omit is equivalent to SpecialDistance.
	SpecialDistanceExcluding(v1, v2 int, omit EdgeFilter) Distance
}
