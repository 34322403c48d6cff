// Package core defines the dense graph value, the optional Distance type,
// epsilon-tolerant cost comparisons, and the DistanceOracle interface that
// every other extprune package builds on.
//
// Unlike general-purpose graph libraries, vertices here are dense integer
// ids in [0, NumVertices): the engine keeps per-vertex scratch arrays that
// are indexed directly by vertex id on very hot paths, so string keys or
// maps are out of the question. The graph is built once (AddEdge, then
// Finalize) and is strictly read-only afterwards.
//
// Costs are float64 and always compared through the epsilon helpers
// (EQ, LT, LE, GT, GE): the rule-out logic distinguishes "strictly better"
// from "equal within tolerance", and the equality case triggers extra
// certificate bookkeeping elsewhere.
//
// Errors:
//
//	ErrBadVertexCount  - non-positive vertex count at construction.
//	ErrVertexRange     - vertex id outside [0, NumVertices).
//	ErrEdgeRange       - edge id outside [0, NumEdges).
//	ErrNegativeCost    - negative edge cost.
//	ErrFinalized       - mutation attempted after Finalize.
//	ErrNotFinalized    - adjacency queried before Finalize.
//	ErrNotPrizeMode    - prize/terminal mutation on a non-PC graph.
package core
