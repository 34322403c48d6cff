// Package oracle provides a ready-made core.DistanceOracle backed by a
// budgeted Dijkstra search.
//
// The rule-out engine only consumes special distances, it never computes
// them; production drivers usually plug in a precomputed distance store.
// BoundedDijkstra is the self-contained alternative: each lookup runs a
// lazy-decrease-key Dijkstra from the lower-id endpoint, settling at most
// a fixed number of vertices, and reports "unknown" when the budget runs
// out before the other endpoint is reached. Unknown answers merely weaken
// pruning, so the budget trades pruning power against lookup cost.
//
// Lookups reuse the oracle's scratch arrays; a BoundedDijkstra must not
// be shared between concurrent searches.
package oracle
