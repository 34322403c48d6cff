// Package extprune is a pruning (rule-out) engine for depth-first
// Steiner-tree extension searches: it decides, before a branch of the
// search is fully explored, whether no completion of the current partial
// tree can beat the best known solution.
//
// 🚀 What is extprune?
//
//	A single-purpose, in-process library that combines two independent
//	pruning certificates over a partial "extension tree":
//		• Bottleneck-path dominance: the maximum edge cost on a tree path
//		  (prize-adjusted for prize-collecting instances) compared against a
//		  cheap special-distance approximation supplied by an oracle
//		• MST lower bound: a bounded-degree minimum spanning tree over the
//		  tree's leaves, built from special distances and compared against
//		  the tree's actual cost
//
// ✨ Design highlights
//
//   - Strict LIFO lifecycle — every level push, archive push and root-path
//     mark is paired with exactly one pop/unmark, mirroring the recursion
//     of the enclosing search
//   - Incremental everything — per-level distance caches and one-node MST
//     extensions instead of recomputation
//   - No hidden global state — one Orchestrator plus its Container and
//     Tree per search worker; no locks, no goroutines
//
// Package layout:
//
//	core/       — dense graph value, optional Distance type, epsilon
//	              comparisons, DistanceOracle interface
//	exttree/    — extension-tree state shared with the search driver
//	bottleneck/ — root-path marking and dominance tests (incl. equality
//	              certificates with forbidden-edge bookkeeping)
//	leveldist/  — stack of per-level special-distance caches
//	dcmst/      — incremental bounded-size MSTs and their archives
//	oracle/     — reference DistanceOracle (bounded-hop Dijkstra bounds)
//	ruleout/    — the orchestrator tying everything together
//
// The enclosing branch-and-bound search, the LP machinery and the
// production distance oracle are deliberately outside this module; the
// engine only answers "can this partial branch be discarded?".
//
//	go get github.com/katalvlaran/extprune
package extprune
