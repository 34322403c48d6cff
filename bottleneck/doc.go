// Package bottleneck implements the bottleneck-path side of the rule-out
// engine: marking the maximum-edge-cost path from a tree vertex up to the
// root, querying the bottleneck distance between a marked and an unmarked
// vertex, and the dominance tests that compare those bottlenecks against
// special distances from the oracle.
//
// The bottleneck distance between two tree vertices is the classical
// maximum single edge cost on the tree path between them, taken over
// pass-through segments: within a run of degree-2 vertices each edge
// contributes its cost minus the PC prize credit of the terminal it
// enters, and segments reset at every branching vertex. If the oracle
// knows a special distance below that bottleneck, the tree path is
// provably redundant.
//
// Equality is the delicate case. A special distance that merely ties the
// bottleneck may only justify a rule-out if the tie survives with the
// candidate edge excluded from the oracle's view — and then every tree
// edge of the segment realizing the tie becomes "forbidden" for future
// equality arguments, so that two tying certificates can never justify
// each other circularly. Forbidden edges are pushed onto the tree's reset
// list and un-forbidden on backtrack.
//
// Marking discipline is strict: MarkRootPath and UnmarkRootPath must be
// paired exactly, in reverse order when nested. Violations panic.
package bottleneck
