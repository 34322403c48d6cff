// Package bottleneck - root-path marking and bottleneck dominance tests.
package bottleneck

import (
	"errors"

	"github.com/katalvlaran/extprune/core"
	"github.com/katalvlaran/extprune/exttree"
)

// Sentinel errors returned by NewTracker.
var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("bottleneck: graph is nil")
	// ErrNilTree is returned when the tree argument is nil.
	ErrNilTree = errors.New("bottleneck: tree is nil")
	// ErrNilOracle is returned when the oracle argument is nil.
	ErrNilOracle = errors.New("bottleneck: oracle is nil")
)

// ErrNoEqualitySegment is the panic value when an equality rule-out names
// a distance no segment of the tree path attains.
var ErrNoEqualitySegment = errors.New("bottleneck: equality segment not found on tree path")

// Tracker answers bottleneck-distance queries over the current extension
// tree. It writes per-ancestor running bottlenecks into the tree's scratch
// slots during MarkRootPath, so that later Distance calls from any other
// vertex only need to walk up to the first marked ancestor.
//
// A Tracker holds no state of its own beyond its bindings; all mutable
// state lives in the tree (scratch slots and the forbidden-edge table).
type Tracker struct {
	g      *core.Graph
	tree   *exttree.Tree
	oracle core.DistanceOracle
}

// NewTracker binds a tracker to a graph, an extension tree, and a special
// distance oracle.
func NewTracker(g *core.Graph, tree *exttree.Tree, oracle core.DistanceOracle) (*Tracker, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if tree == nil {
		return nil, ErrNilTree
	}
	if oracle == nil {
		return nil, ErrNilOracle
	}

	return &Tracker{g: g, tree: tree, oracle: oracle}, nil
}

// pathCredit is the prize credited to a degree-2 pass-through vertex: in
// prize-collecting mode a terminal sitting inside a path segment pays its
// prize back against the segment cost.
func (t *Tracker) pathCredit(v int) float64 {
	if t.g.IsPrizeCollecting() && t.g.IsTerminal(v) {
		return t.g.Prize(v)
	}

	return 0
}

// accumulate folds vertex child into a running pass-through segment:
//  1. at a degree-2 vertex the parent edge contributes its cost minus the
//     PC prize credit of child, raising the segment maximum;
//  2. at any other degree the segment resets to the parent edge alone.
//
// It returns the updated local segment value, the maximum adjusted edge
// cost since the last branching vertex.
func (t *Tracker) accumulate(local float64, child int) float64 {
	edgeCost := t.tree.ParentEdgeCost(child)
	if t.tree.Deg(child) == 2 {
		if c := edgeCost - t.pathCredit(child); c > local {
			return c
		}

		return local
	}

	return edgeCost
}

// MarkRootPath walks from vertex up to the tree root and stores, in each
// strict ancestor's scratch slot, the bottleneck distance between vertex
// and that ancestor. The slot of vertex itself stays empty; the root's
// slot is written (zero when vertex is the root).
//
// Panics if any slot on the path is already marked, which means a
// previous mark was not undone.
func (t *Tracker) MarkRootPath(vertex int) {
	if vertex == t.tree.Root() {
		t.tree.SetMarkedBottleneck(vertex, 0)

		return
	}

	var (
		bottleneck float64 // running maximum over closed segments
		local      float64 // cost of the open pass-through segment
		child      = vertex
	)
	for cur := t.tree.Parent(vertex); cur != core.NoNode; cur = t.tree.Parent(cur) {
		local = t.accumulate(local, child)
		if local > bottleneck {
			bottleneck = local
		}
		t.tree.SetMarkedBottleneck(cur, bottleneck)
		child = cur
	}
}

// UnmarkRootPath clears the scratch slots written by a matching
// MarkRootPath(vertex) call. Panics if a slot on the path is not marked.
func (t *Tracker) UnmarkRootPath(vertex int) {
	if vertex == t.tree.Root() {
		t.tree.ClearMarkedBottleneck(vertex)

		return
	}

	for cur := t.tree.Parent(vertex); cur != core.NoNode; cur = t.tree.Parent(cur) {
		t.tree.ClearMarkedBottleneck(cur)
	}
}

// Distance returns the bottleneck distance between the vertex whose root
// path is currently marked and the given unmarked vertex. It walks from
// unmarked up to the first marked ancestor, accumulating the same way
// MarkRootPath does, and then combines with the stored value at the
// meeting point.
//
// Requires a prior MarkRootPath; panics (via the scratch accessor) when
// the walk falls off the root without meeting a marked slot.
func (t *Tracker) Distance(unmarked int) float64 {
	var (
		bottleneck float64
		local      float64
		cur        = unmarked
	)
	for {
		if stored, ok := t.tree.MarkedBottleneck(cur); ok {
			if stored > bottleneck {
				return stored
			}

			return bottleneck
		}
		local = t.accumulate(local, cur)
		if local > bottleneck {
			bottleneck = local
		}
		cur = t.tree.Parent(cur)
	}
}

// IsDominated reports whether the tree path between the marked vertex and
// unmarked is dominated by the special distance sd: strictly dominated
// when sd is below the bottleneck, or equality-dominated when sd ties the
// bottleneck and the tie survives with forbiddenEdge excluded from the
// oracle. On an equality rule-out the realizing tree segment is recorded
// as forbidden. forbiddenEdge may be core.NoEdge.
func (t *Tracker) IsDominated(marked, unmarked int, sd core.Distance, forbiddenEdge int) bool {
	if !sd.Known || marked == unmarked {
		return false
	}

	b := t.Distance(unmarked)
	if core.LT(sd.Value, b) {
		return true
	}
	if core.LE(sd.Value, b) && t.isEqualityDominated(sd.Value, forbiddenEdge, marked, unmarked) {
		t.markEqualityEdges(sd.Value, marked, unmarked)

		return true
	}

	return false
}

// ExtEdgeIsDominated reports whether the candidate extension edge extEdge
// (from the marked tree vertex base to the outside vertex head) is
// dominated with respect to the unmarked tree vertex. Two tests run in
// order:
//  1. sd against the extension edge cost itself; an equality tie here
//     forbids extEdge alone;
//  2. sd against the bottleneck between base and unmarked, as in
//     IsDominated, with extEdge as the excluded edge.
func (t *Tracker) ExtEdgeIsDominated(extEdge, head, base, unmarked int, sd core.Distance) bool {
	if !sd.Known {
		return false
	}

	edgeCost := t.g.EdgeCost(extEdge)
	if core.LT(sd.Value, edgeCost) {
		return true
	}
	if core.LE(sd.Value, edgeCost) && t.isEqualityDominated(sd.Value, extEdge, head, unmarked) {
		t.tree.ForbidEdge(extEdge)

		return true
	}

	if base == unmarked {
		return false
	}

	b := t.Distance(unmarked)
	if core.LT(sd.Value, b) {
		return true
	}
	if core.LE(sd.Value, b) && t.isEqualityDominated(sd.Value, extEdge, head, unmarked) {
		t.markEqualityEdges(sd.Value, base, unmarked)

		return true
	}

	return false
}

// SiblingIsDominated rules between two candidate extension edges leaving
// the same tree vertex: extEdge to extHead and siblingEdge to siblingHead,
// with sd the special distance between the two heads. Either edge may be
// strictly dominated by sd; equality ties forbid the dominated edge.
func (t *Tracker) SiblingIsDominated(extEdge, extHead, siblingEdge, siblingHead int, sd core.Distance) bool {
	if !sd.Known {
		return false
	}

	if core.LT(sd.Value, t.g.EdgeCost(siblingEdge)) || core.LT(sd.Value, t.g.EdgeCost(extEdge)) {
		return true
	}
	if core.LE(sd.Value, t.g.EdgeCost(siblingEdge)) && t.isEqualityDominated(sd.Value, siblingEdge, siblingHead, extHead) {
		t.tree.ForbidEdge(siblingEdge)

		return true
	}
	if core.LE(sd.Value, t.g.EdgeCost(extEdge)) && t.isEqualityDominated(sd.Value, extEdge, siblingHead, extHead) {
		t.tree.ForbidEdge(extEdge)

		return true
	}

	return false
}
