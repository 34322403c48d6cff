package bottleneck

import (
	"github.com/katalvlaran/extprune/core"
)

// isEqualityDominated decides whether an equality tie between distEq and a
// bottleneck still holds when omitEdge and all currently forbidden tree
// edges are excluded from the oracle's view. A tie that only exists
// through the excluded edges is circular and does not justify a rule-out.
// omitEdge may be core.NoEdge.
func (t *Tracker) isEqualityDominated(distEq float64, omitEdge, v1, v2 int) bool {
	filter := func(e int) bool {
		return e == omitEdge || t.tree.EdgeIsForbidden(e)
	}
	sd := t.oracle.SpecialDistanceExcluding(v1, v2, filter)
	if !sd.Known {
		return false
	}

	return core.LE(sd.Value, distEq)
}

// markEqualityPath forbids the parent edge of every vertex from start up
// to, but not including, end. start and end must lie on one root path.
func (t *Tracker) markEqualityPath(start, end int) {
	for cur := start; cur != end; cur = t.tree.Parent(cur) {
		t.tree.ForbidEdge(t.tree.ParentEdge(cur))
	}
}

// markEqualityEdges locates the pass-through segment realizing the
// bottleneck tie distEq on the tree path between the marked vertex and
// unmarked, and forbids its edges. The search retraces the two
// accumulation walks: first up from unmarked to the lowest marked
// ancestor, then up from marked to that ancestor. Panics when no segment
// on the path reproduces distEq, which would mean the caller ruled out
// on a distance the path never attains.
func (t *Tracker) markEqualityEdges(distEq float64, marked, unmarked int) {
	var (
		local    float64
		segStart = core.NoNode
		ancestor int
	)

	if unmarked == t.tree.Root() {
		ancestor = t.tree.Root()
	} else {
		cur := unmarked
		segStart = unmarked
		for {
			if _, ok := t.tree.MarkedBottleneck(cur); ok {
				ancestor = cur

				break
			}
			if t.tree.Deg(cur) == 2 {
				if c := t.tree.ParentEdgeCost(cur) - t.pathCredit(cur); c > local {
					local = c
				}
			} else {
				segStart = cur
				local = t.tree.ParentEdgeCost(cur)
			}
			if core.EQ(local, distEq) {
				t.markEqualityPath(segStart, t.tree.Parent(cur))

				return
			}
			cur = t.tree.Parent(cur)
		}
	}

	local = 0
	segStart = core.NoNode
	for cur := marked; cur != ancestor; cur = t.tree.Parent(cur) {
		if t.tree.Deg(cur) == 2 {
			if c := t.tree.ParentEdgeCost(cur) - t.pathCredit(cur); c > local {
				local = c
			}
		} else {
			segStart = cur
			local = t.tree.ParentEdgeCost(cur)
		}
		if core.EQ(local, distEq) {
			if segStart == core.NoNode {
				segStart = marked
			}
			t.markEqualityPath(segStart, t.tree.Parent(cur))

			return
		}
	}

	panic(ErrNoEqualitySegment)
}
