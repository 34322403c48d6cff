package exttree

import "github.com/katalvlaran/extprune/core"

// Bottleneck scratch cells. The bottleneck package owns the marking
// discipline; the cells live here because they are per-vertex tree state
// with the same lifetime as the rest of the tree.

// MarkedBottleneck returns the bottleneck value written at v and whether
// v is currently marked.
func (t *Tree) MarkedBottleneck(v int) (float64, bool) {
	d := t.scratch[v]

	return d.Value, d.Known
}

// SetMarkedBottleneck writes the bottleneck value of v. Marking an
// already-marked cell panics with ErrScratchDirty: marks must be strictly
// paired with clears.
func (t *Tree) SetMarkedBottleneck(v int, dist float64) {
	if t.scratch[v].Known {
		panic(ErrScratchDirty)
	}

	t.scratch[v] = core.KnownDistance(dist)
}

// ClearMarkedBottleneck resets the cell of v to unmarked.
func (t *Tree) ClearMarkedBottleneck(v int) {
	t.scratch[v] = core.UnknownDistance()
}

// Equality-certificate side table: edges consumed by a tie-breaking
// rule-out may not justify another one, so they are "forbidden" until the
// search backtracks past the certificate.

// ForbidEdge marks edge e as forbidden. Returns true if e was newly
// forbidden, in which case the edge was pushed onto the reset list.
func (t *Tree) ForbidEdge(e int) bool {
	if t.forbidden.Contains(e) {
		return false
	}

	t.forbidden.Add(e)
	t.resetStack = append(t.resetStack, e)

	return true
}

// EdgeIsForbidden reports whether e is currently forbidden.
func (t *Tree) EdgeIsForbidden(e int) bool { return t.forbidden.Contains(e) }

// HasForbiddenEdges reports whether any equality certificate is active.
func (t *Tree) HasForbiddenEdges() bool { return t.forbidden.Cardinality() > 0 }

// ForbiddenFilter returns a core.EdgeFilter over the current forbidden
// set. The filter reads the live set, so it must not outlive the tree.
func (t *Tree) ForbiddenFilter() core.EdgeFilter {
	return func(edge int) bool { return t.forbidden.Contains(edge) }
}

// ForbiddenMark returns a rollback point for RollbackForbidden.
func (t *Tree) ForbiddenMark() int { return len(t.resetStack) }

// RollbackForbidden un-forbids, in LIFO order, every edge forbidden since
// the given mark was taken.
func (t *Tree) RollbackForbidden(mark int) {
	for len(t.resetStack) > mark {
		e := t.resetStack[len(t.resetStack)-1]
		t.resetStack = t.resetStack[:len(t.resetStack)-1]
		t.forbidden.Remove(e)
	}
}
