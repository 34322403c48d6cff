package ruleout

import (
	"github.com/katalvlaran/extprune/core"
)

// LevelInit opens a fresh vertical level sized for the candidate heads
// of the next extension step. Targets are the current leaves, minus the
// extending base once the tree has grown past the root.
func (o *Orchestrator) LevelInit() {
	ntargets := o.tree.NumLeaves()
	if !o.atInitialComp() {
		ntargets--
	}

	o.c.Vertical.LevelAdd(core.MaxTreeDeg, ntargets)
}

// VerticalAddLeaf stages the vertical distances of one candidate
// extension edge and runs the per-head rule-out tests. It reports
// whether the head was ruled out; a ruled-out head leaves no slot
// behind, a surviving head's slot is committed with the extending
// base's own entry removed.
func (o *Orchestrator) VerticalAddLeaf(edge int) bool {
	base, head := o.orientCandidate(edge)

	o.leafInit(base, head)
	ruled := o.setVerticalSDs(edge, base, head)

	if !ruled {
		ruled = o.tryExtMst()
	}
	if !ruled && o.pc != nil {
		ruled = o.checkNonLeaves(edge, base, head, o.pc.candidates())
	}
	if !ruled {
		ruled = o.checkNonLeaves(edge, base, head, o.tree.InnerNodes())
	}

	o.leafExit(base, head, ruled, false)

	return ruled
}

// VerticalAddLeafInitial is VerticalAddLeaf for the very first
// component, when the tree is still the bare root. Only the distance
// test against the root applies; there is no component MST to extend
// and no inner vertices to compare against.
func (o *Orchestrator) VerticalAddLeafInitial(edge int) bool {
	base, head := o.orientCandidate(edge)

	o.leafInit(base, head)
	ruled := o.setVerticalSDs(edge, base, head)
	o.leafExit(base, head, ruled, true)

	return ruled
}

// leafInit claims the staging slot for head and arms the tree-path
// bottleneck marks rooted at base, plus the PC shortcut marks around
// head when prizes are in play.
func (o *Orchestrator) leafInit(base, head int) {
	o.c.Vertical.EmptySlotSetBase(head)
	o.bt.MarkRootPath(base)
	if o.pc != nil {
		o.pc.mark(head)
	}
}

// setVerticalSDs fills the staged slot with special distances from head
// to every current leaf, testing each against the tree bottleneck as it
// goes. Returns true as soon as one leaf dominates the extension edge.
func (o *Orchestrator) setVerticalSDs(edge, base, head int) bool {
	ids := o.c.Vertical.EmptySlotTargetIDs()
	dists := o.c.Vertical.EmptySlotTargetDists()

	for j, leaf := range o.tree.Leaves() {
		sd := o.specialDist(head, leaf)
		ids[j] = leaf
		dists[j] = sd.OrFaraway()

		if o.bt.ExtEdgeIsDominated(edge, head, base, leaf, sd) {
			return true
		}
	}

	return false
}

// tryExtMst weighs the component MST extended by the staged head and
// rules the head out when the extension already beats the tree.
func (o *Orchestrator) tryExtMst() bool {
	weight := o.c.Builder.ExtensionWeight(o.c.Comp.Top(), o.c.Vertical.EmptySlotTargetDists())

	return core.LT(weight, o.treeCost())
}

// checkNonLeaves runs the extension-edge bottleneck test against a set
// of vertices already inside the tree (inner vertices, or PC shortcut
// candidates that the tree passes through).
func (o *Orchestrator) checkNonLeaves(edge, base, head int, vertices []int) bool {
	for _, v := range vertices {
		if o.tree.Deg(v) <= 1 {
			continue
		}
		if o.bt.ExtEdgeIsDominated(edge, head, base, v, o.specialDist(head, v)) {
			return true
		}
	}

	return false
}

// leafExit undoes leafInit's marks and either abandons or commits the
// staged slot. Past the initial component the extending base's own
// entry is removed first, so a committed slot holds one distance per
// surviving leaf of the extended tree's parent level.
func (o *Orchestrator) leafExit(base, head int, ruled, initial bool) {
	if ruled {
		o.c.Vertical.EmptySlotReset()
	} else {
		if !initial {
			o.c.Vertical.EmptySlotRemoveTarget(o.tree.LeafPos(base))
		}
		o.c.Vertical.EmptySlotSetFilled()
	}

	o.bt.UnmarkRootPath(base)
	if o.pc != nil {
		o.pc.unmark(head)
	}
}

// VerticalClose finalizes the vertical level opened by LevelInit.
func (o *Orchestrator) VerticalClose() {
	o.c.Vertical.LevelClose()
}

// VerticalRemove pops the vertical level on backtrack.
func (o *Orchestrator) VerticalRemove() {
	o.c.Vertical.LevelRemove()
}

// treeCost returns the cost the rule-out tests compare against, with
// inner prizes credited on prize-collecting instances.
func (o *Orchestrator) treeCost() float64 {
	if o.pc != nil {
		return o.tree.ReducedCost()
	}

	return o.tree.Cost()
}
