package ruleout

import (
	"github.com/katalvlaran/extprune/core"
)

// RuleOutPeriph decides whether the freshly extended tree can be ruled
// out. compEdges are the edges of the newest component, each reaching
// one of the tree's newest leaves. The decision is sound in both
// directions: a false return never discards an optimal extension, a
// true return is always justified by a dominating alternative.
//
// Three tests run in order of cost. Each new leaf is checked against
// its later siblings on cached horizontal distances, then, for single
// edge components, against every ancestor leaf on cached vertical
// distances. Leaves that survive are folded into the component MST over
// all leaves; its weight against the tree cost is the final verdict,
// softened at equality for three-leaf trees whose tie certificates
// cannot be confirmed.
func (o *Orchestrator) RuleOutPeriph(compEdges []int) bool {
	nleaves := o.tree.NumLeaves()
	nanc := nleaves - len(compEdges)
	mstBase := o.c.LevelBase.Top()

	staged := o.c.Comp.AddEmptyTop(mstBase.NumNodes() + 1)
	extended := false

	for _, edge2leaf := range compEdges {
		topleaf := o.compLeafOf(edge2leaf)
		adj := o.c.Builder.AdjcostBuffer()

		if o.siblingSDs(adj[nanc:], compEdges, edge2leaf, topleaf) {
			o.c.Comp.RemoveTop()

			return true
		}
		if o.ancestorSDs(adj[:nanc], compEdges, edge2leaf, topleaf) {
			o.c.Comp.RemoveTop()

			return true
		}

		if !extended {
			o.c.Builder.AddNode(mstBase, adj, staged)
			extended = true
		} else {
			o.c.Builder.AddNodeInplace(staged, adj)
		}
	}

	o.c.Comp.CommitTop()

	weight := staged.Weight()
	treeCost := o.treeCost()

	var ruled bool
	if staged.NumNodes() > 2 {
		ruled = core.LE(weight, treeCost)
	} else {
		ruled = core.LT(weight, treeCost)
	}

	if ruled && nleaves == 3 && core.EQ(weight, treeCost) && !o.eqComp3RuleOut(treeCost) {
		ruled = false
	}

	return ruled
}

// siblingSDs fills adj with the horizontal distances from topleaf to
// its component siblings and tests the later siblings for dominance.
// Returns true when topleaf's edge is dominated by a sibling.
func (o *Orchestrator) siblingSDs(adj []float64, compEdges []int, edge2leaf, topleaf int) bool {
	hitTop := false
	for j, sibEdge := range compEdges {
		sib := o.compLeafOf(sibEdge)
		if sib == topleaf {
			hitTop = true
			adj[j] = core.Faraway

			continue
		}

		sd := o.c.Horizontal.TopTargetDist(topleaf, sib)
		adj[j] = sd

		if hitTop && o.bt.SiblingIsDominated(edge2leaf, topleaf, sibEdge, sib, core.DistanceFromStored(sd)) {
			return true
		}
	}

	return false
}

// ancestorSDs fills adj with the vertical distances from topleaf to the
// ancestor leaves. For single-edge components each ancestor is also
// tested against the tree bottleneck, with topleaf's edge as the
// equality witness.
func (o *Orchestrator) ancestorSDs(adj []float64, compEdges []int, edge2leaf, topleaf int) bool {
	copy(adj, o.c.Vertical.TopTargetDists(topleaf))

	if len(compEdges) > 1 {
		return false
	}

	ruled := false
	o.bt.MarkRootPath(topleaf)
	for j, leaf := range o.c.Vertical.LevelTargetIDs(o.c.Vertical.TopLevel(), topleaf) {
		if o.bt.IsDominated(topleaf, leaf, core.DistanceFromStored(adj[j]), edge2leaf) {
			ruled = true

			break
		}
	}
	o.bt.UnmarkRootPath(topleaf)

	return ruled
}

// eqComp3RuleOut confirms an equality-weight rule-out of a three-leaf
// tree. Equality is only conclusive when an alternative Steiner tree of
// the three leaves, avoiding every forbidden tie edge, still matches
// the tree cost. With no forbidden edges the cached weight already is
// such a tree.
func (o *Orchestrator) eqComp3RuleOut(treeCost float64) bool {
	if !o.tree.HasForbiddenEdges() {
		return true
	}

	filter := o.tree.ForbiddenFilter()
	sd := func(v1, v2 int) float64 {
		return o.oracle.SpecialDistanceExcluding(v1, v2, filter).OrFaraway()
	}

	l := o.tree.Leaves()
	s01 := sd(l[0], l[1])
	s02 := sd(l[0], l[2])
	if core.LE(s01+s02, treeCost) {
		return true
	}

	s12 := sd(l[1], l[2])

	return core.LE(s01+s12, treeCost) || core.LE(s02+s12, treeCost)
}
