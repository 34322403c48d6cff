package ruleout

import (
	"sort"

	"github.com/katalvlaran/extprune/core"
)

// HorizontalAdd stages the pairwise special distances among the heads
// of the component edges about to extend the tree, and closes the
// horizontal level. Each pair is computed once; a head reads distances
// to earlier heads out of their already committed slots.
func (o *Orchestrator) HorizontalAdd(extEdges []int) {
	n := len(extEdges)
	heads := make([]int, n)
	for i, e := range extEdges {
		_, heads[i] = o.orientCandidate(e)
	}

	o.c.Horizontal.LevelAdd(n, n-1)

	for i, head := range heads {
		o.c.Horizontal.EmptySlotSetBase(head)
		if o.pc != nil {
			o.pc.mark(head)
		}

		ids := o.c.Horizontal.EmptySlotTargetIDs()
		dists := o.c.Horizontal.EmptySlotTargetDists()

		for j := 0; j < i; j++ {
			ids[j] = heads[j]
			dists[j] = o.c.Horizontal.TopTargetDist(heads[j], head)
		}
		for j := i + 1; j < n; j++ {
			sd := o.specialDist(head, heads[j])
			ids[j-1] = heads[j]
			dists[j-1] = sd.OrFaraway()
		}

		if o.pc != nil {
			o.pc.unmark(head)
		}
		o.c.Horizontal.EmptySlotSetFilled()
	}

	o.c.Horizontal.LevelClose()
}

// LevelClose commits the base MST of the level just entered. The new
// base extends the parent level's base by the siblings of the vertex
// the tree extended from, in leaf-position order, using the vertical
// and horizontal distances cached for the parent level. parentComp
// lists the heads of the parent component; extnode is the one the tree
// grew through. For the root level there is no parent and the base is
// the trivial one-node tree.
func (o *Orchestrator) LevelClose(extnode int, parentComp []int) {
	if extnode == o.tree.Root() {
		o.c.LevelBase.AddEmptyTop(1).SetTrivial()
		o.c.LevelBase.CommitTop()

		return
	}

	parent := o.c.LevelBase.Top()
	nsib := len(parentComp) - 1

	if nsib == 0 {
		o.c.LevelBase.AddEmptyTop(parent.NumNodes()).CopyFrom(parent)
		o.c.LevelBase.CommitTop()

		return
	}

	// New-level bases are grown in leaf-position order; the vertical slot
	// target order depends on it.
	ordered := make([]int, len(parentComp))
	copy(ordered, parentComp)
	sort.Slice(ordered, func(i, j int) bool {
		return o.tree.LeafPos(ordered[i]) < o.tree.LeafPos(ordered[j])
	})

	staged := o.c.LevelBase.AddEmptyTop(parent.NumNodes() + 1)
	lvl := o.c.Vertical.TopLevel() - 1
	nparent := parent.NumNodes()
	extended := false

	for _, compVert := range ordered {
		if compVert == extnode {
			continue
		}

		adj := o.c.Builder.AdjcostBuffer()
		copy(adj[:nparent], o.c.Vertical.LevelTargetDists(lvl, compVert))

		adjpos := nparent
		for _, sibling := range ordered {
			if sibling == compVert {
				adj[adjpos] = core.Faraway
				break
			}
			if sibling == extnode {
				continue
			}
			adj[adjpos] = o.c.Horizontal.TargetDist(lvl, compVert, sibling)
			adjpos++
		}

		if !extended {
			o.c.Builder.AddNode(parent, adj, staged)
			extended = true
		} else {
			o.c.Builder.AddNodeInplace(staged, adj)
		}
	}

	o.c.LevelBase.CommitTop()
}

// LevelRemove pops one level of all caches on backtrack. The vertical
// level always exists; the horizontal level and the level-base MST were
// only added once the driver committed to an extension, so they are
// popped only when the tables are still in lock-step.
func (o *Orchestrator) LevelRemove() {
	if o.c.Horizontal.NLevels() == o.c.Vertical.NLevels() {
		o.c.Horizontal.LevelRemove()
		o.c.LevelBase.RemoveTop()
	}
	o.c.Vertical.LevelRemove()
}

// CompRemove pops component MSTs that outlived their tree level on
// backtrack.
func (o *Orchestrator) CompRemove() {
	if o.c.Comp.Len()-1 > o.tree.Depth() {
		o.c.Comp.RemoveTop()
	}
}
