package ruleout

import (
	"errors"

	"github.com/katalvlaran/extprune/core"
	"github.com/katalvlaran/extprune/exttree"
)

// ErrPcMarkPairing is the panic value for unpaired shortcut mark/unmark
// calls.
var ErrPcMarkPairing = errors.New("ruleout: pc shortcut mark/unmark not paired")

// pcState holds the prize-collecting shortcut distances: while a start
// vertex is marked, every tree vertex reachable within one hop, or two
// hops over a non-tree intermediate, carries a prize-adjusted distance
// bound from the start. Those bounds can undercut the oracle and catch
// shortcuts the plain special distances miss.
//
// Marking and unmarking must be strictly paired; at most one start is
// marked at a time.
type pcState struct {
	g    *core.Graph
	tree *exttree.Tree

	dist  []float64 // Faraway while unmarked
	cands []int     // marked vertices, for unmark and candidate scans
	start int       // NoNode while unmarked
}

func newPcState(g *core.Graph, tree *exttree.Tree) *pcState {
	p := &pcState{
		g:     g,
		tree:  tree,
		dist:  make([]float64, g.NumVertices()),
		cands: make([]int, 0, MaxSdVisits*2),
		start: core.NoNode,
	}
	for v := range p.dist {
		p.dist[v] = core.Faraway
	}

	return p
}

// markSingle records a shortcut bound to the tree vertex v, keeping the
// minimum over multiple witnesses.
func (p *pcState) markSingle(v int, value float64) {
	if p.dist[v] == core.Faraway {
		p.cands = append(p.cands, v)
		p.dist[v] = value
	} else if value < p.dist[v] {
		p.dist[v] = value
	}
}

// mark scans the neighborhood of start: direct tree neighbors get their
// edge cost, tree vertices two hops away over a non-tree intermediate
// get max(longer edge, both edges minus the intermediate's prize). Both
// scans stop after MaxSdVisits steps.
func (p *pcState) mark(start int) {
	if p.start != core.NoNode {
		panic(ErrPcMarkPairing)
	}
	p.start = start

	count1 := 0
	for _, arc := range p.g.Neighbors(start) {
		if p.tree.Contains(arc.Head) {
			p.markSingle(arc.Head, arc.Cost)
		} else {
			count2 := 0
			for _, arc2 := range p.g.Neighbors(arc.Head) {
				if p.tree.Contains(arc2.Head) && arc2.Head != start {
					bound := arc.Cost + arc2.Cost - p.g.Prize(arc.Head)
					if arc.Cost > bound {
						bound = arc.Cost
					}
					if arc2.Cost > bound {
						bound = arc2.Cost
					}
					p.markSingle(arc2.Head, bound)
				}
				if count2++; count2 > MaxSdVisits {
					break
				}
			}
		}
		if count1++; count1 > MaxSdVisits {
			break
		}
	}
}

// unmark clears every bound written by the matching mark(start) call.
func (p *pcState) unmark(start int) {
	if p.start != start {
		panic(ErrPcMarkPairing)
	}
	for _, v := range p.cands {
		p.dist[v] = core.Faraway
	}
	p.cands = p.cands[:0]
	p.start = core.NoNode
}

// shortcut returns the marked bound from the current start to v.
func (p *pcState) shortcut(from, to int) (float64, bool) {
	if from != p.start || p.dist[to] == core.Faraway {
		return 0, false
	}

	return p.dist[to], true
}

// candidates returns the vertices marked by the current mark call.
func (p *pcState) candidates() []int { return p.cands }
