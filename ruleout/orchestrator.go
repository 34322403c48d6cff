package ruleout

import (
	"errors"

	"github.com/katalvlaran/extprune/bottleneck"
	"github.com/katalvlaran/extprune/core"
	"github.com/katalvlaran/extprune/exttree"
)

// Sentinel errors returned by New.
var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("ruleout: graph is nil")
	// ErrNilOracle is returned when the oracle argument is nil.
	ErrNilOracle = errors.New("ruleout: oracle is nil")
	// ErrNilTree is returned when the tree argument is nil.
	ErrNilTree = errors.New("ruleout: tree is nil")
	// ErrNilContainer is returned when the container argument is nil.
	ErrNilContainer = errors.New("ruleout: container is nil")
	// ErrEdgeOrientation is the panic value when neither endpoint of a
	// candidate edge lies in the tree as expected.
	ErrEdgeOrientation = errors.New("ruleout: edge does not touch the tree as expected")
)

// Orchestrator runs the rule-out decisions of one extension search. It
// reads and writes the extension tree's scratch state, consumes oracle
// distances, and keeps the Container's level stacks in lock-step with
// the driver's recursion.
type Orchestrator struct {
	g      *core.Graph
	oracle core.DistanceOracle
	tree   *exttree.Tree
	c      *Container
	bt     *bottleneck.Tracker
	pc     *pcState // nil unless the graph is prize-collecting
}

// New creates an orchestrator over the given graph, oracle, tree and
// container. Prize-collecting internals are armed automatically when the
// graph carries prizes.
func New(g *core.Graph, orc core.DistanceOracle, tree *exttree.Tree, c *Container) (*Orchestrator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if orc == nil {
		return nil, ErrNilOracle
	}
	if tree == nil {
		return nil, ErrNilTree
	}
	if c == nil {
		return nil, ErrNilContainer
	}

	bt, err := bottleneck.NewTracker(g, tree, orc)
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{g: g, oracle: orc, tree: tree, c: c, bt: bt}
	if g.IsPrizeCollecting() {
		o.pc = newPcState(g, tree)
	}

	return o, nil
}

// AddRootLevel installs the level corresponding to the extension tree's
// root: one-node MSTs on both archives and closed one-slot levels with
// no targets on both distance tables. Must be called exactly once, on
// empty caches, before the first LevelInit.
func (o *Orchestrator) AddRootLevel(root int) {
	mst := o.c.Comp.AddEmptyTop(1)
	mst.SetTrivial()
	o.c.Comp.CommitTop()

	mst = o.c.LevelBase.AddEmptyTop(1)
	mst.SetTrivial()
	o.c.LevelBase.CommitTop()

	o.c.Vertical.LevelAdd(1, 0)
	o.c.Vertical.EmptySlotSetBase(root)
	o.c.Vertical.EmptySlotSetFilled()
	o.c.Vertical.LevelClose()

	o.c.Horizontal.LevelAdd(1, 0)
	o.c.Horizontal.EmptySlotSetBase(root)
	o.c.Horizontal.EmptySlotSetFilled()
	o.c.Horizontal.LevelClose()
}

// atInitialComp reports whether the tree still consists of the root
// alone, i.e. the first component has not been added yet.
func (o *Orchestrator) atInitialComp() bool {
	return o.tree.NumLeaves() == 1
}

// specialDist returns the best known special distance from 'from' to
// 'to': the oracle's answer, undercut by a marked PC shortcut bound when
// one applies.
func (o *Orchestrator) specialDist(from, to int) core.Distance {
	sd := o.oracle.SpecialDistance(from, to)
	if o.pc != nil {
		if bound, ok := o.pc.shortcut(from, to); ok {
			if !sd.Known || bound < sd.Value {
				sd = core.KnownDistance(bound)
			}
		}
	}

	return sd
}

// orientCandidate splits a candidate extension edge into its tree
// endpoint (base) and its outside endpoint (head).
func (o *Orchestrator) orientCandidate(edge int) (base, head int) {
	u, v := o.g.EdgeEnds(edge)
	switch {
	case o.tree.Contains(u) && !o.tree.Contains(v):
		return u, v
	case o.tree.Contains(v) && !o.tree.Contains(u):
		return v, u
	default:
		panic(ErrEdgeOrientation)
	}
}

// compLeafOf returns the leaf endpoint of a component edge, the endpoint
// the tree reaches through that edge.
func (o *Orchestrator) compLeafOf(edge int) int {
	u, v := o.g.EdgeEnds(edge)
	if o.tree.ParentEdge(u) == edge {
		return u
	}
	if o.tree.ParentEdge(v) == edge {
		return v
	}
	panic(ErrEdgeOrientation)
}
