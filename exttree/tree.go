package exttree

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/extprune/core"
)

// Sentinel errors; the panic-only ones flag violated LIFO discipline.
var (
	// ErrNilGraph indicates a nil graph was passed to New.
	ErrNilGraph = errors.New("exttree: graph is nil")

	// ErrBadRoot indicates the root vertex id is out of range.
	ErrBadRoot = errors.New("exttree: root vertex out of range")

	// ErrNotLeaf indicates Extend was called with a base that is neither a
	// current leaf nor the not-yet-extended root (panic value).
	ErrNotLeaf = errors.New("exttree: extension base is not a leaf")

	// ErrVertexInTree indicates Extend would add a vertex that is already
	// part of the tree (panic value).
	ErrVertexInTree = errors.New("exttree: vertex already in tree")

	// ErrNothingToRetract indicates Retract was called on the bare root
	// (panic value).
	ErrNothingToRetract = errors.New("exttree: nothing to retract")

	// ErrScratchDirty indicates a bottleneck scratch cell was set twice
	// without being cleared in between (panic value).
	ErrScratchDirty = errors.New("exttree: bottleneck scratch cell already marked")
)

// undo records everything one Extend changed, so Retract can restore it.
type undo struct {
	vertex     int
	base       int
	basePos    int  // position base held in the leaf list, NoNode if kept
	baseDemote bool // base left the leaf list and joined the inner nodes
	prize      float64
}

// Tree is the extension tree of one search worker.
//
// All per-vertex arrays are sized to the graph's vertex count once, at
// construction. Vertices outside the tree have degree 0 and parent NoNode.
type Tree struct {
	g *core.Graph

	root   int
	depth  int
	cost   float64
	prizes float64 // summed prizes of inner PC terminals

	leaves []int
	inner  []int

	deg            []int
	parentNode     []int
	parentEdge     []int
	parentEdgeCost []float64

	// bottleneck scratch: unmarked everywhere except on a currently marked
	// root path (see the bottleneck package).
	scratch []core.Distance

	// equality-certificate side table.
	forbidden  mapset.Set[int]
	resetStack []int

	undoStack []undo
}

// New creates the single-vertex tree {root}.
func New(g *core.Graph, root int) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if root < 0 || root >= g.NumVertices() {
		return nil, ErrBadRoot
	}

	n := g.NumVertices()
	t := &Tree{
		g:              g,
		root:           root,
		leaves:         []int{root},
		deg:            make([]int, n),
		parentNode:     make([]int, n),
		parentEdge:     make([]int, n),
		parentEdgeCost: make([]float64, n),
		scratch:        make([]core.Distance, n),
		forbidden:      mapset.NewThreadUnsafeSet[int](),
	}
	for v := 0; v < n; v++ {
		t.parentNode[v] = core.NoNode
		t.parentEdge[v] = core.NoEdge
	}

	return t, nil
}

// Root returns the tree root vertex.
func (t *Tree) Root() int { return t.root }

// Depth returns the number of extension steps performed so far.
func (t *Tree) Depth() int { return t.depth }

// SetDepth is called by the search driver when it opens or closes a level.
func (t *Tree) SetDepth(depth int) { t.depth = depth }

// Cost returns the plain sum of tree edge costs.
func (t *Tree) Cost() float64 { return t.cost }

// InnerPrize returns the summed prizes of inner (non-leaf) PC terminals;
// zero for non-PC graphs.
func (t *Tree) InnerPrize() float64 { return t.prizes }

// ReducedCost is Cost minus the PC inner-prize credit: the value rule-out
// certificates compare against.
func (t *Tree) ReducedCost() float64 { return t.cost - t.prizes }

// NumLeaves returns the current leaf count.
func (t *Tree) NumLeaves() int { return len(t.leaves) }

// Leaves returns the ordered leaf list as a shared slice; callers must
// not mutate it.
func (t *Tree) Leaves() []int { return t.leaves }

// InnerNodes returns the inner (degree > 1) vertices; shared slice.
func (t *Tree) InnerNodes() []int { return t.inner }

// LeafPos returns the position of v in the leaf list, or -1.
func (t *Tree) LeafPos(v int) int {
	for i, leaf := range t.leaves {
		if leaf == v {
			return i
		}
	}

	return -1
}

// Deg returns the in-tree degree of v (0 if v is not in the tree).
func (t *Tree) Deg(v int) int { return t.deg[v] }

// Parent returns the parent vertex of v, or core.NoNode.
func (t *Tree) Parent(v int) int { return t.parentNode[v] }

// ParentEdge returns the edge id connecting v to its parent, or core.NoEdge.
func (t *Tree) ParentEdge(v int) int { return t.parentEdge[v] }

// ParentEdgeCost returns the cost of v's parent edge.
func (t *Tree) ParentEdgeCost(v int) float64 { return t.parentEdgeCost[v] }

// Contains reports whether v is part of the tree.
func (t *Tree) Contains(v int) bool { return t.deg[v] > 0 || v == t.root }

// Extend grows the tree by one edge from base to v. base must be a leaf,
// the bare root, or an inner vertex that left the leaf list while the
// same multi-edge component is being grown; v must be outside the tree.
// Panics with ErrNotLeaf / ErrVertexInTree on misuse: these are
// programming errors of the driver, never runtime conditions.
func (t *Tree) Extend(base, v, edge int, cost float64) {
	if t.deg[v] != 0 || v == t.root {
		panic(ErrVertexInTree)
	}

	basePos := t.LeafPos(base)
	if basePos < 0 && t.deg[base] < 2 {
		panic(ErrNotLeaf)
	}

	u := undo{vertex: v, base: base, basePos: core.NoNode}

	t.deg[base]++
	t.deg[v] = 1
	t.parentNode[v] = base
	t.parentEdge[v] = edge
	t.parentEdgeCost[v] = cost
	t.cost += cost

	// A leaf stays a leaf at degree 1 (the root as a path end); past that
	// it becomes an inner node and its PC prize starts counting as credit.
	// A base that already left the leaf list (second and later edges of a
	// component) is demoted exactly once, on its first sibling edge.
	if basePos >= 0 && t.deg[base] > 1 {
		t.removeLeafAt(basePos)
		t.inner = append(t.inner, base)
		u.basePos = basePos
		u.baseDemote = true

		if t.g.IsPrizeCollecting() && t.g.IsTerminal(base) {
			u.prize = t.g.Prize(base)
			t.prizes += u.prize
		}
	}

	t.leaves = append(t.leaves, v)
	t.undoStack = append(t.undoStack, u)
}

// removeLeafAt removes by shifting, preserving relative leaf order (the
// distance caches rely on this, see the package comment).
func (t *Tree) removeLeafAt(pos int) {
	copy(t.leaves[pos:], t.leaves[pos+1:])
	t.leaves = t.leaves[:len(t.leaves)-1]
}

// Retract undoes the most recent Extend. Strictly LIFO.
func (t *Tree) Retract() {
	if len(t.undoStack) == 0 {
		panic(ErrNothingToRetract)
	}

	u := t.undoStack[len(t.undoStack)-1]
	t.undoStack = t.undoStack[:len(t.undoStack)-1]

	v, base := u.vertex, u.base

	// The retracted vertex is always the most recent leaf.
	t.leaves = t.leaves[:len(t.leaves)-1]

	t.cost -= t.parentEdgeCost[v]
	t.deg[v] = 0
	t.deg[base]--
	t.parentNode[v] = core.NoNode
	t.parentEdge[v] = core.NoEdge
	t.parentEdgeCost[v] = 0

	if u.baseDemote {
		// base returns from the inner list to its old leaf position.
		t.inner = t.inner[:len(t.inner)-1]
		t.leaves = append(t.leaves, 0)
		copy(t.leaves[u.basePos+1:], t.leaves[u.basePos:])
		t.leaves[u.basePos] = base
		t.prizes -= u.prize
	}
}
