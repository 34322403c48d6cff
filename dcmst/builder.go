package dcmst

import (
	"errors"

	"github.com/katalvlaran/extprune/core"
)

// Builder errors and panic values.
var (
	// ErrBadMaxNodes is returned by NewBuilder for maxNodes < 1.
	ErrBadMaxNodes = errors.New("dcmst: maxNodes must be positive")
	// ErrTooManyNodes is the panic value when an insertion would exceed
	// the builder's node bound.
	ErrTooManyNodes = errors.New("dcmst: node bound exceeded")
	// ErrSizeMismatch is the panic value when the output tree is not
	// sized for exactly one node more than the input.
	ErrSizeMismatch = errors.New("dcmst: output tree size mismatch")
)

// cedge is one undirected tree edge in the builder's scratch store.
type cedge struct {
	tail, head int
	cost       float64
}

// Builder inserts single nodes into Msts of bounded size. It owns the
// scratch arrays reused across insertions, so one Builder serves a whole
// search but must not be shared between concurrent searches.
type Builder struct {
	maxNodes  int
	edgestore []cedge
	nodemark  []bool
	adjcosts  []float64
}

// NewBuilder creates a builder for trees of at most maxNodes nodes.
func NewBuilder(maxNodes int) (*Builder, error) {
	if maxNodes < 1 {
		return nil, ErrBadMaxNodes
	}

	return &Builder{
		maxNodes:  maxNodes,
		edgestore: make([]cedge, maxNodes),
		nodemark:  make([]bool, maxNodes),
		adjcosts:  make([]float64, maxNodes),
	}, nil
}

// MaxNodes returns the builder's node bound.
func (b *Builder) MaxNodes() int { return b.maxNodes }

// AdjcostBuffer returns the shared adjacency-cost scratch slice of
// length MaxNodes. Callers fill the first n entries before an insertion
// into an n-node tree; unreachable nodes get core.Faraway. The buffer is
// invalidated by the next call that takes adjacency costs.
func (b *Builder) AdjcostBuffer() []float64 { return b.adjcosts }

// insert walks the old tree from root and fills b.edgestore with the
// edges of the new MST, except the final connecting edge which is left
// in maxPathEdge. For every child subtree the recursion returns the
// maximum edge on the tree path from the new node's best attachment in
// that subtree; the cheaper of "keep the old edge" and "swap it for the
// path maximum" wins.
func (b *Builder) insert(org *Mst, adjcosts []float64, root int, maxPathEdge *cedge, nedges *int) {
	root2new := cedge{tail: root, head: org.nnodes, cost: adjcosts[root]}

	for i := org.start[root]; i != org.start[root+1]; i++ {
		w := org.head[i]
		if b.nodemark[w] {
			continue
		}
		costRootW := org.cost[i]
		b.nodemark[w] = true
		b.insert(org, adjcosts, w, maxPathEdge, nedges)

		if maxPathEdge.cost < costRootW {
			b.edgestore[*nedges] = *maxPathEdge
			*nedges++
			if costRootW < root2new.cost {
				root2new = cedge{tail: root, head: w, cost: costRootW}
			}
		} else {
			b.edgestore[*nedges] = cedge{tail: root, head: w, cost: costRootW}
			*nedges++
			if maxPathEdge.cost < root2new.cost {
				root2new = *maxPathEdge
			}
		}
	}

	*maxPathEdge = root2new
}

// addToStore runs the insertion of a node with the given adjacency costs
// into org and leaves the new tree's org.nnodes edges in b.edgestore.
func (b *Builder) addToStore(org *Mst, adjcosts []float64) {
	if org.nnodes >= b.maxNodes {
		panic(ErrTooManyNodes)
	}

	b.nodemark[0] = true
	for i := 1; i < org.nnodes; i++ {
		b.nodemark[i] = false
	}

	maxPathEdge := cedge{tail: core.NoNode, head: core.NoNode, cost: -1}
	nedges := 0
	b.insert(org, adjcosts, 0, &maxPathEdge, &nedges)

	b.edgestore[nedges] = maxPathEdge
}

// storeToCSR rebuilds out's CSR arrays from the edge store by counting
// sort over both arc directions.
func (b *Builder) storeToCSR(out *Mst) {
	nedges := out.nnodes - 1
	start := out.start

	for i := 0; i <= out.nnodes; i++ {
		start[i] = 0
	}
	for i := 0; i < nedges; i++ {
		start[b.edgestore[i].tail]++
		start[b.edgestore[i].head]++
	}
	for i := 1; i <= out.nnodes; i++ {
		start[i] += start[i-1]
	}
	for i := 0; i < nedges; i++ {
		e := &b.edgestore[i]

		start[e.tail]--
		out.head[start[e.tail]] = e.head
		out.cost[start[e.tail]] = e.cost

		start[e.head]--
		out.head[start[e.head]] = e.tail
		out.cost[start[e.head]] = e.cost
	}
}

// AddNode computes the MST of parent's nodes plus one new node, given
// the new node's adjacency costs to nodes 0..parent.NumNodes-1, and
// writes it to out. out must have been staged for exactly one node more
// than parent.
func (b *Builder) AddNode(parent *Mst, adjcosts []float64, out *Mst) {
	if out.nnodes != parent.nnodes+1 {
		panic(ErrSizeMismatch)
	}

	b.addToStore(parent, adjcosts)
	b.storeToCSR(out)
}

// AddNodeInplace grows mst by one node. mst must carry spare capacity
// for it, which staged archive entries always do.
func (b *Builder) AddNodeInplace(mst *Mst, adjcosts []float64) {
	b.addToStore(mst, adjcosts)
	mst.nnodes++
	if len(mst.start) <= mst.nnodes || len(mst.head) < mst.numArcs() {
		panic(ErrTooManyNodes)
	}
	b.storeToCSR(mst)
}

// ExtensionWeight returns the weight of the MST that AddNode would
// produce, without materializing it. mst is left untouched. The result
// is clamped to core.Faraway.
func (b *Builder) ExtensionWeight(mst *Mst, adjcosts []float64) float64 {
	b.addToStore(mst, adjcosts)

	var weight float64
	for i := 0; i < mst.nnodes; i++ {
		weight += b.edgestore[i].cost
	}

	if core.GT(weight, core.Faraway) {
		return core.Faraway
	}

	return weight
}
