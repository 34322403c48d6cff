// Package dcmst - compact CSR tree representation.
package dcmst

import (
	"errors"

	"github.com/katalvlaran/extprune/core"
)

// Sentinel panic values for tree shape violations.
var (
	// ErrNotTrivial is the panic value for SetTrivial on a tree with edges.
	ErrNotTrivial = errors.New("dcmst: tree has more than one node")
	// ErrNotTwoNodes is the panic value for SetTwoNodes on a wrongly sized tree.
	ErrNotTwoNodes = errors.New("dcmst: tree does not have exactly two nodes")
)

// Mst is a tree over dense local node ids 0..NumNodes-1 in CSR form.
// Arcs are stored twice, once per direction. The arrays are sized at
// staging time and never reallocated; AddNodeInplace grows into the
// spare capacity.
type Mst struct {
	nnodes int
	start  []int
	head   []int
	cost   []float64
}

// newMst allocates a CSR tree shell with capacity for capNodes nodes.
func newMst(numNodes, capNodes int) *Mst {
	capEdges := 0
	if capNodes > 1 {
		capEdges = 2 * (capNodes - 1)
	}

	return &Mst{
		nnodes: numNodes,
		start:  make([]int, capNodes+1),
		head:   make([]int, capEdges),
		cost:   make([]float64, capEdges),
	}
}

// NumNodes returns the number of nodes.
func (m *Mst) NumNodes() int { return m.nnodes }

// numArcs returns the number of directed arcs of the current tree.
func (m *Mst) numArcs() int {
	if m.nnodes <= 1 {
		return 0
	}

	return 2 * (m.nnodes - 1)
}

// Weight returns the total tree weight, the half-sum of directed arc
// costs, clamped to core.Faraway.
func (m *Mst) Weight() float64 {
	var weight float64
	for _, c := range m.cost[:m.numArcs()] {
		weight += c
	}
	weight /= 2

	if core.GT(weight, core.Faraway) {
		return core.Faraway
	}

	return weight
}

// SetTrivial initializes an edgeless tree. Panics with ErrNotTrivial on
// more than one node.
func (m *Mst) SetTrivial() {
	if m.nnodes > 1 {
		panic(ErrNotTrivial)
	}
	for i := 0; i <= m.nnodes; i++ {
		m.start[i] = 0
	}
}

// CopyFrom overwrites m with src's tree. m must have capacity for src's
// nodes; staged archive entries of the same node count always do.
func (m *Mst) CopyFrom(src *Mst) {
	if len(m.start) <= src.nnodes || len(m.head) < src.numArcs() {
		panic(ErrTooManyNodes)
	}
	m.nnodes = src.nnodes
	copy(m.start, src.start[:src.nnodes+1])
	copy(m.head, src.head[:src.numArcs()])
	copy(m.cost, src.cost[:src.numArcs()])
}

// SetTwoNodes initializes the two-node tree with the given edge cost.
// Panics with ErrNotTwoNodes unless NumNodes is 2.
func (m *Mst) SetTwoNodes(edgeCost float64) {
	if m.nnodes != 2 {
		panic(ErrNotTwoNodes)
	}
	m.start[0], m.start[1], m.start[2] = 0, 1, 2
	m.head[0], m.head[1] = 1, 0
	m.cost[0], m.cost[1] = edgeCost, edgeCost
}
