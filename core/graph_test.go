package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/extprune/core"
)

// buildSquare constructs the 4-vertex square 0-1-2-3-0 with unit costs
// plus one diagonal 0-2 of cost 5, finalized and ready for queries.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(4)
	require.NoError(t, err)

	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		_, err = g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	_, err = g.AddEdge(0, 2, 5)
	require.NoError(t, err)

	require.NoError(t, g.Finalize())

	return g
}

func TestNewGraph_Validation(t *testing.T) {
	// Zero or negative vertex counts are rejected.
	_, err := core.NewGraph(0)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)

	_, err = core.NewGraph(-3)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)
}

func TestAddEdge_Validation(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	// Endpoints outside [0, n).
	_, err = g.AddEdge(0, 2, 1)
	assert.ErrorIs(t, err, core.ErrVertexRange)

	// Negative costs are rejected.
	_, err = g.AddEdge(0, 1, -1)
	assert.ErrorIs(t, err, core.ErrNegativeCost)

	// Edge ids are dense from zero.
	id, err := g.AddEdge(0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	// No mutation after Finalize.
	require.NoError(t, g.Finalize())
	_, err = g.AddEdge(0, 1, 1)
	assert.ErrorIs(t, err, core.ErrFinalized)
	assert.ErrorIs(t, g.Finalize(), core.ErrFinalized)
}

func TestGraph_Adjacency(t *testing.T) {
	g := buildSquare(t)

	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 5, g.NumEdges())

	// Vertex 0 touches edges to 1, 3 and the diagonal to 2.
	assert.Equal(t, 3, g.Degree(0))
	assert.Equal(t, 2, g.Degree(1))

	// Each arc must carry the cost and id of its underlying edge.
	heads := map[int]float64{}
	for _, a := range g.Neighbors(0) {
		heads[a.Head] = a.Cost
		u, v := g.EdgeEnds(a.Edge)
		assert.True(t, u == 0 || v == 0, "arc edge must be incident to 0")
		assert.Equal(t, g.EdgeCost(a.Edge), a.Cost)
	}
	assert.Equal(t, map[int]float64{1: 1, 3: 1, 2: 5}, heads)
}

func TestGraph_QueryBeforeFinalizePanics(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	// Adjacency before Finalize is a programming error.
	assert.PanicsWithValue(t, core.ErrNotFinalized, func() { g.Neighbors(0) })
}

func TestGraph_PrizeCollecting(t *testing.T) {
	g, err := core.NewGraph(3, core.WithPrizeCollecting())
	require.NoError(t, err)

	require.NoError(t, g.SetPrize(1, 2.5))
	require.NoError(t, g.SetTerminal(1))
	require.NoError(t, g.Finalize())

	assert.True(t, g.IsPrizeCollecting())
	assert.Equal(t, 2.5, g.Prize(1))
	assert.True(t, g.IsTerminal(1))
	assert.False(t, g.IsTerminal(0))

	// Non-PC graphs report zero prizes and reject prize mutation.
	plain, err := core.NewGraph(2)
	require.NoError(t, err)
	assert.ErrorIs(t, plain.SetPrize(0, 1), core.ErrNotPrizeMode)
	assert.ErrorIs(t, plain.SetTerminal(0), core.ErrNotPrizeMode)
	assert.Zero(t, plain.Prize(0))
}
