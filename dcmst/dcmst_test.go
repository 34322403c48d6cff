package dcmst_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/extprune/core"
	"github.com/katalvlaran/extprune/dcmst"
)

// primWeight computes the MST weight of the complete graph given by the
// symmetric cost matrix, the reference for the incremental builder.
func primWeight(costs [][]float64) float64 {
	n := len(costs)
	if n <= 1 {
		return 0
	}

	inTree := make([]bool, n)
	best := make([]float64, n)
	for i := range best {
		best[i] = costs[0][i]
	}
	inTree[0] = true

	var weight float64
	for k := 1; k < n; k++ {
		next := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (next < 0 || best[v] < best[next]) {
				next = v
			}
		}
		weight += best[next]
		inTree[next] = true
		for v := 0; v < n; v++ {
			if !inTree[v] && costs[next][v] < best[v] {
				best[v] = costs[next][v]
			}
		}
	}

	return weight
}

// buildIncremental grows an MST node by node from the cost matrix using
// staged archive entries.
func buildIncremental(t *testing.T, costs [][]float64) (*dcmst.Archive, *dcmst.Builder) {
	t.Helper()
	n := len(costs)

	// one node of spare capacity for look-ahead and in-place growth
	builder, err := dcmst.NewBuilder(n + 1)
	require.NoError(t, err)
	archive, err := dcmst.NewArchive(n+1, n+1)
	require.NoError(t, err)

	first := archive.AddEmptyTop(1)
	first.SetTrivial()
	archive.CommitTop()

	for v := 1; v < n; v++ {
		adj := builder.AdjcostBuffer()
		for u := 0; u < v; u++ {
			adj[u] = costs[v][u]
		}
		next := archive.AddEmptyTop(v + 1)
		builder.AddNode(archive.Top(), adj, next)
		archive.CommitTop()
	}

	return archive, builder
}

func TestTrivialAndTwoNodeWeights(t *testing.T) {
	archive, err := dcmst.NewArchive(4, 4)
	require.NoError(t, err)

	m := archive.AddEmptyTop(1)
	m.SetTrivial()
	archive.CommitTop()
	assert.Equal(t, 1, m.NumNodes())
	assert.Zero(t, m.Weight())

	m2 := archive.AddEmptyTop(2)
	m2.SetTwoNodes(3.5)
	archive.CommitTop()
	assert.InDelta(t, 3.5, m2.Weight(), 1e-12)

	assert.PanicsWithValue(t, dcmst.ErrNotTrivial, func() { m2.SetTrivial() })
	assert.PanicsWithValue(t, dcmst.ErrNotTwoNodes, func() { m.SetTwoNodes(1) })
}

func TestAddNodeMatchesPrim(t *testing.T) {
	fixed := [][]float64{
		{0, 3, 7, 9},
		{3, 0, 4, 8},
		{7, 4, 0, 5},
		{9, 8, 5, 0},
	}
	archive, _ := buildIncremental(t, fixed)
	assert.InDelta(t, primWeight(fixed), archive.Top().Weight(), 1e-9)

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(7)
		costs := make([][]float64, n)
		for i := range costs {
			costs[i] = make([]float64, n)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				c := 1 + 10*rng.Float64()
				costs[i][j] = c
				costs[j][i] = c
			}
		}

		archive, _ := buildIncremental(t, costs)
		assert.InDelta(t, primWeight(costs), archive.Top().Weight(), 1e-9, "trial %d n=%d", trial, n)
	}
}

func TestExtensionWeightIsNonMutatingLookAhead(t *testing.T) {
	costs := [][]float64{
		{0, 2, 6},
		{2, 0, 3},
		{6, 3, 0},
	}
	archive, builder := buildIncremental(t, costs)
	mst := archive.Top()
	before := mst.Weight()

	adj := builder.AdjcostBuffer()
	adj[0], adj[1], adj[2] = 4, 1, 7

	full := append([][]float64{}, costs...)
	for i := range full {
		full[i] = append(append([]float64{}, costs[i]...), adj[i])
	}
	full = append(full, []float64{4, 1, 7, 0})

	want := primWeight(full)
	got := builder.ExtensionWeight(mst, adj)
	assert.InDelta(t, want, got, 1e-9)
	assert.InDelta(t, before, mst.Weight(), 1e-12, "look-ahead must not mutate")
	assert.Equal(t, 3, mst.NumNodes())

	// repeatable
	adj2 := builder.AdjcostBuffer()
	adj2[0], adj2[1], adj2[2] = 4, 1, 7
	assert.InDelta(t, got, builder.ExtensionWeight(mst, adj2), 1e-12)
}

func TestAddNodeInplaceMatchesAddNode(t *testing.T) {
	costs := [][]float64{
		{0, 5, 2, 8},
		{5, 0, 3, 1},
		{2, 3, 0, 9},
		{8, 1, 9, 0},
	}
	archive, builder := buildIncremental(t, costs[:3])
	mst := archive.Top()
	adj := builder.AdjcostBuffer()
	adj[0], adj[1], adj[2] = costs[3][0], costs[3][1], costs[3][2]

	staged := archive.AddEmptyTop(4)
	builder.AddNode(mst, adj, staged)
	wantWeight := staged.Weight()
	archive.RemoveTop()

	adj = builder.AdjcostBuffer()
	adj[0], adj[1], adj[2] = costs[3][0], costs[3][1], costs[3][2]
	builder.AddNodeInplace(mst, adj)
	assert.Equal(t, 4, mst.NumNodes())
	assert.InDelta(t, wantWeight, mst.Weight(), 1e-12)
}

func TestFarawayAdjacencyClampsWeight(t *testing.T) {
	builder, err := dcmst.NewBuilder(3)
	require.NoError(t, err)
	archive, err := dcmst.NewArchive(3, 3)
	require.NoError(t, err)

	m := archive.AddEmptyTop(1)
	m.SetTrivial()
	archive.CommitTop()

	adj := builder.AdjcostBuffer()
	adj[0] = core.Faraway
	assert.InDelta(t, core.Faraway, builder.ExtensionWeight(archive.Top(), adj), 1)
}

func TestArchiveStageCommitDiscard(t *testing.T) {
	archive, err := dcmst.NewArchive(4, 4)
	require.NoError(t, err)
	assert.True(t, archive.IsEmpty())
	assert.PanicsWithValue(t, dcmst.ErrArchiveEmpty, func() { archive.Top() })
	assert.PanicsWithValue(t, dcmst.ErrNothingStaged, func() { archive.CommitTop() })

	first := archive.AddEmptyTop(1)
	first.SetTrivial()
	assert.True(t, archive.HasStaged())
	assert.True(t, archive.IsEmpty(), "staged entries are not committed")
	assert.PanicsWithValue(t, dcmst.ErrAlreadyStaged, func() { archive.AddEmptyTop(2) })
	assert.Same(t, first, archive.StagedTop())

	archive.CommitTop()
	assert.Equal(t, 1, archive.Len())
	assert.Same(t, first, archive.Top())

	// a discarded staged entry leaves the committed top untouched
	staged := archive.AddEmptyTop(2)
	assert.Same(t, first, archive.Top(), "Top skips the staged entry")
	_ = staged
	archive.RemoveTop()
	assert.Equal(t, 1, archive.Len())
	assert.Same(t, first, archive.Top())

	archive.RemoveTop()
	assert.True(t, archive.IsEmpty())
}

func TestBuilderValidation(t *testing.T) {
	_, err := dcmst.NewBuilder(0)
	assert.ErrorIs(t, err, dcmst.ErrBadMaxNodes)
	_, err = dcmst.NewArchive(0, 1)
	assert.ErrorIs(t, err, dcmst.ErrBadArchiveCap)

	builder, err := dcmst.NewBuilder(2)
	require.NoError(t, err)
	assert.Equal(t, 2, builder.MaxNodes())
	assert.Len(t, builder.AdjcostBuffer(), 2)
}
