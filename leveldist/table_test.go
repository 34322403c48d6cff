package leveldist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/extprune/leveldist"
)

func newTable(t *testing.T) *leveldist.Table {
	t.Helper()

	tbl, err := leveldist.NewTable(8)
	require.NoError(t, err)

	return tbl
}

// fillSlot stages base with the given id/dist pairs and commits.
func fillSlot(tbl *leveldist.Table, base int, ids []int, dists []float64) {
	tbl.EmptySlotSetBase(base)
	copy(tbl.EmptySlotTargetIDs(), ids)
	copy(tbl.EmptySlotTargetDists(), dists)
	tbl.EmptySlotSetFilled()
}

func TestNewTableValidation(t *testing.T) {
	_, err := leveldist.NewTable(0)
	assert.ErrorIs(t, err, leveldist.ErrBadCapacity)

	tbl, err := leveldist.NewTable(4)
	require.NoError(t, err)
	assert.Zero(t, tbl.NLevels())
}

func TestLevelStackRoundTrip(t *testing.T) {
	tbl := newTable(t)

	tbl.LevelAdd(1, 0)
	tbl.LevelClose()
	require.Equal(t, 1, tbl.NLevels())

	tbl.LevelAdd(3, 2)
	fillSlot(tbl, 10, []int{1, 2}, []float64{1.5, 2.5})
	fillSlot(tbl, 11, []int{1, 2}, []float64{3.5, 4.5})
	tbl.LevelClose()

	require.Equal(t, 2, tbl.NLevels())
	assert.Equal(t, 1, tbl.TopLevel())
	assert.Equal(t, 2, tbl.LevelNTargets(1))
	assert.Equal(t, 2, tbl.LevelNSlots(1))

	assert.InDelta(t, 2.5, tbl.TopTargetDist(10, 2), 1e-12)
	assert.InDelta(t, 3.5, tbl.TopTargetDist(11, 1), 1e-12)
	assert.Equal(t, []int{1, 2}, tbl.LevelTargetIDs(1, 10))
	assert.Equal(t, []float64{3.5, 4.5}, tbl.TopTargetDists(11))

	tbl.LevelRemove()
	tbl.LevelRemove()
	assert.Zero(t, tbl.NLevels())
}

func TestEmptySlotRemoveTargetKeepsOrder(t *testing.T) {
	tbl := newTable(t)
	tbl.LevelAdd(1, 2)

	// stage three entries into a two-target slot, then drop the middle one
	tbl.EmptySlotSetBase(7)
	copy(tbl.EmptySlotTargetIDs(), []int{4, 7, 9})
	copy(tbl.EmptySlotTargetDists(), []float64{0.5, 99, 1.5})
	tbl.EmptySlotRemoveTarget(1)
	tbl.EmptySlotSetFilled()
	tbl.LevelClose()

	assert.Equal(t, []int{4, 9}, tbl.LevelTargetIDs(0, 7))
	assert.Equal(t, []float64{0.5, 1.5}, tbl.TopTargetDists(7))
}

func TestEmptySlotResetReusesSlot(t *testing.T) {
	tbl := newTable(t)
	tbl.LevelAdd(2, 1)

	tbl.EmptySlotSetBase(3)
	tbl.EmptySlotReset()

	fillSlot(tbl, 5, []int{1}, []float64{2})
	tbl.LevelClose()

	assert.Equal(t, 1, tbl.LevelNSlots(0))
	assert.False(t, tbl.LevelContainsBase(0, 3))
	assert.True(t, tbl.LevelContainsBase(0, 5))
}

func TestPartiallyFilledLevelCloses(t *testing.T) {
	tbl := newTable(t)
	tbl.LevelAdd(4, 1)
	fillSlot(tbl, 1, []int{9}, []float64{1})
	tbl.LevelClose()

	assert.Equal(t, 1, tbl.LevelNSlots(0))
	assert.True(t, tbl.LevelContainsBase(0, 1))
	assert.False(t, tbl.LevelContainsBase(0, 2))
}

func TestProtocolMisusePanics(t *testing.T) {
	tbl := newTable(t)

	assert.PanicsWithValue(t, leveldist.ErrNoLevel, func() { tbl.TopLevel() })
	assert.PanicsWithValue(t, leveldist.ErrNoLevel, func() { tbl.LevelRemove() })
	assert.PanicsWithValue(t, leveldist.ErrNoLevel, func() { tbl.EmptySlotSetBase(0) })

	tbl.LevelAdd(1, 1)
	assert.PanicsWithValue(t, leveldist.ErrLevelOpen, func() { tbl.LevelAdd(1, 1) })
	assert.PanicsWithValue(t, leveldist.ErrSlotUnclaimed, func() { tbl.EmptySlotTargetIDs() })
	assert.PanicsWithValue(t, leveldist.ErrSlotUnclaimed, func() { tbl.EmptySlotSetFilled() })

	fillSlot(tbl, 2, []int{5}, []float64{1})
	assert.PanicsWithValue(t, leveldist.ErrNoEmptySlot, func() { tbl.EmptySlotSetBase(3) })

	tbl.LevelClose()
	assert.PanicsWithValue(t, leveldist.ErrLevelClosed, func() { tbl.EmptySlotSetBase(3) })
}

func TestMissingQueriesPanic(t *testing.T) {
	tbl := newTable(t)
	tbl.LevelAdd(1, 1)
	fillSlot(tbl, 2, []int{5}, []float64{1})
	tbl.LevelClose()

	assert.PanicsWithValue(t, leveldist.ErrBaseMissing, func() { tbl.TopTargetDist(9, 5) })
	assert.PanicsWithValue(t, leveldist.ErrBaseMissing, func() { tbl.TopTargetDists(9) })
	assert.PanicsWithValue(t, leveldist.ErrTargetMissing, func() { tbl.TopTargetDist(2, 6) })
}
