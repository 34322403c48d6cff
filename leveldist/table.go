// Package leveldist - stack of per-level base/target distance slots.
package leveldist

import (
	"errors"

	"github.com/katalvlaran/extprune/core"
)

// Sentinel errors. NewTable returns ErrBadCapacity; the rest are panic
// values raised on protocol misuse or queries for absent data.
var (
	// ErrBadCapacity is returned for non-positive capacity hints.
	ErrBadCapacity = errors.New("leveldist: capacity must be positive")
	// ErrNoLevel is the panic value for operations on an empty table.
	ErrNoLevel = errors.New("leveldist: no level on the stack")
	// ErrLevelClosed is the panic value for slot operations on a closed level.
	ErrLevelClosed = errors.New("leveldist: top level is closed")
	// ErrLevelOpen is the panic value for pushing or querying over an unclosed level.
	ErrLevelOpen = errors.New("leveldist: top level is still open")
	// ErrNoEmptySlot is the panic value when every slot of the top level is filled.
	ErrNoEmptySlot = errors.New("leveldist: level has no empty slot")
	// ErrSlotUnclaimed is the panic value for staging into a slot with no base set.
	ErrSlotUnclaimed = errors.New("leveldist: empty slot has no base")
	// ErrBaseMissing is the panic value for queries with an unknown base vertex.
	ErrBaseMissing = errors.New("leveldist: base vertex not in level")
	// ErrTargetMissing is the panic value for queries with an unknown target vertex.
	ErrTargetMissing = errors.New("leveldist: target vertex not in slot")
)

// slot pairs a base vertex with its staged target ids and distances. The
// backing slices are one entry longer than the level's target count.
type slot struct {
	base  int
	ids   []int
	dists []float64
}

// level is one stack frame of a Table.
type level struct {
	maxSlots int
	ntargets int
	nslots   int // committed slots; slots[nslots] is the empty one
	closed   bool
	slots    []slot
}

// Table is a LIFO stack of distance levels. A Table is single-threaded;
// the search that owns it pushes and pops levels strictly in reverse
// order of creation.
type Table struct {
	levels []level
}

// NewTable creates an empty table. maxLevels is a preallocation hint for
// the expected search depth.
func NewTable(maxLevels int) (*Table, error) {
	if maxLevels < 1 {
		return nil, ErrBadCapacity
	}

	return &Table{levels: make([]level, 0, maxLevels)}, nil
}

// NLevels returns the number of levels on the stack.
func (t *Table) NLevels() int { return len(t.levels) }

// TopLevel returns the index of the top level. Panics on an empty table.
func (t *Table) TopLevel() int {
	if len(t.levels) == 0 {
		panic(ErrNoLevel)
	}

	return len(t.levels) - 1
}

// LevelNTargets returns the per-slot target count of the given level.
func (t *Table) LevelNTargets(lvl int) int { return t.levels[lvl].ntargets }

// LevelNSlots returns the number of committed slots of the given level.
func (t *Table) LevelNSlots(lvl int) int { return t.levels[lvl].nslots }

// LevelAdd pushes a new open level with room for maxSlots slots of
// targetsPerSlot targets each. The previous top level must be closed.
// targetsPerSlot may be zero (a root level stores no distances).
func (t *Table) LevelAdd(maxSlots, targetsPerSlot int) {
	if len(t.levels) > 0 && !t.levels[len(t.levels)-1].closed {
		panic(ErrLevelOpen)
	}

	lvl := level{
		maxSlots: maxSlots,
		ntargets: targetsPerSlot,
		slots:    make([]slot, maxSlots),
	}
	for i := range lvl.slots {
		lvl.slots[i] = slot{
			base:  core.NoNode,
			ids:   make([]int, targetsPerSlot+1),
			dists: make([]float64, targetsPerSlot+1),
		}
	}
	t.levels = append(t.levels, lvl)
}

// topOpen returns the top level, which must exist and be open.
func (t *Table) topOpen() *level {
	if len(t.levels) == 0 {
		panic(ErrNoLevel)
	}
	lvl := &t.levels[len(t.levels)-1]
	if lvl.closed {
		panic(ErrLevelClosed)
	}

	return lvl
}

// emptySlot returns the staging slot of the open top level.
func (t *Table) emptySlot() *slot {
	lvl := t.topOpen()
	if lvl.nslots == lvl.maxSlots {
		panic(ErrNoEmptySlot)
	}

	return &lvl.slots[lvl.nslots]
}

// EmptySlotSetBase claims the empty slot of the top level for base.
func (t *Table) EmptySlotSetBase(base int) {
	s := t.emptySlot()
	s.base = base
}

// EmptySlotTargetIDs returns the staging target-id slice of the claimed
// empty slot, with one extra scratch entry beyond the level's target
// count. The caller writes ids by index.
func (t *Table) EmptySlotTargetIDs() []int {
	s := t.emptySlot()
	if s.base == core.NoNode {
		panic(ErrSlotUnclaimed)
	}

	return s.ids
}

// EmptySlotTargetDists returns the staging distance slice, parallel to
// EmptySlotTargetIDs.
func (t *Table) EmptySlotTargetDists() []float64 {
	s := t.emptySlot()
	if s.base == core.NoNode {
		panic(ErrSlotUnclaimed)
	}

	return s.dists
}

// EmptySlotRemoveTarget deletes the staged entry at pos, shifting later
// entries down. Used after a vertical fill to drop the extending base's
// own entry while preserving leaf order.
func (t *Table) EmptySlotRemoveTarget(pos int) {
	s := t.emptySlot()
	if s.base == core.NoNode {
		panic(ErrSlotUnclaimed)
	}
	copy(s.ids[pos:], s.ids[pos+1:])
	copy(s.dists[pos:], s.dists[pos+1:])
}

// EmptySlotSetFilled commits the claimed slot: its first ntargets staged
// entries become queryable and the next slot becomes the empty one.
func (t *Table) EmptySlotSetFilled() {
	lvl := t.topOpen()
	if lvl.nslots == lvl.maxSlots {
		panic(ErrNoEmptySlot)
	}
	if lvl.slots[lvl.nslots].base == core.NoNode {
		panic(ErrSlotUnclaimed)
	}
	lvl.nslots++
}

// EmptySlotReset abandons the claimed slot, leaving it reusable. A no-op
// when the slot was never claimed.
func (t *Table) EmptySlotReset() {
	lvl := t.topOpen()
	if lvl.nslots == lvl.maxSlots {
		return
	}
	lvl.slots[lvl.nslots].base = core.NoNode
}

// LevelClose finalizes the top level; its slots become queryable and no
// further fills are accepted. Closing with fewer than maxSlots committed
// slots is fine, ruled-out candidates leave gaps.
func (t *Table) LevelClose() {
	lvl := t.topOpen()
	if lvl.nslots < lvl.maxSlots {
		lvl.slots[lvl.nslots].base = core.NoNode
	}
	lvl.closed = true
}

// LevelRemove pops the top level. The level may be open (a rule-out can
// abandon a level mid-build) or closed (normal backtrack).
func (t *Table) LevelRemove() {
	if len(t.levels) == 0 {
		panic(ErrNoLevel)
	}
	t.levels = t.levels[:len(t.levels)-1]
}

// LevelContainsBase reports whether some committed slot of level lvl has
// the given base.
func (t *Table) LevelContainsBase(lvl, base int) bool {
	return t.levels[lvl].slotIndex(base) >= 0
}

func (l *level) slotIndex(base int) int {
	for i := 0; i < l.nslots; i++ {
		if l.slots[i].base == base {
			return i
		}
	}

	return -1
}

// LevelTargetIDs returns the committed target ids of base's slot in level
// lvl. Panics with ErrBaseMissing when base has no slot there.
func (t *Table) LevelTargetIDs(lvl, base int) []int {
	l := &t.levels[lvl]
	i := l.slotIndex(base)
	if i < 0 {
		panic(ErrBaseMissing)
	}

	return l.slots[i].ids[:l.ntargets]
}

// LevelTargetDists returns the committed distances of base's slot,
// parallel to LevelTargetIDs.
func (t *Table) LevelTargetDists(lvl, base int) []float64 {
	l := &t.levels[lvl]
	i := l.slotIndex(base)
	if i < 0 {
		panic(ErrBaseMissing)
	}

	return l.slots[i].dists[:l.ntargets]
}

// TargetDist returns the stored distance from base to target in level
// lvl. Panics with ErrBaseMissing or ErrTargetMissing.
func (t *Table) TargetDist(lvl, base, target int) float64 {
	l := &t.levels[lvl]
	si := l.slotIndex(base)
	if si < 0 {
		panic(ErrBaseMissing)
	}
	s := &l.slots[si]
	for i := 0; i < l.ntargets; i++ {
		if s.ids[i] == target {
			return s.dists[i]
		}
	}

	panic(ErrTargetMissing)
}

// TopTargetDist is TargetDist on the top level.
func (t *Table) TopTargetDist(base, target int) float64 {
	return t.TargetDist(t.TopLevel(), base, target)
}

// TopTargetDists is LevelTargetDists on the top level.
func (t *Table) TopTargetDists(base int) []float64 {
	return t.LevelTargetDists(t.TopLevel(), base)
}
