// Package ruleout - shared cache container for one search.
package ruleout

import (
	"github.com/katalvlaran/extprune/core"
	"github.com/katalvlaran/extprune/dcmst"
	"github.com/katalvlaran/extprune/leveldist"
)

// MaxLeaves bounds the number of leaves an extension tree may grow; it
// sizes the MST builder and every adjacency buffer.
const MaxLeaves = 20

// MaxSdVisits caps the neighborhood scan of the prize-collecting
// shortcut marking; beyond it the scan simply stops and pruning gets
// weaker, never wrong.
const MaxSdVisits = 20

// depthHint preallocates the level stacks; they grow past it if a search
// runs deeper.
const depthHint = 10

// Container groups the cache structures of one extension search: the
// vertical and horizontal distance tables, the levelbase and component
// MST archives, and the shared MST builder. Created once per search
// start and reused across all extension steps.
type Container struct {
	Vertical   *leveldist.Table
	Horizontal *leveldist.Table
	LevelBase  *dcmst.Archive
	Comp       *dcmst.Archive
	Builder    *dcmst.Builder
}

// NewContainer allocates the caches for searches over g.
func NewContainer(g *core.Graph) (*Container, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	vertical, err := leveldist.NewTable(depthHint)
	if err != nil {
		return nil, err
	}
	horizontal, err := leveldist.NewTable(depthHint)
	if err != nil {
		return nil, err
	}
	levelbase, err := dcmst.NewArchive(MaxLeaves, depthHint)
	if err != nil {
		return nil, err
	}
	comp, err := dcmst.NewArchive(MaxLeaves, depthHint)
	if err != nil {
		return nil, err
	}
	builder, err := dcmst.NewBuilder(MaxLeaves)
	if err != nil {
		return nil, err
	}

	return &Container{
		Vertical:   vertical,
		Horizontal: horizontal,
		LevelBase:  levelbase,
		Comp:       comp,
		Builder:    builder,
	}, nil
}
