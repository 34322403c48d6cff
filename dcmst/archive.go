package dcmst

import "errors"

// Archive errors and panic values.
var (
	// ErrBadArchiveCap is returned by NewArchive for non-positive hints.
	ErrBadArchiveCap = errors.New("dcmst: archive capacity must be positive")
	// ErrArchiveEmpty is the panic value for Top/RemoveTop on an empty archive.
	ErrArchiveEmpty = errors.New("dcmst: archive is empty")
	// ErrAlreadyStaged is the panic value for staging over a staged entry.
	ErrAlreadyStaged = errors.New("dcmst: entry already staged")
	// ErrNothingStaged is the panic value for StagedTop/CommitTop with no staged entry.
	ErrNothingStaged = errors.New("dcmst: no staged entry")
)

// Archive is a LIFO stack of Msts mirroring the extension search. New
// entries pass through a staged state: AddEmptyTop allocates the shell,
// the caller fills it via the Builder, and CommitTop makes it the
// committed top. Top always ignores the staged entry, so a rule-out can
// drop it with RemoveTop and leave the stack as it was.
type Archive struct {
	maxNodes int
	msts     []*Mst
	staged   bool
}

// NewArchive creates an empty archive whose entries hold at most
// maxNodes nodes. capLevels is a preallocation hint for the expected
// stack depth.
func NewArchive(maxNodes, capLevels int) (*Archive, error) {
	if maxNodes < 1 || capLevels < 1 {
		return nil, ErrBadArchiveCap
	}

	return &Archive{maxNodes: maxNodes, msts: make([]*Mst, 0, capLevels)}, nil
}

// Len returns the number of committed entries.
func (a *Archive) Len() int {
	if a.staged {
		return len(a.msts) - 1
	}

	return len(a.msts)
}

// IsEmpty reports whether no entry is committed.
func (a *Archive) IsEmpty() bool { return a.Len() == 0 }

// HasStaged reports whether an entry is staged but not committed.
func (a *Archive) HasStaged() bool { return a.staged }

// AddEmptyTop stages a new top entry sized for numNodes nodes, with
// spare capacity for in-place growth up to the archive's node bound,
// and returns it for filling. Panics with ErrAlreadyStaged when a
// staged entry is pending.
func (a *Archive) AddEmptyTop(numNodes int) *Mst {
	if a.staged {
		panic(ErrAlreadyStaged)
	}
	if numNodes > a.maxNodes {
		panic(ErrTooManyNodes)
	}

	m := newMst(numNodes, a.maxNodes)
	a.msts = append(a.msts, m)
	a.staged = true

	return m
}

// StagedTop returns the staged entry. Panics with ErrNothingStaged.
func (a *Archive) StagedTop() *Mst {
	if !a.staged {
		panic(ErrNothingStaged)
	}

	return a.msts[len(a.msts)-1]
}

// CommitTop turns the staged entry into the committed top.
func (a *Archive) CommitTop() {
	if !a.staged {
		panic(ErrNothingStaged)
	}
	a.staged = false
}

// Top returns the most recent committed entry, skipping a staged one.
// Panics with ErrArchiveEmpty.
func (a *Archive) Top() *Mst {
	n := a.Len()
	if n == 0 {
		panic(ErrArchiveEmpty)
	}

	return a.msts[n-1]
}

// RemoveTop drops the staged entry if one is pending, otherwise pops
// the committed top.
func (a *Archive) RemoveTop() {
	if len(a.msts) == 0 {
		panic(ErrArchiveEmpty)
	}
	a.msts = a.msts[:len(a.msts)-1]
	a.staged = false
}
