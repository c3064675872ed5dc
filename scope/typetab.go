package scope

import (
	"errors"

	"lait/types"
)

// TypeEntry is one recorded type of a slot: the type and the nesting depth at
// which it was recorded.
type TypeEntry struct {
	Type  types.Type
	Depth int
}

// Errors returned by type table operations.
var (
	ErrNoSlot        = errors.New("no such slot")
	ErrNoType        = errors.New("no type visible at this depth")
	ErrReadOnlyScope = errors.New("ancestor scopes are read-only")
)

// TypeTable is the parallel of a SymbolTable: it stores for each slot an
// ordered history of type entries.
type TypeTable struct {
	// slots holds the local type histories indexed by slot.
	slots [][]TypeEntry

	// parent is the snapshot of the enclosing scope's table.
	parent *TypeTable
}

// NewTypeTable creates a new, empty type table layered in front of the given
// ancestor snapshot (which may be nil).
func NewTypeTable(parent *TypeTable) *TypeTable {
	return &TypeTable{parent: parent}
}

// Grow appends one empty type history.  It must be called exactly once for
// every slot allocated in the matching symbol table.
func (tt *TypeTable) Grow() {
	tt.slots = append(tt.slots, nil)
}

// SetType appends an entry to the history of a slot.  Only the local layer
// can be written: a non-zero `levelsUp` fails with ErrReadOnlyScope.
func (tt *TypeTable) SetType(slot, levelsUp int, e TypeEntry) error {
	t, err := tt.ancestor(slot, levelsUp)
	if err != nil {
		return err
	} else if levelsUp > 0 {
		return ErrReadOnlyScope
	}

	t.slots[slot] = append(t.slots[slot], e)
	return nil
}

// GetType returns the most specific type of a slot visible from the given
// query depth: among the entries recorded at a depth no greater than the query
// depth, the deepest wins and ties go to the latest.
func (tt *TypeTable) GetType(slot, levelsUp, depth int) (types.Type, error) {
	t, err := tt.ancestor(slot, levelsUp)
	if err != nil {
		return nil, err
	}

	var best *TypeEntry
	for i, e := range t.slots[slot] {
		if e.Depth <= depth && (best == nil || e.Depth >= best.Depth) {
			best = &t.slots[slot][i]
		}
	}

	if best == nil {
		return nil, ErrNoType
	}

	return best.Type, nil
}

// History returns a copy of the local history of a slot.
func (tt *TypeTable) History(slot int) []TypeEntry {
	if slot < 0 || slot >= len(tt.slots) {
		return nil
	}

	h := make([]TypeEntry, len(tt.slots[slot]))
	copy(h, tt.slots[slot])
	return h
}

// Len returns the number of local slots.
func (tt *TypeTable) Len() int {
	return len(tt.slots)
}

// ancestor walks up `levelsUp` ancestor links and checks that the slot exists
// in the table found there.
func (tt *TypeTable) ancestor(slot, levelsUp int) (*TypeTable, error) {
	t := tt
	for i := 0; i < levelsUp && t != nil; i++ {
		t = t.parent
	}

	if t == nil || slot < 0 || slot >= len(t.slots) {
		return nil, ErrNoSlot
	}

	return t, nil
}

// snapshot returns an independent copy of the local layer sharing the same
// ancestor.
func (tt *TypeTable) snapshot() *TypeTable {
	ntt := &TypeTable{
		slots:  make([][]TypeEntry, len(tt.slots)),
		parent: tt.parent,
	}

	for i, h := range tt.slots {
		ntt.slots[i] = make([]TypeEntry, len(h))
		copy(ntt.slots[i], h)
	}

	return ntt
}
