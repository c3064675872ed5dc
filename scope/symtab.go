package scope

// SymbolTable maps the names declared in one scope to their slots.  Slots are
// assigned densely from zero in declaration order.  Names not declared locally
// are looked up in the ancestor snapshot.
type SymbolTable struct {
	// names maps each local name to its slot.
	names map[string]int

	// order lists the local names by slot.
	order []string

	// parent is the snapshot of the enclosing scope's table.  This is nil for
	// the global scope.  It is never mutated through this table.
	parent *SymbolTable
}

// NewSymbolTable creates a new, empty symbol table layered in front of the
// given ancestor snapshot (which may be nil).
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		names:  make(map[string]int),
		parent: parent,
	}
}

// AddName returns the local slot for the given name, allocating a new slot if
// the name is not declared locally.  The second result indicates whether a
// slot was allocated.
func (st *SymbolTable) AddName(name string) (int, bool) {
	if slot, ok := st.names[name]; ok {
		return slot, false
	}

	slot := len(st.order)
	st.names[name] = slot
	st.order = append(st.order, name)
	return slot, true
}

// GetName looks up a name by walking outward through the ancestor snapshots.
// It returns the slot and the number of ancestor links traversed to find it.
func (st *SymbolTable) GetName(name string) (slot, levelsUp int, ok bool) {
	for t := st; t != nil; t = t.parent {
		if slot, ok := t.names[name]; ok {
			return slot, levelsUp, true
		}

		levelsUp++
	}

	return 0, 0, false
}

// LocalSlot returns the slot of a name declared in this table only.
func (st *SymbolTable) LocalSlot(name string) (int, bool) {
	slot, ok := st.names[name]
	return slot, ok
}

// Len returns the number of local slots.
func (st *SymbolTable) Len() int {
	return len(st.order)
}

// Names returns the local names ordered by slot.
func (st *SymbolTable) Names() []string {
	names := make([]string, len(st.order))
	copy(names, st.order)
	return names
}

// Parent returns the ancestor snapshot or nil.
func (st *SymbolTable) Parent() *SymbolTable {
	return st.parent
}

// snapshot returns an independent copy of the local layer sharing the same
// ancestor.
func (st *SymbolTable) snapshot() *SymbolTable {
	nst := &SymbolTable{
		names:  make(map[string]int, len(st.names)),
		order:  make([]string, len(st.order)),
		parent: st.parent,
	}

	for name, slot := range st.names {
		nst.names[name] = slot
	}

	copy(nst.order, st.order)
	return nst
}
