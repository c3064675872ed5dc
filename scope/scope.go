// Package scope implements the lexical scopes used by name resolution: each
// scope pairs a symbol table (names to slots) with a type table (slots to
// depth-versioned type histories).  A child scope is layered in front of an
// immutable snapshot of its parent so nothing the child does is ever visible
// to the parent.
package scope

import "lait/types"

// Scope is a symbol table and type table pair.
type Scope struct {
	Symbols *SymbolTable
	Types   *TypeTable

	// Depth is the nesting depth of the scope: zero for the global scope.
	Depth int
}

// Global creates an empty root scope.
func Global() *Scope {
	return &Scope{
		Symbols: NewSymbolTable(nil),
		Types:   NewTypeTable(nil),
	}
}

// New creates a child scope of the given ancestor snapshot pre-seeded with the
// given names.  A nil ancestor creates a root scope.
func New(ancestor *Scope, initialNames []string) *Scope {
	s := Global()

	if ancestor != nil {
		s.Symbols.parent = ancestor.Symbols
		s.Types.parent = ancestor.Types
		s.Depth = ancestor.Depth + 1
	}

	for _, name := range initialNames {
		if _, isNew := s.Symbols.AddName(name); isNew {
			s.Types.Grow()
		}
	}

	return s
}

// Snapshot returns an independent copy of the scope.  The local tables are
// copied and the (already immutable) ancestor chain is shared.
func (s *Scope) Snapshot() *Scope {
	return &Scope{
		Symbols: s.Symbols.snapshot(),
		Types:   s.Types.snapshot(),
		Depth:   s.Depth,
	}
}

// Names returns the local names ordered by slot.
func (s *Scope) Names() []string {
	return s.Symbols.Names()
}

// History returns the local type history of the named slot.
func (s *Scope) History(name string) []TypeEntry {
	slot, ok := s.Symbols.LocalSlot(name)
	if !ok {
		return nil
	}

	return s.Types.History(slot)
}

// Lookup resolves the type of a name visible from this scope at its own depth.
// The second result is false if the name is not declared; an error is returned
// if it is declared but no type is visible.
func (s *Scope) Lookup(name string) (types.Type, bool, error) {
	slot, up, ok := s.Symbols.GetName(name)
	if !ok {
		return nil, false, nil
	}

	typ, err := s.Types.GetType(slot, up, s.Depth)
	return typ, true, err
}
