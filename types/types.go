package types

// Type represents a lait data type.  The set of types is closed: a type is
// either a primitive type or a named type.
type Type interface {
	// Returns whether this type is equal to the other type.
	equals(other Type) bool

	// Returns the representative string for this type.
	Repr() string
}

// Equals returns whether two types are structurally equal.
func Equals(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.equals(b)
}

// -----------------------------------------------------------------------------

// PrimitiveType represents a primitive type.  This must be one of the enumerated
// primitive type values below.
type PrimitiveType int

// Enumeration of the different primitive types.
const (
	Int PrimitiveType = iota
	Float
	Char
	String
	Bool

	// Nil is the sentinel "no declared type" marker: it asks inference to
	// decide the type.  It is not the type of a runtime null value.
	Nil
)

func (pt PrimitiveType) equals(other Type) bool {
	if opt, ok := other.(PrimitiveType); ok {
		return pt == opt
	}

	return false
}

func (pt PrimitiveType) Repr() string {
	switch pt {
	case Int:
		return "int"
	case Float:
		return "float"
	case Char:
		return "char"
	case String:
		return "str"
	case Bool:
		return "bool"
	default:
		return "nil"
	}
}

// String makes primitive types print nicely in dumps.
func (pt PrimitiveType) String() string {
	return pt.Repr()
}

// IsNumeric returns whether this primitive type is a number type.
func (pt PrimitiveType) IsNumeric() bool {
	return pt == Int || pt == Float
}

// primitiveNames maps the reserved type names to their primitive types.
var primitiveNames = map[string]PrimitiveType{
	"str":   String,
	"int":   Int,
	"float": Float,
	"bool":  Bool,
	"char":  Char,
}

// FromName returns the type denoted by a type name: a reserved name denotes a
// primitive type and any other name denotes a (yet unresolved) named type.
func FromName(name string) Type {
	if pt, ok := primitiveNames[name]; ok {
		return pt
	}

	return &NamedType{Name: name}
}

// -----------------------------------------------------------------------------

// NamedType represents a user type referenced by name that has not been
// resolved yet.
type NamedType struct {
	Name string
}

func (nt *NamedType) equals(other Type) bool {
	if ont, ok := other.(*NamedType); ok {
		return nt.Name == ont.Name
	}

	return false
}

func (nt *NamedType) Repr() string {
	return nt.Name
}

func (nt *NamedType) String() string {
	return nt.Name
}

// IsNil returns whether the given type is the `nil` marker type.  A Go nil
// interface is also treated as the marker.
func IsNil(t Type) bool {
	if t == nil {
		return true
	}

	pt, ok := t.(PrimitiveType)
	return ok && pt == Nil
}
