package common

// Enumeration of the associativity modes of the expression parser.
const (
	// AssocDeferred reduces a pending operator only when a strictly
	// lower-precedence operator follows it.  Chains of equal-precedence
	// operators nest to the right.
	AssocDeferred = iota

	// AssocStandard reduces left-to-right on equal precedence except for the
	// right-associative power operator.
	AssocStandard
)

// AssocNames maps the names of the associativity modes used in project files
// and on the command line to their enumerated values.
var AssocNames = map[string]int{
	"deferred": AssocDeferred,
	"standard": AssocStandard,
}

// AssocName returns the name of an associativity mode.
func AssocName(mode int) string {
	for name, m := range AssocNames {
		if m == mode {
			return name
		}
	}

	return "unknown"
}
