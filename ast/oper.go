package ast

// Oper is a binary operator.  It must be one of the enumerated operators.
type Oper int

// Enumeration of operators.
const (
	OpAdd Oper = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpConcat
	OpEq
	OpLt
	OpGt
	OpNEq
	OpLtEq
	OpGtEq
)

// operInfo holds the lexeme and precedence of an operator.
type operInfo struct {
	lexeme string
	prec   int
}

var operTable = [...]operInfo{
	OpAdd:    {"+", 1},
	OpSub:    {"-", 1},
	OpMul:    {"*", 2},
	OpDiv:    {"/", 2},
	OpMod:    {"%", 2},
	OpPow:    {"^", 3},
	OpConcat: {"++", 1},
	OpEq:     {"==", 0},
	OpLt:     {"<", 0},
	OpGt:     {">", 0},
	OpNEq:    {"!=", 0},
	OpLtEq:   {"<=", 0},
	OpGtEq:   {">=", 0},
}

// Precedence returns the binding tier of the operator: comparisons bind the
// loosest and `^` the tightest.
func (op Oper) Precedence() int {
	return operTable[op].prec
}

// String returns the operator's lexeme.
func (op Oper) String() string {
	if 0 <= op && int(op) < len(operTable) {
		return operTable[op].lexeme
	}

	return "?"
}

// OperFromLexeme returns the operator spelled by the given lexeme.
func OperFromLexeme(lexeme string) (Oper, bool) {
	for op, info := range operTable {
		if info.lexeme == lexeme {
			return Oper(op), true
		}
	}

	return 0, false
}
