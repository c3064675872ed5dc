package ast

import "lait/report"

// Expr represents an expression.  All expression nodes implement the `Expr`
// interface.
type Expr interface {
	ASTNode

	isExpr()
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	ASTBase
}

// NewExprBase creates a new expression base on the given span.
func NewExprBase(span *report.TextSpan) ExprBase {
	return ExprBase{ASTBase: NewASTBaseOn(span)}
}

func (ExprBase) isExpr() {}

// -----------------------------------------------------------------------------

// IntLit represents an integer literal.
type IntLit struct {
	ExprBase

	Value uint64
}

// FloatLit represents a floating-point literal.
type FloatLit struct {
	ExprBase

	Value float64
}

// StringLit represents a string literal.  The value has its escape sequences
// decoded.
type StringLit struct {
	ExprBase

	Value string
}

// CharLit represents a character literal.
type CharLit struct {
	ExprBase

	Value rune
}

// BoolLit represents a boolean literal.
type BoolLit struct {
	ExprBase

	Value bool
}

// Identifier represents a named value.
type Identifier struct {
	ExprBase

	Name string
}

// -----------------------------------------------------------------------------

// Block represents a braced sequence of statements.  Blocks open a new scope.
type Block struct {
	ExprBase

	Stmts []Stmt
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ExprBase

	Lhs Expr
	Op  Oper
	Rhs Expr
}

// EOF is the end-of-input marker produced when an atom is requested from an
// exhausted token stream.
type EOF struct {
	ExprBase
}
