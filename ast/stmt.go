package ast

import (
	"fmt"

	"lait/report"
	"lait/types"
)

// Stmt represents a statement.  All statement nodes implement the `Stmt`
// interface.
type Stmt interface {
	ASTNode

	isStmt()
}

// StmtBase is the base struct for all statements.
type StmtBase struct {
	ASTBase
}

func (StmtBase) isStmt() {}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	StmtBase

	Expr Expr
}

// NewExprStmt wraps an expression as a statement spanning the expression.
func NewExprStmt(expr Expr) *ExprStmt {
	return &ExprStmt{
		StmtBase: StmtBase{ASTBase: NewASTBaseOn(expr.Span())},
		Expr:     expr,
	}
}

// VarDecl represents a variable declaration.
type VarDecl struct {
	StmtBase

	// The declared type of the variable.  This is `types.Nil` if the type
	// should be inferred from the initializer.
	Type types.Type

	// The declared name.  The parser always produces an `*Identifier` here.
	Name Expr

	// The initializer.  This is nil if there is no initializer.
	Init Expr
}

// NewVarDecl creates a new variable declaration.  The name must be an
// identifier: anything else is a programming error and panics.
func NewVarDecl(span *report.TextSpan, typ types.Type, name Expr, init Expr) *VarDecl {
	if _, ok := name.(*Identifier); !ok {
		panic(fmt.Sprintf("declaration name must be an identifier, not %T", name))
	}

	return &VarDecl{
		StmtBase: StmtBase{ASTBase: NewASTBaseOn(span)},
		Type:     typ,
		Name:     name,
		Init:     init,
	}
}
