package ast

import "lait/report"

// ASTNode is implemented by every expression and statement node.
type ASTNode interface {
	// Span returns where the node occurs.  A nil span is the unresolved
	// placeholder.
	Span() *report.TextSpan
}

// ASTBase stores the span of a node and is embedded in every node.
type ASTBase struct {
	span *report.TextSpan
}

// NewASTBaseOn creates a base located exactly on span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a base running from the start of `start` to the end
// of `end`.
func NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return ASTBase{span: report.NewSpanOver(start, end)}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}
