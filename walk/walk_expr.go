package walk

import (
	"lait/ast"
	"lait/report"
)

// walkExpr walks an expression.  Identifiers must resolve in the current scope
// chain and blocks are walked in a scope of their own.  All other expressions
// are well-formed by construction.
func (w *Walker) walkExpr(expr ast.Expr) error {
	switch v := expr.(type) {
	case *ast.Identifier:
		if _, _, ok := w.current().Symbols.GetName(v.Name); !ok {
			return w.undefined(v)
		}
	case *ast.Block:
		w.pushScope()

		for _, stmt := range v.Stmts {
			if err := w.walkStmt(stmt); err != nil {
				return err
			}
		}

		w.popScope()
	case *ast.BinaryOp:
		if err := w.walkExpr(v.Lhs); err != nil {
			return err
		}

		return w.walkExpr(v.Rhs)
	}

	return nil
}

// undefined creates an unresolved identifier error.
func (w *Walker) undefined(ident *ast.Identifier) error {
	return w.error(report.ErrName, ident.Span(), "no such value `%s` in this scope", ident.Name)
}
