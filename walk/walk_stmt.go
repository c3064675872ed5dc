package walk

import (
	"lait/ast"
	"lait/report"
	"lait/scope"
	"lait/types"
)

// walkStmt walks a statement.
func (w *Walker) walkStmt(stmt ast.Stmt) error {
	switch v := stmt.(type) {
	case *ast.ExprStmt:
		return w.walkExpr(v.Expr)
	case *ast.VarDecl:
		if ident, ok := v.Name.(*ast.Identifier); ok {
			return w.walkVarDecl(v, ident)
		} else if w.strictDecls {
			span := v.Span()
			if v.Name != nil && v.Name.Span() != nil {
				span = v.Name.Span()
			}

			return w.error(report.ErrDecl, span, "invalid declaration target")
		}
	}

	return nil
}

// walkVarDecl walks a variable declaration.  The slot of the variable is
// allocated in the current scope, or reused if the name is already declared
// there, before the initializer is walked.
func (w *Walker) walkVarDecl(decl *ast.VarDecl, ident *ast.Identifier) error {
	curr := w.current()

	slot, isNew := curr.Symbols.AddName(ident.Name)
	if isNew {
		curr.Types.Grow()
	}

	typ := decl.Type
	if typ == nil {
		typ = types.Nil
	}

	if decl.Init != nil {
		if err := w.walkExpr(decl.Init); err != nil {
			return err
		}

		initType, err := w.typeOf(decl.Init)
		if err != nil {
			return err
		}

		if types.IsNil(typ) {
			typ = initType
		} else if !compatible(typ, decl.Init, initType) {
			return w.error(
				report.ErrType,
				decl.Init.Span(),
				"mismatched types, expected type `%s` got `%s`",
				typ.Repr(),
				reprOf(initType),
			)
		}
	}

	if err := curr.Types.SetType(slot, 0, scope.TypeEntry{Type: typ, Depth: w.Depth()}); err != nil {
		return w.error(report.ErrInternal, ident.Span(), "unable to record type of `%s`: %s", ident.Name, err)
	}

	return nil
}
