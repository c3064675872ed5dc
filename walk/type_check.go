package walk

import (
	"errors"

	"lait/ast"
	"lait/report"
	"lait/scope"
	"lait/types"
)

// typeOf determines the type of an expression.  Identifiers take the type
// recorded for their slot that is visible at the current depth.  Operations
// and blocks are not typed yet and yield `nil`.
func (w *Walker) typeOf(expr ast.Expr) (types.Type, error) {
	switch v := expr.(type) {
	case *ast.Identifier:
		slot, levelsUp, ok := w.current().Symbols.GetName(v.Name)
		if !ok {
			return nil, w.undefined(v)
		}

		typ, err := w.current().Types.GetType(slot, levelsUp, w.Depth())
		if errors.Is(err, scope.ErrNoType) {
			return nil, w.error(report.ErrType, v.Span(), "value `%s` has no known type here", v.Name)
		} else if err != nil {
			return nil, w.error(report.ErrInternal, v.Span(), "unable to look up type of `%s`: %s", v.Name, err)
		}

		return typ, nil
	case *ast.IntLit:
		return types.Int, nil
	case *ast.FloatLit:
		return types.Float, nil
	case *ast.CharLit:
		return types.Char, nil
	case *ast.StringLit:
		return types.String, nil
	case *ast.BoolLit:
		return types.Bool, nil
	default:
		return types.Nil, nil
	}
}

// compatible returns whether an initializer of the given shape and type can
// initialize a variable of the declared type.  Integer literals widen to
// floats.
func compatible(declared types.Type, init ast.Expr, initType types.Type) bool {
	if _, ok := init.(*ast.IntLit); ok {
		if declared == types.Int || declared == types.Float {
			return true
		}
	}

	return types.Equals(declared, initType)
}

// reprOf returns the representation of a possibly nil type.
func reprOf(typ types.Type) string {
	if typ == nil {
		return types.Nil.Repr()
	}

	return typ.Repr()
}
