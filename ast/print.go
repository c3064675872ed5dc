package ast

import (
	"strconv"
	"strings"

	"lait/types"
	"lait/util"
)

// Repr returns a compact S-expression rendering of an AST node, eg.
// `(+ 1 (* 2 3))` or `(decl x int 5)`.
func Repr(node ASTNode) string {
	switch v := node.(type) {
	case nil:
		return "<nil>"
	case *IntLit:
		return strconv.FormatUint(v.Value, 10)
	case *FloatLit:
		return strconv.FormatFloat(v.Value, 'g', -1, 64)
	case *StringLit:
		return strconv.Quote(v.Value)
	case *CharLit:
		return strconv.QuoteRune(v.Value)
	case *BoolLit:
		return strconv.FormatBool(v.Value)
	case *Identifier:
		return v.Name
	case *EOF:
		return "<eof>"
	case *BinaryOp:
		return "(" + v.Op.String() + " " + Repr(v.Lhs) + " " + Repr(v.Rhs) + ")"
	case *Block:
		if len(v.Stmts) == 0 {
			return "(block)"
		}

		return "(block " + strings.Join(util.Map(v.Stmts, func(s Stmt) string {
			return Repr(s)
		}), " ") + ")"
	case *ExprStmt:
		return Repr(v.Expr)
	case *VarDecl:
		sb := strings.Builder{}
		sb.WriteString("(decl ")
		sb.WriteString(Repr(v.Name))

		if !types.IsNil(v.Type) {
			sb.WriteRune(' ')
			sb.WriteString(v.Type.Repr())
		}

		if v.Init != nil {
			sb.WriteRune(' ')
			sb.WriteString(Repr(v.Init))
		}

		sb.WriteRune(')')
		return sb.String()
	default:
		return "<?>"
	}
}

// ReprAll renders a sequence of statements, one per line.
func ReprAll(stmts []Stmt) string {
	return strings.Join(util.Map(stmts, func(s Stmt) string {
		return Repr(s)
	}), "\n")
}
