package ast

import (
	"testing"

	"lait/types"
)

func TestRepr(t *testing.T) {
	tests := []struct {
		node ASTNode
		want string
	}{
		{&IntLit{Value: 42}, "42"},
		{&FloatLit{Value: 1.5}, "1.5"},
		{&StringLit{Value: "a\"b"}, `"a\"b"`},
		{&CharLit{Value: 'x'}, "'x'"},
		{&BoolLit{Value: true}, "true"},
		{&EOF{}, "<eof>"},
		{
			&BinaryOp{Lhs: &IntLit{Value: 1}, Op: OpAdd, Rhs: &BinaryOp{Lhs: &IntLit{Value: 2}, Op: OpMul, Rhs: &IntLit{Value: 3}}},
			"(+ 1 (* 2 3))",
		},
		{NewVarDecl(nil, types.Int, &Identifier{Name: "x"}, &IntLit{Value: 5}), "(decl x int 5)"},
		{NewVarDecl(nil, types.Nil, &Identifier{Name: "x"}, &Identifier{Name: "y"}), "(decl x y)"},
		{NewVarDecl(nil, &types.NamedType{Name: "T"}, &Identifier{Name: "t"}, nil), "(decl t T)"},
		{&Block{Stmts: []Stmt{NewExprStmt(&Identifier{Name: "a"})}}, "(block a)"},
	}

	for _, test := range tests {
		if got := Repr(test.node); got != test.want {
			t.Errorf("expected %s, got %s", test.want, got)
		}
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		lexeme string
		op     Oper
		prec   int
	}{
		{"==", OpEq, 0},
		{"<", OpLt, 0},
		{">=", OpGtEq, 0},
		{"+", OpAdd, 1},
		{"-", OpSub, 1},
		{"++", OpConcat, 1},
		{"*", OpMul, 2},
		{"/", OpDiv, 2},
		{"%", OpMod, 2},
		{"^", OpPow, 3},
	}

	for _, test := range tests {
		op, ok := OperFromLexeme(test.lexeme)
		if !ok || op != test.op {
			t.Errorf("OperFromLexeme(%q): expected %d, got %d (%v)", test.lexeme, test.op, op, ok)
			continue
		}

		if op.Precedence() != test.prec {
			t.Errorf("%s: expected precedence %d, got %d", test.lexeme, test.prec, op.Precedence())
		}

		if op.String() != test.lexeme {
			t.Errorf("expected %q, got %q", test.lexeme, op.String())
		}
	}

	if _, ok := OperFromLexeme("!"); ok {
		t.Error("expected `!` not to be an operator")
	}
}

func TestNewVarDeclRequiresIdentifier(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a non-identifier declaration name")
		}
	}()

	NewVarDecl(nil, types.Int, &IntLit{Value: 1}, nil)
}
