package syntax

import (
	"errors"
	"strings"
	"testing"

	"lait/ast"
	"lait/common"
	"lait/report"
	"lait/types"

	"github.com/go-test/deep"
)

// parse lexes and parses the given text with the given associativity mode and
// fails the test on error.
func parse(t *testing.T, text string, assoc int) []ast.Stmt {
	t.Helper()

	src, tokens := lex(t, text)
	p := NewParser(src, tokens)
	p.SetAssociativity(assoc)

	stmts, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %s", text, err)
	}

	return stmts
}

// parseError lexes and parses the given text and returns the syntax error.
func parseError(t *testing.T, text string) *report.CompileError {
	t.Helper()

	src, tokens := lex(t, text)
	_, err := NewParser(src, tokens).Parse()
	if err == nil {
		t.Fatalf("expected an error parsing %q", text)
	}

	var cerr *report.CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a compile error, got %T", err)
	}

	return cerr
}

func TestParseBinaryPrecedence(t *testing.T) {
	tests := []struct {
		input        string
		wantDeferred string
		wantStandard string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)", "(+ (* 1 2) 3)"},
		{"1 + 2 + 3", "(+ 1 (+ 2 3))", "(+ (+ 1 2) 3)"},
		{"1 - 2 - 3", "(- 1 (- 2 3))", "(- (- 1 2) 3)"},
		{"1 + 2 * 3 + 4", "(+ 1 (+ (* 2 3) 4))", "(+ (+ 1 (* 2 3)) 4)"},
		{"2 ^ 3 ^ 4", "(^ 2 (^ 3 4))", "(^ 2 (^ 3 4))"},
		{"1 < 2 + 3", "(< 1 (+ 2 3))", "(< 1 (+ 2 3))"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)", "(* (+ 1 2) 3)"},
		{`a ++ "b"`, `(++ a "b")`, `(++ a "b")`},
		{"x", "x", "x"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := ast.ReprAll(parse(t, test.input, common.AssocDeferred)); got != test.wantDeferred {
				t.Errorf("deferred: expected %s, got %s", test.wantDeferred, got)
			}

			if got := ast.ReprAll(parse(t, test.input, common.AssocStandard)); got != test.wantStandard {
				t.Errorf("standard: expected %s, got %s", test.wantStandard, got)
			}
		})
	}
}

func TestParseTreeShape(t *testing.T) {
	deep.MaxDepth = 32

	stmts := parse(t, "1 + 2 + 3", common.AssocDeferred)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}

	want := &ast.BinaryOp{
		Lhs: &ast.IntLit{Value: 1},
		Op:  ast.OpAdd,
		Rhs: &ast.BinaryOp{
			Lhs: &ast.IntLit{Value: 2},
			Op:  ast.OpAdd,
			Rhs: &ast.IntLit{Value: 3},
		},
	}

	if diff := deep.Equal(stmts[0].(*ast.ExprStmt).Expr, ast.Expr(want)); diff != nil {
		t.Error(diff)
	}
}

func TestParseDeclarations(t *testing.T) {
	deep.MaxDepth = 32

	tests := []struct {
		input string
		want  *ast.VarDecl
	}{
		{"x: = 5", &ast.VarDecl{Type: types.Nil, Name: &ast.Identifier{Name: "x"}, Init: &ast.IntLit{Value: 5}}},
		{"x: int", &ast.VarDecl{Type: types.Int, Name: &ast.Identifier{Name: "x"}}},
		{"x: float = 5", &ast.VarDecl{Type: types.Float, Name: &ast.Identifier{Name: "x"}, Init: &ast.IntLit{Value: 5}}},
		{"s: str = \"hi\"", &ast.VarDecl{Type: types.String, Name: &ast.Identifier{Name: "s"}, Init: &ast.StringLit{Value: "hi"}}},
		{"c: char = '\\t'", &ast.VarDecl{Type: types.Char, Name: &ast.Identifier{Name: "c"}, Init: &ast.CharLit{Value: '\t'}}},
		{"b: bool = true", &ast.VarDecl{Type: types.Bool, Name: &ast.Identifier{Name: "b"}, Init: &ast.BoolLit{Value: true}}},
		{"p: Point", &ast.VarDecl{Type: &types.NamedType{Name: "Point"}, Name: &ast.Identifier{Name: "p"}}},
		{"y: = x", &ast.VarDecl{Type: types.Nil, Name: &ast.Identifier{Name: "y"}, Init: &ast.Identifier{Name: "x"}}},
		{"f: = 2.5", &ast.VarDecl{Type: types.Nil, Name: &ast.Identifier{Name: "f"}, Init: &ast.FloatLit{Value: 2.5}}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			stmts := parse(t, test.input, common.AssocDeferred)
			if len(stmts) != 1 {
				t.Fatalf("expected 1 statement, got %d", len(stmts))
			}

			decl, ok := stmts[0].(*ast.VarDecl)
			if !ok {
				t.Fatalf("expected a declaration, got %T", stmts[0])
			}

			if diff := deep.Equal(decl, test.want); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"\n\nx: = 1\n\ny\n\n", "(decl x 1)\ny"},
		{"x: = 1 + 2", "(decl x (+ 1 2))"},
		{"{\n  a: int = 1\n  a\n}", "(block (decl a int 1) a)"},
		{"{ a }", "(block a)"},
		{"{}", "(block)"},
		{"x: = { y: = 2 }", "(decl x (block (decl y 2)))"},
		{"1 2", "1\n2"},
		{"18446744073709551615", "18446744073709551615"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := ast.ReprAll(parse(t, test.input, common.AssocDeferred)); got != test.want {
				t.Errorf("expected %q, got %q", test.want, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantMsg string
	}{
		{"1 +", "reached end of input inside an operation"},
		{"1 + 2 *", "reached end of input inside an operation"},
		{"x = 5", "unexpected symbol `=`"},
		{"x: 5", "expected type, found `5`"},
		{"x:", "expected type, found end of input"},
		{"x:\n", "expected type, found end of line"},
		{"x: =", "reached end of input inside a declaration"},
		{"18446744073709551616", "integer literal `18446744073709551616` does not fit in 64 bits"},
		{"{ x: = 1", "unclosed block"},
		{"(1 + 2", "unclosed parenthesis"},
		{"1 + )", "unexpected token: `)`"},
		{"1 +\n2", "unexpected end of line"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			cerr := parseError(t, test.input)

			if cerr.Kind != report.ErrSyntax {
				t.Errorf("expected a syntax error, got %s", cerr.Kind)
			}

			if !strings.Contains(cerr.Message, test.wantMsg) {
				t.Errorf("expected message containing %q, got %q", test.wantMsg, cerr.Message)
			}
		})
	}
}

func TestParseDeclarationWithoutColon(t *testing.T) {
	src, tokens := lex(t, "x = 5")
	p := NewParser(src, tokens)
	p.ndx = 1

	_, err := p.parseDeclaration(&ast.Identifier{Name: "x"})

	var cerr *report.CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a compile error, got %v", err)
	}

	if cerr.Message != "invalid declaration without `:`" {
		t.Errorf("unexpected message: %q", cerr.Message)
	}
}

func TestParseAtomOnEmptyStream(t *testing.T) {
	p := NewParser(report.NewSource("empty.lait", ""), nil)

	expr, err := p.parseAtom()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if _, ok := expr.(*ast.EOF); !ok {
		t.Fatalf("expected an end of input expression, got %T", expr)
	}

	stmts, err := p.Parse()
	if err != nil || len(stmts) != 0 {
		t.Errorf("expected no statements and no error, got %v, %v", stmts, err)
	}
}

func TestParserCursor(t *testing.T) {
	src, tokens := lex(t, "ab + c")
	p := NewParser(src, tokens)

	if lexeme, err := p.eat(); err != nil || lexeme != "ab" {
		t.Fatalf("expected to eat `ab`, got %q, %v", lexeme, err)
	}

	if p.remaining() != 2 {
		t.Errorf("expected 2 remaining tokens, got %d", p.remaining())
	}

	for i := 0; i < 2; i++ {
		if err := p.next(); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}

	// Peeking after exhaustion returns the final token.
	if p.remaining() != 0 || p.currentLexeme() != "c" || p.currentKind() != TOK_IDENT {
		t.Errorf("expected to peek the final token, got %q", p.currentLexeme())
	}

	err := p.next()

	var cerr *report.CompileError
	if !errors.As(err, &cerr) || cerr.Kind != report.ErrInternal {
		t.Fatalf("expected an internal error moving past the end, got %v", err)
	}
}

func TestParseSpans(t *testing.T) {
	stmts := parse(t, "x: = 10 + 2\nlongname", common.AssocDeferred)
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}

	decl := stmts[0].(*ast.VarDecl)
	wantDecl := report.TextSpan{StartLine: 0, StartCol: 0, EndLine: 0, EndCol: 11}
	if *decl.Span() != wantDecl {
		t.Errorf("expected declaration span %+v, got %+v", wantDecl, *decl.Span())
	}

	wantInit := report.TextSpan{StartLine: 0, StartCol: 5, EndLine: 0, EndCol: 11}
	if *decl.Init.Span() != wantInit {
		t.Errorf("expected initializer span %+v, got %+v", wantInit, *decl.Init.Span())
	}

	ident := stmts[1].(*ast.ExprStmt).Expr
	wantIdent := report.TextSpan{StartLine: 1, StartCol: 0, EndLine: 1, EndCol: 8}
	if *ident.Span() != wantIdent {
		t.Errorf("expected identifier span %+v, got %+v", wantIdent, *ident.Span())
	}
}

func TestSpanFromClampsToLine(t *testing.T) {
	src := report.NewSource("test.lait", "abc")
	tokens := []*Token{
		{Kind: TOK_IDENT, Value: "abc", Span: &report.TextSpan{StartLine: 0, StartCol: 0, EndLine: 0, EndCol: 100}},
	}

	p := NewParser(src, tokens)
	if err := p.next(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	span := p.spanFrom(&report.TextSpan{StartLine: 0, StartCol: 1, EndLine: 0, EndCol: 2})
	if span.StartCol != 1 || span.EndCol != 3 {
		t.Errorf("expected columns 1 to 3, got %d to %d", span.StartCol, span.EndCol)
	}
}
