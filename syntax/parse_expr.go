package syntax

import (
	"errors"
	"strconv"

	"lait/ast"
	"lait/common"
	"lait/report"
)

// expr = atom {operator atom}
func (p *Parser) parseExpression() (ast.Expr, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	if p.remaining() > 0 && p.currentKind() == TOK_OPERATOR {
		return p.parseBinary(atom)
	}

	return atom, nil
}

// parseBinary parses the operator chain following the `left` operand using
// explicit-stack precedence climbing.  The point at which pending operators
// are reduced depends on the associativity mode of the parser.
func (p *Parser) parseBinary(left ast.Expr) (ast.Expr, error) {
	exprStack := []ast.Expr{left}
	var operStack []ast.Oper

	// shift pushes an operator and its right operand.
	shift := func() error {
		op, err := p.parseOperator()
		if err != nil {
			return err
		}

		if len(operStack) > 0 {
			p.reduceBefore(op, &exprStack, &operStack)
		}

		rhs, err := p.parseAtom()
		if err != nil {
			return err
		}

		operStack = append(operStack, op)
		exprStack = append(exprStack, rhs)
		return nil
	}

	if err := shift(); err != nil {
		return nil, err
	}

	for len(operStack) > 0 {
		for p.remaining() > 0 && p.currentKind() == TOK_OPERATOR {
			if err := shift(); err != nil {
				return nil, err
			}
		}

		reduce(&exprStack, &operStack)
	}

	// The final expression spans the whole operation.
	result := exprStack[0].(*ast.BinaryOp)
	result.ExprBase = ast.NewExprBase(p.spanFrom(left.Span()))
	return result, nil
}

// reduceBefore performs the reductions required before the given operator is
// pushed onto a non-empty operator stack.
func (p *Parser) reduceBefore(op ast.Oper, exprStack *[]ast.Expr, operStack *[]ast.Oper) {
	top := func() ast.Oper {
		return (*operStack)[len(*operStack)-1]
	}

	if p.assoc == common.AssocStandard {
		for len(*operStack) > 0 && (top().Precedence() > op.Precedence() ||
			top().Precedence() == op.Precedence() && op != ast.OpPow) {
			reduce(exprStack, operStack)
		}
	} else if op.Precedence() < top().Precedence() {
		// Only a single reduction is performed: pending operators of higher
		// precedence below the top are combined at the end of the chain.
		reduce(exprStack, operStack)
	}
}

// reduce pops the top operator and its two operands and pushes their
// combination.
func reduce(exprStack *[]ast.Expr, operStack *[]ast.Oper) {
	es, os := *exprStack, *operStack

	lhs, rhs := es[len(es)-2], es[len(es)-1]
	op := os[len(os)-1]

	var span *report.TextSpan
	if lhs.Span() != nil && rhs.Span() != nil {
		span = report.NewSpanOver(lhs.Span(), rhs.Span())
	}

	*exprStack = append(es[:len(es)-2], &ast.BinaryOp{
		ExprBase: ast.NewExprBase(span),
		Lhs:      lhs,
		Op:       op,
		Rhs:      rhs,
	})
	*operStack = os[:len(os)-1]
}

// parseOperator consumes an operator token.  An operator must be followed by
// its right operand.
func (p *Parser) parseOperator() (ast.Oper, error) {
	span := p.currentSpan()

	lexeme, err := p.eat()
	if err != nil {
		return 0, err
	}

	op, ok := ast.OperFromLexeme(lexeme)
	if !ok {
		return 0, p.errorOn(span, "unknown operator: `%s`", lexeme)
	}

	if p.remaining() == 0 {
		return 0, p.errorOn(span, "reached end of input inside an operation")
	}

	return op, nil
}

// -----------------------------------------------------------------------------

// atom = 'int' | 'float' | 'char' | 'string' | 'identifier' | 'bool'
//      | block | '(' expr ')'
func (p *Parser) parseAtom() (ast.Expr, error) {
	if p.remaining() == 0 {
		return &ast.EOF{ExprBase: ast.NewExprBase(p.currentSpan())}, nil
	}

	tok := p.current()
	base := ast.NewExprBase(tok.Span)

	switch tok.Kind {
	case TOK_INT:
		value, err := strconv.ParseUint(tok.Value, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, p.errorOn(tok.Span, "integer literal `%s` does not fit in 64 bits", tok.Value)
			}

			return nil, p.errorOn(tok.Span, "malformed integer literal: `%s`", tok.Value)
		}

		return &ast.IntLit{ExprBase: base, Value: value}, p.next()
	case TOK_FLOAT:
		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, p.errorOn(tok.Span, "malformed float literal: `%s`", tok.Value)
		}

		return &ast.FloatLit{ExprBase: base, Value: value}, p.next()
	case TOK_CHAR:
		runes := []rune(tok.Value)
		if len(runes) == 0 {
			return nil, p.errorOn(tok.Span, "empty char literal")
		}

		return &ast.CharLit{ExprBase: base, Value: runes[len(runes)-1]}, p.next()
	case TOK_STRING:
		return &ast.StringLit{ExprBase: base, Value: tok.Value}, p.next()
	case TOK_IDENT:
		return &ast.Identifier{ExprBase: base, Name: tok.Value}, p.next()
	case TOK_BOOL:
		return &ast.BoolLit{ExprBase: base, Value: tok.Value == "true"}, p.next()
	case TOK_SYMBOL:
		switch tok.Value {
		case "{":
			return p.parseBlock()
		case "(":
			return p.parseParenExpr()
		}
	}

	return nil, p.reject()
}

// block = '{' {EOL} {stmt {EOL}} '}'
func (p *Parser) parseBlock() (ast.Expr, error) {
	startSpan := p.currentSpan()
	if err := p.next(); err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for {
		if err := p.skipEOLs(); err != nil {
			return nil, err
		}

		if p.remaining() == 0 {
			return nil, p.errorOn(startSpan, "unclosed block")
		}

		if p.got(TOK_SYMBOL, "}") {
			endSpan := p.currentSpan()
			if err := p.next(); err != nil {
				return nil, err
			}

			return &ast.Block{
				ExprBase: ast.ExprBase{ASTBase: ast.NewASTBaseOver(startSpan, endSpan)},
				Stmts:    stmts,
			}, nil
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}
}

// paren_expr = '(' expr ')'
func (p *Parser) parseParenExpr() (ast.Expr, error) {
	startSpan := p.currentSpan()
	if err := p.next(); err != nil {
		return nil, err
	}

	if p.remaining() == 0 {
		return nil, p.errorOn(startSpan, "unclosed parenthesis")
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if !p.got(TOK_SYMBOL, ")") {
		if p.remaining() == 0 {
			return nil, p.errorOn(startSpan, "unclosed parenthesis")
		}

		return nil, p.reject()
	}

	return expr, p.next()
}
