package syntax

import (
	"lait/ast"
	"lait/types"
)

// stmt = var_decl | expr
func (p *Parser) parseStatement() (ast.Stmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if ident, ok := expr.(*ast.Identifier); ok && p.remaining() > 0 && p.currentKind() == TOK_SYMBOL {
		switch p.currentLexeme() {
		case ":":
			return p.parseDeclaration(ident)
		case "}", ")":
			// The enclosing production closes here.
		default:
			return nil, p.errorOn(p.currentSpan(), "unexpected symbol `%s`", p.currentLexeme())
		}
	}

	return ast.NewExprStmt(expr), nil
}

// var_decl = 'identifier' ':' ('=' expr | type_label ['=' expr])
func (p *Parser) parseDeclaration(left *ast.Identifier) (ast.Stmt, error) {
	if !p.got(TOK_SYMBOL, ":") {
		return nil, p.errorOn(p.currentSpan(), "invalid declaration without `:`")
	}

	if err := p.next(); err != nil {
		return nil, err
	}

	var typ types.Type = types.Nil
	if !p.got(TOK_SYMBOL, "=") {
		var err error
		if typ, err = p.parseType(); err != nil {
			return nil, err
		}

		// A type with no initializer is a complete declaration.
		if !p.got(TOK_SYMBOL, "=") {
			return ast.NewVarDecl(p.spanFrom(left.Span()), typ, left, nil), nil
		}
	}

	eqSpan := p.currentSpan()
	if err := p.next(); err != nil {
		return nil, err
	}

	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	} else if _, ok := init.(*ast.EOF); ok {
		return nil, p.errorOn(eqSpan, "reached end of input inside a declaration")
	}

	return ast.NewVarDecl(p.spanFrom(left.Span()), typ, left, init), nil
}

// type_label = 'identifier'
func (p *Parser) parseType() (types.Type, error) {
	if p.remaining() == 0 {
		return nil, p.errorOn(p.currentSpan(), "expected type, found end of input")
	}

	if p.currentKind() != TOK_IDENT {
		if p.currentKind() == TOK_EOL {
			return nil, p.errorOn(p.currentSpan(), "expected type, found end of line")
		}

		return nil, p.errorOn(p.currentSpan(), "expected type, found `%s`", p.currentLexeme())
	}

	name, err := p.eat()
	if err != nil {
		return nil, err
	}

	return types.FromName(name), nil
}
