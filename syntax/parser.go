package syntax

import (
	"lait/ast"
	"lait/common"
	"lait/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a lait token stream.  It holds a read cursor into
// the stream and never mutates the stream itself.  Expressions are parsed by
// explicit-stack precedence climbing; declarations and types by a small
// recursive descent.  All parsing functions assume that they begin with the
// cursor on the first token of their production and leave it on the first
// token after it.  Parsing stops at the first error.
type Parser struct {
	// src is the source the tokens were lexed from.  It is used to attribute
	// errors and to clamp spans to line lengths.
	src *report.Source

	// tokens is the token stream being parsed.
	tokens []*Token

	// ndx is the position of the cursor.  It may be one beyond the end of
	// the stream but never further.
	ndx int

	// assoc is the associativity mode: one of the enumerated modes in
	// `common`.
	assoc int
}

// NewParser creates a new parser for the given token stream.  The parser uses
// the deferred associativity mode unless configured otherwise.
func NewParser(src *report.Source, tokens []*Token) *Parser {
	return &Parser{
		src:    src,
		tokens: tokens,
		assoc:  common.AssocDeferred,
	}
}

// SetAssociativity selects the associativity mode used for binary operators.
func (p *Parser) SetAssociativity(mode int) {
	p.assoc = mode
}

// Parse parses the whole token stream.
//
// file = {EOL} {stmt {EOL}}
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt

	for {
		if err := p.skipEOLs(); err != nil {
			return nil, err
		}

		if p.remaining() == 0 {
			break
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// -----------------------------------------------------------------------------

// next moves the cursor forward one token.  It fails if the cursor would move
// more than one beyond the end of the stream.
func (p *Parser) next() error {
	if p.ndx >= len(p.tokens) {
		return report.Raise(report.ErrInternal, p.src, p.currentSpan(), "moving outside token stream")
	}

	p.ndx++
	return nil
}

// remaining returns the number of tokens not yet consumed.
func (p *Parser) remaining() int {
	if p.ndx >= len(p.tokens) {
		return 0
	}

	return len(p.tokens) - p.ndx
}

// current returns the token under the cursor.  Once the stream is exhausted,
// this is the final token.  It is nil only for an empty stream.
func (p *Parser) current() *Token {
	if len(p.tokens) == 0 {
		return nil
	} else if p.ndx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}

	return p.tokens[p.ndx]
}

// currentLexeme returns the value of the current token.
func (p *Parser) currentLexeme() string {
	if tok := p.current(); tok != nil {
		return tok.Value
	}

	return ""
}

// currentKind returns the kind of the current token.
func (p *Parser) currentKind() int {
	if tok := p.current(); tok != nil {
		return tok.Kind
	}

	return TOK_EOF
}

// currentSpan returns the span of the current token.
func (p *Parser) currentSpan() *report.TextSpan {
	if tok := p.current(); tok != nil {
		return tok.Span
	}

	return nil
}

// got returns whether the cursor is on an unconsumed token of the given kind
// and value.
func (p *Parser) got(kind int, value string) bool {
	return p.remaining() > 0 && p.currentKind() == kind && p.currentLexeme() == value
}

// eat consumes the current token and returns its value.
func (p *Parser) eat() (string, error) {
	lexeme := p.currentLexeme()
	if err := p.next(); err != nil {
		return "", err
	}

	return lexeme, nil
}

// skipEOLs moves the cursor past any end of line tokens.
func (p *Parser) skipEOLs() error {
	for p.remaining() > 0 && p.currentKind() == TOK_EOL {
		if err := p.next(); err != nil {
			return err
		}
	}

	return nil
}

// spanFrom returns a span starting at the left span and ending at the end of
// the last consumed token.  The end column is clamped to the length of its
// line.
func (p *Parser) spanFrom(left *report.TextSpan) *report.TextSpan {
	if left == nil || p.ndx == 0 || len(p.tokens) == 0 {
		return left
	}

	last := p.tokens[p.ndx-1].Span
	if last == nil {
		return left
	}

	endCol := last.EndCol
	if p.src != nil {
		if lineLen := p.src.LineLen(last.EndLine); endCol > lineLen {
			endCol = lineLen
		}
	}

	return &report.TextSpan{
		StartLine: left.StartLine,
		StartCol:  left.StartCol,
		EndLine:   last.EndLine,
		EndCol:    endCol,
	}
}

// -----------------------------------------------------------------------------

// errorOn creates a syntax error on the given span.
func (p *Parser) errorOn(span *report.TextSpan, msg string, args ...interface{}) error {
	return report.Raise(report.ErrSyntax, p.src, span, msg, args...)
}

// reject creates an unexpected token error on the current token.
func (p *Parser) reject() error {
	switch {
	case p.remaining() == 0:
		return p.errorOn(p.currentSpan(), "unexpected end of input")
	case p.currentKind() == TOK_EOL:
		return p.errorOn(p.currentSpan(), "unexpected end of line")
	default:
		return p.errorOn(p.currentSpan(), "unexpected token: `%s`", p.currentLexeme())
	}
}
