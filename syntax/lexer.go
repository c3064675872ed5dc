package syntax

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"lait/report"
)

// Lexer is responsible for tokenizing a source file.
type Lexer struct {
	src     *report.Source
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer for the given source file.
func NewLexer(src *report.Source) *Lexer {
	return &Lexer{
		src:     src,
		file:    bufio.NewReader(strings.NewReader(src.Text)),
		tokBuff: &strings.Builder{},
		line:    0,
		col:     0,
	}
}

// Tokenize lexes the whole source into a token stream.  The stream does not
// contain a terminating EOF token.
func (l *Lexer) Tokenize() ([]*Token, error) {
	var tokens []*Token

	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		} else if tok.Kind == TOK_EOF {
			return tokens, nil
		}

		tokens = append(tokens, tok)
	}
}

// NextToken retrieves the next token from the input file. If the file has
// ended, this will be an EOF token.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch c {
		case '\n':
			return l.lexEOL()
		case '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '/':
			if tok, err := l.lexCommentOrDiv(); tok != nil || err != nil {
				return tok, err
			}
		case '\'':
			return l.lexCharLit()
		case '"':
			return l.lexStringLit()
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrBool()
			} else {
				return l.lexSymbolOrOper()
			}
		}
	}

	l.mark()
	return &Token{Kind: TOK_EOF, Span: l.getSpan()}, nil
}

// lexEOL lexes a newline.  The token has an empty span at the end of the line
// it terminates.
func (l *Lexer) lexEOL() (*Token, error) {
	span := &report.TextSpan{
		StartLine: l.line,
		StartCol:  l.col,
		EndLine:   l.line,
		EndCol:    l.col,
	}

	if _, err := l.skip(); err != nil {
		return nil, err
	}

	return &Token{Kind: TOK_EOL, Span: span}, nil
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their token kind.  Division
// is handled with comment logic.
var symbolPatterns = map[string]int{
	":": TOK_SYMBOL,
	"=": TOK_SYMBOL,
	"(": TOK_SYMBOL,
	")": TOK_SYMBOL,
	"{": TOK_SYMBOL,
	"}": TOK_SYMBOL,
	",": TOK_SYMBOL,

	"+":  TOK_OPERATOR,
	"-":  TOK_OPERATOR,
	"*":  TOK_OPERATOR,
	"%":  TOK_OPERATOR,
	"^":  TOK_OPERATOR,
	"++": TOK_OPERATOR,
	"==": TOK_OPERATOR,
	"!=": TOK_OPERATOR,
	"<":  TOK_OPERATOR,
	">":  TOK_OPERATOR,
	"<=": TOK_OPERATOR,
	">=": TOK_OPERATOR,
}

// symbolPrefixes holds every proper prefix of a pattern that is not itself a
// pattern (eg. `!` of `!=`).
var symbolPrefixes = map[string]struct{}{
	"!": {},
}

// lexSymbolOrOper lexes a symbol or an operator by longest match.
func (l *Lexer) lexSymbolOrOper() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if c == -1 {
			break
		}

		if _, ok := symbolPatterns[l.tokBuff.String()+string(c)]; ok {
			l.eat()
		} else {
			break
		}
	}

	kind, ok := symbolPatterns[l.tokBuff.String()]
	if !ok {
		if _, ok := symbolPrefixes[l.tokBuff.String()]; ok {
			return nil, l.error("unknown operator: `%s`", l.tokBuff.String())
		}

		return nil, l.error("unknown rune: `%s`", l.tokBuff.String())
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// lexIdentOrBool lexes an identifier or a boolean literal.
func (l *Lexer) lexIdentOrBool() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	kind := TOK_IDENT
	if value := l.tokBuff.String(); value == "true" || value == "false" {
		kind = TOK_BOOL
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// lexNumericLit lexes a decimal integer or floating-point literal.
func (l *Lexer) lexNumericLit() (*Token, error) {
	l.mark()
	l.eat()

	var isFloat, hasExp, expectSign, mustHaveDigit bool

numLexLoop:
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		} else if c == '_' {
			// Skip all _ that occur in the literal.
			l.skip()
			continue
		}

		switch c {
		case '.':
			if mustHaveDigit || isFloat {
				break numLexLoop
			}

			l.eat()

			isFloat = true
			mustHaveDigit = true
			continue
		case 'e', 'E':
			if mustHaveDigit || hasExp {
				break numLexLoop
			}

			l.eat()

			isFloat = true
			hasExp = true
			expectSign = true
			mustHaveDigit = true
			continue
		case '-', '+':
			if !expectSign {
				break numLexLoop
			}

			l.eat()

			expectSign = false
			continue
		default:
			if isDecimalDigit(c) {
				l.eat()
				expectSign = false
			} else {
				break numLexLoop
			}
		}

		// Indicate that a digit was received.
		mustHaveDigit = false
	}

	// Ensure that the literal is not malformed.
	if mustHaveDigit {
		return nil, l.error("incomplete numeric literal")
	}

	kind := TOK_INT
	if isFloat {
		kind = TOK_FLOAT
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// lexStringLit lexes a string literal.  The token value is the decoded string.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()
	l.skip()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1:
			return nil, l.error("unclosed string literal")
		case '"':
			l.skip()
			return l.makeToken(TOK_STRING), nil
		case '\\':
			l.skip()
			if err = l.decodeEscapeSequence(); err != nil {
				return nil, err
			}
		case '\n':
			return nil, l.error("string cannot contain a newline")
		default:
			l.eat()
		}
	}
}

// lexCharLit lexes a character literal.  The token value is the decoded
// character.
func (l *Lexer) lexCharLit() (*Token, error) {
	l.mark()
	l.skip()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	switch c {
	case -1:
		return nil, l.error("unclosed char literal")
	case '\'':
		l.skip()
		return nil, l.error("empty char literal")
	case '\n':
		return nil, l.error("char cannot contain a newline")
	case '\\':
		l.skip()
		if err = l.decodeEscapeSequence(); err != nil {
			return nil, err
		}
	default:
		l.eat()
	}

	c, err = l.skip()
	if err != nil {
		return nil, err
	} else if c == -1 {
		return nil, l.error("unclosed char literal")
	} else if c != '\'' {
		return nil, l.error("char literal cannot contain multiple characters")
	}

	return l.makeToken(TOK_CHAR), nil
}

// simpleEscapes maps single character escape codes to the runes they denote.
var simpleEscapes = map[rune]rune{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'0':  0,
	'\'': '\'',
	'\\': '\\',
	'"':  '"',
}

// decodeEscapeSequence consumes an escape sequence and writes the rune it
// denotes to the token buffer.  This assumes the leading `\` has already been
// skipped.
func (l *Lexer) decodeEscapeSequence() error {
	c, err := l.skip()
	if err != nil {
		return err
	}

	decodeUnicodeEscapeSequence := func(n int) error {
		digits := strings.Builder{}

		for i := 0; i < n; i++ {
			c, err := l.skip()
			if err != nil {
				return err
			} else if c == -1 {
				return l.error("expected %d digit hexadecimal value not end of file", n)
			} else if !isHexDigit(c) {
				return l.error("unicode escape code may be comprised of hexadecimal digits only")
			}

			digits.WriteRune(c)
		}

		code, err := strconv.ParseUint(digits.String(), 16, 32)
		if err != nil || code > unicode.MaxRune {
			return l.error("invalid unicode code point: `%s`", digits.String())
		}

		l.tokBuff.WriteRune(rune(code))
		return nil
	}

	switch c {
	case -1:
		return l.error("expected escape sequence not end of file")
	case 'x':
		return decodeUnicodeEscapeSequence(2)
	case 'u':
		return decodeUnicodeEscapeSequence(4)
	case 'U':
		return decodeUnicodeEscapeSequence(8)
	default:
		if r, ok := simpleEscapes[c]; ok {
			l.tokBuff.WriteRune(r)
			return nil
		}

		return l.error("unknown escape sequence: `\\%c`", c)
	}
}

// -----------------------------------------------------------------------------

// lexCommentOrDiv lexes a comment or a division operator.  A nil token and
// error are returned for comments.
func (l *Lexer) lexCommentOrDiv() (*Token, error) {
	l.mark()
	l.skip()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	switch c {
	case '/':
		// Line comments leave the newline to produce an EOL.
		for ; err == nil && c != '\n' && c != -1; c, err = l.peek() {
			l.skip()
		}
	case '*':
		l.skip()

		for {
			c, err = l.skip()
			if err != nil {
				break
			} else if c == -1 {
				return nil, l.error("unclosed block comment")
			}

			if c == '*' {
				if c, err = l.peek(); err != nil {
					break
				} else if c == '/' {
					l.skip()
					break
				}
			}
		}
	default:
		tok := l.makeToken(TOK_OPERATOR)
		tok.Value = "/"
		return tok, nil
	}

	return nil, err
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// error creates a token error spanning the text lexed since the last mark.
func (l *Lexer) error(msg string, args ...interface{}) error {
	return report.Raise(report.ErrToken, l.src, l.getSpan(), msg, args...)
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token buffer.
// If the lexer encounters an EOF, -1 is returned as the rune value.
func (l *Lexer) eat() (rune, error) {
	c, err := l.skip()
	if err == nil && c != -1 {
		l.tokBuff.WriteRune(c)
	}

	return c, err
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the rune
// value.
func (l *Lexer) skip() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)

	return c, nil
}

// peek returns the next rune in the file without moving the lexer forward or
// writing the rune to the token buffer.  If the lexer encounters an EOF, -1 is
// returned as rune value.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	if err = l.file.UnreadRune(); err != nil {
		return 0, err
	}

	return c, nil
}

// updatePos updates the lexer's position based on input character.  Columns
// count runes.
func (l *Lexer) updatePos(c rune) {
	if c == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isHexDigit returns whether  c is a hexadecimal digit.
func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// isFirstIdentChar returns whether c could be the first rune of an identifier.
func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
