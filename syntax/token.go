package syntax

import "lait/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.
	Value string

	// The text span over which the token exists.  This may not directly
	// correspond to its value: eg. the value of a string token has the leading
	// quotes trimmed off and its escape sequences decoded.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_INT = iota
	TOK_FLOAT
	TOK_CHAR
	TOK_STRING
	TOK_IDENT
	TOK_BOOL
	TOK_SYMBOL
	TOK_OPERATOR
	TOK_EOL

	// TOK_EOF is returned by the lexer when the input is exhausted.  It is
	// never placed in a token stream.
	TOK_EOF
)

var tokenKindNames = [...]string{
	TOK_INT:      "int",
	TOK_FLOAT:    "float",
	TOK_CHAR:     "char",
	TOK_STRING:   "string",
	TOK_IDENT:    "identifier",
	TOK_BOOL:     "bool",
	TOK_SYMBOL:   "symbol",
	TOK_OPERATOR: "operator",
	TOK_EOL:      "end of line",
	TOK_EOF:      "end of file",
}

// KindName returns the display name of a token kind.
func KindName(kind int) string {
	if 0 <= kind && kind < len(tokenKindNames) {
		return tokenKindNames[kind]
	}

	return "unknown"
}

// String renders the token for dumps.
func (t *Token) String() string {
	if t.Kind == TOK_EOL {
		return t.Span.String() + " " + KindName(t.Kind)
	}

	return t.Span.String() + " " + KindName(t.Kind) + " `" + t.Value + "`"
}
