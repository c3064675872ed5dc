package report

import "fmt"

// TextSpan represents a range or "span" of source text. It is used to specify
// erroneous or otherwise significant source text in a lait program.  The line
// and column numbers are zero-indexed.  The starting column is the column of
// the first character in the span and the ending column is one past the last
// character: the column range is half-open.  Columns count runes, not bytes.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

// String returns the one-indexed `line:col` form of the span's start.
func (ts *TextSpan) String() string {
	return fmt.Sprintf("%d:%d", ts.StartLine+1, ts.StartCol+1)
}
