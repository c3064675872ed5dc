package syntax

import (
	"lait/depm"
	"lait/report"
)

// ParseFile lexes and parses a source file and stores the resulting
// statements in it.  Any error is reported.  It returns whether parsing
// succeeded.
func ParseFile(lf *depm.LaitFile) bool {
	defer report.CatchErrors(lf.Source)

	tokens, err := NewLexer(lf.Source).Tokenize()
	if err != nil {
		report.ReportError(lf.Source, err)
		return false
	}

	p := NewParser(lf.Source, tokens)
	p.SetAssociativity(lf.Parent.Associativity)

	stmts, err := p.Parse()
	if err != nil {
		report.ReportError(lf.Source, err)
		return false
	}

	lf.Stmts = stmts
	return true
}
