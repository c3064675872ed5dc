package walk

import (
	"lait/ast"
	"lait/depm"
	"lait/report"
	"lait/scope"
)

// Walker is responsible for walking the statements of a source file and
// performing semantic analysis on them: name resolution and type checking.
// It maintains a stack of open scopes, innermost last, of which only the
// innermost is ever mutated.  Walking stops at the first error.
type Walker struct {
	// The source being walked.  It is used to attribute errors.
	src *report.Source

	// The statements being walked.
	stmts []ast.Stmt

	// The stack of open scopes.  The global scope is at the bottom.
	scopes []*scope.Scope

	// The scopes that have been closed, in closing order.
	history []*scope.Scope

	// Whether declarations whose target is not an identifier are rejected.
	strictDecls bool
}

// NewWalker creates a new walker for the given statements.
func NewWalker(src *report.Source, stmts []ast.Stmt) *Walker {
	return &Walker{
		src:   src,
		stmts: stmts,
	}
}

// RejectMalformedDecls makes the walker report declarations whose target is
// not an identifier instead of ignoring them.
func (w *Walker) RejectMalformedDecls() {
	w.strictDecls = true
}

// Walk walks all the statements in order.  Whether it succeeds or not, all the
// scopes still open when it returns are closed into the history, innermost
// first and the global scope last.
func (w *Walker) Walk() error {
	w.scopes = []*scope.Scope{scope.Global()}
	w.history = nil

	defer w.closeAll()

	for _, stmt := range w.stmts {
		if err := w.walkStmt(stmt); err != nil {
			return err
		}
	}

	return nil
}

// History returns the closed scopes in closing order.
func (w *Walker) History() []*scope.Scope {
	return w.history
}

// Depth returns the current nesting depth: zero at the global scope.
func (w *Walker) Depth() int {
	return len(w.scopes) - 1
}

// WalkFile semantically analyzes the given source file and stores its scope
// history.  Any error is reported.  It returns whether the file is valid.
func WalkFile(lf *depm.LaitFile) bool {
	defer report.CatchErrors(lf.Source)

	w := NewWalker(lf.Source, lf.Stmts)
	if lf.Parent.StrictDecls {
		w.RejectMalformedDecls()
	}

	err := w.Walk()
	lf.Scopes = w.History()

	if err != nil {
		report.ReportError(lf.Source, err)
		return false
	}

	return true
}

// -----------------------------------------------------------------------------

// current returns the innermost open scope.
func (w *Walker) current() *scope.Scope {
	return w.scopes[len(w.scopes)-1]
}

// pushScope opens a new scope layered in front of a snapshot of the current
// scope.
func (w *Walker) pushScope() {
	w.scopes = append(w.scopes, scope.New(w.current().Snapshot(), nil))
}

// popScope closes the innermost scope and moves it into the history.
func (w *Walker) popScope() {
	w.history = append(w.history, w.current())
	w.scopes = w.scopes[:len(w.scopes)-1]
}

// closeAll closes every open scope.
func (w *Walker) closeAll() {
	for len(w.scopes) > 0 {
		w.popScope()
	}
}

// -----------------------------------------------------------------------------

// error creates an error of the given kind on the given span.
func (w *Walker) error(kind report.ErrorKind, span *report.TextSpan, msg string, args ...interface{}) error {
	return report.Raise(kind, w.src, span, msg, args...)
}
