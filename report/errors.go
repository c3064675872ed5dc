package report

import (
	"errors"
	"fmt"
	"os"
)

// ErrorKind classifies a compile error.  It must be one of the enumerated
// error kinds below.
type ErrorKind int

// Enumeration of error kinds.
const (
	ErrToken    ErrorKind = iota // Malformed lexical input.
	ErrSyntax                    // Token sequence does not form a valid program.
	ErrInternal                  // Parser moved outside of its token stream.
	ErrName                      // Identifier could not be resolved.
	ErrType                      // Declared and inferred types disagree.
	ErrDecl                      // Declaration target is not an identifier.
)

var errorKindNames = map[ErrorKind]string{
	ErrToken:    "Token",
	ErrSyntax:   "Syntax",
	ErrInternal: "Internal",
	ErrName:     "Name",
	ErrType:     "Type",
	ErrDecl:     "Declaration",
}

func (ek ErrorKind) String() string {
	if name, ok := errorKindNames[ek]; ok {
		return name
	}

	return "Unknown"
}

// -----------------------------------------------------------------------------

// CompileError is a compilation error: the diagnostic payload handed to the
// reporter.  It never formats itself beyond its `Error` string: rendering is
// done by the reporter.
type CompileError struct {
	// The kind of the error.
	Kind ErrorKind

	// The error message.
	Message string

	// The representative path of the file the error occurred in.
	File string

	// The span over which the error occurs.  This may be nil in which case the
	// error has no position.
	Span *TextSpan
}

func (ce *CompileError) Error() string {
	if ce.Span == nil {
		return fmt.Sprintf("%s: %s", ce.File, ce.Message)
	}

	return fmt.Sprintf("%s:%s: %s", ce.File, ce.Span, ce.Message)
}

// Raise creates a new compile error in the given source.
func Raise(kind ErrorKind, src *Source, span *TextSpan, msg string, args ...interface{}) *CompileError {
	var file string
	if src != nil {
		file = src.ReprPath
	}

	return &CompileError{
		Kind:    kind,
		Message: fmt.Sprintf(msg, args...),
		File:    file,
		Span:    span,
	}
}

// -----------------------------------------------------------------------------

// ReportICE reports an internal compiler error.  These are errors that
// specifically result for a bug or unexpected condition occurring with the
// compiler: they are not intended to ever happen.  These errors are always
// displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayICE(fmt.Sprintf(message, args...))

	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately.  However, they are expected errors that
// generally result from invalid configuration of some form: missing project
// file, unreadable source directory, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportCompileError reports a compilation error: ie. erroneous input code.
// The source is used to display the erroneous source text.  It may be nil in
// which case no source text will be printed.
func ReportCompileError(src *Source, cerr *CompileError) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel > LogLevelSilent {
		displayCompileMessage("error", src, cerr)
	}
}

// ReportCompileWarning reports a compilation warning.  The arguments are of the
// same form as those to ReportCompileError.
func ReportCompileWarning(src *Source, cwarn *CompileError) {
	if rep.logLevel > LogLevelError {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayCompileMessage("warning", src, cwarn)
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(reprPath string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel > LogLevelSilent {
		displayStdError(reprPath, err)
	}
}

// ReportError reports an error returned by a compilation pass over the given
// source: compile errors are reported with their source text and any other
// error as a standard error.
func ReportError(src *Source, err error) {
	var cerr *CompileError
	if errors.As(err, &cerr) {
		ReportCompileError(src, cerr)
	} else {
		ReportStdError(src.ReprPath, err)
	}
}

// ReportModuleError reports an error loading a project file.
func ReportModuleError(modName string, msg string, args ...interface{}) {
	ReportStdError(modName, fmt.Errorf(msg, args...))
}

// ReportModuleWarning reports a warning from loading a project file.
func ReportModuleWarning(modName string, msg string, args ...interface{}) {
	if rep.logLevel > LogLevelError {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayStdWarning(modName, fmt.Sprintf(msg, args...))
	}
}

// -----------------------------------------------------------------------------

// AnyErrors returns whether or not any errors were detected.
func AnyErrors() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.isErr
}

// -----------------------------------------------------------------------------

// CatchErrors catches any errors thrown by a `panic` during a stage of
// compilation. In effect, this handler determines when any errors
// "unrecoverable" within a given subsection of the compiler should stop
// bubbling.
// NB: This function must ALWAYS be deferred.
func CatchErrors(src *Source) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*CompileError); ok {
			ReportCompileError(src, cerr)
		} else if serr, ok := x.(error); ok {
			ReportStdError(src.ReprPath, serr)
		} else {
			ReportICE("%s", x)
		}
	}
}
