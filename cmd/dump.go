package cmd

import (
	"fmt"
	"io"
	"os"

	"lait/depm"
	"lait/report"
	"lait/syntax"
	"lait/util"
	"lait/walk"

	"github.com/ComedicChimera/olive"
	"github.com/kr/pretty"
)

// Enumeration of the things the dump subcommand can print.
const (
	emitTokens = "tokens"
	emitAST    = "ast"
	emitScopes = "scopes"
)

// execDumpCommand executes the dump subcommand.  Files are processed in path
// order so the output is stable.
func execDumpCommand(result *olive.ArgParseResult) int {
	emit := emitScopes
	if emitArg, ok := result.Arguments["emit"]; ok {
		emit = emitArg.(string)
	}

	if !util.Contains([]string{emitTokens, emitAST, emitScopes}, emit) {
		report.ReportFatal("unknown dump output: `%s`", emit)
		return 1
	}

	c, ok := newCompilerFromArgs(result)
	if !ok || !c.Load() {
		return 1
	}

	for _, lf := range c.Project().Files {
		if !dumpFile(os.Stdout, lf, emit) {
			return 1
		}
	}

	return 0
}

// dumpFile runs the passes required to produce the requested output for a
// file and writes it.
func dumpFile(w io.Writer, lf *depm.LaitFile, emit string) bool {
	if emit == emitTokens {
		tokens, err := syntax.NewLexer(lf.Source).Tokenize()
		if err != nil {
			report.ReportError(lf.Source, err)
			return false
		}

		fmt.Fprintf(w, "-- %s\n", lf.ReprPath())
		for _, tok := range tokens {
			pretty.Fprintf(w, "%# v\n", tok)
		}

		return true
	}

	if !syntax.ParseFile(lf) {
		return false
	}

	if emit == emitAST {
		fmt.Fprintf(w, "-- %s\n", lf.ReprPath())
		pretty.Fprintf(w, "%# v\n", lf.Stmts)
		return true
	}

	// Scopes closed before an error are still dumped.
	ok := walk.WalkFile(lf)
	if err := depm.EncodeScopes(w, lf); err != nil {
		report.ReportStdError(lf.ReprPath(), err)
		return false
	}

	return ok
}
