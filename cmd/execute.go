package cmd

import (
	"os"

	"lait/common"
	"lait/depm"
	"lait/report"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `lait` CLI utility.  It returns the
// exit code of the process.
func Execute() int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("lait", "lait checks lait source files and projects", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the checker log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "parse and check source code", true)
	checkCmd.AddPrimaryArg("path", "the path to the project directory or source file to check", true)
	checkCmd.AddStringArg("assoc", "a", "override the associativity mode: deferred or standard", false)

	dumpCmd := cli.AddSubcommand("dump", "print the tokens, syntax tree, or scopes of source code", true)
	dumpCmd.AddPrimaryArg("path", "the path to the project directory or source file to dump", true)
	dumpCmd.AddStringArg("emit", "e", "what to print: tokens, ast, or scopes (default)", false)
	dumpCmd.AddStringArg("assoc", "a", "override the associativity mode: deferred or standard", false)

	modCmd := cli.AddSubcommand("mod", "manage projects", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a project in the working directory", true)
	modInitCmd.AddPrimaryArg("name", "the name of the project", true)
	modInitCmd.AddFlag("standard", "s", "use standard associativity for binary operators")
	modInitCmd.AddFlag("strict", "st", "reject declarations whose target is not an identifier")

	cli.AddSubcommand("version", "print the lait version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
		return 1
	}

	report.InitReporter(report.LogLevelFromName(result.Arguments["loglevel"].(string)))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		return execCheckCommand(subResult)
	case "dump":
		return execDumpCommand(subResult)
	case "mod":
		return execModCommand(subResult)
	case "version":
		report.DisplayInfoMessage("lait version", common.LaitVersion)
	}

	return 0
}

// execCheckCommand executes the check subcommand.
func execCheckCommand(result *olive.ArgParseResult) int {
	c, ok := newCompilerFromArgs(result)
	if !ok {
		return 1
	}

	if !c.Analyze() {
		return 1
	}

	return 0
}

// execModCommand executes the `mod` subcommand and its subcommands.
func execModCommand(result *olive.ArgParseResult) int {
	subcmdName, subResult, _ := result.Subcommand()

	workDir, err := os.Getwd()
	if err != nil {
		report.ReportFatal("unable to get working directory: %s", err.Error())
		return 1
	}

	switch subcmdName {
	case "init":
		name, _ := subResult.PrimaryArg()

		assoc := common.AssocDeferred
		if subResult.HasFlag("standard") {
			assoc = common.AssocStandard
		}

		if err := depm.InitModule(workDir, name, assoc, subResult.HasFlag("strict")); err != nil {
			report.ReportModuleError(name, "%s", err.Error())
			return 1
		}

		report.DisplayInfoMessage("created", common.LaitModuleFileName)
	}

	return 0
}

// -----------------------------------------------------------------------------

// newCompilerFromArgs creates a compiler from the arguments of a subcommand
// that operates on a project path.
func newCompilerFromArgs(result *olive.ArgParseResult) (*Compiler, bool) {
	rootPath, _ := result.PrimaryArg()
	c := NewCompiler(rootPath)

	if assocArg, ok := result.Arguments["assoc"]; ok {
		mode, ok := common.AssocNames[assocArg.(string)]
		if !ok {
			report.ReportFatal("unknown associativity mode: `%s`", assocArg)
			return nil, false
		}

		c.OverrideAssociativity(mode)
	}

	return c, true
}
