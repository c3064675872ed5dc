// Package cmd is the top-level "driver" package for lait: it contains all the
// functionality for parsing command-line arguments, managing checker state,
// and running the various passes over a project.
package cmd

import (
	"lait/common"
	"lait/depm"
	"lait/report"
)

// Compiler represents the overall state and configuration of a check.
type Compiler struct {
	// The path to the project directory or source file being checked.
	rootPath string

	// The associativity mode selected on the command line.  This is -1 if the
	// project's setting should be used.
	assocOverride int

	// The loaded project.
	project *depm.Project
}

// NewCompiler creates a new compiler for the project at the given path.
func NewCompiler(rootPath string) *Compiler {
	return &Compiler{
		rootPath:      rootPath,
		assocOverride: -1,
	}
}

// OverrideAssociativity selects the associativity mode regardless of the
// project settings.
func (c *Compiler) OverrideAssociativity(mode int) {
	c.assocOverride = mode
}

// Load loads the project and its sources.
func (c *Compiler) Load() bool {
	proj, ok := depm.LoadProject(c.rootPath)
	if !ok {
		return false
	}

	if c.assocOverride >= 0 {
		proj.Associativity = c.assocOverride
	}

	c.project = proj
	return true
}

// Analyze runs all the passes over the project: parsing and then walking.
// Walking only begins once every file has parsed.
func (c *Compiler) Analyze() bool {
	if !c.Load() {
		return false
	}

	report.ReportCompileHeader(
		common.LaitVersion,
		c.project.Name,
		common.AssocName(c.project.Associativity),
	)

	ok := c.ParseFiles() && c.WalkFiles()

	report.ReportCompilationFinished(len(c.project.Files))
	return ok
}

// Project returns the loaded project.
func (c *Compiler) Project() *depm.Project {
	return c.project
}
