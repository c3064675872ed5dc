package cmd

import (
	"sync"

	"lait/depm"
	"lait/report"
	"lait/syntax"
	"lait/walk"
)

// ParseFiles parses all the source files of the project concurrently.
func (c *Compiler) ParseFiles() bool {
	if len(c.project.Files) == 0 {
		report.ReportFatal("project `%s` contains no source files", c.project.Name)
	}

	wg := &sync.WaitGroup{}
	for _, lf := range c.project.Files {
		wg.Add(1)

		go func(lf *depm.LaitFile) {
			syntax.ParseFile(lf)
			wg.Done()
		}(lf)
	}

	// Wait for parsing to finish.
	wg.Wait()

	return !report.AnyErrors()
}

// WalkFiles performs semantic analysis on all the source files of the project
// concurrently.  Files share no scopes.
func (c *Compiler) WalkFiles() bool {
	wg := &sync.WaitGroup{}
	for _, lf := range c.project.Files {
		wg.Add(1)

		go func(lf *depm.LaitFile) {
			walk.WalkFile(lf)
			wg.Done()
		}(lf)
	}

	wg.Wait()

	return !report.AnyErrors()
}
