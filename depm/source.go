package depm

import (
	"lait/ast"
	"lait/common"
	"lait/report"
	"lait/scope"
)

// LaitFile represents a lait source file.
type LaitFile struct {
	// Parent is the project the file belongs to.
	Parent *Project

	// Source is the loaded text of the file.
	Source *report.Source

	// Stmts is the list of statements that make up this file.  It is
	// populated by the parser.
	Stmts []ast.Stmt

	// Scopes is the scope history of the file in closing order.  It is
	// populated by the walker.
	Scopes []*scope.Scope
}

// ReprPath returns the representative path of the file.
func (lf *LaitFile) ReprPath() string {
	return lf.Source.ReprPath
}

// Project represents a lait project: a directory with a project file or a
// single source file checked on its own.
type Project struct {
	// Name is the project name.
	Name string

	// AbsPath is the absolute path to the root of the project.  For a single
	// file project, this is the path to the file.
	AbsPath string

	// Version is the lait version the project was written for.
	Version string

	// Files is the list of the project's source files.
	Files []*LaitFile

	// -----------------------------------------------------------------------------

	// Associativity is the associativity mode of the parser.  This must be
	// one of the enumerated modes in `common`.
	Associativity int

	// StrictDecls indicates that declarations whose target is not an
	// identifier should be reported rather than ignored.
	StrictDecls bool
}

// NewProject creates a new project with the default settings.
func NewProject(name, abspath string) *Project {
	return &Project{
		Name:          name,
		AbsPath:       abspath,
		Version:       common.LaitVersion,
		Associativity: common.AssocDeferred,
	}
}

// AddFile adds a source file to the project.
func (p *Project) AddFile(src *report.Source) *LaitFile {
	lf := &LaitFile{Parent: p, Source: src}
	p.Files = append(p.Files, lf)
	return lf
}
