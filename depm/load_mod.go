package depm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lait/common"
	"lait/report"

	"github.com/pelletier/go-toml"
)

// tomlModule represents a lait project as it is encoded in TOML.
type tomlModule struct {
	Name        string     `toml:"name"`
	LaitVersion string     `toml:"lait-version"`
	Syntax      tomlSyntax `toml:"syntax"`
	Check       tomlCheck  `toml:"check"`
}

// tomlSyntax is the `[syntax]` table of a project file.
type tomlSyntax struct {
	Associativity string `toml:"associativity"`
}

// tomlCheck is the `[check]` table of a project file.
type tomlCheck struct {
	StrictDeclarations bool `toml:"strict-declarations"`
}

// LoadProject loads the project at the given path.  The path is either a
// project directory containing a project file or a single source file which
// is checked with the default settings.  This function returns the project
// with all its sources loaded and a success boolean.
func LoadProject(path string) (*Project, bool) {
	abspath, err := filepath.Abs(path)
	if err != nil {
		report.ReportFatal("unable to resolve path `%s`: %s", path, err.Error())
		return nil, false
	}

	finfo, err := os.Stat(abspath)
	if err != nil {
		report.ReportFatal("unable to open `%s`: %s", path, err.Error())
		return nil, false
	}

	if !finfo.IsDir() {
		if filepath.Ext(abspath) != common.LaitFileExt {
			report.ReportFatal("`%s` is not a lait source file", path)
			return nil, false
		}

		name := strings.TrimSuffix(filepath.Base(abspath), common.LaitFileExt)
		proj := NewProject(name, abspath)

		src, err := report.LoadSource(abspath, filepath.Base(abspath))
		if err != nil {
			report.ReportStdError(filepath.Base(abspath), err)
			return nil, false
		}

		proj.AddFile(src)
		return proj, true
	}

	proj, ok := LoadModule(abspath)
	if !ok {
		return nil, false
	}

	if err := loadSources(proj); err != nil {
		report.ReportModuleError(proj.Name, "error loading sources: %s", err.Error())
		return nil, false
	}

	return proj, true
}

// LoadModule loads and validates a project file.  `abspath` is the absolute
// path to the project directory.  This function returns the deserialized
// project and a success boolean.
func LoadModule(abspath string) (*Project, bool) {
	modName := fmt.Sprintf("<project at `%s`>", abspath)

	buff, err := os.ReadFile(filepath.Join(abspath, common.LaitModuleFileName))
	if err != nil {
		report.ReportModuleError(modName, "unable to read project file: %s", err.Error())
		return nil, false
	}

	tomlMod := &tomlModule{}
	if err := toml.Unmarshal(buff, tomlMod); err != nil {
		report.ReportModuleError(modName, "error parsing project file: %s", err.Error())
		return nil, false
	}

	proj := NewProject("", abspath)
	if !validateModule(proj, tomlMod) {
		return nil, false
	}

	return proj, true
}

// validateModule checks that the project file contents are valid and moves
// them over to the project.
func validateModule(proj *Project, tomlMod *tomlModule) bool {
	modName := fmt.Sprintf("<project at `%s`>", proj.AbsPath)

	if tomlMod.Name == "" {
		report.ReportModuleError(modName, "missing project name")
		return false
	}

	if !IsValidIdentifier(tomlMod.Name) {
		report.ReportModuleError(modName, "project name must be a valid identifier")
		return false
	}

	if tomlMod.LaitVersion != common.LaitVersion {
		report.ReportModuleWarning(tomlMod.Name, "version of project `%s` (v%s) does not match current lait version (v%s)",
			tomlMod.Name,
			tomlMod.LaitVersion,
			common.LaitVersion,
		)
	}

	if tomlMod.Syntax.Associativity != "" {
		mode, ok := common.AssocNames[tomlMod.Syntax.Associativity]
		if !ok {
			report.ReportModuleError(tomlMod.Name, "unknown associativity mode: `%s`", tomlMod.Syntax.Associativity)
			return false
		}

		proj.Associativity = mode
	}

	// move all the relevant TOML attributes over to the project
	proj.Name = tomlMod.Name
	proj.Version = tomlMod.LaitVersion
	proj.StrictDecls = tomlMod.Check.StrictDeclarations

	return true
}

// loadSources loads every lait source file below the project directory in
// path order.
func loadSources(proj *Project) error {
	var paths []string

	err := filepath.WalkDir(proj.AbsPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && filepath.Ext(path) == common.LaitFileExt {
			paths = append(paths, path)
		}

		return nil
	})

	if err != nil {
		return err
	}

	sort.Strings(paths)
	for _, path := range paths {
		reprPath, err := filepath.Rel(proj.AbsPath, path)
		if err != nil {
			return err
		}

		src, err := report.LoadSource(path, filepath.ToSlash(reprPath))
		if err != nil {
			return err
		}

		proj.AddFile(src)
	}

	return nil
}

// -----------------------------------------------------------------------------

// ErrModuleExists is returned when initializing a project in a directory that
// already contains a project file.
var ErrModuleExists = errors.New("project file already exists")

// InitModule writes a new project file with the given settings to the
// directory at `abspath`.
func InitModule(abspath, name string, assoc int, strict bool) error {
	if !IsValidIdentifier(name) {
		return fmt.Errorf("project name `%s` must be a valid identifier", name)
	}

	modPath := filepath.Join(abspath, common.LaitModuleFileName)
	if _, err := os.Stat(modPath); err == nil {
		return ErrModuleExists
	}

	buff, err := toml.Marshal(tomlModule{
		Name:        name,
		LaitVersion: common.LaitVersion,
		Syntax:      tomlSyntax{Associativity: common.AssocName(assoc)},
		Check:       tomlCheck{StrictDeclarations: strict},
	})
	if err != nil {
		return err
	}

	return os.WriteFile(modPath, buff, 0644)
}
