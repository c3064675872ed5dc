package depm

import (
	"io"

	"gopkg.in/yaml.v3"
)

// yamlFile is the YAML form of the scope history of one file.
type yamlFile struct {
	File   string      `yaml:"file"`
	Scopes []yamlScope `yaml:"scopes"`
}

// yamlScope is the YAML form of a closed scope.
type yamlScope struct {
	Depth   int          `yaml:"depth"`
	Symbols []yamlSymbol `yaml:"symbols,omitempty"`
}

// yamlSymbol is the YAML form of a slot and its type history.
type yamlSymbol struct {
	Name  string          `yaml:"name"`
	Slot  int             `yaml:"slot"`
	Types []yamlTypeEntry `yaml:"types,omitempty"`
}

// yamlTypeEntry is the YAML form of a type history entry.
type yamlTypeEntry struct {
	Type  string `yaml:"type"`
	Depth int    `yaml:"depth"`
}

// EncodeScopes writes the scope history of the given files as a stream of YAML
// documents, one per file.
func EncodeScopes(w io.Writer, files ...*LaitFile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	for _, lf := range files {
		if err := enc.Encode(newYAMLFile(lf)); err != nil {
			return err
		}
	}

	return enc.Close()
}

// newYAMLFile converts the scope history of a file to its YAML form.
func newYAMLFile(lf *LaitFile) yamlFile {
	yf := yamlFile{File: lf.ReprPath()}

	for _, s := range lf.Scopes {
		ys := yamlScope{Depth: s.Depth}

		for slot, name := range s.Names() {
			sym := yamlSymbol{Name: name, Slot: slot}

			for _, e := range s.Types.History(slot) {
				typeRepr := "nil"
				if e.Type != nil {
					typeRepr = e.Type.Repr()
				}

				sym.Types = append(sym.Types, yamlTypeEntry{Type: typeRepr, Depth: e.Depth})
			}

			ys.Symbols = append(ys.Symbols, sym)
		}

		yf.Scopes = append(yf.Scopes, ys)
	}

	return yf
}
