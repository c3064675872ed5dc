package depm

import (
	"bytes"
	"testing"

	"lait/report"
	"lait/scope"
	"lait/types"

	"gopkg.in/yaml.v3"
)

func TestEncodeScopes(t *testing.T) {
	global := scope.New(nil, []string{"x", "y"})
	if err := global.Types.SetType(0, 0, scope.TypeEntry{Type: types.Int, Depth: 0}); err != nil {
		t.Fatal(err)
	}

	block := scope.New(global.Snapshot(), []string{"x"})
	if err := block.Types.SetType(0, 0, scope.TypeEntry{Type: &types.NamedType{Name: "Point"}, Depth: 1}); err != nil {
		t.Fatal(err)
	}

	proj := NewProject("demo", "/demo")
	lf := proj.AddFile(report.NewSource("main.lait", ""))
	lf.Scopes = []*scope.Scope{block, global}

	buff := &bytes.Buffer{}
	if err := EncodeScopes(buff, lf); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	var got yamlFile
	if err := yaml.Unmarshal(buff.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %s\n%s", err, buff.String())
	}

	if got.File != "main.lait" || len(got.Scopes) != 2 {
		t.Fatalf("unexpected document:\n%s", buff.String())
	}

	if got.Scopes[0].Depth != 1 || got.Scopes[0].Symbols[0].Types[0].Type != "Point" {
		t.Errorf("unexpected block scope: %+v", got.Scopes[0])
	}

	globalSyms := got.Scopes[1].Symbols
	if len(globalSyms) != 2 || globalSyms[1].Name != "y" || globalSyms[1].Slot != 1 {
		t.Errorf("unexpected global symbols: %+v", globalSyms)
	}

	if len(globalSyms[1].Types) != 0 {
		t.Errorf("expected `y` to have no types, got %+v", globalSyms[1].Types)
	}
}
