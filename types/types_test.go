package types

import "testing"

func TestRepr(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Int, "int"},
		{Float, "float"},
		{Char, "char"},
		{String, "str"},
		{Bool, "bool"},
		{Nil, "nil"},
		{&NamedType{Name: "Point"}, "Point"},
	}

	for _, test := range tests {
		if got := test.typ.Repr(); got != test.want {
			t.Errorf("expected %q, got %q", test.want, got)
		}
	}
}

func TestEquals(t *testing.T) {
	tests := []struct {
		a, b Type
		want bool
	}{
		{Int, Int, true},
		{Int, Float, false},
		{&NamedType{Name: "A"}, &NamedType{Name: "A"}, true},
		{&NamedType{Name: "A"}, &NamedType{Name: "B"}, false},
		{&NamedType{Name: "int"}, Int, false},
		{Nil, nil, false},
		{nil, nil, true},
	}

	for _, test := range tests {
		if got := Equals(test.a, test.b); got != test.want {
			t.Errorf("Equals(%v, %v): expected %v, got %v", test.a, test.b, test.want, got)
		}
	}
}

func TestFromName(t *testing.T) {
	for name, want := range map[string]Type{
		"str":   String,
		"int":   Int,
		"float": Float,
		"bool":  Bool,
		"char":  Char,
	} {
		if got := FromName(name); got != want {
			t.Errorf("FromName(%q): expected %s, got %s", name, want.Repr(), got.Repr())
		}
	}

	if nt, ok := FromName("Vec").(*NamedType); !ok || nt.Name != "Vec" {
		t.Errorf("expected a named type, got %v", FromName("Vec"))
	}

	if !IsNil(Nil) || !IsNil(nil) || IsNil(Int) {
		t.Error("IsNil only holds for the nil marker")
	}
}
