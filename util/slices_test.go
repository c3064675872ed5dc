package util

import (
	"strconv"
	"testing"
)

func TestContains(t *testing.T) {
	emits := []string{"tokens", "ast", "scopes"}

	if !Contains(emits, "ast") {
		t.Error("expected `ast` to be found")
	}

	if Contains(emits, "ir") || Contains([]string(nil), "ast") {
		t.Error("expected a missing element not to be found")
	}
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if len(got) != 3 || got[0] != "1" || got[2] != "3" {
		t.Errorf("unexpected result: %v", got)
	}

	if out := Map([]int(nil), strconv.Itoa); out == nil || len(out) != 0 {
		t.Errorf("expected an empty non-nil slice, got %#v", out)
	}
}
