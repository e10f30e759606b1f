package artifact

import "testing"

func TestNameForIsDeterministic(t *testing.T) {
	a := NameFor("x = 1\n", "ll")
	b := NameFor("x = 1\n", "ll")
	if a != b {
		t.Fatalf("expected deterministic name, got %q and %q", a, b)
	}
}

func TestNameForDiffersByKind(t *testing.T) {
	ll := NameFor("x = 1\n", "ll")
	exe := NameFor("x = 1\n", "exe")
	if ll == exe {
		t.Fatalf("expected different names for different kinds, both %q", ll)
	}
}

func TestNameForDiffersBySource(t *testing.T) {
	a := NameFor("x = 1\n", "ll")
	b := NameFor("x = 2\n", "ll")
	if a == b {
		t.Fatalf("expected different names for different source, both %q", a)
	}
}
