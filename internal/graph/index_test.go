package graph

import "testing"

func TestNodeIndex_FirstSeenOrder(t *testing.T) {
	ix := NewNodeIndex()
	for i, raw := range []string{"A|1", "B|2", "C|3"} {
		n, err := ix.Intern(raw)
		if err != nil {
			t.Fatalf("Intern(%q): %v", raw, err)
		}
		if n != Node(i) {
			t.Errorf("Intern(%q) = %d, want %d", raw, n, i)
		}
	}
	if ix.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ix.Len())
	}
}

func TestNodeIndex_InternIsIdempotent(t *testing.T) {
	ix := NewNodeIndex()
	first, _ := ix.Intern("A|1")
	if _, err := ix.Intern("B|2"); err != nil {
		t.Fatal(err)
	}
	again, err := ix.Intern("A|1")
	if err != nil {
		t.Fatal(err)
	}
	if again != first {
		t.Errorf("re-interning returned %d, want %d", again, first)
	}
	if ix.Len() != 2 {
		t.Errorf("Len() = %d after re-intern, want 2", ix.Len())
	}
}

func TestNodeIndex_Resolve(t *testing.T) {
	ix := NewNodeIndex()
	raws := []string{"A|1", "", "plain"}
	for _, raw := range raws {
		if _, err := ix.Intern(raw); err != nil {
			t.Fatal(err)
		}
	}
	for i, raw := range raws {
		if got := ix.Resolve(Node(i)); got != raw {
			t.Errorf("Resolve(%d) = %q, want %q", i, got, raw)
		}
	}
}
