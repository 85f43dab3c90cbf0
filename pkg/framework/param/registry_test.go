package param

import (
	"testing"
)

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	r.Add(
		New(2, "C").Build(),
		New(0, "A").Build(),
		New(1, "B").Build(),
	)

	if r.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", r.Count())
	}

	// insertion order, not ID order
	wantNames := []string{"C", "A", "B"}
	for i, want := range wantNames {
		p := r.GetByIndex(int32(i))
		if p == nil || p.Name != want {
			t.Errorf("GetByIndex(%d) = %v, want name %s", i, p, want)
		}
	}
}

func TestRegistryDuplicatesSkipped(t *testing.T) {
	r := NewRegistry()
	first := New(7, "First").Build()
	r.Add(first)
	r.Add(New(7, "Second").Build())

	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
	if got := r.Get(7); got != first {
		t.Error("duplicate Add replaced the original parameter")
	}
}

func TestRegistryLookupMisses(t *testing.T) {
	r := NewRegistry()
	if r.Get(42) != nil {
		t.Error("Get on empty registry should return nil")
	}
	if r.GetByIndex(0) != nil || r.GetByIndex(-1) != nil {
		t.Error("GetByIndex out of range should return nil")
	}
}

func TestRegistryAll(t *testing.T) {
	r := NewRegistry()
	r.Add(New(0, "A").Build(), New(1, "B").Build())

	all := r.All()
	if len(all) != 2 || all[0].Name != "A" || all[1].Name != "B" {
		t.Errorf("All() = %v, want [A B]", all)
	}
}
