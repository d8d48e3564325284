package registry

import "testing"

func TestRegisterInsertionOrder(t *testing.T) {
	r := New()
	if idx := r.Register("a"); idx != 0 {
		t.Errorf("Register(a) = %d, want 0", idx)
	}
	if idx := r.Register("b"); idx != 1 {
		t.Errorf("Register(b) = %d, want 1", idx)
	}
	if idx := r.Register("a"); idx != 0 {
		t.Errorf("re-Register(a) = %d, want 0 (stable)", idx)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

// TestRegistryIndexStability covers the spec's invariant #4: building the
// same label sequence twice yields identical label->index mappings.
func TestRegistryIndexStability(t *testing.T) {
	labels := []string{"voltage_node_n1", "voltage_node_gnd", "unknown_current_vin", "voltage_node_n1"}

	r1 := New()
	for _, l := range labels {
		r1.Register(l)
	}
	r2 := New()
	for _, l := range labels {
		r2.Register(l)
	}

	for _, l := range labels {
		i1, _ := r1.Index(l)
		i2, _ := r2.Index(l)
		if i1 != i2 {
			t.Errorf("index for %q diverged: %d vs %d", l, i1, i2)
		}
	}
}

func TestIndexUnregistered(t *testing.T) {
	r := New()
	if _, ok := r.Index("missing"); ok {
		t.Error("Index(missing) reported ok=true")
	}
}

func TestMustIndexPanicsOnUnregistered(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unregistered label")
		}
	}()
	New().MustIndex("missing")
}

func TestRegisterPanicsAfterFreeze(t *testing.T) {
	r := New()
	r.Register("a")
	r.Freeze()
	defer func() {
		if recover() == nil {
			t.Error("expected panic after Freeze")
		}
	}()
	r.Register("b")
}

func TestLabelsReturnsCopy(t *testing.T) {
	r := New()
	r.Register("a")
	labels := r.Labels()
	labels[0] = "mutated"
	if got, _ := r.Index("a"); got != 0 {
		t.Fatalf("unexpected index mutation")
	}
	if r.Labels()[0] != "a" {
		t.Error("Labels() mutation leaked into registry state")
	}
}
