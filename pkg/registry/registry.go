// Package registry implements the Unknown Registry: a dense-index mapping
// from symbolic unknown labels (node voltages, branch currents) to the
// positions components stamp into. Indices are assigned in first-seen
// order; once a Circuit has finished registering its components, the
// mapping is frozen.
package registry

// Registry maps unknown labels to dense indices in [0, N).
type Registry struct {
	index  map[string]int
	labels []string
	frozen bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register assigns label the next free index if it has not been seen
// before, and returns its index either way. Panics if called after Freeze.
func (r *Registry) Register(label string) int {
	if r.frozen {
		panic("registry: Register called after Freeze")
	}
	if idx, ok := r.index[label]; ok {
		return idx
	}
	idx := len(r.labels)
	r.index[label] = idx
	r.labels = append(r.labels, label)
	return idx
}

// Index returns the index assigned to label and whether it is registered.
func (r *Registry) Index(label string) (int, bool) {
	idx, ok := r.index[label]
	return idx, ok
}

// MustIndex returns the index assigned to label, panicking if it was never
// registered. Intended for use inside Stamp, where an unregistered label
// would indicate a bug in circuit construction, not a runtime condition.
func (r *Registry) MustIndex(label string) int {
	idx, ok := r.index[label]
	if !ok {
		panic("registry: unregistered unknown: " + label)
	}
	return idx
}

// Freeze marks the registry immutable; Len and Labels are stable after.
func (r *Registry) Freeze() { r.frozen = true }

// Len returns N, the total number of registered unknowns.
func (r *Registry) Len() int { return len(r.labels) }

// Labels returns the index-aligned slice of unknown labels, for
// diagnostics.
func (r *Registry) Labels() []string {
	return append([]string(nil), r.labels...)
}
