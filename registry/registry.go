package registry

import (
	"fmt"
	"sort"
)

// Registry is an immutable node-type grammar: the builtin descriptor table
// plus any extension descriptors registered at construction time. All query
// methods are pure, total functions — an unknown kind yields zero values,
// never a panic.
type Registry struct {
	descriptors map[string]*Descriptor
	builtin     map[string]bool
	kinds       []string
}

// New returns a registry holding the builtin grammar.
func New() *Registry {
	r := &Registry{
		descriptors: make(map[string]*Descriptor),
		builtin:     make(map[string]bool),
	}

	for _, d := range builtinDescriptors() {
		d := d
		r.descriptors[d.Kind] = &d
		r.builtin[d.Kind] = true
	}

	r.rebuildKinds()

	return r
}

// WithExtensions returns a copy of the registry with the given extension
// descriptors added. Extensions are the escape hatch for genuinely dynamic
// kinds; they may not override builtin kinds or each other.
func (r *Registry) WithExtensions(descs ...Descriptor) (*Registry, error) {
	out := &Registry{
		descriptors: make(map[string]*Descriptor, len(r.descriptors)+len(descs)),
		builtin:     r.builtin,
	}
	for k, d := range r.descriptors {
		out.descriptors[k] = d
	}

	for _, d := range descs {
		d := d
		if d.Kind == "" {
			return nil, fmt.Errorf("extension descriptor with empty kind")
		}

		if r.builtin[d.Kind] {
			return nil, fmt.Errorf("extension %q overrides a builtin kind", d.Kind)
		}

		if _, dup := out.descriptors[d.Kind]; dup {
			return nil, fmt.Errorf("extension %q already registered", d.Kind)
		}

		if len(d.AllowedChildren) > 0 && d.NamedSlots != nil {
			return nil, fmt.Errorf("extension %q declares both children and slots", d.Kind)
		}

		out.descriptors[d.Kind] = &d
	}

	out.rebuildKinds()

	return out, nil
}

func (r *Registry) rebuildKinds() {
	r.kinds = make([]string, 0, len(r.descriptors))
	for k := range r.descriptors {
		r.kinds = append(r.kinds, k)
	}
	sort.Strings(r.kinds)
}

// GetDescriptor returns the descriptor for a kind, or nil when unknown.
func (r *Registry) GetDescriptor(kind string) *Descriptor {
	return r.descriptors[kind]
}

// IsKnownKind reports whether the kind has a descriptor.
func (r *Registry) IsKnownKind(kind string) bool {
	_, ok := r.descriptors[kind]
	return ok
}

// AllowedChildren returns the kinds allowed as ordinary children, or nil for
// unknown, leaf, and slot-bearing kinds.
func (r *Registry) AllowedChildren(kind string) []string {
	d := r.descriptors[kind]
	if d == nil {
		return nil
	}

	return d.AllowedChildren
}

// NamedSlots returns the slot specs of a slot-bearing kind, or nil.
func (r *Registry) NamedSlots(kind string) map[string]SlotSpec {
	d := r.descriptors[kind]
	if d == nil {
		return nil
	}

	return d.NamedSlots
}

// Props returns the prop shape of a kind, or nil when unknown.
func (r *Registry) Props(kind string) map[string]PropType {
	d := r.descriptors[kind]
	if d == nil {
		return nil
	}

	return d.Props
}

// Kinds returns every registered kind, sorted.
func (r *Registry) Kinds() []string {
	return r.kinds
}
