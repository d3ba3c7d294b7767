// Package registry holds the node-type grammar: a declarative table of which
// node kinds may nest inside which, including named, cardinality-constrained
// content slots. It is the single source of truth consumed by the structural
// validator and both transformers.
package registry

// PropType is the primitive type vocabulary for node props.
type PropType string

const (
	PropString  PropType = "string"
	PropNumber  PropType = "number"
	PropBoolean PropType = "boolean"
)

// SlotSpec constrains one named slot of a slot-bearing kind.
type SlotSpec struct {
	Description     string   `yaml:"description,omitempty"`
	AllowedChildren []string `yaml:"allowedChildren"`
	Required        bool     `yaml:"required,omitempty"`
	MinItems        int      `yaml:"minItems,omitempty"`
	// MaxItems is nil when the slot is unbounded.
	MaxItems *int `yaml:"maxItems,omitempty"`
}

// Allows reports whether the slot accepts children of the given kind.
func (s SlotSpec) Allows(kind string) bool {
	for _, k := range s.AllowedChildren {
		if k == kind {
			return true
		}
	}

	return false
}

// Descriptor is one node kind's grammar entry. Exactly one of AllowedChildren
// (non-empty) or NamedSlots (non-nil) is meaningful; a descriptor with neither
// describes a leaf kind.
type Descriptor struct {
	Kind        string `yaml:"kind"`
	Description string `yaml:"description,omitempty"`

	AllowedChildren []string            `yaml:"allowedChildren,omitempty"`
	NamedSlots      map[string]SlotSpec `yaml:"namedSlots,omitempty"`

	Props map[string]PropType `yaml:"props,omitempty"`
}

// IsLeaf reports whether the kind accepts neither children nor slots.
func (d *Descriptor) IsLeaf() bool {
	return len(d.AllowedChildren) == 0 && d.NamedSlots == nil
}

// AllowsChild reports whether the kind accepts ordinary children of the
// given kind.
func (d *Descriptor) AllowsChild(kind string) bool {
	for _, k := range d.AllowedChildren {
		if k == kind {
			return true
		}
	}

	return false
}

func maxItems(n int) *int { return &n }
