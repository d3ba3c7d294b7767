package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExtensionFile is the root of a YAML extension-descriptor document. It is
// the authoritative format for registering dynamic kinds without touching
// the builtin grammar.
type ExtensionFile struct {
	// Version of the extension schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Descriptors lists the extension kinds to register.
	Descriptors []Descriptor `yaml:"descriptors"`
}

// LoadExtensionsFile loads a YAML extension document from disk and returns a
// registry with its descriptors added.
func (r *Registry) LoadExtensionsFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read extension file %s: %w", path, err)
	}

	return r.LoadExtensions(data)
}

// LoadExtensions parses YAML extension data and returns a registry with its
// descriptors added.
func (r *Registry) LoadExtensions(data []byte) (*Registry, error) {
	ef, err := ParseExtensions(data)
	if err != nil {
		return nil, err
	}

	return r.WithExtensions(ef.Descriptors...)
}

// ParseExtensions parses YAML data into an ExtensionFile and applies
// defaults.
func ParseExtensions(data []byte) (*ExtensionFile, error) {
	var ef ExtensionFile

	if err := yaml.Unmarshal(data, &ef); err != nil {
		return nil, fmt.Errorf("failed to parse extension YAML: %w", err)
	}

	applyDefaults(&ef)

	return &ef, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(ef *ExtensionFile) {
	if ef.Version == "" {
		ef.Version = "1"
	}

	for i := range ef.Descriptors {
		d := &ef.Descriptors[i]

		// A required slot implies at least one item.
		for name, spec := range d.NamedSlots {
			if spec.Required && spec.MinItems == 0 {
				spec.MinItems = 1
				d.NamedSlots[name] = spec
			}
		}
	}
}
