// Package cms defines the target content-management system's JSON shapes:
// the story envelope, component payloads, and the rich-text document codec.
package cms

// Field names every component payload carries.
const (
	FieldComponent = "component"
	FieldUID       = "_uid"
)

// ChildArrayFields are the field names under which different component kinds
// store their child arrays. Counting and reverse transformation consult all
// of them, since no single name is universal.
var ChildArrayFields = []string{"body", "items", "content"}

// Component is a single CMS component payload. Kind-specific fields live
// alongside the common "component" and "_uid" keys, so the payload is kept
// as a map with typed accessors rather than a fixed struct.
type Component map[string]any

// New builds a component payload with the given component name.
func New(name string) Component {
	return Component{FieldComponent: name}
}

// Name returns the CMS component name, or "" when absent.
func (c Component) Name() string {
	s, _ := c[FieldComponent].(string)
	return s
}

// UID returns the component's unique identifier, or "" when not stamped yet.
func (c Component) UID() string {
	s, _ := c[FieldUID].(string)
	return s
}

// SetUID stamps the identifier unless one is already present.
func (c Component) SetUID(uid string) {
	if c.UID() == "" {
		c[FieldUID] = uid
	}
}

// String returns the string value of a field, or "" when absent or not a string.
func (c Component) String(field string) string {
	s, _ := c[field].(string)
	return s
}

// Map returns the map value of a field, or nil.
func (c Component) Map(field string) map[string]any {
	m, _ := c[field].(map[string]any)
	return m
}

// Children returns the component array stored under the given field. Both
// []Component and the generic []any form produced by JSON decoding are
// accepted; non-component entries are skipped.
func (c Component) Children(field string) []Component {
	switch arr := c[field].(type) {
	case []Component:
		return arr
	case []any:
		out := make([]Component, 0, len(arr))
		for _, e := range arr {
			if m, ok := e.(map[string]any); ok {
				out = append(out, Component(m))
			}
		}

		return out
	default:
		return nil
	}
}

// ChildArrays returns every child array present on the component, keyed by
// field name, in ChildArrayFields order.
func (c Component) ChildArrays() map[string][]Component {
	var out map[string][]Component

	for _, field := range ChildArrayFields {
		children := c.Children(field)
		if children == nil {
			continue
		}

		if out == nil {
			out = make(map[string][]Component, 1)
		}
		out[field] = children
	}

	return out
}

// Count returns the component itself plus every component reachable through
// any recognized child-array field, recursively.
func Count(c Component) int {
	total := 1

	for _, field := range ChildArrayFields {
		for _, child := range c.Children(field) {
			total += Count(child)
		}
	}

	return total
}
