package reverse

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"storycaster/cms"
	"storycaster/ir"
	"storycaster/transform"
)

// fallbackNode builds a best-effort IR node for a component with no usable
// transform. The heuristic guesses a kind from the component name; the full
// original payload is preserved under a debug field so nothing is lost, and
// the node is marked so downstream tooling can surface it.
func (r *Run) fallbackNode(comp cms.Component, impact transform.Impact) *ir.Node {
	name := comp.Name()
	kind := heuristicKind(name)

	node := &ir.Node{
		Kind:         kind,
		Name:         name,
		ComponentKey: comp.UID(),
		Meta: map[string]any{
			"fallback":          true,
			"originalComponent": name,
			"debug":             map[string]any(comp),
		},
	}

	r.Warn(transform.Warning{
		Type:      transform.WarnUnsupportedComponent,
		Component: name,
		Message:   fmt.Sprintf("no reverse transform for %q; emitting %s fallback", name, kind),
		Impact:    impact,
	})

	// Child arrays are not descended into; the structure under an unknown
	// component is only recoverable from the debug payload.
	if len(comp.ChildArrays()) > 0 {
		r.Warn(transform.Warning{
			Type:      transform.WarnSimplifiedStructure,
			Component: name,
			Message:   fmt.Sprintf("children of unsupported component %q were flattened into the fallback node", name),
			Impact:    transform.ImpactMedium,
		})
	}

	logger := r.Session().Logger
	if e := logger.Trace(); e.Enabled() {
		e.Str("component", name).
			Str("payload", spew.Sdump(map[string]any(comp))).
			Msg("fallback payload")
	}

	return node
}

// heuristicKind guesses an IR kind from a component name. The checks run in
// priority order; anything unrecognized lands in a generic group.
func heuristicKind(component string) ir.Kind {
	name := strings.ToLower(component)

	switch {
	case strings.Contains(name, "text"):
		return ir.KindText
	case strings.Contains(name, "headline"), strings.Contains(name, "title"):
		return ir.KindHeadline
	case strings.Contains(name, "image"), strings.Contains(name, "img"):
		return ir.KindImage
	case strings.Contains(name, "divider"):
		return ir.KindDivider
	default:
		return ir.KindGroup
	}
}
