// Package validate checks candidate IR trees against the node-type grammar
// and produces actionable diagnostics. Validation never throws: findings are
// returned on the result, and only the surrounding transformers decide
// whether invalidity is fatal.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"storycaster/diag"
	"storycaster/internal/match"
	"storycaster/ir"
	"storycaster/registry"
)

// Histogram codes for the running statistics.
const (
	codeNilLayout           = "nil_layout"
	codeEmptyContent        = "empty_content"
	codeUnknownVersion      = "unknown_version"
	codeMissingPage         = "missing_page"
	codeUnknownKind         = "unknown_kind"
	codeUnknownSlot         = "unknown_slot"
	codeMissingRequiredSlot = "missing_required_slots"
	codeSlotChildNotAllowed = "slot_child_not_allowed"
	codeSlotCardinality     = "slot_cardinality"
	codeChildNotAllowed     = "child_not_allowed"
	codeChildrenOnLeaf      = "children_on_leaf"
	codeSlotsNotDeclared    = "slots_not_declared"
	codePropTypeMismatch    = "prop_type_mismatch"
)

const maxSuggestions = 3

// Options configures a Validator.
type Options struct {
	// Registry is the grammar to validate against. Defaults to the builtin.
	Registry *registry.Registry

	// Logger receives a summary log per validation. Defaults to no-op.
	Logger *zerolog.Logger
}

// Validator validates IR layouts against a node-type registry. It keeps
// running statistics across calls; create one per invocation context rather
// than sharing across goroutines.
type Validator struct {
	reg    *registry.Registry
	logger zerolog.Logger
	stats  Stats
}

// New builds a validator.
func New(opts *Options) *Validator {
	if opts == nil {
		opts = &Options{}
	}

	reg := opts.Registry
	if reg == nil {
		reg = registry.New()
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Validator{reg: reg, logger: logger, stats: Stats{Histogram: map[string]int{}}}
}

// Validate checks the layout and returns the accumulated diagnostics. A
// malformed top-level input short-circuits with a single structural error.
func (v *Validator) Validate(layout *ir.Layout) *diag.Result {
	res := &diag.Result{IsValid: true}
	defer v.record(res)

	if layout == nil {
		v.addError(res, codeNilLayout, diag.Diagnostic{
			Type:    diag.TypeStructural,
			Path:    []string{},
			Message: "layout is missing; expected an object with version, name and content",
		})

		return res
	}

	if len(layout.Content) == 0 {
		v.addError(res, codeEmptyContent, diag.Diagnostic{
			Type:     diag.TypeStructural,
			Path:     []string{"content"},
			Message:  "layout content must not be empty",
			Expected: "at least one node",
			Received: "0 nodes",
		})

		return res
	}

	if layout.Version != ir.SupportedVersion {
		v.addWarning(res, codeUnknownVersion, diag.Diagnostic{
			Type:     diag.TypeStructural,
			Path:     []string{"version"},
			Message:  fmt.Sprintf("layout version %q is not fully supported", layout.Version),
			Expected: ir.SupportedVersion,
			Received: layout.Version,
		})
	}

	if !hasTopLevelPage(layout) {
		v.addWarning(res, codeMissingPage, diag.Diagnostic{
			Type:       diag.TypeStructural,
			Path:       []string{"content"},
			Message:    `no "page" node found at the top level`,
			Suggestion: `wrap the content in a node of kind "page"`,
		})
	}

	for i, node := range layout.Content {
		v.validateNode(res, node, []string{fmt.Sprintf("content[%d]", i)})
	}

	return res
}

// Feedback renders the result of Validate as retry-loop feedback text.
func (v *Validator) Feedback(res *diag.Result) string {
	return diag.RenderFeedback(res)
}

func (v *Validator) validateNode(res *diag.Result, node *ir.Node, path []string) {
	if node == nil {
		return
	}

	desc := v.reg.GetDescriptor(node.Kind)
	if desc == nil {
		v.addError(res, codeUnknownKind, diag.Diagnostic{
			Type:       diag.TypeSchema,
			Path:       path,
			Message:    fmt.Sprintf("unknown node kind %q", node.Kind),
			Received:   node.Kind,
			Suggestion: suggestKinds(node.Kind, v.reg.Kinds()),
		})

		// No grammar to check the subtree against.
		return
	}

	v.validateProps(res, node, desc, path)

	if desc.NamedSlots != nil {
		v.validateSlots(res, node, desc, path)
	} else if node.HasSlots() {
		v.addError(res, codeSlotsNotDeclared, diag.Diagnostic{
			Type:     diag.TypeRelationship,
			Path:     path,
			Message:  fmt.Sprintf("kind %q does not accept named slots", node.Kind),
			Received: strings.Join(usedSlotNames(node), ", "),
		})
	}

	v.validateChildren(res, node, desc, path)
}

func (v *Validator) validateChildren(res *diag.Result, node *ir.Node, desc *registry.Descriptor, path []string) {
	if len(node.Children) > 0 && len(desc.AllowedChildren) == 0 {
		v.addWarning(res, codeChildrenOnLeaf, diag.Diagnostic{
			Type:     diag.TypeStructural,
			Path:     path,
			Message:  fmt.Sprintf("kind %q allows no children but the node carries %d", node.Kind, len(node.Children)),
			Expected: "no children",
			Received: fmt.Sprintf("%d children", len(node.Children)),
		})
	}

	for i, child := range node.Children {
		childPath := append(append([]string{}, path...), fmt.Sprintf("children[%d]", i))

		if child == nil {
			continue
		}

		if len(desc.AllowedChildren) > 0 && !desc.AllowsChild(child.Kind) {
			v.addError(res, codeChildNotAllowed, diag.Diagnostic{
				Type:       diag.TypeRelationship,
				Path:       childPath,
				Message:    fmt.Sprintf("kind %q is not allowed inside %q", child.Kind, node.Kind),
				Expected:   strings.Join(desc.AllowedChildren, ", "),
				Received:   child.Kind,
				Suggestion: suggestKinds(child.Kind, desc.AllowedChildren),
			})
		}

		v.validateNode(res, child, childPath)
	}
}

func (v *Validator) validateSlots(res *diag.Result, node *ir.Node, desc *registry.Descriptor, path []string) {
	validNames := slotNames(desc.NamedSlots)

	// Used slots must exist in the descriptor.
	for _, name := range usedSlotNames(node) {
		if _, ok := desc.NamedSlots[name]; !ok {
			v.addError(res, codeUnknownSlot, diag.Diagnostic{
				Type:     diag.TypeRelationship,
				Path:     append(append([]string{}, path...), "slot:"+name),
				Message:  fmt.Sprintf("kind %q has no slot named %q", node.Kind, name),
				Expected: strings.Join(validNames, ", "),
				Received: name,
			})
		}
	}

	// Required slots must carry at least one item.
	var missing []string
	for _, name := range validNames {
		spec := desc.NamedSlots[name]
		if spec.Required && len(node.Slots[name]) == 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		v.addError(res, codeMissingRequiredSlot, diag.Diagnostic{
			Type:     diag.TypeStructural,
			Path:     path,
			Message:  fmt.Sprintf("kind %q is missing required slot(s): %s", node.Kind, strings.Join(missing, ", ")),
			Expected: strings.Join(missing, ", "),
		})
	}

	for _, name := range validNames {
		spec := desc.NamedSlots[name]
		items := node.Slots[name]

		// An absent required slot is already reported above; min cardinality
		// applies once the slot is present.
		if len(items) > 0 && len(items) < spec.MinItems {
			v.addError(res, codeSlotCardinality, diag.Diagnostic{
				Type:     diag.TypeStructural,
				Path:     append(append([]string{}, path...), "slot:"+name),
				Message:  fmt.Sprintf("slot %q requires at least %d item(s)", name, spec.MinItems),
				Expected: fmt.Sprintf(">= %d items", spec.MinItems),
				Received: fmt.Sprintf("%d items", len(items)),
			})
		}

		if spec.MaxItems != nil && len(items) > *spec.MaxItems {
			v.addError(res, codeSlotCardinality, diag.Diagnostic{
				Type:     diag.TypeStructural,
				Path:     append(append([]string{}, path...), "slot:"+name),
				Message:  fmt.Sprintf("slot %q allows at most %d item(s)", name, *spec.MaxItems),
				Expected: fmt.Sprintf("<= %d items", *spec.MaxItems),
				Received: fmt.Sprintf("%d items", len(items)),
			})
		}

		for i, item := range items {
			itemPath := append(append([]string{}, path...), fmt.Sprintf("slot:%s[%d]", name, i))

			if item == nil {
				continue
			}

			if !spec.Allows(item.Kind) {
				v.addError(res, codeSlotChildNotAllowed, diag.Diagnostic{
					Type:       diag.TypeRelationship,
					Path:       itemPath,
					Message:    fmt.Sprintf("kind %q is not allowed in slot %q of %q", item.Kind, name, node.Kind),
					Expected:   strings.Join(spec.AllowedChildren, ", "),
					Received:   item.Kind,
					Suggestion: suggestKinds(item.Kind, spec.AllowedChildren),
				})
			}

			v.validateNode(res, item, itemPath)
		}
	}
}

// validateProps checks declared prop values against the descriptor's
// primitive types. Undeclared props pass through untouched; mismatches are
// warnings since downstream transforms coerce where they can.
func (v *Validator) validateProps(res *diag.Result, node *ir.Node, desc *registry.Descriptor, path []string) {
	for name, want := range desc.Props {
		value, ok := node.Props[name]
		if !ok || value == nil {
			continue
		}

		if propTypeMatches(want, value) {
			continue
		}

		v.addWarning(res, codePropTypeMismatch, diag.Diagnostic{
			Type:     diag.TypeSchema,
			Path:     append(append([]string{}, path...), "props."+name),
			Message:  fmt.Sprintf("prop %q of kind %q has unexpected type", name, node.Kind),
			Expected: string(want),
			Received: fmt.Sprintf("%T", value),
		})
	}
}

func propTypeMatches(want registry.PropType, value any) bool {
	switch want {
	case registry.PropString:
		_, ok := value.(string)
		return ok
	case registry.PropBoolean:
		_, ok := value.(bool)
		return ok
	case registry.PropNumber:
		switch value.(type) {
		case int, int32, int64, float32, float64:
			return true
		}

		return false
	default:
		return true
	}
}

func hasTopLevelPage(layout *ir.Layout) bool {
	for _, n := range layout.Content {
		if n != nil && n.Kind == ir.KindPage {
			return true
		}
	}

	return false
}

func usedSlotNames(node *ir.Node) []string {
	names := make([]string, 0, len(node.Slots))
	for name := range node.Slots {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func slotNames(slots map[string]registry.SlotSpec) []string {
	names := make([]string, 0, len(slots))
	for name := range slots {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func suggestKinds(unknown string, known []string) string {
	suggestions := match.SuggestKinds(unknown, known, maxSuggestions)
	if len(suggestions) == 0 {
		return ""
	}

	return "did you mean: " + strings.Join(suggestions, ", ")
}
