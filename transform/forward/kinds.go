package forward

import (
	"fmt"
	"strings"

	"storycaster/cms"
	"storycaster/ir"
	"storycaster/registry"
	"storycaster/transform"
)

// CMS component names produced by the builtin transforms.
const (
	compSection       = "sb-section"
	compHeadline      = "sb-headline"
	compFlexHeadline  = "sb-flex_headline"
	compText          = "sb-text"
	compImage         = "sb-image"
	compList          = "sb-list"
	compListItem      = "sb-list_item"
	compEditorialCard = "sb-editorial_card"
	compAccordion     = "sb-accordion"
	compAccordionItem = "sb-accordion_item"
	compTable         = "sb-table"
	compTableRow      = "sb-table_row"
	compTableCell     = "sb-table_cell"
	compButton        = "sb-button"
	compButtonGroup   = "sb-button_group"
	compDrawer        = "sb-drawer"
	compDivider       = "sb-divider"
	compBlockquote    = "sb-blockquote"
	compAlert         = "sb-alert"
	compFlexGroup     = "sb-flex_group"
	compGroup         = "sb-group"
)

func fallbackComponentName(kind ir.Kind) string {
	return "sb-" + strings.ReplaceAll(kind, "-", "_")
}

func (t *Transformer) registerBuiltins() {
	t.registry[ir.KindPage] = transformPage
	t.registry[ir.KindSection] = containerTransform(compSection, "body", "anchor")
	t.registry[ir.KindHeadline] = transformHeadline
	t.registry[ir.KindText] = transformText
	t.registry[ir.KindImage] = transformImage
	t.registry[ir.KindList] = transformList
	t.registry[ir.KindListItem] = containerTransform(compListItem, "body", "content")
	t.registry[ir.KindEditorialCard] = slottedTransform(compEditorialCard, registry.SlotCardTitle, registry.SlotCardBody, registry.SlotCardImage)
	t.registry[ir.KindAccordion] = containerTransform(compAccordion, "items")
	t.registry[ir.KindAccordionItem] = slottedTransform(compAccordionItem, registry.SlotTitle, registry.SlotContent)
	t.registry[ir.KindTable] = containerTransform(compTable, "body")
	t.registry[ir.KindTableRow] = containerTransform(compTableRow, "body")
	t.registry[ir.KindTableCell] = containerTransform(compTableCell, "body", "header")
	t.registry[ir.KindButton] = transformButton
	t.registry[ir.KindButtonGroup] = containerTransform(compButtonGroup, "body")
	t.registry[ir.KindDrawer] = slottedTransform(compDrawer, registry.SlotTrigger, registry.SlotContent)
	t.registry[ir.KindDivider] = leafTransform(compDivider)
	t.registry[ir.KindBlockquote] = leafTransform(compBlockquote, "content", "citation")
	t.registry[ir.KindAlert] = transformAlert
	t.registry[ir.KindFlexGroup] = containerTransform(compFlexGroup, "items")
	t.registry[ir.KindGroup] = containerTransform(compGroup, "body")
}

// applyDesign merges the node's design-intent fields into the component.
func applyDesign(r *Run, comp cms.Component, node *ir.Node) {
	if node.DesignIntent.IsEmpty() {
		return
	}

	for field, value := range r.Session().Design.Fields(node.DesignIntent, comp.Name()) {
		comp[field] = value
	}
}

// copyProps copies the named props onto the component when present.
func copyProps(comp cms.Component, node *ir.Node, names ...string) {
	for _, name := range names {
		if v, ok := node.Props[name]; ok && v != nil {
			comp[name] = v
		}
	}
}

// containerTransform builds a component whose children land under the given
// array field, with the listed props copied over.
func containerTransform(component, childField string, props ...string) TransformFunc {
	return func(r *Run, node *ir.Node) (cms.Component, error) {
		comp := cms.New(component)
		copyProps(comp, node, props...)
		applyDesign(r, comp, node)

		children, err := r.TransformChildren(node)
		if err != nil {
			return nil, err
		}
		comp[childField] = orEmpty(children)

		return comp, nil
	}
}

// slottedTransform builds a component whose named slots become same-named
// array fields, each slot child stamped with the parent's identity first.
func slottedTransform(component string, slots ...string) TransformFunc {
	return func(r *Run, node *ir.Node) (cms.Component, error) {
		comp := cms.New(component)
		applyDesign(r, comp, node)

		for _, slot := range slots {
			if _, used := node.Slots[slot]; !used {
				// Absent optional slots yield no field at all.
				continue
			}

			items, err := r.TransformSlot(node, slot)
			if err != nil {
				return nil, fmt.Errorf("slot %q: %w", slot, err)
			}
			comp[slot] = orEmpty(items)
		}

		return comp, nil
	}
}

// leafTransform builds a childless component carrying only the listed props.
func leafTransform(component string, props ...string) TransformFunc {
	return func(r *Run, node *ir.Node) (cms.Component, error) {
		comp := cms.New(component)
		copyProps(comp, node, props...)
		applyDesign(r, comp, node)

		return comp, nil
	}
}

func transformPage(r *Run, node *ir.Node) (cms.Component, error) {
	comp := cms.New(cms.PageComponent)
	copyProps(comp, node, "title")
	applyDesign(r, comp, node)

	children, err := r.TransformChildren(node)
	if err != nil {
		return nil, err
	}
	comp["body"] = orEmpty(children)

	return comp, nil
}

func transformHeadline(r *Run, node *ir.Node) (cms.Component, error) {
	// The CMS renders headlines differently inside flex rows; the variant
	// is selected by structural context.
	name := compHeadline
	if node.ParentKind == ir.KindFlexGroup {
		name = compFlexHeadline
	}

	comp := cms.New(name)
	content, _ := node.Props["content"].(string)
	if content == "" {
		r.Warn(transform.Warning{
			Type:      transform.WarnMissingContent,
			Component: name,
			Message:   fmt.Sprintf("headline %q has no content", node.Name),
			Impact:    transform.ImpactLow,
		})
	}
	comp["content"] = content
	copyProps(comp, node, "level")
	applyDesign(r, comp, node)

	return comp, nil
}

func transformText(r *Run, node *ir.Node) (cms.Component, error) {
	comp := cms.New(compText)

	content, _ := node.Props["content"].(string)
	if content == "" {
		r.Warn(transform.Warning{
			Type:      transform.WarnMissingContent,
			Component: compText,
			Message:   fmt.Sprintf("text node %q has no content", node.Name),
			Impact:    transform.ImpactLow,
		})
	}
	comp["content"] = cms.NewRichText(content)
	applyDesign(r, comp, node)

	return comp, nil
}

func transformImage(r *Run, node *ir.Node) (cms.Component, error) {
	comp := cms.New(compImage)

	src, _ := node.Props["src"].(string)
	alt, _ := node.Props["alt"].(string)

	url := transform.ResolveAsset(r.Context(), r.Session().Assets, src, node.Name)
	comp["asset"] = map[string]any{"filename": url, "alt": alt}
	applyDesign(r, comp, node)

	return comp, nil
}

func transformList(r *Run, node *ir.Node) (cms.Component, error) {
	comp := cms.New(compList)
	copyProps(comp, node, "ordered")
	applyDesign(r, comp, node)

	items, err := r.TransformChildren(node)
	if err != nil {
		return nil, err
	}
	comp["items"] = orEmpty(items)

	return comp, nil
}

func transformButton(r *Run, node *ir.Node) (cms.Component, error) {
	comp := cms.New(compButton)

	label, _ := node.Props["label"].(string)
	url, _ := node.Props["url"].(string)
	comp["label"] = label
	comp["link"] = map[string]any{"url": url, "linktype": "url"}
	copyProps(comp, node, "variant")
	applyDesign(r, comp, node)

	return comp, nil
}

func transformAlert(r *Run, node *ir.Node) (cms.Component, error) {
	comp := cms.New(compAlert)

	copyProps(comp, node, "content")
	severity, _ := node.Props["severity"].(string)
	if severity == "" {
		severity = "info"
	}
	comp["severity"] = severity
	applyDesign(r, comp, node)

	return comp, nil
}

func orEmpty(components []cms.Component) []cms.Component {
	if components == nil {
		return []cms.Component{}
	}

	return components
}
