package reverse

import (
	"unicode/utf8"

	"storycaster/cms"
	"storycaster/ir"
	"storycaster/registry"
)

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

// maxDisplayName caps derived node names so editor trees stay readable.
const maxDisplayName = 50

func (t *Transformer) registerBuiltins() {
	t.Register(cms.PageComponent, Entry{
		Kind:       ir.KindPage,
		Confidence: 1.0,
		Description: "Top-level page wrapper; its body becomes the node's " +
			"children.",
		Transform: containerEntry(ir.KindPage, "body", "title"),
	})
	t.Register(compSection, Entry{
		Kind:        ir.KindSection,
		Confidence:  0.95,
		Description: "Vertical page section.",
		Transform:   containerEntry(ir.KindSection, "body", "anchor"),
	})
	t.Register(compHeadline, Entry{
		Kind:        ir.KindHeadline,
		Confidence:  0.9,
		Description: "Plain headline.",
		Transform:   headlineEntry,
	})
	t.Register(compFlexHeadline, Entry{
		Kind:       ir.KindHeadline,
		Confidence: 0.8,
		Description: "Headline variant rendered inside flex rows; the " +
			"structural context is not recoverable, so confidence drops.",
		Transform: headlineEntry,
	})
	t.Register(compText, Entry{
		Kind:        ir.KindText,
		Confidence:  0.9,
		Description: "Rich-text paragraph; formatting marks are flattened.",
		Transform:   textEntry,
	})
	t.Register(compImage, Entry{
		Kind:        ir.KindImage,
		Confidence:  0.9,
		Description: "Image with resolved asset reference.",
		Transform:   imageEntry,
	})
	t.Register(compList, Entry{
		Kind:        ir.KindList,
		Confidence:  0.9,
		Description: "Ordered or unordered list.",
		Transform:   containerEntry(ir.KindList, "items", "ordered"),
	})
	t.Register(compListItem, Entry{
		Kind:        ir.KindListItem,
		Confidence:  0.85,
		Description: "List item with optional nested body.",
		Transform:   containerEntry(ir.KindListItem, "body", "content"),
	})
	t.Register(compEditorialCard, Entry{
		Kind:        ir.KindEditorialCard,
		Confidence:  0.9,
		Description: "Editorial card with title, body, and image slots.",
		Transform: slottedEntry(ir.KindEditorialCard,
			registry.SlotCardTitle, registry.SlotCardBody, registry.SlotCardImage),
	})
	t.Register(compAccordion, Entry{
		Kind:        ir.KindAccordion,
		Confidence:  0.9,
		Description: "Accordion container.",
		Transform:   containerEntry(ir.KindAccordion, "items"),
	})
	t.Register(compAccordionItem, Entry{
		Kind:        ir.KindAccordionItem,
		Confidence:  0.9,
		Description: "Accordion item with title and content slots.",
		Transform: slottedEntry(ir.KindAccordionItem,
			registry.SlotTitle, registry.SlotContent),
	})
	t.Register(compTable, Entry{
		Kind:        ir.KindTable,
		Confidence:  0.85,
		Description: "Table of rows.",
		Transform:   containerEntry(ir.KindTable, "body"),
	})
	t.Register(compTableRow, Entry{
		Kind:        ir.KindTableRow,
		Confidence:  0.85,
		Description: "Table row of cells.",
		Transform:   containerEntry(ir.KindTableRow, "body"),
	})
	t.Register(compTableCell, Entry{
		Kind:        ir.KindTableCell,
		Confidence:  0.85,
		Description: "Table cell.",
		Transform:   containerEntry(ir.KindTableCell, "body", "header"),
	})
	t.Register(compButton, Entry{
		Kind:        ir.KindButton,
		Confidence:  0.9,
		Description: "Call-to-action button; the link object flattens to a URL.",
		Transform:   buttonEntry,
	})
	t.Register(compButtonGroup, Entry{
		Kind:        ir.KindButtonGroup,
		Confidence:  0.9,
		Description: "Row of buttons.",
		Transform:   containerEntry(ir.KindButtonGroup, "body"),
	})
	t.Register(compDrawer, Entry{
		Kind:        ir.KindDrawer,
		Confidence:  0.85,
		Description: "Drawer with trigger and content slots.",
		Transform: slottedEntry(ir.KindDrawer,
			registry.SlotTrigger, registry.SlotContent),
	})
	t.Register(compDivider, Entry{
		Kind:        ir.KindDivider,
		Confidence:  1.0,
		Description: "Horizontal divider.",
		Transform:   leafEntry(ir.KindDivider),
	})
	t.Register(compBlockquote, Entry{
		Kind:        ir.KindBlockquote,
		Confidence:  0.85,
		Description: "Quoted passage with optional citation.",
		Transform:   leafEntry(ir.KindBlockquote, "content", "citation"),
	})
	t.Register(compAlert, Entry{
		Kind:        ir.KindAlert,
		Confidence:  0.9,
		Description: "Inline alert with severity.",
		Transform:   leafEntry(ir.KindAlert, "content", "severity"),
	})
	t.Register(compFlexGroup, Entry{
		Kind:        ir.KindFlexGroup,
		Confidence:  0.85,
		Description: "Horizontal flex row.",
		Transform:   containerEntry(ir.KindFlexGroup, "items"),
	})
	t.Register(compGroup, Entry{
		Kind:        ir.KindGroup,
		Confidence:  0.8,
		Description: "Generic grouping container.",
		Transform:   containerEntry(ir.KindGroup, "body"),
	})
}

// copyFields copies the listed fields into the node's props when present.
func copyFields(node *ir.Node, comp cms.Component, fields ...string) {
	for _, field := range fields {
		v, ok := comp[field]
		if !ok || v == nil {
			continue
		}

		if node.Props == nil {
			node.Props = make(map[string]any)
		}
		node.Props[field] = v
	}
}

// containerEntry maps a component's child array back to IR children, with
// the listed scalar fields copied into props.
func containerEntry(kind ir.Kind, childField string, fields ...string) func(*Run, cms.Component) (*ir.Node, error) {
	return func(r *Run, comp cms.Component) (*ir.Node, error) {
		node := &ir.Node{Kind: kind}
		copyFields(node, comp, fields...)
		node.Children = r.TransformChildren(comp, childField)

		return node, nil
	}
}

// slottedEntry maps same-named component array fields back to IR slots.
// Absent fields yield no slot entry.
func slottedEntry(kind ir.Kind, slots ...string) func(*Run, cms.Component) (*ir.Node, error) {
	return func(r *Run, comp cms.Component) (*ir.Node, error) {
		node := &ir.Node{Kind: kind}

		for _, slot := range slots {
			if _, used := comp[slot]; !used {
				continue
			}

			if node.Slots == nil {
				node.Slots = make(map[string][]*ir.Node)
			}
			node.Slots[slot] = r.TransformChildren(comp, slot)
		}

		return node, nil
	}
}

// leafEntry maps a childless component carrying only the listed fields.
func leafEntry(kind ir.Kind, fields ...string) func(*Run, cms.Component) (*ir.Node, error) {
	return func(r *Run, comp cms.Component) (*ir.Node, error) {
		node := &ir.Node{Kind: kind}
		copyFields(node, comp, fields...)

		return node, nil
	}
}

func headlineEntry(r *Run, comp cms.Component) (*ir.Node, error) {
	node := &ir.Node{Kind: ir.KindHeadline}
	copyFields(node, comp, "content", "level")
	node.Name = displayName(comp.String("content"))

	return node, nil
}

func textEntry(r *Run, comp cms.Component) (*ir.Node, error) {
	node := &ir.Node{Kind: ir.KindText}

	text := cms.ExtractText(comp["content"])
	node.Props = map[string]any{"content": text}
	node.Name = displayName(text)

	return node, nil
}

func imageEntry(r *Run, comp cms.Component) (*ir.Node, error) {
	node := &ir.Node{Kind: ir.KindImage}

	asset := comp.Map("asset")
	src, _ := asset["filename"].(string)
	alt, _ := asset["alt"].(string)
	node.Props = map[string]any{"src": src, "alt": alt}
	node.Name = displayName(alt)

	return node, nil
}

func buttonEntry(r *Run, comp cms.Component) (*ir.Node, error) {
	node := &ir.Node{Kind: ir.KindButton}
	copyFields(node, comp, "label", "variant")

	if url, ok := comp.Map("link")["url"].(string); ok && url != "" {
		if node.Props == nil {
			node.Props = make(map[string]any)
		}
		node.Props["url"] = url
	}
	node.Name = displayName(comp.String("label"))

	return node, nil
}

// displayName trims derived names to a readable length, appending an
// ellipsis when truncated. Empty input yields "" so the caller's default
// kicks in.
func displayName(text string) string {
	if utf8.RuneCountInString(text) <= maxDisplayName {
		return text
	}

	runes := []rune(text)

	return string(runes[:maxDisplayName]) + "..."
}
