package registry

import "storycaster/ir"

// Slot names used by the builtin slot-bearing kinds.
const (
	SlotTitle     = "title"
	SlotContent   = "content"
	SlotTrigger   = "trigger"
	SlotCardTitle = "card_title"
	SlotCardBody  = "card_body"
	SlotCardImage = "card_image"
)

// builtinDescriptors is the hand-written grammar for the builtin kind
// vocabulary. Loaded once; never mutated afterwards.
func builtinDescriptors() []Descriptor {
	blockKinds := []string{
		ir.KindSection, ir.KindHeadline, ir.KindText, ir.KindImage, ir.KindList,
		ir.KindEditorialCard, ir.KindAccordion, ir.KindTable, ir.KindButtonGroup,
		ir.KindDrawer, ir.KindDivider, ir.KindBlockquote, ir.KindAlert,
		ir.KindFlexGroup, ir.KindGroup,
	}

	sectionKinds := []string{
		ir.KindHeadline, ir.KindText, ir.KindImage, ir.KindList,
		ir.KindEditorialCard, ir.KindAccordion, ir.KindTable, ir.KindButton,
		ir.KindButtonGroup, ir.KindDivider, ir.KindBlockquote, ir.KindAlert,
		ir.KindFlexGroup, ir.KindGroup,
	}

	return []Descriptor{
		{
			Kind:            ir.KindPage,
			Description:     "Top-level page container",
			AllowedChildren: blockKinds,
			Props:           map[string]PropType{"title": PropString},
		},
		{
			Kind:            ir.KindSection,
			Description:     "Full-width page section",
			AllowedChildren: sectionKinds,
			Props:           map[string]PropType{"anchor": PropString},
		},
		{
			Kind:        ir.KindHeadline,
			Description: "Heading text",
			Props:       map[string]PropType{"content": PropString, "level": PropNumber},
		},
		{
			Kind:        ir.KindText,
			Description: "Paragraph of body text",
			Props:       map[string]PropType{"content": PropString},
		},
		{
			Kind:        ir.KindImage,
			Description: "Single image",
			Props:       map[string]PropType{"src": PropString, "alt": PropString},
		},
		{
			Kind:            ir.KindList,
			Description:     "Ordered or unordered list",
			AllowedChildren: []string{ir.KindListItem},
			Props:           map[string]PropType{"ordered": PropBoolean},
		},
		{
			Kind:            ir.KindListItem,
			Description:     "One list entry",
			AllowedChildren: []string{ir.KindText, ir.KindImage},
			Props:           map[string]PropType{"content": PropString},
		},
		{
			Kind:        ir.KindEditorialCard,
			Description: "Card with title, body and optional image",
			NamedSlots: map[string]SlotSpec{
				SlotCardTitle: {
					Description:     "Card heading",
					AllowedChildren: []string{ir.KindHeadline},
					Required:        true,
					MinItems:        1,
					MaxItems:        maxItems(1),
				},
				SlotCardBody: {
					Description:     "Card body copy",
					AllowedChildren: []string{ir.KindText, ir.KindList},
					Required:        true,
					MinItems:        1,
					MaxItems:        maxItems(2),
				},
				SlotCardImage: {
					Description:     "Optional card image",
					AllowedChildren: []string{ir.KindImage},
					MaxItems:        maxItems(1),
				},
			},
		},
		{
			Kind:            ir.KindAccordion,
			Description:     "Expandable item group",
			AllowedChildren: []string{ir.KindAccordionItem},
		},
		{
			Kind:        ir.KindAccordionItem,
			Description: "One expandable accordion entry",
			NamedSlots: map[string]SlotSpec{
				SlotTitle: {
					Description:     "Always-visible item header",
					AllowedChildren: []string{ir.KindHeadline},
					Required:        true,
					MinItems:        1,
					MaxItems:        maxItems(1),
				},
				SlotContent: {
					Description:     "Body revealed on expand",
					AllowedChildren: []string{ir.KindText, ir.KindImage, ir.KindList, ir.KindDivider, ir.KindTable, ir.KindBlockquote},
					Required:        true,
					MinItems:        1,
				},
			},
		},
		{
			Kind:            ir.KindTable,
			Description:     "Tabular data",
			AllowedChildren: []string{ir.KindTableRow},
		},
		{
			Kind:            ir.KindTableRow,
			Description:     "One table row",
			AllowedChildren: []string{ir.KindTableCell},
		},
		{
			Kind:            ir.KindTableCell,
			Description:     "One table cell",
			AllowedChildren: []string{ir.KindText, ir.KindImage, ir.KindButton},
			Props:           map[string]PropType{"header": PropBoolean},
		},
		{
			Kind:        ir.KindButton,
			Description: "Call-to-action button",
			Props:       map[string]PropType{"label": PropString, "url": PropString, "variant": PropString},
		},
		{
			Kind:            ir.KindButtonGroup,
			Description:     "Horizontal button row",
			AllowedChildren: []string{ir.KindButton},
		},
		{
			Kind:        ir.KindDrawer,
			Description: "Off-canvas panel with trigger",
			NamedSlots: map[string]SlotSpec{
				SlotTrigger: {
					Description:     "Element that opens the drawer",
					AllowedChildren: []string{ir.KindButton},
					Required:        true,
					MinItems:        1,
					MaxItems:        maxItems(1),
				},
				SlotContent: {
					Description:     "Drawer body",
					AllowedChildren: []string{ir.KindHeadline, ir.KindText, ir.KindImage, ir.KindList, ir.KindDivider},
					Required:        true,
					MinItems:        1,
				},
			},
		},
		{
			Kind:        ir.KindDivider,
			Description: "Horizontal rule",
		},
		{
			Kind:        ir.KindBlockquote,
			Description: "Quoted passage with optional citation",
			Props:       map[string]PropType{"content": PropString, "citation": PropString},
		},
		{
			Kind:        ir.KindAlert,
			Description: "Callout banner",
			Props:       map[string]PropType{"content": PropString, "severity": PropString},
		},
		{
			Kind:            ir.KindFlexGroup,
			Description:     "Horizontal flex container",
			AllowedChildren: []string{ir.KindHeadline, ir.KindText, ir.KindImage, ir.KindButton, ir.KindGroup, ir.KindEditorialCard},
		},
		{
			Kind:            ir.KindGroup,
			Description:     "Generic vertical container",
			AllowedChildren: []string{ir.KindHeadline, ir.KindText, ir.KindImage, ir.KindList, ir.KindButton, ir.KindDivider, ir.KindBlockquote, ir.KindAlert},
		},
	}
}
