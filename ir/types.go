package ir

// Kind is the discriminator tag selecting a node's shape and registry descriptor.
// The builtin vocabulary is closed; extension kinds may be registered separately
// through the registry's extension table.
type Kind = string

// Builtin node kinds.
const (
	KindPage          Kind = "page"
	KindSection       Kind = "section"
	KindHeadline      Kind = "headline"
	KindText          Kind = "text"
	KindImage         Kind = "image"
	KindList          Kind = "list"
	KindListItem      Kind = "list-item"
	KindEditorialCard Kind = "editorial-card"
	KindAccordion     Kind = "accordion"
	KindAccordionItem Kind = "accordion-item"
	KindTable         Kind = "table"
	KindTableRow      Kind = "table-row"
	KindTableCell     Kind = "table-cell"
	KindButton        Kind = "button"
	KindButtonGroup   Kind = "button-group"
	KindDrawer        Kind = "drawer"
	KindDivider       Kind = "divider"
	KindBlockquote    Kind = "blockquote"
	KindAlert         Kind = "alert"
	KindFlexGroup     Kind = "flex-group"
	KindGroup         Kind = "group"
)

// Node is a single element of an IR layout tree.
//
// A node uses either Children or Slots, never both; which one is legal is
// determined solely by the node's registry descriptor. ParentName and
// ParentKind are informational back-references written by the traversal
// engine, never ownership.
type Node struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`

	Props        map[string]any     `json:"props,omitempty"`
	DesignIntent *DesignIntent      `json:"designIntent,omitempty"`
	Children     []*Node            `json:"children,omitempty"`
	Slots        map[string][]*Node `json:"slots,omitempty"`

	ParentName   string `json:"parentName,omitempty"`
	ParentKind   Kind   `json:"parentKind,omitempty"`
	ComponentKey string `json:"componentKey,omitempty"`

	Meta       map[string]any `json:"meta,omitempty"`
	AIInsights *AIInsights    `json:"aiInsights,omitempty"`
}

// AIInsights carries an upstream confidence signal attached to a node by the
// layout generator. A non-empty SuggestedKind that differs from the declared
// kind redirects forward-transform dispatch.
type AIInsights struct {
	SuggestedKind Kind    `json:"suggestedKind,omitempty"`
	Confidence    float64 `json:"confidence,omitempty"`
	Reasoning     string  `json:"reasoning,omitempty"`
}

// Layout is the versioned top-level IR document.
type Layout struct {
	Version    string         `json:"version"`
	Name       string         `json:"name"`
	Content    []*Node        `json:"content"`
	GlobalVars map[string]any `json:"globalVars,omitempty"`
}

// Version currently fully supported by the engine. Other versions validate
// with a warning.
const SupportedVersion = "1.0"

// DesignIntent is a normalized, CMS-agnostic record of the styling desired
// for a node. All sub-records are optional.
type DesignIntent struct {
	Layout     *LayoutIntent     `json:"layout,omitempty"`
	Appearance *AppearanceIntent `json:"appearance,omitempty"`
	Typography *TypographyIntent `json:"typography,omitempty"`
}

// LayoutIntent describes spacing and flow.
type LayoutIntent struct {
	Direction string `json:"direction,omitempty"` // "vertical" or "horizontal"
	Padding   string `json:"padding,omitempty"`   // pixel value ("24px") or token
	Gap       string `json:"gap,omitempty"`
}

// AppearanceIntent describes colors and free-form CSS carried along for
// diagnostics. CustomCSS has no CMS mapping and is dropped on the forward path.
type AppearanceIntent struct {
	BackgroundColor string            `json:"backgroundColor,omitempty"`
	TextColor       string            `json:"textColor,omitempty"`
	CustomCSS       map[string]string `json:"customCSS,omitempty"`
}

// TypographyIntent describes text styling.
type TypographyIntent struct {
	FontSize   int    `json:"fontSize,omitempty"`
	FontWeight int    `json:"fontWeight,omitempty"`
	TextAlign  string `json:"textAlign,omitempty"`
}

// IsEmpty reports whether no sub-record is present.
func (d *DesignIntent) IsEmpty() bool {
	return d == nil || (d.Layout == nil && d.Appearance == nil && d.Typography == nil)
}

// HasSlots reports whether the node carries any slot arrays.
func (n *Node) HasSlots() bool {
	return len(n.Slots) > 0
}

// SuggestedOverride returns the upstream kind override, or "" when dispatch
// should follow the declared kind.
func (n *Node) SuggestedOverride() Kind {
	if n.AIInsights == nil {
		return ""
	}

	if n.AIInsights.SuggestedKind == "" || n.AIInsights.SuggestedKind == n.Kind {
		return ""
	}

	return n.AIInsights.SuggestedKind
}
