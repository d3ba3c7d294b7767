package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storycaster/diag"
	"storycaster/ir"
)

func validLayout() *ir.Layout {
	return &ir.Layout{
		Version: ir.SupportedVersion,
		Name:    "x",
		Content: []*ir.Node{
			{
				Kind: ir.KindPage,
				Name: "home",
				Children: []*ir.Node{
					{Kind: ir.KindSection, Name: "s1", Children: []*ir.Node{
						{Kind: ir.KindHeadline, Name: "h1", Props: map[string]any{"content": "Hello", "level": 2}},
						{Kind: ir.KindText, Name: "t1", Props: map[string]any{"content": "Body"}},
					}},
				},
			},
		},
	}
}

func TestValidLayout(t *testing.T) {
	res := New(nil).Validate(validLayout())
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestRejectsEmptyContent(t *testing.T) {
	res := New(nil).Validate(&ir.Layout{Version: "1.0", Name: "x", Content: []*ir.Node{}})

	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, diag.TypeStructural, res.Errors[0].Type)
	assert.Equal(t, []string{"content"}, res.Errors[0].Path)
}

func TestNilLayoutShortCircuits(t *testing.T) {
	res := New(nil).Validate(nil)

	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, diag.TypeStructural, res.Errors[0].Type)
}

func TestUnsupportedVersionWarns(t *testing.T) {
	layout := validLayout()
	layout.Version = "2.0"

	res := New(nil).Validate(layout)

	assert.True(t, res.IsValid)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, diag.TypeStructural, res.Warnings[0].Type)
	assert.Equal(t, "1.0", res.Warnings[0].Expected)
	assert.Equal(t, "2.0", res.Warnings[0].Received)
}

func TestMissingTopLevelPageWarns(t *testing.T) {
	layout := &ir.Layout{
		Version: ir.SupportedVersion,
		Name:    "x",
		Content: []*ir.Node{{Kind: ir.KindSection, Name: "s"}},
	}

	res := New(nil).Validate(layout)
	assert.True(t, res.IsValid)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Message, `"page"`)
}

func TestUnknownKindSuggests(t *testing.T) {
	layout := validLayout()
	layout.Content[0].Children[0].Children[0].Kind = "headlin"

	res := New(nil).Validate(layout)

	assert.False(t, res.IsValid)
	schema := res.ByType(diag.TypeSchema)
	require.Len(t, schema, 1)
	assert.Contains(t, schema[0].Suggestion, "headline")
	assert.Equal(t, "headlin", schema[0].Received)
}

func TestDisallowedChild(t *testing.T) {
	layout := validLayout()
	layout.Content[0].Children = append(layout.Content[0].Children, &ir.Node{Kind: ir.KindTableCell, Name: "loose"})

	res := New(nil).Validate(layout)

	assert.False(t, res.IsValid)
	rel := res.ByType(diag.TypeRelationship)
	require.Len(t, rel, 1)
	assert.Contains(t, rel[0].Message, `"table-cell" is not allowed inside "page"`)
	assert.Equal(t, []string{"content[0]", "children[1]"}, rel[0].Path)
}

func TestChildrenOnLeafWarns(t *testing.T) {
	layout := validLayout()
	text := layout.Content[0].Children[0].Children[1]
	text.Children = []*ir.Node{{Kind: ir.KindText, Name: "inner"}}

	res := New(nil).Validate(layout)

	assert.True(t, res.IsValid, "contradiction is a warning, not an error")
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, diag.TypeStructural, res.Warnings[0].Type)
	assert.Contains(t, res.Warnings[0].Message, "allows no children")
}

func accordionItem(slots map[string][]*ir.Node) *ir.Layout {
	return &ir.Layout{
		Version: ir.SupportedVersion,
		Name:    "x",
		Content: []*ir.Node{
			{
				Kind: ir.KindPage,
				Name: "home",
				Children: []*ir.Node{
					{Kind: ir.KindAccordion, Name: "acc", Children: []*ir.Node{
						{Kind: ir.KindAccordionItem, Name: "item", Slots: slots},
					}},
				},
			},
		},
	}
}

func TestValidSlots(t *testing.T) {
	layout := accordionItem(map[string][]*ir.Node{
		"title":   {{Kind: ir.KindHeadline, Name: "q"}},
		"content": {{Kind: ir.KindText, Name: "a"}, {Kind: ir.KindDivider}, {Kind: ir.KindText}},
	})

	res := New(nil).Validate(layout)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Warnings)
}

func TestUnknownSlotName(t *testing.T) {
	layout := accordionItem(map[string][]*ir.Node{
		"title":   {{Kind: ir.KindHeadline}},
		"content": {{Kind: ir.KindText}},
		"footer":  {{Kind: ir.KindText}},
	})

	res := New(nil).Validate(layout)

	assert.False(t, res.IsValid)
	rel := res.ByType(diag.TypeRelationship)
	require.Len(t, rel, 1)
	assert.Contains(t, rel[0].Message, `no slot named "footer"`)
	assert.Equal(t, "content, title", rel[0].Expected)
}

func TestMissingRequiredSlots(t *testing.T) {
	layout := accordionItem(map[string][]*ir.Node{
		"content": {{Kind: ir.KindText}},
	})

	res := New(nil).Validate(layout)

	assert.False(t, res.IsValid)
	structural := res.ByType(diag.TypeStructural)
	require.Len(t, structural, 1)
	assert.Contains(t, structural[0].Message, "missing required slot(s): title")
}

func TestSlotChildNotAllowed(t *testing.T) {
	layout := accordionItem(map[string][]*ir.Node{
		"title":   {{Kind: ir.KindImage, Name: "wrong"}},
		"content": {{Kind: ir.KindText}},
	})

	res := New(nil).Validate(layout)

	assert.False(t, res.IsValid)
	rel := res.ByType(diag.TypeRelationship)
	require.Len(t, rel, 1)
	assert.Contains(t, rel[0].Message, `not allowed in slot "title"`)
	assert.Equal(t, []string{"content[0]", "children[0]", "children[0]", "slot:title[0]"}, rel[0].Path)
}

func TestSlotMaxItems(t *testing.T) {
	layout := accordionItem(map[string][]*ir.Node{
		"title":   {{Kind: ir.KindHeadline}, {Kind: ir.KindHeadline}},
		"content": {{Kind: ir.KindText}},
	})

	res := New(nil).Validate(layout)

	assert.False(t, res.IsValid)
	structural := res.ByType(diag.TypeStructural)
	require.Len(t, structural, 1)
	assert.Contains(t, structural[0].Message, "at most 1")
}

func TestSlotsOnNonSlotKind(t *testing.T) {
	layout := validLayout()
	layout.Content[0].Children[0].Slots = map[string][]*ir.Node{
		"title": {{Kind: ir.KindHeadline}},
	}

	res := New(nil).Validate(layout)

	assert.False(t, res.IsValid)
	rel := res.ByType(diag.TypeRelationship)
	require.Len(t, rel, 1)
	assert.Contains(t, rel[0].Message, "does not accept named slots")
}

func TestPropTypeMismatchWarns(t *testing.T) {
	layout := validLayout()
	layout.Content[0].Children[0].Children[0].Props["level"] = "two"

	res := New(nil).Validate(layout)

	assert.True(t, res.IsValid)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "number", res.Warnings[0].Expected)
}

func TestStats(t *testing.T) {
	v := New(nil)

	v.Validate(validLayout())
	v.Validate(&ir.Layout{Version: "1.0", Content: nil})
	v.Validate(&ir.Layout{Version: "1.0", Content: nil})

	stats := v.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Failed)
	assert.Equal(t, 2, stats.Histogram["empty_content"])
	assert.Equal(t, "empty_content", stats.MostCommon())
}

func TestFeedbackMentionsGroups(t *testing.T) {
	v := New(nil)
	layout := accordionItem(map[string][]*ir.Node{
		"content": {{Kind: ir.KindButton, Name: "b"}},
	})

	res := v.Validate(layout)
	text := v.Feedback(res)

	assert.Contains(t, text, "must be fixed")
	assert.Contains(t, text, "missing required slot(s): title")
}
