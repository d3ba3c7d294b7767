package reverse

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storycaster/ir"
	"storycaster/transform"
	"storycaster/transform/forward"
)

// flattenKinds lists the subtree's kinds depth-first, slots after children
// in name order, so two trees can be compared shape-for-shape.
func flattenKinds(node *ir.Node, out *[]ir.Kind) {
	*out = append(*out, node.Kind)
	for _, child := range node.Children {
		flattenKinds(child, out)
	}

	slots := make([]string, 0, len(node.Slots))
	for name := range node.Slots {
		slots = append(slots, name)
	}
	sort.Strings(slots)
	for _, name := range slots {
		for _, item := range node.Slots[name] {
			flattenKinds(item, out)
		}
	}
}

func layoutKinds(layout *ir.Layout) []ir.Kind {
	var out []ir.Kind
	for _, node := range layout.Content {
		flattenKinds(node, &out)
	}

	return out
}

func roundtripFixture() *ir.Layout {
	return &ir.Layout{
		Version: ir.SupportedVersion,
		Name:    "FAQ Page",
		Content: []*ir.Node{{
			Kind: ir.KindPage,
			Name: "faq",
			Children: []*ir.Node{{
				Kind: ir.KindSection,
				Name: "main",
				Children: []*ir.Node{
					{Kind: ir.KindHeadline, Name: "title", Props: map[string]any{"content": "Questions", "level": 1}},
					{Kind: ir.KindText, Name: "intro", Props: map[string]any{"content": "Everything you asked."}},
					{
						Kind: ir.KindAccordion,
						Name: "faq-list",
						Children: []*ir.Node{{
							Kind: ir.KindAccordionItem,
							Name: "shipping",
							Slots: map[string][]*ir.Node{
								"title": {
									{Kind: ir.KindHeadline, Name: "q", Props: map[string]any{"content": "Do you ship?"}},
								},
								"content": {
									{Kind: ir.KindText, Name: "a1", Props: map[string]any{"content": "Yes."}},
									{Kind: ir.KindText, Name: "a2", Props: map[string]any{"content": "Worldwide."}},
									{Kind: ir.KindDivider, Name: "rule"},
								},
							},
						}},
					},
					{
						Kind: ir.KindEditorialCard,
						Name: "promo",
						Slots: map[string][]*ir.Node{
							"card_title": {
								{Kind: ir.KindHeadline, Name: "ct", Props: map[string]any{"content": "Still stuck?"}},
							},
							"card_body": {
								{Kind: ir.KindText, Name: "cb", Props: map[string]any{"content": "Talk to support."}},
							},
						},
					},
					{
						Kind: ir.KindButtonGroup,
						Name: "ctas",
						Children: []*ir.Node{
							{Kind: ir.KindButton, Name: "contact", Props: map[string]any{"label": "Contact us", "url": "https://example.com/contact"}},
							{Kind: ir.KindButton, Name: "docs", Props: map[string]any{"label": "Read docs", "url": "https://example.com/docs"}},
						},
					},
					{Kind: ir.KindAlert, Name: "notice", Props: map[string]any{"content": "Support closes at 18:00.", "severity": "warning"}},
				},
			}},
		}},
	}
}

func TestRoundTripPreservesShape(t *testing.T) {
	session := transform.NewSession(nil)
	layout := roundtripFixture()

	fwd := forward.New(session).Transform(context.Background(), layout, nil)
	require.True(t, fwd.Success)
	require.Empty(t, fwd.Warnings)

	rev, err := New(session).Transform(context.Background(), fwd.Story)
	require.NoError(t, err)
	require.True(t, rev.Success)
	require.True(t, rev.Validation.IsValid)

	for _, w := range rev.Warnings {
		assert.NotEqual(t, transform.WarnUnsupportedComponent, w.Type, w.Message)
	}

	assert.Equal(t, layoutKinds(layout), layoutKinds(rev.Layout))
}

func TestRoundTripPreservesSlotContents(t *testing.T) {
	session := transform.NewSession(nil)

	fwd := forward.New(session).Transform(context.Background(), roundtripFixture(), nil)
	require.True(t, fwd.Success)

	rev, err := New(session).Transform(context.Background(), fwd.Story)
	require.NoError(t, err)

	section := rev.Layout.Content[0].Children[0]
	item := section.Children[2].Children[0]
	require.Equal(t, ir.KindAccordionItem, item.Kind)
	require.Len(t, item.Slots["title"], 1)
	require.Len(t, item.Slots["content"], 3)
	assert.Equal(t, "Do you ship?", item.Slots["title"][0].Props["content"])
	assert.Equal(t, "Yes.", item.Slots["content"][0].Props["content"])
	assert.Equal(t, ir.KindDivider, item.Slots["content"][2].Kind)

	card := section.Children[3]
	require.Equal(t, ir.KindEditorialCard, card.Kind)
	require.Len(t, card.Slots["card_title"], 1)
	require.Len(t, card.Slots["card_body"], 1)
	_, hasImage := card.Slots["card_image"]
	assert.False(t, hasImage)
}

func TestRoundTripPreservesProps(t *testing.T) {
	session := transform.NewSession(nil)

	fwd := forward.New(session).Transform(context.Background(), roundtripFixture(), nil)
	require.True(t, fwd.Success)

	rev, err := New(session).Transform(context.Background(), fwd.Story)
	require.NoError(t, err)

	section := rev.Layout.Content[0].Children[0]

	headline := section.Children[0]
	assert.Equal(t, "Questions", headline.Props["content"])

	buttons := section.Children[4].Children
	require.Len(t, buttons, 2)
	assert.Equal(t, "Contact us", buttons[0].Props["label"])
	assert.Equal(t, "https://example.com/contact", buttons[0].Props["url"])

	alert := section.Children[5]
	assert.Equal(t, "warning", alert.Props["severity"])
	assert.Equal(t, "Support closes at 18:00.", alert.Props["content"])
}

func TestRoundTripStableOnSecondPass(t *testing.T) {
	session := transform.NewSession(nil)

	first := forward.New(session).Transform(context.Background(), roundtripFixture(), nil)
	require.True(t, first.Success)

	rev, err := New(session).Transform(context.Background(), first.Story)
	require.NoError(t, err)

	second := forward.New(session).Transform(context.Background(), rev.Layout, &forward.Options{DisableCache: true})
	require.True(t, second.Success)

	assert.Equal(t, first.Components, second.Components)
}
