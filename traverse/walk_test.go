package traverse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storycaster/ir"
)

func fixtureLayout() *ir.Layout {
	return &ir.Layout{
		Version: ir.SupportedVersion,
		Name:    "fixture",
		Content: []*ir.Node{
			{
				Kind: ir.KindPage,
				Name: "home",
				Children: []*ir.Node{
					{
						Kind: ir.KindSection,
						Name: "faq",
						Children: []*ir.Node{
							{
								Kind: ir.KindAccordion,
								Name: "questions",
								Children: []*ir.Node{
									{
										Kind: ir.KindAccordionItem,
										Name: "q1",
										Slots: map[string][]*ir.Node{
											"title":   {{Kind: ir.KindHeadline, Name: "q1-title"}},
											"content": {{Kind: ir.KindText, Name: "a1"}, {Kind: ir.KindDivider, Name: "d1"}},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestEnrichStampsParents(t *testing.T) {
	layout := fixtureLayout()

	res := Enrich(layout, nil)
	require.Empty(t, res.Errors)

	page := res.Layout.Content[0]
	assert.Empty(t, page.ParentName, "top-level nodes have no parent")

	section := page.Children[0]
	assert.Equal(t, "home", section.ParentName)
	assert.Equal(t, ir.KindPage, section.ParentKind)

	item := section.Children[0].Children[0]
	title := item.Slots["title"][0]
	assert.Equal(t, "q1", title.ParentName)
	assert.Equal(t, ir.KindAccordionItem, title.ParentKind)

	answer := item.Slots["content"][0]
	assert.Equal(t, "q1", answer.ParentName)
}

func TestWalkDoesNotMutateInput(t *testing.T) {
	layout := fixtureLayout()
	pristine := layout.Clone()

	res := Enrich(layout, nil)
	require.NotSame(t, layout, res.Layout)
	assert.Equal(t, pristine, layout, "input must be structurally untouched")

	// Mutating the output must not leak back either.
	res.Layout.Content[0].Name = "changed"
	assert.Equal(t, "home", layout.Content[0].Name)
}

func TestWalkStats(t *testing.T) {
	res := Walk(fixtureLayout(), Visitor{}, nil)

	// page, section, accordion, item, headline, text, divider
	assert.Equal(t, 7, res.Stats.NodesVisited)
	assert.Equal(t, 5, res.Stats.MaxDepth)
	assert.Equal(t, 2, res.Stats.SlotsSeen)
}

func TestVisitorReplacement(t *testing.T) {
	res := Walk(fixtureLayout(), Visitor{
		Visit: func(ctx Ctx) (*ir.Node, error) {
			if ctx.Node.Kind == ir.KindText {
				replaced := ctx.Node.Clone()
				replaced.Name = "rewritten"

				return replaced, nil
			}

			return nil, nil
		},
	}, nil)

	require.Empty(t, res.Errors)
	item := res.Layout.Content[0].Children[0].Children[0].Children[0]
	assert.Equal(t, "rewritten", item.Slots["content"][0].Name)
	assert.Equal(t, "d1", item.Slots["content"][1].Name)
}

func TestVisitorErrorKeepsOriginalNode(t *testing.T) {
	boom := errors.New("boom")

	res := Walk(fixtureLayout(), Visitor{
		Visit: func(ctx Ctx) (*ir.Node, error) {
			if ctx.Node.Kind == ir.KindSection {
				return nil, boom
			}

			return nil, nil
		},
	}, nil)

	require.Len(t, res.Errors, 1)
	assert.ErrorIs(t, res.Errors[0].Err, boom)
	assert.Equal(t, ir.KindSection, res.Errors[0].Kind)

	// The failed node is kept unenriched, and the walk continued below it.
	section := res.Layout.Content[0].Children[0]
	assert.Empty(t, section.ParentName)
	require.NotEmpty(t, section.Children)
	assert.Equal(t, "faq", section.Children[0].ParentName, "children still enriched")
}

func TestVisitorPanicIsCaught(t *testing.T) {
	res := Walk(fixtureLayout(), Visitor{
		Visit: func(ctx Ctx) (*ir.Node, error) {
			if ctx.Node.Kind == ir.KindDivider {
				panic("exploded")
			}

			return nil, nil
		},
	}, nil)

	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Err.Error(), "exploded")
	assert.Equal(t, 7, res.Stats.NodesVisited, "walk completed despite panic")
}

func TestSlotPathTagging(t *testing.T) {
	var slotPaths []string

	Walk(fixtureLayout(), Visitor{
		BeforeVisit: func(ctx Ctx) {
			if ctx.Node.Kind == ir.KindHeadline {
				slotPaths = append(slotPaths, ctx.Path[len(ctx.Path)-1])
			}
		},
	}, nil)

	require.Len(t, slotPaths, 1)
	assert.Equal(t, "slot:title[0]", slotPaths[0])
}

func TestCustomEnrichment(t *testing.T) {
	res := Walk(fixtureLayout(), Visitor{}, &Options{
		EnrichWithParent: true,
		CustomEnrichment: func(node, parent *ir.Node) *ir.Node {
			if node.Meta == nil {
				node.Meta = map[string]any{}
			}
			node.Meta["touched"] = true

			return node
		},
	})

	require.Empty(t, res.Errors)
	assert.Equal(t, true, res.Layout.Content[0].Meta["touched"])
	item := res.Layout.Content[0].Children[0].Children[0].Children[0]
	assert.Equal(t, true, item.Slots["title"][0].Meta["touched"])
}

func TestValidateNodesWarnsUnknownKind(t *testing.T) {
	layout := &ir.Layout{
		Version: ir.SupportedVersion,
		Content: []*ir.Node{{Kind: "hero", Name: "h"}},
	}

	res := Walk(layout, Visitor{}, &Options{EnrichWithParent: true, ValidateNodes: true})
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "hero", res.Warnings[0].Received)
	assert.Empty(t, res.Errors, "validate warnings are not errors")
}

func TestUtilities(t *testing.T) {
	layout := fixtureLayout()

	texts := FindByKind(layout, ir.KindText)
	require.Len(t, texts, 1)
	assert.Equal(t, "a1", texts[0].Name)

	titled := FindInSlot(layout, "title")
	require.Len(t, titled, 1)
	assert.Equal(t, "q1-title", titled[0].Name)

	assert.Equal(t, 7, CountNodes(layout))
	assert.Equal(t, []string{"content", "title"}, UsedSlotNames(layout))
	assert.Equal(t, 5, MaxDepth(layout))
}

func TestNilLayout(t *testing.T) {
	res := Walk(nil, Visitor{}, nil)
	require.NotNil(t, res.Layout)
	assert.Zero(t, res.Stats.NodesVisited)
}
