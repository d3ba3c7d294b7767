package traverse

import (
	"sort"
	"strings"

	"storycaster/ir"
)

// readOnlyOptions avoids per-node cloning work the collectors do not need.
func readOnlyOptions() *Options {
	return &Options{EnrichWithParent: false}
}

// FindByKind returns every node of the given kind, in document order.
func FindByKind(layout *ir.Layout, kind ir.Kind) []*ir.Node {
	var found []*ir.Node

	Walk(layout, Visitor{
		BeforeVisit: func(ctx Ctx) {
			if ctx.Node.Kind == kind {
				found = append(found, ctx.Node)
			}
		},
	}, readOnlyOptions())

	return found
}

// FindInSlot returns every node stored under a slot of the given name,
// anywhere in the tree, in document order.
func FindInSlot(layout *ir.Layout, slotName string) []*ir.Node {
	prefix := "slot:" + slotName + "["

	var found []*ir.Node

	Walk(layout, Visitor{
		BeforeVisit: func(ctx Ctx) {
			if len(ctx.Path) == 0 {
				return
			}

			if strings.HasPrefix(ctx.Path[len(ctx.Path)-1], prefix) {
				found = append(found, ctx.Node)
			}
		},
	}, readOnlyOptions())

	return found
}

// CountNodes returns the total number of nodes in the layout, slot items
// included.
func CountNodes(layout *ir.Layout) int {
	return Walk(layout, Visitor{}, readOnlyOptions()).Stats.NodesVisited
}

// UsedSlotNames returns the sorted set of slot names used anywhere in the
// layout.
func UsedSlotNames(layout *ir.Layout) []string {
	seen := map[string]bool{}

	Walk(layout, Visitor{
		BeforeVisit: func(ctx Ctx) {
			for name := range ctx.Node.Slots {
				seen[name] = true
			}
		},
	}, readOnlyOptions())

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// MaxDepth returns the depth of the deepest node; an empty layout has
// depth 0.
func MaxDepth(layout *ir.Layout) int {
	return Walk(layout, Visitor{}, readOnlyOptions()).Stats.MaxDepth
}
