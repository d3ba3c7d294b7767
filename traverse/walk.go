// Package traverse implements the generic recursive walker over IR trees.
// Both transformers and the validator's derived utilities are built on it.
// The walk recurses into the children array and every slot array, never
// mutates its input, and never aborts: per-node failures are recorded and
// the original node is kept in the output.
package traverse

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"storycaster/diag"
	"storycaster/ir"
	"storycaster/registry"
)

// Ctx is the visitor's view of one node during the walk.
type Ctx struct {
	Node   *ir.Node
	Parent *ir.Node
	Depth  int
	Path   []string
	Index  int
}

// Visitor is a set of optional callbacks invoked per node. Visit may return
// a replacement node; returning nil keeps the current one.
type Visitor struct {
	BeforeVisit func(Ctx)
	Visit       func(Ctx) (*ir.Node, error)
	AfterVisit  func(Ctx)
}

// Options configures a walk. Use DefaultOptions as the starting point; a nil
// options pointer behaves the same.
type Options struct {
	// EnrichWithParent stamps ParentName/ParentKind from the immediate
	// structural parent onto every visited node.
	EnrichWithParent bool

	// CustomEnrichment, when set, may replace each node after parent
	// enrichment. Returning nil keeps the current node.
	CustomEnrichment func(node, parent *ir.Node) *ir.Node

	// ValidateNodes runs a per-node kind check inline, producing warnings
	// only. Requires Registry.
	ValidateNodes bool

	// Registry backs ValidateNodes. Defaults to the builtin grammar.
	Registry *registry.Registry

	// Logger receives per-node failure logs. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// DefaultOptions returns the standard walk configuration.
func DefaultOptions() *Options {
	return &Options{EnrichWithParent: true}
}

// Stats summarizes a completed walk.
type Stats struct {
	NodesVisited int
	MaxDepth     int
	SlotsSeen    int
}

// NodeError records a per-node failure that did not abort the walk.
type NodeError struct {
	Path []string
	Kind ir.Kind
	Err  error
}

func (e NodeError) Error() string {
	return fmt.Sprintf("node %q at %v: %v", e.Kind, e.Path, e.Err)
}

// Result is the outcome of a walk: a freshly built tree plus accumulated
// errors, warnings and statistics.
type Result struct {
	Layout   *ir.Layout
	Errors   []NodeError
	Warnings []diag.Diagnostic
	Stats    Stats
}

type walker struct {
	visitor Visitor
	opts    Options
	logger  zerolog.Logger
	res     *Result
}

// Enrich walks the layout stamping parent back-references on every node.
// The input is left untouched; the returned layout is a deep copy.
func Enrich(layout *ir.Layout, opts *Options) *Result {
	return Walk(layout, Visitor{}, opts)
}

// Walk runs the visitor over every node of the layout, depth-first, applying
// the configured enrichment along the way.
func Walk(layout *ir.Layout, visitor Visitor, opts *Options) *Result {
	if opts == nil {
		opts = DefaultOptions()
	}

	if opts.ValidateNodes && opts.Registry == nil {
		opts.Registry = registry.New()
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	w := &walker{visitor: visitor, opts: *opts, logger: logger, res: &Result{}}

	out := &ir.Layout{}
	if layout != nil {
		*out = *layout
		out.Content = make([]*ir.Node, len(layout.Content))
		for i, n := range layout.Content {
			out.Content[i] = w.walkNode(n, nil, 0, []string{fmt.Sprintf("content[%d]", i)}, i)
		}
	}
	w.res.Layout = out

	return w.res
}

func (w *walker) walkNode(node, parent *ir.Node, depth int, path []string, index int) *ir.Node {
	if node == nil {
		return nil
	}

	w.res.Stats.NodesVisited++
	if depth+1 > w.res.Stats.MaxDepth {
		w.res.Stats.MaxDepth = depth + 1
	}

	ctx := Ctx{Node: node, Parent: parent, Depth: depth, Path: path, Index: index}

	if w.visitor.BeforeVisit != nil {
		w.visitor.BeforeVisit(ctx)
	}

	out, err := w.applyNode(ctx)
	if err != nil {
		w.recordError(path, node.Kind, err)
		// Keep the original, unenriched node on failure.
		out = node.Clone()
	}

	if w.opts.ValidateNodes {
		w.validateNode(ctx)
	}

	// The enriched node is the structural parent for the recursion so that
	// visitor replacements propagate their name/kind downward.
	if len(node.Children) > 0 {
		out.Children = make([]*ir.Node, len(node.Children))
		for i, child := range node.Children {
			childPath := append(append([]string{}, path...), fmt.Sprintf("children[%d]", i))
			out.Children[i] = w.walkNode(child, out, depth+1, childPath, i)
		}
	}

	if len(node.Slots) > 0 {
		out.Slots = make(map[string][]*ir.Node, len(node.Slots))
		for _, name := range sortedSlotNames(node.Slots) {
			w.res.Stats.SlotsSeen++
			items := node.Slots[name]
			walked := make([]*ir.Node, len(items))
			for i, child := range items {
				childPath := append(append([]string{}, path...), fmt.Sprintf("slot:%s[%d]", name, i))
				walked[i] = w.walkNode(child, out, depth+1, childPath, i)
			}
			out.Slots[name] = walked
		}
	}

	if w.visitor.AfterVisit != nil {
		w.visitor.AfterVisit(ctx)
	}

	return out
}

// applyNode clones the node and runs enrichment plus the Visit callback.
// Panics are converted to errors so a misbehaving visitor cannot abort the
// walk.
func (w *walker) applyNode(ctx Ctx) (out *ir.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("visitor panic: %v", r)
		}
	}()

	out = ctx.Node.Clone()

	if w.opts.EnrichWithParent && ctx.Parent != nil {
		out.ParentName = ctx.Parent.Name
		out.ParentKind = ctx.Parent.Kind
	}

	if w.opts.CustomEnrichment != nil {
		if replaced := w.opts.CustomEnrichment(out, ctx.Parent); replaced != nil {
			out = replaced
		}
	}

	if w.visitor.Visit != nil {
		visitCtx := ctx
		visitCtx.Node = out

		replaced, visitErr := w.visitor.Visit(visitCtx)
		if visitErr != nil {
			return nil, visitErr
		}

		if replaced != nil {
			out = replaced
		}
	}

	return out, nil
}

func (w *walker) validateNode(ctx Ctx) {
	if w.opts.Registry.IsKnownKind(ctx.Node.Kind) {
		return
	}

	w.res.Warnings = append(w.res.Warnings, diag.Diagnostic{
		Type:     diag.TypeSchema,
		Path:     append([]string{}, ctx.Path...),
		Message:  fmt.Sprintf("unknown node kind %q", ctx.Node.Kind),
		Received: ctx.Node.Kind,
	})
}

func (w *walker) recordError(path []string, kind ir.Kind, err error) {
	w.logger.Warn().Str("kind", kind).Strs("path", path).Err(err).Msg("node visit failed; keeping original node")
	w.res.Errors = append(w.res.Errors, NodeError{
		Path: append([]string{}, path...),
		Kind: kind,
		Err:  err,
	})
}

func sortedSlotNames(slots map[string][]*ir.Node) []string {
	names := make([]string, 0, len(slots))
	for name := range slots {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
