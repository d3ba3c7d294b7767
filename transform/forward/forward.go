// Package forward transforms IR layout trees into CMS component trees. The
// transformer is a per-kind dispatch registry with a generic fallback; the
// whole-tree entry point wraps results in a CMS story envelope and caches
// them by content hash.
package forward

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"storycaster/cms"
	"storycaster/ir"
	"storycaster/transform"
)

// TransformFunc converts one IR node into a CMS component. Implementations
// recurse through the Run.
type TransformFunc func(r *Run, node *ir.Node) (cms.Component, error)

// Options configures one whole-tree transformation.
type Options struct {
	// IncludeMeta stamps provenance metadata (origin name, source key) onto
	// every transformed component.
	IncludeMeta bool

	// DisableCache bypasses the session cache for this call.
	DisableCache bool
}

func (o Options) fingerprint() string {
	return fmt.Sprintf("forward;meta=%t", o.IncludeMeta)
}

// Result is the outcome of a whole-tree transformation.
type Result struct {
	Story      *cms.Story
	Components int
	Success    bool
	Errors     []transform.Error
	Warnings   []transform.Warning
	FromCache  bool
}

// Err folds the accumulated errors into one error, or nil on success.
func (r *Result) Err() error {
	return transform.CombineErrors(r.Errors)
}

// Transformer dispatches IR nodes to per-kind transform functions. Create
// one per session; it shares the session's single-goroutine contract.
//
// Node identity is duplicate-by-value: a node value reachable through two
// parents is transformed once per occurrence and each copy gets its own
// generated UID. Reference nodes are not modeled.
type Transformer struct {
	session  *transform.Session
	registry map[ir.Kind]TransformFunc
}

// New builds a transformer with the builtin kind registry installed.
func New(session *transform.Session) *Transformer {
	t := &Transformer{
		session:  session,
		registry: make(map[ir.Kind]TransformFunc),
	}
	t.registerBuiltins()

	return t
}

// Register installs a transform function for a kind, replacing any builtin.
// This is the extension point for dynamically registered kinds.
func (t *Transformer) Register(kind ir.Kind, fn TransformFunc) {
	t.registry[kind] = fn
}

// Run is the per-invocation state threaded through a whole-tree transform:
// context, options and the warning/error accumulators.
type Run struct {
	ctx      context.Context
	t        *Transformer
	opts     Options
	errors   []transform.Error
	warnings []transform.Warning
}

// Context returns the invocation context.
func (r *Run) Context() context.Context { return r.ctx }

// Session returns the owning session.
func (r *Run) Session() *transform.Session { return r.t.session }

// Options returns the invocation options.
func (r *Run) Options() Options { return r.opts }

// Warn records a non-fatal finding.
func (r *Run) Warn(w transform.Warning) {
	r.warnings = append(r.warnings, w)
}

// Transform converts a whole IR layout into a CMS story. Per-entry failures
// are accumulated, not fatal; Success reports whether any occurred.
func (t *Transformer) Transform(ctx context.Context, layout *ir.Layout, opts *Options) *Result {
	if opts == nil {
		opts = &Options{}
	}

	key := ""
	if !opts.DisableCache {
		key = transform.CacheKey(layout, opts.fingerprint())
		if cached, ok := t.session.Cache.Get(key); ok {
			if res, ok := cached.(*Result); ok {
				t.session.Logger.Debug().Str("layout", layout.Name).Msg("forward transform cache hit")
				copied := *res
				copied.FromCache = true

				return &copied
			}
		}
	}

	r := &Run{ctx: ctx, t: t, opts: *opts}

	var components []cms.Component
	for i, node := range layout.Content {
		comp, err := r.transformEntry(node)
		if err != nil {
			r.errors = append(r.errors, transform.Error{
				Code:    transform.ErrCodeParsing,
				Node:    entryName(node, i),
				Message: "failed to transform top-level entry",
				Err:     err,
			})
			continue
		}

		components = append(components, comp)
	}

	story := t.buildStory(layout, components)

	res := &Result{
		Story:      story,
		Components: cms.Count(story.Content),
		Success:    len(r.errors) == 0,
		Errors:     r.errors,
		Warnings:   r.warnings,
	}

	if key != "" {
		t.session.Cache.Put(key, res)
	}

	return res
}

// transformEntry guards one top-level entry: a panic inside any per-kind
// transform surfaces as that entry's error and the remaining entries still
// run.
func (r *Run) transformEntry(node *ir.Node) (comp cms.Component, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			comp, err = nil, fmt.Errorf("transform panic: %v", rec)
		}
	}()

	return r.TransformNode(node)
}

// TransformNode dispatches a single node through the registry. An upstream
// AIInsights.SuggestedKind overrides which transform runs; a kind with no
// registry entry falls back to the generic component shape.
func (r *Run) TransformNode(node *ir.Node) (cms.Component, error) {
	if node == nil {
		return nil, fmt.Errorf("cannot transform nil node")
	}

	dispatchKind := node.Kind
	if override := node.SuggestedOverride(); override != "" {
		r.Session().Logger.Info().
			Str("declared", node.Kind).
			Str("suggested", override).
			Float64("confidence", node.AIInsights.Confidence).
			Msg("dispatch redirected by upstream kind suggestion")
		dispatchKind = override
	}

	fn := r.t.registry[dispatchKind]
	if fn == nil {
		fn = genericTransform
	}

	comp, err := fn(r, node)
	if err != nil {
		return nil, err
	}

	comp.SetUID(uuid.NewString())

	if r.opts.IncludeMeta {
		if node.Name != "" {
			comp["_origin_name"] = node.Name
		}
		if node.ComponentKey != "" {
			comp["_source_key"] = node.ComponentKey
		}
	} else if len(node.Meta) > 0 {
		r.Warn(transform.Warning{
			Type:      transform.WarnMetadataLoss,
			Component: comp.Name(),
			Message:   fmt.Sprintf("node %q carries metadata but metadata inclusion is off", node.Name),
			Impact:    transform.ImpactLow,
		})
	}

	return comp, nil
}

// TransformChildren transforms the node's ordinary children in order. Each
// child is stamped with the parent's name and kind before its own transform
// runs, mirroring the traversal enrichment contract.
func (r *Run) TransformChildren(node *ir.Node) ([]cms.Component, error) {
	return r.transformItems(node, node.Children)
}

// TransformSlot transforms the items of one named slot.
func (r *Run) TransformSlot(node *ir.Node, slot string) ([]cms.Component, error) {
	return r.transformItems(node, node.Slots[slot])
}

func (r *Run) transformItems(parent *ir.Node, items []*ir.Node) ([]cms.Component, error) {
	if len(items) == 0 {
		return nil, nil
	}

	out := make([]cms.Component, 0, len(items))
	for _, child := range items {
		if child == nil {
			continue
		}

		stamped := child.Clone()
		stamped.ParentName = parent.Name
		stamped.ParentKind = parent.Kind

		comp, err := r.TransformNode(stamped)
		if err != nil {
			return nil, err
		}

		out = append(out, comp)
	}

	return out, nil
}

// genericTransform is the fallback for kinds with no registry entry: a
// synthetic component name derived from the kind, with the raw props spread
// in verbatim.
func genericTransform(r *Run, node *ir.Node) (cms.Component, error) {
	comp := cms.New(fallbackComponentName(node.Kind))
	for k, v := range node.Props {
		comp[k] = v
	}

	r.Session().Logger.Debug().Str("kind", node.Kind).Str("component", comp.Name()).Msg("no transform registered; using generic component")

	children, err := r.TransformChildren(node)
	if err != nil {
		return nil, err
	}
	if children != nil {
		comp["body"] = children
	}

	return comp, nil
}

func entryName(node *ir.Node, index int) string {
	if node != nil && node.Name != "" {
		return node.Name
	}

	return fmt.Sprintf("content[%d]", index)
}
