// Package reverse transforms CMS component trees back into IR layouts.
// Dispatch is keyed by the concrete CMS component name, which is finer
// grained than the IR kind space: the same IR kind may have several CMS
// variants depending on structural context. Unknown components degrade to
// heuristic fallback nodes that preserve the original payload.
package reverse

import (
	"context"
	"fmt"

	"storycaster/cms"
	"storycaster/diag"
	"storycaster/ir"
	"storycaster/transform"
)

// Entry is one reverse-dispatch registration.
type Entry struct {
	// Kind is the IR kind the component maps to.
	Kind ir.Kind
	// Confidence grades the mapping's reliability in [0,1].
	Confidence float64
	// Description documents the mapping.
	Description string
	// Transform builds the IR node.
	Transform func(r *Run, comp cms.Component) (*ir.Node, error)
}

// Result is the outcome of a reverse transformation.
type Result struct {
	Layout     *ir.Layout
	Validation *diag.Result
	Success    bool
	Errors     []transform.Error
	Warnings   []transform.Warning
}

// Err folds the accumulated errors into one error, or nil on success.
func (r *Result) Err() error {
	return transform.CombineErrors(r.Errors)
}

// Transformer dispatches CMS components to per-component reverse entries.
type Transformer struct {
	session  *transform.Session
	registry map[string]Entry
}

// New builds a transformer with the builtin component registry installed.
func New(session *transform.Session) *Transformer {
	t := &Transformer{
		session:  session,
		registry: make(map[string]Entry),
	}
	t.registerBuiltins()

	return t
}

// Register installs a reverse entry for a CMS component name, replacing any
// builtin. This is the extension point for dynamically registered
// components.
func (t *Transformer) Register(component string, e Entry) {
	t.registry[component] = e
}

// Entries returns the registered component names, for introspection.
func (t *Transformer) Entries() map[string]Entry {
	out := make(map[string]Entry, len(t.registry))
	for k, v := range t.registry {
		out[k] = v
	}

	return out
}

// Run is the per-invocation state threaded through a reverse transform.
type Run struct {
	ctx      context.Context
	t        *Transformer
	errors   []transform.Error
	warnings []transform.Warning
}

// Context returns the invocation context.
func (r *Run) Context() context.Context { return r.ctx }

// Session returns the owning session.
func (r *Run) Session() *transform.Session { return r.t.session }

// Warn records a non-fatal finding.
func (r *Run) Warn(w transform.Warning) {
	r.warnings = append(r.warnings, w)
}

// Transform converts a CMS story back into an IR layout. The resulting
// layout is checked by the structural validator before returning; a failing
// validation is fatal here, unlike the validator's own advisory contract.
func (t *Transformer) Transform(ctx context.Context, story *cms.Story) (*Result, error) {
	if story == nil || story.Content == nil {
		return nil, fmt.Errorf("story has no content")
	}

	r := &Run{ctx: ctx, t: t}

	root := r.TransformComponent(story.Content)

	layout := &ir.Layout{
		Version: ir.SupportedVersion,
		Name:    story.Name,
		Content: []*ir.Node{root},
	}

	validation := t.session.Validator.Validate(layout)
	res := &Result{
		Layout:     layout,
		Validation: validation,
		Success:    len(r.errors) == 0,
		Errors:     r.errors,
		Warnings:   r.warnings,
	}

	if !validation.IsValid {
		return res, fmt.Errorf("reverse transform produced a structurally invalid layout: %w", validation.Err())
	}

	return res, nil
}

// TransformComponent converts a single component. Dispatch misses and
// per-node transform failures degrade to fallback nodes; the walk never
// aborts.
func (r *Run) TransformComponent(comp cms.Component) *ir.Node {
	entry, ok := r.t.registry[comp.Name()]
	if !ok {
		return r.fallbackNode(comp, transform.ImpactMedium)
	}

	node, err := r.applyEntry(entry, comp)
	if err != nil {
		r.errors = append(r.errors, transform.Error{
			Code:    transform.ErrCodeParsing,
			Node:    comp.Name(),
			Message: "reverse transform failed; degrading to fallback node",
			Err:     err,
		})

		return r.fallbackNode(comp, transform.ImpactHigh)
	}

	r.decorate(node, comp)

	return node
}

// applyEntry runs an entry's transform with panic isolation.
func (r *Run) applyEntry(entry Entry, comp cms.Component) (node *ir.Node, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			node, err = nil, fmt.Errorf("reverse transform panic: %v", rec)
		}
	}()

	node, err = entry.Transform(r, comp)
	if err == nil && node == nil {
		err = fmt.Errorf("transform returned no node")
	}

	return node, err
}

// decorate applies the cross-cutting reverse rules: source identity, and
// design-intent recovery from the component's design fields. Fields with no
// reverse rule are silently dropped.
func (r *Run) decorate(node *ir.Node, comp cms.Component) {
	if node.ComponentKey == "" {
		node.ComponentKey = comp.UID()
	}

	if node.Name == "" {
		if origin := comp.String("_origin_name"); origin != "" {
			node.Name = origin
		} else {
			node.Name = node.Kind
		}
	}

	if node.DesignIntent == nil {
		node.DesignIntent = r.Session().Design.Intent(map[string]any(comp))
	}
}

// TransformChildren converts the component array under the given field into
// IR children.
func (r *Run) TransformChildren(comp cms.Component, field string) []*ir.Node {
	children := comp.Children(field)
	if children == nil {
		return nil
	}

	out := make([]*ir.Node, 0, len(children))
	for _, child := range children {
		out = append(out, r.TransformComponent(child))
	}

	return out
}
