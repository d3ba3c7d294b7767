package ir

// Clone returns a deep copy of the node. The traversal engine clones before
// enriching so that callers' input trees are never mutated.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	out := *n
	out.Props = cloneAnyMap(n.Props)
	out.Meta = cloneAnyMap(n.Meta)

	if n.AIInsights != nil {
		ai := *n.AIInsights
		out.AIInsights = &ai
	}

	out.DesignIntent = n.DesignIntent.Clone()

	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}

	if n.Slots != nil {
		out.Slots = make(map[string][]*Node, len(n.Slots))
		for name, items := range n.Slots {
			copied := make([]*Node, len(items))
			for i, c := range items {
				copied[i] = c.Clone()
			}
			out.Slots[name] = copied
		}
	}

	return &out
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	if l == nil {
		return nil
	}

	out := *l
	out.GlobalVars = cloneAnyMap(l.GlobalVars)

	if l.Content != nil {
		out.Content = make([]*Node, len(l.Content))
		for i, n := range l.Content {
			out.Content[i] = n.Clone()
		}
	}

	return &out
}

// Clone returns a deep copy of the intent record.
func (d *DesignIntent) Clone() *DesignIntent {
	if d == nil {
		return nil
	}

	out := DesignIntent{}

	if d.Layout != nil {
		l := *d.Layout
		out.Layout = &l
	}

	if d.Appearance != nil {
		a := *d.Appearance
		if a.CustomCSS != nil {
			css := make(map[string]string, len(a.CustomCSS))
			for k, v := range a.CustomCSS {
				css[k] = v
			}
			a.CustomCSS = css
		}
		out.Appearance = &a
	}

	if d.Typography != nil {
		t := *d.Typography
		out.Typography = &t
	}

	return &out
}

// cloneAnyMap copies one level of a map. Nested maps and slices are copied
// recursively so enrichment cannot alias into the caller's tree.
func cloneAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		return cloneAnyMap(vv)
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = cloneValue(e)
		}

		return out
	default:
		return v
	}
}
