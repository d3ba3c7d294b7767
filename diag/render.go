package diag

import (
	"fmt"
	"strings"
)

// RenderFeedback renders a validation result as grouped, severity-ordered
// natural-language feedback: schema errors first, then relationship, then
// structural, then warnings. The text is designed to be fed back into an
// external retry loop, not shown to end users.
func RenderFeedback(r *Result) string {
	if r == nil {
		return ""
	}

	if r.IsValid && len(r.Warnings) == 0 {
		return "The layout is structurally valid."
	}

	var sb strings.Builder

	if !r.IsValid {
		sb.WriteString(fmt.Sprintf("The layout has %d structural problem(s) that must be fixed:\n", len(r.Errors)))
	}

	renderGroup(&sb, "Unknown or malformed kinds", r.ByType(TypeSchema))
	renderGroup(&sb, "Disallowed nesting", r.ByType(TypeRelationship))
	renderGroup(&sb, "Shape and cardinality violations", r.ByType(TypeStructural))

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("\nWarnings (%d, non-blocking):\n", len(r.Warnings)))
		for _, d := range r.Warnings {
			sb.WriteString("  - " + d.String() + "\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func renderGroup(sb *strings.Builder, header string, diags []Diagnostic) {
	if len(diags) == 0 {
		return
	}

	sb.WriteString("\n" + header + ":\n")
	for _, d := range diags {
		sb.WriteString("  - " + d.String() + "\n")
	}
}
