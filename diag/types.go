// Package diag defines validation diagnostics and renders them as grouped,
// severity-ordered feedback text for an external self-correction loop.
package diag

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Type classifies a diagnostic.
type Type string

const (
	// TypeSchema flags an unknown or malformed node kind.
	TypeSchema Type = "schema"
	// TypeRelationship flags a disallowed parent/child or slot relationship.
	TypeRelationship Type = "relationship"
	// TypeStructural flags a layout-shape or cardinality violation.
	TypeStructural Type = "structural"
)

// Diagnostic is a single validation finding.
type Diagnostic struct {
	// Type of the finding.
	Type Type `json:"type"`
	// Path locates the offending node from the layout root. Slot segments
	// are rendered as "slot:<name>".
	Path []string `json:"path"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Expected describes what the grammar allows, if applicable.
	Expected string `json:"expected,omitempty"`
	// Received describes what was found instead, if applicable.
	Received string `json:"received,omitempty"`
	// Suggestion offers a concrete fix, if one could be derived.
	Suggestion string `json:"suggestion,omitempty"`
}

// String returns a single-line rendering of the diagnostic.
func (d Diagnostic) String() string {
	var sb strings.Builder

	if len(d.Path) > 0 {
		sb.WriteString("at " + strings.Join(d.Path, ".") + ": ")
	}

	sb.WriteString(d.Message)

	if d.Expected != "" || d.Received != "" {
		sb.WriteString(fmt.Sprintf(" (expected %s, received %s)", orDash(d.Expected), orDash(d.Received)))
	}

	if d.Suggestion != "" {
		sb.WriteString(" — " + d.Suggestion)
	}

	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

// Result is the outcome of a structural validation.
type Result struct {
	IsValid  bool         `json:"isValid"`
	Errors   []Diagnostic `json:"errors"`
	Warnings []Diagnostic `json:"warnings"`
}

// AddError appends an error diagnostic and clears validity.
func (r *Result) AddError(d Diagnostic) {
	r.Errors = append(r.Errors, d)
	r.IsValid = false
}

// AddWarning appends a warning diagnostic. Warnings never affect validity.
func (r *Result) AddWarning(d Diagnostic) {
	r.Warnings = append(r.Warnings, d)
}

// Merge merges another result into this one.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.IsValid = len(r.Errors) == 0
}

// ByType returns the error diagnostics of the given type, in order.
func (r *Result) ByType(t Type) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Errors {
		if d.Type == t {
			out = append(out, d)
		}
	}

	return out
}

// Err returns all error diagnostics combined into one error, or nil when
// the result is valid.
func (r *Result) Err() error {
	var err error
	for _, d := range r.Errors {
		err = multierr.Append(err, fmt.Errorf("%s: %s", d.Type, d.String()))
	}

	return err
}
