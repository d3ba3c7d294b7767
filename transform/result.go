package transform

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Transform error codes.
const (
	ErrCodeParsing    = "PARSING_ERROR"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// Error is a per-node transform failure. Errors accumulate on the result;
// they never abort the surrounding walk.
type Error struct {
	Code    string `json:"code"`
	Node    string `json:"node,omitempty"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Code)
	if e.Node != "" {
		sb.WriteString(" [" + e.Node + "]")
	}
	sb.WriteString(": " + e.Message)

	if e.Err != nil {
		sb.WriteString(": " + e.Err.Error())
	}

	return sb.String()
}

func (e Error) Unwrap() error { return e.Err }

// WarningType classifies a non-fatal transform finding.
type WarningType string

const (
	WarnUnsupportedComponent WarningType = "UNSUPPORTED_COMPONENT"
	WarnMissingContent       WarningType = "MISSING_CONTENT"
	WarnSimplifiedStructure  WarningType = "SIMPLIFIED_STRUCTURE"
	WarnMetadataLoss         WarningType = "METADATA_LOSS"
)

// Impact grades a warning's severity. Warnings never affect success.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Warning is a non-fatal transform finding.
type Warning struct {
	Type      WarningType `json:"type"`
	Component string      `json:"component,omitempty"`
	Message   string      `json:"message"`
	Impact    Impact      `json:"impact"`
}

func (w Warning) String() string {
	s := fmt.Sprintf("%s (%s impact)", w.Type, w.Impact)
	if w.Component != "" {
		s += " [" + w.Component + "]"
	}

	return s + ": " + w.Message
}

// CombineErrors folds accumulated transform errors into a single error, or
// nil when there are none.
func CombineErrors(errs []Error) error {
	var err error
	for _, e := range errs {
		err = multierr.Append(err, e)
	}

	return err
}
