// Package design maps between the CMS-agnostic design-intent record and the
// target CMS's design fields, in both directions. The forward direction is
// tokenizing and schema-checked; the reverse direction is lossy by design.
package design

import (
	"strconv"

	"github.com/rs/zerolog"

	"storycaster/ir"
)

// Mapper converts design intents to CMS design fields and back.
type Mapper struct {
	logger zerolog.Logger
}

// New builds a mapper. A nil logger disables logging.
func New(logger *zerolog.Logger) *Mapper {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}

	return &Mapper{logger: l}
}

// Fields produces the CMS design-field entries for an intent, targeted at
// one concrete component. Fields the component's schema does not accept are
// logged and dropped, never an error. An unknown target component yields an
// empty map.
func (m *Mapper) Fields(intent *ir.DesignIntent, targetComponent string) map[string]any {
	if intent.IsEmpty() {
		return map[string]any{}
	}

	if !knownComponent(targetComponent) {
		m.logger.Debug().Str("component", targetComponent).Msg("no design-field schema for component")
		return map[string]any{}
	}

	computed := map[string]any{}
	m.layoutFields(computed, intent.Layout)
	m.appearanceFields(computed, intent.Appearance)
	m.typographyFields(computed, intent.Typography)

	out := make(map[string]any, len(computed))
	for field, value := range computed {
		if !schemaAllows(targetComponent, field) {
			m.logger.Warn().
				Str("component", targetComponent).
				Str("field", field).
				Msg("design field not accepted by component schema; dropping")
			continue
		}

		out[field] = value
	}

	return out
}

func (m *Mapper) layoutFields(out map[string]any, layout *ir.LayoutIntent) {
	if layout == nil {
		return
	}

	switch layout.Direction {
	case "vertical":
		out[FieldDirection] = "column"
	case "horizontal":
		out[FieldDirection] = "row"
	case "":
	default:
		m.logger.Warn().Str("direction", layout.Direction).Msg("unrecognized layout direction; dropping")
	}

	if layout.Padding != "" {
		if token, ok := spacingToken(layout.Padding, paddingTokens); ok {
			out[FieldPadding] = token
		} else {
			m.logger.Warn().Str("padding", layout.Padding).Msg("padding matches no spacing token; dropping")
		}
	}

	if layout.Gap != "" {
		if token, ok := spacingToken(layout.Gap, gapTokens); ok {
			out[FieldGap] = token
		} else {
			m.logger.Warn().Str("gap", layout.Gap).Msg("gap matches no spacing token; dropping")
		}
	}
}

func (m *Mapper) appearanceFields(out map[string]any, appearance *ir.AppearanceIntent) {
	if appearance == nil {
		return
	}

	if appearance.BackgroundColor != "" {
		out[FieldBackground] = colorOption(appearance.BackgroundColor)
	}

	if appearance.TextColor != "" {
		out[FieldTextColor] = colorOption(appearance.TextColor)
	}

	// CustomCSS has no CMS representation.
	if len(appearance.CustomCSS) > 0 {
		m.logger.Debug().Int("properties", len(appearance.CustomCSS)).Msg("customCSS has no design-field mapping; dropping")
	}
}

func (m *Mapper) typographyFields(out map[string]any, typography *ir.TypographyIntent) {
	if typography == nil {
		return
	}

	if typography.FontSize > 0 {
		out[FieldVariant] = fontVariant(typography.FontSize)
	}

	if typography.FontWeight > 0 {
		out[FieldFontWeight] = strconv.Itoa(typography.FontWeight)
	}

	if typography.TextAlign != "" {
		out[FieldTextAlign] = typography.TextAlign
	}
}

// Intent inverts CMS design fields back into an intent record. Fields with
// no reverse rule are silently dropped; this path is lossy by design.
// Returns nil when no sub-record ends up non-empty.
func (m *Mapper) Intent(fields map[string]any) *ir.DesignIntent {
	if len(fields) == 0 {
		return nil
	}

	layout := &ir.LayoutIntent{}
	appearance := &ir.AppearanceIntent{}
	typography := &ir.TypographyIntent{}

	if direction, ok := fields[FieldDirection].(string); ok && direction != "" {
		if direction == "column" {
			layout.Direction = "vertical"
		} else {
			layout.Direction = "horizontal"
		}
	}

	if token, ok := fields[FieldPadding].(string); ok {
		if px, found := spacingPixels(token, paddingTokens); found {
			layout.Padding = px
		}
	}

	if token, ok := fields[FieldGap].(string); ok {
		if px, found := spacingPixels(token, gapTokens); found {
			layout.Gap = px
		}
	}

	if value, ok := selectedColorValue(fields[FieldBackground]); ok {
		appearance.BackgroundColor = value
	}

	if value, ok := selectedColorValue(fields[FieldTextColor]); ok {
		appearance.TextColor = value
	}

	if variant, ok := fields[FieldVariant].(string); ok {
		if size, found := variantSizes[variant]; found {
			typography.FontSize = size
		}
	}

	if weight, ok := fields[FieldFontWeight].(string); ok && weight != "" {
		parsed, err := strconv.Atoi(weight)
		if err != nil {
			parsed = 400
		}
		typography.FontWeight = parsed
	}

	if align, ok := fields[FieldTextAlign].(string); ok && align != "" {
		typography.TextAlign = align
	}

	intent := &ir.DesignIntent{}
	if *layout != (ir.LayoutIntent{}) {
		intent.Layout = layout
	}
	if appearance.BackgroundColor != "" || appearance.TextColor != "" {
		intent.Appearance = appearance
	}
	if *typography != (ir.TypographyIntent{}) {
		intent.Typography = typography
	}

	if intent.IsEmpty() {
		return nil
	}

	return intent
}
