package design

import "strings"

// paddingTokens maps exact pixel values to spacing tokens. No interpolation:
// a value between rungs yields no token and the field is omitted.
var paddingTokens = map[string]string{
	"4":  "xxs",
	"8":  "xs",
	"12": "s",
	"16": "m",
	"24": "l",
	"32": "xl",
	"48": "xxl",
	"64": "xxxl",
}

// gapTokens overlaps with the padding table but is distinct: it has a "none"
// rung at zero and stops at xl.
var gapTokens = map[string]string{
	"0":  "none",
	"4":  "xxs",
	"8":  "xs",
	"12": "s",
	"16": "m",
	"24": "l",
	"32": "xl",
}

// variantLadder maps font sizes to typographic variants via descending
// thresholds. Boundaries are exact: 48 is display1, 47 is display2.
var variantLadder = []struct {
	minSize int
	variant string
}{
	{48, "display1"},
	{36, "display2"},
	{30, "header1"},
	{24, "header2"},
	{20, "header3"},
	{18, "header4"},
	{16, "header5"},
}

const variantBody = "body"

// variantSizes is the reverse ladder: each variant's representative size.
var variantSizes = map[string]int{
	"display1":  48,
	"display2":  36,
	"header1":   30,
	"header2":   24,
	"header3":   20,
	"header4":   18,
	"header5":   16,
	variantBody: 14,
}

// spacingToken resolves a raw spacing value against a token table. Already
// recognized tokens pass through unchanged; pixel values match exactly after
// stripping a trailing "px"; anything else yields ("", false) and the field
// is omitted.
func spacingToken(raw string, table map[string]string) (string, bool) {
	for _, token := range table {
		if raw == token {
			return raw, true
		}
	}

	stripped := strings.TrimSuffix(raw, "px")
	if token, ok := table[stripped]; ok {
		return token, true
	}

	return "", false
}

// spacingPixels inverts a token table back to a pixel value.
func spacingPixels(token string, table map[string]string) (string, bool) {
	for px, t := range table {
		if t == token {
			return px + "px", true
		}
	}

	return "", false
}

// fontVariant maps a font size onto the variant ladder.
func fontVariant(size int) string {
	for _, rung := range variantLadder {
		if size >= rung.minSize {
			return rung.variant
		}
	}

	return variantBody
}

// colorOption is the documented color stub: it returns a synthetic
// single-option record carrying the raw color string, not resolved against
// any real palette. Palette resolution happens upstream.
func colorOption(raw string) map[string]any {
	option := map[string]any{"name": "custom", "value": raw}

	return map[string]any{
		"options":  []any{option},
		"selected": map[string]any{"name": "custom", "value": raw},
	}
}

// selectedColorValue is the reverse accessor for colorOption-shaped fields.
func selectedColorValue(field any) (string, bool) {
	m, ok := field.(map[string]any)
	if !ok {
		return "", false
	}

	selected, ok := m["selected"].(map[string]any)
	if !ok {
		return "", false
	}

	value, ok := selected["value"].(string)

	return value, ok
}
