package design

// CMS design field names.
const (
	FieldDirection  = "direction"
	FieldPadding    = "padding"
	FieldGap        = "gap"
	FieldBackground = "background_color"
	FieldTextColor  = "text_color"
	FieldVariant    = "variant"
	FieldFontWeight = "font_weight"
	FieldTextAlign  = "text_align"
)

// fieldSchemas lists the design fields each target component accepts.
// Components absent from the table accept none; fields computed for them
// are logged and dropped.
var fieldSchemas = map[string][]string{
	"page":              {FieldPadding, FieldBackground},
	"sb-section":        {FieldDirection, FieldPadding, FieldGap, FieldBackground, FieldTextAlign},
	"sb-flex_group":     {FieldDirection, FieldPadding, FieldGap, FieldBackground},
	"sb-group":          {FieldDirection, FieldPadding, FieldGap, FieldBackground},
	"sb-headline":       {FieldVariant, FieldFontWeight, FieldTextAlign, FieldTextColor},
	"sb-flex_headline":  {FieldVariant, FieldFontWeight, FieldTextAlign, FieldTextColor},
	"sb-text":           {FieldVariant, FieldFontWeight, FieldTextAlign, FieldTextColor, FieldBackground},
	"sb-blockquote":     {FieldVariant, FieldTextAlign, FieldTextColor, FieldBackground},
	"sb-alert":          {FieldBackground, FieldTextColor},
	"sb-editorial_card": {FieldPadding, FieldGap, FieldBackground},
	"sb-accordion_item": {FieldPadding, FieldBackground},
	"sb-drawer":         {FieldPadding, FieldBackground},
	"sb-list":           {FieldGap, FieldTextColor},
	"sb-table":          {FieldBackground, FieldTextAlign},
}

func schemaAllows(component, field string) bool {
	for _, f := range fieldSchemas[component] {
		if f == field {
			return true
		}
	}

	return false
}

// knownComponent reports whether the component has a design-field schema.
func knownComponent(component string) bool {
	_, ok := fieldSchemas[component]
	return ok
}
