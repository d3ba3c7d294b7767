package cms

import "strings"

// Rich-text node type tags.
const (
	RichTextDoc       = "doc"
	RichTextParagraph = "paragraph"
	RichTextText      = "text"
)

// NewRichText builds the single-paragraph rich-text document form:
//
//	{type:"doc", content:[{type:"paragraph", content:[{type:"text", text:...}]}]}
//
// An empty text yields a doc with an empty paragraph, which the CMS editor
// treats as an empty field.
func NewRichText(text string) map[string]any {
	paragraph := map[string]any{"type": RichTextParagraph}
	if text != "" {
		paragraph["content"] = []any{
			map[string]any{"type": RichTextText, "text": text},
		}
	}

	return map[string]any{
		"type":    RichTextDoc,
		"content": []any{paragraph},
	}
}

// ExtractText concatenates every text leaf of a rich-text document,
// depth-first, ignoring inline marks and attributes. Non-document input
// yields "".
func ExtractText(doc any) string {
	var sb strings.Builder
	extractText(doc, &sb)

	return sb.String()
}

func extractText(node any, sb *strings.Builder) {
	m, ok := node.(map[string]any)
	if !ok {
		return
	}

	if m["type"] == RichTextText {
		if text, ok := m["text"].(string); ok {
			sb.WriteString(text)
		}

		return
	}

	children, ok := m["content"].([]any)
	if !ok {
		return
	}

	for _, child := range children {
		extractText(child, sb)
	}
}

// IsRichText reports whether the value looks like a rich-text document.
func IsRichText(v any) bool {
	m, ok := v.(map[string]any)
	return ok && m["type"] == RichTextDoc
}
