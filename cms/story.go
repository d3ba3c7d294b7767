package cms

import (
	"strings"
	"unicode"
)

// PageComponent is the CMS component name of the top-level page container.
const PageComponent = "page"

// Story is the CMS's top-level document envelope.
type Story struct {
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Content  Component `json:"content"`
	IsFolder bool      `json:"is_folder"`
	ParentID string    `json:"parent_id,omitempty"`
	GroupID  string    `json:"group_id,omitempty"`
}

// Slugify derives a URL slug from a story name: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, trimmed at both ends.
func Slugify(name string) string {
	var sb strings.Builder

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) {
			sb.WriteRune(r)
			lastHyphen = false
			continue
		}

		if !lastHyphen {
			sb.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
