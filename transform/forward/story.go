package forward

import (
	"github.com/google/uuid"

	"storycaster/cms"
	"storycaster/ir"
)

// buildStory wraps transformed top-level components in the CMS story
// envelope. When the layout's root node transformed into the page CMS kind,
// that component becomes the envelope content directly; otherwise a default
// page wrapper is synthesized around the top-level components.
func (t *Transformer) buildStory(layout *ir.Layout, components []cms.Component) *cms.Story {
	var content cms.Component

	if len(components) > 0 && components[0].Name() == cms.PageComponent {
		content = components[0]

		// Stray top-level siblings of an explicit page join its body.
		if len(components) > 1 {
			body := content.Children("body")
			body = append(body, components[1:]...)
			content["body"] = body
		}
	} else {
		content = cms.New(cms.PageComponent)
		content.SetUID(uuid.NewString())
		content["body"] = orEmpty(components)
	}

	name := layout.Name
	if name == "" {
		name = "untitled-layout"
	}

	return &cms.Story{
		Name:    name,
		Slug:    cms.Slugify(name),
		Content: content,
	}
}
