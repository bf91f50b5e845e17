// Package render implements the shared template renderer: a pure function
// from (ResumeDocument, RenderConfig, templateID) to a styled block tree.
package render

import "fmt"

// UnknownTemplateError reports a templateID with no registered skin. This is
// the renderer's only error: missing or malformed document fields degrade to
// placeholders instead, but there is no sane visual fallback for a template
// that does not exist.
type UnknownTemplateError struct {
	TemplateID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template: %q", e.TemplateID)
}
