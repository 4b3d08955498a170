// Package rendering merges a composed document spec into a stored docx
// template, producing a native-format artifact.
package rendering

import "fmt"

// TemplateNotFoundError indicates the named template does not exist in the
// template store.
type TemplateNotFoundError struct {
	TemplateID string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.TemplateID)
}

// RenderError indicates the template could not be merged with the composed
// data, typically because the template expects a merge field the data does
// not provide.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
