// Package render produces the HTML preview of a finalized resume document
// snapshot. Pure presentation: it never touches the store or mutates the
// document.
package render

import "fmt"

// TemplateError represents an error parsing or executing the HTML template.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
