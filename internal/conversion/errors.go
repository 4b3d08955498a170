// Package conversion converts a native-format artifact into the requested
// output format via an external conversion service.
package conversion

import "fmt"

// ConversionError indicates the conversion collaborator was unreachable or
// rejected the document. The pipeline fails closed on this error: native
// bytes are never relabeled as the requested format.
type ConversionError struct {
	From    string
	To      string
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("conversion %s->%s failed: %s: %v", e.From, e.To, e.Message, e.Cause)
	}
	return fmt.Sprintf("conversion %s->%s failed: %s", e.From, e.To, e.Message)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}
