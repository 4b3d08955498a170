// Package validation checks inbound customization requests against the
// accepted shape and value constraints before any side effect occurs.
package validation

import (
	"fmt"
	"strings"
)

// Reason codes carried on the wire so callers can react to individual
// violations without parsing messages.
const (
	CodeValidation        = "validation_error"
	CodeUnknownSection    = "unknown_section"
	CodeUnsupportedFormat = "unsupported_format"
)

// Violation is a single violated constraint at a specific field.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RequestError reports every constraint a request violated, not just the
// first. It is an input error: never retried, surfaced directly to the caller.
type RequestError struct {
	Violations []Violation
}

func (e *RequestError) Error() string {
	var sb strings.Builder
	sb.WriteString("request validation failed:")
	for i, v := range e.Violations {
		sb.WriteString(fmt.Sprintf("\n  %d. %s [%s]: %s", i+1, v.Field, v.Code, v.Message))
	}
	return sb.String()
}

// HasCode reports whether any violation carries the given reason code.
func (e *RequestError) HasCode(code string) bool {
	for _, v := range e.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

// add appends a violation.
func (e *RequestError) add(field, code, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Code: code, Message: message})
}
