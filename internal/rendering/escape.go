package rendering

import "strings"

// xmlReplacer escapes the characters that are significant inside a docx
// document part. Ampersand must be replaced first.
var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes a string for inclusion in the template's XML body.
func EscapeXML(s string) string {
	return xmlReplacer.Replace(s)
}

// escapeValue walks a decoded JSON value and escapes every string in place,
// so candidate-supplied text can never break the document markup.
func escapeValue(v any) any {
	switch val := v.(type) {
	case string:
		return EscapeXML(val)
	case map[string]any:
		for k, inner := range val {
			val[k] = escapeValue(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = escapeValue(inner)
		}
		return val
	default:
		return v
	}
}
