// Package branding attaches recruiter/agency branding to a composed document
// spec as a namespace separate from the candidate data.
package branding

import "github.com/hireable/cv-generator/internal/types"

// Overlay returns spec with the recruiter profile attached. The candidate
// record is never touched; a nil profile leaves the spec without branding so
// the renderer omits branding placeholders entirely rather than emitting
// empty fields.
func Overlay(spec types.ComposedDocumentSpec, recruiter *types.RecruiterProfile) types.ComposedDocumentSpec {
	if recruiter == nil {
		spec.Recruiter = nil
		return spec
	}
	cp := *recruiter
	spec.Recruiter = &cp
	return spec
}
