package types

import (
	"github.com/hireable/cv-generator/internal/sections"
)

// OutputFormat enumerates the document formats a caller may request.
type OutputFormat string

const (
	FormatDoc  OutputFormat = "doc"
	FormatDocx OutputFormat = "docx"
	FormatPDF  OutputFormat = "pdf"
)

// ValidFormat reports whether f is an accepted output format.
func ValidFormat(f OutputFormat) bool {
	switch f {
	case FormatDoc, FormatDocx, FormatPDF:
		return true
	}
	return false
}

// ContentType returns the MIME type for the format.
func (f OutputFormat) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatDoc:
		return "application/msword"
	default:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
}

// Ext returns the filename extension for the format, without the dot.
func (f OutputFormat) Ext() string {
	return string(f)
}

// RecruiterProfile carries recruiter/agency branding for the rendered output.
// The fields are purely additive; nothing here is validated beyond type.
type RecruiterProfile struct {
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	AgencyName string `json:"agencyName,omitempty"`
	AgencyLogo string `json:"agencyLogo,omitempty"`
	Website    string `json:"website,omitempty"`
}

// CustomizationRequest is the one-shot, request-scoped customization payload.
// Only Data is mandatory; every other field falls back to a default.
type CustomizationRequest struct {
	Template          string            `json:"template,omitempty"`
	OutputFormat      OutputFormat      `json:"outputFormat,omitempty"`
	SectionOrder      []string          `json:"sectionOrder,omitempty"`
	SectionVisibility map[string]bool   `json:"sectionVisibility,omitempty"`
	IsAnonymized      bool              `json:"isAnonymized,omitempty"`
	RecruiterProfile  *RecruiterProfile `json:"recruiterProfile,omitempty"`
	Data              *CandidateRecord  `json:"data" validate:"required"`
}

// ComposedDocumentSpec is the fully resolved rendering plan for one request.
// It is produced once by the pipeline and never mutated afterwards.
type ComposedDocumentSpec struct {
	Sections   []sections.ID
	Candidate  CandidateRecord
	Recruiter  *RecruiterProfile
	TemplateID string
	Format     OutputFormat
}
