// Package redact masks personally identifying fields on a candidate record
// while leaving all professional content untouched.
package redact

import "github.com/hireable/cv-generator/internal/types"

// Placeholders holds the fixed values substituted for identity fields when a
// request asks for anonymization. The defaults match what recruiters expect an
// anonymized CV to look like; they are configuration, not derived from input.
type Placeholders struct {
	Email    string
	Phone    string
	Address  string
	LinkedIn string
}

// DefaultPlaceholders are used when the caller does not override them.
var DefaultPlaceholders = Placeholders{
	Email:    "candidate@example.com",
	Phone:    "+44 XXX XXX XXXX",
	Address:  "United Kingdom",
	LinkedIn: "linkedin.com/in/candidate",
}

// Apply returns a copy of rec with identity fields masked when anonymize is
// true, and rec unchanged otherwise. Names are reduced to initials, contact
// fields are replaced with fixed placeholders, and the personal website link
// is removed. Apply is pure: the same input and flag always yield the same
// output, and the input record is never mutated.
func Apply(rec types.CandidateRecord, anonymize bool, ph Placeholders) types.CandidateRecord {
	if !anonymize {
		return rec
	}

	out := rec
	out.FirstName = initial(rec.FirstName, "A")
	out.Surname = initial(rec.Surname, "B")
	if out.Email != "" {
		out.Email = ph.Email
	}
	if out.Phone != "" {
		out.Phone = ph.Phone
	}
	if out.Address != "" {
		out.Address = ph.Address
	}
	if out.LinkedIn != "" {
		out.LinkedIn = ph.LinkedIn
	}
	out.Website = ""
	return out
}

// initial reduces a name to its first rune followed by a period, falling back
// when the name is empty so the rendered document never shows a bare period.
func initial(name, fallback string) string {
	if name == "" {
		return fallback + "."
	}
	return string([]rune(name)[:1]) + "."
}
