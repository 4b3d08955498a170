// Package sections defines the CV section catalog and the composition rules
// that resolve a request's partial order and visibility into the final list of
// sections to render.
package sections

// ID identifies a CV section. The catalog below is the authoritative
// enumeration; it is fixed at compile time and never extended at request time.
type ID string

const (
	PersonalInfo     ID = "personal_info"
	ProfileStatement ID = "profile_statement"
	Skills           ID = "skills"
	Experience       ID = "experience"
	Education        ID = "education"
	Certifications   ID = "certifications"
	Achievements     ID = "achievements"
	Languages        ID = "languages"
	Memberships      ID = "professional_memberships"
	EarlierCareer    ID = "earlier_career"
	Publications     ID = "publications"
	AdditionalInfo   ID = "additional_details"
)

// defaultOrder is the catalog order used for any visible section the request
// does not place explicitly.
var defaultOrder = []ID{
	PersonalInfo,
	ProfileStatement,
	Skills,
	Experience,
	Education,
	Certifications,
	Achievements,
	Languages,
	Memberships,
	EarlierCareer,
	Publications,
	AdditionalInfo,
}

// DefaultOrder returns a copy of the catalog's default section order.
func DefaultOrder() []ID {
	out := make([]ID, len(defaultOrder))
	copy(out, defaultOrder)
	return out
}

// Valid reports whether s names a recognized section.
func Valid(s string) bool {
	for _, id := range defaultOrder {
		if string(id) == s {
			return true
		}
	}
	return false
}
