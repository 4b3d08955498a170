// Package types provides type definitions for structured data used throughout
// the CV generator.
package types

// CandidateRecord holds the subject's structured CV data. Identity fields are
// populated by the caller (or the parser adapter) and mutated only by the
// redactor; everything else is carried through to the renderer unchanged.
type CandidateRecord struct {
	FirstName        string `json:"firstName"`
	Surname          string `json:"surname"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	LinkedIn         string `json:"linkedin,omitempty"`
	Website          string `json:"website,omitempty"`
	ProfileStatement string `json:"profileStatement,omitempty"`

	Skills            []string       `json:"skills,omitempty"`
	Experience        []Experience   `json:"experience,omitempty"`
	Education         []Education    `json:"education,omitempty"`
	Certifications    []Certification `json:"certifications,omitempty"`
	Achievements      []Achievement  `json:"achievements,omitempty"`
	Languages         []Language     `json:"languages,omitempty"`
	Memberships       []Membership   `json:"professionalMemberships,omitempty"`
	EarlierCareer     []EarlierRole  `json:"earlierCareer,omitempty"`
	Publications      []Publication  `json:"publications,omitempty"`
	AdditionalDetails []string       `json:"additionalDetails,omitempty"`
}

// Experience is a single work history entry. Dates are free-form strings at
// year or year-month granularity; the renderer treats them as opaque text.
type Experience struct {
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Grade       string `json:"grade,omitempty"`
	Description string `json:"description,omitempty"`
}

// Certification is a professional certification entry.
type Certification struct {
	Name        string `json:"name"`
	Issuer      string `json:"issuer,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Achievement is a standalone professional achievement.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

// Language is a language proficiency entry.
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Membership is a professional organization membership.
type Membership struct {
	Organization string `json:"organization"`
	Role         string `json:"role,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
}

// EarlierRole is a summarized earlier-career position.
type EarlierRole struct {
	Role        string `json:"role"`
	Company     string `json:"company,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// Publication is a published work entry.
type Publication struct {
	Title       string `json:"title"`
	Publisher   string `json:"publisher,omitempty"`
	Date        string `json:"date,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}
