// Package adapter translates the external CV-parsing service's record shape
// into this system's candidate data model. It is the single seam between the
// two schemas and owns no other behavior.
package adapter

import (
	"fmt"
	"strings"

	"github.com/hireable/cv-generator/internal/types"
)

// ParsedCV mirrors the parsing service's output shape. The fields are owned
// by the external service; changes there are absorbed here, never in the
// core data model.
type ParsedCV struct {
	ContactInfo       *ParsedContact     `json:"contact_info"`
	PersonalStatement string             `json:"personal_statement,omitempty"`
	Links             []string           `json:"links,omitempty"`
	Skills            []string           `json:"skills,omitempty"`
	Experience        []ParsedExperience `json:"experience,omitempty"`
	Education         []ParsedEducation  `json:"education,omitempty"`
	Certifications    []ParsedCert       `json:"certifications,omitempty"`
	Languages         []ParsedLanguage   `json:"languages,omitempty"`
	Achievements      []ParsedAchievement `json:"achievements,omitempty"`
}

// ParsedContact is the parser's contact block.
type ParsedContact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
}

// ParsedExperience is the parser's work history entry.
type ParsedExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	IsCurrent   bool   `json:"is_current,omitempty"`
	Description string `json:"description,omitempty"`
}

// ParsedEducation is the parser's education entry.
type ParsedEducation struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Grade       string `json:"grade,omitempty"`
}

// ParsedCert is the parser's certification entry.
type ParsedCert struct {
	Name        string `json:"name"`
	Issuer      string `json:"issuer,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// ParsedLanguage is the parser's language entry.
type ParsedLanguage struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// ParsedAchievement is the parser's achievement entry.
type ParsedAchievement struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

// MappingError indicates the parsed record lacks a field the candidate data
// model requires. Optional fields never raise it; they map to empty values.
type MappingError struct {
	Field string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("parsed CV is missing required field: %s", e.Field)
}

// ToCandidateRecord maps a parsed CV onto the candidate data model. It fails
// only when the record cannot satisfy the model's minimum identity
// constraints; everything optional degrades to absent.
func ToCandidateRecord(parsed *ParsedCV) (*types.CandidateRecord, error) {
	if parsed == nil || parsed.ContactInfo == nil {
		return nil, &MappingError{Field: "contact_info"}
	}
	if parsed.ContactInfo.FirstName == "" {
		return nil, &MappingError{Field: "contact_info.first_name"}
	}
	if parsed.ContactInfo.LastName == "" {
		return nil, &MappingError{Field: "contact_info.last_name"}
	}

	rec := &types.CandidateRecord{
		FirstName:        parsed.ContactInfo.FirstName,
		Surname:          parsed.ContactInfo.LastName,
		Email:            parsed.ContactInfo.Email,
		Phone:            parsed.ContactInfo.Phone,
		Address:          parsed.ContactInfo.Location,
		ProfileStatement: parsed.PersonalStatement,
		Skills:           parsed.Skills,
	}

	for _, link := range parsed.Links {
		lower := strings.ToLower(link)
		switch {
		case strings.Contains(lower, "linkedin"):
			rec.LinkedIn = link
		case rec.Website == "":
			rec.Website = link
		}
	}

	for _, exp := range parsed.Experience {
		rec.Experience = append(rec.Experience, types.Experience{
			Role:        exp.Title,
			Company:     exp.Company,
			StartDate:   exp.StartDate,
			EndDate:     exp.EndDate,
			Current:     exp.IsCurrent,
			Description: exp.Description,
		})
	}

	for _, edu := range parsed.Education {
		rec.Education = append(rec.Education, types.Education{
			Institution: edu.Institution,
			Degree:      edu.Degree,
			StartDate:   edu.StartDate,
			EndDate:     edu.EndDate,
			Grade:       edu.Grade,
		})
	}

	for _, cert := range parsed.Certifications {
		rec.Certifications = append(rec.Certifications, types.Certification{
			Name:        cert.Name,
			Issuer:      cert.Issuer,
			Date:        cert.Date,
			Description: cert.Description,
		})
	}

	for _, lang := range parsed.Languages {
		rec.Languages = append(rec.Languages, types.Language{
			Language:    lang.Language,
			Proficiency: lang.Proficiency,
		})
	}

	for _, ach := range parsed.Achievements {
		rec.Achievements = append(rec.Achievements, types.Achievement{
			Title:       ach.Title,
			Description: ach.Description,
			Date:        ach.Date,
		})
	}

	return rec, nil
}
