// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PersonalInfo holds the contact block of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
	Title    string `json:"title"`
}

// WorkExperience represents one position held at a company.
type WorkExperience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

// Education represents one degree or program.
type Education struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	GPA         string   `json:"gpa,omitempty"`
	Highlights  []string `json:"highlights"`
}

// Project represents one portfolio project.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	Bullets      []string `json:"bullets"`
}

// Certification represents one professional certification.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link,omitempty"`
}

// SkillCategory groups named skills under a category heading.
type SkillCategory struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// ResumeDocument is the root aggregate for one resume. It is persisted as a
// self-contained record keyed by ID and owned exclusively by the session while
// loaded.
type ResumeDocument struct {
	ID             string           `json:"id" validate:"required"`
	Name           string           `json:"name" validate:"required"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Skills         []SkillCategory  `json:"skills"`
	SectionOrder   []string         `json:"sectionOrder"`
}

// DefaultSectionOrder is the presentation order a new document starts with.
var DefaultSectionOrder = []string{
	"summary", "workExperience", "education", "skills", "projects", "certifications",
}

// NewDocument synthesizes an empty resume document with a fresh id and the
// default section order.
func NewDocument() *ResumeDocument {
	now := time.Now()
	return &ResumeDocument{
		ID:             uuid.NewString(),
		Name:           "My Resume",
		CreatedAt:      now,
		UpdatedAt:      now,
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Skills:         []SkillCategory{},
		SectionOrder:   append([]string(nil), DefaultSectionOrder...),
	}
}

// NewWorkExperience returns an empty work experience entry with a fresh id.
func NewWorkExperience() WorkExperience {
	return WorkExperience{ID: uuid.NewString(), Bullets: []string{}}
}

// NewEducation returns an empty education entry with a fresh id.
func NewEducation() Education {
	return Education{ID: uuid.NewString(), Highlights: []string{}}
}

// NewProject returns an empty project entry with a fresh id.
func NewProject() Project {
	return Project{ID: uuid.NewString(), Technologies: []string{}, Bullets: []string{}}
}

// NewCertification returns an empty certification entry with a fresh id.
func NewCertification() Certification {
	return Certification{ID: uuid.NewString()}
}

// NewSkillCategory returns an empty skill category with a fresh id.
func NewSkillCategory() SkillCategory {
	return SkillCategory{ID: uuid.NewString(), Skills: []string{}}
}

// Touch refreshes UpdatedAt. The timestamp never moves backwards, so documents
// loaded from a machine with a skewed clock still list in a stable order.
func (d *ResumeDocument) Touch() {
	if now := time.Now(); now.After(d.UpdatedAt) {
		d.UpdatedAt = now
	}
}

// Clone returns a deep copy of the document. Undo snapshots and store reads
// rely on clones so callers can never alias the session's live state.
func (d *ResumeDocument) Clone() *ResumeDocument {
	if d == nil {
		return nil
	}
	out := *d

	out.WorkExperience = make([]WorkExperience, len(d.WorkExperience))
	for i, w := range d.WorkExperience {
		w.Bullets = append([]string(nil), w.Bullets...)
		out.WorkExperience[i] = w
	}
	out.Education = make([]Education, len(d.Education))
	for i, e := range d.Education {
		e.Highlights = append([]string(nil), e.Highlights...)
		out.Education[i] = e
	}
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		p.Bullets = append([]string(nil), p.Bullets...)
		out.Projects[i] = p
	}
	out.Certifications = append([]Certification(nil), d.Certifications...)
	out.Skills = make([]SkillCategory, len(d.Skills))
	for i, s := range d.Skills {
		s.Skills = append([]string(nil), s.Skills...)
		out.Skills[i] = s
	}
	out.SectionOrder = append([]string(nil), d.SectionOrder...)

	return &out
}

// EstimatedYears approximates years of experience as two years per position
// held. It is a coarse heuristic used to pick a summary descriptor, nothing
// more.
func (d *ResumeDocument) EstimatedYears() int {
	return 2 * len(d.WorkExperience)
}

// Validate checks the document's structural constraints and field formats.
func (d *ResumeDocument) Validate() error {
	return validator.New().Struct(d)
}
