// Package types provides type definitions for structured data used throughout the cv-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ApplicantProfile is the caller-supplied applicant record. It is treated as
// immutable for the duration of a request; tailoring always produces a new
// TailoredDocument rather than mutating the profile.
type ApplicantProfile struct {
	Name     string   `json:"name" validate:"required,max=200"`
	Email    string   `json:"email" validate:"required,email,max=254"`
	Phone    string   `json:"phone,omitempty" validate:"max=50"`
	Location string   `json:"location,omitempty" validate:"max=200"`
	Links    []string `json:"links,omitempty" validate:"max=10,dive,max=500"`

	Summary string `json:"summary,omitempty" validate:"max=2000"`

	Experience []ExperienceEntry `json:"experience" validate:"max=50,dive"`
	Education  []EducationEntry  `json:"education,omitempty" validate:"max=20,dive"`

	TechnicalSkills []string `json:"technical_skills,omitempty" validate:"max=100,dive,max=100"`
	SoftSkills      []string `json:"soft_skills,omitempty" validate:"max=50,dive,max=100"`
	Languages       []string `json:"languages,omitempty" validate:"max=20,dive,max=100"`
	Certifications  []string `json:"certifications,omitempty" validate:"max=50,dive,max=200"`

	Projects []ProjectEntry `json:"projects,omitempty" validate:"max=30,dive"`
}

// ExperienceEntry is a single work experience record. Entry order is
// caller-defined and must not be assumed chronological; tailoring re-derives
// ordering from the parsed dates where it matters.
type ExperienceEntry struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Company      string   `json:"company" validate:"required,max=200"`
	Location     string   `json:"location,omitempty" validate:"max=200"`
	StartDate    string   `json:"start_date" validate:"required,max=50"`
	EndDate      string   `json:"end_date,omitempty" validate:"max=50"`
	Description  string   `json:"description,omitempty" validate:"max=5000"`
	Achievements []string `json:"achievements,omitempty" validate:"max=30,dive,max=1000"`
}

// EducationEntry is a single education record, passed through to the
// tailored document unchanged.
type EducationEntry struct {
	Degree      string `json:"degree" validate:"required,max=200"`
	Institution string `json:"institution" validate:"required,max=200"`
	Location    string `json:"location,omitempty" validate:"max=200"`
	StartDate   string `json:"start_date,omitempty" validate:"max=50"`
	EndDate     string `json:"end_date,omitempty" validate:"max=50"`
	Details     string `json:"details,omitempty" validate:"max=2000"`
}

// ProjectEntry is a single project record with its technology set.
type ProjectEntry struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Description  string   `json:"description,omitempty" validate:"max=2000"`
	Technologies []string `json:"technologies,omitempty" validate:"max=30,dive,max=100"`
	URL          string   `json:"url,omitempty" validate:"max=500"`
}
