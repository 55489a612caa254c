package types

// JobPosting is the boundary record for a job posting. Title, Company and
// Description are mandatory; everything else is optional passthrough.
type JobPosting struct {
	Title        string   `json:"title" validate:"required,max=300"`
	Company      string   `json:"company" validate:"required,max=300"`
	Description  string   `json:"description" validate:"required,max=50000"`
	Requirements []string `json:"requirements,omitempty" validate:"max=50,dive,max=300"`
	Preferred    []string `json:"preferred,omitempty" validate:"max=50,dive,max=300"`
	Location     string   `json:"location,omitempty" validate:"max=300"`
	Salary       string   `json:"salary,omitempty" validate:"max=300"`
}

// RequirementRecord is the normalized signal derived from a JobPosting.
// It is read-only downstream: extraction is pure, so identical posting text
// always yields an identical record.
type RequirementRecord struct {
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`

	// KeySkills holds recognized vocabulary tokens in vocabulary order,
	// independent of where they appear in the posting text.
	KeySkills []string `json:"key_skills"`

	// Required and Preferred are the raw skill lists as supplied by the caller.
	Required  []string `json:"required,omitempty"`
	Preferred []string `json:"preferred,omitempty"`

	// Keywords holds up to 20 salient tokens in first-seen order.
	Keywords []string `json:"keywords"`

	// ExperienceLevel is one of "junior", "mid" or "senior".
	ExperienceLevel string `json:"experience_level"`

	Location string `json:"location,omitempty"`
	Salary   string `json:"salary,omitempty"`

	// ContactEmails lists every email found in the posting, in order of
	// first appearance. ContactName is empty when no hiring-manager name
	// passed the two-capitalized-words validation.
	ContactEmails []string `json:"contact_emails,omitempty"`
	ContactName   string   `json:"contact_name,omitempty"`
}

// Experience tiers recognized by the extractor.
const (
	LevelJunior = "junior"
	LevelMid    = "mid"
	LevelSenior = "senior"
)
