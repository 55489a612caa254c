package types

// TailoredDocument is the job-specific document model produced by tailoring.
// It is transient: built once per request, handed to a renderer, then
// discarded. It is never persisted independently of its rendered form.
type TailoredDocument struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Location string   `json:"location,omitempty"`
	Links    []string `json:"links,omitempty"`

	Summary string `json:"summary"`

	// Skills holds the applicant's technical skills with requirement
	// matches stable-partitioned to the front.
	Skills []string `json:"skills"`

	Experience []TailoredExperience `json:"experience"`
	Education  []EducationEntry     `json:"education,omitempty"`
	Projects   []ProjectEntry       `json:"projects,omitempty"`
}

// TailoredExperience is a display-ready experience section. Description and
// Achievements may carry emphasis markers around requirement terms; the
// markers are cosmetic markup for the renderer and are never used for
// matching.
type TailoredExperience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}
