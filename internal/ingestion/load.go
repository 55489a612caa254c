package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/cv-tailor/internal/schemas"
	"github.com/jonathan/cv-tailor/internal/types"
)

// LoadError represents a failure to read or decode an input document. The
// message never includes document content, only the path and the stage
// that failed.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// LoadPosting reads a job posting JSON file, validates it against the
// posting schema, normalizes its free-form text, and checks the decoded
// struct constraints.
func LoadPosting(path string) (*types.JobPosting, error) {
	raw, err := readInput(path)
	if err != nil {
		return nil, err
	}

	if err := validateAgainstSchema(schemas.PostingSchema, path, raw); err != nil {
		return nil, err
	}

	var posting types.JobPosting
	if err := json.Unmarshal(raw, &posting); err != nil {
		return nil, &LoadError{Path: path, Message: "could not decode posting", Cause: err}
	}

	posting.Title = strings.TrimSpace(posting.Title)
	posting.Company = strings.TrimSpace(posting.Company)
	posting.Description = CleanText(posting.Description)
	posting.Requirements = cleanList(posting.Requirements)
	posting.Preferred = cleanList(posting.Preferred)
	posting.Location = strings.TrimSpace(posting.Location)
	posting.Salary = strings.TrimSpace(posting.Salary)

	if err := types.ValidatePosting(&posting); err != nil {
		return nil, err
	}
	return &posting, nil
}

// LoadProfile reads an applicant profile JSON file, validates it against
// the profile schema, normalizes its free-form text, and checks the
// decoded struct constraints.
func LoadProfile(path string) (*types.ApplicantProfile, error) {
	raw, err := readInput(path)
	if err != nil {
		return nil, err
	}

	if err := validateAgainstSchema(schemas.ProfileSchema, path, raw); err != nil {
		return nil, err
	}

	var profile types.ApplicantProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, &LoadError{Path: path, Message: "could not decode profile", Cause: err}
	}

	profile.Name = strings.TrimSpace(profile.Name)
	profile.Summary = CleanText(profile.Summary)
	for i := range profile.Experience {
		profile.Experience[i].Description = CleanText(profile.Experience[i].Description)
		profile.Experience[i].Achievements = cleanList(profile.Experience[i].Achievements)
	}
	profile.TechnicalSkills = cleanList(profile.TechnicalSkills)
	profile.SoftSkills = cleanList(profile.SoftSkills)

	if err := types.ValidateProfile(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func readInput(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Path: path, Message: "file not found"}
		}
		return nil, &LoadError{Path: path, Message: "could not read file", Cause: err}
	}
	return raw, nil
}

func validateAgainstSchema(schemaRelPath, documentPath string, raw []byte) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return &LoadError{Path: documentPath, Message: fmt.Sprintf("schema %s not found", schemaRelPath)}
	}
	return schemas.ValidateBytes(schemaPath, raw)
}
