package tailoring

import (
	"testing"

	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *types.ApplicantProfile {
	return &types.ApplicantProfile{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "555-0100",
		Summary: "An experienced engineer who enjoys infrastructure work.",
		Experience: []types.ExperienceEntry{
			{
				Title:        "Engineer",
				Company:      "Acme",
				StartDate:    "2020-01",
				EndDate:      "",
				Description:  "Building Python services.",
				Achievements: []string{"Automated deployments with Docker"},
			},
		},
		TechnicalSkills: []string{"Rust", "Docker", "Python", "Excel"},
		Projects: []types.ProjectEntry{
			{Name: "orchestrator", Technologies: []string{"Python", "Kubernetes"}},
			{Name: "homepage", Technologies: []string{"HTML"}},
		},
	}
}

func midRecord() *types.RequirementRecord {
	return &types.RequirementRecord{
		JobTitle:        "Backend Engineer",
		Company:         "Globex",
		Required:        []string{"Python", "Docker"},
		KeySkills:       []string{"python", "docker"},
		Keywords:        []string{"services"},
		ExperienceLevel: types.LevelMid,
	}
}

func TestTailor_IdentityCopied(t *testing.T) {
	doc := Tailor(sampleProfile(), midRecord())
	assert.Equal(t, "Jane Doe", doc.Name)
	assert.Equal(t, "jane@example.com", doc.Email)
	assert.Equal(t, "555-0100", doc.Phone)
}

func TestTailor_DoesNotMutateProfile(t *testing.T) {
	profile := sampleProfile()
	summary := profile.Summary
	skills := append([]string(nil), profile.TechnicalSkills...)

	_ = Tailor(profile, midRecord())

	assert.Equal(t, summary, profile.Summary)
	assert.Equal(t, skills, profile.TechnicalSkills)
	assert.Equal(t, "Building Python services.", profile.Experience[0].Description)
}

func TestTailor_SkillPartitionStable(t *testing.T) {
	doc := Tailor(sampleProfile(), midRecord())
	// Docker and Python match the requirements and move to the front in
	// their original relative order; the rest keep theirs too.
	assert.Equal(t, []string{"Docker", "Python", "Rust", "Excel"}, doc.Skills)
}

func TestTailor_ProjectsFilteredAndCapped(t *testing.T) {
	profile := sampleProfile()
	profile.Projects = []types.ProjectEntry{
		{Name: "a", Technologies: []string{"Python"}},
		{Name: "b", Technologies: []string{"COBOL"}},
		{Name: "c", Technologies: []string{"docker"}},
		{Name: "d", Technologies: []string{"Python"}},
		{Name: "e", Technologies: []string{"python"}},
	}

	doc := Tailor(profile, midRecord())
	require.Len(t, doc.Projects, 3)
	assert.Equal(t, "a", doc.Projects[0].Name)
	assert.Equal(t, "c", doc.Projects[1].Name)
	assert.Equal(t, "d", doc.Projects[2].Name)
}

func TestTailor_ProjectsFallBackToKeySkills(t *testing.T) {
	profile := sampleProfile()
	record := midRecord()
	record.Required = nil

	doc := Tailor(profile, record)
	require.Len(t, doc.Projects, 1)
	assert.Equal(t, "orchestrator", doc.Projects[0].Name)
}

func TestTailor_HighlightsRequirementTerms(t *testing.T) {
	doc := Tailor(sampleProfile(), midRecord())
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Building **Python** **services**.", doc.Experience[0].Description)
	assert.Equal(t, []string{"Automated deployments with **Docker**"}, doc.Experience[0].Achievements)
}

func TestTailorSummary_AppendsMissingRequiredSkills(t *testing.T) {
	record := midRecord()
	record.Required = []string{"Python", "Kafka"}

	got := tailorSummary("Enjoys Python work.", record)
	assert.Equal(t, "Enjoys Python work. Experienced with Kafka.", got)
}

func TestTailorSummary_EmptySummary(t *testing.T) {
	record := midRecord()
	record.Required = []string{"Go"}

	assert.Equal(t, "Experienced with Go.", tailorSummary("", record))
}

func TestTailorSummary_SeniorRewrite(t *testing.T) {
	record := midRecord()
	record.Required = nil
	record.ExperienceLevel = types.LevelSenior

	got := tailorSummary("An experienced engineer.", record)
	assert.Equal(t, "An senior experienced engineer.", got)
}

func TestTailorSummary_SeniorAlreadyMentioned(t *testing.T) {
	record := midRecord()
	record.Required = nil
	record.ExperienceLevel = types.LevelSenior

	got := tailorSummary("A senior, experienced engineer.", record)
	assert.Equal(t, "A senior, experienced engineer.", got)
}

func TestTailorSummary_SeniorReplaceFirstOccurrenceOnly(t *testing.T) {
	record := midRecord()
	record.Required = nil
	record.ExperienceLevel = types.LevelSenior

	got := tailorSummary("experienced and experienced again", record)
	assert.Equal(t, "senior experienced and experienced again", got)
}

func TestPrioritizeSkills_SubstringBothDirections(t *testing.T) {
	record := &types.RequirementRecord{Required: []string{"go"}}
	// "Django" contains "go": the substring rule is deliberately loose.
	got := prioritizeSkills([]string{"Rust", "Django"}, record)
	assert.Equal(t, []string{"Django", "Rust"}, got)
}

func TestTailor_Deterministic(t *testing.T) {
	first := Tailor(sampleProfile(), midRecord())
	second := Tailor(sampleProfile(), midRecord())
	assert.Equal(t, first, second)
}
