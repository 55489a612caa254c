package extraction

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePosting() *types.JobPosting {
	return &types.JobPosting{
		Title:       "Platform Engineer",
		Company:     "Acme",
		Description: "We build infrastructure with Kubernetes and Python daily.",
	}
}

func TestExtract_Deterministic(t *testing.T) {
	posting := basePosting()
	posting.Description += " Contact Jane Smith at jobs@acme.com for details."

	first, err := Extract(posting)
	require.NoError(t, err)
	second, err := Extract(posting)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestExtract_DoesNotMutateInput(t *testing.T) {
	posting := basePosting()
	posting.Requirements = []string{"Python"}
	snapshot := *posting

	_, err := Extract(posting)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Title, posting.Title)
	assert.Equal(t, snapshot.Description, posting.Description)
	assert.Equal(t, []string{"Python"}, posting.Requirements)
}

func TestExtract_SkillOrderFollowsVocabulary(t *testing.T) {
	posting := basePosting()
	// Kubernetes appears before Python in the text; the vocabulary lists
	// python first, so the output must too.
	posting.Description = "Kubernetes expertise wanted. Python knowledge welcome."

	record, err := Extract(posting)
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "kubernetes"}, record.KeySkills)
}

func TestExtract_SkillsFromExplicitLists(t *testing.T) {
	posting := basePosting()
	posting.Description = "Join a friendly infrastructure group."
	posting.Requirements = []string{"Terraform"}
	posting.Preferred = []string{"Grafana"}

	record, err := Extract(posting)
	require.NoError(t, err)
	assert.Contains(t, record.KeySkills, "terraform")
	assert.Contains(t, record.KeySkills, "grafana")
	assert.Equal(t, []string{"Terraform"}, record.Required)
	assert.Equal(t, []string{"Grafana"}, record.Preferred)
}

func TestExtract_ExperienceLevel(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"senior keyword", "Senior engineer wanted.", types.LevelSenior},
		{"lead keyword", "Tech lead position open.", types.LevelSenior},
		{"junior keyword", "Junior engineer position.", types.LevelJunior},
		{"entry keyword", "Entry level position.", types.LevelJunior},
		{"no keyword", "Engineer position open.", types.LevelMid},
		{"senior wins tie", "Senior or junior engineers welcome.", types.LevelSenior},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posting := basePosting()
			posting.Description = tt.description

			record, err := Extract(posting)
			require.NoError(t, err)
			assert.Equal(t, tt.want, record.ExperienceLevel)
		})
	}
}

func TestExtract_Keywords(t *testing.T) {
	posting := basePosting()
	posting.Title = "Engineer"
	posting.Description = "Distributed systems and distributed observability for the team."

	record, err := Extract(posting)
	require.NoError(t, err)

	// Short tokens and stop words are dropped, duplicates collapse to
	// first occurrence.
	assert.Equal(t, []string{"engineer", "distributed", "systems", "observability"}, record.Keywords)
}

func TestExtract_KeywordsCappedAtTwenty(t *testing.T) {
	posting := basePosting()
	posting.Description = "alpha bravo charlie delta echoes foxtrot golfing hotels indigo juliet " +
		"kilos limas mikes november oscar papas quebec romeo sierra tango uniform victor whiskey"

	record, err := Extract(posting)
	require.NoError(t, err)
	assert.Len(t, record.Keywords, 20)
}

func TestExtract_ContactEmails(t *testing.T) {
	posting := basePosting()
	posting.Description = "Apply at jobs@acme.com or write to hr@acme.example.org."

	record, err := Extract(posting)
	require.NoError(t, err)
	assert.Equal(t, []string{"jobs@acme.com", "hr@acme.example.org"}, record.ContactEmails)
}

func TestExtract_NoContactEmails(t *testing.T) {
	record, err := Extract(basePosting())
	require.NoError(t, err)
	assert.Empty(t, record.ContactEmails)
}

func TestExtract_PassthroughFields(t *testing.T) {
	posting := basePosting()
	posting.Location = "Berlin"
	posting.Salary = "90k EUR"

	record, err := Extract(posting)
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", record.JobTitle)
	assert.Equal(t, "Acme", record.Company)
	assert.Equal(t, "Berlin", record.Location)
	assert.Equal(t, "90k EUR", record.Salary)
}

func TestExtract_MissingMandatoryFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *types.JobPosting)
		field  string
	}{
		{"missing title", func(p *types.JobPosting) { p.Title = "" }, "title"},
		{"missing company", func(p *types.JobPosting) { p.Company = "  " }, "company"},
		{"missing description", func(p *types.JobPosting) { p.Description = "" }, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posting := basePosting()
			tt.mutate(posting)

			_, err := Extract(posting)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestExtract_OversizedTitle(t *testing.T) {
	posting := basePosting()
	for len(posting.Title) <= maxTitleLength {
		posting.Title += " Engineer"
	}

	_, err := Extract(posting)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
}

func TestExtract_MalformedContentDegrades(t *testing.T) {
	posting := basePosting()
	posting.Description = "\x01\x02 ???!!! ---"

	record, err := Extract(posting)
	require.NoError(t, err)
	assert.Empty(t, record.KeySkills)
	assert.Empty(t, record.ContactEmails)
	assert.Equal(t, "", record.ContactName)
}
