package rendering

import (
	"strings"
	"testing"

	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleModel() *types.TailoredDocument {
	return &types.TailoredDocument{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0100",
		Location: "Berlin",
		Summary:  "Senior engineer focused on infrastructure.",
		Skills:   []string{"Go", "Docker", "Python"},
		Experience: []types.TailoredExperience{
			{
				Title:        "Senior Engineer (Previously: Engineer)",
				Company:      "Acme",
				Duration:     "Jan 2019 – Present",
				Description:  "Runs the **Docker** platform.",
				Achievements: []string{"Cut deploy time in half"},
			},
		},
		Education: []types.EducationEntry{
			{Degree: "BSc Computer Science", Institution: "TU Berlin", EndDate: "2018"},
		},
		Projects: []types.ProjectEntry{
			{Name: "orchestrator", Description: "Cluster tooling", Technologies: []string{"Go"}},
		},
	}
}

func TestBuildMarkup_Sections(t *testing.T) {
	markup := BuildMarkup(sampleModel())

	assert.Contains(t, markup, "# Jane Doe\n")
	assert.Contains(t, markup, "jane@example.com | 555-0100 | Berlin")
	assert.Contains(t, markup, "## Summary")
	assert.Contains(t, markup, "## Skills")
	assert.Contains(t, markup, "Go, Docker, Python")
	assert.Contains(t, markup, "### Senior Engineer (Previously: Engineer) at Acme")
	assert.Contains(t, markup, "_Jan 2019 – Present_")
	assert.Contains(t, markup, "- Cut deploy time in half")
	assert.Contains(t, markup, "### BSc Computer Science, TU Berlin")
	assert.Contains(t, markup, "### orchestrator")
	assert.Contains(t, markup, "Technologies: Go")
}

func TestBuildMarkup_EmphasisPassesThrough(t *testing.T) {
	markup := BuildMarkup(sampleModel())
	assert.Contains(t, markup, "Runs the **Docker** platform.")
}

func TestBuildMarkup_OmitsEmptySections(t *testing.T) {
	model := &types.TailoredDocument{Name: "Jane Doe", Email: "jane@example.com"}
	markup := BuildMarkup(model)

	assert.NotContains(t, markup, "## Skills")
	assert.NotContains(t, markup, "## Experience")
	assert.NotContains(t, markup, "## Education")
	assert.NotContains(t, markup, "## Projects")
}

func TestBuildMarkup_Deterministic(t *testing.T) {
	assert.Equal(t, BuildMarkup(sampleModel()), BuildMarkup(sampleModel()))
}

func TestMarkupToText_StripsMarkers(t *testing.T) {
	text := markupToText(BuildMarkup(sampleModel()))

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "SKILLS")
	assert.Contains(t, text, "Runs the Docker platform.")
	assert.Contains(t, text, "Jan 2019 – Present")
	assert.NotContains(t, text, "**")
	assert.NotContains(t, text, "# ")
}

func TestMarkupToText_KeepsBullets(t *testing.T) {
	text := markupToText(BuildMarkup(sampleModel()))
	assert.True(t, strings.Contains(text, "- Cut deploy time in half"))
}
