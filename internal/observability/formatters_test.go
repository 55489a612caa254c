package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := &types.RequirementRecord{
		JobTitle:        "Senior Engineer",
		Company:         "Acme Corp",
		KeySkills:       []string{"go", "kubernetes"},
		Keywords:        []string{"distributed", "systems"},
		ExperienceLevel: types.LevelSenior,
		ContactName:     "Jane Roe",
		ContactEmails:   []string{"jobs@acme.example"},
	}

	p.PrintRequirements(record)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED REQUIREMENTS")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "go")
	assert.Contains(t, output, "Jane Roe")
	assert.Contains(t, output, "jobs@acme.example")
}

func TestPrintRequirements_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(nil)

	assert.Empty(t, buf.String())
}

func TestPrintTailoredDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.TailoredDocument{
		Name:    "Jane Doe",
		Summary: "Engineer with a platform focus.",
		Skills:  []string{"Go", "Python", "Docker"},
		Experience: []types.TailoredExperience{
			{
				Title:    "Senior Engineer",
				Company:  "Acme",
				Duration: "Jan 2021 – Present",
			},
		},
	}

	p.PrintTailoredDocument(doc)
	output := buf.String()

	assert.Contains(t, output, "TAILORED DOCUMENT")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "Senior Engineer, Acme")
	assert.Contains(t, output, "Jan 2021")
}

func TestPrintCoverLetter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	letter := &types.CoverLetter{
		Recipient: "Dear Jane Roe,",
		Opening:   "I am writing to apply for the Engineer position at Acme.",
		Body:      []string{"para one", "para two"},
		Closing:   "I look forward to hearing from you.",
	}

	p.PrintCoverLetter(letter)
	output := buf.String()

	assert.Contains(t, output, "COVER LETTER")
	assert.Contains(t, output, "Dear Jane Roe,")
	assert.Contains(t, output, "Body paragraphs: 2")
}

func TestPrintOutputs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOutputs([]string{"out/cv.txt", "out/cv.pdf"})
	output := buf.String()

	assert.Contains(t, output, "OUTPUT FILES")
	assert.Contains(t, output, "out/cv.txt")
	assert.Contains(t, output, "out/cv.pdf")
}

func TestPrintOutputs_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOutputs(nil)

	assert.Contains(t, buf.String(), "NO FILES WRITTEN")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.TailoredDocument{
		Name:    "A Very Long Name That Should Be Truncated To Fit The Box",
		Summary: strings.Repeat("long summary ", 20),
	}

	p.PrintTailoredDocument(doc)
	output := buf.String()

	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "abc", TruncateForLog("abc", 10))
	assert.Equal(t, "abcde...", TruncateForLog("abcdefghij", 5))
	assert.Equal(t, "", TruncateForLog("anything", 0))
	assert.Equal(t, "trimmed", TruncateForLog("  trimmed  ", 10))
}
