// Package rendering converts a tailored document model into one of the
// supported output formats. Every format derives from the same semantic
// intermediate markup, so the formats can differ in presentation but never
// in content.
package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

// BuildMarkup serializes a tailored document into the intermediate
// semantic markup (Markdown). Emphasis markers applied by tailoring pass
// through unchanged; everything else is plain text.
func BuildMarkup(model *types.TailoredDocument) string {
	var sb strings.Builder

	sb.WriteString("# " + model.Name + "\n\n")
	if contact := contactLine(model); contact != "" {
		sb.WriteString(contact + "\n\n")
	}
	for _, link := range model.Links {
		sb.WriteString("- " + link + "\n")
	}
	if len(model.Links) > 0 {
		sb.WriteString("\n")
	}

	if model.Summary != "" {
		sb.WriteString("## Summary\n\n")
		sb.WriteString(model.Summary + "\n\n")
	}

	if len(model.Skills) > 0 {
		sb.WriteString("## Skills\n\n")
		sb.WriteString(strings.Join(model.Skills, ", ") + "\n\n")
	}

	if len(model.Experience) > 0 {
		sb.WriteString("## Experience\n\n")
		for _, exp := range model.Experience {
			writeExperience(&sb, exp)
		}
	}

	if len(model.Education) > 0 {
		sb.WriteString("## Education\n\n")
		for _, edu := range model.Education {
			writeEducation(&sb, edu)
		}
	}

	if len(model.Projects) > 0 {
		sb.WriteString("## Projects\n\n")
		for _, project := range model.Projects {
			writeProject(&sb, project)
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func contactLine(model *types.TailoredDocument) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{model.Email, model.Phone, model.Location} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " | ")
}

func writeExperience(sb *strings.Builder, exp types.TailoredExperience) {
	sb.WriteString(fmt.Sprintf("### %s at %s\n\n", exp.Title, exp.Company))

	meta := exp.Duration
	if exp.Location != "" {
		meta += " | " + exp.Location
	}
	sb.WriteString("_" + meta + "_\n\n")

	if exp.Description != "" {
		sb.WriteString(exp.Description + "\n\n")
	}
	for _, achievement := range exp.Achievements {
		sb.WriteString("- " + achievement + "\n")
	}
	if len(exp.Achievements) > 0 {
		sb.WriteString("\n")
	}
}

func writeEducation(sb *strings.Builder, edu types.EducationEntry) {
	sb.WriteString(fmt.Sprintf("### %s, %s\n\n", edu.Degree, edu.Institution))

	meta := make([]string, 0, 2)
	if edu.StartDate != "" || edu.EndDate != "" {
		meta = append(meta, strings.TrimSpace(edu.StartDate+" – "+edu.EndDate))
	}
	if edu.Location != "" {
		meta = append(meta, edu.Location)
	}
	if len(meta) > 0 {
		sb.WriteString("_" + strings.Join(meta, " | ") + "_\n\n")
	}
	if edu.Details != "" {
		sb.WriteString(edu.Details + "\n\n")
	}
}

func writeProject(sb *strings.Builder, project types.ProjectEntry) {
	sb.WriteString("### " + project.Name + "\n\n")
	if project.Description != "" {
		sb.WriteString(project.Description + "\n\n")
	}
	if len(project.Technologies) > 0 {
		sb.WriteString("Technologies: " + strings.Join(project.Technologies, ", ") + "\n\n")
	}
	if project.URL != "" {
		sb.WriteString(project.URL + "\n\n")
	}
}
