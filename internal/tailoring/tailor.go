// Package tailoring reshapes a validated applicant profile into a
// job-specific document model. Tailoring is a pure function: it never
// mutates the profile or the requirement record, and identical inputs
// always yield identical output.
package tailoring

import (
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

// maxProjects caps how many matching projects the tailored document keeps.
const maxProjects = 3

// Tailor combines a validated profile with a requirement record into a
// TailoredDocument. Structural validity of the profile is a precondition
// enforced at the boundary, not re-checked here.
func Tailor(profile *types.ApplicantProfile, record *types.RequirementRecord) *types.TailoredDocument {
	hl := newHighlighter(highlightTerms(record))

	return &types.TailoredDocument{
		Name:       profile.Name,
		Email:      profile.Email,
		Phone:      profile.Phone,
		Location:   profile.Location,
		Links:      append([]string(nil), profile.Links...),
		Summary:    tailorSummary(profile.Summary, record),
		Skills:     prioritizeSkills(profile.TechnicalSkills, record),
		Experience: consolidateExperience(profile.Experience, hl),
		Education:  append([]types.EducationEntry(nil), profile.Education...),
		Projects:   filterProjects(profile.Projects, record),
	}
}

// tailorSummary appends a one-sentence mention for every required skill the
// summary does not already contain, then applies the senior-tier wording
// tweak. The "experienced" -> "senior experienced" replace is a blunt
// literal substitution on the first occurrence only.
func tailorSummary(summary string, record *types.RequirementRecord) string {
	result := summary
	for _, skill := range record.Required {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if strings.Contains(strings.ToLower(result), strings.ToLower(skill)) {
			continue
		}
		if result != "" && !strings.HasSuffix(result, " ") {
			result += " "
		}
		result += "Experienced with " + skill + "."
	}

	if record.ExperienceLevel == types.LevelSenior && !strings.Contains(strings.ToLower(result), "senior") {
		result = strings.Replace(result, "experienced", "senior experienced", 1)
	}
	return result
}

// prioritizeSkills stable-partitions the technical skills: requirement
// matches first, then the rest, original relative order preserved within
// each partition.
func prioritizeSkills(skills []string, record *types.RequirementRecord) []string {
	if len(skills) == 0 {
		return nil
	}

	targets := make([]string, 0, len(record.Required)+len(record.Preferred))
	targets = append(targets, record.Required...)
	targets = append(targets, record.Preferred...)

	matched := make([]string, 0, len(skills))
	rest := make([]string, 0, len(skills))
	for _, skill := range skills {
		if matchesAnyTarget(skill, targets) {
			matched = append(matched, skill)
		} else {
			rest = append(rest, skill)
		}
	}
	return append(matched, rest...)
}

// matchesAnyTarget reports a case-insensitive substring match in either
// direction between a skill and any target.
func matchesAnyTarget(skill string, targets []string) bool {
	lowerSkill := strings.ToLower(strings.TrimSpace(skill))
	if lowerSkill == "" {
		return false
	}
	for _, target := range targets {
		lowerTarget := strings.ToLower(strings.TrimSpace(target))
		if lowerTarget == "" {
			continue
		}
		if strings.Contains(lowerSkill, lowerTarget) || strings.Contains(lowerTarget, lowerSkill) {
			return true
		}
	}
	return false
}

// filterProjects keeps projects whose technology set matches a required
// skill, preserving original order, capped at maxProjects. When the caller
// supplied no explicit requirement list, the recognized key skills stand in
// so heuristically-extracted postings still drive the filter.
func filterProjects(projects []types.ProjectEntry, record *types.RequirementRecord) []types.ProjectEntry {
	if len(projects) == 0 {
		return nil
	}

	targets := record.Required
	if len(targets) == 0 {
		targets = record.KeySkills
	}
	if len(targets) == 0 {
		return nil
	}

	kept := make([]types.ProjectEntry, 0, maxProjects)
	for _, project := range projects {
		if projectMatches(project, targets) {
			kept = append(kept, project)
			if len(kept) == maxProjects {
				break
			}
		}
	}
	return kept
}

func projectMatches(project types.ProjectEntry, targets []string) bool {
	for _, tech := range project.Technologies {
		if matchesAnyTarget(tech, targets) {
			return true
		}
	}
	return false
}

// highlightTerms gathers every requirement-derived term used for cosmetic
// emphasis in descriptions and achievements.
func highlightTerms(record *types.RequirementRecord) []string {
	terms := make([]string, 0, len(record.KeySkills)+len(record.Required)+len(record.Preferred)+len(record.Keywords))
	terms = append(terms, record.Required...)
	terms = append(terms, record.Preferred...)
	terms = append(terms, record.KeySkills...)
	terms = append(terms, record.Keywords...)
	return terms
}
