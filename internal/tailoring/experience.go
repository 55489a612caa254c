package tailoring

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/cv-tailor/internal/types"
)

// yearPattern finds 4-digit years embedded in an already-formatted
// duration string.
var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// experienceGroup collects the entries sharing one company name.
type experienceGroup struct {
	company string
	entries []types.ExperienceEntry
}

// consolidateExperience groups entries by trimmed company name, merges
// multi-entry groups into a single progression entry, and orders the result
// by the maximum year embedded in each formatted duration, descending.
//
// The final ordering re-derives recency from the formatted duration text
// rather than from the parsed dates. That is a documented heuristic: open
// durations sort by their start year because "Present" carries no year.
func consolidateExperience(entries []types.ExperienceEntry, hl *highlighter) []types.TailoredExperience {
	if len(entries) == 0 {
		return nil
	}

	groups := groupByCompany(entries)

	result := make([]types.TailoredExperience, 0, len(groups))
	for _, group := range groups {
		if len(group.entries) == 1 {
			result = append(result, renderSingle(group.entries[0], hl))
		} else {
			result = append(result, renderConsolidated(group, hl))
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return maxYear(result[i].Duration) > maxYear(result[j].Duration)
	})
	return result
}

// groupByCompany groups entries by exact company name after trimming,
// preserving first-seen group order.
func groupByCompany(entries []types.ExperienceEntry) []*experienceGroup {
	groups := make([]*experienceGroup, 0, len(entries))
	index := make(map[string]*experienceGroup, len(entries))

	for _, entry := range entries {
		company := strings.TrimSpace(entry.Company)
		group, ok := index[company]
		if !ok {
			group = &experienceGroup{company: company}
			index[company] = group
			groups = append(groups, group)
		}
		group.entries = append(group.entries, entry)
	}
	return groups
}

// renderSingle converts a standalone entry with per-field highlighting.
func renderSingle(entry types.ExperienceEntry, hl *highlighter) types.TailoredExperience {
	return types.TailoredExperience{
		Title:        entry.Title,
		Company:      strings.TrimSpace(entry.Company),
		Location:     entry.Location,
		Duration:     FormatDuration(entry.StartDate, entry.EndDate),
		Description:  hl.apply(entry.Description),
		Achievements: hl.applyAll(entry.Achievements),
	}
}

// renderConsolidated merges a multi-entry group into one progression entry.
func renderConsolidated(group *experienceGroup, hl *highlighter) types.TailoredExperience {
	// Sort by parsed start date, most recent first. Unparseable starts
	// sort last.
	sorted := append([]types.ExperienceEntry(nil), group.entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return startOf(sorted[i]).After(startOf(sorted[j]))
	})

	recent := sorted[0]
	earliest := sorted[len(sorted)-1]

	return types.TailoredExperience{
		Title:        progressionTitle(sorted),
		Company:      group.company,
		Location:     recent.Location,
		Duration:     FormatDuration(earliest.StartDate, recent.EndDate),
		Description:  hl.apply(mergedDescription(sorted)),
		Achievements: hl.applyAll(mergedAchievements(sorted)),
	}
}

func startOf(entry types.ExperienceEntry) time.Time {
	t, _ := parseDate(entry.StartDate)
	return t
}

// progressionTitle renders the most recent role annotated with the earlier
// titles, oldest first.
func progressionTitle(sorted []types.ExperienceEntry) string {
	previous := make([]string, 0, len(sorted)-1)
	for i := len(sorted) - 1; i >= 1; i-- {
		previous = append(previous, sorted[i].Title)
	}
	return fmt.Sprintf("%s (Previously: %s)", sorted[0].Title, strings.Join(previous, ", "))
}

// mergedDescription concatenates non-empty descriptions, most recent role
// first, with a lead-in sentence when more than one survives.
func mergedDescription(sorted []types.ExperienceEntry) string {
	descriptions := make([]string, 0, len(sorted))
	for _, entry := range sorted {
		if d := strings.TrimSpace(entry.Description); d != "" {
			descriptions = append(descriptions, d)
		}
	}
	if len(descriptions) == 0 {
		return ""
	}
	if len(descriptions) == 1 {
		return descriptions[0]
	}
	return "Across multiple roles: " + strings.Join(descriptions, " ")
}

// mergedAchievements deduplicates achievements across the group and
// prefixes a synthesized progression summary.
func mergedAchievements(sorted []types.ExperienceEntry) []string {
	steps := make([]string, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		entry := sorted[i]
		steps = append(steps, fmt.Sprintf("%s (%s)", entry.Title, FormatDuration(entry.StartDate, entry.EndDate)))
	}
	summary := fmt.Sprintf("Progressed through %d roles: %s", len(sorted), strings.Join(steps, " → "))

	merged := []string{summary}
	seen := make(map[string]struct{})
	for i := len(sorted) - 1; i >= 0; i-- {
		for _, achievement := range sorted[i].Achievements {
			if _, dup := seen[achievement]; dup {
				continue
			}
			seen[achievement] = struct{}{}
			merged = append(merged, achievement)
		}
	}
	return merged
}

// maxYear extracts the maximum 4-digit year from a formatted duration
// string, or 0 when none is present.
func maxYear(duration string) int {
	max := 0
	for _, match := range yearPattern.FindAllString(duration, -1) {
		if year, err := strconv.Atoi(match); err == nil && year > max {
			max = year
		}
	}
	return max
}
