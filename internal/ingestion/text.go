// Package ingestion loads and normalizes the input documents (applicant
// profile and job posting) before they enter the pipeline.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpacePattern = regexp.MustCompile(`\s+`)
	blankRunPattern   = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes free-form text while preserving its structure.
// Line endings become LF, trailing whitespace is dropped, runs of spaces
// inside a line collapse to one, and blank-line runs are capped at two.
// Markdown headings and bullet lists keep their markers.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Headings lose their leading indentation, bullets keep it.
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	leadingSpace := len(line) - len(trimmed)
	content := innerSpacePattern.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// cleanList trims every item and drops the ones that end up empty.
func cleanList(items []string) []string {
	if len(items) == 0 {
		return items
	}
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(innerSpacePattern.ReplaceAllString(item, " "))
		if item != "" {
			cleaned = append(cleaned, item)
		}
	}
	return cleaned
}
