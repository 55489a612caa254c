// Package extraction derives a normalized RequirementRecord from free-text
// job postings. Extraction is lexical and pure: identical input always
// yields an identical record, and the input is never mutated.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

const (
	maxTitleLength       = 300
	maxCompanyLength     = 300
	maxDescriptionLength = 50000

	// maxKeywords caps the salient-keyword set.
	maxKeywords = 20

	// minKeywordLength drops short tokens before stop-word filtering.
	minKeywordLength = 4
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	wordPattern  = regexp.MustCompile(`[a-zA-Z0-9]+`)
)

// Extract turns a job posting into a RequirementRecord. It fails only on
// missing mandatory fields or length-cap violations; malformed content
// degrades to empty sets.
func Extract(posting *types.JobPosting) (*types.RequirementRecord, error) {
	if err := checkStructure(posting); err != nil {
		return nil, err
	}

	fullText := buildFullText(posting)
	lowerText := strings.ToLower(fullText)

	return &types.RequirementRecord{
		JobTitle:        posting.Title,
		Company:         posting.Company,
		KeySkills:       detectSkills(lowerText),
		Required:        append([]string(nil), posting.Requirements...),
		Preferred:       append([]string(nil), posting.Preferred...),
		Keywords:        extractKeywords(lowerText),
		ExperienceLevel: detectExperienceLevel(lowerText),
		Location:        posting.Location,
		Salary:          posting.Salary,
		ContactEmails:   emailPattern.FindAllString(fullText, -1),
		ContactName:     extractContactName(posting.Description),
	}, nil
}

// checkStructure enforces the mandatory fields and length caps of the
// posting contract.
func checkStructure(posting *types.JobPosting) error {
	if strings.TrimSpace(posting.Title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if strings.TrimSpace(posting.Company) == "" {
		return &ValidationError{Field: "company", Message: "is required"}
	}
	if strings.TrimSpace(posting.Description) == "" {
		return &ValidationError{Field: "description", Message: "is required"}
	}
	if len(posting.Title) > maxTitleLength {
		return &ValidationError{Field: "title", Message: "exceeds maximum length"}
	}
	if len(posting.Company) > maxCompanyLength {
		return &ValidationError{Field: "company", Message: "exceeds maximum length"}
	}
	if len(posting.Description) > maxDescriptionLength {
		return &ValidationError{Field: "description", Message: "exceeds maximum length"}
	}
	return nil
}

// buildFullText joins every text surface of the posting for matching.
func buildFullText(posting *types.JobPosting) string {
	parts := []string{posting.Title, posting.Description}
	parts = append(parts, posting.Requirements...)
	parts = append(parts, posting.Preferred...)
	return strings.Join(parts, "\n")
}

// detectSkills matches the lower-cased posting text against the fixed skill
// vocabulary. Output order follows the vocabulary, not the text.
func detectSkills(lowerText string) []string {
	found := make([]string, 0, 8)
	for _, skill := range skillVocabulary {
		if strings.Contains(lowerText, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// detectExperienceLevel maps seniority cues to a tier. Senior cues are
// checked first, so text containing both "senior" and "junior" yields
// senior.
func detectExperienceLevel(lowerText string) string {
	if strings.Contains(lowerText, "senior") || strings.Contains(lowerText, "lead") {
		return types.LevelSenior
	}
	if strings.Contains(lowerText, "junior") || strings.Contains(lowerText, "entry") {
		return types.LevelJunior
	}
	return types.LevelMid
}

// extractKeywords tokenizes the text, drops short tokens and stop words,
// deduplicates preserving first-seen order, and caps the result.
func extractKeywords(lowerText string) []string {
	tokens := wordPattern.FindAllString(lowerText, -1)
	keywords := make([]string, 0, maxKeywords)
	seen := make(map[string]struct{}, len(tokens))

	for _, token := range tokens {
		if len(token) < minKeywordLength {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
