package extraction

import (
	"regexp"
	"strings"
)

// contactPattern pairs a phrase pattern with the validator applied to its
// captured candidate. Patterns are evaluated in order and the first one
// that matches wins; its candidate is then either accepted or the whole
// extraction yields no name. Keeping this an explicit ordered list is part
// of the public contract: the behavior must stay auditable and testable.
type contactPattern struct {
	pattern  *regexp.Regexp
	validate func(candidate string) bool
}

// nameCapture matches a loose two-word candidate; validation decides
// whether it is actually a person name.
const nameCapture = `([A-Za-z]+ [A-Za-z]+)`

var contactPatterns = []contactPattern{
	{regexp.MustCompile(`(?i:contact)\s+` + nameCapture), isTwoCapitalizedWords},
	{regexp.MustCompile(`(?i:hiring manager)\s*[:\-]\s*` + nameCapture), isTwoCapitalizedWords},
	{regexp.MustCompile(nameCapture + `,\s*(?i:hiring manager)`), isTwoCapitalizedWords},
	{regexp.MustCompile(`(?i:reach out to)\s+` + nameCapture), isTwoCapitalizedWords},
	{regexp.MustCompile(`(?i:report(?:ing)? to)\s+` + nameCapture), isTwoCapitalizedWords},
	{regexp.MustCompile(`(?i:recruiter)\s*[:\-]\s*` + nameCapture), isTwoCapitalizedWords},
}

// capitalizedWord requires an uppercase initial followed by lowercase
// letters, which rejects ALL-CAPS tokens.
var capitalizedWord = regexp.MustCompile(`^[A-Z][a-z]+$`)

// extractContactName applies the ordered contact patterns to the raw
// description (never the title). The first pattern that matches wins; the
// candidate is accepted only if it is exactly two capitalized words.
func extractContactName(description string) string {
	for _, cp := range contactPatterns {
		match := cp.pattern.FindStringSubmatch(description)
		if match == nil {
			continue
		}
		candidate := strings.TrimSpace(match[1])
		if cp.validate(candidate) {
			return candidate
		}
		return ""
	}
	return ""
}

// isTwoCapitalizedWords accepts exactly two words of the form Xxxx Yyyy.
func isTwoCapitalizedWords(candidate string) bool {
	words := strings.Fields(candidate)
	if len(words) != 2 {
		return false
	}
	for _, word := range words {
		if !capitalizedWord.MatchString(word) {
			return false
		}
	}
	return true
}
