package tailoring

import (
	"regexp"
	"sort"
	"strings"
)

// highlighter wraps exact-word occurrences of requirement terms in emphasis
// markers. The markup is purely cosmetic: it is applied to display fields
// only, after all matching logic has run on the plain text.
type highlighter struct {
	pattern *regexp.Regexp
}

// newHighlighter builds a single-pass highlighter for the given terms.
// Terms are deduplicated case-insensitively and alternated longest-first so
// that "node.js" wins over "node" and no text is wrapped twice.
func newHighlighter(terms []string) *highlighter {
	alternatives := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))

	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		key := strings.ToLower(term)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		alternatives = append(alternatives, boundedPattern(term))
	}
	if len(alternatives) == 0 {
		return &highlighter{}
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return len(alternatives[i]) > len(alternatives[j])
	})

	return &highlighter{
		pattern: regexp.MustCompile(`(?i)(?:` + strings.Join(alternatives, "|") + `)`),
	}
}

// boundedPattern quotes a term and adds word-boundary assertions on the
// sides that begin or end with a word character. Terms like "c++" only get
// a leading boundary.
func boundedPattern(term string) string {
	quoted := regexp.QuoteMeta(term)
	if isWordChar(rune(term[0])) {
		quoted = `\b` + quoted
	}
	if isWordChar(rune(term[len(term)-1])) {
		quoted += `\b`
	}
	return quoted
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// apply wraps every term occurrence in ** markers, preserving the original
// casing of the matched text.
func (h *highlighter) apply(text string) string {
	if h.pattern == nil || text == "" {
		return text
	}
	return h.pattern.ReplaceAllString(text, "**$0**")
}

// applyAll highlights a slice of strings, returning a new slice.
func (h *highlighter) applyAll(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = h.apply(item)
	}
	return out
}
