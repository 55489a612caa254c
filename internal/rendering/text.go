package rendering

import (
	"regexp"
	"strings"
)

var (
	headingPrefix  = regexp.MustCompile(`^#{1,6}\s+`)
	strongMarkers  = regexp.MustCompile(`\*\*([^*]*)\*\*`)
	italicLine     = regexp.MustCompile(`^_(.*)_$`)
	sectionHeading = regexp.MustCompile(`^##\s+`)
)

// markupToText derives the plain-text format from the intermediate markup:
// headings lose their markers (section headings become upper-case),
// emphasis markers are stripped, bullets keep their dashes. The content is
// byte-for-byte the same as the other formats modulo presentation.
func markupToText(markup string) string {
	lines := strings.Split(markup, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		switch {
		case sectionHeading.MatchString(line):
			title := headingPrefix.ReplaceAllString(line, "")
			out = append(out, strings.ToUpper(title))
		case headingPrefix.MatchString(line):
			out = append(out, headingPrefix.ReplaceAllString(line, ""))
		default:
			line = strongMarkers.ReplaceAllString(line, "$1")
			line = italicLine.ReplaceAllString(line, "$1")
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n")
}
