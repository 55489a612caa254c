package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs a human-readable summary of the extracted
// requirement record.
func (p *Printer) PrintRequirements(record *types.RequirementRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", record.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", record.JobTitle))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", record.ExperienceLevel))
	sb.WriteString("\n")

	if len(record.KeySkills) > 0 {
		sb.WriteString("Key Skills:\n")
		count := min(len(record.KeySkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.KeySkills[i]))
		}
		if len(record.KeySkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.KeySkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(record.Keywords) > 0 {
		keywords := strings.Join(record.Keywords, ", ")
		if len(keywords) > 50 {
			keywords = keywords[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", keywords))
	}

	if record.ContactName != "" {
		sb.WriteString(fmt.Sprintf("Contact:  %s\n", record.ContactName))
	}
	if len(record.ContactEmails) > 0 {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", record.ContactEmails[0]))
	}

	p.printBox("EXTRACTED REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTailoredDocument outputs a summary of the tailored document before
// rendering.
func (p *Printer) PrintTailoredDocument(doc *types.TailoredDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Name))
	summary := doc.Summary
	if len(summary) > 50 {
		summary = summary[:47] + "..."
	}
	if summary != "" {
		sb.WriteString(fmt.Sprintf("Summary:  %s\n", summary))
	}
	sb.WriteString("\n")

	if len(doc.Skills) > 0 {
		sb.WriteString("Skills (prioritized):\n")
		count := min(len(doc.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", doc.Skills[i]))
		}
		if len(doc.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(doc.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d entries):\n", len(doc.Experience)))
		count := min(len(doc.Experience), 3)
		for i := 0; i < count; i++ {
			entry := doc.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", entry.Title, entry.Company))
			sb.WriteString(fmt.Sprintf("    %s\n", entry.Duration))
		}
		if len(doc.Experience) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experience)-3))
		}
	}

	p.printBox("TAILORED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCoverLetter outputs a short preview of the composed cover letter.
func (p *Printer) PrintCoverLetter(letter *types.CoverLetter) {
	if letter == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("To:       %s\n", letter.Recipient))
	sb.WriteString(fmt.Sprintf("Opening:  %s\n", letter.Opening))
	sb.WriteString(fmt.Sprintf("Closing:  %s\n", letter.Closing))
	sb.WriteString(fmt.Sprintf("Body paragraphs: %d", len(letter.Body)))

	p.printBox("COVER LETTER", sb.String())
}

// PrintOutputs lists the files written by the run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintOutputs(paths []string) {
	if len(paths) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO FILES WRITTEN")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, path := range paths {
		sb.WriteString(fmt.Sprintf("• %s", path))
		if i < len(paths)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("OUTPUT FILES", sb.String())
}
