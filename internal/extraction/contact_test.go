package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactName_ContactPhrase(t *testing.T) {
	name := extractContactName("Contact John Smith for details about the role.")
	assert.Equal(t, "John Smith", name)
}

func TestExtractContactName_AllCapsRejected(t *testing.T) {
	name := extractContactName("Contact JOHN for details about the role.")
	assert.Equal(t, "", name)
}

func TestExtractContactName_HiringManagerColon(t *testing.T) {
	name := extractContactName("Hiring manager: Jane Roe will review applications.")
	assert.Equal(t, "Jane Roe", name)
}

func TestExtractContactName_TrailingHiringManager(t *testing.T) {
	name := extractContactName("Applications go to Maria Lopez, hiring manager for the team.")
	assert.Equal(t, "Maria Lopez", name)
}

func TestExtractContactName_ReportingTo(t *testing.T) {
	name := extractContactName("You will be reporting to Alice Nguyen in the platform group.")
	assert.Equal(t, "Alice Nguyen", name)
}

func TestExtractContactName_FirstMatchingPatternWins(t *testing.T) {
	// Both the contact phrase and the hiring-manager phrase are present;
	// the contact pattern is evaluated first.
	text := "Contact Bob Jones today. Hiring manager: Jane Roe."
	assert.Equal(t, "Bob Jones", extractContactName(text))
}

func TestExtractContactName_InvalidCandidateStopsEvaluation(t *testing.T) {
	// The contact pattern matches first with a lowercase candidate, so the
	// later hiring-manager pattern is never consulted.
	text := "Please contact our recruiters. Hiring manager: Jane Roe."
	assert.Equal(t, "", extractContactName(text))
}

func TestExtractContactName_NoMatch(t *testing.T) {
	assert.Equal(t, "", extractContactName("A great opportunity to build systems."))
}

func TestIsTwoCapitalizedWords(t *testing.T) {
	tests := []struct {
		candidate string
		want      bool
	}{
		{"John Smith", true},
		{"Jane Roe", true},
		{"JOHN SMITH", false},
		{"john smith", false},
		{"John", false},
		{"John Smith Jr", false},
		{"John SMITH", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			assert.Equal(t, tt.want, isTwoCapitalizedWords(tt.candidate))
		})
	}
}
