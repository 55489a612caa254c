package correspondence

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

// fallbackRecipient is used when the posting contained no contact email.
const fallbackRecipient = "hiring team"

// ComposeEmail builds an outreach-email model from the same inputs as the
// cover letter. The recipient defaults to the first contact email found in
// the posting; attachments list the rendered document filenames.
func ComposeEmail(profile *types.ApplicantProfile, record *types.RequirementRecord, attachments []string, opts Options) *types.OutreachEmail {
	return &types.OutreachEmail{
		From:        profile.Email,
		To:          recipient(record),
		Subject:     fmt.Sprintf("Application for %s - %s", record.JobTitle, profile.Name),
		Body:        emailBody(profile, record, opts),
		Attachments: append([]string(nil), attachments...),
	}
}

func recipient(record *types.RequirementRecord) string {
	if len(record.ContactEmails) > 0 {
		return record.ContactEmails[0]
	}
	return fallbackRecipient
}

// emailBody reuses the letter's greeting and skill overlap so the two
// documents never contradict each other.
func emailBody(profile *types.ApplicantProfile, record *types.RequirementRecord, opts Options) string {
	var sb strings.Builder

	sb.WriteString(greeting(record))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf(openingVariants[opts.pick(len(openingVariants))], record.JobTitle, record.Company))
	sb.WriteString("\n\n")

	if matched := matchedSkills(profile.TechnicalSkills, record); len(matched) > 0 {
		sb.WriteString(fmt.Sprintf("I bring hands-on experience with %s.", joinNatural(matched)))
		sb.WriteString(" ")
	}
	sb.WriteString("My CV is attached; I would be glad to tell you more.")
	sb.WriteString("\n\n")
	sb.WriteString("Kind regards,\n")
	sb.WriteString(profile.Name)

	return sb.String()
}
