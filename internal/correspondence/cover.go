package correspondence

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-tailor/internal/types"
)

// Options configures composition. Date is supplied by the caller so the
// composers never read the clock; a nil Picker falls back to the first
// variant of each sentence set.
type Options struct {
	Date   string
	Picker Picker
}

func (o Options) pick(n int) int {
	if o.Picker == nil {
		return 0
	}
	return o.Picker(n)
}

// openingVariants are the cover-letter opening sentences. The company and
// role are substituted in.
var openingVariants = []string{
	"I am writing to apply for the %s position at %s.",
	"I was excited to see the %s opening at %s.",
	"Please consider my application for the %s role at %s.",
}

// closingVariants close the letter before the signature.
var closingVariants = []string{
	"I would welcome the chance to discuss how my experience fits your needs.",
	"I look forward to the opportunity to speak with you about this role.",
	"Thank you for your time and consideration.",
}

// ComposeCoverLetter builds a cover-letter model from the profile and the
// requirement record. The greeting reuses the extracted hiring-manager
// name when one was found.
func ComposeCoverLetter(profile *types.ApplicantProfile, record *types.RequirementRecord, opts Options) *types.CoverLetter {
	return &types.CoverLetter{
		Date:      opts.Date,
		Recipient: greeting(record),
		Opening:   fmt.Sprintf(openingVariants[opts.pick(len(openingVariants))], record.JobTitle, record.Company),
		Body:      bodyParagraphs(profile, record),
		Closing:   closingVariants[opts.pick(len(closingVariants))],
		Signature: profile.Name,
	}
}

// greeting addresses the extracted contact when available.
func greeting(record *types.RequirementRecord) string {
	if record.ContactName != "" {
		return "Dear " + record.ContactName + ","
	}
	return "Dear Hiring Team,"
}

// bodyParagraphs derives the letter body from the requirement overlap.
func bodyParagraphs(profile *types.ApplicantProfile, record *types.RequirementRecord) []string {
	paragraphs := make([]string, 0, 2)

	matched := matchedSkills(profile.TechnicalSkills, record)
	switch {
	case len(matched) > 0:
		paragraphs = append(paragraphs, fmt.Sprintf(
			"My background aligns closely with what you are looking for: I have hands-on experience with %s.",
			joinNatural(matched)))
	case profile.Summary != "":
		paragraphs = append(paragraphs, profile.Summary)
	}

	if len(profile.Experience) > 0 {
		recent := profile.Experience[0]
		paragraphs = append(paragraphs, fmt.Sprintf(
			"Most recently I worked as %s at %s, where I took ownership of delivery from design through operations.",
			recent.Title, recent.Company))
	}
	return paragraphs
}

// matchedSkills lists the applicant's technical skills that overlap the
// requirement signal, in profile order, capped for readability.
func matchedSkills(skills []string, record *types.RequirementRecord) []string {
	targets := make([]string, 0, len(record.Required)+len(record.KeySkills))
	targets = append(targets, record.Required...)
	targets = append(targets, record.KeySkills...)

	matched := make([]string, 0, 5)
	for _, skill := range skills {
		lower := strings.ToLower(strings.TrimSpace(skill))
		if lower == "" {
			continue
		}
		for _, target := range targets {
			lowerTarget := strings.ToLower(strings.TrimSpace(target))
			if lowerTarget == "" {
				continue
			}
			if strings.Contains(lower, lowerTarget) || strings.Contains(lowerTarget, lower) {
				matched = append(matched, skill)
				break
			}
		}
		if len(matched) == 5 {
			break
		}
	}
	return matched
}

// joinNatural joins items as "a, b and c".
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
