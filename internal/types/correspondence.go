package types

// CoverLetter is the content model for a tailored cover letter. The date is
// supplied by the caller so composition stays deterministic.
type CoverLetter struct {
	Date      string   `json:"date,omitempty"`
	Recipient string   `json:"recipient"`
	Opening   string   `json:"opening"`
	Body      []string `json:"body"`
	Closing   string   `json:"closing"`
	Signature string   `json:"signature"`
}

// OutreachEmail is the content model for a contact email derived from the
// same profile and requirement record as the cover letter.
type OutreachEmail struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	Attachments []string `json:"attachments,omitempty"`
}
