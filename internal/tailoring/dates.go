package tailoring

import (
	"strings"
	"time"
)

// InvalidDateMarker is the explicit marker emitted when a start date cannot
// be parsed. It is deliberately a visible string rather than a silent blank.
const InvalidDateMarker = "Invalid date"

// presentLabel is the display value for open-ended durations.
const presentLabel = "Present"

// dateLayouts are the accepted calendar formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"January 2006",
	"Jan 2006",
	"01/2006",
	"2006",
}

// parseDate attempts to parse a date string against the accepted layouts.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDuration formats a start/end pair at month-year granularity. An
// unparseable start yields the invalid marker; a missing, blank, "present"
// or unparseable end yields "<start> – Present".
func FormatDuration(start, end string) string {
	startDate, ok := parseDate(start)
	if !ok {
		return InvalidDateMarker
	}
	formatted := startDate.Format("Jan 2006")

	end = strings.TrimSpace(end)
	if end == "" || strings.EqualFold(end, "present") {
		return formatted + " – " + presentLabel
	}

	endDate, ok := parseDate(end)
	if !ok {
		return formatted + " – " + presentLabel
	}
	return formatted + " – " + endDate.Format("Jan 2006")
}
