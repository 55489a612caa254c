package rendering

import (
	"fmt"
	"regexp"
	"strconv"
)

// pageDimensions holds paper dimensions in inches, the unit headless
// Chrome's print API expects.
type pageDimensions struct {
	Width  float64
	Height float64
}

// pageSizes is the whitelist of accepted page sizes. Anything else is
// rejected before it reaches a stylesheet or the converter.
var pageSizes = map[string]pageDimensions{
	"A4":      {8.27, 11.69},
	"A3":      {11.69, 16.54},
	"A5":      {5.83, 8.27},
	"Letter":  {8.5, 11},
	"Legal":   {8.5, 14},
	"Tabloid": {11, 17},
}

var (
	// measurePattern is the only shape a margin or font size may take.
	// This whitelist is a security boundary: style values are interpolated
	// into stylesheet text and must never carry anything else.
	measurePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)(mm|cm|in|px|pt)$`)

	lineHeightPattern = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// unitsPerInch converts whitelisted units to inches.
var unitsPerInch = map[string]float64{
	"mm": 25.4,
	"cm": 2.54,
	"in": 1,
	"px": 96,
	"pt": 72,
}

// StyleOptions are the validated presentation parameters for the HTML and
// PDF formats. All values must pass Validate before any rendering.
type StyleOptions struct {
	PageSize     string
	MarginTop    string
	MarginRight  string
	MarginBottom string
	MarginLeft   string
	FontSize     string
	HeadingSize  string
	LineHeight   string
}

// DefaultStyle returns the built-in presentation defaults.
func DefaultStyle() StyleOptions {
	return StyleOptions{
		PageSize:     "A4",
		MarginTop:    "20mm",
		MarginRight:  "18mm",
		MarginBottom: "20mm",
		MarginLeft:   "18mm",
		FontSize:     "11pt",
		HeadingSize:  "16pt",
		LineHeight:   "1.4",
	}
}

// Validate checks every style parameter against the whitelist.
func (s StyleOptions) Validate() error {
	if _, ok := pageSizes[s.PageSize]; !ok {
		return &ValidationError{Field: "page_size", Message: fmt.Sprintf("%q is not an allowed page size", s.PageSize)}
	}

	measures := map[string]string{
		"margin_top":    s.MarginTop,
		"margin_right":  s.MarginRight,
		"margin_bottom": s.MarginBottom,
		"margin_left":   s.MarginLeft,
		"font_size":     s.FontSize,
		"heading_size":  s.HeadingSize,
	}
	// Deterministic check order for stable error messages.
	for _, field := range []string{"margin_top", "margin_right", "margin_bottom", "margin_left", "font_size", "heading_size"} {
		if !measurePattern.MatchString(measures[field]) {
			return &ValidationError{Field: field, Message: "must match <number><unit> with unit in mm, cm, in, px, pt"}
		}
	}

	if !lineHeightPattern.MatchString(s.LineHeight) {
		return &ValidationError{Field: "line_height", Message: "must be numeric"}
	}
	return nil
}

// dimensions returns the paper dimensions for the validated page size.
func (s StyleOptions) dimensions() pageDimensions {
	return pageSizes[s.PageSize]
}

// toInches converts a validated measure string to inches for the print API.
func toInches(measure string) float64 {
	match := measurePattern.FindStringSubmatch(measure)
	if match == nil {
		return 0
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return value / unitsPerInch[match[2]]
}
