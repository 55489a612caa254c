package rendering

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/cv-tailor/internal/types"
)

// Format identifies an output format.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatHTML:
		return "html"
	case FormatPDF:
		return "pdf"
	}
	return ""
}

// ParseFormat validates a format name. Unknown values are a validation
// error, never a silent default.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText, FormatHTML, FormatPDF:
		return Format(name), nil
	}
	return "", &ValidationError{Field: "format", Message: fmt.Sprintf("unknown format %q", name)}
}

// Renderer converts tailored document models into output bytes. Style,
// temp directory and conversion timeout are fixed at construction so that
// rendering itself is a pure function of (model, format).
type Renderer struct {
	style   StyleOptions
	tempDir string
	timeout time.Duration
	logger  *zap.Logger
}

// NewRenderer builds a renderer after validating the style options against
// the whitelist. The logger is the internal diagnostic sink; user-facing
// errors stay generic while full detail goes there.
func NewRenderer(style StyleOptions, tempDir string, timeout time.Duration, logger *zap.Logger) (*Renderer, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		style:   style,
		tempDir: tempDir,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Render converts the model into the requested format. All formats derive
// from the same intermediate markup; rendering the same model twice yields
// byte-identical output.
func (r *Renderer) Render(ctx context.Context, model *types.TailoredDocument, format Format) ([]byte, error) {
	markup := BuildMarkup(model)

	switch format {
	case FormatText:
		return []byte(markupToText(markup)), nil
	case FormatHTML:
		return renderHTML(markup, model.Name, r.style)
	case FormatPDF:
		return r.renderPDF(ctx, markup, model.Name)
	}
	return nil, &ValidationError{Field: "format", Message: fmt.Sprintf("unknown format %q", format)}
}
