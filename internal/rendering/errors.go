package rendering

import "fmt"

// ValidationError reports an unknown format or a style parameter outside
// the whitelist. The message names the field and constraint but never
// echoes filesystem paths.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// RenderError represents a document generation failure. The user-facing
// message is deliberately generic: full diagnostic detail (underlying
// error, paths) is written to the internal log sink only, and Cause is
// never included in Error output.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("document generation failed: %s", e.Message)
	}
	return "document generation failed"
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
