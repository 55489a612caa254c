package extraction

import "fmt"

// ValidationError represents a structural violation of the posting contract:
// a missing mandatory field or a length-cap violation. Content problems
// never raise; extraction degrades to empty values instead.
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
