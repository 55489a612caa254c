package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. validator.Validate is safe for
// concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports boundary validation failures with field paths.
// Messages are derived from validator tags and never echo field contents.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateProfile checks an ApplicantProfile against the boundary schema:
// required identity fields, per-field maximum lengths and array-size caps.
func ValidateProfile(profile *ApplicantProfile) error {
	return runValidation(profile)
}

// ValidatePosting checks a JobPosting against the boundary schema.
func ValidatePosting(posting *JobPosting) error {
	return runValidation(posting)
}

func runValidation(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Namespace(),
			Message: describeTag(fe),
		})
	}
	return &ValidationError{Errors: fieldErrors}
}

// describeTag converts a validator tag into a safe human-readable message.
func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("exceeds maximum of %s", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
