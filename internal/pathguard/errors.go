package pathguard

// PathSecurityError reports a traversal or base-escape attempt. The message
// is deliberately generic and never echoes the rejected path.
type PathSecurityError struct {
	Message string
}

func (e *PathSecurityError) Error() string {
	if e.Message != "" {
		return "invalid path: " + e.Message
	}
	return "invalid path"
}

// ValidationError reports a filename that sanitizes to nothing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Message
}
