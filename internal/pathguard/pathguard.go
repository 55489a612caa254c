// Package pathguard validates and normalizes output directories and
// filenames. Every filesystem write in the system goes through these
// checks; the sanitize-then-reverify layering in JoinSafely is intentional
// defense in depth and must not be collapsed into a single check.
package pathguard

import (
	"os"
	"path/filepath"
	"strings"
)

// hostileChars are replaced with underscores during filename sanitization.
// The set covers path separators plus characters that are special on
// common filesystems.
const hostileChars = `/\<>:"|?*`

// SanitizeFileName strips directory components, traversal sequences and
// NUL bytes from a filename, replaces filesystem-hostile characters with
// underscores, and prefixes a leading dot so sanitized names never become
// hidden files. An empty result is a validation error.
func SanitizeFileName(name string) (string, error) {
	// Drop NUL bytes outright; they terminate paths in C APIs.
	name = strings.ReplaceAll(name, "\x00", "")

	// Strip directory components from both path flavors.
	name = name[strings.LastIndexAny(name, `/\`)+1:]

	// Remove traversal sequences that survived the component strip.
	name = strings.ReplaceAll(name, "..", "")

	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(hostileChars, r) || r < 0x20 {
			sb.WriteRune('_')
		} else {
			sb.WriteRune(r)
		}
	}
	name = strings.TrimSpace(sb.String())

	if strings.HasPrefix(name, ".") {
		name = "_" + name
	}

	if name == "" || strings.Trim(name, "._") == "" {
		return "", &ValidationError{Message: "filename is empty after sanitization"}
	}
	return name, nil
}

// NormalizeOutputDir resolves a directory to an absolute, cleaned path.
// When allowedBase is non-empty, a resolution escaping the base is
// rejected.
func NormalizeOutputDir(path, allowedBase string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", &PathSecurityError{Message: "empty directory"}
	}
	if strings.Contains(path, "\x00") {
		return "", &PathSecurityError{Message: "directory contains forbidden characters"}
	}

	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", &PathSecurityError{Message: "directory could not be resolved"}
	}

	if allowedBase != "" {
		base, err := filepath.Abs(filepath.Clean(allowedBase))
		if err != nil {
			return "", &PathSecurityError{Message: "base directory could not be resolved"}
		}
		if !isWithin(base, abs) {
			return "", &PathSecurityError{Message: "directory escapes the allowed base"}
		}
	}
	return abs, nil
}

// JoinSafely sanitizes each segment, joins it onto the base, and then
// re-verifies that the resolved result is still a descendant of the base.
// The second check is deliberate: segment sanitization and containment are
// independent defenses, and traversal segments such as ".." must fail the
// containment check rather than being silently rewritten.
func JoinSafely(base string, segments ...string) (string, error) {
	baseAbs, err := filepath.Abs(filepath.Clean(base))
	if err != nil {
		return "", &PathSecurityError{Message: "base directory could not be resolved"}
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, baseAbs)
	for _, segment := range segments {
		clean, err := sanitizeSegment(segment)
		if err != nil {
			return "", err
		}
		parts = append(parts, clean)
	}

	joined := filepath.Clean(filepath.Join(parts...))
	if !isWithin(baseAbs, joined) {
		return "", &PathSecurityError{Message: "resolved path escapes the base directory"}
	}
	return joined, nil
}

// sanitizeSegment removes NUL bytes and rejects empty segments. Separators
// and dot sequences are left intact on purpose so that traversal attempts
// reach the containment check instead of being rewritten away.
func sanitizeSegment(segment string) (string, error) {
	segment = strings.ReplaceAll(segment, "\x00", "")
	if strings.TrimSpace(segment) == "" {
		return "", &PathSecurityError{Message: "empty path segment"}
	}
	return segment, nil
}

// EnsureDir creates a normalized output directory if it does not exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return &PathSecurityError{Message: "directory could not be created"}
	}
	return nil
}

// isWithin reports whether target equals base or is a descendant of it.
func isWithin(base, target string) bool {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
