package errors

import (
	"slices"
	"strings"
	"unicode"
)

// maxNameLength bounds node names accepted from the command line.
const maxNameLength = 256

// ValidateNodeName validates a node name supplied on the command line.
//
// The layout tree itself accepts any string; these rules only keep the
// CLI's "name:id:parent:x,y" syntax unambiguous:
//   - No empty names
//   - No control characters
//   - No ':' or '=' (field separators)
//   - Maximum length of 256 characters
func ValidateNodeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "node name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "node name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "node name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, ":=") {
		return New(ErrCodeInvalidName, "node name cannot contain ':' or '=': %q", name)
	}

	return nil
}

// ValidateFormat checks that format is one of the supported output formats.
func ValidateFormat(format string, supported []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}
	if !slices.Contains(supported, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)",
			format, strings.Join(supported, ", "))
	}
	return nil
}
