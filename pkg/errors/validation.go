package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches #rgb and #rrggbb colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a section color. Empty colors are allowed and
// render with the default palette color.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidChart, "invalid color %q (want #rgb or #rrggbb)", color)
	}
	return nil
}

// MaxCapacity bounds the number of seats a single table or row may carry.
const MaxCapacity = 500

// ValidateCapacity validates a requested seat count for a new or edited
// element. Zero is valid and denotes a special area.
func ValidateCapacity(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "capacity cannot be negative: %d", n)
	}
	if n > MaxCapacity {
		return New(ErrCodeInvalidInput, "capacity too large: %d (max %d)", n, MaxCapacity)
	}
	return nil
}

// ValidatePath validates a file path given on the command line or in a
// config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateID validates an element identifier supplied by a host.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return New(ErrCodeInvalidChart, "id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidChart, "id too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidChart, "id contains invalid control characters")
		}
	}
	return nil
}
