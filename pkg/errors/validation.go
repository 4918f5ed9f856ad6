package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxIdentifierLength bounds location identifiers. Real identifiers are short
// codes (state or region tags); anything longer is almost certainly a
// mis-keyed field.
const maxIdentifierLength = 64

// ValidateIdentifier validates a location identifier supplied on the command
// line or in a route request.
//
// Rules:
//   - No empty identifiers (after trimming spaces)
//   - No control characters
//   - No commas or quotes, which would break the CSV route table on import
//   - Maximum length of 64 characters
func ValidateIdentifier(id string) error {
	if strings.TrimSpace(id) == "" {
		return New(ErrCodeInvalidInput, "location identifier cannot be empty")
	}

	if len(id) > maxIdentifierLength {
		return New(ErrCodeInvalidInput, "location identifier too long (max %d characters)", maxIdentifierLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "location identifier contains invalid control characters")
		}
	}

	if strings.ContainsAny(id, `,"`) {
		return New(ErrCodeInvalidInput, "location identifier %q contains a comma or quote", id)
	}

	return nil
}

// ValidateOutputPath validates a path an output file will be written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory (no trailing separator, not "." or "..")
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	switch filepath.Base(path) {
	case ".", "..":
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}
