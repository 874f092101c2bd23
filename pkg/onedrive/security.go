// Package onedrive (security.go) validates caller-supplied names and local
// paths before they reach a request URL or the file system.
package onedrive

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validation errors
var (
	ErrInvalidFormat = errors.New("invalid photo format")
	ErrInvalidPath   = errors.New("invalid path")
	ErrPathTraversal = errors.New("path traversal detected")
)

// maxFormatLength bounds the extension part of an upload name.
const maxFormatLength = 16

// ValidateFormat checks the extension used to name an upload, e.g. "jpg".
// It must be a short run of letters and digits so that the generated
// <uuid>.<format> name stays a single path segment.
func ValidateFormat(format string) error {
	if format == "" {
		return fmt.Errorf("%w: format cannot be empty", ErrInvalidFormat)
	}
	if len(format) > maxFormatLength {
		return fmt.Errorf("%w: format %q too long (max %d characters)", ErrInvalidFormat, format, maxFormatLength)
	}
	for _, r := range format {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !isDigit {
			return fmt.Errorf("%w: format %q contains invalid character %q", ErrInvalidFormat, format, r)
		}
	}
	return nil
}

// FormatFromFileName derives an upload format from a local file name,
// lower-cased and without the dot.
func FormatFromFileName(name string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	format := strings.ToLower(ext)
	if err := ValidateFormat(format); err != nil {
		return "", fmt.Errorf("file %q: %w", name, err)
	}
	return format, nil
}

// SanitizeLocalPath cleans and validates a local file system path.
// This is used before reading a file for upload.
func SanitizeLocalPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path cannot be empty", ErrInvalidPath)
	}

	if strings.Contains(path, "\x00") {
		return "", fmt.Errorf("%w: null bytes not allowed in path", ErrInvalidPath)
	}

	// Check for suspicious path traversal patterns
	if strings.Contains(path, "../") || strings.HasSuffix(path, "/..") || path == ".." {
		return "", fmt.Errorf("%w: path contains directory traversal elements", ErrPathTraversal)
	}

	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("%w: unable to resolve absolute path: %v", ErrInvalidPath, err)
	}
	return abs, nil
}
