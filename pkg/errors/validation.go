package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxTitleLength = 256
	maxLabelLength = 512
	maxPathLength  = 1024
)

// ValidateTitle validates a diagram title.
//
// Titles become image captions and the default output filename, so they must
// be single-line and free of control characters. An empty title is accepted;
// the diagram then falls back to a default filename.
func ValidateTitle(title string) error {
	if utf8.RuneCountInString(title) > maxTitleLength {
		return New(ErrCodeInvalidInput, "title too long (max %d characters)", maxTitleLength)
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "title contains control characters")
		}
	}
	if !utf8.ValidString(title) {
		return New(ErrCodeInvalidInput, "title is not valid UTF-8")
	}
	return nil
}

// ValidateLabel validates a node, cluster or edge label.
// Newlines are allowed and render as line breaks; other control characters
// are rejected.
func ValidateLabel(label string) error {
	if !utf8.ValidString(label) {
		return New(ErrCodeInvalidLabel, "label is not valid UTF-8")
	}
	if utf8.RuneCountInString(label) > maxLabelLength {
		return New(ErrCodeInvalidLabel, "label too long (max %d characters)", maxLabelLength)
	}
	for _, r := range label {
		if r != '\n' && unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label %q contains control characters", label)
		}
	}
	return nil
}

// ValidateFilename validates an output filename stem (no extension).
// It must be a plain basename: no separators, no traversal, not hidden.
func ValidateFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "filename cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "filename cannot contain path separators")
	}
	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidPath, "filename cannot be a hidden file")
	}
	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "filename contains invalid characters")
		}
	}
	return nil
}

// ValidateOutputDir validates an output directory path.
// Absolute and relative paths are both accepted; null bytes and control
// characters are not.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}
	if len(dir) > maxPathLength {
		return New(ErrCodeInvalidPath, "output directory too long (max %d characters)", maxPathLength)
	}
	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}
	return nil
}
