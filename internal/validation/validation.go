// Package validation guards the inputs the codec reads: path checks and a
// cap on how many bytes a document may occupy, before or after
// decompression.
package validation

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Resource limits (CWE-400).
const (
	// MaxFileSize is the maximum allowed document size (256 MB).
	MaxFileSize = 256 << 20
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrFileTooLarge     = errors.New("file exceeds maximum size")
)

// ValidatePath checks a user-supplied path for length limits and
// characters no GEDCOM file name may carry.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	// The base name ends up in the header's FILE line.
	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// ReadAll reads r to EOF, buffering at most limit+1 bytes. A stream longer
// than limit fails with ErrFileTooLarge.
func ReadAll(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, limit)
	}
	return data, nil
}
