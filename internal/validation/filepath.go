package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxDocumentSize caps how large a file may be before import. Documents are
// held in memory in full; this is a sanity bound, not a streaming limit.
const MaxDocumentSize = 8 << 20 // 8 MiB

// DocumentValidator checks file paths before a document is imported into the
// library.
type DocumentValidator struct {
	// MaxPathLength is the maximum allowed path length
	MaxPathLength int
	// MaxFileSize is the maximum allowed file size in bytes
	MaxFileSize int64
}

// NewDocumentValidator creates a validator with sensible defaults.
func NewDocumentValidator() *DocumentValidator {
	return &DocumentValidator{
		MaxPathLength: 4096,
		MaxFileSize:   MaxDocumentSize,
	}
}

// ValidatePath normalizes and validates a document path: tilde expansion,
// absolute form, no null bytes or control characters, no traversal left after
// cleaning.
func (v *DocumentValidator) ValidatePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if len(path) > v.MaxPathLength {
		return "", fmt.Errorf("path too long (max %d characters)", v.MaxPathLength)
	}
	if strings.Contains(path, "\x00") {
		return "", fmt.Errorf("path contains null bytes")
	}
	for _, char := range path {
		if char < 32 && char != '\t' {
			return "", fmt.Errorf("path contains control characters")
		}
	}

	if len(path) >= 2 && path[:2] == "~/" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	} else if strings.HasPrefix(path, "~") {
		return "", fmt.Errorf("invalid tilde usage")
	}

	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("cannot make path absolute: %w", err)
		}
		path = abs
	}

	clean := filepath.Clean(path)
	for _, component := range strings.Split(filepath.ToSlash(clean), "/") {
		if component == ".." {
			return "", fmt.Errorf("directory traversal not allowed")
		}
	}

	return clean, nil
}

// ValidateFile validates the path and confirms it names a readable regular
// file below the size cap.
func (v *DocumentValidator) ValidateFile(path string) (string, error) {
	validated, err := v.ValidatePath(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(validated)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file does not exist: %s", validated)
		}
		return "", fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", validated)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("not a regular file: %s", validated)
	}
	if info.Size() > v.MaxFileSize {
		return "", fmt.Errorf("file too large (%d bytes, max %d)", info.Size(), v.MaxFileSize)
	}

	return validated, nil
}

// IsMarkdown reports whether the file extension suggests markdown content.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
		return true
	}
	return false
}
