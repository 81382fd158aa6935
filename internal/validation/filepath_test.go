package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	v := NewDocumentValidator()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid absolute path", "/tmp/doc.txt", false},
		{"valid relative path becomes absolute", "doc.txt", false},
		{"empty path", "", true},
		{"null byte", "/tmp/doc\x00.txt", true},
		{"control character", "/tmp/doc\x07.txt", true},
		{"tab is allowed", "/tmp/doc\t.txt", false},
		{"bare tilde", "~doc.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidatePath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidatePath(%q) = %q, want error", tt.path, got)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidatePath(%q) error = %v", tt.path, err)
				return
			}
			if !filepath.IsAbs(got) {
				t.Errorf("ValidatePath(%q) = %q, want absolute path", tt.path, got)
			}
		})
	}
}

func TestValidatePath_TildeExpansion(t *testing.T) {
	v := NewDocumentValidator()

	got, err := v.ValidatePath("~/doc.txt")
	if err != nil {
		t.Fatalf("ValidatePath(~/doc.txt) error = %v", err)
	}

	home, _ := os.UserHomeDir()
	if got != filepath.Join(home, "doc.txt") {
		t.Errorf("ValidatePath(~/doc.txt) = %q, want under home directory", got)
	}
}

func TestValidatePath_TooLong(t *testing.T) {
	v := NewDocumentValidator()

	long := "/" + strings.Repeat("a", v.MaxPathLength)
	if _, err := v.ValidatePath(long); err == nil {
		t.Error("expected error for overlong path")
	}
}

func TestValidateFile(t *testing.T) {
	v := NewDocumentValidator()

	tmpDir, err := os.MkdirTemp("", "validation-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	filePath := filepath.Join(tmpDir, "doc.txt")
	if err := os.WriteFile(filePath, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("existing file", func(t *testing.T) {
		got, err := v.ValidateFile(filePath)
		if err != nil {
			t.Fatalf("ValidateFile() error = %v", err)
		}
		if got != filePath {
			t.Errorf("ValidateFile() = %q, want %q", got, filePath)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := v.ValidateFile(filepath.Join(tmpDir, "missing.txt")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("directory instead of file", func(t *testing.T) {
		if _, err := v.ValidateFile(tmpDir); err == nil {
			t.Error("expected error for directory")
		}
	})

	t.Run("oversized file", func(t *testing.T) {
		small := NewDocumentValidator()
		small.MaxFileSize = 3
		if _, err := small.ValidateFile(filePath); err == nil {
			t.Error("expected error for file above size cap")
		}
	})
}

func TestIsMarkdown(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"notes.md", true},
		{"notes.MD", true},
		{"notes.markdown", true},
		{"notes.mdown", true},
		{"notes.txt", false},
		{"notes", false},
	}
	for _, tt := range tests {
		if got := IsMarkdown(tt.path); got != tt.want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
