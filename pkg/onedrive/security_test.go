package onedrive

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "jpg", format: "jpg"},
		{name: "upper case", format: "PNG"},
		{name: "digits", format: "mp4"},
		{name: "empty", format: "", wantErr: true},
		{name: "dot", format: ".jpg", wantErr: true},
		{name: "slash", format: "jpg/x", wantErr: true},
		{name: "query", format: "jpg?x=1", wantErr: true},
		{name: "too long", format: "abcdefghijklmnopq", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ValidateFormat(%q) expected ErrInvalidFormat, got %v", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateFormat(%q) unexpected error: %v", tt.format, err)
			}
		})
	}
}

func TestFormatFromFileName(t *testing.T) {
	got, err := FormatFromFileName("/tmp/holiday/IMG_0001.JPG")
	if err != nil {
		t.Fatalf("FormatFromFileName() unexpected error: %v", err)
	}
	if got != "jpg" {
		t.Errorf("FormatFromFileName() = %q, want %q", got, "jpg")
	}

	if _, err := FormatFromFileName("README"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("FormatFromFileName() without extension expected ErrInvalidFormat, got %v", err)
	}
}

func TestSanitizeLocalPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		errType error
	}{
		{
			name:    "Valid relative path",
			input:   "Pictures/sunset.jpg",
			wantErr: false,
		},
		{
			name:    "Valid absolute path",
			input:   "/home/user/Pictures/sunset.jpg",
			wantErr: false,
		},
		{
			name:    "Path traversal attack",
			input:   "../../../etc/passwd",
			wantErr: true,
			errType: ErrPathTraversal,
		},
		{
			name:    "Null byte",
			input:   "sunset.jpg\x00.sh",
			wantErr: true,
			errType: ErrInvalidPath,
		},
		{
			name:    "Empty path",
			input:   "",
			wantErr: true,
			errType: ErrInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SanitizeLocalPath(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("SanitizeLocalPath() expected error, got nil")
					return
				}
				if tt.errType != nil && !errors.Is(err, tt.errType) {
					t.Errorf("SanitizeLocalPath() expected error type %v, got %v", tt.errType, err)
				}
				return
			}
			if err != nil {
				t.Errorf("SanitizeLocalPath() unexpected error: %v", err)
				return
			}
			if !filepath.IsAbs(result) {
				t.Errorf("SanitizeLocalPath() = %q, want an absolute path", result)
			}
		})
	}
}
