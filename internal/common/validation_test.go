package common

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	formats := []string{"json", "text", "markdown"}

	tests := []struct {
		name        string
		format      string
		supported   []string
		expectError bool
	}{
		{"text is supported", "text", formats, false},
		{"json is supported", "json", formats, false},
		{"markdown is supported", "markdown", formats, false},
		{"xml is not supported", "xml", formats, true},
		{"matching is case sensitive", "JSON", formats, true},
		{"empty format rejected", "", formats, true},
		{"no restrictions when list is empty", "xml", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supported)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				if !strings.Contains(err.Error(), "unsupported output format") {
					t.Errorf("unexpected error: %v", err)
				}
				for _, f := range tt.supported {
					if !strings.Contains(err.Error(), f) {
						t.Errorf("error %q does not list supported format %q", err, f)
					}
				}
			} else if err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := []string{"json", "text", "markdown"}
	got := GetSupportedFormats(formats)
	if len(got) != len(formats) {
		t.Fatalf("got %d formats, want %d", len(got), len(formats))
	}
	for i := range formats {
		if got[i] != formats[i] {
			t.Errorf("format[%d] = %q, want %q", i, got[i], formats[i])
		}
	}
}
