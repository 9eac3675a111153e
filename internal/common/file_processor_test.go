package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadResumeTextPlainFile(t *testing.T) {
	fp := NewFileProcessor(nil)

	path := filepath.Join(t.TempDir(), "resume.txt")
	content := "Jane Doe\njane@example.com\n\nSkills\nGo, Python"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := fp.ReadResumeText(path)
	if err != nil {
		t.Fatalf("ReadResumeText() error: %v", err)
	}
	if got != content {
		t.Errorf("got %q, want the file content verbatim", got)
	}
}

func TestReadResumeTextMissingFile(t *testing.T) {
	fp := NewFileProcessor(nil)

	_, err := fp.ReadResumeText(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadResumeTextRejectsDirectory(t *testing.T) {
	fp := NewFileProcessor(nil)

	_, err := fp.ReadResumeText(t.TempDir())
	if err == nil {
		t.Fatal("expected error for directory input")
	}
}

func TestReadResumeTextCorruptPDF(t *testing.T) {
	fp := NewFileProcessor(nil)

	// A .pdf extension routes through the PDF extractor, which must reject
	// a file without a PDF structure.
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("plain text, not a pdf"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := fp.ReadResumeText(path)
	if err == nil {
		t.Fatal("expected error for corrupt PDF")
	}
}
