// Package extract reads text out of resume PDFs. Extraction quality is at the
// mercy of how the document was produced, so output goes through a cleanup
// pass that repairs the most common artifacts before parsing.
package extract

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	apperrors "careerlens/internal/errors"
)

// ExtractText extracts the plain text of every page of a PDF file, cleaning
// each page before concatenation.
func ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.NewIOError(apperrors.ErrCodeFileNotReadable, "failed to read PDF file", err).
			WithContext("path", path)
	}
	return ExtractTextFromBytes(data)
}

// ExtractTextFromBytes extracts text from in-memory PDF content, as received
// from an upload.
func ExtractTextFromBytes(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.NewIOError(apperrors.ErrCodeExtractionFailed, "failed to open PDF", err)
	}

	var out strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Pages with broken font maps are skipped, not fatal.
			continue
		}
		out.WriteString(CleanText(pageText))
		out.WriteString("\n")
	}
	return strings.TrimSpace(out.String()), nil
}

// ExtractTextOrEmpty degrades extraction failure to an empty string. The
// parser treats empty input as a valid degenerate resume, so callers get a
// structurally sound result either way.
func ExtractTextOrEmpty(path string, logger *apperrors.Logger) string {
	text, err := ExtractText(path)
	if err != nil {
		if logger != nil {
			logger.Warn("PDF extraction failed, continuing with empty text", "path", path, "error", err.Error())
		}
		return ""
	}
	return text
}

// ExtractReader extracts text from a PDF stream by buffering it first; the
// PDF format needs random access.
func ExtractReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", apperrors.NewIOError(apperrors.ErrCodeFileNotReadable, "failed to read PDF stream", err)
	}
	return ExtractTextFromBytes(data)
}
