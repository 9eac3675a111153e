package resume

import (
	"regexp"

	"careerlens/internal/types"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// North-American grouping is tried before the international form; the
	// first pattern with a match anywhere in the text wins, so an unrelated
	// digit run earlier in the document can shadow the real number. Known
	// limitation, kept for stable downstream behavior.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,4}\b`),
	}

	linkedinRe = regexp.MustCompile(`linkedin\.com/in/[A-Za-z0-9-]+`)
)

// extractContactInfo scans raw text for email, phone and LinkedIn handle.
// Each field keeps only its first match; absent fields stay empty.
func extractContactInfo(text string) types.ContactInfo {
	var contact types.ContactInfo

	contact.Email = emailRe.FindString(text)

	for _, pattern := range phonePatterns {
		if m := pattern.FindString(text); m != "" {
			contact.Phone = m
			break
		}
	}

	contact.LinkedIn = linkedinRe.FindString(text)
	return contact
}
