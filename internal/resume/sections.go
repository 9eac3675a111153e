package resume

import (
	"regexp"
	"strings"
	"unicode"
)

// Fixed vocabulary of known section headers. A line whose lowercased, trimmed
// form equals one of these is always treated as a header.
var knownHeaders = map[string]struct{}{
	"education": {}, "experience": {}, "skills": {}, "projects": {},
	"work": {}, "employment": {}, "academic": {}, "qualifications": {},
	"certifications": {}, "languages": {}, "interests": {}, "achievements": {},
	"awards": {}, "publications": {}, "references": {}, "contact": {},
}

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	lineCharsRe   = regexp.MustCompile(`[^\w\s.\-+&@#()]`)
	upperHeaderRe = regexp.MustCompile(`^[A-Z][A-Z\s]+$`)
)

// cleanLine normalizes a content line: collapses whitespace and strips
// characters outside the retained set (word chars, whitespace, . - + & @ # ( )).
func cleanLine(line string) string {
	line = whitespaceRe.ReplaceAllString(line, " ")
	line = lineCharsRe.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// isSectionHeader decides heuristically whether a line introduces a new
// section rather than being content. Short all-caps lines count as headers
// even when the word is not in the known vocabulary.
func isSectionHeader(line string) bool {
	clean := strings.TrimSpace(line)
	if _, ok := knownHeaders[strings.ToLower(clean)]; ok {
		return true
	}
	if len(strings.Fields(clean)) <= 4 {
		if isAllUpper(clean) || upperHeaderRe.MatchString(clean) {
			return true
		}
	}
	return false
}

// isAllUpper reports whether s contains at least one cased character and no
// lowercase ones.
func isAllUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasCased = true
		}
	}
	return hasCased
}

// headerVariations builds the case variants matched by the simple strategy:
// UPPER, Title, lower, plus pluralized UPPER and Title forms.
func headerVariations(sectionName string) []string {
	upper := strings.ToUpper(sectionName)
	title := titleCase(sectionName)
	return []string{
		upper,
		title,
		strings.ToLower(sectionName),
		upper + "S",
		title + "S",
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// extractSectionSimple scans for a line containing any case variant of the
// section name as a substring. That line is treated as the header and
// skipped; subsequent non-empty lines are collected until any line that looks
// like a section header ends the section. Lines matching a variant never
// terminate collection themselves, only header-looking lines do.
func extractSectionSimple(lines []string, sectionName string) []string {
	variations := headerVariations(sectionName)
	var section []string
	found := false

	for _, line := range lines {
		clean := strings.TrimSpace(line)

		if containsAny(clean, variations) {
			found = true
			continue
		}

		if found {
			if isSectionHeader(line) {
				break
			}
			if clean != "" {
				section = append(section, clean)
			}
		}
	}
	return section
}

// extractSectionAdvanced is the fallback strategy: it matches a broader list
// of lowercase keyword synonyms against lowercased lines, then collects and
// cleans content the same way the simple strategy does.
func extractSectionAdvanced(lines []string, keywords []string) []string {
	var section []string
	found := false

	for _, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))

		if containsAny(lower, keywords) {
			found = true
			continue
		}

		if found {
			if isSectionHeader(line) {
				break
			}
			if strings.TrimSpace(line) != "" {
				section = append(section, strings.TrimSpace(line))
			}
		}
	}

	cleaned := make([]string, 0, len(section))
	for _, line := range section {
		if c := cleanLine(line); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	return cleaned
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// singleLineSections is the ordered boundary chain for collapsed-paragraph
// input: each section's content runs up to the next header keyword in the
// chain or end of string. Matching is case-insensitive and spans newlines.
var singleLineSections = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"education", regexp.MustCompile(`(?is)EDUCATION\s+(.*?)(?:SKILLS|PROJECTS|CERTIFICATIONS|ACHIEVEMENTS|$)`)},
	{"skills", regexp.MustCompile(`(?is)SKILLS\s+(.*?)(?:PROJECTS|CERTIFICATIONS|ACHIEVEMENTS|$)`)},
	{"projects", regexp.MustCompile(`(?is)PROJECTS\s+(.*?)(?:CERTIFICATIONS|ACHIEVEMENTS|EXTRACURRICULAR|$)`)},
	{"certifications", regexp.MustCompile(`(?is)CERTIFICATIONS\s+(.*?)(?:ACHIEVEMENTS|EXTRACURRICULAR|$)`)},
	{"achievements", regexp.MustCompile(`(?is)ACHIEVEMENTS\s+(.*?)(?:EXTRACURRICULAR|$)`)},
	{"extracurricular", regexp.MustCompile(`(?is)EXTRACURRICULAR\s+(.*)$`)},
}
