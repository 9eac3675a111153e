package resume

import (
	"regexp"
	"strings"
)

// Project names in collapsed-paragraph resumes are usually capitalized
// phrases immediately followed by a section glyph or a tool list.
var projectNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][A-Za-z\s]+)\s*§`),
	regexp.MustCompile(`([A-Z][A-Za-z\s]+)\s*Tools:`),
}

// extractProjectsFromText pulls project names out of a projects block. When
// no name pattern matches, whole bullet fragments longer than 10 characters
// are kept as project descriptions.
func extractProjectsFromText(projectsText string) []string {
	var projects []string

	for _, pattern := range projectNamePatterns {
		for _, m := range pattern.FindAllStringSubmatch(projectsText, -1) {
			name := strings.TrimSpace(m[1])
			if len(name) > 3 {
				projects = append(projects, name)
			}
		}
	}

	if len(projects) == 0 {
		for _, fragment := range strings.Split(projectsText, "•") {
			fragment = strings.TrimSpace(fragment)
			if len(fragment) > 10 {
				projects = append(projects, fragment)
			}
		}
	}
	return dedupe(projects)
}

// extractBulletPoints splits a block on bullet glyphs, keeping trimmed
// fragments longer than 5 characters.
func extractBulletPoints(text string) []string {
	items := []string{}
	for _, fragment := range strings.Split(text, "•") {
		fragment = strings.TrimSpace(fragment)
		if len(fragment) > 5 {
			items = append(items, fragment)
		}
	}
	return items
}
