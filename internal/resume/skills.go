package resume

import (
	"regexp"
	"strings"
)

// Separator ladders tried in order; the first separator present in a
// fragment wins and the rest are never consulted.
var (
	advancedSeparators   = []string{",", ";", "|", "•", "·", "▪", "▫", "◦", "‣", "⁃"}
	singleLineSeparators = []string{",", ";", "|", "&"}
)

var (
	conjPrefixRe = regexp.MustCompile(`(?i)^(and|or|&)\s+`)
	conjSuffixRe = regexp.MustCompile(`(?i)\s+(and|or|&)$`)
	versionRe    = regexp.MustCompile(`\s+\d+\.?\d*`)
	yearRe       = regexp.MustCompile(`\s+\d{4}`)

	// Skill-like term patterns, applied in order when a long fragment has no
	// recognizable separators. All matches across all patterns are pooled.
	skillTermPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`), // capitalized phrases
		regexp.MustCompile(`\b[A-Z]{2,}\b`),                      // acronyms
		regexp.MustCompile(`\b[a-z]+\.[a-z]+\b`),                 // dotted abbreviations like "m.s."
		regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`),      // two-word capitalized pairs
	}
)

// extractSkillsAdvanced turns the collected lines of a skills section into a
// deduplicated skill list. A colon on a line marks a category label; only the
// text after the first colon is treated as items.
func extractSkillsAdvanced(skillLines []string) []string {
	var candidates []string

	for _, line := range skillLines {
		if idx := strings.Index(line, ":"); idx >= 0 {
			line = line[idx+1:]
		}

		if parts, ok := splitOnFirstSeparator(line, advancedSeparators); ok {
			candidates = append(candidates, parts...)
			continue
		}

		// No separator. Short fragments are one skill; long ones go through
		// the pattern extractor.
		if len(strings.Fields(line)) <= 3 {
			candidates = append(candidates, strings.TrimSpace(line))
		} else {
			candidates = append(candidates, extractSkillTerms(line)...)
		}
	}

	cleaned := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if skill := cleanSkill(candidate); len(skill) > 1 {
			cleaned = append(cleaned, skill)
		}
	}
	return dedupe(cleaned)
}

// extractSkillsFromText is the single-line-mode entry point: the skills block
// is first split on bullets, and each bullet fragment is processed with the
// wider single-skill word limit.
func extractSkillsFromText(skillsText string) []string {
	var skills []string

	for _, fragment := range strings.Split(skillsText, "•") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		if idx := strings.Index(fragment, ":"); idx >= 0 {
			fragment = fragment[idx+1:]
		}
		skills = append(skills, extractSkillItems(fragment)...)
	}
	return dedupe(skills)
}

// extractSkillItems splits a fragment into individual skills using the
// single-line separator ladder, keeping whole fragments of up to 5 words as
// one skill.
func extractSkillItems(text string) []string {
	var items []string

	if parts, ok := splitOnFirstSeparator(text, singleLineSeparators); ok {
		items = parts
	} else if len(strings.Fields(text)) <= 5 {
		items = []string{strings.TrimSpace(text)}
	} else {
		items = extractSkillTerms(text)
	}

	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if skill := cleanSkill(item); len(skill) > 1 {
			cleaned = append(cleaned, skill)
		}
	}
	return cleaned
}

// splitOnFirstSeparator splits text on the first separator from seps that
// occurs in it, trimming parts and dropping empties. The second return is
// false when no separator was found.
func splitOnFirstSeparator(text string, seps []string) ([]string, bool) {
	for _, sep := range seps {
		if !strings.Contains(text, sep) {
			continue
		}
		var parts []string
		for _, part := range strings.Split(text, sep) {
			if p := strings.TrimSpace(part); p != "" {
				parts = append(parts, p)
			}
		}
		return parts, true
	}
	return nil, false
}

// extractSkillTerms recovers skill-like substrings from free text that has no
// usable separators.
func extractSkillTerms(text string) []string {
	var skills []string
	for _, pattern := range skillTermPatterns {
		skills = append(skills, pattern.FindAllString(text, -1)...)
	}
	return skills
}

// cleanSkill normalizes a single skill term: strips leading/trailing
// conjunctions, trailing version numbers and four-digit years, and collapses
// whitespace. Cleaning is idempotent.
func cleanSkill(skill string) string {
	skill = conjPrefixRe.ReplaceAllString(skill, "")
	skill = conjSuffixRe.ReplaceAllString(skill, "")
	skill = versionRe.ReplaceAllString(skill, "")
	skill = yearRe.ReplaceAllString(skill, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(skill, " "))
}

// dedupe removes exact duplicates while preserving first-occurrence order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := []string{}
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
