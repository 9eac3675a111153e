// Package resume converts unstructured, layout-mangled PDF-extracted text
// into a structured record of contact info, education, experience, projects
// and skills. Parsing is heuristic and best-effort: strategies are tried in a
// fixed order and the first non-empty result wins. The parser is pure and
// total — any input, including the empty string, yields a structurally valid
// ParsedResume without error.
package resume

import (
	"strings"

	"careerlens/internal/types"
)

// singleLineThreshold is the maximum number of non-empty lines for which the
// input is treated as a single collapsed paragraph. PDF extractors commonly
// flatten a whole resume into one line, which needs boundary-pattern
// splitting instead of line-by-line scanning.
const singleLineThreshold = 3

// Parse converts raw resume text into a ParsedResume. It never fails;
// degenerate input produces a record with empty sections.
func Parse(rawText string) types.ParsedResume {
	if countNonEmptyLines(rawText) <= singleLineThreshold {
		return parseSingleLine(rawText)
	}
	return parseMultiLine(rawText)
}

func countNonEmptyLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// parseMultiLine handles text whose layout survived extraction. Each core
// section is located with the simple header-variant strategy first, then the
// keyword-synonym strategy as fallback.
func parseMultiLine(rawText string) types.ParsedResume {
	lines := nonEmptyLines(rawText)
	contact := extractContactInfo(rawText)

	education := extractSectionSimple(lines, "EDUCATION")
	experience := extractSectionSimple(lines, "EXPERIENCE")
	projects := extractSectionSimple(lines, "PROJECTS")
	skillsSection := extractSectionSimple(lines, "SKILLS")

	if len(education) == 0 {
		education = extractSectionAdvanced(lines, []string{"education", "academic", "qualifications", "degree", "university", "college"})
	}
	if len(experience) == 0 {
		experience = extractSectionAdvanced(lines, []string{"experience", "work", "employment", "career", "professional"})
	}
	if len(projects) == 0 {
		projects = extractSectionAdvanced(lines, []string{"projects", "project", "portfolio", "works", "achievements"})
	}
	if len(skillsSection) == 0 {
		skillsSection = extractSectionAdvanced(lines, []string{"skills", "technical skills", "technologies", "programming", "languages", "tools"})
	}

	skills := extractSkillsAdvanced(skillsSection)

	parsed := types.ParsedResume{
		Contact:         contact,
		Education:       education,
		Experience:      experience,
		Projects:        projects,
		Skills:          skills,
		Certifications:  []string{},
		Achievements:    []string{},
		Extracurricular: []string{},
		RawText:         rawText,
	}
	parsed.Metadata = types.ResumeMetadata{
		TotalLines:       len(lines),
		SectionsFound:    coreSectionsFound(parsed),
		ContactInfoFound: contactFound(contact),
	}
	return parsed
}

// parseSingleLine handles text collapsed into one paragraph. Sections are cut
// out of the raw string with boundary patterns rather than line scanning.
func parseSingleLine(rawText string) types.ParsedResume {
	contact := extractContactInfo(rawText)

	parsed := types.ParsedResume{
		Contact:         contact,
		Education:       []string{},
		Experience:      []string{},
		Projects:        []string{},
		Skills:          []string{},
		Certifications:  []string{},
		Achievements:    []string{},
		Extracurricular: []string{},
		RawText:         rawText,
	}

	for _, sb := range singleLineSections {
		m := sb.pattern.FindStringSubmatch(rawText)
		if m == nil {
			continue
		}
		content := strings.TrimSpace(m[1])
		switch sb.name {
		case "skills":
			parsed.Skills = extractSkillsFromText(content)
		case "projects":
			parsed.Projects = extractProjectsFromText(content)
		case "education":
			parsed.Education = extractBulletPoints(content)
		case "certifications":
			parsed.Certifications = extractBulletPoints(content)
		case "achievements":
			parsed.Achievements = extractBulletPoints(content)
		case "extracurricular":
			parsed.Extracurricular = extractBulletPoints(content)
		}
	}

	parsed.Metadata = types.ResumeMetadata{
		TotalCharacters:  len(rawText),
		SectionsFound:    allSectionsFound(parsed),
		ContactInfoFound: contactFound(contact),
	}
	return parsed
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func contactFound(c types.ContactInfo) bool {
	return c.Email != "" || c.Phone != "" || c.LinkedIn != ""
}

// coreSectionsFound reports which of the four core sections are non-empty, in
// fixed order. Used in multi-line mode, where only the core sections are
// populated.
func coreSectionsFound(p types.ParsedResume) []string {
	found := []string{}
	for _, s := range []struct {
		name  string
		items []string
	}{
		{"education", p.Education},
		{"experience", p.Experience},
		{"projects", p.Projects},
		{"skills", p.Skills},
	} {
		if len(s.items) > 0 {
			found = append(found, s.name)
		}
	}
	return found
}

// allSectionsFound reports every non-empty section, in the order the
// single-line boundary chain visits them.
func allSectionsFound(p types.ParsedResume) []string {
	found := []string{}
	for _, s := range []struct {
		name  string
		items []string
	}{
		{"education", p.Education},
		{"experience", p.Experience},
		{"projects", p.Projects},
		{"skills", p.Skills},
		{"certifications", p.Certifications},
		{"achievements", p.Achievements},
		{"extracurricular", p.Extracurricular},
	} {
		if len(s.items) > 0 {
			found = append(found, s.name)
		}
	}
	return found
}
