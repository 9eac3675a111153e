package resume

import (
	"reflect"
	"strings"
	"testing"
)

const multiSectionResume = `EDUCATION
Bachelor of Science in Computer Science
University of Technology, 2020-2024

SKILLS
Programming Languages: Python, JavaScript, Java, C++
`

func TestParseModeSelection(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		singleLine bool
	}{
		{
			name:       "three lines selects single-line mode",
			input:      "A\nB\nC",
			singleLine: true,
		},
		{
			name:       "one collapsed paragraph selects single-line mode",
			input:      "EDUCATION BSc SKILLS Python",
			singleLine: true,
		},
		{
			name:       "blank lines do not count toward the threshold",
			input:      "A\n\nB\n\nC",
			singleLine: true,
		},
		{
			name:       "four non-empty lines selects multi-line mode",
			input:      "A\nB\nC\nD",
			singleLine: false,
		},
		{
			name:       "empty input selects single-line mode",
			input:      "",
			singleLine: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Parse(tt.input)
			if tt.singleLine {
				if parsed.Metadata.TotalLines != 0 {
					t.Errorf("expected single-line mode, got totalLines=%d", parsed.Metadata.TotalLines)
				}
				if parsed.Metadata.TotalCharacters != len(tt.input) {
					t.Errorf("totalCharacters = %d, want %d", parsed.Metadata.TotalCharacters, len(tt.input))
				}
			} else {
				if parsed.Metadata.TotalCharacters != 0 {
					t.Errorf("expected multi-line mode, got totalCharacters=%d", parsed.Metadata.TotalCharacters)
				}
				if parsed.Metadata.TotalLines == 0 {
					t.Error("expected totalLines to be set in multi-line mode")
				}
			}
		})
	}
}

func TestParseMultiSectionResume(t *testing.T) {
	parsed := Parse(multiSectionResume)

	wantEducation := []string{
		"Bachelor of Science in Computer Science",
		"University of Technology, 2020-2024",
	}
	if !reflect.DeepEqual(parsed.Education, wantEducation) {
		t.Errorf("education = %v, want %v", parsed.Education, wantEducation)
	}

	wantSkills := []string{"Python", "JavaScript", "Java", "C++"}
	if !reflect.DeepEqual(parsed.Skills, wantSkills) {
		t.Errorf("skills = %v, want %v", parsed.Skills, wantSkills)
	}
	for _, skill := range parsed.Skills {
		if strings.Contains(skill, "Programming Languages") {
			t.Errorf("category label leaked into skills: %q", skill)
		}
	}

	wantSections := []string{"education", "skills"}
	if !reflect.DeepEqual(parsed.Metadata.SectionsFound, wantSections) {
		t.Errorf("sectionsFound = %v, want %v", parsed.Metadata.SectionsFound, wantSections)
	}
	if parsed.Metadata.TotalLines != 5 {
		t.Errorf("totalLines = %d, want 5", parsed.Metadata.TotalLines)
	}
	if parsed.RawText != multiSectionResume {
		t.Error("rawText must be retained verbatim")
	}
}

func TestParseContactInfo(t *testing.T) {
	input := `JANE DOE
jane.doe@example.com | 555-123-4567 | linkedin.com/in/janedoe

EDUCATION
Bachelor of Arts in Design
`
	parsed := Parse(input)

	if parsed.Contact.Email != "jane.doe@example.com" {
		t.Errorf("email = %q, want %q", parsed.Contact.Email, "jane.doe@example.com")
	}
	if parsed.Contact.Phone != "555-123-4567" {
		t.Errorf("phone = %q, want %q", parsed.Contact.Phone, "555-123-4567")
	}
	if parsed.Contact.LinkedIn != "linkedin.com/in/janedoe" {
		t.Errorf("linkedin = %q, want %q", parsed.Contact.LinkedIn, "linkedin.com/in/janedoe")
	}
	if !parsed.Metadata.ContactInfoFound {
		t.Error("contactInfoFound should be true")
	}
}

func TestParseEmptyInput(t *testing.T) {
	parsed := Parse("")

	for name, section := range map[string][]string{
		"education":       parsed.Education,
		"experience":      parsed.Experience,
		"projects":        parsed.Projects,
		"skills":          parsed.Skills,
		"certifications":  parsed.Certifications,
		"achievements":    parsed.Achievements,
		"extracurricular": parsed.Extracurricular,
	} {
		if len(section) != 0 {
			t.Errorf("%s should be empty, got %v", name, section)
		}
	}
	if parsed.Metadata.ContactInfoFound {
		t.Error("contactInfoFound should be false for empty input")
	}
	if len(parsed.Metadata.SectionsFound) != 0 {
		t.Errorf("sectionsFound should be empty, got %v", parsed.Metadata.SectionsFound)
	}
}

func TestParseSingleLineBoundaries(t *testing.T) {
	input := "EDUCATION BSc Computer Science Degree SKILLS Python, Java PROJECTS Portfolio website build"
	parsed := Parse(input)

	wantEducation := []string{"BSc Computer Science Degree"}
	if !reflect.DeepEqual(parsed.Education, wantEducation) {
		t.Errorf("education = %v, want %v", parsed.Education, wantEducation)
	}

	wantSkills := []string{"Python", "Java"}
	if !reflect.DeepEqual(parsed.Skills, wantSkills) {
		t.Errorf("skills = %v, want %v", parsed.Skills, wantSkills)
	}

	wantProjects := []string{"Portfolio website build"}
	if !reflect.DeepEqual(parsed.Projects, wantProjects) {
		t.Errorf("projects = %v, want %v", parsed.Projects, wantProjects)
	}

	wantSections := []string{"education", "projects", "skills"}
	if !reflect.DeepEqual(parsed.Metadata.SectionsFound, wantSections) {
		t.Errorf("sectionsFound = %v, want %v", parsed.Metadata.SectionsFound, wantSections)
	}
}

func TestParseMetadataConsistency(t *testing.T) {
	inputs := []struct {
		name  string
		input string
	}{
		{"multi-section", multiSectionResume},
		{"single line", "EDUCATION BSc Degree SKILLS Go, Rust"},
		{"empty", ""},
		{"no sections", "Just some prose.\nWith a second line.\nAnd a third one here.\nAnd a fourth."},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Parse(tt.input)

			nonEmpty := map[string]bool{}
			for name, section := range map[string][]string{
				"education":       parsed.Education,
				"experience":      parsed.Experience,
				"projects":        parsed.Projects,
				"skills":          parsed.Skills,
				"certifications":  parsed.Certifications,
				"achievements":    parsed.Achievements,
				"extracurricular": parsed.Extracurricular,
			} {
				nonEmpty[name] = len(section) > 0
			}

			found := map[string]bool{}
			for _, name := range parsed.Metadata.SectionsFound {
				found[name] = true
				if !nonEmpty[name] {
					t.Errorf("sectionsFound lists %q but the section is empty", name)
				}
			}
			for name, has := range nonEmpty {
				if has && !found[name] {
					t.Errorf("non-empty section %q missing from sectionsFound", name)
				}
			}
		})
	}
}

func TestIsSectionHeader(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		header bool
	}{
		{"known vocabulary word", "education", true},
		{"known vocabulary word uppercase", "SKILLS", true},
		{"short all-caps line", "TECHNICAL SUMMARY", true},
		{"short mixed-case line", "University of Technology", false},
		{"long all-caps line", "THIS IS A VERY LONG SHOUTED SENTENCE", false},
		{"content line", "Built a REST API with Go", false},
		{"digits only", "2020-2024", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSectionHeader(tt.line); got != tt.header {
				t.Errorf("isSectionHeader(%q) = %v, want %v", tt.line, got, tt.header)
			}
		})
	}
}

func TestExtractSectionAdvancedFallback(t *testing.T) {
	// No line is an exact "EXPERIENCE" header, so the simple strategy finds
	// nothing and the synonym fallback has to locate the section.
	input := `Professional Background
Software Engineer at Acme Corp
Shipped three product releases

SKILLS
Go, Python
`
	parsed := Parse(input)
	if len(parsed.Experience) == 0 {
		t.Fatal("expected synonym fallback to locate the experience section")
	}
	want := []string{"Software Engineer at Acme Corp", "Shipped three product releases"}
	if !reflect.DeepEqual(parsed.Experience, want) {
		t.Errorf("experience = %v, want %v", parsed.Experience, want)
	}
}
