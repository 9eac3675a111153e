package resume

import (
	"reflect"
	"testing"
)

func TestCleanSkill(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain skill", "Python", "Python"},
		{"leading conjunction", "and Java", "Java"},
		{"trailing conjunction", "Docker and", "Docker"},
		{"ampersand prefix", "& Kubernetes", "Kubernetes"},
		{"version number stripped", "Python 3.9", "Python"},
		{"year stripped", "AWS 2023", "AWS"},
		{"whitespace collapsed", "  Node    js  ", "Node js"},
		{"symbols preserved", "C++", "C++"},
		{"dotted name preserved", "Node.js", "Node.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanSkill(tt.input)
			if got != tt.want {
				t.Errorf("cleanSkill(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Cleaning is idempotent: a cleaned skill passes through unchanged.
			if again := cleanSkill(got); again != got {
				t.Errorf("cleanSkill not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestExtractSkillsAdvanced(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "category label stripped",
			lines: []string{"Programming Languages: Python, JavaScript, Java"},
			want:  []string{"Python", "JavaScript", "Java"},
		},
		{
			name:  "semicolon separator",
			lines: []string{"Go; Rust; Zig"},
			want:  []string{"Go", "Rust", "Zig"},
		},
		{
			name:  "pipe separator",
			lines: []string{"React | Vue | Svelte"},
			want:  []string{"React", "Vue", "Svelte"},
		},
		{
			name:  "duplicates removed preserving first occurrence",
			lines: []string{"Python, Java, Python, Go, Java"},
			want:  []string{"Python", "Java", "Go"},
		},
		{
			name:  "short line kept whole",
			lines: []string{"Machine Learning"},
			want:  []string{"Machine Learning"},
		},
		{
			name:  "single characters discarded",
			lines: []string{"R, Go, C"},
			want:  []string{"Go"},
		},
		{
			name:  "empty input",
			lines: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractSkillsAdvanced(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractSkillsAdvanced(%v) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}

func TestExtractSkillsFromText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "bulleted categories",
			input: "• Languages: Python, Java • Web Development: React, Django",
			want:  []string{"Python", "Java", "React", "Django"},
		},
		{
			name:  "ampersand separator",
			input: "HTML & CSS",
			want:  []string{"HTML", "CSS"},
		},
		{
			name:  "short fragment kept whole",
			input: "Cloud Native Application Development",
			want:  []string{"Cloud Native Application Development"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractSkillsFromText(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractSkillsFromText(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractSkillTerms(t *testing.T) {
	got := extractSkillTerms("Experienced with Docker containers and REST design")
	contains := func(items []string, want string) bool {
		for _, item := range items {
			if item == want {
				return true
			}
		}
		return false
	}
	if !contains(got, "Docker") {
		t.Errorf("expected capitalized term Docker in %v", got)
	}
	if !contains(got, "REST") {
		t.Errorf("expected acronym REST in %v", got)
	}
}

func TestExtractProjectsFromText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "tools marker captures project name",
			input: "Chat Application Tools: Go, Redis",
			want:  []string{"Chat Application"},
		},
		{
			name:  "bullet fallback keeps long fragments",
			input: "• Built an inventory tracker • tiny one",
			want:  []string{"Built an inventory tracker"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractProjectsFromText(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractProjectsFromText(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func BenchmarkParseMultiLine(b *testing.B) {
	for b.Loop() {
		Parse(multiSectionResume)
	}
}
