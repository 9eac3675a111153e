package extract

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "whitespace collapsed",
			input: "Software   Engineer\n\n  Resume",
			want:  "Software Engineer Resume",
		},
		{
			name:  "camel join spaced",
			input: "EducationBachelor of Science",
			want:  "Education Bachelor of Science",
		},
		{
			name:  "space after sentence punctuation",
			input: "Led the team.Shipped the product",
			want:  "Led the team. Shipped the product",
		},
		{
			name:  "bullet glyphs standardized",
			input: "▪ Go ◦ Python ‣ SQL",
			want:  "• Go • Python • SQL",
		},
		{
			name:  "trailing page number removed",
			input: "Experience at Acme 2",
			want:  "Experience at Acme",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
