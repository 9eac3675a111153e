// Package rag assembles a retrieval corpus from a parsed resume, indexes it
// in an in-memory vector store, and answers career questions over it with an
// ordered chain of answer strategies.
package rag

import (
	"strings"

	"careerlens/internal/types"
)

// BuildCorpus joins the raw resume text with the structured sections so that
// both the verbatim document and the parser's cleaned-up items are
// retrievable. Section order is fixed: skills, projects, education,
// experience.
func BuildCorpus(parsed types.ParsedResume) string {
	var b strings.Builder
	b.WriteString(parsed.RawText)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(parsed.Skills, "\n"))

	for _, section := range [][]string{parsed.Projects, parsed.Education, parsed.Experience} {
		if len(section) > 0 {
			b.WriteString("\n\n")
			b.WriteString(strings.Join(section, "\n"))
		}
	}
	return b.String()
}
