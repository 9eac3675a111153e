package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"careerlens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ParseReport", &ParseTextFormatter{})
	registry.RegisterFormatter("markdown", "ParseReport", &ParseMarkdownFormatter{})
	registry.RegisterFormatter("text", "AdviceOutput", &AdviceTextFormatter{})
	registry.RegisterFormatter("markdown", "AdviceOutput", &AdviceMarkdownFormatter{})
	registry.RegisterFormatter("text", "SkillsGapOutput", &SkillsGapTextFormatter{})
	registry.RegisterFormatter("markdown", "SkillsGapOutput", &SkillsGapMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ParseReport:
		return "ParseReport"
	case types.AdviceOutput:
		return "AdviceOutput"
	case types.SkillsGapOutput:
		return "SkillsGapOutput"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// writeSectionText writes a named resume section as an indented list,
// skipping empty sections.
func writeSectionText(output *strings.Builder, name string, items []string) {
	if len(items) == 0 {
		return
	}
	output.WriteString(fmt.Sprintf("=== %s ===\n", strings.ToUpper(name)))
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
	output.WriteString("\n")
}

// writeSectionMarkdown writes a named resume section as a markdown list,
// skipping empty sections.
func writeSectionMarkdown(output *strings.Builder, name string, items []string) {
	if len(items) == 0 {
		return
	}
	output.WriteString(fmt.Sprintf("## %s\n\n", name))
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
	output.WriteString("\n")
}

// ParseTextFormatter handles text formatting for parsed resumes
type ParseTextFormatter struct{}

func (ptf *ParseTextFormatter) Format(data any) (string, error) {
	report, ok := data.(types.ParseReport)
	if !ok {
		return "", fmt.Errorf("expected ParseReport, got %T", data)
	}
	resume := report.Resume

	var output strings.Builder

	output.WriteString("=== CONTACT ===\n")
	if resume.Contact.Email != "" {
		output.WriteString(fmt.Sprintf("Email: %s\n", resume.Contact.Email))
	}
	if resume.Contact.Phone != "" {
		output.WriteString(fmt.Sprintf("Phone: %s\n", resume.Contact.Phone))
	}
	if resume.Contact.LinkedIn != "" {
		output.WriteString(fmt.Sprintf("LinkedIn: %s\n", resume.Contact.LinkedIn))
	}
	if !resume.Metadata.ContactInfoFound {
		output.WriteString("No contact information found.\n")
	}
	output.WriteString("\n")

	writeSectionText(&output, "Education", resume.Education)
	writeSectionText(&output, "Experience", resume.Experience)
	writeSectionText(&output, "Projects", resume.Projects)
	writeSectionText(&output, "Skills", resume.Skills)
	writeSectionText(&output, "Certifications", resume.Certifications)
	writeSectionText(&output, "Achievements", resume.Achievements)
	writeSectionText(&output, "Extracurricular", resume.Extracurricular)

	output.WriteString("=== METADATA ===\n")
	output.WriteString(fmt.Sprintf("Sections found: %s\n", strings.Join(resume.Metadata.SectionsFound, ", ")))
	if resume.Metadata.TotalLines > 0 {
		output.WriteString(fmt.Sprintf("Total lines: %d\n", resume.Metadata.TotalLines))
	}
	if resume.Metadata.TotalCharacters > 0 {
		output.WriteString(fmt.Sprintf("Total characters: %d\n", resume.Metadata.TotalCharacters))
	}

	if report.Quality != nil {
		output.WriteString("\n=== QUALITY ANALYSIS ===\n")
		output.WriteString(fmt.Sprintf("Completeness score: %d/100\n\n", report.Quality.CompletenessScore))
		if len(report.Quality.Strengths) > 0 {
			output.WriteString("Strengths:\n")
			for _, strength := range report.Quality.Strengths {
				output.WriteString(fmt.Sprintf("- %s\n", strength))
			}
			output.WriteString("\n")
		}
		if len(report.Quality.MissingSections) > 0 {
			output.WriteString("Missing sections:\n")
			for _, missing := range report.Quality.MissingSections {
				output.WriteString(fmt.Sprintf("- %s\n", missing))
			}
			output.WriteString("\n")
		}
		if len(report.Quality.Recommendations) > 0 {
			output.WriteString("Recommendations:\n")
			for _, recommendation := range report.Quality.Recommendations {
				output.WriteString(fmt.Sprintf("- %s\n", recommendation))
			}
		}
	}

	return output.String(), nil
}

func (ptf *ParseTextFormatter) SupportedType() string {
	return "ParseReport"
}

// ParseMarkdownFormatter handles markdown formatting for parsed resumes
type ParseMarkdownFormatter struct{}

func (pmf *ParseMarkdownFormatter) Format(data any) (string, error) {
	report, ok := data.(types.ParseReport)
	if !ok {
		return "", fmt.Errorf("expected ParseReport, got %T", data)
	}
	resume := report.Resume

	var output strings.Builder

	output.WriteString("# Parsed Resume\n\n")
	output.WriteString("## Contact\n\n")
	if resume.Contact.Email != "" {
		output.WriteString(fmt.Sprintf("**Email:** %s\n\n", resume.Contact.Email))
	}
	if resume.Contact.Phone != "" {
		output.WriteString(fmt.Sprintf("**Phone:** %s\n\n", resume.Contact.Phone))
	}
	if resume.Contact.LinkedIn != "" {
		output.WriteString(fmt.Sprintf("**LinkedIn:** %s\n\n", resume.Contact.LinkedIn))
	}
	if !resume.Metadata.ContactInfoFound {
		output.WriteString("No contact information found.\n\n")
	}

	writeSectionMarkdown(&output, "Education", resume.Education)
	writeSectionMarkdown(&output, "Experience", resume.Experience)
	writeSectionMarkdown(&output, "Projects", resume.Projects)
	writeSectionMarkdown(&output, "Skills", resume.Skills)
	writeSectionMarkdown(&output, "Certifications", resume.Certifications)
	writeSectionMarkdown(&output, "Achievements", resume.Achievements)
	writeSectionMarkdown(&output, "Extracurricular", resume.Extracurricular)

	output.WriteString("## Metadata\n\n")
	output.WriteString(fmt.Sprintf("**Sections found:** %s\n\n", strings.Join(resume.Metadata.SectionsFound, ", ")))
	if resume.Metadata.TotalLines > 0 {
		output.WriteString(fmt.Sprintf("**Total lines:** %d\n\n", resume.Metadata.TotalLines))
	}
	if resume.Metadata.TotalCharacters > 0 {
		output.WriteString(fmt.Sprintf("**Total characters:** %d\n\n", resume.Metadata.TotalCharacters))
	}

	if report.Quality != nil {
		output.WriteString("## Quality Analysis\n\n")
		output.WriteString(fmt.Sprintf("**Completeness score:** %d/100\n\n", report.Quality.CompletenessScore))
		if len(report.Quality.Strengths) > 0 {
			output.WriteString("### Strengths\n")
			for _, strength := range report.Quality.Strengths {
				output.WriteString(fmt.Sprintf("- %s\n", strength))
			}
			output.WriteString("\n")
		}
		if len(report.Quality.MissingSections) > 0 {
			output.WriteString("### Missing Sections\n")
			for _, missing := range report.Quality.MissingSections {
				output.WriteString(fmt.Sprintf("- %s\n", missing))
			}
			output.WriteString("\n")
		}
		if len(report.Quality.Recommendations) > 0 {
			output.WriteString("### Recommendations\n")
			for _, recommendation := range report.Quality.Recommendations {
				output.WriteString(fmt.Sprintf("- %s\n", recommendation))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (pmf *ParseMarkdownFormatter) SupportedType() string {
	return "ParseReport"
}

// AdviceTextFormatter handles text formatting for career advice results
type AdviceTextFormatter struct{}

func (atf *AdviceTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AdviceOutput)
	if !ok {
		return "", fmt.Errorf("expected AdviceOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CAREER ADVICE ===\n\n")
	output.WriteString(result.Answer)
	output.WriteString("\n")

	if len(result.Sources) > 0 {
		output.WriteString("\n=== RESUME EXCERPTS USED ===\n\n")
		for i, source := range result.Sources {
			output.WriteString(fmt.Sprintf("%d. %s\n\n", i+1, source))
		}
	}

	if !result.Generated {
		output.WriteString("\nNote: AI generation was unavailable; this answer quotes your resume directly.\n")
	}

	return output.String(), nil
}

func (atf *AdviceTextFormatter) SupportedType() string {
	return "AdviceOutput"
}

// AdviceMarkdownFormatter handles markdown formatting for career advice results
type AdviceMarkdownFormatter struct{}

func (amf *AdviceMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AdviceOutput)
	if !ok {
		return "", fmt.Errorf("expected AdviceOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Career Advice\n\n")
	output.WriteString(result.Answer)
	output.WriteString("\n")

	if len(result.Sources) > 0 {
		output.WriteString("\n## Resume Excerpts Used\n\n")
		for i, source := range result.Sources {
			output.WriteString(fmt.Sprintf("%d. %s\n\n", i+1, source))
		}
	}

	if !result.Generated {
		output.WriteString("\n> AI generation was unavailable; this answer quotes your resume directly.\n")
	}

	return output.String(), nil
}

func (amf *AdviceMarkdownFormatter) SupportedType() string {
	return "AdviceOutput"
}

// SkillsGapTextFormatter handles text formatting for skills gap results
type SkillsGapTextFormatter struct{}

func (sgf *SkillsGapTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SkillsGapOutput)
	if !ok {
		return "", fmt.Errorf("expected SkillsGapOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== SKILLS GAP ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Target role: %s\n\n", result.TargetRole))

	writeSectionText(&output, "Current Skills", result.CurrentSkills)
	writeSectionText(&output, "Required Skills", result.RequiredSkills)
	writeSectionText(&output, "Matching Skills", result.MatchingSkills)
	writeSectionText(&output, "Missing Skills", result.MissingSkills)

	if result.Advice != "" {
		output.WriteString("=== ADVICE ===\n\n")
		output.WriteString(result.Advice)
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (sgf *SkillsGapTextFormatter) SupportedType() string {
	return "SkillsGapOutput"
}

// SkillsGapMarkdownFormatter handles markdown formatting for skills gap results
type SkillsGapMarkdownFormatter struct{}

func (sgmf *SkillsGapMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SkillsGapOutput)
	if !ok {
		return "", fmt.Errorf("expected SkillsGapOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Skills Gap Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Target role:** %s\n\n", result.TargetRole))

	writeSectionMarkdown(&output, "Current Skills", result.CurrentSkills)
	writeSectionMarkdown(&output, "Required Skills", result.RequiredSkills)
	writeSectionMarkdown(&output, "Matching Skills", result.MatchingSkills)
	writeSectionMarkdown(&output, "Missing Skills", result.MissingSkills)

	if result.Advice != "" {
		output.WriteString("## Advice\n\n")
		output.WriteString(result.Advice)
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (sgmf *SkillsGapMarkdownFormatter) SupportedType() string {
	return "SkillsGapOutput"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
