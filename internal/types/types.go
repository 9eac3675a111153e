package types

// ContactInfo holds contact details pulled from the raw resume text.
// Fields that were not found are left empty and omitted from JSON output.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// ResumeMetadata summarizes what the parser found. Exactly one of
// TotalLines/TotalCharacters is set, depending on the extraction mode.
type ResumeMetadata struct {
	SectionsFound    []string `json:"sectionsFound"`
	ContactInfoFound bool     `json:"contactInfoFound"`
	TotalLines       int      `json:"totalLines,omitempty"`
	TotalCharacters  int      `json:"totalCharacters,omitempty"`
}

// ParsedResume is the structured record produced from raw resume text.
// Section slices preserve source order; Skills is deduplicated while
// keeping first-occurrence order.
type ParsedResume struct {
	Contact         ContactInfo    `json:"contact"`
	Education       []string       `json:"education"`
	Experience      []string       `json:"experience"`
	Projects        []string       `json:"projects"`
	Skills          []string       `json:"skills"`
	Certifications  []string       `json:"certifications"`
	Achievements    []string       `json:"achievements"`
	Extracurricular []string       `json:"extracurricular"`
	RawText         string         `json:"rawText"`
	Metadata        ResumeMetadata `json:"metadata"`
}

// QualityAnalysis is a derived completeness report for a parsed resume.
type QualityAnalysis struct {
	CompletenessScore int      `json:"completenessScore"`
	Strengths         []string `json:"strengths"`
	MissingSections   []string `json:"missingSections"`
	Recommendations   []string `json:"recommendations"`
}

// ParseReport pairs a parsed resume with its optional quality analysis for
// presentation.
type ParseReport struct {
	Resume  ParsedResume     `json:"resume"`
	Quality *QualityAnalysis `json:"quality,omitempty"`
}

// AdviceInput represents a career question asked against a parsed resume.
type AdviceInput struct {
	Question string `json:"question"`
}

// AdviceOutput represents an answer from the advice pipeline.
type AdviceOutput struct {
	Answer    string   `json:"answer"`
	Sources   []string `json:"sources,omitempty"`
	Generated bool     `json:"generated"` // false when the extractive fallback produced the answer
}

// SkillsGapInput represents a skills-gap request against a target role.
type SkillsGapInput struct {
	TargetRole string `json:"targetRole"`
}

// RoleSkills is the structured skill list suggested for a target role.
type RoleSkills struct {
	Role   string   `json:"role"`
	Skills []string `json:"skills"`
}

// SkillsGapOutput compares resume skills against a target role.
type SkillsGapOutput struct {
	TargetRole     string   `json:"targetRole"`
	CurrentSkills  []string `json:"currentSkills"`
	RequiredSkills []string `json:"requiredSkills"`
	MatchingSkills []string `json:"matchingSkills"`
	MissingSkills  []string `json:"missingSkills"`
	Advice         string   `json:"advice"`
}
