package resume

import (
	"fmt"

	"careerlens/internal/types"
)

// Thresholds below which AnalyzeQuality emits a recommendation.
const (
	minCompletenessScore = 75
	minSkillCount        = 5
	minProjectCount      = 2
)

// AnalyzeQuality computes a completeness report for a parsed resume. It is a
// pure function of its input and always produces a result.
func AnalyzeQuality(parsed types.ParsedResume) types.QualityAnalysis {
	analysis := types.QualityAnalysis{
		Strengths:       []string{},
		MissingSections: []string{},
		Recommendations: []string{},
	}

	const totalSections = 4
	found := 0

	if len(parsed.Education) > 0 {
		found++
		analysis.Strengths = append(analysis.Strengths, "Education information found")
	} else {
		analysis.MissingSections = append(analysis.MissingSections, "Education")
	}

	if len(parsed.Experience) > 0 {
		found++
		analysis.Strengths = append(analysis.Strengths, "Work experience found")
	} else {
		analysis.MissingSections = append(analysis.MissingSections, "Experience")
	}

	if len(parsed.Projects) > 0 {
		found++
		analysis.Strengths = append(analysis.Strengths, "Project portfolio found")
	} else {
		analysis.MissingSections = append(analysis.MissingSections, "Projects")
	}

	if len(parsed.Skills) > 0 {
		found++
		analysis.Strengths = append(analysis.Strengths, fmt.Sprintf("Skills found (%d skills)", len(parsed.Skills)))
	} else {
		analysis.MissingSections = append(analysis.MissingSections, "Skills")
	}

	analysis.CompletenessScore = found * 100 / totalSections

	if analysis.CompletenessScore < minCompletenessScore {
		analysis.Recommendations = append(analysis.Recommendations, "Consider adding missing sections to improve resume completeness")
	}
	if len(parsed.Skills) < minSkillCount {
		analysis.Recommendations = append(analysis.Recommendations, "Add more technical skills to showcase your capabilities")
	}
	if len(parsed.Projects) < minProjectCount {
		analysis.Recommendations = append(analysis.Recommendations, "Include more projects to demonstrate practical experience")
	}
	return analysis
}
