package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	Advise        string
	SuggestSkills string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	Advise        string
	SuggestSkills string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	Advise: `You are an experienced career coach and talent advisor. Your core principles are:

- Ground every statement in the resume excerpts you are given; never invent experience the candidate does not have
- Give concrete, actionable advice rather than generic encouragement
- Be honest about gaps and realistic about timelines
- Keep a supportive, professional tone

Your expertise includes:
- Career path planning and role transitions
- Skill development and learning roadmaps
- Resume positioning and personal branding
- Industry hiring expectations and market trends`,

	SuggestSkills: `You are an expert technical recruiter with deep knowledge of role requirements across the software industry. Your role is to:

- List the concrete skills a candidate needs for a given role
- Prefer widely recognized skill names over niche jargon
- Cover both core technical skills and the essential adjacent ones
- Keep the list focused: the ten to fifteen skills that matter most`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	Advise: `Please answer a career question for a candidate using only the resume excerpts below.

**Resume excerpts:**
-----
%s
-----

**Skills listed on the resume:**
-----
%s
-----

**Question:**
-----
%s
-----

Ground your answer in the excerpts and skills above. If the resume lacks the information needed for a complete answer, say so and advise accordingly.`,

	SuggestSkills: `List the skills required to work as a %s.

Return the role name and a focused list of the most important skills, using widely recognized skill names (for example "Kubernetes", not "container orchestration tooling").`,
}

// PromptConfig holds configuration for customizable prompts
type PromptConfig struct {
	SystemPrompts SystemPrompts `json:"systemPrompts"`
	UserPrompts   UserPrompts   `json:"userPrompts"`
}

// GetDefaultPromptConfig returns the default prompt configuration
func GetDefaultPromptConfig() PromptConfig {
	return PromptConfig{
		SystemPrompts: DefaultSystemPrompts,
		UserPrompts:   DefaultUserPrompts,
	}
}
