package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	AnalyzeResume string
	RewriteResume string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	AnalyzeResume string
	RewriteResume string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	AnalyzeResume: `You are an expert resume reviewer and career coach with a strict commitment to honesty and accuracy. Your core principles are:

- Base every observation on what the resume actually says
- NEVER invent achievements or assume experience not present in the text
- Provide honest, data-driven analysis
- Keep recommendations specific and actionable

Your expertise includes:
- Resume structure and content quality
- ATS (Applicant Tracking System) compatibility
- Hiring manager expectations across industries
- Clear, metric-driven accomplishment writing`,

	RewriteResume: `You are an expert resume writer with a strict commitment to honesty and accuracy. Your core principles are:

- NEVER invent, exaggerate, or misattribute any skills or experiences
- Every piece of information must be directly traceable to the source resume
- Maintain professional integrity while optimizing for relevance
- Keep the plain-text structure ATS-friendly: simple section headers, consistent bullets, no tables or decorative characters

Your expertise includes:
- Resume optimization and tailoring
- ATS-compatible formatting
- Strong action verbs and quantified achievements
- HR best practices and industry standards`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	AnalyzeResume: `Please perform a comprehensive analysis of the provided resume.

**Tasks:**

1. **Strengths**:
   List the concrete strengths of this resume: strong accomplishments, good structure, relevant skills, effective wording.

2. **Weaknesses**:
   List the weaknesses: vague statements, missing metrics, formatting problems, gaps a hiring manager would question.

3. **Recommendations**:
   Provide specific, actionable recommendations for improving this resume. Reference the actual content where possible.

4. **Summary**:
   Write a short overall assessment (2-4 sentences).

If a job description is provided, weigh every observation against it: highlight matching qualifications as strengths and missing requirements as weaknesses.

**Resume:**
-----
%s
-----

**Job Description (may be empty):**
-----
%s
-----`,

	RewriteResume: `Please rewrite the provided resume so it is better targeted at the provided job description.

**Rules:**

1. Only use skills and experiences *explicitly present in the original resume*. Do not invent, exaggerate, or misattribute anything.
2. Incorporate keywords from the job description only where the corresponding skill or experience actually exists in the original.
3. Strengthen bullet points with action verbs and keep any metrics that are already present.
4. Keep the output as plain text with simple section headers and consistent "-" or bullet markers, suitable for ATS parsing.
5. List every substantive change you made, one entry per change.

**Original Resume:**
-----
%s
-----

**Job Description:**
-----
%s
-----`,
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
