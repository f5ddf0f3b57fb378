package types

// ContactHeader holds the contact block extracted from the top of a resume.
// Name is always the first non-empty line of the input; every other field is
// best-effort and may be empty.
type ContactHeader struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ExperienceEntry represents one position. Entries without both a company and
// a title are discarded by the parser rather than stored half-filled.
type ExperienceEntry struct {
	Company  string   `json:"company"`
	Title    string   `json:"title"`
	Location string   `json:"location,omitempty"`
	Dates    string   `json:"dates,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
}

// EducationEntry represents one school. Institution is required; everything
// else is optional.
type EducationEntry struct {
	Degree      string   `json:"degree,omitempty"`
	Institution string   `json:"institution"`
	Location    string   `json:"location,omitempty"`
	Dates       string   `json:"dates,omitempty"`
	Details     []string `json:"details,omitempty"`
}

// SkillsGroup buckets skills into mutually exclusive categories. A skill lands
// in at most one list, with Other as the fallback.
type SkillsGroup struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
	Other     []string `json:"other,omitempty"`
}

// Certification represents one certification line.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Project represents one project entry.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Dates       string   `json:"dates,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
}

// Volunteering represents one volunteering entry. Role defaults to
// "Volunteer" when the text never yields one.
type Volunteering struct {
	Organization string   `json:"organization"`
	Role         string   `json:"role"`
	Location     string   `json:"location,omitempty"`
	Dates        string   `json:"dates,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
}

// ResumeDocument is the normalized in-memory representation of a resume.
// It is built fresh on every parse and treated as immutable input by the
// serializers.
type ResumeDocument struct {
	Header         ContactHeader     `json:"header"`
	JobTitle       string            `json:"jobTitle,omitempty"`
	Summary        []string          `json:"summary,omitempty"`
	Experience     []ExperienceEntry `json:"experience,omitempty"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Skills         SkillsGroup       `json:"skills"`
	Certifications []Certification   `json:"certifications,omitempty"`
	Projects       []Project         `json:"projects,omitempty"`
	Volunteering   []Volunteering    `json:"volunteering,omitempty"`
}

// Severity classifies how badly a failed ATS check hurts parseability.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// ATSFinding is one rule's pass/fail result within an ATS report.
type ATSFinding struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Passed         bool     `json:"passed"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// ATSReport is the result of running the full ATS rule battery.
// CriticalIssues and Warnings are derived from Checks at construction time and
// must never be set independently; use CountBySeverity to recompute.
type ATSReport struct {
	Score          int          `json:"score"`
	Checks         []ATSFinding `json:"checks"`
	Summary        string       `json:"summary"`
	CriticalIssues int          `json:"criticalIssues"`
	Warnings       int          `json:"warnings"`
}

// CountBySeverity returns the number of failed checks carrying the given
// severity. Informational failures are countable but feed neither headline
// counter.
func CountBySeverity(checks []ATSFinding, sev Severity) int {
	n := 0
	for _, c := range checks {
		if !c.Passed && c.Severity == sev {
			n++
		}
	}
	return n
}

// PassedCount returns how many checks passed.
func PassedCount(checks []ATSFinding) int {
	n := 0
	for _, c := range checks {
		if c.Passed {
			n++
		}
	}
	return n
}

// AnalyzeResumeInput is the input for the LLM-backed resume analysis.
type AnalyzeResumeInput struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription,omitempty"`
}

// AnalyzeResumeOutput is the structured result of the LLM analysis. The ATS
// report attached by callers comes from the deterministic checker, never from
// the model.
type AnalyzeResumeOutput struct {
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	Summary         string   `json:"summary"`
}

// RewriteResumeInput is the input for the LLM-backed rewrite.
type RewriteResumeInput struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
}

// RewriteResumeOutput carries the rewritten text plus the model's change log.
type RewriteResumeOutput struct {
	RewrittenResume string   `json:"rewrittenResume"`
	Changes         []string `json:"changes"`
}
