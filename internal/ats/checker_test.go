package ats

import (
	"reflect"
	"testing"

	"resumeforge/internal/types"
)

const cleanResume = `Jane Smith
Boston, MA • (555) 123-4567 • jane.smith@example.com

SUMMARY
Senior software engineer specializing in Python services and data platforms.
Focused on reliability, developer productivity and measurable outcomes.

EXPERIENCE
Acme Corp - Boston, MA	01/2020 - Present
Senior Software Engineer
• Led migration of 12 backend services to Kubernetes, cutting deploy time 40%
• Built SQL reporting pipelines processing 3 million rows every day
• Reduced infrastructure spend by $200K annually through capacity planning
• Mentored 4 junior engineers through a structured onboarding program

TechStart Inc - Boston, MA	06/2016 - 12/2019
Software Engineer
• Developed REST APIs in Python serving 2 million requests per day
• Improved query performance by 60% across the core reporting services
• Automated the release pipeline, cutting release time from 3 days to 2 hours
• Delivered the customer billing integration two weeks ahead of schedule

EDUCATION
BS Computer Science
State University - Boston, MA	2012 - 2016

SKILLS
Python, SQL, Kubernetes, Docker, Git, Communication, Leadership
`

const messyResume = `JS
══════════════════
Jane    Smith          Portfolio     Design
Creative    work       Graphics      Art direction
★ ★ ★ ★ ★
Column one text        Column two text       Column three
Education stuff        Work stuff            Misc stuff
`

const jobDescription = `Looking for a senior software engineer with strong Python and SQL
experience building data pipelines on Kubernetes.`

func TestCheckCleanResume(t *testing.T) {
	report := Check(cleanResume, "docx", jobDescription, []string{"Python", "SQL"})

	if report.Score < 80 {
		t.Errorf("score = %d, want >= 80\nsummary: %s\nchecks: %+v", report.Score, report.Summary, failedChecks(report))
	}
	if report.CriticalIssues != 0 {
		t.Errorf("critical issues = %d, want 0: %+v", report.CriticalIssues, failedChecks(report))
	}
	if len(report.Checks) != 15 {
		t.Errorf("checks = %d, want 15", len(report.Checks))
	}
}

func TestCheckMessyResume(t *testing.T) {
	report := Check(messyResume, "pdf", "", nil)

	if report.Score >= 60 {
		t.Errorf("score = %d, want < 60", report.Score)
	}
	if report.CriticalIssues < 1 {
		t.Errorf("critical issues = %d, want >= 1", report.CriticalIssues)
	}
}

func TestCheckEmptyInput(t *testing.T) {
	report := Check("", "txt", "", nil)
	if report.Score != 0 {
		t.Errorf("score = %d, want 0", report.Score)
	}
	if report.Summary == "" {
		t.Error("expected a summary on the degraded path")
	}
}

func TestCheckDeterministic(t *testing.T) {
	a := Check(cleanResume, "docx", jobDescription, []string{"Python", "SQL"})
	b := Check(cleanResume, "docx", jobDescription, []string{"Python", "SQL"})
	if !reflect.DeepEqual(a, b) {
		t.Error("identical input produced different reports")
	}
}

func TestReportCountsMatchChecks(t *testing.T) {
	report := Check(messyResume, "pdf", "", nil)

	if got := types.CountBySeverity(report.Checks, types.SeverityCritical); got != report.CriticalIssues {
		t.Errorf("criticalIssues = %d, derived = %d", report.CriticalIssues, got)
	}
	if got := types.CountBySeverity(report.Checks, types.SeverityWarning); got != report.Warnings {
		t.Errorf("warnings = %d, derived = %d", report.Warnings, got)
	}
	wantScore := 100 * types.PassedCount(report.Checks) / len(report.Checks)
	if report.Score < wantScore || report.Score > wantScore+1 {
		t.Errorf("score = %d, not derived from passed count", report.Score)
	}
}

func TestCheckRuleOrderStable(t *testing.T) {
	report := Check(cleanResume, "docx", "", nil)
	wantOrder := []string{
		"file_format", "section_headers", "contact_information",
		"date_formatting", "bullet_consistency", "formatting_elements",
		"keyword_density", "keyword_placement", "action_verbs",
		"quantified_achievements", "resume_length", "tables_columns",
		"special_characters", "jd_keyword_match", "summary_presence",
	}
	if len(report.Checks) != len(wantOrder) {
		t.Fatalf("checks = %d, want %d", len(report.Checks), len(wantOrder))
	}
	for i, want := range wantOrder {
		if report.Checks[i].ID != want {
			t.Errorf("check %d = %s, want %s", i, report.Checks[i].ID, want)
		}
	}
}

func TestFallbackKeywordOverlap(t *testing.T) {
	report := fallbackReport("Python engineer with Kubernetes experience", "Python Kubernetes deployment")
	if report.Score == 0 {
		t.Error("expected non-zero overlap score")
	}
	if report.Score > 100 {
		t.Errorf("score = %d out of range", report.Score)
	}

	empty := fallbackReport("", "Python Kubernetes deployment")
	if empty.Score != 0 {
		t.Errorf("empty resume score = %d, want 0", empty.Score)
	}
}

func failedChecks(report types.ATSReport) []types.ATSFinding {
	var failed []types.ATSFinding
	for _, c := range report.Checks {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}
