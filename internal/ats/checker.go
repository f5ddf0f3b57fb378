// Package ats evaluates resume text against a battery of applicant tracking
// system compatibility rules and produces a scored report.
package ats

import (
	"fmt"
	"math"
	"strings"

	"resumeforge/internal/types"
)

// Check runs the full rule battery over the resume text and returns the
// scored report. The function never panics out: an internal failure, or
// input too empty to evaluate, degrades to the basic keyword-overlap
// scorer instead.
func Check(resumeText, fileType, jobDescription string, keywords []string) (report types.ATSReport) {
	defer func() {
		if r := recover(); r != nil {
			report = fallbackReport(resumeText, jobDescription)
		}
	}()

	if strings.TrimSpace(resumeText) == "" {
		return fallbackReport(resumeText, jobDescription)
	}

	ctx := newRuleContext(resumeText, fileType, jobDescription, keywords)
	checks := make([]types.ATSFinding, 0, len(ruleTable))
	for _, r := range ruleTable {
		f := r.eval(ctx)
		f.ID = r.id
		f.Name = r.name
		checks = append(checks, f)
	}

	return buildReport(checks)
}

// buildReport derives every aggregate in the report from the findings list,
// so the counts can never disagree with the checks themselves.
func buildReport(checks []types.ATSFinding) types.ATSReport {
	passed := types.PassedCount(checks)
	score := int(math.Round(100 * float64(passed) / float64(len(checks))))
	report := types.ATSReport{
		Score:          score,
		Checks:         checks,
		CriticalIssues: types.CountBySeverity(checks, types.SeverityCritical),
		Warnings:       types.CountBySeverity(checks, types.SeverityWarning),
	}
	report.Summary = summarize(report, passed, len(checks))
	return report
}

func summarize(report types.ATSReport, passed, total int) string {
	counts := fmt.Sprintf("%d of %d checks passed", passed, total)
	switch {
	case report.Score >= 90:
		return fmt.Sprintf("Excellent ATS compatibility: %s.", counts)
	case report.Score >= 80:
		return fmt.Sprintf("Good ATS compatibility: %s. Address the remaining findings to stand out.", counts)
	case report.Score >= 70:
		return fmt.Sprintf("Fair ATS compatibility: %s. Several findings need attention.", counts)
	default:
		return fmt.Sprintf("Poor ATS compatibility: %s, including %d critical issues. Significant rework recommended.",
			counts, report.CriticalIssues)
	}
}

// fallbackReport is the degraded scoring path: a plain keyword overlap
// between the resume and the job description, with a single informational
// finding explaining the mode.
func fallbackReport(resumeText, jobDescription string) types.ATSReport {
	score := 0
	message := "Full rule evaluation unavailable; scored by keyword overlap"
	if strings.TrimSpace(resumeText) == "" {
		message = "Resume text is empty; nothing to evaluate"
	} else if strings.TrimSpace(jobDescription) != "" {
		terms := extractKeywords(jobDescription, 50)
		if len(terms) > 0 {
			tokens := tokenSet(resumeText)
			matched := 0
			for _, term := range terms {
				if containsTerm(tokens, term) {
					matched++
				}
			}
			score = int(math.Round(100 * float64(matched) / float64(len(terms))))
		}
	}

	checks := []types.ATSFinding{{
		ID:       "keyword_overlap",
		Name:     "Keyword overlap",
		Passed:   score > 0,
		Severity: types.SeverityInfo,
		Message:  message,
	}}
	return types.ATSReport{
		Score:          score,
		Checks:         checks,
		Summary:        fmt.Sprintf("Basic keyword score %d of 100. %s.", score, message),
		CriticalIssues: 0,
		Warnings:       0,
	}
}
