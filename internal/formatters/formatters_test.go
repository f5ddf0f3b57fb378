package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"resumeforge/internal/types"
)

func sampleReport() types.ATSReport {
	return types.ATSReport{
		Score: 87,
		Checks: []types.ATSFinding{
			{ID: "file_format", Name: "File Format", Passed: true, Severity: types.SeverityCritical, Message: "Format is ATS-friendly"},
			{ID: "resume_length", Name: "Resume Length", Passed: false, Severity: types.SeverityWarning,
				Message: "Resume is very short", Recommendation: "Aim for 400-800 words"},
		},
		Summary:        "Good ATS compatibility with minor issues.",
		CriticalIssues: 0,
		Warnings:       1,
	}
}

func TestFormatATSReportText(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleReport(), "text")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	for _, want := range []string{
		"Score: 87/100",
		"Warnings: 1",
		"File Format: PASS",
		"Resume Length: FAIL (warning)",
		"Recommendation: Aim for 400-800 words",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q", want)
		}
	}
}

func TestFormatATSReportMarkdown(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleReport(), "markdown")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	if !strings.Contains(out, "# ATS Compatibility Report") {
		t.Error("markdown output missing title")
	}
	if !strings.Contains(out, "| Resume Length | fail | warning |") {
		t.Error("markdown output missing check table row")
	}
	if !strings.Contains(out, "### Resume Length") {
		t.Error("markdown output missing issue section for failed check")
	}
}

func TestFormatJSONFallback(t *testing.T) {
	report := sampleReport()
	out, err := GlobalRegistry.Format(report, "json")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	var decoded types.ATSReport
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("JSON output does not round-trip: %v", err)
	}
	if decoded.Score != report.Score {
		t.Errorf("expected score %d, got %d", report.Score, decoded.Score)
	}
}

func TestFormatResumeDocumentMarkdown(t *testing.T) {
	doc := types.ResumeDocument{
		Header: types.ContactHeader{
			Name:  "Jane Smith",
			Email: "jane@example.com",
		},
		JobTitle: "Software Engineer",
		Experience: []types.ExperienceEntry{
			{Company: "Acme Corp", Title: "Engineer", Dates: "2020 - Present", Bullets: []string{"Built things"}},
		},
		Skills: types.SkillsGroup{Technical: []string{"Go", "SQL"}},
	}

	out, err := GlobalRegistry.Format(doc, "markdown")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	for _, want := range []string{
		"# Jane Smith",
		"**Software Engineer**",
		"### Engineer, Acme Corp",
		"- Built things",
		"**Technical:** Go, SQL",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestFormatAnalyzeOutputText(t *testing.T) {
	result := types.AnalyzeResumeOutput{
		Strengths:       []string{"Strong action verbs"},
		Weaknesses:      []string{"No metrics"},
		Recommendations: []string{"Quantify achievements"},
		Summary:         "Solid resume overall.",
	}

	out, err := GlobalRegistry.Format(result, "text")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	for _, want := range []string{
		"Solid resume overall.",
		"- Strong action verbs",
		"- No metrics",
		"1. Quantify achievements",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q", want)
		}
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	_, err := GlobalRegistry.Format(sampleReport(), "yaml")
	if err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := GlobalRegistry.GetSupportedFormats()

	want := map[string]bool{"json": false, "text": false, "markdown": false}
	for _, f := range formats {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, seen := range want {
		if !seen {
			t.Errorf("expected %s in supported formats, got %v", f, formats)
		}
	}
}
