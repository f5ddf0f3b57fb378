package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumeforge/internal/types"
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
	registry.RegisterFormatter("text", "ATSReport", &ATSReportTextFormatter{})
	registry.RegisterFormatter("markdown", "ATSReport", &ATSReportMarkdownFormatter{})
	registry.RegisterFormatter("text", "ResumeDocument", &ResumeDocumentTextFormatter{})
	registry.RegisterFormatter("markdown", "ResumeDocument", &ResumeDocumentMarkdownFormatter{})
	registry.RegisterFormatter("text", "AnalyzeResumeOutput", &AnalyzeTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalyzeResumeOutput", &AnalyzeMarkdownFormatter{})
	registry.RegisterFormatter("text", "RewriteResumeOutput", &RewriteTextFormatter{})
	registry.RegisterFormatter("markdown", "RewriteResumeOutput", &RewriteMarkdownFormatter{})

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
	case types.ATSReport:
		return "ATSReport"
	case types.ResumeDocument:
		return "ResumeDocument"
	case types.AnalyzeResumeOutput:
		return "AnalyzeResumeOutput"
	case types.RewriteResumeOutput:
		return "RewriteResumeOutput"
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

// ATSReportTextFormatter handles text formatting for ATS compatibility reports
type ATSReportTextFormatter struct{}

func (atf *ATSReportTextFormatter) Format(data any) (string, error) {
	report, ok := data.(types.ATSReport)
	if !ok {
		return "", fmt.Errorf("expected ATSReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPATIBILITY REPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %d/100\n", report.Score))
	output.WriteString(fmt.Sprintf("Critical Issues: %d\n", report.CriticalIssues))
	output.WriteString(fmt.Sprintf("Warnings: %d\n\n", report.Warnings))
	output.WriteString(report.Summary)
	output.WriteString("\n\n=== CHECKS ===\n\n")

	for i, check := range report.Checks {
		status := "PASS"
		if !check.Passed {
			status = fmt.Sprintf("FAIL (%s)", check.Severity)
		}
		output.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, check.Name, status))
		output.WriteString("   ")
		output.WriteString(check.Message)
		output.WriteString("\n")
		if !check.Passed && check.Recommendation != "" {
			output.WriteString("   Recommendation: ")
			output.WriteString(check.Recommendation)
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (atf *ATSReportTextFormatter) SupportedType() string {
	return "ATSReport"
}

// ATSReportMarkdownFormatter handles markdown formatting for ATS compatibility reports
type ATSReportMarkdownFormatter struct{}

func (amf *ATSReportMarkdownFormatter) Format(data any) (string, error) {
	report, ok := data.(types.ATSReport)
	if !ok {
		return "", fmt.Errorf("expected ATSReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compatibility Report\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", report.Score))
	output.WriteString(fmt.Sprintf("**Critical Issues:** %d | **Warnings:** %d\n\n", report.CriticalIssues, report.Warnings))
	output.WriteString(report.Summary)
	output.WriteString("\n\n## Checks\n\n")
	output.WriteString("| Check | Result | Severity |\n")
	output.WriteString("|-------|--------|----------|\n")
	for _, check := range report.Checks {
		result := "pass"
		if !check.Passed {
			result = "fail"
		}
		output.WriteString(fmt.Sprintf("| %s | %s | %s |\n", check.Name, result, check.Severity))
	}
	output.WriteString("\n")

	failed := false
	for _, check := range report.Checks {
		if !check.Passed {
			failed = true
			break
		}
	}
	if failed {
		output.WriteString("## Issues\n\n")
		for _, check := range report.Checks {
			if check.Passed {
				continue
			}
			output.WriteString(fmt.Sprintf("### %s\n\n", check.Name))
			output.WriteString(check.Message)
			output.WriteString("\n\n")
			if check.Recommendation != "" {
				output.WriteString("**Recommendation:** ")
				output.WriteString(check.Recommendation)
				output.WriteString("\n\n")
			}
		}
	}

	return output.String(), nil
}

func (amf *ATSReportMarkdownFormatter) SupportedType() string {
	return "ATSReport"
}

// ResumeDocumentTextFormatter summarizes the parsed structure of a resume
type ResumeDocumentTextFormatter struct{}

func (rtf *ResumeDocumentTextFormatter) Format(data any) (string, error) {
	doc, ok := data.(types.ResumeDocument)
	if !ok {
		return "", fmt.Errorf("expected ResumeDocument, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== PARSED RESUME ===\n\n")
	output.WriteString(fmt.Sprintf("Name: %s\n", doc.Header.Name))
	if doc.JobTitle != "" {
		output.WriteString(fmt.Sprintf("Title: %s\n", doc.JobTitle))
	}
	if doc.Header.Email != "" {
		output.WriteString(fmt.Sprintf("Email: %s\n", doc.Header.Email))
	}
	if doc.Header.Phone != "" {
		output.WriteString(fmt.Sprintf("Phone: %s\n", doc.Header.Phone))
	}
	if doc.Header.Location != "" {
		output.WriteString(fmt.Sprintf("Location: %s\n", doc.Header.Location))
	}
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("Summary lines: %d\n", len(doc.Summary)))
	output.WriteString(fmt.Sprintf("Experience entries: %d\n", len(doc.Experience)))
	output.WriteString(fmt.Sprintf("Education entries: %d\n", len(doc.Education)))
	skillCount := len(doc.Skills.Technical) + len(doc.Skills.Soft) + len(doc.Skills.Other)
	output.WriteString(fmt.Sprintf("Skills: %d\n", skillCount))
	output.WriteString(fmt.Sprintf("Certifications: %d\n", len(doc.Certifications)))
	output.WriteString(fmt.Sprintf("Projects: %d\n", len(doc.Projects)))
	output.WriteString(fmt.Sprintf("Volunteering entries: %d\n", len(doc.Volunteering)))

	if len(doc.Experience) > 0 {
		output.WriteString("\n=== EXPERIENCE ===\n\n")
		for _, entry := range doc.Experience {
			output.WriteString(fmt.Sprintf("%s at %s", entry.Title, entry.Company))
			if entry.Dates != "" {
				output.WriteString(fmt.Sprintf(" (%s)", entry.Dates))
			}
			output.WriteString(fmt.Sprintf(" - %d bullets\n", len(entry.Bullets)))
		}
	}

	return output.String(), nil
}

func (rtf *ResumeDocumentTextFormatter) SupportedType() string {
	return "ResumeDocument"
}

// ResumeDocumentMarkdownFormatter handles markdown formatting for parsed resumes
type ResumeDocumentMarkdownFormatter struct{}

func (rmf *ResumeDocumentMarkdownFormatter) Format(data any) (string, error) {
	doc, ok := data.(types.ResumeDocument)
	if !ok {
		return "", fmt.Errorf("expected ResumeDocument, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("# %s\n\n", doc.Header.Name))
	if doc.JobTitle != "" {
		output.WriteString(fmt.Sprintf("**%s**\n\n", doc.JobTitle))
	}

	var contact []string
	if doc.Header.Location != "" {
		contact = append(contact, doc.Header.Location)
	}
	if doc.Header.Phone != "" {
		contact = append(contact, doc.Header.Phone)
	}
	if doc.Header.Email != "" {
		contact = append(contact, doc.Header.Email)
	}
	if doc.Header.LinkedIn != "" {
		contact = append(contact, doc.Header.LinkedIn)
	}
	if doc.Header.Website != "" {
		contact = append(contact, doc.Header.Website)
	}
	if len(contact) > 0 {
		output.WriteString(strings.Join(contact, " | "))
		output.WriteString("\n\n")
	}

	if len(doc.Summary) > 0 {
		output.WriteString("## Summary\n\n")
		output.WriteString(strings.Join(doc.Summary, " "))
		output.WriteString("\n\n")
	}

	if len(doc.Experience) > 0 {
		output.WriteString("## Experience\n\n")
		for _, entry := range doc.Experience {
			output.WriteString(fmt.Sprintf("### %s, %s\n\n", entry.Title, entry.Company))
			var meta []string
			if entry.Location != "" {
				meta = append(meta, entry.Location)
			}
			if entry.Dates != "" {
				meta = append(meta, entry.Dates)
			}
			if len(meta) > 0 {
				output.WriteString(fmt.Sprintf("*%s*\n\n", strings.Join(meta, " | ")))
			}
			for _, bullet := range entry.Bullets {
				output.WriteString(fmt.Sprintf("- %s\n", bullet))
			}
			if len(entry.Bullets) > 0 {
				output.WriteString("\n")
			}
		}
	}

	if len(doc.Education) > 0 {
		output.WriteString("## Education\n\n")
		for _, entry := range doc.Education {
			if entry.Degree != "" {
				output.WriteString(fmt.Sprintf("- **%s**, %s", entry.Degree, entry.Institution))
			} else {
				output.WriteString(fmt.Sprintf("- %s", entry.Institution))
			}
			if entry.Dates != "" {
				output.WriteString(fmt.Sprintf(" (%s)", entry.Dates))
			}
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	writeSkillList := func(label string, skills []string) {
		if len(skills) > 0 {
			output.WriteString(fmt.Sprintf("- **%s:** %s\n", label, strings.Join(skills, ", ")))
		}
	}
	if len(doc.Skills.Technical)+len(doc.Skills.Soft)+len(doc.Skills.Other) > 0 {
		output.WriteString("## Skills\n\n")
		writeSkillList("Technical", doc.Skills.Technical)
		writeSkillList("Soft", doc.Skills.Soft)
		writeSkillList("Other", doc.Skills.Other)
		output.WriteString("\n")
	}

	if len(doc.Certifications) > 0 {
		output.WriteString("## Certifications\n\n")
		for _, cert := range doc.Certifications {
			output.WriteString(fmt.Sprintf("- %s", cert.Name))
			if cert.Issuer != "" {
				output.WriteString(fmt.Sprintf(", %s", cert.Issuer))
			}
			if cert.Date != "" {
				output.WriteString(fmt.Sprintf(" (%s)", cert.Date))
			}
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	if len(doc.Projects) > 0 {
		output.WriteString("## Projects\n\n")
		for _, project := range doc.Projects {
			output.WriteString(fmt.Sprintf("### %s\n\n", project.Name))
			if project.Description != "" {
				output.WriteString(project.Description)
				output.WriteString("\n\n")
			}
			for _, bullet := range project.Bullets {
				output.WriteString(fmt.Sprintf("- %s\n", bullet))
			}
			if len(project.Bullets) > 0 {
				output.WriteString("\n")
			}
		}
	}

	return output.String(), nil
}

func (rmf *ResumeDocumentMarkdownFormatter) SupportedType() string {
	return "ResumeDocument"
}

// AnalyzeTextFormatter handles text formatting for analysis results
type AnalyzeTextFormatter struct{}

func (atf *AnalyzeTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalyzeResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected AnalyzeResumeOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME ANALYSIS ===\n\n")
	output.WriteString("Summary:\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	if len(result.Strengths) > 0 {
		output.WriteString("Strengths:\n")
		for _, s := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", s))
		}
		output.WriteString("\n")
	}

	if len(result.Weaknesses) > 0 {
		output.WriteString("Weaknesses:\n")
		for _, w := range result.Weaknesses {
			output.WriteString(fmt.Sprintf("- %s\n", w))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("Recommendations:\n")
		for i, r := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, r))
		}
	}

	return output.String(), nil
}

func (atf *AnalyzeTextFormatter) SupportedType() string {
	return "AnalyzeResumeOutput"
}

// AnalyzeMarkdownFormatter handles markdown formatting for analysis results
type AnalyzeMarkdownFormatter struct{}

func (amf *AnalyzeMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalyzeResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected AnalyzeResumeOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")
	output.WriteString("## Summary\n\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	if len(result.Strengths) > 0 {
		output.WriteString("## Strengths\n\n")
		for _, s := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", s))
		}
		output.WriteString("\n")
	}

	if len(result.Weaknesses) > 0 {
		output.WriteString("## Weaknesses\n\n")
		for _, w := range result.Weaknesses {
			output.WriteString(fmt.Sprintf("- %s\n", w))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, r := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, r))
		}
	}

	return output.String(), nil
}

func (amf *AnalyzeMarkdownFormatter) SupportedType() string {
	return "AnalyzeResumeOutput"
}

// RewriteTextFormatter handles text formatting for rewrite results
type RewriteTextFormatter struct{}

func (rtf *RewriteTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.RewriteResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected RewriteResumeOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== REWRITTEN RESUME ===\n\n")
	output.WriteString(result.RewrittenResume)
	output.WriteString("\n")

	if len(result.Changes) > 0 {
		output.WriteString("\n=== CHANGES ===\n\n")
		for i, change := range result.Changes {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, change))
		}
	}

	return output.String(), nil
}

func (rtf *RewriteTextFormatter) SupportedType() string {
	return "RewriteResumeOutput"
}

// RewriteMarkdownFormatter handles markdown formatting for rewrite results
type RewriteMarkdownFormatter struct{}

func (rmf *RewriteMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.RewriteResumeOutput)
	if !ok {
		return "", fmt.Errorf("expected RewriteResumeOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Rewritten Resume\n\n")
	output.WriteString(result.RewrittenResume)
	output.WriteString("\n")

	if len(result.Changes) > 0 {
		output.WriteString("\n## Changes\n\n")
		for i, change := range result.Changes {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, change))
		}
	}

	return output.String(), nil
}

func (rmf *RewriteMarkdownFormatter) SupportedType() string {
	return "RewriteResumeOutput"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
