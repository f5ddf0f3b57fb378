// Package parser turns raw resume text into a structured document using
// layered line heuristics. Parse never fails: unrecognizable input simply
// yields a sparsely populated document.
package parser

import (
	"strings"

	"resumeforge/internal/types"
)

// Parse extracts a structured resume document from raw text. Fields the
// heuristics cannot recover are left at their zero values; the function
// never returns an error.
func Parse(rawText string) types.ResumeDocument {
	doc := types.ResumeDocument{}
	if strings.TrimSpace(rawText) == "" {
		return doc
	}

	scanned := scan(rawText)

	doc.Header = parseHeader(scanned.preamble)
	doc.JobTitle = guessJobTitle(scanned.preamble)
	doc.Summary = parseSummary(scanned.sections[secSummary])
	doc.Experience = parseExperience(scanned.sections[secExperience])
	doc.Education = parseEducation(scanned.sections[secEducation])
	doc.Skills = parseSkills(scanned.sections[secSkills])
	doc.Certifications = parseCertifications(scanned.sections[secCertifications])
	doc.Projects = parseProjects(scanned.sections[secProjects])
	doc.Volunteering = parseVolunteering(scanned.sections[secVolunteering])
	return doc
}

// parseHeader recovers the contact block. The first non-empty line is taken
// as the candidate name; the next few lines are joined and mined for the
// individual contact fields.
func parseHeader(preamble []string) types.ContactHeader {
	h := types.ContactHeader{}
	if len(preamble) == 0 {
		return h
	}
	h.Name = preamble[0]

	end := len(preamble)
	if end > 5 {
		end = 5
	}
	block := strings.Join(preamble[1:end], " | ")

	h.Email = emailPattern.FindString(block)
	h.Phone = findPhone(block)
	h.LinkedIn = linkedinPattern.FindString(block)

	// Remove what is already claimed so the website scan cannot re-match
	// the email's domain or the LinkedIn URL.
	scrubbed := block
	for _, claimed := range []string{h.Email, h.LinkedIn} {
		if claimed != "" {
			scrubbed = strings.ReplaceAll(scrubbed, claimed, " ")
		}
	}
	h.Website = websitePattern.FindString(scrubbed)
	h.Location = locationPattern.FindString(block)
	return h
}

// guessJobTitle scans the lines just under the name for a short line that
// carries a known title keyword and none of the contact-line markers.
func guessJobTitle(preamble []string) string {
	end := len(preamble)
	if end > 10 {
		end = 10
	}
	for i := 1; i < end; i++ {
		line := preamble[i]
		if len(line) >= 60 {
			continue
		}
		if strings.ContainsAny(line, "@•") || strings.Contains(strings.ToLower(line), "http") {
			continue
		}
		if yearPattern.MatchString(line) {
			continue
		}
		if titleKeywordPattern.MatchString(line) {
			return line
		}
	}
	return ""
}

// parseSummary keeps each non-empty content line as its own paragraph,
// dropping stray lines that merely repeat the section label.
func parseSummary(lines []string) []string {
	var out []string
	for _, line := range nonEmpty(lines) {
		if strings.Contains(strings.ToLower(line), "summary") {
			continue
		}
		out = append(out, line)
	}
	return out
}
