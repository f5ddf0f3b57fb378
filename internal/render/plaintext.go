// Package render serializes a structured resume document back into
// presentation formats: a canonical plain-text layout and a Word document.
package render

import (
	"strings"

	"resumeforge/internal/types"
)

// PlainText writes the document in the canonical single-column text layout.
// Section headers are upper-cased, entry header lines carry their dates
// behind a tab, and achievement lines use a "• " prefix. Empty sections are
// omitted entirely. The output is designed to survive a round trip through
// the parser.
func PlainText(doc types.ResumeDocument) string {
	var b strings.Builder

	writeHeader(&b, doc)
	writeSummary(&b, doc.Summary)
	writeExperience(&b, doc.Experience)
	writeEducation(&b, doc.Education)
	writeSkills(&b, doc.Skills)
	writeCertifications(&b, doc.Certifications)
	writeProjects(&b, doc.Projects)
	writeVolunteering(&b, doc.Volunteering)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// contactLine joins the populated contact fields with bullet separators.
func contactLine(h types.ContactHeader) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{h.Location, h.Phone, h.Email, h.LinkedIn, h.Website} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " • ")
}

func writeHeader(b *strings.Builder, doc types.ResumeDocument) {
	if doc.Header.Name != "" {
		b.WriteString(doc.Header.Name + "\n")
	}
	if line := contactLine(doc.Header); line != "" {
		b.WriteString(line + "\n")
	}
	if doc.JobTitle != "" {
		b.WriteString(doc.JobTitle + "\n")
	}
	b.WriteString("\n")
}

func sectionHeader(b *strings.Builder, name string) {
	b.WriteString(strings.ToUpper(name) + "\n")
}

// labelDates renders an entry header line, pushing dates behind a tab.
func labelDates(label, dates string) string {
	if dates == "" {
		return label
	}
	return label + "\t" + dates
}

// labelLocation joins a name with its location the way entry headers do.
func labelLocation(name, location string) string {
	if location == "" {
		return name
	}
	return name + " - " + location
}

func writeSummary(b *strings.Builder, summary []string) {
	if len(summary) == 0 {
		return
	}
	sectionHeader(b, "Summary")
	for _, p := range summary {
		b.WriteString(p + "\n")
	}
	b.WriteString("\n")
}

func writeExperience(b *strings.Builder, entries []types.ExperienceEntry) {
	if len(entries) == 0 {
		return
	}
	sectionHeader(b, "Experience")
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelDates(labelLocation(e.Company, e.Location), e.Dates) + "\n")
		b.WriteString(e.Title + "\n")
		for _, bullet := range e.Bullets {
			b.WriteString("• " + bullet + "\n")
		}
	}
	b.WriteString("\n")
}

func writeEducation(b *strings.Builder, entries []types.EducationEntry) {
	if len(entries) == 0 {
		return
	}
	sectionHeader(b, "Education")
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		if e.Degree != "" {
			b.WriteString(e.Degree + "\n")
		}
		b.WriteString(labelDates(labelLocation(e.Institution, e.Location), e.Dates) + "\n")
		for _, d := range e.Details {
			b.WriteString("• " + d + "\n")
		}
	}
	b.WriteString("\n")
}

func writeSkills(b *strings.Builder, g types.SkillsGroup) {
	if len(g.Technical) == 0 && len(g.Soft) == 0 && len(g.Other) == 0 {
		return
	}
	sectionHeader(b, "Skills")
	writeSkillGroup(b, "Technical:", g.Technical)
	writeSkillGroup(b, "Soft:", g.Soft)
	writeSkillGroup(b, "Other:", g.Other)
	b.WriteString("\n")
}

func writeSkillGroup(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(label + "\n")
	b.WriteString(strings.Join(items, ", ") + "\n")
}

func writeCertifications(b *strings.Builder, certs []types.Certification) {
	if len(certs) == 0 {
		return
	}
	sectionHeader(b, "Certifications")
	for _, c := range certs {
		line := c.Name
		if c.Issuer != "" {
			line += " - " + c.Issuer
		}
		b.WriteString(labelDates(line, c.Date) + "\n")
	}
	b.WriteString("\n")
}

func writeProjects(b *strings.Builder, projects []types.Project) {
	if len(projects) == 0 {
		return
	}
	sectionHeader(b, "Projects")
	for i, p := range projects {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelDates(p.Name, p.Dates) + "\n")
		if p.URL != "" {
			b.WriteString(p.URL + "\n")
		}
		if p.Description != "" {
			b.WriteString(p.Description + "\n")
		}
		for _, bullet := range p.Bullets {
			b.WriteString("• " + bullet + "\n")
		}
	}
	b.WriteString("\n")
}

func writeVolunteering(b *strings.Builder, entries []types.Volunteering) {
	if len(entries) == 0 {
		return
	}
	sectionHeader(b, "Volunteering")
	for i, v := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		line := v.Organization
		if v.Location != "" {
			line += " • " + v.Location
		}
		if v.Dates != "" {
			line += " • " + v.Dates
		}
		b.WriteString(line + "\n")
		b.WriteString(v.Role + "\n")
		for _, bullet := range v.Bullets {
			b.WriteString("• " + bullet + "\n")
		}
	}
	b.WriteString("\n")
}
