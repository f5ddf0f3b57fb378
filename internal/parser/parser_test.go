package parser

import (
	"strings"
	"testing"
)

const fullResume = `Jane Smith
Boston, MA • (555) 123-4567 • jane.smith@example.com • linkedin.com/in/janesmith • janesmith.dev
Senior Software Engineer

SUMMARY
Backend engineer with eight years of experience building distributed systems.
Focused on reliability and developer tooling.

EXPERIENCE
Acme Corp - Boston, MA	01/2020 - Present
Senior Software Engineer
• Led migration of 12 services to Kubernetes, cutting deploy time 40%
• Mentored 4 junior engineers
• Reduced infrastructure spend by $200K annually
• Designed the internal service mesh rollout

TechStart Inc
Software Engineer	06/2016 - 12/2019
• Built REST APIs in Go serving 2M requests per day
• Improved test coverage from 40% to 85%
• Automated the release pipeline with Jenkins
• Shipped the customer billing integration

EDUCATION
BS Computer Science
State University - Boston, MA	2012 - 2016
• GPA 3.8

SKILLS
Go, Python, SQL, Kubernetes, Communication, Leadership, Chess

CERTIFICATIONS
AWS Certified Solutions Architect - Amazon Web Services
Certified Scrum Master 03/2021

PROJECTS
TaskFlow https://github.com/jane/taskflow
Open-source task automation engine
• 500+ GitHub stars

VOLUNTEERING
Code for Boston • Boston, MA • 2019 - Present
Mentor
• Taught weekly intro-to-programming workshops
`

func TestParseEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty string", in: ""},
		{name: "whitespace only", in: " \n\t\n  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.in)
			if doc.Header.Name != "" {
				t.Errorf("expected empty name, got %q", doc.Header.Name)
			}
			if len(doc.Experience) != 0 || len(doc.Education) != 0 || len(doc.Summary) != 0 {
				t.Error("expected zero-value document")
			}
		})
	}
}

func TestParseHeader(t *testing.T) {
	doc := Parse(fullResume)

	if doc.Header.Name != "Jane Smith" {
		t.Errorf("name = %q, want %q", doc.Header.Name, "Jane Smith")
	}
	if doc.Header.Email != "jane.smith@example.com" {
		t.Errorf("email = %q, want %q", doc.Header.Email, "jane.smith@example.com")
	}
	if doc.Header.Phone != "(555) 123-4567" {
		t.Errorf("phone = %q, want %q", doc.Header.Phone, "(555) 123-4567")
	}
	if doc.Header.LinkedIn != "linkedin.com/in/janesmith" {
		t.Errorf("linkedin = %q, want %q", doc.Header.LinkedIn, "linkedin.com/in/janesmith")
	}
	if doc.Header.Website != "janesmith.dev" {
		t.Errorf("website = %q, want %q", doc.Header.Website, "janesmith.dev")
	}
	if doc.Header.Location != "Boston, MA" {
		t.Errorf("location = %q, want %q", doc.Header.Location, "Boston, MA")
	}
	if doc.JobTitle != "Senior Software Engineer" {
		t.Errorf("job title = %q, want %q", doc.JobTitle, "Senior Software Engineer")
	}
}

func TestParseSummarySection(t *testing.T) {
	doc := Parse(fullResume)
	if len(doc.Summary) != 2 {
		t.Fatalf("summary paragraphs = %d, want 2", len(doc.Summary))
	}
	if !strings.HasPrefix(doc.Summary[0], "Backend engineer") {
		t.Errorf("unexpected first paragraph: %q", doc.Summary[0])
	}
}

func TestParseFullResumeSections(t *testing.T) {
	doc := Parse(fullResume)

	if len(doc.Experience) != 2 {
		t.Fatalf("experience entries = %d, want 2", len(doc.Experience))
	}
	first := doc.Experience[0]
	if first.Company != "Acme Corp" || first.Location != "Boston, MA" {
		t.Errorf("first entry company/location = %q/%q", first.Company, first.Location)
	}
	if first.Title != "Senior Software Engineer" {
		t.Errorf("first entry title = %q", first.Title)
	}
	if first.Dates != "01/2020 - Present" {
		t.Errorf("first entry dates = %q", first.Dates)
	}
	if len(first.Bullets) != 4 {
		t.Errorf("first entry bullets = %d, want 4", len(first.Bullets))
	}
	second := doc.Experience[1]
	if second.Company != "TechStart Inc" || second.Title != "Software Engineer" {
		t.Errorf("second entry = %q/%q", second.Company, second.Title)
	}
	if second.Dates != "06/2016 - 12/2019" {
		t.Errorf("second entry dates = %q", second.Dates)
	}
	if len(second.Bullets) != 4 {
		t.Errorf("second entry bullets = %d, want 4", len(second.Bullets))
	}

	if len(doc.Education) != 1 {
		t.Fatalf("education entries = %d, want 1", len(doc.Education))
	}
	edu := doc.Education[0]
	if edu.Degree != "BS Computer Science" || edu.Institution != "State University" {
		t.Errorf("education = %q/%q", edu.Degree, edu.Institution)
	}
	if edu.Dates != "2012 - 2016" {
		t.Errorf("education dates = %q", edu.Dates)
	}
	if len(edu.Details) != 1 || edu.Details[0] != "GPA 3.8" {
		t.Errorf("education details = %v", edu.Details)
	}

	if len(doc.Skills.Technical) == 0 || len(doc.Skills.Soft) == 0 || len(doc.Skills.Other) == 0 {
		t.Errorf("skills buckets = %v", doc.Skills)
	}
	if len(doc.Certifications) != 2 {
		t.Errorf("certifications = %d, want 2", len(doc.Certifications))
	}
	if len(doc.Projects) != 1 {
		t.Fatalf("projects = %d, want 1", len(doc.Projects))
	}
	if doc.Projects[0].Name != "TaskFlow" || doc.Projects[0].URL == "" {
		t.Errorf("project = %+v", doc.Projects[0])
	}
	if len(doc.Volunteering) != 1 {
		t.Fatalf("volunteering = %d, want 1", len(doc.Volunteering))
	}
	if doc.Volunteering[0].Organization != "Code for Boston" || doc.Volunteering[0].Role != "Mentor" {
		t.Errorf("volunteering = %+v", doc.Volunteering[0])
	}
}

func TestParseUnstructuredText(t *testing.T) {
	doc := Parse("John Doe\njohn@example.com\nSome free-form text with no section headers at all.\nMore prose follows here.")
	if doc.Header.Name != "John Doe" {
		t.Errorf("name = %q", doc.Header.Name)
	}
	if doc.Header.Email != "john@example.com" {
		t.Errorf("email = %q", doc.Header.Email)
	}
	if len(doc.Experience) != 0 || len(doc.Education) != 0 {
		t.Error("expected no entries without section headers")
	}
}

func TestParseReorderedSections(t *testing.T) {
	text := `Jane Smith
jane@example.com

SKILLS
Go, Python

EXPERIENCE
Acme Corp
Engineer	01/2020 - Present
• Did things
`
	doc := Parse(text)
	if len(doc.Skills.Technical) != 2 {
		t.Errorf("technical skills = %v", doc.Skills.Technical)
	}
	if len(doc.Experience) != 1 {
		t.Errorf("experience = %d, want 1", len(doc.Experience))
	}
}

func TestParseBracketedHeaders(t *testing.T) {
	text := `Jane Smith

[EXPERIENCE]
Acme Corp
Engineer	01/2020 - 02/2021
• Shipped features
`
	doc := Parse(text)
	if len(doc.Experience) != 1 {
		t.Fatalf("experience = %d, want 1", len(doc.Experience))
	}
	if doc.Experience[0].Dates != "01/2020 - 02/2021" {
		t.Errorf("dates = %q", doc.Experience[0].Dates)
	}
}
