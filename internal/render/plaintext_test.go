package render

import (
	"strings"
	"testing"

	"resumeforge/internal/parser"
	"resumeforge/internal/types"
)

func sampleDocument() types.ResumeDocument {
	return types.ResumeDocument{
		Header: types.ContactHeader{
			Name:     "Jane Smith",
			Location: "Boston, MA",
			Phone:    "(555) 123-4567",
			Email:    "jane.smith@example.com",
			LinkedIn: "linkedin.com/in/janesmith",
			Website:  "janesmith.dev",
		},
		JobTitle: "Senior Software Engineer",
		Summary:  []string{"Backend engineer with eight years of experience."},
		Experience: []types.ExperienceEntry{
			{
				Company:  "Acme Corp",
				Title:    "Senior Software Engineer",
				Location: "Boston, MA",
				Dates:    "01/2020 - Present",
				Bullets:  []string{"Led migration of 12 services", "Mentored 4 engineers"},
			},
			{
				Company: "TechStart Inc",
				Title:   "Software Engineer",
				Dates:   "06/2016 - 12/2019",
				Bullets: []string{"Built REST APIs in Go"},
			},
		},
		Education: []types.EducationEntry{
			{
				Degree:      "BS Computer Science",
				Institution: "State University",
				Location:    "Boston, MA",
				Dates:       "2012 - 2016",
				Details:     []string{"GPA 3.8"},
			},
		},
		Skills: types.SkillsGroup{
			Technical: []string{"Go", "Python", "SQL"},
			Soft:      []string{"Communication"},
			Other:     []string{"Chess"},
		},
		Certifications: []types.Certification{
			{Name: "AWS Certified Solutions Architect", Issuer: "Amazon Web Services", Date: "03/2021"},
		},
		Projects: []types.Project{
			{Name: "TaskFlow", URL: "https://github.com/jane/taskflow", Description: "Task automation engine", Bullets: []string{"500+ stars"}},
		},
		Volunteering: []types.Volunteering{
			{Organization: "Code for Boston", Role: "Mentor", Location: "Boston, MA", Dates: "2019 - Present", Bullets: []string{"Taught workshops"}},
		},
	}
}

func TestPlainTextLayout(t *testing.T) {
	out := PlainText(sampleDocument())

	for _, want := range []string{
		"Jane Smith\n",
		"Boston, MA • (555) 123-4567 • jane.smith@example.com • linkedin.com/in/janesmith • janesmith.dev\n",
		"EXPERIENCE\n",
		"Acme Corp - Boston, MA\t01/2020 - Present\n",
		"• Led migration of 12 services\n",
		"EDUCATION\n",
		"SKILLS\n",
		"CERTIFICATIONS\n",
		"AWS Certified Solutions Architect - Amazon Web Services\t03/2021\n",
		"PROJECTS\n",
		"VOLUNTEERING\n",
		"Code for Boston • Boston, MA • 2019 - Present\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestPlainTextOmitsEmptySections(t *testing.T) {
	doc := types.ResumeDocument{Header: types.ContactHeader{Name: "Jane Smith"}}
	out := PlainText(doc)
	for _, header := range []string{"SUMMARY", "EXPERIENCE", "EDUCATION", "SKILLS", "CERTIFICATIONS", "PROJECTS", "VOLUNTEERING"} {
		if strings.Contains(out, header) {
			t.Errorf("empty section %s should be omitted", header)
		}
	}
}

func TestPlainTextRoundTrip(t *testing.T) {
	original := sampleDocument()
	reparsed := parser.Parse(PlainText(original))

	if reparsed.Header.Name != original.Header.Name {
		t.Errorf("name = %q, want %q", reparsed.Header.Name, original.Header.Name)
	}
	if reparsed.Header.Email != original.Header.Email {
		t.Errorf("email = %q, want %q", reparsed.Header.Email, original.Header.Email)
	}
	if len(reparsed.Experience) != len(original.Experience) {
		t.Fatalf("experience = %d, want %d", len(reparsed.Experience), len(original.Experience))
	}
	for i := range original.Experience {
		if reparsed.Experience[i].Company != original.Experience[i].Company {
			t.Errorf("entry %d company = %q, want %q", i, reparsed.Experience[i].Company, original.Experience[i].Company)
		}
		if reparsed.Experience[i].Title != original.Experience[i].Title {
			t.Errorf("entry %d title = %q, want %q", i, reparsed.Experience[i].Title, original.Experience[i].Title)
		}
		if reparsed.Experience[i].Dates != original.Experience[i].Dates {
			t.Errorf("entry %d dates = %q, want %q", i, reparsed.Experience[i].Dates, original.Experience[i].Dates)
		}
		if len(reparsed.Experience[i].Bullets) != len(original.Experience[i].Bullets) {
			t.Errorf("entry %d bullets = %d, want %d", i, len(reparsed.Experience[i].Bullets), len(original.Experience[i].Bullets))
		}
	}
	if len(reparsed.Education) != 1 || reparsed.Education[0].Institution != "State University" {
		t.Errorf("education = %+v", reparsed.Education)
	}
	if len(reparsed.Skills.Technical) != 3 || len(reparsed.Skills.Soft) != 1 || len(reparsed.Skills.Other) != 1 {
		t.Errorf("skills = %+v", reparsed.Skills)
	}
	if len(reparsed.Certifications) != 1 || reparsed.Certifications[0].Name != "AWS Certified Solutions Architect" {
		t.Errorf("certifications = %+v", reparsed.Certifications)
	}
	if len(reparsed.Projects) != 1 || reparsed.Projects[0].Name != "TaskFlow" {
		t.Errorf("projects = %+v", reparsed.Projects)
	}
	if len(reparsed.Volunteering) != 1 || reparsed.Volunteering[0].Role != "Mentor" {
		t.Errorf("volunteering = %+v", reparsed.Volunteering)
	}
}
