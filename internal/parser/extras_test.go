package parser

import "testing"

func TestParseCertifications(t *testing.T) {
	certs := parseCertifications([]string{
		"AWS Certified Solutions Architect - Amazon Web Services",
		"PMP | Project Management Institute",
		"Certified Scrum Master 03/2021",
	})
	if len(certs) != 3 {
		t.Fatalf("certifications = %d, want 3", len(certs))
	}
	if certs[0].Name != "AWS Certified Solutions Architect" || certs[0].Issuer != "Amazon Web Services" {
		t.Errorf("first = %+v", certs[0])
	}
	if certs[1].Name != "PMP" || certs[1].Issuer != "Project Management Institute" {
		t.Errorf("second = %+v", certs[1])
	}
	if certs[2].Name != "Certified Scrum Master" || certs[2].Date != "03/2021" {
		t.Errorf("third = %+v", certs[2])
	}
}

func TestParseProjectBlock(t *testing.T) {
	tests := []struct {
		name     string
		block    []string
		wantName string
		wantURL  string
		wantDesc string
	}{
		{
			name:     "url on name line",
			block:    []string{"TaskFlow https://github.com/jane/taskflow", "Task automation engine", "• 500+ stars"},
			wantName: "TaskFlow",
			wantURL:  "https://github.com/jane/taskflow",
			wantDesc: "Task automation engine",
		},
		{
			name:     "url on its own line",
			block:    []string{"TaskFlow", "www.taskflow.dev", "Task automation engine"},
			wantName: "TaskFlow",
			wantURL:  "www.taskflow.dev",
			wantDesc: "Task automation engine",
		},
		{
			name:     "dates stripped from name",
			block:    []string{"TaskFlow 2021 - 2023", "Task automation engine"},
			wantName: "TaskFlow",
			wantDesc: "Task automation engine",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := parseProjectBlock(tt.block)
			if !ok {
				t.Fatal("expected project")
			}
			if p.Name != tt.wantName {
				t.Errorf("name = %q, want %q", p.Name, tt.wantName)
			}
			if p.URL != tt.wantURL {
				t.Errorf("url = %q, want %q", p.URL, tt.wantURL)
			}
			if p.Description != tt.wantDesc {
				t.Errorf("description = %q, want %q", p.Description, tt.wantDesc)
			}
		})
	}
}

func TestParseVolunteeringBlock(t *testing.T) {
	tests := []struct {
		name     string
		block    []string
		wantOrg  string
		wantRole string
		wantLoc  string
		wantDate string
	}{
		{
			name:     "full delimited line",
			block:    []string{"Code for Boston • Boston, MA • 2019 - Present", "Mentor", "• Taught workshops"},
			wantOrg:  "Code for Boston",
			wantRole: "Mentor",
			wantLoc:  "Boston, MA",
			wantDate: "2019 - Present",
		},
		{
			name:     "role defaults to volunteer",
			block:    []string{"Local Food Bank", "• Sorted donations weekly"},
			wantOrg:  "Local Food Bank",
			wantRole: "Volunteer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := parseVolunteeringBlock(tt.block)
			if !ok {
				t.Fatal("expected entry")
			}
			if v.Organization != tt.wantOrg {
				t.Errorf("organization = %q, want %q", v.Organization, tt.wantOrg)
			}
			if v.Role != tt.wantRole {
				t.Errorf("role = %q, want %q", v.Role, tt.wantRole)
			}
			if v.Location != tt.wantLoc {
				t.Errorf("location = %q, want %q", v.Location, tt.wantLoc)
			}
			if v.Dates != tt.wantDate {
				t.Errorf("dates = %q, want %q", v.Dates, tt.wantDate)
			}
		})
	}
}
