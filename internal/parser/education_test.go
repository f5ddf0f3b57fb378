package parser

import "testing"

func TestParseEducationBlockShapes(t *testing.T) {
	tests := []struct {
		name     string
		block    []string
		wantOK   bool
		wantDeg  string
		wantInst string
		wantDate string
		wantLoc  string
	}{
		{
			name:     "degree first",
			block:    []string{"BS Computer Science", "State University - Boston, MA\t2015 - 2019"},
			wantOK:   true,
			wantDeg:  "BS Computer Science",
			wantInst: "State University",
			wantDate: "2015 - 2019",
			wantLoc:  "Boston, MA",
		},
		{
			name:     "institution first",
			block:    []string{"State University", "MBA", "2019 - 2021"},
			wantOK:   true,
			wantDeg:  "MBA",
			wantInst: "State University",
			wantDate: "2019 - 2021",
		},
		{
			name:     "comma joined location and year",
			block:    []string{"Harvard University, Cambridge, MA, 2014", "MBA"},
			wantOK:   true,
			wantDeg:  "MBA",
			wantInst: "Harvard University",
			wantDate: "2014",
			wantLoc:  "Cambridge, MA",
		},
		{
			name:   "no institution discarded",
			block:  []string{},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := parseEducationBlock(tt.block)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if e.Degree != tt.wantDeg {
				t.Errorf("degree = %q, want %q", e.Degree, tt.wantDeg)
			}
			if e.Institution != tt.wantInst {
				t.Errorf("institution = %q, want %q", e.Institution, tt.wantInst)
			}
			if e.Dates != tt.wantDate {
				t.Errorf("dates = %q, want %q", e.Dates, tt.wantDate)
			}
			if e.Location != tt.wantLoc {
				t.Errorf("location = %q, want %q", e.Location, tt.wantLoc)
			}
		})
	}
}

func TestEducationDetailLines(t *testing.T) {
	block := []string{
		"BS Computer Science",
		"State University",
		"• GPA 3.9",
		"• Dean's List all semesters",
	}
	e, ok := parseEducationBlock(block)
	if !ok {
		t.Fatal("expected entry")
	}
	if len(e.Details) != 2 {
		t.Fatalf("details = %v", e.Details)
	}
	if e.Details[0] != "GPA 3.9" {
		t.Errorf("first detail = %q", e.Details[0])
	}
}
