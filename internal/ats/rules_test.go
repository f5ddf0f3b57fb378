package ats

import (
	"strings"
	"testing"

	"resumeforge/internal/types"
)

func TestCheckFileFormat(t *testing.T) {
	tests := []struct {
		name         string
		fileType     string
		wantPassed   bool
		wantSeverity types.Severity
	}{
		{name: "plain text", fileType: "txt", wantPassed: true, wantSeverity: types.SeverityInfo},
		{name: "docx", fileType: "docx", wantPassed: true, wantSeverity: types.SeverityInfo},
		{name: "dotted extension", fileType: ".docx", wantPassed: true, wantSeverity: types.SeverityInfo},
		{name: "empty defaults to text", fileType: "", wantPassed: true, wantSeverity: types.SeverityInfo},
		{name: "pdf warns", fileType: "pdf", wantPassed: false, wantSeverity: types.SeverityWarning},
		{name: "image is critical", fileType: "png", wantPassed: false, wantSeverity: types.SeverityCritical},
		{name: "exotic is critical", fileType: "pages", wantPassed: false, wantSeverity: types.SeverityCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newRuleContext("some text", tt.fileType, "", nil)
			f := checkFileFormat(ctx)
			if f.Passed != tt.wantPassed {
				t.Errorf("passed = %v, want %v", f.Passed, tt.wantPassed)
			}
			if f.Severity != tt.wantSeverity {
				t.Errorf("severity = %s, want %s", f.Severity, tt.wantSeverity)
			}
		})
	}
}

func TestCheckDateFormatting(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantPassed bool
	}{
		{name: "single style", text: "01/2020 - 03/2021 and 05/2021 - 06/2022", wantPassed: true},
		{name: "mixed styles", text: "January 2020 to 03/2021", wantPassed: false},
		{name: "no dates", text: "no dates at all", wantPassed: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := checkDateFormatting(newRuleContext(tt.text, "txt", "", nil))
			if f.Passed != tt.wantPassed {
				t.Errorf("passed = %v, want %v: %s", f.Passed, tt.wantPassed, f.Message)
			}
		})
	}
}

func TestCheckBulletConsistency(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantPassed bool
	}{
		{name: "uniform round bullets", text: "• one\n• two\n• three", wantPassed: true},
		{name: "mixed glyphs", text: "• one\n- two\n* three", wantPassed: false},
		{name: "no bullets", text: "plain paragraph", wantPassed: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := checkBulletConsistency(newRuleContext(tt.text, "txt", "", nil))
			if f.Passed != tt.wantPassed {
				t.Errorf("passed = %v, want %v: %s", f.Passed, tt.wantPassed, f.Message)
			}
		})
	}
}

func TestCheckKeywordDensityNeutralWithoutKeywords(t *testing.T) {
	f := checkKeywordDensity(newRuleContext("any resume text here", "txt", "", nil))
	if !f.Passed || f.Severity != types.SeverityInfo {
		t.Errorf("expected informational pass, got %+v", f)
	}
}

func TestCheckKeywordDensityBands(t *testing.T) {
	base := strings.Repeat("filler word block of plain resume prose ", 25)

	low := checkKeywordDensity(newRuleContext(base, "txt", "", []string{"python"}))
	if low.Passed {
		t.Error("expected under-density failure")
	}

	stuffed := checkKeywordDensity(newRuleContext(base+strings.Repeat("python ", 30), "txt", "", []string{"python"}))
	if stuffed.Passed {
		t.Error("expected stuffing failure")
	}

	inBand := checkKeywordDensity(newRuleContext(base+"python python python python", "txt", "", []string{"python"}))
	if !inBand.Passed {
		t.Errorf("expected pass in band: %s", inBand.Message)
	}

	// 7 hits over 207 words is ~3.4%, just past the 3% upper edge.
	overEdge := checkKeywordDensity(newRuleContext(base+strings.Repeat("python ", 7), "txt", "", []string{"python"}))
	if overEdge.Passed {
		t.Error("expected failure just above the 3% band")
	}
}

func TestCheckActionVerbs(t *testing.T) {
	passing := "• Led the team\n• Built the platform\n• Reduced costs"
	if f := checkActionVerbs(newRuleContext(passing, "txt", "", nil)); !f.Passed {
		t.Errorf("expected pass: %s", f.Message)
	}
	weak := "• Responsible for the team\n• Was helping with the platform\n• Led one effort"
	if f := checkActionVerbs(newRuleContext(weak, "txt", "", nil)); f.Passed {
		t.Error("expected failure for weak openings")
	}
	none := "no bullets in this text"
	if f := checkActionVerbs(newRuleContext(none, "txt", "", nil)); f.Passed {
		t.Error("expected failure without achievement lines")
	}
}

func TestCheckTablesColumns(t *testing.T) {
	columns := strings.Repeat("left cell      middle cell      right cell\n", 4)
	if f := checkTablesColumns(newRuleContext(columns, "txt", "", nil)); f.Passed {
		t.Error("expected multi-column failure")
	}
	single := "Acme Corp - Boston, MA\t01/2020 - Present\nEngineer\n• Did work"
	if f := checkTablesColumns(newRuleContext(single, "txt", "", nil)); !f.Passed {
		t.Errorf("single tab layout should pass: %s", f.Message)
	}
}

func TestCheckJobDescriptionMatchNeutralWithoutJD(t *testing.T) {
	f := checkJobDescriptionMatch(newRuleContext("resume text", "txt", "", nil))
	if !f.Passed || f.Severity != types.SeverityInfo {
		t.Errorf("expected informational pass, got %+v", f)
	}
}

func TestCheckSummaryPresence(t *testing.T) {
	with := "Jane Smith\n\nSUMMARY\nAn engineer."
	if f := checkSummaryPresence(newRuleContext(with, "txt", "", nil)); !f.Passed {
		t.Errorf("expected pass: %s", f.Message)
	}
	without := "Jane Smith\n\nEXPERIENCE\nAcme Corp"
	if f := checkSummaryPresence(newRuleContext(without, "txt", "", nil)); f.Passed {
		t.Error("expected failure without summary section")
	}

	// Blank padding above the summary must not push it out of the window.
	padded := "Jane Smith\n" + strings.Repeat("\n", 20) + "SUMMARY\nAn engineer."
	if f := checkSummaryPresence(newRuleContext(padded, "txt", "", nil)); !f.Passed {
		t.Errorf("expected pass with blank-padded header block: %s", f.Message)
	}
}
