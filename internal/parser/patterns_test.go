package parser

import "testing"

func TestFindPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "us format with parens", in: "call (555) 123-4567 today", want: "(555) 123-4567"},
		{name: "international with plus", in: "+44 20 7946 0958", want: "+44 20 7946 0958"},
		{name: "dotted", in: "555.123.4567", want: "555.123.4567"},
		{name: "too few digits", in: "room 123-4567", want: ""},
		{name: "too many digits", in: "id 12345678901234567890", want: ""},
		{name: "no digits", in: "nothing here", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findPhone(tt.in); got != tt.want {
				t.Errorf("findPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFindDates(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantDates string
		wantRest  string
	}{
		{name: "month range", in: "Acme 01/2020 - 12/2021", wantDates: "01/2020 - 12/2021", wantRest: "Acme"},
		{name: "present", in: "03/2019 - Present", wantDates: "03/2019 - Present", wantRest: ""},
		{name: "year range", in: "School 2015 - 2019", wantDates: "2015 - 2019", wantRest: "School"},
		{name: "single month", in: "Issued 06/2022", wantDates: "06/2022", wantRest: "Issued"},
		{name: "bare year", in: "Graduated 2018", wantDates: "2018", wantRest: "Graduated"},
		{name: "none", in: "no dates here", wantDates: "", wantRest: "no dates here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, rest := findDates(tt.in)
			if dates != tt.wantDates || rest != tt.wantRest {
				t.Errorf("findDates(%q) = %q, %q; want %q, %q", tt.in, dates, rest, tt.wantDates, tt.wantRest)
			}
		})
	}
}

func TestBulletHandling(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		isBullet bool
		stripped string
	}{
		{name: "round bullet", in: "• Shipped the thing", isBullet: true, stripped: "Shipped the thing"},
		{name: "hyphen", in: "- Shipped the thing", isBullet: true, stripped: "Shipped the thing"},
		{name: "asterisk", in: "* Shipped the thing", isBullet: true, stripped: "Shipped the thing"},
		{name: "plain line", in: "Shipped the thing", isBullet: false, stripped: "Shipped the thing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isBulletLine(tt.in); got != tt.isBullet {
				t.Errorf("isBulletLine(%q) = %v", tt.in, got)
			}
			if got := stripBullet(tt.in); got != tt.stripped {
				t.Errorf("stripBullet(%q) = %q, want %q", tt.in, got, tt.stripped)
			}
		})
	}
}

func TestDegreePattern(t *testing.T) {
	matching := []string{"BS Computer Science", "MBA", "PhD in Physics", "Bachelor of Arts", "MSc Data Science"}
	for _, s := range matching {
		if !degreePattern.MatchString(s) {
			t.Errorf("degreePattern should match %q", s)
		}
	}
	if degreePattern.MatchString("Worked at a warehouse") {
		t.Error("degreePattern matched plain text")
	}
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "EXPERIENCE", want: "experience"},
		{in: "[Education]", want: "education"},
		{in: "Skills:", want: "skills"},
		{in: "  Work History  ", want: "work history"},
	}
	for _, tt := range tests {
		if got := normalizeHeader(tt.in); got != tt.want {
			t.Errorf("normalizeHeader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
