package utils

import "testing"

func TestFileTypeFromName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"txt file", "resume.txt", "txt"},
		{"uppercase extension", "Resume.TXT", "txt"},
		{"docx file", "resume.docx", "docx"},
		{"no extension", "resume", ""},
		{"dotfile-style path", "dir.v2/resume.pdf", "pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileTypeFromName(tt.filename); got != tt.want {
				t.Errorf("FileTypeFromName(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestIsTextFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.txt", true},
		{"notes.md", true},
		{"resume.docx", false},
		{"resume.pdf", false},
	}

	for _, tt := range tests {
		if got := IsTextFile(tt.filename); got != tt.want {
			t.Errorf("IsTextFile(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}

	for _, tt := range tests {
		if got := FormatFileSize(tt.size); got != tt.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
