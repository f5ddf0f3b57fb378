package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"resumeforge/internal/config"
	"resumeforge/internal/errors"
	"resumeforge/internal/observability"
	"resumeforge/internal/types"
)

func newTestServer(t *testing.T) (*Server, *observability.ObservabilityManager) {
	t.Helper()

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("failed to create observability manager: %v", err)
	}

	cfg := ServerConfig{
		Host:           "localhost",
		Port:           "0",
		Version:        "test",
		MaxRequestSize: 1024 * 1024,
	}
	return NewServer(&config.Config{}, cfg, errors.NewLogger(slog.LevelError)), om
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

const sampleResume = `Jordan Reyes
Portland, OR | (555) 123-4567 | jordan.reyes@example.com

SUMMARY
Backend engineer with 6 years of experience building payment systems.

EXPERIENCE
Senior Software Engineer
Acme Payments, Portland, OR    Jan 2021 - Present
- Led migration of settlement pipeline, reducing latency by 40%
- Mentored 4 junior engineers

EDUCATION
B.S. Computer Science
Oregon State University    2014 - 2018

SKILLS
Go, PostgreSQL, Kafka, Kubernetes
`

func TestParseHandler(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createParseHandler(om)

	rec := postJSON(t, handler, ParseRequest{ResumeText: sampleResume})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if doc.Header.Name != "Jordan Reyes" {
		t.Errorf("expected name 'Jordan Reyes', got %q", doc.Header.Name)
	}
	if len(doc.Experience) == 0 {
		t.Error("expected at least one experience entry")
	}
	if len(doc.Education) == 0 {
		t.Error("expected at least one education entry")
	}
}

func TestParseHandlerRejectsEmptyResume(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createParseHandler(om)

	rec := postJSON(t, handler, ParseRequest{ResumeText: "   "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Error == "" {
		t.Error("expected error field to be populated")
	}
}

func TestParseHandlerRejectsWrongContentType(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createParseHandler(om)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestCheckHandler(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createCheckHandler(om)

	rec := postJSON(t, handler, CheckRequest{
		ResumeText: sampleResume,
		FileType:   "txt",
		Keywords:   []string{"Go", "Kafka"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var report types.ATSReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(report.Checks) == 0 {
		t.Fatal("expected checks in the report")
	}
	if report.Score < 0 || report.Score > 100 {
		t.Errorf("score out of range: %d", report.Score)
	}
}

func TestExportHandlerPlainText(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createExportHandler(om)

	rec := postJSON(t, handler, ExportRequest{ResumeText: sampleResume, Format: "text"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("unexpected content type: %s", ct)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("Jordan Reyes")) {
		t.Error("expected candidate name in plain text output")
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("EXPERIENCE")) {
		t.Error("expected uppercase section header in plain text output")
	}
}

func TestExportHandlerDocx(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createExportHandler(om)

	rec := postJSON(t, handler, ExportRequest{ResumeText: sampleResume, Format: "docx"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// docx is a zip archive, check the magic bytes
	body := rec.Body.Bytes()
	if len(body) < 4 || body[0] != 'P' || body[1] != 'K' {
		t.Error("expected docx output to be a zip archive")
	}
}

func TestExportHandlerRejectsUnknownFormat(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createExportHandler(om)

	rec := postJSON(t, handler, ExportRequest{ResumeText: sampleResume, Format: "pdf"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	s, _ := newTestServer(t)
	s.APIKeys = map[string]bool{"secret-key-12345": true}

	called := false
	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	// Missing key
	req := httptest.NewRequest(http.MethodPost, "/parse", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for missing key, got %d", rec.Code)
	}
	if called {
		t.Error("handler should not be called without a key")
	}

	// Valid key via header
	req = httptest.NewRequest(http.MethodPost, "/parse", nil)
	req.Header.Set("X-API-Key", "secret-key-12345")
	rec = httptest.NewRecorder()
	handler(rec, req)
	if !called {
		t.Error("handler should be called with a valid key")
	}

	// Valid key via bearer token
	called = false
	req = httptest.NewRequest(http.MethodPost, "/parse", nil)
	req.Header.Set("Authorization", "Bearer secret-key-12345")
	rec = httptest.NewRecorder()
	handler(rec, req)
	if !called {
		t.Error("handler should be called with a valid bearer token")
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("expected '****' for short key, got %q", got)
	}
	if got := maskAPIKey("abcdefgh12345678"); got != "abcdefgh****" {
		t.Errorf("unexpected masked key: %q", got)
	}
}
