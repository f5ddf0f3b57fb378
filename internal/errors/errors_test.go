package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	plain := NewValidationError("INVALID_FORMAT", "unsupported format", nil)
	assert.Equal(t, "INVALID_FORMAT: unsupported format", plain.Error())

	cause := errors.New("disk full")
	wrapped := NewIOError("FILE_NOT_READABLE", "cannot read resume", cause)
	assert.Equal(t, "FILE_NOT_READABLE: cannot read resume (caused by: disk full)", wrapped.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewAIError("AI_SERVICE_FAILED", "request failed", cause)

	assert.True(t, errors.Is(err, cause))

	var appErr *AppError
	require.True(t, errors.As(fmt.Errorf("outer: %w", err), &appErr))
	assert.Equal(t, ErrorTypeAI, appErr.Type)
}

func TestAppErrorWithContext(t *testing.T) {
	err := NewRenderError("RENDER_FAILED", "docx generation failed", nil).
		WithContext("format", "docx").
		WithContext("sections", 4)

	assert.Equal(t, "docx", err.Context["format"])
	assert.Equal(t, 4, err.Context["sections"])
}

func TestTypedConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
	}{
		{"validation", NewValidationError("c", "m", nil), ErrorTypeValidation},
		{"io", NewIOError("c", "m", nil), ErrorTypeIO},
		{"ai", NewAIError("c", "m", nil), ErrorTypeAI},
		{"render", NewRenderError("c", "m", nil), ErrorTypeRender},
		{"config", NewConfigError("c", "m", nil), ErrorTypeConfig},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantType, tc.err.Type)
		})
	}
}

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(level)
		require.NoError(t, err, "level %s", level)
		assert.NotNil(t, logger)
	}

	_, err := New("verbose")
	assert.ErrorContains(t, err, "invalid log level: verbose")
}

func TestNewLoggerAcceptsSlogLevel(t *testing.T) {
	assert.NotNil(t, NewLogger(slog.LevelWarn))
}
