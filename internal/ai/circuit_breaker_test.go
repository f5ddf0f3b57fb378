package ai

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/config"
	"google.golang.org/genai"
)

func breakerConfig(enabled bool) *config.OperationAIConfig {
	return &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          enabled,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}

func TestCircuitBreakersPerOperation(t *testing.T) {
	analyzeCB := NewAICircuitBreaker("Analyze", breakerConfig(true), nil)
	rewriteCB := NewAICircuitBreaker("Rewrite", breakerConfig(true), nil)

	require.NotNil(t, analyzeCB)
	require.NotNil(t, rewriteCB)
	assert.NotSame(t, analyzeCB, rewriteCB)

	analyzeStats := analyzeCB.GetStats()
	assert.Equal(t, "AI-Analyze", analyzeStats["name"])
	assert.Equal(t, "closed", analyzeStats["state"])
	assert.Equal(t, true, analyzeStats["enabled"])

	assert.Equal(t, "AI-Rewrite", rewriteCB.GetStats()["name"])

	assert.True(t, analyzeCB.IsHealthy())
	assert.True(t, rewriteCB.IsHealthy())
}

func TestModelCircuitBreakerNaming(t *testing.T) {
	cb := NewModelCircuitBreaker("Analyze", breakerConfig(true), nil)
	require.NotNil(t, cb)
	assert.Equal(t, "AI-Model-Analyze", cb.GetModelStats()["name"])
	assert.True(t, cb.IsModelHealthy())
}

func TestCircuitBreakerDisabled(t *testing.T) {
	cb := NewAICircuitBreaker("Disabled", breakerConfig(false), nil)
	assert.Nil(t, cb)

	// A nil breaker must still pass calls through and report healthy.
	wantErr := errors.New("backend down")
	_, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		return nil, wantErr
	})
	assert.Equal(t, wantErr, err)
	assert.True(t, cb.IsHealthy())

	stats := cb.GetStats()
	assert.Equal(t, false, stats["enabled"])
	assert.NotContains(t, stats, "name")
}

func TestCircuitBreakerExecute(t *testing.T) {
	cb := NewAICircuitBreaker("Analyze", breakerConfig(true), nil)
	require.NotNil(t, cb)

	want := &genai.GenerateContentResponse{}
	got, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		return want, nil
	})
	require.NoError(t, err)
	assert.Same(t, want, got)
}
