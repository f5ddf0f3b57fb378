package config

import (
	"testing"
	"time"
)

func baseAIConfig() AIConfig {
	return AIConfig{
		Provider:         "gemini",
		Model:            "gemini-2.0-flash",
		Timeout:          60 * time.Second,
		APIKey:           "global-key",
		MaxRetries:       3,
		Temperature:      0.7,
		UseSystemPrompts: true,
	}
}

func TestGetAnalyzeConfigFallsBackToGlobal(t *testing.T) {
	c := &Config{AI: baseAIConfig()}

	op := c.GetAnalyzeConfig()

	if op.Provider != "gemini" {
		t.Errorf("expected provider gemini, got %s", op.Provider)
	}
	if op.Model != "gemini-2.0-flash" {
		t.Errorf("expected global model fallback, got %s", op.Model)
	}
	if op.APIKey != "global-key" {
		t.Errorf("expected global API key fallback, got %s", op.APIKey)
	}
	if op.Timeout == nil || *op.Timeout != 60*time.Second {
		t.Error("expected global timeout fallback")
	}
	if op.MaxRetries == nil || *op.MaxRetries != 3 {
		t.Error("expected global maxRetries fallback")
	}
	if op.UseSystemPrompts == nil || !*op.UseSystemPrompts {
		t.Error("expected global useSystemPrompts fallback")
	}
}

func TestGetRewriteConfigKeepsOverrides(t *testing.T) {
	timeout := 90 * time.Second
	retries := 1
	temp := float32(0.3)

	c := &Config{AI: baseAIConfig()}
	c.AI.Rewrite = OperationAIConfig{
		Model:       "gemini-2.5-pro",
		Timeout:     &timeout,
		MaxRetries:  &retries,
		Temperature: &temp,
	}

	op := c.GetRewriteConfig()

	if op.Model != "gemini-2.5-pro" {
		t.Errorf("expected operation model override, got %s", op.Model)
	}
	if *op.Timeout != 90*time.Second {
		t.Errorf("expected operation timeout override, got %v", *op.Timeout)
	}
	if *op.MaxRetries != 1 {
		t.Errorf("expected operation retries override, got %d", *op.MaxRetries)
	}
	if *op.Temperature != 0.3 {
		t.Errorf("expected operation temperature override, got %f", *op.Temperature)
	}
	if op.APIKey != "global-key" {
		t.Errorf("expected global API key fallback, got %s", op.APIKey)
	}
}

func TestGetAnalyzeConfigPromptFallback(t *testing.T) {
	c := &Config{AI: baseAIConfig()}
	c.AI.CustomPrompts.SystemPrompts.AnalyzeResume = "global system prompt"
	c.AI.CustomPrompts.UserPrompts.AnalyzeResume = "global user prompt"

	op := c.GetAnalyzeConfig()

	if op.CustomPrompts.SystemPrompts.AnalyzeResume != "global system prompt" {
		t.Error("expected global system prompt fallback")
	}
	if op.CustomPrompts.UserPrompts.AnalyzeResume != "global user prompt" {
		t.Error("expected global user prompt fallback")
	}

	c.AI.Analyze.CustomPrompts.SystemPrompts.AnalyzeResume = "operation system prompt"
	op = c.GetAnalyzeConfig()
	if op.CustomPrompts.SystemPrompts.AnalyzeResume != "operation system prompt" {
		t.Error("expected operation system prompt to win over global")
	}
}

func TestValidateRejectsBadDefaults(t *testing.T) {
	c := &Config{
		AI: baseAIConfig(),
		Server: ServerConfig{
			Port: "8080",
			TLS:  TLSConfig{Mode: "disabled"},
		},
		App: AppConfig{
			DefaultFormat:    "json",
			SupportedFormats: []string{"json", "text", "markdown", "docx"},
		},
	}

	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	c.App.DefaultFormat = "pdf"
	if err := c.Validate(); err == nil {
		t.Error("expected error for unsupported default format")
	}

	c.App.DefaultFormat = "json"
	c.Server.Port = ""
	if err := c.Validate(); err == nil {
		t.Error("expected error for missing server port")
	}

	c.Server.Port = "8080"
	c.AI.Timeout = 0
	if err := c.Validate(); err == nil {
		t.Error("expected error for non-positive AI timeout")
	}
}
