package config

import (
	"os"
	"path/filepath"
	"testing"

	"resumeforge/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockLogger() *errors.Logger {
	logger, _ := errors.New("debug")
	return logger
}

func TestSecretVersion(t *testing.T) {
	tests := []struct {
		name        string
		input       any
		expected    int64
		expectError bool
	}{
		{name: "int64 passes through", input: int64(5), expected: 5},
		{name: "float64 from JSON decoding", input: float64(3), expected: 3},
		{name: "numeric string", input: "7", expected: 7},
		{name: "negative string", input: "-2", expected: -2},
		{name: "non-numeric string", input: "not-a-number", expectError: true},
		{name: "float string", input: "42.5", expectError: true},
		{name: "empty string", input: "", expectError: true},
		{name: "unsupported type", input: []string{"1"}, expectError: true},
		{name: "nil", input: nil, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := secretVersion(tt.input, "secret/data/test")

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "secret/data/test")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestApplyGeminiKeyToConfig(t *testing.T) {
	t.Run("fills empty operation keys", func(t *testing.T) {
		config := &Config{
			AI: AIConfig{
				Analyze: OperationAIConfig{},
				Rewrite: OperationAIConfig{},
			},
		}

		applyGeminiKeyToConfig(config, "test-gemini-key")

		assert.Equal(t, "test-gemini-key", config.AI.APIKey)
		assert.Equal(t, "test-gemini-key", config.AI.Analyze.APIKey)
		assert.Equal(t, "test-gemini-key", config.AI.Rewrite.APIKey)
	})

	t.Run("preserves operation-specific keys", func(t *testing.T) {
		config := &Config{
			AI: AIConfig{
				Analyze: OperationAIConfig{APIKey: "existing-analyze-key"},
				Rewrite: OperationAIConfig{},
			},
		}

		applyGeminiKeyToConfig(config, "test-gemini-key")

		assert.Equal(t, "test-gemini-key", config.AI.APIKey)
		assert.Equal(t, "existing-analyze-key", config.AI.Analyze.APIKey)
		assert.Equal(t, "test-gemini-key", config.AI.Rewrite.APIKey)
	})
}

func TestResolveVaultToken(t *testing.T) {
	logger := newMockLogger()

	t.Run("token from config", func(t *testing.T) {
		token, err := resolveVaultToken(VaultConfig{Token: "direct-token"}, logger)
		assert.NoError(t, err)
		assert.Equal(t, "direct-token", token)
	})

	t.Run("token from file is trimmed", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "vault-token")
		require.NoError(t, os.WriteFile(tokenFile, []byte("  file-token  \n"), 0600))

		token, err := resolveVaultToken(VaultConfig{TokenFile: tokenFile}, logger)
		assert.NoError(t, err)
		assert.Equal(t, "file-token", token)
	})

	t.Run("config token wins over file", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "vault-token")
		require.NoError(t, os.WriteFile(tokenFile, []byte("file-token"), 0600))

		token, err := resolveVaultToken(VaultConfig{Token: "direct-token", TokenFile: tokenFile}, logger)
		assert.NoError(t, err)
		assert.Equal(t, "direct-token", token)
	})

	t.Run("missing token file", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{TokenFile: "/nonexistent/token/file"}, logger)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read vault token file")
	})

	t.Run("no token configured", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{}, logger)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "vault token is required")
	})

	t.Run("whitespace-only token file", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "empty-token")
		require.NoError(t, os.WriteFile(tokenFile, []byte("   \n  \n"), 0600))

		_, err := resolveVaultToken(VaultConfig{TokenFile: tokenFile}, logger)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "vault token is required")
	})
}

func TestApplyTLSCertContent(t *testing.T) {
	logger := newMockLogger()

	t.Run("all parts present", func(t *testing.T) {
		config := &Config{}
		tlsData := &VaultSecret{
			Data: map[string]any{
				"cert": "cert-pem",
				"key":  "key-pem",
				"ca":   "ca-pem",
			},
		}

		count := applyTLSCertContent(config, tlsData, logger)

		assert.Equal(t, 3, count)
		assert.Equal(t, "cert-pem", config.Server.TLS.CertContent)
		assert.Equal(t, "key-pem", config.Server.TLS.KeyContent)
		assert.Equal(t, "ca-pem", config.Server.TLS.CAContent)
	})

	t.Run("partial secret only counts what exists", func(t *testing.T) {
		config := &Config{}
		tlsData := &VaultSecret{
			Data: map[string]any{
				"cert": "cert-pem",
				"key":  "key-pem",
			},
		}

		count := applyTLSCertContent(config, tlsData, logger)

		assert.Equal(t, 2, count)
		assert.Empty(t, config.Server.TLS.CAContent)
	})

	t.Run("empty and non-string values are skipped", func(t *testing.T) {
		config := &Config{}
		tlsData := &VaultSecret{
			Data: map[string]any{
				"cert": "",
				"key":  12345,
			},
		}

		count := applyTLSCertContent(config, tlsData, logger)

		assert.Equal(t, 0, count)
		assert.Empty(t, config.Server.TLS.CertContent)
		assert.Empty(t, config.Server.TLS.KeyContent)
	})
}

func TestRejectDeprecatedTLSFields(t *testing.T) {
	t.Run("content fields pass", func(t *testing.T) {
		tlsData := &VaultSecret{
			Data: map[string]any{
				"cert": "cert-pem",
				"key":  "key-pem",
				"ca":   "ca-pem",
			},
		}
		assert.NoError(t, rejectDeprecatedTLSFields(tlsData))
	})

	for _, field := range []string{"cert_file", "key_file", "ca_file"} {
		t.Run(field+" is rejected", func(t *testing.T) {
			tlsData := &VaultSecret{
				Data: map[string]any{field: "/some/path.pem"},
			}
			err := rejectDeprecatedTLSFields(tlsData)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), field)
			assert.Contains(t, err.Error(), "no longer supported")
		})
	}
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	config := &Config{
		Vault: VaultConfig{Enabled: false},
	}

	assert.NoError(t, ApplyVaultSecrets(config, newMockLogger()))
}

func TestGetSecretV2NilClient(t *testing.T) {
	var vc *VaultClient

	_, err := vc.GetSecretV2("secret/data/test")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "vault client not initialized")
}

func TestMaskSecretValue(t *testing.T) {
	assert.Equal(t, "abcd****wxyz", maskSecretValue("abcdefghijklmnopqrstuvwxyz"))
	assert.Equal(t, "****", maskSecretValue("short"))
	assert.Equal(t, "", maskSecretValue(""))
}
