package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tlsTestConfig(tls TLSConfig) *Config {
	cfg := &Config{}
	cfg.Server.TLS = tls
	return cfg
}

func TestValidateTLSConfig(t *testing.T) {
	tests := []struct {
		name        string
		tls         TLSConfig
		expectError bool
		errorMsg    string
	}{
		{
			name:        "disabled mode needs nothing",
			tls:         TLSConfig{Mode: "disabled"},
			expectError: false,
		},
		{
			name: "server mode with files",
			tls: TLSConfig{
				Mode:     "server",
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
			},
			expectError: false,
		},
		{
			name: "server mode with inline content",
			tls: TLSConfig{
				Mode:        "server",
				CertContent: "cert-content",
				KeyContent:  "key-content",
			},
			expectError: false,
		},
		{
			name: "server mode mixed sources across parts",
			tls: TLSConfig{
				Mode:       "server",
				CertFile:   "/path/to/cert.pem",
				KeyContent: "key-content",
			},
			expectError: false,
		},
		{
			name: "server mode missing key",
			tls: TLSConfig{
				Mode:     "server",
				CertFile: "/path/to/cert.pem",
			},
			expectError: true,
			errorMsg:    "TLS certificate and key are required for server mode",
		},
		{
			name: "server mode missing certificate",
			tls: TLSConfig{
				Mode:    "server",
				KeyFile: "/path/to/key.pem",
			},
			expectError: true,
			errorMsg:    "TLS certificate and key are required for server mode",
		},
		{
			name: "server mode cert from both sources",
			tls: TLSConfig{
				Mode:        "server",
				CertFile:    "/path/to/cert.pem",
				CertContent: "cert-content",
				KeyFile:     "/path/to/key.pem",
			},
			expectError: true,
			errorMsg:    "cannot specify both certFile and certContent",
		},
		{
			name: "server mode key from both sources",
			tls: TLSConfig{
				Mode:       "server",
				CertFile:   "/path/to/cert.pem",
				KeyFile:    "/path/to/key.pem",
				KeyContent: "key-content",
			},
			expectError: true,
			errorMsg:    "cannot specify both keyFile and keyContent",
		},
		{
			name: "mutual mode with files",
			tls: TLSConfig{
				Mode:     "mutual",
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
				CAFile:   "/path/to/ca.pem",
			},
			expectError: false,
		},
		{
			name: "mutual mode with content",
			tls: TLSConfig{
				Mode:        "mutual",
				CertContent: "cert-content",
				KeyContent:  "key-content",
				CAContent:   "ca-content",
			},
			expectError: false,
		},
		{
			name: "mutual mode missing CA",
			tls: TLSConfig{
				Mode:     "mutual",
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
			},
			expectError: true,
			errorMsg:    "CA certificate is required for mutual TLS mode",
		},
		{
			name: "mutual mode CA from both sources",
			tls: TLSConfig{
				Mode:      "mutual",
				CertFile:  "/path/to/cert.pem",
				KeyFile:   "/path/to/key.pem",
				CAFile:    "/path/to/ca.pem",
				CAContent: "ca-content",
			},
			expectError: true,
			errorMsg:    "cannot specify both caFile and caContent",
		},
		{
			name: "mutual mode missing cert pair",
			tls: TLSConfig{
				Mode:   "mutual",
				CAFile: "/path/to/ca.pem",
			},
			expectError: true,
			errorMsg:    "TLS certificate and key are required for mutual mode",
		},
		{
			name: "unknown mode",
			tls: TLSConfig{
				Mode: "sideways",
			},
			expectError: true,
			errorMsg:    "invalid TLS mode: sideways",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tlsTestConfig(tt.tls).ValidateTLSConfig()

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTLSConfigClientAuthPolicy(t *testing.T) {
	base := TLSConfig{
		Mode:     "mutual",
		CertFile: "/path/to/cert.pem",
		KeyFile:  "/path/to/key.pem",
		CAFile:   "/path/to/ca.pem",
	}

	for _, policy := range []string{"", "require", "request", "verify"} {
		t.Run("policy "+policy, func(t *testing.T) {
			tls := base
			tls.ClientAuthPolicy = policy
			assert.NoError(t, tlsTestConfig(tls).ValidateTLSConfig())
		})
	}

	t.Run("unknown policy", func(t *testing.T) {
		tls := base
		tls.ClientAuthPolicy = "optional"
		err := tlsTestConfig(tls).ValidateTLSConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid clientAuthPolicy: optional")
	})
}

func TestValidateTLSConfigMinVersion(t *testing.T) {
	base := TLSConfig{
		Mode:     "server",
		CertFile: "/path/to/cert.pem",
		KeyFile:  "/path/to/key.pem",
	}

	for _, version := range []string{"", "1.2", "1.3"} {
		t.Run("version "+version, func(t *testing.T) {
			tls := base
			tls.MinVersion = version
			assert.NoError(t, tlsTestConfig(tls).ValidateTLSConfig())
		})
	}

	t.Run("unsupported version", func(t *testing.T) {
		tls := base
		tls.MinVersion = "1.1"
		err := tlsTestConfig(tls).ValidateTLSConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid TLS minVersion: 1.1")
	})

	// Version check applies even when TLS itself is off.
	t.Run("version checked in disabled mode", func(t *testing.T) {
		err := tlsTestConfig(TLSConfig{Mode: "disabled", MinVersion: "1.0"}).ValidateTLSConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid TLS minVersion: 1.0")
	})
}
