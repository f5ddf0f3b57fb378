package config

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// applyFallbacks fills in values viper cannot derive on its own:
// comma-separated API key lists, mode-dependent TLS defaults, and the
// service instance identity.
func (c *Config) applyFallbacks() {
	// API key fallbacks for AI operations live in the Get...Config() methods.

	if len(c.Server.APIKeys) == 0 {
		if raw := os.Getenv("RESUMEFORGE_SERVER_APIKEYS"); raw != "" {
			keys := strings.Split(raw, ",")
			for i, key := range keys {
				keys[i] = strings.TrimSpace(key)
			}
			c.Server.APIKeys = keys
		}
	}

	if c.Server.TLS.Mode == "mutual" && c.Server.TLS.ClientAuthPolicy == "" {
		c.Server.TLS.ClientAuthPolicy = "require"
	}
	if c.Server.TLS.MinVersion == "" && c.Server.TLS.Mode != "disabled" {
		c.Server.TLS.MinVersion = "1.2"
	}

	if c.Observability.ServiceInstance == "" {
		c.Observability.ServiceInstance = generateServiceInstanceID(c.Observability.ServiceName)
	}

	// Surface spans on the console when debugging
	if c.App.LogLevel == "debug" && !c.Observability.ConsoleOutput {
		c.Observability.ConsoleOutput = true
	}
}

func generateServiceInstanceID(serviceName string) string {
	if hostname, err := os.Hostname(); err == nil {
		return fmt.Sprintf("%s-%s", serviceName, hostname)
	}
	return fmt.Sprintf("%s-1", serviceName)
}

// envVarsOfInterest are the variables worth calling out at startup.
// GEMINI_API_KEY stays for compatibility with earlier releases.
var envVarsOfInterest = []string{
	"RESUMEFORGE_AI_APIKEY",
	"RESUMEFORGE_AI_PROVIDER",
	"RESUMEFORGE_AI_MODEL",
	"RESUMEFORGE_SERVER_PORT",
	"RESUMEFORGE_SERVER_HOST",
	"RESUMEFORGE_APP_LOGLEVEL",
	"RESUMEFORGE_VAULT_ENABLED",
	"GEMINI_API_KEY",
}

// logConfigurationSources writes a startup summary of where configuration
// came from. Secret-bearing variables are masked.
func (c *Config) logConfigurationSources(configFileUsed string) {
	log.Println("[CONFIG] === Configuration Sources Summary ===")

	if configFileUsed != "" {
		log.Printf("[CONFIG] Config file: %s", configFileUsed)
	} else {
		log.Println("[CONFIG] Config file: None (using defaults)")
	}

	log.Println("[CONFIG] Environment variables:")
	found := false
	for _, name := range envVarsOfInterest {
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if isSecretEnvVar(name) {
			value = "***MASKED***"
		}
		log.Printf("[CONFIG]   %s=%s", name, value)
		found = true
	}
	if !found {
		log.Println("[CONFIG]   None set")
	}

	log.Println("[CONFIG] === Key Configuration Values ===")
	log.Printf("[CONFIG] AI Provider: %s", c.AI.Provider)
	log.Printf("[CONFIG] AI Model: %s", c.AI.Model)
	if c.AI.APIKey != "" {
		log.Println("[CONFIG] AI API Key: ***CONFIGURED***")
	} else {
		log.Println("[CONFIG] AI API Key: ***NOT SET***")
	}
	log.Printf("[CONFIG] Server Host: %s", c.Server.Host)
	log.Printf("[CONFIG] Server Port: %s", c.Server.Port)
	log.Printf("[CONFIG] Log Level: %s", c.App.LogLevel)
	log.Printf("[CONFIG] TLS Mode: %s", c.Server.TLS.Mode)
	log.Printf("[CONFIG] Vault Enabled: %t", c.Vault.Enabled)
	log.Printf("[CONFIG] Observability Enabled: %t", c.Observability.Enabled)

	log.Println("[CONFIG] === Operation-Specific AI Configurations ===")
	log.Printf("[CONFIG] Analyze - Provider: %s, Model: %s", c.AI.Analyze.Provider, c.AI.Analyze.Model)
	log.Printf("[CONFIG] Rewrite - Provider: %s, Model: %s", c.AI.Rewrite.Provider, c.AI.Rewrite.Model)

	log.Println("[CONFIG] =====================================")
}

func isSecretEnvVar(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "apikey") || strings.Contains(lower, "key")
}
