package server

import (
	"fmt"
	"sync"
	"time"

	"resumeforge/internal/config"
	"resumeforge/internal/errors"
)

// VaultClientInterface is the subset of the Vault client the server needs.
type VaultClientInterface interface {
	GetSecretV2(path string) (*config.VaultSecret, error)
	GetStringSecret(path, key string) (string, error)
	GetStringSliceSecret(path, key string) ([]string, error)
}

// CertificateData is the PEM material read from a Vault TLS secret.
type CertificateData struct {
	CertContent string
	KeyContent  string
	CAContent   string
}

// VaultReloadCallback receives new certificate material, or the error that
// prevented fetching it.
type VaultReloadCallback func(data *CertificateData, err error)

// VaultWatcher polls a KV v2 secret and invokes the callback whenever the
// secret version advances. Detection is version-based; lease renewal is not
// handled here.
type VaultWatcher struct {
	mu sync.RWMutex

	client       VaultClientInterface
	secretPath   string
	pollInterval time.Duration
	onReload     VaultReloadCallback
	logger       *errors.Logger

	stopChan    chan struct{}
	running     bool
	lastVersion int64
}

func NewVaultWatcher(client VaultClientInterface, secretPath string, pollInterval time.Duration, onReload VaultReloadCallback, logger *errors.Logger) *VaultWatcher {
	return &VaultWatcher{
		client:       client,
		secretPath:   secretPath,
		pollInterval: pollInterval,
		onReload:     onReload,
		logger:       logger,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the polling goroutine. It fails if the watcher already runs.
func (vw *VaultWatcher) Start() error {
	vw.mu.Lock()
	defer vw.mu.Unlock()
	if vw.running {
		return fmt.Errorf("vault watcher is already running")
	}
	vw.running = true
	go vw.poll()
	if vw.logger != nil {
		vw.logger.Info("Vault watcher started", "secret_path", vw.secretPath, "poll_interval", vw.pollInterval)
	}
	return nil
}

// Stop halts polling. Stopping a watcher that never started is a no-op.
func (vw *VaultWatcher) Stop() error {
	vw.mu.Lock()
	defer vw.mu.Unlock()
	if !vw.running {
		return nil
	}
	close(vw.stopChan)
	vw.running = false
	if vw.logger != nil {
		vw.logger.Info("Vault watcher stopped")
	}
	return nil
}

func (vw *VaultWatcher) poll() {
	ticker := time.NewTicker(vw.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			vw.pollOnce()
		case <-vw.stopChan:
			return
		}
	}
}

// pollOnce reads the secret and, when its version has advanced, hands the
// fresh certificate material to the callback.
func (vw *VaultWatcher) pollOnce() {
	secret, err := vw.client.GetSecretV2(vw.secretPath)
	if err != nil {
		if vw.logger != nil {
			vw.logger.LogError(err, "Failed to check Vault for updates")
		}
		return
	}
	if secret == nil {
		return
	}

	vw.mu.Lock()
	changed := secret.Version > vw.lastVersion
	if changed {
		vw.lastVersion = secret.Version
	}
	vw.mu.Unlock()
	if !changed {
		return
	}

	if vw.logger != nil {
		vw.logger.Info("Vault secret changed, reloading certificate data",
			"version", secret.Version)
	}
	vw.onReload(certDataFromSecret(secret), nil)
}

func certDataFromSecret(secret *config.VaultSecret) *CertificateData {
	data := &CertificateData{}
	if cert, ok := secret.Data["cert"].(string); ok {
		data.CertContent = cert
	}
	if key, ok := secret.Data["key"].(string); ok {
		data.KeyContent = key
	}
	if ca, ok := secret.Data["ca"].(string); ok {
		data.CAContent = ca
	}
	return data
}

// Status reports watcher state for the health endpoint.
func (vw *VaultWatcher) Status() map[string]any {
	vw.mu.RLock()
	defer vw.mu.RUnlock()
	return map[string]any{
		"running":       vw.running,
		"poll_interval": vw.pollInterval.String(),
		"secret_path":   vw.secretPath,
		"last_version":  vw.lastVersion,
	}
}
