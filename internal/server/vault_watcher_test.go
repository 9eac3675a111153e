package server

import (
	"fmt"
	"testing"
	"time"

	"careerlens/internal/config"
)

const testTLSSecretPath = "secret/data/careerlens/tls"

// fakeVaultClient serves canned secrets keyed by path.
type fakeVaultClient struct {
	secret *config.VaultSecret
	err    error
}

func (f *fakeVaultClient) GetSecretV2(path string) (*config.VaultSecret, error) {
	if f.err != nil {
		return nil, f.err
	}
	if path != testTLSSecretPath {
		return nil, fmt.Errorf("unexpected path: %s", path)
	}
	return f.secret, nil
}

func (f *fakeVaultClient) GetStringSecret(path, key string) (string, error) {
	secret, err := f.GetSecretV2(path)
	if err != nil {
		return "", err
	}
	value, _ := secret.Data[key].(string)
	return value, nil
}

func (f *fakeVaultClient) GetStringSliceSecret(path, key string) ([]string, error) {
	secret, err := f.GetSecretV2(path)
	if err != nil {
		return nil, err
	}
	value, _ := secret.Data[key].([]string)
	return value, nil
}

func newTestVaultWatcher(client VaultClientInterface) *VaultWatcher {
	callback := func(data *CertificateData, err error) {}
	return NewVaultWatcher(client, testTLSSecretPath, time.Minute, callback, nil)
}

func TestVaultWatcherFetchCertData(t *testing.T) {
	client := &fakeVaultClient{
		secret: &config.VaultSecret{
			Data: map[string]any{
				"cert": "cert-pem",
				"key":  "key-pem",
				"ca":   "ca-pem",
			},
			Version: 1,
		},
	}

	data, err := newTestVaultWatcher(client).fetchNewCertsFromVault()
	if err != nil {
		t.Fatalf("fetchNewCertsFromVault() error: %v", err)
	}
	if data.CertContent != "cert-pem" || data.KeyContent != "key-pem" || data.CAContent != "ca-pem" {
		t.Errorf("certificate data not mapped: %+v", data)
	}
}

func TestVaultWatcherFetchPartialSecret(t *testing.T) {
	// Server-mode TLS stores no CA entry; the missing key must stay empty
	// rather than fail the fetch.
	client := &fakeVaultClient{
		secret: &config.VaultSecret{
			Data:    map[string]any{"cert": "cert-pem", "key": "key-pem"},
			Version: 1,
		},
	}

	data, err := newTestVaultWatcher(client).fetchNewCertsFromVault()
	if err != nil {
		t.Fatalf("fetchNewCertsFromVault() error: %v", err)
	}
	if data.CAContent != "" {
		t.Errorf("CAContent = %q, want empty", data.CAContent)
	}
}

func TestVaultWatcherFetchError(t *testing.T) {
	client := &fakeVaultClient{err: fmt.Errorf("vault sealed")}

	if _, err := newTestVaultWatcher(client).fetchNewCertsFromVault(); err == nil {
		t.Fatal("expected fetch error")
	}
}

func TestVaultWatcherDetectsVersionBump(t *testing.T) {
	client := &fakeVaultClient{
		secret: &config.VaultSecret{Data: map[string]any{}, Version: 2},
	}
	vw := newTestVaultWatcher(client)

	changed, err := vw.checkForUpdates()
	if err != nil {
		t.Fatalf("checkForUpdates() error: %v", err)
	}
	if !changed {
		t.Error("first check against version 2 should report a change")
	}

	// Same version again: no change.
	changed, err = vw.checkForUpdates()
	if err != nil {
		t.Fatalf("checkForUpdates() error: %v", err)
	}
	if changed {
		t.Error("unchanged version should not report a change")
	}

	// Rotation bumps the version.
	client.secret.Version = 3
	changed, err = vw.checkForUpdates()
	if err != nil {
		t.Fatalf("checkForUpdates() error: %v", err)
	}
	if !changed {
		t.Error("version bump should report a change")
	}
}

func TestVaultWatcherStatus(t *testing.T) {
	vw := newTestVaultWatcher(&fakeVaultClient{})

	status := vw.Status()
	if status["secret_path"] != testTLSSecretPath {
		t.Errorf("secret_path = %v, want %s", status["secret_path"], testTLSSecretPath)
	}
	if status["running"] != false {
		t.Error("watcher should not report running before Start")
	}
}
