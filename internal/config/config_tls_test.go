package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidateTLSConfig exercises the serve command's TLS validation across
// the three modes, including certificates sourced from Vault content instead
// of files.
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
			name: "server mode with cert files",
			tls: TLSConfig{
				Mode:       "server",
				CertFile:   "/etc/careerlens/tls/server.pem",
				KeyFile:    "/etc/careerlens/tls/server.key",
				MinVersion: "1.2",
			},
			expectError: false,
		},
		{
			name: "server mode with vault-sourced content",
			tls: TLSConfig{
				Mode:        "server",
				CertContent: "cert-pem",
				KeyContent:  "key-pem",
			},
			expectError: false,
		},
		{
			name: "mutual mode with require policy",
			tls: TLSConfig{
				Mode:             "mutual",
				CertFile:         "/etc/careerlens/tls/server.pem",
				KeyFile:          "/etc/careerlens/tls/server.key",
				CAFile:           "/etc/careerlens/tls/ca.pem",
				ClientAuthPolicy: "require",
				MinVersion:       "1.3",
			},
			expectError: false,
		},
		{
			name:        "unknown mode",
			tls:         TLSConfig{Mode: "tls13-only"},
			expectError: true,
			errorMsg:    "invalid TLS mode: tls13-only",
		},
		{
			name: "server mode missing key",
			tls: TLSConfig{
				Mode:     "server",
				CertFile: "/etc/careerlens/tls/server.pem",
			},
			expectError: true,
			errorMsg:    "TLS certificate and key are required for server mode",
		},
		{
			name: "mutual mode missing CA",
			tls: TLSConfig{
				Mode:     "mutual",
				CertFile: "/etc/careerlens/tls/server.pem",
				KeyFile:  "/etc/careerlens/tls/server.key",
			},
			expectError: true,
			errorMsg:    "CA certificate is required for mutual TLS mode",
		},
		{
			name: "mutual mode bad client auth policy",
			tls: TLSConfig{
				Mode:             "mutual",
				CertFile:         "/etc/careerlens/tls/server.pem",
				KeyFile:          "/etc/careerlens/tls/server.key",
				CAFile:           "/etc/careerlens/tls/ca.pem",
				ClientAuthPolicy: "optional",
			},
			expectError: true,
			errorMsg:    "invalid clientAuthPolicy: optional",
		},
		{
			name: "unsupported minimum version",
			tls: TLSConfig{
				Mode:       "server",
				CertFile:   "/etc/careerlens/tls/server.pem",
				KeyFile:    "/etc/careerlens/tls/server.key",
				MinVersion: "1.1",
			},
			expectError: true,
			errorMsg:    "invalid TLS minVersion: 1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Server: ServerConfig{TLS: tt.tls}}
			err := cfg.ValidateTLSConfig()

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateTLSConfigSourceConflicts covers the file-vs-Vault ambiguity:
// a certificate may come from disk or from Vault content, never both.
func TestValidateTLSConfigSourceConflicts(t *testing.T) {
	tests := []struct {
		name     string
		tls      TLSConfig
		errorMsg string
	}{
		{
			name: "cert from both file and vault",
			tls: TLSConfig{
				Mode:        "server",
				CertFile:    "/etc/careerlens/tls/server.pem",
				CertContent: "cert-pem",
				KeyFile:     "/etc/careerlens/tls/server.key",
			},
			errorMsg: "cannot specify both certFile and certContent",
		},
		{
			name: "key from both file and vault",
			tls: TLSConfig{
				Mode:       "server",
				CertFile:   "/etc/careerlens/tls/server.pem",
				KeyFile:    "/etc/careerlens/tls/server.key",
				KeyContent: "key-pem",
			},
			errorMsg: "cannot specify both keyFile and keyContent",
		},
		{
			name: "CA from both file and vault",
			tls: TLSConfig{
				Mode:      "mutual",
				CertFile:  "/etc/careerlens/tls/server.pem",
				KeyFile:   "/etc/careerlens/tls/server.key",
				CAFile:    "/etc/careerlens/tls/ca.pem",
				CAContent: "ca-pem",
			},
			errorMsg: "cannot specify both caFile and caContent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Server: ServerConfig{TLS: tt.tls}}
			err := cfg.ValidateTLSConfig()

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}

	// Mixing the sources across fields is fine: cert from disk, key from Vault.
	cfg := Config{Server: ServerConfig{TLS: TLSConfig{
		Mode:       "server",
		CertFile:   "/etc/careerlens/tls/server.pem",
		KeyContent: "key-pem",
	}}}
	assert.NoError(t, cfg.ValidateTLSConfig())
}
