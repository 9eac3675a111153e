package config

import (
	"os"
	"path/filepath"
	"testing"

	"careerlens/internal/errors"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVaultTestLogger() *errors.Logger {
	logger, _ := errors.New("error")
	return logger
}

// A Gemini key from Vault must reach every operation provider, but an
// operation-level key set in the config file keeps precedence.
func TestApplyGeminiKeyFanOut(t *testing.T) {
	cfg := &Config{}
	applyGeminiKeyToConfig(cfg, "vault-gemini-key")

	assert.Equal(t, "vault-gemini-key", cfg.AI.APIKey)
	assert.Equal(t, "vault-gemini-key", cfg.AI.Advise.APIKey)
	assert.Equal(t, "vault-gemini-key", cfg.AI.Suggest.APIKey)
	assert.Equal(t, "vault-gemini-key", cfg.AI.Embed.APIKey)

	cfg = &Config{AI: AIConfig{Suggest: OperationAIConfig{APIKey: "suggest-key"}}}
	applyGeminiKeyToConfig(cfg, "vault-gemini-key")

	assert.Equal(t, "vault-gemini-key", cfg.AI.Advise.APIKey)
	assert.Equal(t, "suggest-key", cfg.AI.Suggest.APIKey)
	assert.Equal(t, "vault-gemini-key", cfg.AI.Embed.APIKey)
}

func TestResolveVaultToken(t *testing.T) {
	logger := newVaultTestLogger()

	t.Run("direct token", func(t *testing.T) {
		token, err := resolveVaultToken(VaultConfig{Token: "direct-token"}, logger)
		assert.NoError(t, err)
		assert.Equal(t, "direct-token", token)
	})

	t.Run("token file is read and trimmed", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "vault-token")
		require.NoError(t, os.WriteFile(tokenFile, []byte("  file-token  \n"), 0600))

		token, err := resolveVaultToken(VaultConfig{TokenFile: tokenFile}, logger)
		assert.NoError(t, err)
		assert.Equal(t, "file-token", token)
	})

	t.Run("unreadable token file", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{TokenFile: "/nonexistent/token"}, logger)
		assert.ErrorContains(t, err, "failed to read vault token file")
	})

	t.Run("whitespace-only token file", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "empty-token")
		require.NoError(t, os.WriteFile(tokenFile, []byte("   \n"), 0600))

		_, err := resolveVaultToken(VaultConfig{TokenFile: tokenFile}, logger)
		assert.ErrorContains(t, err, "vault token is required")
	})

	t.Run("no token configured", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{}, logger)
		assert.ErrorContains(t, err, "vault token is required")
	})
}

// Vault TLS secrets carry PEM content under cert/key/ca; missing or
// non-string entries are skipped rather than treated as errors.
func TestLoadTLSCertificateContent(t *testing.T) {
	logger := newVaultTestLogger()

	tests := []struct {
		name      string
		data      map[string]any
		wantCount int
		wantCert  string
		wantKey   string
		wantCA    string
	}{
		{
			name:      "full certificate set",
			data:      map[string]any{"cert": "cert-pem", "key": "key-pem", "ca": "ca-pem"},
			wantCount: 3,
			wantCert:  "cert-pem",
			wantKey:   "key-pem",
			wantCA:    "ca-pem",
		},
		{
			name:      "cert only",
			data:      map[string]any{"cert": "cert-pem"},
			wantCount: 1,
			wantCert:  "cert-pem",
		},
		{
			name:      "empty and non-string entries skipped",
			data:      map[string]any{"cert": "", "key": 7},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			count := loadTLSCertificateContent(cfg, &VaultSecret{Data: tt.data}, logger)

			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantCert, cfg.Server.TLS.CertContent)
			assert.Equal(t, tt.wantKey, cfg.Server.TLS.KeyContent)
			assert.Equal(t, tt.wantCA, cfg.Server.TLS.CAContent)
		})
	}
}

// File-path fields in the TLS secret were replaced by inline content and
// must be rejected loudly.
func TestValidateTLSDeprecatedFields(t *testing.T) {
	logger := newVaultTestLogger()

	ok := &VaultSecret{Data: map[string]any{"cert": "cert-pem", "key": "key-pem"}}
	assert.NoError(t, validateTLSDeprecatedFields(ok, logger))

	for _, field := range []string{"cert_file", "key_file", "ca_file"} {
		t.Run(field, func(t *testing.T) {
			secret := &VaultSecret{Data: map[string]any{field: "/some/path"}}
			err := validateTLSDeprecatedFields(secret, logger)
			require.Error(t, err)
			assert.Contains(t, err.Error(), field)
			assert.Contains(t, err.Error(), "no longer supported")
		})
	}
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	cfg := &Config{Vault: VaultConfig{Enabled: false}}
	assert.NoError(t, ApplyVaultSecrets(cfg, newVaultTestLogger()))
}

// KVv2 wraps the payload in a "data" envelope and the version in "metadata".
func TestExtractKVv2Envelope(t *testing.T) {
	vc := &VaultClient{logger: newVaultTestLogger()}

	secret := &api.Secret{Data: map[string]interface{}{
		"data":     map[string]interface{}{"gemini_api_key": "k"},
		"metadata": map[string]interface{}{"version": float64(3)},
	}}

	data, err := vc.extractSecretData(secret, "secret/careerlens")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"gemini_api_key": "k"}, data)

	version, err := vc.extractSecretVersion(secret, "secret/careerlens")
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)

	malformed := &api.Secret{Data: map[string]interface{}{"data": "not-a-map"}}
	_, err = vc.extractSecretData(malformed, "secret/careerlens")
	assert.Error(t, err)
	_, err = vc.extractSecretVersion(malformed, "secret/careerlens")
	assert.Error(t, err)
}

func TestParseVersionValue(t *testing.T) {
	tests := []struct {
		name        string
		input       interface{}
		expected    int64
		expectError bool
	}{
		{name: "int64", input: int64(7), expected: 7},
		{name: "float64", input: float64(7), expected: 7},
		{name: "numeric string", input: "7", expected: 7},
		{name: "non-numeric string", input: "seven", expectError: true},
		{name: "unsupported type", input: []string{"7"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseVersionValue(tt.input, "secret/careerlens")

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
