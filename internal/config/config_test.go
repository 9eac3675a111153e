package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() Config {
	return Config{
		AI: AIConfig{
			Provider:    "gemini",
			Model:       "gemini-2.0-flash",
			Timeout:     30 * time.Second,
			APIKey:      "test-key",
			MaxRetries:  3,
			Temperature: 0.7,
		},
		RAG: RAGConfig{
			ChunkSize:    1000,
			ChunkOverlap: 200,
			TopK:         3,
			CacheSize:    16,
		},
		Server: ServerConfig{
			Port: "8080",
			TLS:  TLSConfig{Mode: "disabled"},
		},
		App: AppConfig{
			DefaultFormat:    "text",
			SupportedFormats: []string{"text", "json", "markdown"},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		errorMsg string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:     "missing API key",
			mutate:   func(c *Config) { c.AI.APIKey = "" },
			errorMsg: "AI API key is required",
		},
		{
			name:     "non-positive AI timeout",
			mutate:   func(c *Config) { c.AI.Timeout = 0 },
			errorMsg: "AI timeout must be positive",
		},
		{
			name:     "missing server port",
			mutate:   func(c *Config) { c.Server.Port = "" },
			errorMsg: "server port is required",
		},
		{
			name:     "zero chunk size",
			mutate:   func(c *Config) { c.RAG.ChunkSize = 0 },
			errorMsg: "RAG chunk size must be positive",
		},
		{
			name:     "negative chunk overlap",
			mutate:   func(c *Config) { c.RAG.ChunkOverlap = -1 },
			errorMsg: "RAG chunk overlap must be non-negative",
		},
		{
			name:     "overlap not smaller than chunk size",
			mutate:   func(c *Config) { c.RAG.ChunkOverlap = 1000 },
			errorMsg: "smaller than the chunk size",
		},
		{
			name:     "zero topK",
			mutate:   func(c *Config) { c.RAG.TopK = 0 },
			errorMsg: "RAG topK must be positive",
		},
		{
			name:     "unsupported default format",
			mutate:   func(c *Config) { c.App.DefaultFormat = "yaml" },
			errorMsg: "invalid default format: yaml",
		},
		{
			name:     "TLS errors surface through Validate",
			mutate:   func(c *Config) { c.Server.TLS.Mode = "bogus" },
			errorMsg: "TLS configuration error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.errorMsg == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			}
		})
	}
}

// TestGetAdviseConfig checks that the advise operation inherits global AI
// settings unless overridden, including the advise prompt text and file path.
func TestGetAdviseConfig(t *testing.T) {
	cfg := validTestConfig()
	cfg.AI.CustomPrompts.SystemPrompts.Advise = "global advise system prompt"
	cfg.AI.CustomPrompts.UserPrompts.AdviseFile = "prompts/advise_user.txt"

	op := cfg.GetAdviseConfig()
	assert.Equal(t, "gemini", op.Provider)
	assert.Equal(t, "gemini-2.0-flash", op.Model)
	assert.Equal(t, "test-key", op.APIKey)
	require.NotNil(t, op.Timeout)
	assert.Equal(t, 30*time.Second, *op.Timeout)
	assert.Equal(t, "global advise system prompt", op.CustomPrompts.SystemPrompts.Advise)
	assert.Equal(t, "prompts/advise_user.txt", op.CustomPrompts.UserPrompts.AdviseFile)

	// Operation-level settings win over globals.
	cfg.AI.Advise.Model = "gemini-2.0-pro"
	cfg.AI.Advise.CustomPrompts.SystemPrompts.Advise = "advise-specific prompt"
	op = cfg.GetAdviseConfig()
	assert.Equal(t, "gemini-2.0-pro", op.Model)
	assert.Equal(t, "advise-specific prompt", op.CustomPrompts.SystemPrompts.Advise)
}

// TestGetSuggestConfig checks the suggest-skills prompt fallback chain.
func TestGetSuggestConfig(t *testing.T) {
	cfg := validTestConfig()
	cfg.AI.CustomPrompts.SystemPrompts.SuggestSkills = "global suggest prompt"
	cfg.AI.CustomPrompts.SystemPrompts.SuggestSkillsFile = "prompts/suggest_system.txt"

	op := cfg.GetSuggestConfig()
	assert.Equal(t, "gemini-2.0-flash", op.Model)
	assert.Equal(t, "global suggest prompt", op.CustomPrompts.SystemPrompts.SuggestSkills)
	assert.Equal(t, "prompts/suggest_system.txt", op.CustomPrompts.SystemPrompts.SuggestSkillsFile)

	cfg.AI.Suggest.Temperature = float32Ptr(0.2)
	op = cfg.GetSuggestConfig()
	require.NotNil(t, op.Temperature)
	assert.Equal(t, float32(0.2), *op.Temperature)
}

// TestGetEmbedConfig checks that embedding falls back to the dedicated
// embedding model rather than the global chat model.
func TestGetEmbedConfig(t *testing.T) {
	cfg := validTestConfig()

	op := cfg.GetEmbedConfig()
	assert.Equal(t, "text-embedding-004", op.Model)
	assert.Equal(t, "test-key", op.APIKey)

	cfg.AI.Embed.Model = "gemini-embedding-001"
	op = cfg.GetEmbedConfig()
	assert.Equal(t, "gemini-embedding-001", op.Model)
}

func float32Ptr(v float32) *float32 { return &v }
