package ai

import (
	"context"
	"fmt"

	"careerlens/internal/config"
	"careerlens/internal/errors"
)

// Service bundles the AI providers the advice pipeline needs: one for advice
// generation, one for role skill suggestions, one for embeddings. Each
// operation carries its own provider so models, retries and breakers can be
// tuned independently. Service satisfies the pipeline's Embedder and
// AdviceModel contracts.
type Service struct {
	AdviseProvider  AIProvider // Exported for access from server package
	SuggestProvider AIProvider
	EmbedProvider   AIProvider
	logger          *errors.Logger
}

// NewService creates providers for every AI operation from the resolved
// per-operation configurations.
func NewService(cfg *config.Config, logger *errors.Logger) (*Service, error) {
	adviseCfg := cfg.GetAdviseConfig()
	suggestCfg := cfg.GetSuggestConfig()
	embedCfg := cfg.GetEmbedConfig()

	advise, err := newProvider(&adviseCfg, "advise", logger)
	if err != nil {
		return nil, err
	}
	suggest, err := newProvider(&suggestCfg, "suggest", logger)
	if err != nil {
		return nil, err
	}
	embed, err := newProvider(&embedCfg, "embed", logger)
	if err != nil {
		return nil, err
	}

	return &Service{
		AdviseProvider:  advise,
		SuggestProvider: suggest,
		EmbedProvider:   embed,
		logger:          logger,
	}, nil
}

func newProvider(cfg *config.OperationAIConfig, operationType string, logger *errors.Logger) (AIProvider, error) {
	logger.Debug("Initializing AI provider",
		"provider", cfg.Provider,
		"operation_type", operationType,
		"model", cfg.Model,
		"temperature", *cfg.Temperature,
		"timeout", *cfg.Timeout,
		"max_retries", *cfg.MaxRetries,
		"use_system_prompts", *cfg.UseSystemPrompts)

	switch cfg.Provider {
	case "gemini":
		provider, err := NewGeminiProvider(cfg, operationType, logger)
		if err != nil {
			return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
				"Failed to create AI provider", err)
		}
		return provider, nil
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}
}

// GenerateAdvice answers a question over retrieved resume context. Token
// usage is logged; callers that need the counts use the provider directly.
func (s *Service) GenerateAdvice(ctx context.Context, question string, contexts []string, skills []string) (string, error) {
	answer, usage, err := s.AdviseProvider.GenerateAdvice(ctx, question, contexts, skills)
	if err != nil {
		return "", err
	}
	s.logTokens("generate_advice", usage)
	return answer, nil
}

// SuggestRoleSkills returns the skill list the model suggests for a role.
func (s *Service) SuggestRoleSkills(ctx context.Context, role string) ([]string, error) {
	suggestion, usage, err := s.SuggestProvider.SuggestRoleSkills(ctx, role)
	if err != nil {
		return nil, err
	}
	s.logTokens("suggest_role_skills", usage)
	return suggestion.Skills, nil
}

// EmbedTexts embeds a batch of corpus chunks.
func (s *Service) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return s.EmbedProvider.EmbedTexts(ctx, texts)
}

// EmbedQuery embeds a single query string.
func (s *Service) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := s.EmbedProvider.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, errors.NewAIError(errors.ErrCodeEmbeddingFailed, "Empty embedding response for query", nil)
	}
	return vectors[0], nil
}

// GetModelInfo returns information about the advice model for health checks
func (s *Service) GetModelInfo(ctx context.Context) any {
	return s.AdviseProvider.GetModelInfo(ctx)
}

// GetCircuitBreakerStats aggregates breaker statistics across operations
func (s *Service) GetCircuitBreakerStats() map[string]any {
	return map[string]any{
		"advise":  s.AdviseProvider.GetCircuitBreakerStats(),
		"suggest": s.SuggestProvider.GetCircuitBreakerStats(),
		"embed":   s.EmbedProvider.GetCircuitBreakerStats(),
	}
}

// Close releases every provider.
func (s *Service) Close() error {
	for _, p := range []AIProvider{s.AdviseProvider, s.SuggestProvider, s.EmbedProvider} {
		if p != nil {
			if err := p.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Service) logTokens(operation string, usage *TokenUsage) {
	if usage == nil {
		return
	}
	s.logger.Debug("AI token usage",
		"operation", operation,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
		"total_tokens", usage.TotalTokens)
}
