package ai

import (
	"context"

	"careerlens/internal/types"
)

// AIProvider interface for different AI implementations
// Generation methods return token usage information - callers can ignore it if not needed
type AIProvider interface {
	GenerateAdvice(ctx context.Context, question string, contexts []string, skills []string) (string, *TokenUsage, error)
	SuggestRoleSkills(ctx context.Context, role string) (types.RoleSkills, *TokenUsage, error)
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	GetCircuitBreakerStats() map[string]any
	Close() error
}
