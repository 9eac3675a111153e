package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"strings"
	"time"

	"careerlens/internal/config"
	apperrors "careerlens/internal/errors"
	"careerlens/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// GeminiProvider implements AIProvider for Google Gemini
type GeminiProvider struct {
	client         *genai.Client
	httpClient     *http.Client
	config         *config.OperationAIConfig
	circuitBreaker *AICircuitBreaker
	modelBreaker   *ModelCircuitBreaker
	embedBreaker   *EmbedCircuitBreaker
	logger         *apperrors.Logger
}

// Ensure GeminiProvider implements AIProvider
var _ AIProvider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance for a specific operation
func NewGeminiProvider(cfg *config.OperationAIConfig, operationType string, logger *apperrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, apperrors.NewAIError(apperrors.ErrCodeAIServiceFailed,
			"Failed to create Gemini client", err)
	}

	return &GeminiProvider{
		client: client,
		httpClient: &http.Client{
			Timeout: *cfg.Timeout,
		},
		config:         cfg,
		circuitBreaker: NewAICircuitBreaker(operationType, cfg, logger),
		modelBreaker:   NewModelCircuitBreaker(operationType, cfg, logger),
		embedBreaker:   NewEmbedCircuitBreaker(operationType, cfg, logger),
		logger:         logger,
	}, nil
}

// ModelInfo represents information about the AI model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	checkCtx, cancel := context.WithTimeout(ctx, modelCheckTimeout)
	defer cancel()

	model, err := g.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)
		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return modelInfo
	}

	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"provider", g.config.Provider,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

const modelCheckTimeout = 10 * time.Second

// executeWithRetry executes an AI call with retry logic and exponential backoff
func executeWithRetry[T any](g *GeminiProvider, ctx context.Context, operation string, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= *g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying AI operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", *g.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			backoff := min(baseDelay+jitter, 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("AI operation succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1,
					"total_attempts", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		// Don't retry on certain errors (auth, invalid input, etc.)
		if !g.isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	g.logger.LogError(lastErr, "AI operation failed after all retry attempts",
		"operation", operation,
		"total_attempts", *g.config.MaxRetries+1)

	return zero, fmt.Errorf("operation '%s' failed after %d retries: %w", operation, *g.config.MaxRetries, lastErr)
}

// isRetryableError determines if an error should trigger a retry
func (g *GeminiProvider) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Network errors (timeouts, connection issues) are worth retrying
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Google API errors with transient HTTP status codes
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// executeAIOperation is a generic helper to run generation operations with common tracing, circuit breaker, and parsing logic.
func executeAIOperation[Out any](
	g *GeminiProvider,
	ctx context.Context,
	operationName string,
	userPrompt string,
	systemPrompt string,
	genaiConfig *genai.GenerateContentConfig,
	spanAttributes ...attribute.KeyValue,
) (Out, *TokenUsage, error) {
	var output Out
	tracer := otel.Tracer("careerlens.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+operationName)
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(*g.config.Temperature)),
	)
	span.SetAttributes(spanAttributes...)

	if *g.config.UseSystemPrompts && systemPrompt != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return executeWithRetry(g, ctx, operationName, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(userPrompt), genaiConfig)
		})
	})

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, apperrors.NewAIError(apperrors.ErrCodeAIServiceFailed, "Failed to generate content for "+operationName, err)
	}

	if err := json.Unmarshal([]byte(result.Text()), &output); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, apperrors.NewAIError("AI_RESPONSE_PARSE_FAILED", "Failed to parse AI response for "+operationName, err)
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return output, tokenUsage, nil
}

// adviceResponse is the structured shape advice generations are constrained to.
type adviceResponse struct {
	Answer string `json:"answer"`
}

// GenerateAdvice implements AIProvider for grounded career-advice answers
func (g *GeminiProvider) GenerateAdvice(ctx context.Context, question string, contexts []string, skills []string) (string, *TokenUsage, error) {
	systemPrompt, userPrompt := g.getPromptsForAdvise(question, contexts, skills)
	genaiConfig := g.buildAdviseSchema()

	output, tokenUsage, err := executeAIOperation[adviceResponse](
		g,
		ctx,
		"generate_advice",
		userPrompt,
		systemPrompt,
		genaiConfig,
		attribute.Int("input.question_length", len(question)),
		attribute.Int("input.context_chunks", len(contexts)),
		attribute.Int("input.skill_count", len(skills)),
	)
	if err != nil {
		return "", nil, err
	}
	return output.Answer, tokenUsage, nil
}

// SuggestRoleSkills implements AIProvider for role skill suggestions
func (g *GeminiProvider) SuggestRoleSkills(ctx context.Context, role string) (types.RoleSkills, *TokenUsage, error) {
	systemPrompt, userPrompt := g.getPromptsForSuggest(role)
	genaiConfig := g.buildSuggestSchema()

	output, tokenUsage, err := executeAIOperation[types.RoleSkills](
		g,
		ctx,
		"suggest_role_skills",
		userPrompt,
		systemPrompt,
		genaiConfig,
		attribute.String("input.role", role),
	)
	if err != nil {
		return types.RoleSkills{}, nil, err
	}
	return output, tokenUsage, nil
}

// EmbedTexts implements AIProvider: it embeds a batch of texts with the
// provider's embedding model.
func (g *GeminiProvider) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	tracer := otel.Tracer("careerlens.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini.embed_texts")
	defer span.End()
	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Int("input.text_count", len(texts)),
	)

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	result, err := g.embedBreaker.ExecuteEmbed(func() (*genai.EmbedContentResponse, error) {
		return executeWithRetry(g, ctx, "embed_texts", func() (*genai.EmbedContentResponse, error) {
			return g.client.Models.EmbedContent(ctx, g.config.Model, contents, &genai.EmbedContentConfig{})
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return nil, apperrors.NewAIError(apperrors.ErrCodeEmbeddingFailed, "Failed to embed texts", err)
	}

	vectors := make([][]float32, 0, len(result.Embeddings))
	for _, embedding := range result.Embeddings {
		vectors = append(vectors, embedding.Values)
	}
	if len(vectors) != len(texts) {
		err := fmt.Errorf("embedding count mismatch: sent %d texts, got %d vectors", len(texts), len(vectors))
		span.RecordError(err)
		return nil, apperrors.NewAIError(apperrors.ErrCodeEmbeddingFailed, "Embedding response incomplete", err)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return vectors, nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"ai_operations":    g.circuitBreaker.GetStats(),
		"model_operations": g.modelBreaker.GetModelStats(),
		"embed_operations": g.embedBreaker.GetEmbedStats(),
	}

	stats["overall_healthy"] = g.circuitBreaker.IsHealthy() &&
		g.modelBreaker.IsModelHealthy() &&
		g.embedBreaker.IsEmbedHealthy()

	return stats
}

// Close implements AIProvider interface
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	// Probably needed in streaming mode
	return nil
}

// buildAdviseSchema creates the schema for advice generations
func (g *GeminiProvider) buildAdviseSchema() *genai.GenerateContentConfig {
	genaiConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"answer": {Type: genai.TypeString},
			},
			Required: []string{"answer"},
		},
	}
	if *g.config.Temperature > 0 {
		genaiConfig.Temperature = g.config.Temperature
	}
	return genaiConfig
}

// buildSuggestSchema creates the schema for role skill suggestions
func (g *GeminiProvider) buildSuggestSchema() *genai.GenerateContentConfig {
	genaiConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"role": {Type: genai.TypeString},
				"skills": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"role", "skills"},
		},
	}
	if *g.config.Temperature > 0 {
		genaiConfig.Temperature = g.config.Temperature
	}
	return genaiConfig
}

// getPromptsForAdvise returns system and user prompts for advice generation
func (g *GeminiProvider) getPromptsForAdvise(question string, contexts []string, skills []string) (string, string) {
	systemPrompt := g.getSystemPrompt("advise")
	userPrompt := g.getUserPrompt("advise")

	contextBlock := "No resume excerpts were retrieved."
	if len(contexts) > 0 {
		contextBlock = strings.Join(contexts, "\n\n")
	}
	skillsBlock := "No skills were extracted."
	if len(skills) > 0 {
		skillsBlock = strings.Join(skills, ", ")
	}

	return systemPrompt, fmt.Sprintf(userPrompt, contextBlock, skillsBlock, question)
}

// getPromptsForSuggest returns system and user prompts for skill suggestions
func (g *GeminiProvider) getPromptsForSuggest(role string) (string, string) {
	return g.getSystemPrompt("suggest"), fmt.Sprintf(g.getUserPrompt("suggest"), role)
}

// getSystemPrompt returns the appropriate system prompt
func (g *GeminiProvider) getSystemPrompt(promptType string) string {
	loadedPrompts, configPrompts := g.getPrompts(promptType)
	var configSystemPrompts *config.SystemPrompts
	if configPrompts != nil {
		configSystemPrompts = &configPrompts.SystemPrompts
	} else {
		configSystemPrompts = &config.SystemPrompts{}
	}

	switch promptType {
	case "advise":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.Advise,
			configSystemPrompts.Advise,
			DefaultSystemPrompts.Advise,
		)
	case "suggest":
		return resolvePrompt(
			loadedPrompts.SystemPrompts.SuggestSkills,
			configSystemPrompts.SuggestSkills,
			DefaultSystemPrompts.SuggestSkills,
		)
	default:
		return ""
	}
}

// getUserPrompt returns the appropriate user prompt template
func (g *GeminiProvider) getUserPrompt(promptType string) string {
	loadedPrompts, configPrompts := g.getPrompts(promptType)
	var configUserPrompts *config.UserPrompts
	if configPrompts != nil {
		configUserPrompts = &configPrompts.UserPrompts
	} else {
		configUserPrompts = &config.UserPrompts{}
	}

	switch promptType {
	case "advise":
		return resolvePrompt(
			loadedPrompts.UserPrompts.Advise,
			configUserPrompts.Advise,
			DefaultUserPrompts.Advise,
		)
	case "suggest":
		return resolvePrompt(
			loadedPrompts.UserPrompts.SuggestSkills,
			configUserPrompts.SuggestSkills,
			DefaultUserPrompts.SuggestSkills,
		)
	default:
		return ""
	}
}

// TokenUsage represents token usage information from AI responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// extractTokenUsage extracts token usage information from Gemini API response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}

// getPrompts returns the appropriate prompts for the operation, prioritizing loaded content over config
func (g *GeminiProvider) getPrompts(operationType string) (config.OperationLoadedPrompts, *config.PromptConfig) {
	loadedPrompts := config.GetPromptsForOperation(operationType)
	configPrompts := &g.config.CustomPrompts
	return loadedPrompts, configPrompts
}

// resolvePrompt selects the correct prompt string based on a clear priority order:
// 1. A prompt loaded from a file.
// 2. A prompt defined directly in the configuration.
// 3. A hardcoded default prompt.
func resolvePrompt(loadedFromFile, fromConfig, fromDefault string) string {
	if loadedFromFile != "" {
		return loadedFromFile
	}
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
