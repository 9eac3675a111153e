package server

import (
	"time"

	"careerlens/internal/ai"
	"careerlens/internal/config"
	apperrors "careerlens/internal/errors"
	"careerlens/internal/rag"
	"careerlens/internal/types"
)

// ParseRequest represents a raw-text request body for the parse endpoint.
// PDF uploads use multipart form data instead and skip this struct.
type ParseRequest struct {
	ResumeText string `json:"resumeText"`
}

// ParseResponse carries the parsed resume plus the hash callers use to
// reference the cached session on follow-up advise/gap requests.
type ParseResponse struct {
	Resume     types.ParsedResume     `json:"resume"`
	Quality    *types.QualityAnalysis `json:"quality,omitempty"`
	ResumeHash string                 `json:"resumeHash"`
	Chunks     int                    `json:"chunks"`
}

type AdviseRequest struct {
	ResumeHash string `json:"resumeHash"`
	Question   string `json:"question"`
}

type GapRequest struct {
	ResumeHash string `json:"resumeHash"`
	TargetRole string `json:"targetRole"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate management
	CertificateManager *CertificateManager

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// AI providers, shared by every request
	AI *ai.Service

	// Resume sessions keyed by content hash
	Sessions *rag.SessionCache

	// Logger
	Logger *apperrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
// (Refactored to reduce long parameter list in NewServer)
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct.
// The AI service and session cache are created once here; handlers must
// not build their own providers per request.
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *apperrors.Logger) (*Server, error) {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	aiService, err := ai.NewService(appCfg, logger)
	if err != nil {
		return nil, err
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		AI:             aiService,
		Sessions:       rag.NewSessionCache(appCfg.RAG.CacheSize),
		Logger:         logger,
	}, nil
}

// pipelineConfig derives retrieval settings from the application config.
func (s *Server) pipelineConfig() rag.PipelineConfig {
	return rag.PipelineConfig{
		ChunkSize:    s.AppConfig.RAG.ChunkSize,
		ChunkOverlap: s.AppConfig.RAG.ChunkOverlap,
		TopK:         s.AppConfig.RAG.TopK,
	}
}
