package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// AI Configuration - Global defaults
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout", 60*time.Second)
	v.SetDefault("ai.apiKey", "")
	v.SetDefault("ai.maxRetries", 3)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.useSystemPrompts", true)

	// AI Configuration - Advise operation defaults
	v.SetDefault("ai.advise.provider", "gemini")
	v.SetDefault("ai.advise.model", "")
	v.SetDefault("ai.advise.timeout", 90*time.Second) // Longer timeout for grounded generation
	v.SetDefault("ai.advise.apiKey", "")
	v.SetDefault("ai.advise.maxRetries", 2)
	v.SetDefault("ai.advise.temperature", 0.3) // Lower temperature keeps advice grounded in excerpts
	v.SetDefault("ai.advise.useSystemPrompts", true)

	// AI Configuration - Suggest operation defaults
	v.SetDefault("ai.suggest.provider", "gemini")
	v.SetDefault("ai.suggest.model", "")
	v.SetDefault("ai.suggest.timeout", 60*time.Second)
	v.SetDefault("ai.suggest.apiKey", "")
	v.SetDefault("ai.suggest.maxRetries", 3)
	v.SetDefault("ai.suggest.temperature", 0.1) // Skill lists should be stable across runs
	v.SetDefault("ai.suggest.useSystemPrompts", true)

	// AI Configuration - Embed operation defaults
	v.SetDefault("ai.embed.provider", "gemini")
	v.SetDefault("ai.embed.model", "text-embedding-004")
	v.SetDefault("ai.embed.timeout", 30*time.Second) // Embedding batches return quickly
	v.SetDefault("ai.embed.apiKey", "")
	v.SetDefault("ai.embed.maxRetries", 3)
	v.SetDefault("ai.embed.temperature", 0.0) // Unused by embedding models
	v.SetDefault("ai.embed.useSystemPrompts", false)

	// Circuit Breaker Configuration defaults for all operations
	v.SetDefault("ai.advise.circuitBreaker.enabled", true)
	v.SetDefault("ai.advise.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.advise.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.advise.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.advise.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.advise.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.suggest.circuitBreaker.enabled", true)
	v.SetDefault("ai.suggest.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.suggest.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.suggest.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.suggest.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.suggest.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.embed.circuitBreaker.enabled", true)
	v.SetDefault("ai.embed.circuitBreaker.maxRequests", 5)
	v.SetDefault("ai.embed.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.embed.circuitBreaker.timeout", 30*time.Second)
	v.SetDefault("ai.embed.circuitBreaker.minRequests", 5)
	v.SetDefault("ai.embed.circuitBreaker.failureThreshold", 0.6)

	// RAG Configuration
	v.SetDefault("rag.chunkSize", 1000)
	v.SetDefault("rag.chunkOverlap", 200)
	v.SetDefault("rag.topK", 3)
	v.SetDefault("rag.cacheSize", 16)

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	// TLS Configuration defaults
	v.SetDefault("server.tls.mode", "disabled") // disabled, server, mutual
	v.SetDefault("server.tls.certFile", "")
	v.SetDefault("server.tls.keyFile", "")
	v.SetDefault("server.tls.caFile", "")
	v.SetDefault("server.tls.minVersion", "1.2")           // TLS 1.2 minimum
	v.SetDefault("server.tls.cipherSuites", []string{})    // Use Go defaults
	v.SetDefault("server.tls.clientAuthPolicy", "require") // require, request, verify
	v.SetDefault("server.tls.insecureSkipVerify", false)
	v.SetDefault("server.tls.serverName", "")

	// Auto-reload configuration defaults
	v.SetDefault("server.tls.autoReload.enabled", true)
	v.SetDefault("server.tls.autoReload.checkInterval", 30*time.Second)
	v.SetDefault("server.tls.autoReload.preemptiveRenewal", 72*time.Hour) // 72 hours before expiry
	v.SetDefault("server.tls.autoReload.maxRetries", 3)
	v.SetDefault("server.tls.autoReload.retryDelay", 10*time.Second)

	// File watcher defaults
	v.SetDefault("server.tls.autoReload.fileWatcher.enabled", true)
	v.SetDefault("server.tls.autoReload.fileWatcher.debounceDelay", time.Second)

	// Vault watcher defaults
	v.SetDefault("server.tls.autoReload.vaultWatcher.enabled", false)
	v.SetDefault("server.tls.autoReload.vaultWatcher.pollInterval", 5*time.Minute)
	v.SetDefault("server.tls.autoReload.vaultWatcher.autoRenew", true)
	v.SetDefault("server.tls.autoReload.vaultWatcher.renewThreshold", 24*time.Hour)
	v.SetDefault("server.tls.autoReload.vaultWatcher.secretPath", "")
	// API Authentication defaults
	v.SetDefault("server.apiKeys", []string{})
	// Rate limiting defaults
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)
	v.SetDefault("server.rateLimit.window", time.Minute)

	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 10*1024*1024) // 10MB, resumes arrive as PDFs

	// Vault Configuration
	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.address", "")
	v.SetDefault("vault.token", "")
	v.SetDefault("vault.tokenFile", "")
	v.SetDefault("vault.namespace", "")
	v.SetDefault("vault.secrets.apiKeys", "")
	v.SetDefault("vault.secrets.geminiKey", "")
	v.SetDefault("vault.secrets.tlsCerts", "")

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "careerlens")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)

	// Tracing Configuration
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)

	// Metrics Configuration
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	// Custom Metrics Configuration
	v.SetDefault("observability.customMetrics.aiOperations.enabled", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackDuration", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackTokenUsage", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackModelInfo", true)
	v.SetDefault("observability.customMetrics.businessMetrics.enabled", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackSuccessRates", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackContentSizes", true)
	v.SetDefault("observability.customMetrics.infrastructure.enabled", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackRateLimits", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackCertExpiry", true)

	// Console Configuration
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	// Prometheus Configuration
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	// OTLP Configuration
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})

	// Health Check Configuration
	v.SetDefault("observability.healthCheck.timeout", 15*time.Second)
	v.SetDefault("observability.healthCheck.aiModelCheckTimeout", 10*time.Second)
}
