package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "careerlens/internal/errors"
	"careerlens/internal/extract"
	"careerlens/internal/observability"
	"careerlens/internal/rag"
	"careerlens/internal/resume"
	"careerlens/internal/utils"

	"go.opentelemetry.io/otel/attribute"
)

// createParseHandler wraps the parse handler with observability. It accepts
// either a multipart PDF upload (file field "resume") or a JSON body with
// raw resume text, parses the resume, and registers a retrieval pipeline in
// the session cache so advise/gap calls can reference it by hash.
func (s *Server) createParseHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careerlens.api")
		ctx, span := tracer.Start(ctx, "api.resume.parse")
		defer span.End()

		rawText, err := s.readResumeInput(r)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid resume input", err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(rawText) == "" {
			err := fmt.Errorf("empty resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Empty resume", "resume text or PDF upload is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(rawText)),
			attribute.String("operation", "parse"),
		)

		parsed := resume.Parse(rawText)

		// Build the retrieval pipeline so follow-up questions skip corpus
		// embedding. Embedding happens here, so it is tracked as an AI op.
		metrics := om.GetMetrics()
		var pipeline *rag.Pipeline
		err = metrics.TrackAIOperationWithTokens(ctx, "embed", func(ctx context.Context) *observability.AIOperationResult {
			p, buildErr := rag.NewPipeline(ctx, parsed, s.AI, s.AI, s.pipelineConfig(), s.Logger)
			pipeline = p
			return &observability.AIOperationResult{Error: buildErr}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "pipeline_build"))
			metrics.RecordBusinessMetric(ctx, "resume_parsed", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to build resume session", err.Error(), http.StatusInternalServerError)
			return
		}

		hash := rag.Key(rawText)
		s.Sessions.Put(hash, pipeline)

		response := ParseResponse{
			Resume:     parsed,
			ResumeHash: hash,
			Chunks:     pipeline.ChunkCount(),
		}
		if r.URL.Query().Get("quality") == "true" {
			quality := resume.AnalyzeQuality(parsed)
			response.Quality = &quality
		}

		metrics.RecordBusinessMetric(ctx, "resume_parsed", true, om,
			attribute.Int("sections_found", len(parsed.Metadata.SectionsFound)),
			attribute.Int("chunks", pipeline.ChunkCount()))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.sections_found", len(parsed.Metadata.SectionsFound)),
			attribute.Int("response.chunks", pipeline.ChunkCount()),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// readResumeInput pulls resume text from either a multipart PDF upload or a
// JSON raw-text body, based on the request content type.
func (s *Server) readResumeInput(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(s.MaxRequestSize); err != nil {
			return "", fmt.Errorf("failed to parse multipart form: %w", err)
		}
		file, _, err := r.FormFile("resume")
		if err != nil {
			return "", fmt.Errorf("missing resume file: %w", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				s.Logger.Debug("Failed to close upload", "error", err.Error())
			}
		}()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("failed to read upload: %w", err)
		}
		if !utils.HasPDFHeader(data) {
			return "", fmt.Errorf("uploaded file is not a PDF")
		}
		text, err := extract.ExtractTextFromBytes(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract PDF text: %w", err)
		}
		return text, nil
	}

	var req ParseRequest
	if err := parseJSONRequest(r, &req); err != nil {
		return "", err
	}
	return req.ResumeText, nil
}

// createAdviseHandler wraps the advise handler with observability
func (s *Server) createAdviseHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careerlens.api")
		ctx, span := tracer.Start(ctx, "api.resume.advise")
		defer span.End()

		var req AdviseRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeHash) == "" {
			err := fmt.Errorf("missing resume hash")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume hash", "resumeHash field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Question) == "" {
			err := fmt.Errorf("missing question")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing question", "question field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.question_length", len(req.Question)),
			attribute.String("operation", "advise"),
		)

		pipeline, ok := s.Sessions.Get(req.ResumeHash)
		if !ok {
			err := apperrors.NewValidationError(apperrors.ErrCodeSessionNotFound, "no cached session for resume hash", nil)
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "session"))
			writeErrorResponse(w, "Resume session not found", "parse the resume first, then reuse the returned resumeHash", http.StatusNotFound)
			return
		}

		metrics := om.GetMetrics()
		result, err := pipeline.Advise(ctx, req.Question)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "advice_served", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to generate advice", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "advice_served", true, om,
			attribute.Bool("generated", result.Generated),
			attribute.Int("sources_count", len(result.Sources)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Bool("response.generated", result.Generated),
			attribute.Int("response.answer_length", len(result.Answer)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createGapHandler wraps the skills-gap handler with observability
func (s *Server) createGapHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careerlens.api")
		ctx, span := tracer.Start(ctx, "api.resume.gap")
		defer span.End()

		var req GapRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeHash) == "" {
			err := fmt.Errorf("missing resume hash")
			span.RecordError(err)
			writeErrorResponse(w, "Missing resume hash", "resumeHash field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.TargetRole) == "" {
			err := fmt.Errorf("missing target role")
			span.RecordError(err)
			writeErrorResponse(w, "Missing target role", "targetRole field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("request.target_role", req.TargetRole),
			attribute.String("operation", "gap"),
		)

		pipeline, ok := s.Sessions.Get(req.ResumeHash)
		if !ok {
			err := apperrors.NewValidationError(apperrors.ErrCodeSessionNotFound, "no cached session for resume hash", nil)
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "session"))
			writeErrorResponse(w, "Resume session not found", "parse the resume first, then reuse the returned resumeHash", http.StatusNotFound)
			return
		}

		metrics := om.GetMetrics()
		result, err := pipeline.SkillsGap(ctx, req.TargetRole)
		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "gap_analyzed", false, om)
			writeErrorResponse(w, "Failed to analyze skills gap", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "gap_analyzed", true, om,
			attribute.Int("matching_skills", len(result.MatchingSkills)),
			attribute.Int("missing_skills", len(result.MissingSkills)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("matching_skills", len(result.MatchingSkills)),
			attribute.Int("missing_skills", len(result.MissingSkills)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
