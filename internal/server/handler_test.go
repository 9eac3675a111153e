package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careerlens/internal/errors"
	"careerlens/internal/observability"
	"careerlens/internal/rag"
)

func newTestServer() *Server {
	return &Server{
		Host:           "127.0.0.1",
		Port:           "8080",
		Version:        "test",
		APIKeys:        map[string]bool{},
		MaxRequestSize: 1 << 20,
		Sessions:       rag.NewSessionCache(4),
		Logger:         errors.NewLogger(slog.LevelError),
	}
}

func newDisabledObservability(t *testing.T) *observability.ObservabilityManager {
	t.Helper()
	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("failed to create observability manager: %v", err)
	}
	return om
}

func TestAuthMiddleware(t *testing.T) {
	s := newTestServer()
	s.APIKeys = map[string]bool{"valid-key-12345": true}

	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{
			name:       "missing key",
			headers:    nil,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid key",
			headers:    map[string]string{"X-API-Key": "wrong"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid header key",
			headers:    map[string]string{"X-API-Key": "valid-key-12345"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid bearer token",
			headers:    map[string]string{"Authorization": "Bearer valid-key-12345"},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/parse", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestAuthMiddlewareSkipsWhenNoKeysConfigured(t *testing.T) {
	s := newTestServer()
	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/parse", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("maskAPIKey(short) = %q, want ****", got)
	}
	if got := maskAPIKey("abcdefgh12345678"); got != "abcdefgh****" {
		t.Errorf("maskAPIKey = %q, want abcdefgh****", got)
	}
}

func TestParseJSONRequestRequiresContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/advise",
		strings.NewReader(`{"resumeHash":"abc","question":"q"}`))

	var body AdviseRequest
	if err := parseJSONRequest(req, &body); err == nil {
		t.Error("expected error for missing content type")
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/resume/advise",
		strings.NewReader(`{"resumeHash":"abc","question":"q"}`))
	req.Header.Set("Content-Type", "application/json")
	if err := parseJSONRequest(req, &body); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if body.ResumeHash != "abc" || body.Question != "q" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestAdviseHandlerValidation(t *testing.T) {
	s := newTestServer()
	om := newDisabledObservability(t)
	handler := s.createAdviseHandler(om)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "missing hash",
			body:       `{"question":"what next?"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing question",
			body:       `{"resumeHash":"abc"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown session",
			body:       `{"resumeHash":"deadbeef","question":"what next?"}`,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/advise", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			handler(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var errResp ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if errResp.Error == "" {
				t.Error("expected error field to be set")
			}
		})
	}
}

func TestGapHandlerUnknownSession(t *testing.T) {
	s := newTestServer()
	om := newDisabledObservability(t)
	handler := s.createGapHandler(om)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/gap",
		strings.NewReader(`{"resumeHash":"deadbeef","targetRole":"Data Engineer"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestReadResumeInputJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/parse",
		strings.NewReader(`{"resumeText":"Skills: Python, SQL"}`))
	req.Header.Set("Content-Type", "application/json")

	text, err := s.readResumeInput(req)
	if err != nil {
		t.Fatalf("readResumeInput failed: %v", err)
	}
	if text != "Skills: Python, SQL" {
		t.Errorf("text = %q", text)
	}
}

func TestReadResumeInputRejectsNonPDFUpload(t *testing.T) {
	s := newTestServer()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", "resume.pdf")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := fw.Write([]byte("plain text pretending to be a PDF")); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/parse", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	if _, err := s.readResumeInput(req); err == nil {
		t.Error("expected error for non-PDF upload")
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	s := newTestServer()
	s.MaxRequestSize = 32

	middleware := s.requestSizeLimitMiddleware()
	handler := middleware(func(w http.ResponseWriter, r *http.Request) {
		var body AdviseRequest
		if err := parseJSONRequest(r, &body); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	bigBody := `{"resumeHash":"` + strings.Repeat("a", 100) + `","question":"q"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/advise", strings.NewReader(bigBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
