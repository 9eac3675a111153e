package rag

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	apperrors "careerlens/internal/errors"
	"careerlens/internal/types"
)

type fakeEmbedder struct {
	batchErr error
	queryErr error
}

// Embeds text as a tiny letter-frequency vector so related strings score
// higher than unrelated ones.
func (f *fakeEmbedder) embed(text string) []float32 {
	vec := make([]float32, 26)
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			vec[r-'a']++
		}
	}
	return vec
}

func (f *fakeEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = f.embed(t)
	}
	return out, nil
}

func (f *fakeEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.embed(text), nil
}

type fakeModel struct {
	adviceErr  error
	skills     []string
	skillsErr  error
	lastSkills []string
}

func (f *fakeModel) GenerateAdvice(_ context.Context, question string, contexts []string, skills []string) (string, error) {
	f.lastSkills = skills
	if f.adviceErr != nil {
		return "", f.adviceErr
	}
	return "generated advice for: " + question, nil
}

func (f *fakeModel) SuggestRoleSkills(_ context.Context, role string) ([]string, error) {
	if f.skillsErr != nil {
		return nil, f.skillsErr
	}
	return f.skills, nil
}

func testLogger() *apperrors.Logger {
	return apperrors.NewLogger(slog.LevelError)
}

func testResume() types.ParsedResume {
	return types.ParsedResume{
		Skills:     []string{"Go", "Python", "SQL"},
		Education:  []string{"BSc Computer Science"},
		Experience: []string{"Backend engineer at Acme"},
		RawText:    "Backend engineer with Go and Python experience.",
	}
}

func buildPipeline(t *testing.T, embedder Embedder, model AdviceModel) *Pipeline {
	t.Helper()
	p, err := NewPipeline(context.Background(), testResume(), embedder, model, PipelineConfig{}, testLogger())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return p
}

func TestPipelineAdviseGenerative(t *testing.T) {
	model := &fakeModel{}
	p := buildPipeline(t, &fakeEmbedder{}, model)

	out, err := p.Advise(context.Background(), "How do I grow as a backend engineer?")
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if !out.Generated {
		t.Error("expected the generative strategy to answer")
	}
	if !strings.Contains(out.Answer, "generated advice") {
		t.Errorf("unexpected answer: %q", out.Answer)
	}
	if len(out.Sources) == 0 {
		t.Error("expected retrieved sources")
	}
	if len(model.lastSkills) != 3 {
		t.Errorf("resume skills not passed to the model: %v", model.lastSkills)
	}
}

func TestPipelineAdviseExtractiveFallback(t *testing.T) {
	model := &fakeModel{adviceErr: errors.New("model unavailable")}
	p := buildPipeline(t, &fakeEmbedder{}, model)

	out, err := p.Advise(context.Background(), "What roles fit my experience?")
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if out.Generated {
		t.Error("expected the extractive fallback, not a generative answer")
	}
	if !strings.Contains(out.Answer, "relevant excerpts") {
		t.Errorf("extractive answer missing excerpts: %q", out.Answer)
	}
}

func TestPipelineAdviseQueryEmbeddingFallback(t *testing.T) {
	model := &fakeModel{}
	p := buildPipeline(t, &fakeEmbedder{queryErr: errors.New("embedding down")}, model)

	out, err := p.Advise(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if len(out.Sources) == 0 {
		t.Error("expected leading chunks as fallback sources")
	}
}

func TestPipelineBuildEmbeddingFailure(t *testing.T) {
	_, err := NewPipeline(context.Background(), testResume(), &fakeEmbedder{batchErr: errors.New("quota")}, &fakeModel{}, PipelineConfig{}, testLogger())
	if err == nil {
		t.Fatal("expected an error when corpus embedding fails")
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrCodeEmbeddingFailed {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPipelineSkillsGap(t *testing.T) {
	model := &fakeModel{skills: []string{"Go", "Kubernetes", "Terraform", "sql"}}
	p := buildPipeline(t, &fakeEmbedder{}, model)

	out, err := p.SkillsGap(context.Background(), "platform engineer")
	if err != nil {
		t.Fatalf("SkillsGap: %v", err)
	}
	if out.TargetRole != "platform engineer" {
		t.Errorf("targetRole = %q", out.TargetRole)
	}
	// Matching is case-insensitive: "sql" matches the resume's "SQL".
	wantMatching := []string{"Go", "sql"}
	if len(out.MatchingSkills) != 2 || out.MatchingSkills[0] != wantMatching[0] || out.MatchingSkills[1] != wantMatching[1] {
		t.Errorf("matchingSkills = %v, want %v", out.MatchingSkills, wantMatching)
	}
	wantMissing := []string{"Kubernetes", "Terraform"}
	if len(out.MissingSkills) != 2 || out.MissingSkills[0] != wantMissing[0] || out.MissingSkills[1] != wantMissing[1] {
		t.Errorf("missingSkills = %v, want %v", out.MissingSkills, wantMissing)
	}
	if out.Advice == "" {
		t.Error("expected narrative advice")
	}
}

func TestPipelineSkillsGapSuggestionFailure(t *testing.T) {
	model := &fakeModel{skillsErr: errors.New("schema error")}
	p := buildPipeline(t, &fakeEmbedder{}, model)

	out, err := p.SkillsGap(context.Background(), "data engineer")
	if err != nil {
		t.Fatalf("SkillsGap should degrade, got error: %v", err)
	}
	if len(out.RequiredSkills) != 0 || len(out.MissingSkills) != 0 {
		t.Errorf("expected empty structured comparison, got %+v", out)
	}
	if out.Advice == "" {
		t.Error("advice should survive a suggestion failure")
	}
}

func TestBuildCorpus(t *testing.T) {
	corpus := BuildCorpus(testResume())

	if !strings.HasPrefix(corpus, "Backend engineer with Go and Python experience.") {
		t.Error("corpus must start with the raw text")
	}
	for _, want := range []string{"Go\nPython\nSQL", "BSc Computer Science", "Backend engineer at Acme"} {
		if !strings.Contains(corpus, want) {
			t.Errorf("corpus missing %q", want)
		}
	}
}

func TestSessionCache(t *testing.T) {
	cache := NewSessionCache(2)
	p := &Pipeline{}

	keyA, keyB, keyC := Key("resume a"), Key("resume b"), Key("resume c")
	if keyA == keyB {
		t.Fatal("distinct content must hash to distinct keys")
	}

	cache.Put(keyA, p)
	cache.Put(keyB, p)
	if _, ok := cache.Get(keyA); !ok {
		t.Fatal("keyA should be cached")
	}

	// keyB is now least recently used and gets evicted.
	cache.Put(keyC, p)
	if _, ok := cache.Get(keyB); ok {
		t.Error("keyB should have been evicted")
	}
	if _, ok := cache.Get(keyA); !ok {
		t.Error("keyA should survive eviction")
	}
	if cache.Len() != 2 {
		t.Errorf("len = %d, want 2", cache.Len())
	}

	cache.Purge()
	if cache.Len() != 0 {
		t.Errorf("len after purge = %d, want 0", cache.Len())
	}
}
