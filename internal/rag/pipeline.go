package rag

import (
	"context"
	"fmt"
	"strings"

	apperrors "careerlens/internal/errors"
	"careerlens/internal/types"
)

// Embedder turns text into vectors for indexing and querying.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// AdviceModel generates career advice and role skill suggestions.
type AdviceModel interface {
	GenerateAdvice(ctx context.Context, question string, contexts []string, skills []string) (string, error)
	SuggestRoleSkills(ctx context.Context, role string) ([]string, error)
}

// PipelineConfig controls corpus chunking and retrieval width. Zero values
// fall back to the defaults.
type PipelineConfig struct {
	ChunkSize    int
	ChunkOverlap int
	TopK         int
}

func (c PipelineConfig) withDefaults() PipelineConfig {
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.ChunkOverlap <= 0 {
		c.ChunkOverlap = DefaultChunkOverlap
	}
	if c.TopK <= 0 {
		c.TopK = DefaultTopK
	}
	return c
}

// Pipeline answers career questions against one parsed resume. Build it once
// per resume and reuse it across questions; it is safe for concurrent use.
type Pipeline struct {
	parsed   types.ParsedResume
	store    *VectorStore
	embedder Embedder
	model    AdviceModel
	topK     int
	logger   *apperrors.Logger
}

// NewPipeline builds the retrieval index for a parsed resume: corpus
// assembly, chunking, batch embedding, store population.
func NewPipeline(ctx context.Context, parsed types.ParsedResume, embedder Embedder, model AdviceModel, cfg PipelineConfig, logger *apperrors.Logger) (*Pipeline, error) {
	cfg = cfg.withDefaults()

	corpus := BuildCorpus(parsed)
	chunks := ChunkText(corpus, cfg.ChunkSize, cfg.ChunkOverlap)

	store := NewVectorStore()
	if len(chunks) > 0 {
		embeddings, err := embedder.EmbedTexts(ctx, chunks)
		if err != nil {
			return nil, apperrors.NewAIError(apperrors.ErrCodeEmbeddingFailed, "failed to embed resume corpus", err).
				WithContext("chunks", len(chunks))
		}
		if len(embeddings) != len(chunks) {
			return nil, apperrors.NewAIError(apperrors.ErrCodeEmbeddingFailed,
				fmt.Sprintf("embedding count mismatch: %d chunks, %d vectors", len(chunks), len(embeddings)), nil)
		}
		for i, chunk := range chunks {
			store.Add(chunk, embeddings[i])
		}
	}

	logger.Info("Retrieval pipeline built",
		"chunks", store.Len(),
		"skills", len(parsed.Skills),
		"corpus_chars", len(corpus))

	return &Pipeline{
		parsed:   parsed,
		store:    store,
		embedder: embedder,
		model:    model,
		topK:     cfg.TopK,
		logger:   logger,
	}, nil
}

// Parsed returns the resume record the pipeline was built from.
func (p *Pipeline) Parsed() types.ParsedResume {
	return p.parsed
}

// ChunkCount reports how many chunks are indexed.
func (p *Pipeline) ChunkCount() int {
	return p.store.Len()
}

// Advise answers a free-text career question. Strategies are tried in fixed
// order: a generative answer grounded in the retrieved context, then an
// extractive answer built from the retrieved chunks verbatim. The extractive
// strategy cannot fail, so Advise always produces an answer.
func (p *Pipeline) Advise(ctx context.Context, question string) (types.AdviceOutput, error) {
	contexts := p.retrieve(ctx, question)

	for _, strategy := range p.strategies() {
		answer, err := strategy.run(ctx, question, contexts)
		if err != nil {
			p.logger.Warn("Answer strategy failed, trying next",
				"strategy", strategy.name,
				"error", err.Error())
			continue
		}
		return types.AdviceOutput{
			Answer:    answer,
			Sources:   contexts,
			Generated: strategy.generative,
		}, nil
	}

	// Unreachable while the extractive strategy is last, kept to make the
	// chain total.
	return types.AdviceOutput{}, apperrors.NewAIError(apperrors.ErrCodeAIServiceFailed, "all answer strategies failed", nil)
}

// SkillsGap compares the resume's skills with the skills the model suggests
// for a target role. The narrative advice comes from the regular question
// chain; the structured comparison degrades to advice-only when the skill
// suggestion call fails.
func (p *Pipeline) SkillsGap(ctx context.Context, targetRole string) (types.SkillsGapOutput, error) {
	question := fmt.Sprintf("What skills do I need to develop to become a %s?", targetRole)

	advice, err := p.Advise(ctx, question)
	if err != nil {
		return types.SkillsGapOutput{}, err
	}

	out := types.SkillsGapOutput{
		TargetRole:     targetRole,
		CurrentSkills:  p.parsed.Skills,
		RequiredSkills: []string{},
		MatchingSkills: []string{},
		MissingSkills:  []string{},
		Advice:         advice.Answer,
	}

	required, err := p.model.SuggestRoleSkills(ctx, targetRole)
	if err != nil {
		p.logger.Warn("Role skill suggestion failed, returning advice only",
			"role", targetRole,
			"error", err.Error())
		return out, nil
	}

	current := make(map[string]struct{}, len(p.parsed.Skills))
	for _, skill := range p.parsed.Skills {
		current[strings.ToLower(skill)] = struct{}{}
	}
	out.RequiredSkills = required
	for _, skill := range required {
		if _, ok := current[strings.ToLower(skill)]; ok {
			out.MatchingSkills = append(out.MatchingSkills, skill)
		} else {
			out.MissingSkills = append(out.MissingSkills, skill)
		}
	}
	return out, nil
}

// retrieve fetches the top-k chunks for a question. When the query embedding
// fails, the first indexed chunks stand in so the answer chain still has
// resume content to work with.
func (p *Pipeline) retrieve(ctx context.Context, question string) []string {
	query, err := p.embedder.EmbedQuery(ctx, question)
	if err != nil {
		p.logger.Warn("Query embedding failed, falling back to leading chunks", "error", err.Error())
		return p.store.First(p.topK)
	}

	results := p.store.Search(query, p.topK)
	contexts := make([]string, 0, len(results))
	for _, r := range results {
		contexts = append(contexts, r.Text)
	}
	return contexts
}

type answerStrategy struct {
	name       string
	generative bool
	run        func(ctx context.Context, question string, contexts []string) (string, error)
}

func (p *Pipeline) strategies() []answerStrategy {
	return []answerStrategy{
		{
			name:       "generative",
			generative: true,
			run: func(ctx context.Context, question string, contexts []string) (string, error) {
				return p.model.GenerateAdvice(ctx, question, contexts, p.parsed.Skills)
			},
		},
		{
			name: "extractive",
			run: func(_ context.Context, question string, contexts []string) (string, error) {
				return extractiveAnswer(question, contexts), nil
			},
		},
	}
}

// extractiveAnswer is the last-resort strategy: it returns the retrieved
// resume excerpts verbatim so the caller still gets grounded material when
// no generative model is reachable.
func extractiveAnswer(question string, contexts []string) string {
	if len(contexts) == 0 {
		return "No relevant resume content was found for this question. Try re-uploading the resume or rephrasing the question."
	}
	var b strings.Builder
	b.WriteString("Based on the resume, the most relevant excerpts for \"")
	b.WriteString(question)
	b.WriteString("\" are:\n")
	for i, c := range contexts {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, strings.TrimSpace(c))
	}
	return b.String()
}
