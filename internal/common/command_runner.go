package common

import (
	"context"
	"fmt"

	"careerlens/internal/ai"
	"careerlens/internal/config"
	"careerlens/internal/errors"
	"careerlens/internal/rag"
	"careerlens/internal/resume"
	"careerlens/internal/types"
)

// CommandConfig is assumed to be defined elsewhere in the common package.

// PipelineOperationFunc runs one retrieval operation against a built pipeline.
type PipelineOperationFunc[Output any] func(ctx context.Context, pipeline *rag.Pipeline) (Output, error)

// LogDetailsFunc defines how to log the start of an operation.
type LogDetailsFunc func(parsed types.ParsedResume, cfg CommandConfig)

// RunPipelineCommand encapsulates the common logic for CLI commands that
// parse a resume file, build a retrieval pipeline over it, and run one
// operation against that pipeline. The AI service is created and closed
// within the call since CLI invocations are one-shot.
func RunPipelineCommand[Output any](
	ctx context.Context,
	logger *errors.Logger,
	cfg *config.Config,
	cmdConfig CommandConfig,
	resumePath string,
	operation PipelineOperationFunc[Output],
	logDetails LogDetailsFunc,
) error {
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	rawText, err := fileProcessor.ReadResumeText(resumePath)
	if err != nil {
		return err
	}

	parsed := resume.Parse(rawText)
	logDetails(parsed, cmdConfig)

	aiService, err := ai.NewService(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}
	defer func() {
		if err := aiService.Close(); err != nil {
			logger.Warn("Failed to close AI service", "error", err.Error())
		}
	}()

	pipelineCfg := rag.PipelineConfig{
		ChunkSize:    cfg.RAG.ChunkSize,
		ChunkOverlap: cfg.RAG.ChunkOverlap,
		TopK:         cfg.RAG.TopK,
	}
	pipeline, err := rag.NewPipeline(ctx, parsed, aiService, aiService, pipelineCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build retrieval pipeline: %w", err)
	}

	result, err := operation(ctx, pipeline)
	if err != nil {
		return err
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
