package cli

import (
	"context"
	"fmt"

	"careerlens/internal/common"
	"careerlens/internal/rag"
	"careerlens/internal/types"

	"github.com/spf13/cobra"
)

var adviseCmd = &cobra.Command{
	Use:   "advise [resume-file] [question]",
	Short: "Answer a career question grounded in a resume",
	Long: `Answer a career question using AI, grounded in excerpts retrieved from
your resume. The command takes two arguments: the path to your resume file
(PDF or plain text) and the question to ask.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if adviseConfig.OutputFormat == "" {
			adviseConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(adviseConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAdvise,
}

var adviseConfig common.CommandConfig

func init() {
	adviseCmd.Flags().StringVarP(&adviseConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	adviseCmd.Flags().StringVar(&adviseConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = adviseCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAdvise(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())
	question := args[1]

	logDetails := func(parsed types.ParsedResume, cmdCfg common.CommandConfig) {
		logger.Info("Starting career advice",
			"question_chars", len(question),
			"resume_sections", len(parsed.Metadata.SectionsFound),
			"output_format", cmdCfg.OutputFormat)
	}

	adviseOperation := func(ctx context.Context, pipeline *rag.Pipeline) (types.AdviceOutput, error) {
		return pipeline.Advise(ctx, question)
	}

	err := common.RunPipelineCommand(
		cmd.Context(),
		logger,
		cfg,
		adviseConfig,
		args[0],
		adviseOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to generate advice: %w", err)
	}
	logger.Info("Career advice completed successfully")
	return nil
}
