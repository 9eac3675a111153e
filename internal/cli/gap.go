package cli

import (
	"context"
	"fmt"

	"careerlens/internal/common"
	"careerlens/internal/rag"
	"careerlens/internal/types"

	"github.com/spf13/cobra"
)

var gapCmd = &cobra.Command{
	Use:   "gap [resume-file] [target-role]",
	Short: "Analyze the skills gap toward a target role",
	Long: `Compare the skills found in your resume against the skills expected for
a target role. The command takes two arguments: the path to your resume file
(PDF or plain text) and the role you are aiming for, e.g. "Data Engineer".`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if gapConfig.OutputFormat == "" {
			gapConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(gapConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runGap,
}

var gapConfig common.CommandConfig

func init() {
	gapCmd.Flags().StringVarP(&gapConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	gapCmd.Flags().StringVar(&gapConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = gapCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runGap(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())
	targetRole := args[1]

	logDetails := func(parsed types.ParsedResume, cmdCfg common.CommandConfig) {
		logger.Info("Starting skills gap analysis",
			"target_role", targetRole,
			"resume_skills", len(parsed.Skills),
			"output_format", cmdCfg.OutputFormat)
	}

	gapOperation := func(ctx context.Context, pipeline *rag.Pipeline) (types.SkillsGapOutput, error) {
		return pipeline.SkillsGap(ctx, targetRole)
	}

	err := common.RunPipelineCommand(
		cmd.Context(),
		logger,
		cfg,
		gapConfig,
		args[0],
		gapOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze skills gap: %w", err)
	}
	logger.Info("Skills gap analysis completed successfully")
	return nil
}
