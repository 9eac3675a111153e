package cli

import (
	"fmt"

	"careerlens/internal/common"
	"careerlens/internal/resume"
	"careerlens/internal/types"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [resume-file]",
	Short: "Parse a resume into structured sections",
	Long: `Parse a resume file into structured sections: contact info, education,
experience, projects, skills, certifications, achievements and extracurriculars.
The file may be a PDF or plain text. Use --quality to add a completeness report.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if parseConfig.OutputFormat == "" {
			parseConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(parseConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runParse,
}

var parseConfig common.CommandConfig
var parseWithQuality bool

func init() {
	parseCmd.Flags().StringVarP(&parseConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	parseCmd.Flags().BoolVar(&parseWithQuality, "quality", false, "Include a resume completeness analysis")

	// Add completion for format flag
	_ = parseCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runParse(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	fileProcessor := common.NewFileProcessor(logger)
	outputHandler := common.NewOutputHandler(logger)

	rawText, err := fileProcessor.ReadResumeText(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	logger.Info("Starting resume parsing",
		"file", args[0],
		"resume_chars", len(rawText),
		"output_format", parseConfig.OutputFormat)

	parsed := resume.Parse(rawText)

	result := types.ParseReport{Resume: parsed}
	if parseWithQuality {
		quality := resume.AnalyzeQuality(parsed)
		result.Quality = &quality
	}

	if err := outputHandler.HandleOutput(result, parseConfig); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("Resume parsing completed successfully",
		"sections_found", len(parsed.Metadata.SectionsFound))
	return nil
}
