package cli

import (
	"resumeforge/internal/common"
	"resumeforge/internal/parser"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [resume-file]",
	Short: "Parse raw resume text into a structured document",
	Long: `Parse a plain-text resume into a structured document model.
The parser recognizes contact details, a professional summary, experience,
education, skills, certifications, projects, and volunteering sections using
layout and formatting heuristics. Unrecognized content is preserved rather
than dropped.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
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

func init() {
	parseCmd.Flags().StringVarP(&parseConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = parseCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runParse(cmd *cobra.Command, args []string) error {
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	fileProcessor := common.NewFileProcessor(logger)
	contents, err := fileProcessor.ValidateAndReadFiles(args...)
	if err != nil {
		return err
	}

	logger.Info("Parsing resume",
		"resume_chars", len(contents[0]),
		"output_format", parseConfig.OutputFormat)

	doc := parser.Parse(contents[0])

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleOutput(doc, parseConfig); err != nil {
		return err
	}

	logger.Info("Resume parsed successfully",
		"experience_entries", len(doc.Experience),
		"education_entries", len(doc.Education))
	return nil
}
