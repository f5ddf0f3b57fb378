package cli

import (
	"context"
	"fmt"

	"resumeforge/internal/ai"
	"resumeforge/internal/ats"
	"resumeforge/internal/common"
	"resumeforge/internal/types"
	"resumeforge/internal/utils"

	"github.com/spf13/cobra"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [resume-file] [job-description-file]",
	Short: "Rewrite a resume for a specific job description",
	Long: `Rewrite a resume for a specific job description using AI. The rewritten
resume keeps the candidate's real experience and reframes it for the target
role; nothing is invented. After rewriting, the result is run back through
the ATS compatibility rules and the score is reported.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if rewriteConfig.OutputFormat == "" {
			rewriteConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(rewriteConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runRewrite,
}

var rewriteConfig common.CommandConfig

func init() {
	rewriteCmd.Flags().StringVarP(&rewriteConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	rewriteCmd.Flags().StringVar(&rewriteConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = rewriteCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	// Create AI service for rewrite operation
	rewriteAIConfig := cfg.GetRewriteConfig()
	aiService, err := ai.NewService(&rewriteAIConfig, "rewrite", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	createInput := func(contents []string) (types.RewriteResumeInput, error) {
		if len(contents) != 2 {
			return types.RewriteResumeInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return types.RewriteResumeInput{
			Resume:         contents[0],
			JobDescription: contents[1],
		}, nil
	}

	logDetails := func(input types.RewriteResumeInput, cfg common.CommandConfig) {
		logger.Info("Starting resume rewrite",
			"resume_chars", len(input.Resume),
			"job_chars", len(input.JobDescription),
			"output_format", cfg.OutputFormat)
	}

	// Wrap the AI operation so the rewritten text is scored before output
	fileType := utils.FileTypeFromName(args[0])
	rewriteOperation := func(ctx context.Context, input types.RewriteResumeInput) (types.RewriteResumeOutput, *ai.TokenUsage, error) {
		output, tokenUsage, err := aiService.Provider.RewriteResume(ctx, input)
		if err != nil {
			return output, tokenUsage, err
		}

		report := ats.Check(output.RewrittenResume, fileType, input.JobDescription, nil)
		logger.Info("Rewritten resume scored against ATS rules",
			"score", report.Score,
			"critical_issues", report.CriticalIssues,
			"warnings", report.Warnings)

		return output, tokenUsage, nil
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		rewriteConfig,
		args,
		createInput,
		rewriteOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to rewrite resume: %w", err)
	}
	logger.Info("Resume rewrite completed successfully")
	return nil
}
