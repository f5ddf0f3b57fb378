package cli

import (
	"resumeforge/internal/ats"
	"resumeforge/internal/common"
	"resumeforge/internal/utils"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [resume-file]",
	Short: "Check a resume for ATS compatibility",
	Long: `Run a battery of ATS compatibility rules over a resume and produce a
scored report. The rules cover file format, section headers, contact
information, date formatting, bullet consistency, keyword usage, action
verbs, quantified achievements, length, and formatting hazards such as
tables and special characters.

When a job description is supplied, the report additionally measures how
well the resume covers the job's key terms.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if checkConfig.OutputFormat == "" {
			checkConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(checkConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runCheck,
}

var (
	checkConfig       common.CommandConfig
	checkJobDescFile  string
	checkKeywords     []string
	checkFileTypeFlag string
)

func init() {
	checkCmd.Flags().StringVarP(&checkConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	checkCmd.Flags().StringVar(&checkConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	checkCmd.Flags().StringVar(&checkJobDescFile, "job-description", "", "Job description file for keyword matching")
	checkCmd.Flags().StringSliceVar(&checkKeywords, "keywords", nil, "Target keywords to check for (comma-separated)")
	checkCmd.Flags().StringVar(&checkFileTypeFlag, "file-type", "", "File type override (default: derived from the resume file extension)")

	// Add completion for format flag
	_ = checkCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	fileProcessor := common.NewFileProcessor(logger)
	contents, err := fileProcessor.ValidateAndReadFiles(args[0])
	if err != nil {
		return err
	}
	resumeText := contents[0]

	jobDescription := ""
	if checkJobDescFile != "" {
		jdContents, err := fileProcessor.ValidateAndReadFiles(checkJobDescFile)
		if err != nil {
			return err
		}
		jobDescription = jdContents[0]
	}

	fileType := checkFileTypeFlag
	if fileType == "" {
		fileType = utils.FileTypeFromName(args[0])
	}

	logger.Info("Running ATS compatibility check",
		"resume_chars", len(resumeText),
		"file_type", fileType,
		"has_job_description", jobDescription != "",
		"keyword_count", len(checkKeywords))

	report := ats.Check(resumeText, fileType, jobDescription, checkKeywords)

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleOutput(report, checkConfig); err != nil {
		return err
	}

	logger.Info("ATS check completed",
		"score", report.Score,
		"critical_issues", report.CriticalIssues,
		"warnings", report.Warnings)
	return nil
}
