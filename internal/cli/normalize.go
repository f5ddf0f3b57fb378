package cli

import (
	"fmt"

	"resumeforge/internal/common"
	"resumeforge/internal/parser"
	"resumeforge/internal/render"

	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [resume-file]",
	Short: "Re-serialize a resume as normalized plain text",
	Long: `Parse a resume and re-serialize it as canonical plain text with
uppercase section headers, consistent bullet markers, and right-aligned
date ranges. The output is ATS-safe: no tables, columns, or special
formatting survive the round trip.`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

var normalizeOutputFile string

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOutputFile, "output", "o", "", "Output file path (default: stdout)")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	fileProcessor := common.NewFileProcessor(logger)
	contents, err := fileProcessor.ValidateAndReadFiles(args...)
	if err != nil {
		return err
	}

	logger.Info("Normalizing resume", "resume_chars", len(contents[0]))

	doc := parser.Parse(contents[0])
	normalized := render.PlainText(doc)

	if normalizeOutputFile != "" {
		if err := fileProcessor.WriteFile(normalizeOutputFile, normalized); err != nil {
			return err
		}
		logger.Info("Normalized resume written", "file", normalizeOutputFile)
	} else {
		fmt.Print(normalized)
	}

	return nil
}
