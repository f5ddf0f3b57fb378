package cli

import (
	"fmt"

	"resumeforge/internal/common"
	"resumeforge/internal/parser"
	"resumeforge/internal/render"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [resume-file]",
	Short: "Export a resume as a docx document",
	Long: `Parse a resume and export it as a minimal Office Open XML (docx)
document. The generated document uses a single-column layout with standard
heading and bullet styles so that ATS systems can extract its text reliably.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var exportOutputFile string

func init() {
	exportCmd.Flags().StringVarP(&exportOutputFile, "output", "o", "", "Output docx file path (required)")
	_ = exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) error {
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	fileProcessor := common.NewFileProcessor(logger)
	contents, err := fileProcessor.ValidateAndReadFiles(args...)
	if err != nil {
		return err
	}

	logger.Info("Exporting resume to docx",
		"resume_chars", len(contents[0]),
		"output_file", exportOutputFile)

	doc := parser.Parse(contents[0])
	data, err := render.Docx(doc)
	if err != nil {
		return fmt.Errorf("failed to render docx: %w", err)
	}

	if err := fileProcessor.WriteBinaryFile(exportOutputFile, data); err != nil {
		return err
	}

	logger.Info("Docx export completed", "file", exportOutputFile, "bytes", len(data))
	return nil
}
