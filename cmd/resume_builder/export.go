package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/render"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume as HTML or PDF",
	Long:  "Render a resume with its stored template settings and write it as HTML, or as PDF via headless Chrome.",
	RunE:  runExport,
}

var (
	exportResumeID string
	exportFormat   string
	exportOutFile  string
)

func init() {
	exportCmd.Flags().StringVar(&exportResumeID, "id", "", "Resume ID to export (default: current resume)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Output format: pdf or html")
	exportCmd.Flags().StringVarP(&exportOutFile, "out", "o", "", "Output file path (required)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	if exportOutFile == "" {
		return fmt.Errorf("output file is required (use --out)")
	}
	if exportFormat != "pdf" && exportFormat != "html" {
		return fmt.Errorf("unsupported format %q (use pdf or html)", exportFormat)
	}

	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	log, err := newCLILogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	doc, err := loadResume(ctx, st, exportResumeID)
	if err != nil {
		return err
	}
	log.Debug("exporting resume",
		zap.String("id", doc.ID),
		zap.String("format", exportFormat))

	settings, err := st.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	html, err := render.RenderHTML(doc, settings)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	var output []byte
	if exportFormat == "html" {
		output = []byte(html)
	} else {
		exporter := export.NewPDFExporter(cfg.ChromePath)
		output, err = exporter.ExportPDF(ctx, html)
		if err != nil {
			return fmt.Errorf("failed to export PDF: %w", err)
		}
	}

	if err := os.WriteFile(exportOutFile, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Exported %q\n", doc.Name)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", exportOutFile)

	return nil
}
