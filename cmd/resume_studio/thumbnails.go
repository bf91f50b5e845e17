package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/types"
)

var (
	thumbsInput         string
	thumbsCustomization string
	thumbsOutputDir     string
	thumbsTemplates     []string
)

var thumbnailsCmd = &cobra.Command{
	Use:   "thumbnails",
	Short: "Render a resume across templates for preview",
	Long: `Render the same resume with every template (or a chosen subset) and write
one HTML file per template into the output directory.`,
	RunE: runThumbnails,
}

func init() {
	thumbnailsCmd.Flags().StringVarP(&thumbsInput, "input", "i", "", "Path to resume JSON file (required)")
	thumbnailsCmd.Flags().StringVarP(&thumbsCustomization, "customization", "c", "", "Path to customization JSON file (optional)")
	thumbnailsCmd.Flags().StringVarP(&thumbsOutputDir, "output-dir", "o", "thumbnails", "Output directory")
	thumbnailsCmd.Flags().StringSliceVarP(&thumbsTemplates, "templates", "t", nil, "Template ids (default: all)")

	if err := thumbnailsCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(thumbnailsCmd)
}

func runThumbnails(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(thumbsInput)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	partial, err := loadCustomization(thumbsCustomization)
	if err != nil {
		return err
	}

	doc := normalize.Normalize(payload, types.SourceParsedFile)

	thumbnails, err := export.Thumbnails(context.Background(), doc, partial, thumbsTemplates)
	if err != nil {
		return fmt.Errorf("thumbnail render failed: %w", err)
	}

	if err := os.MkdirAll(thumbsOutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, thumb := range thumbnails {
		path := filepath.Join(thumbsOutputDir, thumb.TemplateID+".html")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := export.WriteHTML(thumb.Document, f); err != nil {
			f.Close()
			return fmt.Errorf("HTML export failed for %s: %w", thumb.TemplateID, err)
		}
		f.Close()
		fmt.Printf("Wrote %s\n", path)
	}

	return nil
}
