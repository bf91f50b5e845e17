package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/customize"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

var (
	renderInput         string
	renderCustomization string
	renderTemplate      string
	renderOutput        string
	renderChromePath    string
	renderVerbose       bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume JSON file to HTML or PDF",
	Long: `Normalize a resume JSON file, resolve customization for the chosen template,
and write the rendered document to disk. Output format follows the output
file extension (.html or .pdf).`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "Path to resume JSON file (required)")
	renderCmd.Flags().StringVarP(&renderCustomization, "customization", "c", "", "Path to customization JSON file (optional)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "classic", "Template id")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "resume.html", "Output file (.html or .pdf)")
	renderCmd.Flags().StringVar(&renderChromePath, "chrome-path", "", "Browser binary for PDF output (optional, defaults to CHROME_PATH env var)")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print a render summary")

	if err := renderCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(renderInput)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	// Schema failures on file input are advisory; the normalizer accepts
	// whatever shape it is given.
	if err := schemas.ValidateResume(raw); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	partial, err := loadCustomization(renderCustomization)
	if err != nil {
		return err
	}

	doc := normalize.Normalize(payload, types.SourceParsedFile)
	cfg := customize.Resolve(partial, renderTemplate)

	rendered, err := render.Render(doc, cfg, renderTemplate)
	if err != nil {
		return err
	}

	if renderVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintDocumentSummary(doc)
		printer.PrintRenderSummary(rendered)
	}

	if strings.HasSuffix(renderOutput, ".pdf") {
		chromePath := renderChromePath
		if chromePath == "" {
			chromePath = os.Getenv("CHROME_PATH")
		}
		renderer := &export.ChromePDF{ChromePath: chromePath, Timeout: 60 * time.Second}

		pdf, err := renderer.RenderPDF(context.Background(), rendered)
		if err != nil {
			return fmt.Errorf("PDF export failed: %w", err)
		}
		if err := os.WriteFile(renderOutput, pdf, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		f, err := os.Create(renderOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		if err := export.WriteHTML(rendered, f); err != nil {
			return fmt.Errorf("HTML export failed: %w", err)
		}
	}

	fmt.Printf("Rendered %s with template %s -> %s\n", renderInput, renderTemplate, renderOutput)
	return nil
}

// loadCustomization reads a partial customization file, or returns nil when
// no path is given.
func loadCustomization(path string) (*types.CustomizationInput, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read customization file: %w", err)
	}
	var partial types.CustomizationInput
	if err := json.Unmarshal(data, &partial); err != nil {
		return nil, fmt.Errorf("failed to parse customization JSON: %w", err)
	}
	return &partial, nil
}
