// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/skins"
	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocumentSummary outputs a human-readable summary of a normalized
// resume document.
func (p *Printer) PrintDocumentSummary(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", valueOr(doc.PersonalInfo.Name, "(none)")))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", valueOr(doc.PersonalInfo.Title, "(none)")))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience:     %d entries\n", len(doc.Experience)))
	sb.WriteString(fmt.Sprintf("Education:      %d entries\n", len(doc.Education)))
	sb.WriteString(fmt.Sprintf("Projects:       %d entries\n", len(doc.Projects)))
	sb.WriteString(fmt.Sprintf("Certifications: %d entries\n", len(doc.Certifications)))
	sb.WriteString(fmt.Sprintf("Custom:         %d sections\n", len(doc.CustomSections)))
	sb.WriteString(fmt.Sprintf("Visible:        %d section ids", len(doc.VisibleSections)))

	p.printBox("Resume Document", sb.String())
}

// PrintRenderSummary outputs a human-readable summary of a rendered document.
func (p *Printer) PrintRenderSummary(doc *types.RenderedDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	name := doc.TemplateID
	if skin, ok := skins.Lookup(doc.TemplateID); ok {
		name = fmt.Sprintf("%s (%s)", skin.Name, skin.ID)
	}
	sb.WriteString(fmt.Sprintf("Template: %s\n", name))
	sb.WriteString(fmt.Sprintf("Frame:    %s\n", doc.Frame))
	sb.WriteString("\n")

	sections := collectSections(doc.Blocks)
	sb.WriteString(fmt.Sprintf("Sections (%d):\n", len(sections)))
	for _, id := range sections {
		sb.WriteString(fmt.Sprintf("  • %s\n", id))
	}
	sb.WriteString(fmt.Sprintf("Blocks:   %d total", countBlocks(doc.Blocks)))

	p.printBox("Rendered Resume", sb.String())
}

// collectSections walks the tree and returns section ids in display order.
func collectSections(blocks []types.Block) []string {
	var ids []string
	var walk func([]types.Block)
	walk = func(bs []types.Block) {
		for _, b := range bs {
			if (b.Kind == types.BlockSection || b.Kind == types.BlockHeader) && b.Role != "" {
				ids = append(ids, b.Role)
				continue
			}
			walk(b.Children)
		}
	}
	walk(blocks)
	return ids
}

func countBlocks(blocks []types.Block) int {
	n := 0
	for _, b := range blocks {
		n += 1 + countBlocks(b.Children)
	}
	return n
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
