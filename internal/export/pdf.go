package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-studio/internal/types"
)

// PDFRenderer rasterizes a rendered document to PDF bytes. Rasterization is
// an external collaborator of the core: the renderer never depends on it, and
// hosts that only need HTML never construct one.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, doc *types.RenderedDocument) ([]byte, error)
}

// ChromePDF prints the HTML export through a headless Chrome instance.
type ChromePDF struct {
	// ChromePath overrides the browser binary; empty uses chromedp's lookup.
	ChromePath string
	// Timeout bounds one print run. Zero means 60 seconds.
	Timeout time.Duration
}

// RenderPDF writes the HTML export to a temp file and prints it to an A4 PDF.
func (r *ChromePDF) RenderPDF(ctx context.Context, doc *types.RenderedDocument) ([]byte, error) {
	htmlContent, err := HTMLString(doc)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := r.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-studio-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(htmlContent), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write HTML: %w", err)
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			// A4: 8.27in x 11.69in
			pdfBuf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print PDF: %w", err)
	}
	return pdfBuf, nil
}
