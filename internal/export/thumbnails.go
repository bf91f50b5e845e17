package export

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-studio/internal/customize"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/skins"
	"github.com/jonathan/resume-studio/internal/types"
)

// Thumbnail is one template's render of a document, used to preview the
// same resume across the whole catalog.
type Thumbnail struct {
	TemplateID string                  `json:"template_id"`
	Document   *types.RenderedDocument `json:"document"`
}

// Thumbnails renders one document under every requested template skin
// concurrently. The renderer is pure and re-entrant, so each goroutine calls
// it independently; the customization overlay is re-resolved per template so
// each skin's own defaults apply. Passing no ids renders the full catalog.
// Results hold catalog order regardless of completion order.
func Thumbnails(ctx context.Context, doc *types.ResumeDocument, partial *types.CustomizationInput, templateIDs []string) ([]Thumbnail, error) {
	if len(templateIDs) == 0 {
		templateIDs = skins.IDs()
	}

	out := make([]Thumbnail, len(templateIDs))
	g, _ := errgroup.WithContext(ctx)
	for i, id := range templateIDs {
		g.Go(func() error {
			cfg := customize.Resolve(partial, id)
			rendered, err := render.Render(doc, cfg, id)
			if err != nil {
				return err
			}
			out[i] = Thumbnail{TemplateID: id, Document: rendered}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
