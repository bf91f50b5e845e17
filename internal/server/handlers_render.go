package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/resume-studio/internal/customize"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/types"
)

// handleRenderPreview renders a raw document into a styled block tree without
// persisting anything.
func (s *Server) handleRenderPreview(w http.ResponseWriter, r *http.Request) {
	var req types.RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Message: "invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Message: err.Error()})
		return
	}

	source := types.SourceKind(req.Source)
	if source == "" {
		source = types.SourceBuilderState
	}
	doc := normalize.Normalize(req.Document, source)
	cfg := customize.Resolve(req.Customization, req.TemplateID)

	rendered, err := render.Render(doc, cfg, req.TemplateID)
	if err != nil {
		var unknown *render.UnknownTemplateError
		if errors.As(err, &unknown) {
			s.errorResponse(w, http.StatusUnprocessableEntity, "template unavailable: "+unknown.TemplateID)
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Warm webfonts in the background so the client-side preview does not
	// block on font downloads. Not tied to the request context: the fetch
	// outlives the response.
	s.fonts.Warm(context.Background(), cfg)

	s.jsonResponse(w, http.StatusOK, rendered)
}
