package server

import (
	"net/http"

	"github.com/jonathan/resume-studio/internal/sample"
	"github.com/jonathan/resume-studio/internal/skins"
)

// TemplateResponse represents one catalog entry in the templates listing.
type TemplateResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Frame string `json:"frame"`
	Motif string `json:"motif"`
}

// handleListTemplates returns the template catalog.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	catalog := skins.All()
	templates := make([]TemplateResponse, 0, len(catalog))
	for _, skin := range catalog {
		templates = append(templates, TemplateResponse{
			ID:    skin.ID,
			Name:  skin.Name,
			Frame: string(skin.Frame),
			Motif: skin.Motif,
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": templates})
}

// handleGetTemplate returns a single template descriptor.
func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	skin, ok := skins.Lookup(id)
	if !ok {
		s.errorResponse(w, http.StatusUnprocessableEntity, "template unavailable: "+id)
		return
	}
	s.jsonResponse(w, http.StatusOK, TemplateResponse{
		ID:    skin.ID,
		Name:  skin.Name,
		Frame: string(skin.Frame),
		Motif: skin.Motif,
	})
}

// handleTemplateSample returns the sample document shown when a user picks a
// template before entering any data of their own.
func (s *Server) handleTemplateSample(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := skins.Lookup(id); !ok {
		s.errorResponse(w, http.StatusUnprocessableEntity, "template unavailable: "+id)
		return
	}
	s.jsonResponse(w, http.StatusOK, sample.Document())
}
