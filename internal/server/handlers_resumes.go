package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/customize"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/skins"
	"github.com/jonathan/resume-studio/internal/types"
)

// CreateResumeResponse represents the response for POST /resumes
type CreateResumeResponse struct {
	ID string `json:"id"`
}

// handleCreateResume stores a new resume
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Message: "invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Message: err.Error()})
		return
	}
	if _, ok := skins.Lookup(req.TemplateID); !ok {
		s.errorResponse(w, http.StatusUnprocessableEntity, "template unavailable: "+req.TemplateID)
		return
	}

	// Builder-state saves must conform to the resume schema. Parsed-file
	// input is looser and only normalized, but nothing saved through the
	// builder should ever fail to round-trip.
	docJSON, err := json.Marshal(req.Document)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document: "+err.Error())
		return
	}
	if err := schemas.ValidateResume(docJSON); err != nil {
		s.handleError(w, &ErrValidation{Message: err.Error()})
		return
	}

	doc := normalize.Normalize(req.Document, types.SourceBuilderState)
	id, err := s.db.CreateResume(r.Context(), req.Name, req.TemplateID, doc, req.Customization)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, CreateResumeResponse{ID: id.String()})
}

// handleListResumes lists all saved resumes
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.db.ListResumes(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

// handleGetResume returns one saved resume
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleUpdateResume replaces a saved resume
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	var req types.UpdateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Message: "invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Message: err.Error()})
		return
	}
	if _, ok := skins.Lookup(req.TemplateID); !ok {
		s.errorResponse(w, http.StatusUnprocessableEntity, "template unavailable: "+req.TemplateID)
		return
	}

	docJSON, err := json.Marshal(req.Document)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document: "+err.Error())
		return
	}
	if err := schemas.ValidateResume(docJSON); err != nil {
		s.handleError(w, &ErrValidation{Message: err.Error()})
		return
	}

	doc := normalize.Normalize(req.Document, types.SourceBuilderState)
	if err := s.db.UpdateResume(r.Context(), id, req.Name, req.TemplateID, doc, req.Customization); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.handleError(w, &ErrResumeNotFound{ID: id})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleDeleteResume removes a saved resume
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	if err := s.db.DeleteResume(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.handleError(w, &ErrResumeNotFound{ID: id})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleExportHTML renders a saved resume and writes it as a standalone HTML page
func (s *Server) handleExportHTML(w http.ResponseWriter, r *http.Request) {
	rendered, resume, ok := s.renderSaved(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.Name+".html"))
	if err := export.WriteHTML(rendered, w); err != nil {
		// Headers already sent, nothing left to do but log.
		log.Printf("Error writing HTML export: %v", err)
	}
}

// handleExportPDF renders a saved resume to PDF via headless Chrome
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	rendered, resume, ok := s.renderSaved(w, r)
	if !ok {
		return
	}

	pdf, err := s.pdf.RenderPDF(r.Context(), rendered)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "PDF export failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.Name+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// handleThumbnails renders a saved resume across templates for the picker view
func (s *Server) handleThumbnails(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	// Body is optional; an empty request means every template with the
	// resume's stored customization.
	var req types.ThumbnailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	custom := req.Customization
	if custom == nil {
		custom = resume.Customization
	}

	thumbnails, err := export.Thumbnails(r.Context(), resume.Document, custom, req.TemplateIDs)
	if err != nil {
		var unknown *render.UnknownTemplateError
		if errors.As(err, &unknown) {
			s.errorResponse(w, http.StatusUnprocessableEntity, "template unavailable: "+unknown.TemplateID)
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Thumbnail render failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"thumbnails": thumbnails})
}

// loadResume parses the id path value and loads the resume, writing the error
// response itself on failure.
func (s *Server) loadResume(w http.ResponseWriter, r *http.Request) (*db.SavedResume, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return nil, false
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.handleError(w, &ErrResumeNotFound{ID: id})
			return nil, false
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume: "+err.Error())
		return nil, false
	}
	return resume, true
}

// renderSaved loads a resume and renders it with its stored customization.
func (s *Server) renderSaved(w http.ResponseWriter, r *http.Request) (*types.RenderedDocument, *db.SavedResume, bool) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return nil, nil, false
	}

	cfg := customize.Resolve(resume.Customization, resume.TemplateID)
	rendered, err := render.Render(resume.Document, cfg, resume.TemplateID)
	if err != nil {
		s.handleError(w, err)
		return nil, nil, false
	}
	return rendered, resume, true
}
