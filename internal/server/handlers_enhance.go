package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-studio/internal/enhance"
	"github.com/jonathan/resume-studio/internal/types"
)

// handleEnhance rewrites a piece of resume content with the AI service
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	if s.enhancer == nil {
		s.handleError(w, &ErrServiceUnavailable{Service: "enhancement"})
		return
	}

	var req types.EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Message: "invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Message: err.Error()})
		return
	}

	enhanced, err := s.enhancer.Enhance(r.Context(), req.Content, req.Instruction, enhance.ContentType(req.ContentType))
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Enhancement failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.EnhanceResponse{Enhanced: enhanced})
}

// handleATSScore forwards a resume to the ATS scoring service
func (s *Server) handleATSScore(w http.ResponseWriter, r *http.Request) {
	if s.atsClient == nil {
		s.handleError(w, &ErrServiceUnavailable{Service: "ats"})
		return
	}

	var req types.ATSScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, &ErrValidation{Message: "invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, &ErrValidation{Message: err.Error()})
		return
	}

	docJSON, err := json.Marshal(req.Document)
	if err != nil {
		s.handleError(w, &ErrValidation{Message: "invalid document: " + err.Error()})
		return
	}

	report, err := s.atsClient.Analyze(r.Context(), docJSON, "resume.json", req.JobDescription)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "ATS analysis failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
