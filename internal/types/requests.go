package types

import (
	"github.com/go-playground/validator/v10"
)

// RenderRequest represents the request body for POST /render/preview.
// Document carries the raw resume payload exactly as the client holds it;
// normalization happens server-side.
type RenderRequest struct {
	Document      map[string]any      `json:"document" validate:"required"`
	TemplateID    string              `json:"template_id" validate:"required"`
	Source        string              `json:"source,omitempty" validate:"omitempty,oneof=parsed-file builder-state template-sample"`
	Customization *CustomizationInput `json:"customization,omitempty"`
}

// CreateResumeRequest represents the request to save a resume.
type CreateResumeRequest struct {
	Name          string              `json:"name" validate:"required,min=1"`
	TemplateID    string              `json:"template_id" validate:"required"`
	Document      map[string]any      `json:"document" validate:"required"`
	Customization *CustomizationInput `json:"customization,omitempty"`
}

// UpdateResumeRequest represents the request to replace a saved resume.
type UpdateResumeRequest struct {
	Name          string              `json:"name" validate:"required,min=1"`
	TemplateID    string              `json:"template_id" validate:"required"`
	Document      map[string]any      `json:"document" validate:"required"`
	Customization *CustomizationInput `json:"customization,omitempty"`
}

// ThumbnailsRequest represents the request to render template previews for a
// saved resume. Empty TemplateIDs means every registered template.
type ThumbnailsRequest struct {
	TemplateIDs   []string            `json:"template_ids,omitempty"`
	Customization *CustomizationInput `json:"customization,omitempty"`
}

// EnhanceRequest represents the request body for POST /enhance.
type EnhanceRequest struct {
	Content     string `json:"content" validate:"required,min=1"`
	ContentType string `json:"content_type" validate:"required,oneof=summary achievement description"`
	Instruction string `json:"instruction,omitempty"`
}

// EnhanceResponse represents the response for POST /enhance.
type EnhanceResponse struct {
	Enhanced string `json:"enhanced"`
}

// ATSScoreRequest represents the request body for POST /ats/score.
type ATSScoreRequest struct {
	Document       map[string]any `json:"document" validate:"required"`
	JobDescription string         `json:"job_description,omitempty"`
}

// Validate validates the RenderRequest using the validator.
func (r *RenderRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateResumeRequest using the validator.
func (r *UpdateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the EnhanceRequest using the validator.
func (r *EnhanceRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ATSScoreRequest using the validator.
func (r *ATSScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
