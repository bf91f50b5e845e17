// Package enhance provides the AI text-enhancement collaborator. The
// renderer never calls it; surrounding application code invokes it when the
// user asks for content suggestions on a summary, achievement, or
// description.
package enhance

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ContentType tells the service what kind of resume text it is improving.
type ContentType string

const (
	// ContentSummary is the professional summary paragraph.
	ContentSummary ContentType = "summary"
	// ContentAchievement is a single achievement bullet.
	ContentAchievement ContentType = "achievement"
	// ContentDescription is a free-form description block.
	ContentDescription ContentType = "description"
)

// Service is the enhancement contract consumed by the application layer.
type Service interface {
	// Enhance rewrites content following the instruction prompt and returns
	// the improved text.
	Enhance(ctx context.Context, content, instruction string, contentType ContentType) (string, error)
	// Close releases any resources held by the service.
	Close() error
}

// GeminiService implements Service with Google Gemini.
type GeminiService struct {
	client *genai.Client
	model  string
}

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// NewGeminiService creates the Gemini-backed enhancement service.
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{client: client, model: model}, nil
}

// Enhance sends the content with its instruction to the model and returns the
// cleaned response text.
func (s *GeminiService) Enhance(ctx context.Context, content, instruction string, contentType ContentType) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("content is empty")
	}

	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(0.3) // Some variety, but stay close to the source text

	prompt := buildPrompt(content, instruction, contentType)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return StripFences(text), nil
}

// Close releases the underlying client.
func (s *GeminiService) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

func buildPrompt(content, instruction string, contentType ContentType) string {
	var sb strings.Builder
	sb.WriteString("You are improving one piece of resume text.\n")
	sb.WriteString(fmt.Sprintf("Content type: %s\n", contentType))
	if instruction != "" {
		sb.WriteString(fmt.Sprintf("Instruction: %s\n", instruction))
	}
	sb.WriteString("Return ONLY the improved text, no commentary, no markdown.\n\n")
	sb.WriteString(content)
	return sb.String()
}

// extractText pulls the text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, "\n"), nil
}
