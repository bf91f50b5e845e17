// Package ats provides the client for the external ATS-compatibility scoring
// service. The service does the analysis; this client only uploads the resume
// and decodes the pre-computed score report.
package ats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Report is the scoring service's response: an overall score with per-area
// feedback. Nothing here is computed locally.
type Report struct {
	Score       int       `json:"score"`
	Strengths   []string  `json:"strengths"`
	Weaknesses  []string  `json:"weaknesses"`
	Suggestions []string  `json:"suggestions"`
	KeywordGaps []string  `json:"keyword_gaps,omitempty"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// Client is the scoring contract consumed by the application layer.
type Client interface {
	// Analyze uploads a resume file (PDF or text) with an optional job
	// description and returns the service's score report.
	Analyze(ctx context.Context, resumeFile []byte, filename, jobDescription string) (*Report, error)
}

// HTTPClient talks to a remote scoring service over HTTP.
type HTTPClient struct {
	BaseURL string
	HTTP    *http.Client
}

// NewHTTPClient creates a client for the given service base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Analyze posts the resume as multipart form data to /analyze.
func (c *HTTPClient) Analyze(ctx context.Context, resumeFile []byte, filename, jobDescription string) (*Report, error) {
	if len(resumeFile) == 0 {
		return nil, fmt.Errorf("resume file is empty")
	}
	if filename == "" {
		filename = "resume.pdf"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("resume", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(resumeFile); err != nil {
		return nil, fmt.Errorf("failed to write resume: %w", err)
	}
	if jobDescription != "" {
		if err := writer.WriteField("job_description", jobDescription); err != nil {
			return nil, fmt.Errorf("failed to write job description: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/analyze", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scoring service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("scoring service returned %d: %s", resp.StatusCode, string(data))
	}

	var report Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode score report: %w", err)
	}
	return &report, nil
}
