// Package sample ships the template sample resume shown when a user picks a
// template before entering any data. It flows through the normalizer like
// every other source so the rendering path never special-cases it.
package sample

import (
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/types"
)

// Document returns the normalized sample resume.
func Document() *types.ResumeDocument {
	return normalize.Normalize(raw(), types.SourceTemplateSample)
}

// raw is the sample payload in the loose input shape the normalizer accepts.
func raw() map[string]any {
	return map[string]any{
		"personal_info": map[string]any{
			"name":     "Alex Morgan",
			"title":    "Senior Software Engineer",
			"location": "Seattle, WA",
			"email":    "alex.morgan@example.com",
			"phone":    "(555) 010-7788",
			"website":  "https://alexmorgan.dev",
			"github":   "https://github.com/alexmorgan",
			"linkedin": "https://linkedin.com/in/alexmorgan",
		},
		"summary": "Software engineer with eight years of experience building distributed systems and developer tooling. Led migrations serving millions of daily requests.",
		"skills": []any{
			"Languages: Go, Python, TypeScript",
			"Infrastructure: Kubernetes, Terraform, AWS",
			"Databases: PostgreSQL, Redis",
		},
		"experience": []any{
			map[string]any{
				"title":   "Senior Software Engineer",
				"company": "Nimbus Cloud",
				"dates":   "2021 – Present",
				"achievements": []any{
					"Designed a multi-region job scheduler processing 40M tasks/day",
					"Cut p99 API latency 45% by introducing request coalescing",
					"Mentored four engineers to promotion",
				},
			},
			map[string]any{
				"title": "Software Engineer — Harbor Labs",
				"dates": "2017 – 2021",
				"achievements": []any{
					"Built the billing pipeline handling $30M annual volume",
					"Introduced contract testing across 12 services",
				},
			},
		},
		"education": []any{
			map[string]any{
				"degree":      "B.S. Computer Science",
				"institution": "University of Washington",
				"dates":       "2013 – 2017",
				"details":     []any{"Graduated magna cum laude"},
			},
		},
		"projects": []any{
			map[string]any{
				"name":        "tracegrep",
				"description": "CLI for querying distributed traces from the terminal.",
				"tech_stack":  "Go, OpenTelemetry",
				"link":        "https://github.com/alexmorgan/tracegrep",
			},
		},
		"certifications": []any{
			map[string]any{
				"certificate_name": "CKA: Certified Kubernetes Administrator",
				"institute_name":   "Cloud Native Computing Foundation",
				"issue_date":       "2022",
			},
		},
	}
}
