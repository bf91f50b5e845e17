package enhance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no fences",
			input:    "Improved the summary text.",
			expected: "Improved the summary text.",
		},
		{
			name:     "plain fences",
			input:    "```\nImproved text.\n```",
			expected: "Improved text.",
		},
		{
			name:     "language identifier",
			input:    "```text\nImproved text.\n```",
			expected: "Improved text.",
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```\nImproved text.\n```\n  ",
			expected: "Improved text.",
		},
		{
			name:     "first line with spaces is content",
			input:    "```Led the team to ship\nmore text\n```",
			expected: "Led the team to ship\nmore text",
		},
		{
			name:     "fences inside text untouched",
			input:    "Use ``` for code blocks.",
			expected: "Use ``` for code blocks.",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripFences(tt.input))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("Shipped the indexer.", "Make it quantified.", ContentAchievement)

	assert.Contains(t, prompt, "Content type: achievement")
	assert.Contains(t, prompt, "Instruction: Make it quantified.")
	assert.Contains(t, prompt, "Shipped the indexer.")
}

func TestBuildPrompt_NoInstruction(t *testing.T) {
	prompt := buildPrompt("Builds services.", "", ContentSummary)

	assert.Contains(t, prompt, "Content type: summary")
	assert.NotContains(t, prompt, "Instruction:")
}
