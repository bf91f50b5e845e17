package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestValidateResume_ValidDocument(t *testing.T) {
	doc := types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{Name: "Dana Smith", Email: "dana@example.com"},
		Summary:      "Builds services.",
		Experience: []types.ExperienceEntry{
			{ID: "e1", Title: "Engineer", Company: "Acme", Achievements: []string{"Shipped"}},
		},
		SectionOrder:    []string{"personal-info", "experience"},
		VisibleSections: []string{"personal-info", "experience"},
	}
	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.NoError(t, ValidateResume(payload))
}

func TestValidateResume_EmptyObject(t *testing.T) {
	// Every top-level field is optional; the normalizer fills defaults.
	assert.NoError(t, ValidateResume([]byte(`{}`)))
}

func TestValidateResume_SkillsBothShapes(t *testing.T) {
	assert.NoError(t, ValidateResume([]byte(`{"skills": ["Go", "SQL"]}`)))
	assert.NoError(t, ValidateResume([]byte(`{"skills": {"Languages": ["Go"]}}`)))
	assert.Error(t, ValidateResume([]byte(`{"skills": "Go, SQL"}`)))
}

func TestValidateResume_StringCertificationsAllowed(t *testing.T) {
	assert.NoError(t, ValidateResume([]byte(`{"certifications": ["CKA", {"certificate_name": "CKAD"}]}`)))
}

func TestValidateResume_BadShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"summary not a string", `{"summary": 42}`},
		{"experience not an array", `{"experience": {"title": "Engineer"}}`},
		{"achievements not strings", `{"experience": [{"achievements": [1, 2]}]}`},
		{"unknown custom section type", `{"custom_sections": [{"type": "carousel"}]}`},
		{"negative position", `{"custom_sections": [{"type": "list", "position": -1}]}`},
		{"visible sections not strings", `{"visible_sections": [true]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResume([]byte(tt.payload))
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidateResume_ErrorListsFieldPaths(t *testing.T) {
	err := ValidateResume([]byte(`{"summary": 42, "section_order": "experience"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 2)

	fields := []string{ve.Errors[0].Field, ve.Errors[1].Field}
	assert.Contains(t, fields, "summary")
	assert.Contains(t, fields, "section_order")
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateResume_MalformedJSON(t *testing.T) {
	err := ValidateResume([]byte(`{not json`))
	require.Error(t, err)

	var le *SchemaLoadError
	assert.True(t, errors.As(err, &le))
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 17}`, `{}`)
	require.Error(t, err)

	var le *SchemaLoadError
	assert.True(t, errors.As(err, &le))
}
