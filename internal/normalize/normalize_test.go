package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestNormalize_NilInput(t *testing.T) {
	doc := Normalize(nil, types.SourceParsedFile)
	require.NotNil(t, doc)

	assert.NotNil(t, doc.Experience)
	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Projects)
	assert.NotNil(t, doc.Certifications)
	assert.NotNil(t, doc.CustomSections)
	assert.NotNil(t, doc.Skills.Flat)
	assert.Equal(t, types.DefaultSectionOrder(), doc.SectionOrder)
	assert.Equal(t, types.DefaultSectionOrder(), doc.VisibleSections)
}

func TestNormalize_NeverFails(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"empty map", map[string]any{}},
		{"invalid JSON string", "not json at all"},
		{"invalid JSON bytes", []byte("{broken")},
		{"wrong typed fields", map[string]any{
			"summary":    42,
			"experience": "not a list",
			"skills":     3.14,
			"education":  map[string]any{"oops": true},
		}},
		{"list of wrong elements", map[string]any{
			"experience": []any{"just a string", 99, nil},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Normalize(tt.raw, types.SourceParsedFile)
			require.NotNil(t, doc)
			assert.NotNil(t, doc.Experience)
			assert.NotNil(t, doc.Skills.Flat)
		})
	}
}

func TestNormalize_PersonalInfoAliases(t *testing.T) {
	doc := Normalize(map[string]any{
		"personalInfo": map[string]any{
			"fullName":          "Jordan Reyes",
			"professionalTitle": "Platform Engineer",
			"email":             "  jordan@example.com  ",
			"phoneNumber":       "555-0134",
		},
	}, types.SourceParsedFile)

	assert.Equal(t, "Jordan Reyes", doc.PersonalInfo.Name)
	assert.Equal(t, "Platform Engineer", doc.PersonalInfo.Title)
	assert.Equal(t, "jordan@example.com", doc.PersonalInfo.Email)
	assert.Equal(t, "555-0134", doc.PersonalInfo.Phone)
}

func TestNormalize_SkillsFlatList(t *testing.T) {
	doc := Normalize(map[string]any{
		"skills": []any{"Go", "PostgreSQL", "", "Kubernetes"},
	}, types.SourceParsedFile)

	assert.Equal(t, []string{"Go", "PostgreSQL", "Kubernetes"}, doc.Skills.Flat)
	assert.Empty(t, doc.Skills.Groups)
}

func TestNormalize_SkillsCategoryMap(t *testing.T) {
	doc := Normalize(map[string]any{
		"skills": map[string]any{
			"Languages": []any{"Go", "Python"},
			"Databases": []any{"PostgreSQL"},
		},
	}, types.SourceParsedFile)

	require.Len(t, doc.Skills.Groups, 2)
	// Categories are ordered by name for stable re-normalization.
	assert.Equal(t, "Databases", doc.Skills.Groups[0].Category)
	assert.Equal(t, []string{"PostgreSQL"}, doc.Skills.Groups[0].Items)
	assert.Equal(t, "Languages", doc.Skills.Groups[1].Category)
	assert.Equal(t, []string{"Go", "Python"}, doc.Skills.Groups[1].Items)
}

func TestNormalize_SkillsCanonicalShape(t *testing.T) {
	doc := Normalize(map[string]any{
		"skills": map[string]any{
			"groups": []any{
				map[string]any{"category": "Cloud", "items": []any{"AWS", "GCP"}},
			},
		},
	}, types.SourceParsedFile)

	require.Len(t, doc.Skills.Groups, 1)
	assert.Equal(t, "Cloud", doc.Skills.Groups[0].Category)
	assert.Equal(t, []string{"AWS", "GCP"}, doc.Skills.Groups[0].Items)
}

func TestNormalize_SkillsNestedTechnical(t *testing.T) {
	doc := Normalize(map[string]any{
		"skills": map[string]any{
			"technical": map[string]any{
				"Frontend": []any{"React"},
				"Backend":  []any{"Go"},
			},
		},
	}, types.SourceParsedFile)

	require.Len(t, doc.Skills.Groups, 2)
	assert.Equal(t, "Backend", doc.Skills.Groups[0].Category)
	assert.Equal(t, "Frontend", doc.Skills.Groups[1].Category)
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := map[string]any{
		"personal_info": map[string]any{"name": "Sam Okafor"},
		"summary":       "Engineer with ten years of experience.",
		"skills":        map[string]any{"Tools": []any{"Docker"}},
		"experience": []any{
			map[string]any{"title": "Engineer", "company": "Acme", "dates": "2019 - 2023"},
		},
	}

	once := Normalize(raw, types.SourceParsedFile)
	twice := Normalize(once, types.SourceBuilderState)

	// Ids were assigned on the first pass and must survive the second.
	assert.Equal(t, once.Experience[0].ID, twice.Experience[0].ID)
	assert.Equal(t, once.Skills, twice.Skills)
	assert.Equal(t, once.SectionOrder, twice.SectionOrder)
	assert.Equal(t, once.Summary, twice.Summary)
}

func TestNormalize_LegacyTitlePassesThrough(t *testing.T) {
	doc := Normalize(map[string]any{
		"experience": []any{
			map[string]any{"title": "Software Engineer — Harbor Labs", "company": ""},
		},
	}, types.SourceParsedFile)

	require.Len(t, doc.Experience, 1)
	// Splitting the packed title is the renderer's job, not the normalizer's.
	assert.Equal(t, "Software Engineer — Harbor Labs", doc.Experience[0].Title)
	assert.Empty(t, doc.Experience[0].Company)
}

func TestNormalize_ExperienceAliases(t *testing.T) {
	doc := Normalize(map[string]any{
		"workExperience": []any{
			map[string]any{
				"role":       "SRE",
				"employer":   "Northwind",
				"duration":   "2020 - Present",
				"highlights": []any{"Cut latency by 40%"},
			},
		},
	}, types.SourceParsedFile)

	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "SRE", doc.Experience[0].Title)
	assert.Equal(t, "Northwind", doc.Experience[0].Company)
	assert.Equal(t, "2020 - Present", doc.Experience[0].Dates)
	assert.Equal(t, []string{"Cut latency by 40%"}, doc.Experience[0].Achievements)
}

func TestNormalize_StringCertifications(t *testing.T) {
	doc := Normalize(map[string]any{
		"certifications": []any{
			"AWS Solutions Architect",
			map[string]any{"name": "CKA", "issuer": "CNCF", "date": "2023"},
		},
	}, types.SourceParsedFile)

	require.Len(t, doc.Certifications, 2)
	assert.Equal(t, "AWS Solutions Architect", doc.Certifications[0].CertificateName)
	assert.Equal(t, "CKA", doc.Certifications[1].CertificateName)
	assert.Equal(t, "CNCF", doc.Certifications[1].InstituteName)
	assert.Equal(t, "2023", doc.Certifications[1].IssueDate)
}

func TestNormalize_EntryIDsAssigned(t *testing.T) {
	doc := Normalize(map[string]any{
		"experience": []any{
			map[string]any{"title": "A"},
			map[string]any{"title": "B", "id": "keep-me"},
		},
		"custom_sections": []any{
			map[string]any{"title": "Awards", "type": "list"},
		},
	}, types.SourceParsedFile)

	assert.NotEmpty(t, doc.Experience[0].ID)
	assert.Equal(t, "keep-me", doc.Experience[1].ID)
	assert.NotEmpty(t, doc.CustomSections[0].ID)

	// Freshly assigned custom-section ids participate in default visibility.
	assert.Contains(t, doc.VisibleSections, doc.CustomSections[0].ID)
}

func TestNormalize_CustomSectionPositions(t *testing.T) {
	doc := Normalize(map[string]any{
		"custom_sections": []any{
			map[string]any{"id": "c", "title": "Third", "position": 9},
			map[string]any{"id": "a", "title": "First", "position": 0},
			map[string]any{"id": "b", "title": "Second", "position": 4},
		},
	}, types.SourceParsedFile)

	require.Len(t, doc.CustomSections, 3)
	// Positions re-densify to 0..n-1 preserving relative order.
	assert.Equal(t, "a", doc.CustomSections[0].ID)
	assert.Equal(t, "b", doc.CustomSections[1].ID)
	assert.Equal(t, "c", doc.CustomSections[2].ID)
	for i, cs := range doc.CustomSections {
		assert.Equal(t, i, cs.Position)
	}
}

func TestNormalize_CustomSectionDefaults(t *testing.T) {
	doc := Normalize(map[string]any{
		"custom_sections": []any{
			map[string]any{"title": "Volunteering", "type": "nonsense"},
		},
	}, types.SourceParsedFile)

	require.Len(t, doc.CustomSections, 1)
	assert.Equal(t, types.CustomText, doc.CustomSections[0].Type)

	styling := doc.CustomSections[0].Styling
	assert.True(t, styling.ShowBullets)
	assert.True(t, styling.ShowDates)
	assert.Equal(t, "vertical", styling.Orientation)
}

func TestNormalize_ExplicitEmptyVisibility(t *testing.T) {
	raw := map[string]any{
		"summary":          "Something",
		"visible_sections": []any{},
	}

	// Builder state saying "nothing visible" is honored.
	builderDoc := Normalize(raw, types.SourceBuilderState)
	assert.Empty(t, builderDoc.VisibleSections)

	// The same payload from a parsed file falls back to everything visible.
	parsedDoc := Normalize(raw, types.SourceParsedFile)
	assert.Equal(t, types.DefaultSectionOrder(), parsedDoc.VisibleSections)
}

func TestNormalize_SectionOrderPreserved(t *testing.T) {
	doc := Normalize(map[string]any{
		"section_order": []any{"experience", "skills", "basic-details"},
	}, types.SourceBuilderState)

	assert.Equal(t, []string{"experience", "skills", "basic-details"}, doc.SectionOrder)
}

func TestNormalize_JSONBytesInput(t *testing.T) {
	doc := Normalize([]byte(`{"summary": "From raw bytes", "skills": ["Go"]}`), types.SourceParsedFile)

	assert.Equal(t, "From raw bytes", doc.Summary)
	assert.Equal(t, []string{"Go"}, doc.Skills.Flat)
}
