package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestRenderSkills_GroupsAndFlatColonFormEquivalent(t *testing.T) {
	s := newStyler(defaultCfg())

	grouped := s.renderSkills(types.SkillSet{
		Groups: []types.SkillGroup{
			{Category: "Languages", Items: []string{"Go", "Python"}},
			{Category: "Databases", Items: []string{"PostgreSQL"}},
		},
	})
	flat := s.renderSkills(types.SkillSet{
		Flat: []string{"Languages: Go, Python", "Databases: PostgreSQL"},
	})

	assert.Equal(t, grouped, flat)
}

func TestRenderSkills_FlatWithoutColonRendersVerbatim(t *testing.T) {
	s := newStyler(defaultCfg())

	blocks := s.renderSkills(types.SkillSet{Flat: []string{"Go", "Kubernetes"}})
	require.Len(t, blocks, 2)
	assert.Equal(t, types.BlockText, blocks[0].Kind)
	assert.Equal(t, "Go", blocks[0].Text)
	assert.Equal(t, "Kubernetes", blocks[1].Text)
}

func TestRenderSkills_CategoryLabelEmphasized(t *testing.T) {
	cfg := defaultCfg()
	s := newStyler(cfg)

	blocks := s.renderSkills(types.SkillSet{
		Groups: []types.SkillGroup{{Category: "Tools", Items: []string{"Docker"}}},
	})
	require.Len(t, blocks, 1)
	require.Equal(t, types.BlockRow, blocks[0].Kind)
	require.Len(t, blocks[0].Children, 2)

	label := blocks[0].Children[0]
	assert.Equal(t, "Tools: ", label.Text)
	assert.Equal(t, cfg.Typography.FontWeight.Headers, label.Style.FontWeight)

	items := blocks[0].Children[1]
	assert.Equal(t, "Docker", items.Text)
	assert.Equal(t, cfg.Typography.FontWeight.Body, items.Style.FontWeight)
}

func TestRenderSkills_EmptyGroupSkipped(t *testing.T) {
	s := newStyler(defaultCfg())

	blocks := s.renderSkills(types.SkillSet{
		Groups: []types.SkillGroup{
			{Category: "Empty", Items: nil},
			{Category: "Tools", Items: []string{"Docker"}},
		},
	})
	require.Len(t, blocks, 1)
	assert.Equal(t, "Tools: ", blocks[0].Children[0].Text)
}

func TestRenderSkills_EmptySetPlaceholder(t *testing.T) {
	s := newStyler(defaultCfg())

	blocks := s.renderSkills(types.SkillSet{})
	require.Len(t, blocks, 1)
	assert.Equal(t, types.RolePlaceholder, blocks[0].Role)
	assert.Equal(t, placeholderSkills, blocks[0].Text)
	assert.True(t, blocks[0].Style.Italic)
}
