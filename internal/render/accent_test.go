package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

// stripColor zeroes Color and Background on every block matching the role set
// so two trees can be compared modulo those fields.
func stripColor(blocks []types.Block, roles map[string]bool) []types.Block {
	out := make([]types.Block, len(blocks))
	for i, b := range blocks {
		if roles[b.Role] {
			b.Style.Color = ""
			b.Style.Background = ""
			b.Style.BorderColor = ""
		}
		b.Children = stripColor(b.Children, roles)
		out[i] = b
	}
	return out
}

// renderWith renders the sample document with one accent toggle flipped.
func renderWith(t *testing.T, mutate func(*types.RenderConfig)) *types.RenderedDocument {
	t.Helper()
	cfg := defaultCfg()
	if mutate != nil {
		mutate(&cfg)
	}
	rendered, err := Render(sampleDoc(), cfg, "classic")
	require.NoError(t, err)
	return rendered
}

// assertToggleIsolated renders with the toggle off and on and verifies the
// trees are identical outside the blocks carrying the affected roles.
func assertToggleIsolated(t *testing.T, set func(*types.AccentTargets, bool), roles ...string) {
	t.Helper()

	off := renderWith(t, func(cfg *types.RenderConfig) { set(&cfg.ApplyAccentTo, false) })
	on := renderWith(t, func(cfg *types.RenderConfig) { set(&cfg.ApplyAccentTo, true) })

	affected := make(map[string]bool, len(roles))
	for _, r := range roles {
		affected[r] = true
	}

	assert.Equal(t,
		stripColor(off.Blocks, affected),
		stripColor(on.Blocks, affected),
		"toggling must not change any block outside roles %v", roles)
}

func TestAccent_DatesToggleOnlyAffectsDates(t *testing.T) {
	assertToggleIsolated(t, func(a *types.AccentTargets, v bool) { a.Dates = v }, types.RoleDate)

	cfg := defaultCfg()
	cfg.ApplyAccentTo.Dates = true
	rendered, err := Render(sampleDoc(), cfg, "classic")
	require.NoError(t, err)

	dates := collectByRole(rendered.Blocks, types.RoleDate)
	require.NotEmpty(t, dates)
	for _, d := range dates {
		assert.Equal(t, cfg.Theme.Accent, d.Style.Color)
	}
}

func TestAccent_NameToggleOnlyAffectsName(t *testing.T) {
	assertToggleIsolated(t, func(a *types.AccentTargets, v bool) { a.Name = v }, types.RoleName)

	cfg := defaultCfg()
	cfg.ApplyAccentTo.Name = true
	rendered, err := Render(sampleDoc(), cfg, "classic")
	require.NoError(t, err)

	names := collectByRole(rendered.Blocks, types.RoleName)
	require.Len(t, names, 1)
	assert.Equal(t, cfg.Theme.Accent, names[0].Style.Color)
}

func TestAccent_HeaderIconsToggle(t *testing.T) {
	assertToggleIsolated(t, func(a *types.AccentTargets, v bool) { a.HeaderIcons = v }, types.RoleHeaderIcon)

	cfg := defaultCfg()
	cfg.ApplyAccentTo.HeaderIcons = true
	rendered, err := Render(sampleDoc(), cfg, "classic")
	require.NoError(t, err)

	icons := collectByRole(rendered.Blocks, types.RoleHeaderIcon)
	require.NotEmpty(t, icons)
	for _, icon := range icons {
		assert.Equal(t, cfg.Theme.Accent, icon.Style.Color)
	}
}

func TestAccent_LinkIconsToggle(t *testing.T) {
	assertToggleIsolated(t, func(a *types.AccentTargets, v bool) { a.LinkIcons = v }, types.RoleLinkIcon)
}

func TestAccent_HeadingsToggle(t *testing.T) {
	cfg := defaultCfg()
	cfg.ApplyAccentTo.Headings = false
	off, err := Render(sampleDoc(), cfg, "classic")
	require.NoError(t, err)

	cfg.ApplyAccentTo.Headings = true
	on, err := Render(sampleDoc(), cfg, "classic")
	require.NoError(t, err)

	// Heading text color switches between primary and accent; nothing with a
	// semantic role moves.
	var offHeading, onHeading types.Block
	walk(off.Blocks, func(b types.Block) {
		if b.Kind == types.BlockHeading && offHeading.Kind == "" {
			offHeading = b
		}
	})
	walk(on.Blocks, func(b types.Block) {
		if b.Kind == types.BlockHeading && onHeading.Kind == "" {
			onHeading = b
		}
	})
	assert.Equal(t, cfg.Theme.Primary, offHeading.Style.Color)
	assert.Equal(t, cfg.Theme.Accent, onHeading.Style.Color)

	// Body text stays untouched either way.
	assert.Equal(t,
		collectByRole(off.Blocks, types.RoleDate),
		collectByRole(on.Blocks, types.RoleDate))
}

func TestAccent_MarkerToggle(t *testing.T) {
	cfg := defaultCfg()
	cfg.EntryLayout.LayoutType = types.LayoutIconsLeftTextRight

	cfg.ApplyAccentTo.DotsBarsBubbles = true
	rendered, err := Render(sampleDoc(), cfg, "classic")
	require.NoError(t, err)

	found := false
	walk(rendered.Blocks, func(b types.Block) {
		if b.Kind == types.BlockMarker && b.Role == "" {
			found = true
			assert.Equal(t, cfg.Theme.Accent, b.Style.Color)
		}
	})
	assert.True(t, found, "expected entry markers in icons-left layout")
}
