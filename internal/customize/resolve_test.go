package customize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/skins"
	"github.com/jonathan/resume-studio/internal/types"
)

func strp(s string) *string     { return &s }
func boolp(b bool) *bool        { return &b }
func intp(n int) *int           { return &n }
func floatp(f float64) *float64 { return &f }

func TestResolve_NilPartialYieldsDefaults(t *testing.T) {
	cfg := Resolve(nil, "no-such-template")

	defaults := GlobalDefaults()
	assert.Equal(t, defaults, cfg)
}

func TestResolve_TemplateDefaultsApply(t *testing.T) {
	cfg := Resolve(nil, "classic")

	// The classic skin prefers Georgia across all slots.
	assert.Equal(t, "Georgia", cfg.Typography.FontFamily.Name)
	assert.Equal(t, "Georgia", cfg.Typography.FontFamily.Body)
	assert.Equal(t, "#1a365d", cfg.Theme.Accent)

	// Everything the skin does not touch stays at the global default.
	assert.Equal(t, types.LayoutTwoLines, cfg.EntryLayout.LayoutType)
	assert.Equal(t, 10.5, cfg.Typography.FontSize.Body)
}

func TestResolve_UserOverridesTemplate(t *testing.T) {
	partial := &types.CustomizationInput{
		Theme: &types.ThemeInput{
			Accent: strp("#e53e3e"),
		},
	}

	cfg := Resolve(partial, "classic")

	// User accent wins over the skin's #1a365d.
	assert.Equal(t, "#e53e3e", cfg.Theme.Accent)
	// The skin's untouched fields survive.
	assert.Equal(t, "Georgia", cfg.Typography.FontFamily.Name)
}

func TestResolve_PartialMergeIsPerField(t *testing.T) {
	partial := &types.CustomizationInput{
		Typography: &types.TypographyInput{
			FontSize: &types.FontSizesInput{
				Body: floatp(12),
			},
		},
	}

	cfg := Resolve(partial, "")

	assert.Equal(t, float64(12), cfg.Typography.FontSize.Body)
	// Sibling fields of the same sub-struct keep their defaults.
	assert.Equal(t, float64(24), cfg.Typography.FontSize.Name)
	assert.Equal(t, "Helvetica", cfg.Typography.FontFamily.Body)
}

func TestResolve_ZeroSpacingIsExplicit(t *testing.T) {
	partial := &types.CustomizationInput{
		Layout: &types.LayoutInput{
			MarginX:        intp(0),
			SectionSpacing: intp(0),
		},
	}

	cfg := Resolve(partial, "")

	// A requested zero is an override, not an absent value.
	assert.Equal(t, 0, cfg.Layout.MarginX)
	assert.Equal(t, 0, cfg.Layout.SectionSpacing)
	// Fields left nil keep their defaults.
	assert.Equal(t, GlobalDefaults().Layout.MarginY, cfg.Layout.MarginY)
	assert.Equal(t, GlobalDefaults().Layout.LineHeight, cfg.Layout.LineHeight)
}

func TestResolve_NegativeSpacingFallsBack(t *testing.T) {
	partial := &types.CustomizationInput{
		Layout: &types.LayoutInput{
			MarginY:    intp(-4),
			LineHeight: floatp(-1),
		},
	}

	cfg := Resolve(partial, "")

	assert.Equal(t, GlobalDefaults().Layout.MarginY, cfg.Layout.MarginY)
	assert.Equal(t, GlobalDefaults().Layout.LineHeight, cfg.Layout.LineHeight)
}

func TestResolve_UnknownEnumFallsBack(t *testing.T) {
	partial := &types.CustomizationInput{
		ColorMode:    strp("psychedelic"),
		HeadingStyle: strp("zigzag"),
		EntryLayout: &types.EntryLayoutInput{
			LayoutType: strp("five-columns"),
			ListMarker: strp("arrow"),
		},
	}

	cfg := Resolve(partial, "")

	assert.Equal(t, types.ColorBasic, cfg.ColorMode)
	assert.Equal(t, types.HeadingLeftUnderlineFull, cfg.HeadingStyle)
	assert.Equal(t, types.LayoutTwoLines, cfg.EntryLayout.LayoutType)
	assert.Equal(t, types.MarkerBullet, cfg.EntryLayout.ListMarker)
}

func TestResolve_ValidEnumsParse(t *testing.T) {
	partial := &types.CustomizationInput{
		ColorMode:    strp("advanced"),
		HeadingStyle: strp("center-underline"),
		EntryLayout: &types.EntryLayoutInput{
			LayoutType:        strp("icons-left-text-right"),
			SubtitlePlacement: strp("next-line"),
			ListMarker:        strp("dash"),
			DescriptionFormat: strp("paragraph"),
		},
		Title: &types.TitleCustomizationInput{
			Position:  strp("below"),
			Separator: strp("bullet"),
		},
	}

	cfg := Resolve(partial, "")

	assert.Equal(t, types.ColorAdvanced, cfg.ColorMode)
	assert.Equal(t, types.HeadingCenterUnderline, cfg.HeadingStyle)
	assert.Equal(t, types.LayoutIconsLeftTextRight, cfg.EntryLayout.LayoutType)
	assert.Equal(t, types.SubtitleNextLine, cfg.EntryLayout.SubtitlePlacement)
	assert.Equal(t, types.MarkerDash, cfg.EntryLayout.ListMarker)
	assert.Equal(t, types.FormatParagraph, cfg.EntryLayout.DescriptionFormat)
	assert.Equal(t, types.TitleBelow, cfg.Title.Position)
	assert.Equal(t, types.SeparatorBullet, cfg.Title.Separator)
}

func TestResolve_AccentTargetToggles(t *testing.T) {
	partial := &types.CustomizationInput{
		ApplyAccentTo: &types.AccentTargetsInput{
			Dates:    boolp(true),
			Headings: boolp(false),
		},
	}

	cfg := Resolve(partial, "")

	assert.True(t, cfg.ApplyAccentTo.Dates)
	assert.False(t, cfg.ApplyAccentTo.Headings)
	// Untouched toggles keep the global default.
	assert.True(t, cfg.ApplyAccentTo.LinkIcons)
	assert.False(t, cfg.ApplyAccentTo.Name)
}

func TestResolve_SectionOrderCopied(t *testing.T) {
	order := []string{"skills", "experience"}
	partial := &types.CustomizationInput{SectionOrder: order}

	cfg := Resolve(partial, "")
	require.Equal(t, order, cfg.SectionOrder)

	// Mutating the caller's slice must not leak into the resolved config.
	order[0] = "mutated"
	assert.Equal(t, "skills", cfg.SectionOrder[0])
}

func TestResolve_Pure(t *testing.T) {
	partial := &types.CustomizationInput{
		Theme: &types.ThemeInput{Accent: strp("#123456")},
	}

	first := Resolve(partial, "modern")
	second := Resolve(partial, "modern")
	assert.Equal(t, first, second)
}

func TestResolve_EverySkinProducesCompleteConfig(t *testing.T) {
	for _, skin := range skins.All() {
		cfg := Resolve(nil, skin.ID)

		assert.NotEmpty(t, cfg.Theme.Accent, "skin %s", skin.ID)
		assert.NotEmpty(t, cfg.Typography.FontFamily.Body, "skin %s", skin.ID)
		assert.Greater(t, cfg.Typography.FontSize.Body, 0.0, "skin %s", skin.ID)
		assert.NotEmpty(t, string(cfg.HeadingStyle), "skin %s", skin.ID)
		assert.NotEmpty(t, cfg.SectionOrder, "skin %s", skin.ID)
	}
}
