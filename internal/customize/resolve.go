package customize

import (
	"github.com/jonathan/resume-studio/internal/skins"
	"github.com/jonathan/resume-studio/internal/types"
)

// Resolve merges a partial customization over template and global defaults
// and returns a fully concrete RenderConfig. Precedence, highest first:
// explicit user fields, the template's default overlay, global defaults.
// The merge is per-field; setting one typography size never disturbs the
// font families. Resolve is pure and never fails: an unknown templateID
// simply contributes no template layer, and unrecognized enum values fall
// back to each field's default.
func Resolve(partial *types.CustomizationInput, templateID string) types.RenderConfig {
	cfg := GlobalDefaults()

	if skin, ok := skins.Lookup(templateID); ok {
		overlay(&cfg, &skin.Defaults)
	}
	if partial != nil {
		overlay(&cfg, partial)
	}
	return cfg
}

// overlay applies every set field of in onto cfg in place.
func overlay(cfg *types.RenderConfig, in *types.CustomizationInput) {
	overlayTheme(&cfg.Theme, in.Theme)
	overlayTypography(&cfg.Typography, in.Typography)
	overlayLayout(&cfg.Layout, in.Layout)

	if in.ColorMode != nil {
		cfg.ColorMode = parseColorMode(*in.ColorMode)
	}
	if in.AccentType != nil && *in.AccentType != "" {
		cfg.AccentType = *in.AccentType
	}
	overlayAccentTargets(&cfg.ApplyAccentTo, in.ApplyAccentTo)
	overlayEntryLayout(&cfg.EntryLayout, in.EntryLayout)
	overlayName(&cfg.Name, in.Name)
	overlayTitle(&cfg.Title, in.Title)

	if in.HeadingStyle != nil {
		cfg.HeadingStyle = parseHeadingStyle(*in.HeadingStyle)
	}
	if len(in.SectionOrder) > 0 {
		order := make([]string, len(in.SectionOrder))
		copy(order, in.SectionOrder)
		cfg.SectionOrder = order
	}
}

func overlayTheme(t *types.Theme, in *types.ThemeInput) {
	if in == nil {
		return
	}
	setStr(&t.Primary, in.Primary)
	setStr(&t.Secondary, in.Secondary)
	setStr(&t.Accent, in.Accent)
	setStr(&t.Background, in.Background)
	setStr(&t.Text, in.Text)
	setStr(&t.TextLight, in.TextLight)
	setStr(&t.Border, in.Border)
}

func overlayTypography(t *types.Typography, in *types.TypographyInput) {
	if in == nil {
		return
	}
	if ff := in.FontFamily; ff != nil {
		setStr(&t.FontFamily.Name, ff.Name)
		setStr(&t.FontFamily.Header, ff.Header)
		setStr(&t.FontFamily.Body, ff.Body)
	}
	if fs := in.FontSize; fs != nil {
		setFloat(&t.FontSize.Name, fs.Name)
		setFloat(&t.FontSize.Title, fs.Title)
		setFloat(&t.FontSize.Headers, fs.Headers)
		setFloat(&t.FontSize.Body, fs.Body)
		setFloat(&t.FontSize.Subheader, fs.Subheader)
	}
	if fw := in.FontWeight; fw != nil {
		setInt(&t.FontWeight.Name, fw.Name)
		setInt(&t.FontWeight.Headers, fw.Headers)
		setInt(&t.FontWeight.Body, fw.Body)
	}
}

func overlayLayout(l *types.Layout, in *types.LayoutInput) {
	if in == nil {
		return
	}
	setInt(&l.MarginX, in.MarginX)
	setInt(&l.MarginY, in.MarginY)
	setInt(&l.SectionSpacing, in.SectionSpacing)
	setFloat(&l.LineHeight, in.LineHeight)
}

func overlayAccentTargets(a *types.AccentTargets, in *types.AccentTargetsInput) {
	if in == nil {
		return
	}
	setBool(&a.Name, in.Name)
	setBool(&a.Headings, in.Headings)
	setBool(&a.HeaderIcons, in.HeaderIcons)
	setBool(&a.DotsBarsBubbles, in.DotsBarsBubbles)
	setBool(&a.Dates, in.Dates)
	setBool(&a.LinkIcons, in.LinkIcons)
}

func overlayEntryLayout(e *types.EntryLayout, in *types.EntryLayoutInput) {
	if in == nil {
		return
	}
	if in.LayoutType != nil {
		e.LayoutType = parseLayoutType(*in.LayoutType)
	}
	if in.SubtitlePlacement != nil {
		e.SubtitlePlacement = parseSubtitlePlacement(*in.SubtitlePlacement)
	}
	if in.SubtitleStyle != nil {
		e.SubtitleStyle = parseSubtitleStyle(*in.SubtitleStyle)
	}
	setBool(&e.IndentBody, in.IndentBody)
	if in.ListMarker != nil {
		e.ListMarker = parseListMarker(*in.ListMarker)
	}
	if in.DescriptionFormat != nil {
		e.DescriptionFormat = parseDescriptionFormat(*in.DescriptionFormat)
	}
}

func overlayName(n *types.NameCustomization, in *types.NameCustomizationInput) {
	if in == nil {
		return
	}
	if in.Size != nil {
		n.Size = parseSizeLevel(*in.Size)
	}
	setBool(&n.Bold, in.Bold)
	if in.Font != nil {
		n.Font = parseFontSlot(*in.Font)
	}
}

func overlayTitle(t *types.TitleCustomization, in *types.TitleCustomizationInput) {
	if in == nil {
		return
	}
	if in.Size != nil {
		t.Size = parseSizeLevel(*in.Size)
	}
	if in.Position != nil {
		t.Position = parseTitlePosition(*in.Position)
	}
	if in.Separator != nil {
		t.Separator = parseSeparator(*in.Separator)
	}
}

func setStr(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

// setInt and setFloat apply any present value, zero included, so a caller
// can ask for flush margins or zero section spacing. Negative values are
// never meaningful for sizes or spacing and fall back to the default.
func setInt(dst *int, src *int) {
	if src != nil && *src >= 0 {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil && *src >= 0 {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
