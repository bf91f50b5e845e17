package render

import "github.com/jonathan/resume-studio/internal/types"

// styler resolves RenderConfig values into concrete BlockStyle values once
// per render call. There is no variable indirection in the output tree: every
// block carries the final color, family, and size it should display with.
type styler struct {
	cfg types.RenderConfig
}

func newStyler(cfg types.RenderConfig) *styler {
	return &styler{cfg: cfg}
}

// accentOr returns the theme accent when the given accent-targeting toggle is
// on, and the fallback color otherwise. Every accent decision in the tree
// goes through here so a toggle applies identically across all sections.
func (s *styler) accentOr(on bool, fallback string) string {
	if on {
		return s.cfg.Theme.Accent
	}
	return fallback
}

// sizeFor scales a base point size by the coarse size level.
func sizeFor(level types.SizeLevel, base float64) float64 {
	switch level {
	case types.SizeSmall:
		return base * 0.85
	case types.SizeLarge:
		return base * 1.2
	default:
		return base
	}
}

// familyFor maps a font slot choice to the configured family.
func (s *styler) familyFor(slot types.FontSlot) string {
	switch slot {
	case types.FontSlotHeader:
		return s.cfg.Typography.FontFamily.Header
	case types.FontSlotBody:
		return s.cfg.Typography.FontFamily.Body
	default:
		return s.cfg.Typography.FontFamily.Name
	}
}

func (s *styler) page() types.BlockStyle {
	st := types.BlockStyle{
		Color:      s.cfg.Theme.Text,
		Background: s.cfg.Theme.Background,
		FontFamily: s.cfg.Typography.FontFamily.Body,
		FontSize:   s.cfg.Typography.FontSize.Body,
		LineHeight: s.cfg.Layout.LineHeight,
		MarginX:    s.cfg.Layout.MarginX,
		MarginY:    s.cfg.Layout.MarginY,
		Spacing:    s.cfg.Layout.SectionSpacing,
	}
	if s.cfg.ColorMode == types.ColorBorder {
		st.BorderColor = s.cfg.Theme.Accent
	}
	return st
}

func (s *styler) name() types.BlockStyle {
	weight := 400
	if s.cfg.Name.Bold {
		weight = s.cfg.Typography.FontWeight.Name
	}
	return types.BlockStyle{
		Color:      s.accentOr(s.cfg.ApplyAccentTo.Name, s.cfg.Theme.Primary),
		FontFamily: s.familyFor(s.cfg.Name.Font),
		FontSize:   sizeFor(s.cfg.Name.Size, s.cfg.Typography.FontSize.Name),
		FontWeight: weight,
	}
}

func (s *styler) title() types.BlockStyle {
	return types.BlockStyle{
		Color:      s.cfg.Theme.Secondary,
		FontFamily: s.cfg.Typography.FontFamily.Header,
		FontSize:   sizeFor(s.cfg.Title.Size, s.cfg.Typography.FontSize.Title),
		FontWeight: s.cfg.Typography.FontWeight.Body,
	}
}

func (s *styler) heading() types.BlockStyle {
	return types.BlockStyle{
		Color:      s.accentOr(s.cfg.ApplyAccentTo.Headings, s.cfg.Theme.Primary),
		FontFamily: s.cfg.Typography.FontFamily.Header,
		FontSize:   s.cfg.Typography.FontSize.Headers,
		FontWeight: s.cfg.Typography.FontWeight.Headers,
	}
}

func (s *styler) body() types.BlockStyle {
	return types.BlockStyle{
		Color:      s.cfg.Theme.Text,
		FontFamily: s.cfg.Typography.FontFamily.Body,
		FontSize:   s.cfg.Typography.FontSize.Body,
		FontWeight: s.cfg.Typography.FontWeight.Body,
		LineHeight: s.cfg.Layout.LineHeight,
	}
}

func (s *styler) subheader() types.BlockStyle {
	return types.BlockStyle{
		Color:      s.cfg.Theme.Primary,
		FontFamily: s.cfg.Typography.FontFamily.Header,
		FontSize:   s.cfg.Typography.FontSize.Subheader,
		FontWeight: s.cfg.Typography.FontWeight.Headers,
	}
}

// subtitle applies the configured subtitle emphasis on top of the body style.
func (s *styler) subtitle() types.BlockStyle {
	st := s.body()
	st.Color = s.cfg.Theme.Secondary
	switch s.cfg.EntryLayout.SubtitleStyle {
	case types.SubtitleBold:
		st.FontWeight = s.cfg.Typography.FontWeight.Headers
	case types.SubtitleItalic:
		st.Italic = true
	}
	return st
}

func (s *styler) date() types.BlockStyle {
	st := s.body()
	st.Color = s.accentOr(s.cfg.ApplyAccentTo.Dates, s.cfg.Theme.TextLight)
	return st
}

func (s *styler) location() types.BlockStyle {
	st := s.body()
	st.Color = s.cfg.Theme.TextLight
	return st
}

func (s *styler) linkIcon() types.BlockStyle {
	st := s.body()
	st.Color = s.accentOr(s.cfg.ApplyAccentTo.LinkIcons, s.cfg.Theme.Secondary)
	return st
}

func (s *styler) headerIcon() types.BlockStyle {
	st := s.body()
	st.Color = s.accentOr(s.cfg.ApplyAccentTo.HeaderIcons, s.cfg.Theme.Secondary)
	return st
}

func (s *styler) marker() types.BlockStyle {
	return types.BlockStyle{
		Color: s.accentOr(s.cfg.ApplyAccentTo.DotsBarsBubbles, s.cfg.Theme.Border),
	}
}

func (s *styler) rule() types.BlockStyle {
	return types.BlockStyle{BorderColor: s.cfg.Theme.Border}
}

// placeholderize converts a style to the italic light presentation used for
// substituted placeholder text.
func (s *styler) placeholderize(st types.BlockStyle) types.BlockStyle {
	st.Color = s.cfg.Theme.TextLight
	st.Italic = true
	return st
}
