package render

import "github.com/jonathan/resume-studio/internal/types"

// ruleWidthFull and ruleWidthShort are percentage widths carried in
// BlockStyle.Spacing for rule blocks.
const (
	ruleWidthFull  = 100
	ruleWidthShort = 18
)

// sectionHeading builds the heading blocks for one section, dispatching on
// the configured heading style. Each style is its own block construction:
// the presence, count, and placement of rule and bar blocks differ, not just
// their styling.
func (s *styler) sectionHeading(title string) []types.Block {
	text := types.Block{
		Kind:  types.BlockHeading,
		Text:  title,
		Style: s.heading(),
	}

	switch s.cfg.HeadingStyle {
	case types.HeadingCenterUnderline:
		text.Style.Align = "center"
		rule := s.ruleBlock(ruleWidthShort)
		rule.Style.Align = "center"
		return []types.Block{text, rule}

	case types.HeadingCenterPlain:
		text.Style.Align = "center"
		return []types.Block{text}

	case types.HeadingBox:
		boxed := text
		boxed.Style.Background = s.accentOr(s.cfg.ApplyAccentTo.Headings, s.cfg.Theme.Primary)
		boxed.Style.Color = s.cfg.Theme.Background
		return []types.Block{boxed}

	case types.HeadingDoubleLine:
		return []types.Block{s.ruleBlock(ruleWidthFull), text, s.ruleBlock(ruleWidthFull)}

	case types.HeadingLeftExtended:
		bar := types.Block{
			Kind: types.BlockBar,
			Style: types.BlockStyle{
				Background: s.accentOr(s.cfg.ApplyAccentTo.Headings, s.cfg.Theme.Primary),
				Spacing:    ruleWidthShort,
			},
		}
		// Bar, heading text, then a rule filling the remaining width.
		return []types.Block{{
			Kind:     types.BlockRow,
			Children: []types.Block{bar, text, s.ruleBlock(ruleWidthFull)},
		}}

	case types.HeadingWavy:
		rule := s.ruleBlock(ruleWidthFull)
		rule.Style.Wavy = true
		rule.Style.BorderColor = s.accentOr(s.cfg.ApplyAccentTo.Headings, s.cfg.Theme.Border)
		return []types.Block{text, rule}

	default: // HeadingLeftUnderlineFull
		return []types.Block{text, s.ruleBlock(ruleWidthFull)}
	}
}

func (s *styler) ruleBlock(widthPct int) types.Block {
	st := s.rule()
	st.Spacing = widthPct
	return types.Block{Kind: types.BlockRule, Style: st}
}
