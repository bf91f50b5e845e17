package customize

import "github.com/jonathan/resume-studio/internal/types"

// Enum parsers. Every unrecognized value maps to the field's documented
// default rather than erroring, since customization payloads may be authored
// by older clients or hand-edited.

func parseColorMode(v string) types.ColorMode {
	switch types.ColorMode(v) {
	case types.ColorBasic, types.ColorAdvanced, types.ColorBorder:
		return types.ColorMode(v)
	}
	return types.ColorBasic
}

func parseLayoutType(v string) types.EntryLayoutType {
	switch types.EntryLayoutType(v) {
	case types.LayoutTextLeftIconsRight,
		types.LayoutIconsLeftTextRight,
		types.LayoutIconsTextIcons,
		types.LayoutTwoLines:
		return types.EntryLayoutType(v)
	}
	return types.LayoutTwoLines
}

func parseSubtitlePlacement(v string) types.SubtitlePlacement {
	switch types.SubtitlePlacement(v) {
	case types.SubtitleSameLine, types.SubtitleNextLine:
		return types.SubtitlePlacement(v)
	}
	return types.SubtitleSameLine
}

func parseSubtitleStyle(v string) types.SubtitleStyle {
	switch types.SubtitleStyle(v) {
	case types.SubtitleNormal, types.SubtitleBold, types.SubtitleItalic:
		return types.SubtitleStyle(v)
	}
	return types.SubtitleNormal
}

func parseListMarker(v string) types.ListMarker {
	switch types.ListMarker(v) {
	case types.MarkerBullet, types.MarkerDash:
		return types.ListMarker(v)
	}
	return types.MarkerBullet
}

func parseDescriptionFormat(v string) types.DescriptionFormat {
	switch types.DescriptionFormat(v) {
	case types.FormatPoints, types.FormatParagraph:
		return types.DescriptionFormat(v)
	}
	return types.FormatPoints
}

func parseSizeLevel(v string) types.SizeLevel {
	switch types.SizeLevel(v) {
	case types.SizeSmall, types.SizeMedium, types.SizeLarge:
		return types.SizeLevel(v)
	}
	return types.SizeMedium
}

func parseFontSlot(v string) types.FontSlot {
	switch types.FontSlot(v) {
	case types.FontSlotName, types.FontSlotHeader, types.FontSlotBody:
		return types.FontSlot(v)
	}
	return types.FontSlotName
}

func parseTitlePosition(v string) types.TitlePosition {
	switch types.TitlePosition(v) {
	case types.TitleBesides, types.TitleBelow:
		return types.TitlePosition(v)
	}
	return types.TitleBesides
}

func parseSeparator(v string) types.SeparatorGlyph {
	switch types.SeparatorGlyph(v) {
	case types.SeparatorLine, types.SeparatorBullet, types.SeparatorDash, types.SeparatorSpace:
		return types.SeparatorGlyph(v)
	}
	return types.SeparatorLine
}

func parseHeadingStyle(v string) types.HeadingStyle {
	switch types.HeadingStyle(v) {
	case types.HeadingLeftUnderlineFull,
		types.HeadingCenterUnderline,
		types.HeadingCenterPlain,
		types.HeadingBox,
		types.HeadingDoubleLine,
		types.HeadingLeftExtended,
		types.HeadingWavy:
		return types.HeadingStyle(v)
	}
	return types.HeadingLeftUnderlineFull
}
