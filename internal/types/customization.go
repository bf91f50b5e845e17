package types

// CustomizationInput is the partial, user-authored customization overlay.
// Every field is optional; nil means "inherit from the template or global
// default". The customize package folds this over the defaults tables to
// produce a RenderConfig; it never replaces whole sub-objects, only the
// fields that are actually set.
type CustomizationInput struct {
	Theme         *ThemeInput              `json:"theme,omitempty"`
	Typography    *TypographyInput         `json:"typography,omitempty"`
	Layout        *LayoutInput             `json:"layout,omitempty"`
	ColorMode     *string                  `json:"color_mode,omitempty"`
	AccentType    *string                  `json:"accent_type,omitempty"`
	ApplyAccentTo *AccentTargetsInput      `json:"apply_accent_to,omitempty"`
	EntryLayout   *EntryLayoutInput        `json:"entry_layout,omitempty"`
	Name          *NameCustomizationInput  `json:"name,omitempty"`
	Title         *TitleCustomizationInput `json:"title,omitempty"`
	HeadingStyle  *string                  `json:"heading_style,omitempty"`
	SectionOrder  []string                 `json:"section_order,omitempty"`
}

// ThemeInput overlays individual theme colors.
type ThemeInput struct {
	Primary    *string `json:"primary,omitempty"`
	Secondary  *string `json:"secondary,omitempty"`
	Accent     *string `json:"accent,omitempty"`
	Background *string `json:"background,omitempty"`
	Text       *string `json:"text,omitempty"`
	TextLight  *string `json:"text_light,omitempty"`
	Border     *string `json:"border,omitempty"`
}

// TypographyInput overlays individual typography fields.
type TypographyInput struct {
	FontFamily *FontFamiliesInput `json:"font_family,omitempty"`
	FontSize   *FontSizesInput    `json:"font_size,omitempty"`
	FontWeight *FontWeightsInput  `json:"font_weight,omitempty"`
}

// FontFamiliesInput overlays the family slots.
type FontFamiliesInput struct {
	Name   *string `json:"name,omitempty"`
	Header *string `json:"header,omitempty"`
	Body   *string `json:"body,omitempty"`
}

// FontSizesInput overlays the per-role sizes.
type FontSizesInput struct {
	Name      *float64 `json:"name,omitempty"`
	Title     *float64 `json:"title,omitempty"`
	Headers   *float64 `json:"headers,omitempty"`
	Body      *float64 `json:"body,omitempty"`
	Subheader *float64 `json:"subheader,omitempty"`
}

// FontWeightsInput overlays the weight slots.
type FontWeightsInput struct {
	Name    *int `json:"name,omitempty"`
	Headers *int `json:"headers,omitempty"`
	Body    *int `json:"body,omitempty"`
}

// LayoutInput overlays the page spacing values.
type LayoutInput struct {
	MarginX        *int     `json:"margin_x,omitempty"`
	MarginY        *int     `json:"margin_y,omitempty"`
	SectionSpacing *int     `json:"section_spacing,omitempty"`
	LineHeight     *float64 `json:"line_height,omitempty"`
}

// AccentTargetsInput overlays the accent toggles.
type AccentTargetsInput struct {
	Name            *bool `json:"name,omitempty"`
	Headings        *bool `json:"headings,omitempty"`
	HeaderIcons     *bool `json:"header_icons,omitempty"`
	DotsBarsBubbles *bool `json:"dots_bars_bubbles,omitempty"`
	Dates           *bool `json:"dates,omitempty"`
	LinkIcons       *bool `json:"link_icons,omitempty"`
}

// EntryLayoutInput overlays the entry arrangement options. Enum-valued fields
// are plain strings here; unrecognized values fall back to defaults during
// resolution instead of erroring.
type EntryLayoutInput struct {
	LayoutType        *string `json:"layout_type,omitempty"`
	SubtitlePlacement *string `json:"subtitle_placement,omitempty"`
	SubtitleStyle     *string `json:"subtitle_style,omitempty"`
	IndentBody        *bool   `json:"indent_body,omitempty"`
	ListMarker        *string `json:"list_marker,omitempty"`
	DescriptionFormat *string `json:"description_format,omitempty"`
}

// NameCustomizationInput overlays the name line options.
type NameCustomizationInput struct {
	Size *string `json:"size,omitempty"`
	Bold *bool   `json:"bold,omitempty"`
	Font *string `json:"font,omitempty"`
}

// TitleCustomizationInput overlays the title line options.
type TitleCustomizationInput struct {
	Size      *string `json:"size,omitempty"`
	Position  *string `json:"position,omitempty"`
	Separator *string `json:"separator,omitempty"`
}
