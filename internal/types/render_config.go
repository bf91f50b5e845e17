package types

// RenderConfig is the fully-resolved customization contract consumed by the
// renderer. It is produced by the customize package and is never partial at
// render time: every field holds a concrete value.
type RenderConfig struct {
	Theme         Theme              `json:"theme"`
	Typography    Typography         `json:"typography"`
	Layout        Layout             `json:"layout"`
	ColorMode     ColorMode          `json:"color_mode"`
	AccentType    string             `json:"accent_type"`
	ApplyAccentTo AccentTargets      `json:"apply_accent_to"`
	EntryLayout   EntryLayout        `json:"entry_layout"`
	Name          NameCustomization  `json:"name"`
	Title         TitleCustomization `json:"title"`
	HeadingStyle  HeadingStyle       `json:"heading_style"`
	SectionOrder  []string           `json:"section_order"`
}

// Theme is the seven named colors a skin draws from.
type Theme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	TextLight  string `json:"text_light"`
	Border     string `json:"border"`
}

// Typography groups the font settings: three family slots, five independent
// sizes, three weight slots.
type Typography struct {
	FontFamily FontFamilies `json:"font_family"`
	FontSize   FontSizes    `json:"font_size"`
	FontWeight FontWeights  `json:"font_weight"`
}

// FontFamilies is the three font-family slots.
type FontFamilies struct {
	Name   string `json:"name"`
	Header string `json:"header"`
	Body   string `json:"body"`
}

// FontSizes holds point sizes per text role.
type FontSizes struct {
	Name      float64 `json:"name"`
	Title     float64 `json:"title"`
	Headers   float64 `json:"headers"`
	Body      float64 `json:"body"`
	Subheader float64 `json:"subheader"`
}

// FontWeights holds numeric weights (400/600/700 style) per slot.
type FontWeights struct {
	Name    int `json:"name"`
	Headers int `json:"headers"`
	Body    int `json:"body"`
}

// Layout holds page-level spacing values.
type Layout struct {
	MarginX        int     `json:"margin_x"`
	MarginY        int     `json:"margin_y"`
	SectionSpacing int     `json:"section_spacing"`
	LineHeight     float64 `json:"line_height"`
}

// ColorMode selects how broadly theme color is applied.
type ColorMode string

const (
	// ColorBasic colors accented elements only.
	ColorBasic ColorMode = "basic"
	// ColorAdvanced additionally tints backgrounds and secondary text.
	ColorAdvanced ColorMode = "advanced"
	// ColorBorder draws a themed page border.
	ColorBorder ColorMode = "border"
)

// AccentTargets are six independent toggles controlling whether each class of
// visual element uses the theme accent color or its default color. Each
// toggle applies to every matching element in the document, across all
// sections.
type AccentTargets struct {
	Name            bool `json:"name"`
	Headings        bool `json:"headings"`
	HeaderIcons     bool `json:"header_icons"`
	DotsBarsBubbles bool `json:"dots_bars_bubbles"`
	Dates           bool `json:"dates"`
	LinkIcons       bool `json:"link_icons"`
}

// EntryLayoutType is one of four arrangements for experience, education, and
// project rows. All four display the same fields.
type EntryLayoutType string

const (
	// LayoutTextLeftIconsRight puts title text left, marker and dates right.
	LayoutTextLeftIconsRight EntryLayoutType = "text-left-icons-right"
	// LayoutIconsLeftTextRight puts marker and dates left, title text right.
	LayoutIconsLeftTextRight EntryLayoutType = "icons-left-text-right"
	// LayoutIconsTextIcons puts a marker on both flanks of the title text.
	LayoutIconsTextIcons EntryLayoutType = "icons-text-icons"
	// LayoutTwoLines puts title and dates on the first line, subtitle below.
	LayoutTwoLines EntryLayoutType = "two-lines"
)

// SubtitlePlacement positions the subtitle relative to the title.
type SubtitlePlacement string

const (
	// SubtitleSameLine renders the subtitle on the title line.
	SubtitleSameLine SubtitlePlacement = "same-line"
	// SubtitleNextLine renders the subtitle on its own line.
	SubtitleNextLine SubtitlePlacement = "next-line"
)

// SubtitleStyle is the subtitle's emphasis.
type SubtitleStyle string

const (
	// SubtitleNormal renders the subtitle unstyled.
	SubtitleNormal SubtitleStyle = "normal"
	// SubtitleBold renders the subtitle bold.
	SubtitleBold SubtitleStyle = "bold"
	// SubtitleItalic renders the subtitle italic.
	SubtitleItalic SubtitleStyle = "italic"
)

// ListMarker is the glyph used for pointed description lines.
type ListMarker string

const (
	// MarkerBullet uses "•".
	MarkerBullet ListMarker = "bullet"
	// MarkerDash uses "–".
	MarkerDash ListMarker = "dash"
)

// Glyph returns the display character for the marker.
func (m ListMarker) Glyph() string {
	if m == MarkerDash {
		return "–"
	}
	return "•"
}

// DescriptionFormat controls achievement rendering.
type DescriptionFormat string

const (
	// FormatPoints renders each achievement as a marked line.
	FormatPoints DescriptionFormat = "points"
	// FormatParagraph joins achievements into one justified block.
	FormatParagraph DescriptionFormat = "paragraph"
)

// EntryLayout groups the entry-row arrangement options.
type EntryLayout struct {
	LayoutType        EntryLayoutType   `json:"layout_type"`
	SubtitlePlacement SubtitlePlacement `json:"subtitle_placement"`
	SubtitleStyle     SubtitleStyle     `json:"subtitle_style"`
	IndentBody        bool              `json:"indent_body"`
	ListMarker        ListMarker        `json:"list_marker"`
	DescriptionFormat DescriptionFormat `json:"description_format"`
}

// SizeLevel is a coarse size selector for the name and title.
type SizeLevel string

const (
	// SizeSmall is the compact option.
	SizeSmall SizeLevel = "small"
	// SizeMedium is the default.
	SizeMedium SizeLevel = "medium"
	// SizeLarge is the prominent option.
	SizeLarge SizeLevel = "large"
)

// FontSlot names which typography family slot a field borrows.
type FontSlot string

const (
	// FontSlotName uses the dedicated name family.
	FontSlotName FontSlot = "name"
	// FontSlotHeader uses the header family.
	FontSlotHeader FontSlot = "header"
	// FontSlotBody uses the body family.
	FontSlotBody FontSlot = "body"
)

// NameCustomization controls the header name line.
type NameCustomization struct {
	Size SizeLevel `json:"size"`
	Bold bool      `json:"bold"`
	Font FontSlot  `json:"font"`
}

// TitlePosition places the professional title relative to the name.
type TitlePosition string

const (
	// TitleBesides joins name and title on one line.
	TitleBesides TitlePosition = "besides"
	// TitleBelow renders the title on its own line under the name.
	TitleBelow TitlePosition = "below"
)

// SeparatorGlyph joins name and title when they share a line.
type SeparatorGlyph string

const (
	// SeparatorLine is a vertical bar.
	SeparatorLine SeparatorGlyph = "line"
	// SeparatorBullet is a bullet dot.
	SeparatorBullet SeparatorGlyph = "bullet"
	// SeparatorDash is an em dash.
	SeparatorDash SeparatorGlyph = "dash"
	// SeparatorSpace is a plain space.
	SeparatorSpace SeparatorGlyph = "space"
)

// Glyph returns the display string for the separator, including surrounding
// spacing.
func (s SeparatorGlyph) Glyph() string {
	switch s {
	case SeparatorBullet:
		return " • "
	case SeparatorDash:
		return " — "
	case SeparatorSpace:
		return " "
	default:
		return " | "
	}
}

// TitleCustomization controls the professional title line.
type TitleCustomization struct {
	Size      SizeLevel      `json:"size"`
	Position  TitlePosition  `json:"position"`
	Separator SeparatorGlyph `json:"separator"`
}

// HeadingStyle selects one of the seven section-heading algorithms. Each is a
// distinct block construction, not a cosmetic variant.
type HeadingStyle string

const (
	// HeadingLeftUnderlineFull draws a rule across the full width under a
	// left-aligned heading.
	HeadingLeftUnderlineFull HeadingStyle = "left-underline-full"
	// HeadingCenterUnderline centers the heading over a short centered rule.
	HeadingCenterUnderline HeadingStyle = "center-underline"
	// HeadingCenterPlain centers the heading with no rule.
	HeadingCenterPlain HeadingStyle = "center-plain"
	// HeadingBox wraps the heading in a background-colored container, no rule.
	HeadingBox HeadingStyle = "box"
	// HeadingDoubleLine draws rules above and below the heading.
	HeadingDoubleLine HeadingStyle = "double-line"
	// HeadingLeftExtended draws a short filled bar before the heading and a
	// rule filling the remaining width after it.
	HeadingLeftExtended HeadingStyle = "left-extended"
	// HeadingWavy draws a wavy rule under a left-aligned heading.
	HeadingWavy HeadingStyle = "wavy"
)
