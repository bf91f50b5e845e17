package types

// RenderedDocument is the format-agnostic output of a render call: a tree of
// styled blocks the host converts to HTML, PDF, or thumbnails. Two renders of
// structurally equal inputs yield structurally equal trees.
type RenderedDocument struct {
	TemplateID string     `json:"template_id"`
	Frame      FrameKind  `json:"frame"`
	Page       BlockStyle `json:"page"`
	Blocks     []Block    `json:"blocks"`
}

// FrameKind is a skin's structural frame.
type FrameKind string

const (
	// FrameSingleColumn stacks all sections in one column.
	FrameSingleColumn FrameKind = "single-column"
	// FrameTwoColumn splits sections into a sidebar and a main column.
	FrameTwoColumn FrameKind = "two-column"
)

// BlockKind identifies the structural role of a block.
type BlockKind string

const (
	// BlockHeader is the document header containing name, title, contact.
	BlockHeader BlockKind = "header"
	// BlockSection is one rendered section with heading and body.
	BlockSection BlockKind = "section"
	// BlockHeading is a section heading.
	BlockHeading BlockKind = "heading"
	// BlockRule is a horizontal rule line.
	BlockRule BlockKind = "rule"
	// BlockBar is a short filled accent bar.
	BlockBar BlockKind = "bar"
	// BlockEntry is one entry row group (job, degree, project, item).
	BlockEntry BlockKind = "entry"
	// BlockRow lays its children out horizontally.
	BlockRow BlockKind = "row"
	// BlockText is a plain text leaf.
	BlockText BlockKind = "text"
	// BlockList groups marked lines.
	BlockList BlockKind = "list"
	// BlockListItem is one marked line within a list.
	BlockListItem BlockKind = "listitem"
	// BlockLink is a hyperlink leaf; Text holds the label, Href the target.
	BlockLink BlockKind = "link"
	// BlockColumn groups blocks vertically inside a row or two-column frame.
	BlockColumn BlockKind = "column"
	// BlockTag is a small labeled chip.
	BlockTag BlockKind = "tag"
	// BlockMarker is a decorative dot/bar/bubble glyph.
	BlockMarker BlockKind = "marker"
)

// Semantic roles attached to blocks so cross-cutting rules (accent targeting,
// placeholder styling) stay inspectable in the output tree.
const (
	RoleName        = "name"
	RoleTitle       = "title"
	RoleContact     = "contact"
	RoleDate        = "date"
	RoleDesignation = "designation"
	RoleCompany     = "company"
	RoleLocation    = "location"
	RolePlaceholder = "placeholder"
	RoleLinkIcon    = "link-icon"
	RoleHeaderIcon  = "header-icon"
)

// Block is one node of the rendered tree.
type Block struct {
	Kind     BlockKind  `json:"kind"`
	Role     string     `json:"role,omitempty"`
	Text     string     `json:"text,omitempty"`
	Href     string     `json:"href,omitempty"`
	Style    BlockStyle `json:"style"`
	Children []Block    `json:"children,omitempty"`
}

// BlockStyle is a fully concrete style value: the RenderConfig has already
// been resolved against the theme, so no variable indirection remains.
type BlockStyle struct {
	Color       string  `json:"color,omitempty"`
	Background  string  `json:"background,omitempty"`
	BorderColor string  `json:"border_color,omitempty"`
	FontFamily  string  `json:"font_family,omitempty"`
	FontSize    float64 `json:"font_size,omitempty"`
	FontWeight  int     `json:"font_weight,omitempty"`
	Italic      bool    `json:"italic,omitempty"`
	Underline   bool    `json:"underline,omitempty"`
	Align       string  `json:"align,omitempty"`
	Indent      int     `json:"indent,omitempty"`
	Marker      string  `json:"marker,omitempty"`
	LineHeight  float64 `json:"line_height,omitempty"`
	Wavy        bool    `json:"wavy,omitempty"`
	MarginX     int     `json:"margin_x,omitempty"`
	MarginY     int     `json:"margin_y,omitempty"`
	Spacing     int     `json:"spacing,omitempty"`
}
