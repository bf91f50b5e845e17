package types

// CustomSectionType selects which sub-renderer applies to a custom section.
type CustomSectionType string

const (
	// CustomText renders the section's raw text block only.
	CustomText CustomSectionType = "text"
	// CustomList renders each item as a flat list block.
	CustomList CustomSectionType = "list"
	// CustomTimeline renders items with date emphasis in chronological layout.
	CustomTimeline CustomSectionType = "timeline"
	// CustomGrid renders named columns side by side.
	CustomGrid CustomSectionType = "grid"
	// CustomMixed renders text followed by items.
	CustomMixed CustomSectionType = "mixed"
)

// CustomSection is a user-defined section. Position values are dense and
// monotonic across the document's custom sections; reordering swaps the
// positions of two adjacent sections and nothing else.
type CustomSection struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Type     CustomSectionType `json:"type"`
	Position int               `json:"position"`
	Content  CustomContent     `json:"content"`
	Styling  CustomStyling     `json:"styling"`
}

// CustomContent is the payload of a custom section. Which parts are consulted
// depends on the section type: text uses Text, list/timeline use Items, grid
// uses Columns, mixed uses Text then Items.
type CustomContent struct {
	Text    string         `json:"text,omitempty"`
	Items   []CustomItem   `json:"items,omitempty"`
	Columns []CustomColumn `json:"columns,omitempty"`
}

// CustomItem is one entry within a list, timeline, or mixed custom section.
type CustomItem struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Description string   `json:"description,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Location    string   `json:"location,omitempty"`
	Link        string   `json:"link,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// CustomColumn is one named column of a grid custom section.
type CustomColumn struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// CustomStyling holds per-section display toggles. Custom sections honor
// these instead of the global entry layout, since their structure is
// user-defined.
type CustomStyling struct {
	ShowBullets  bool   `json:"show_bullets"`
	ShowDates    bool   `json:"show_dates"`
	ShowLocation bool   `json:"show_location"`
	ShowLinks    bool   `json:"show_links"`
	ShowTags     bool   `json:"show_tags"`
	Orientation  string `json:"orientation,omitempty"` // "vertical" (default) or "horizontal"
}

// DefaultCustomStyling returns the styling applied when a section carries none.
func DefaultCustomStyling() CustomStyling {
	return CustomStyling{
		ShowBullets:  true,
		ShowDates:    true,
		ShowLocation: true,
		ShowLinks:    true,
		ShowTags:     true,
		Orientation:  "vertical",
	}
}
