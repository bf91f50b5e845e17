package render

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// entryFields is the layout-independent field set shared by experience,
// education, and project rows. All four entry layouts display exactly these
// fields; only the arrangement differs.
type entryFields struct {
	Title         string
	TitlePH       bool
	Subtitle      string
	SubtitlePH    bool
	Dates         string
	DatesPH       bool
	Location      string
	Link          string
	Points        []string
	Paragraph     string
	IsPlaceholder bool // whole entry is a placeholder for an empty collection
}

func experienceFields(e types.ExperienceEntry) entryFields {
	title, company := splitTitleCompany(e.Title, e.Company)
	f := entryFields{Location: e.Location, Link: ""}
	f.Title, f.TitlePH = orPlaceholder(title, placeholderJobTitle)
	f.Subtitle, f.SubtitlePH = orPlaceholder(company, placeholderCompany)
	f.Dates, f.DatesPH = orPlaceholder(e.Dates, placeholderDates)
	f.Points = e.Achievements
	if len(f.Points) == 0 {
		f.Paragraph = e.Description
	}
	return f
}

func educationFields(e types.EducationEntry) entryFields {
	f := entryFields{Location: e.Location}
	f.Title, f.TitlePH = orPlaceholder(e.Degree, placeholderDegree)
	f.Subtitle, f.SubtitlePH = orPlaceholder(e.Institution, placeholderInstitution)
	f.Dates, f.DatesPH = orPlaceholder(e.Dates, placeholderDates)
	f.Points = e.Details
	return f
}

func projectFields(p types.ProjectEntry) entryFields {
	f := entryFields{Link: p.Link}
	f.Title, f.TitlePH = orPlaceholder(p.Name, placeholderProject)
	f.Subtitle, f.SubtitlePH = orPlaceholder(p.TechStack, placeholderTechStack)
	f.Dates, f.DatesPH = orPlaceholder(joinDates(p.StartDate, p.EndDate), placeholderDates)
	f.Paragraph = p.Description
	return f
}

// joinDates joins an optional start/end pair into one display range.
func joinDates(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " – " + end
	case start != "":
		return start
	default:
		return end
	}
}

// placeholderEntry is rendered exactly once when a visible collection is
// empty; the section never disappears or renders empty.
func placeholderEntry(title, subtitle string) entryFields {
	return entryFields{
		Title:         title,
		TitlePH:       true,
		Subtitle:      subtitle,
		SubtitlePH:    true,
		Dates:         placeholderDates,
		DatesPH:       true,
		Paragraph:     placeholderDescription,
		IsPlaceholder: true,
	}
}

// renderEntry arranges one entry according to the configured layout type.
func (s *styler) renderEntry(f entryFields) types.Block {
	title := s.fieldBlock(f.Title, types.RoleDesignation, s.subheader(), f.TitlePH)
	subtitle := s.fieldBlock(f.Subtitle, types.RoleCompany, s.subtitle(), f.SubtitlePH)
	dates := s.fieldBlock(f.Dates, types.RoleDate, s.date(), f.DatesPH)

	var head []types.Block
	sameLine := s.cfg.EntryLayout.SubtitlePlacement == types.SubtitleSameLine

	titleLine := func(extra ...types.Block) types.Block {
		children := []types.Block{title}
		if sameLine {
			sep := types.Block{Kind: types.BlockText, Text: " · ", Style: s.subtitle()}
			children = append(children, sep, subtitle)
		}
		children = append(children, extra...)
		return types.Block{Kind: types.BlockRow, Children: children}
	}

	marker := types.Block{Kind: types.BlockMarker, Style: s.marker()}

	switch s.cfg.EntryLayout.LayoutType {
	case types.LayoutTextLeftIconsRight:
		right := types.Block{Kind: types.BlockColumn, Children: []types.Block{marker, dates}}
		head = []types.Block{{
			Kind:     types.BlockRow,
			Children: []types.Block{titleLine(), right},
		}}
		if !sameLine {
			head = append(head, subtitle)
		}

	case types.LayoutIconsLeftTextRight:
		left := types.Block{Kind: types.BlockColumn, Children: []types.Block{marker, dates}}
		text := []types.Block{titleLine()}
		if !sameLine {
			text = append(text, subtitle)
		}
		head = []types.Block{{
			Kind: types.BlockRow,
			Children: []types.Block{
				left,
				{Kind: types.BlockColumn, Children: text},
			},
		}}

	case types.LayoutIconsTextIcons:
		text := []types.Block{titleLine()}
		if !sameLine {
			text = append(text, subtitle)
		}
		trailing := types.Block{Kind: types.BlockColumn, Children: []types.Block{marker, dates}}
		head = []types.Block{{
			Kind: types.BlockRow,
			Children: []types.Block{
				marker,
				{Kind: types.BlockColumn, Children: text},
				trailing,
			},
		}}

	default: // LayoutTwoLines
		head = []types.Block{titleLine(dates)}
		if !sameLine {
			head = append(head, subtitle)
		}
	}

	if f.Location != "" {
		head = append(head, types.Block{
			Kind:  types.BlockText,
			Role:  types.RoleLocation,
			Text:  f.Location,
			Style: s.location(),
		})
	}
	if f.Link != "" {
		icon := types.Block{Kind: types.BlockMarker, Role: types.RoleLinkIcon, Text: "link", Style: s.linkIcon()}
		link := types.Block{Kind: types.BlockLink, Role: types.RoleLinkIcon, Text: f.Link, Href: f.Link, Style: s.linkIcon()}
		head = append(head, types.Block{Kind: types.BlockRow, Children: []types.Block{icon, link}})
	}

	body := s.renderDescription(f)

	entry := types.Block{
		Kind:     types.BlockEntry,
		Children: append(head, body...),
	}
	if f.IsPlaceholder {
		entry.Role = types.RolePlaceholder
	}
	return entry
}

func (s *styler) fieldBlock(text, role string, style types.BlockStyle, isPH bool) types.Block {
	if isPH {
		style = s.placeholderize(style)
	}
	return types.Block{Kind: types.BlockText, Role: role, Text: text, Style: style}
}

// renderDescription honors the configured description format. Points mode
// renders each achievement as a marked line; when only free text exists it is
// segmented on newlines, falling back to sentence boundaries. Paragraph mode
// joins everything into one justified block.
func (s *styler) renderDescription(f entryFields) []types.Block {
	segments := f.Points
	if len(segments) == 0 && f.Paragraph != "" {
		segments = segmentText(f.Paragraph)
	}
	if len(segments) == 0 {
		return nil
	}

	style := s.body()
	if f.IsPlaceholder {
		style = s.placeholderize(style)
	}
	indent := 0
	if s.cfg.EntryLayout.IndentBody {
		indent = 12
	}

	if s.cfg.EntryLayout.DescriptionFormat == types.FormatParagraph {
		style.Align = "justify"
		style.Indent = indent
		return []types.Block{{
			Kind:  types.BlockText,
			Text:  strings.Join(segments, " "),
			Style: style,
		}}
	}

	glyph := s.cfg.EntryLayout.ListMarker.Glyph()
	items := make([]types.Block, 0, len(segments))
	for _, seg := range segments {
		itemStyle := style
		itemStyle.Marker = glyph
		itemStyle.Indent = indent
		items = append(items, types.Block{
			Kind:  types.BlockListItem,
			Text:  seg,
			Style: itemStyle,
		})
	}
	return []types.Block{{Kind: types.BlockList, Children: items}}
}

// segmentText splits free-form description text into point segments:
// newline-delimited when newlines exist, sentence-delimited otherwise.
func segmentText(text string) []string {
	var parts []string
	if strings.Contains(text, "\n") {
		parts = strings.Split(text, "\n")
	} else {
		parts = strings.SplitAfter(text, ". ")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(p), "."))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
