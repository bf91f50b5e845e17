package render

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// renderCustomSection dispatches on the section's type tag. Custom sections
// honor their own styling flags rather than the global entry layout, since
// their structure is user-defined.
func (s *styler) renderCustomSection(sec types.CustomSection) []types.Block {
	switch sec.Type {
	case types.CustomList:
		return s.customItems(sec, false)
	case types.CustomTimeline:
		return s.customItems(sec, true)
	case types.CustomGrid:
		return s.customGrid(sec)
	case types.CustomMixed:
		blocks := s.customText(sec)
		return append(blocks, s.customItems(sec, false)...)
	default: // CustomText ignores items and columns entirely
		return s.customText(sec)
	}
}

func (s *styler) customText(sec types.CustomSection) []types.Block {
	if strings.TrimSpace(sec.Content.Text) == "" {
		if sec.Type == types.CustomMixed {
			return nil
		}
		return []types.Block{{
			Kind:  types.BlockText,
			Role:  types.RolePlaceholder,
			Text:  placeholderDescription,
			Style: s.placeholderize(s.body()),
		}}
	}
	return []types.Block{{
		Kind:  types.BlockText,
		Text:  sec.Content.Text,
		Style: s.body(),
	}}
}

func (s *styler) customItems(sec types.CustomSection, timeline bool) []types.Block {
	items := sec.Content.Items
	if len(items) == 0 {
		return []types.Block{{
			Kind:  types.BlockText,
			Role:  types.RolePlaceholder,
			Text:  placeholderDescription,
			Style: s.placeholderize(s.body()),
		}}
	}

	horizontal := sec.Styling.Orientation == "horizontal"
	blocks := make([]types.Block, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, s.customItem(item, sec.Styling, timeline))
	}
	if horizontal {
		return []types.Block{{Kind: types.BlockRow, Children: blocks}}
	}
	return blocks
}

func (s *styler) customItem(item types.CustomItem, styling types.CustomStyling, timeline bool) types.Block {
	var children []types.Block

	titleRow := []types.Block{{
		Kind:  types.BlockText,
		Role:  types.RoleDesignation,
		Text:  item.Title,
		Style: s.subheader(),
	}}
	if styling.ShowDates {
		if dates := joinDates(item.StartDate, item.EndDate); dates != "" {
			dateBlock := types.Block{Kind: types.BlockText, Role: types.RoleDate, Text: dates, Style: s.date()}
			if timeline {
				// Timeline items lead with the date range.
				titleRow = append([]types.Block{dateBlock}, titleRow...)
			} else {
				titleRow = append(titleRow, dateBlock)
			}
		}
	}
	children = append(children, types.Block{Kind: types.BlockRow, Children: titleRow})

	if item.Subtitle != "" {
		children = append(children, types.Block{
			Kind:  types.BlockText,
			Role:  types.RoleCompany,
			Text:  item.Subtitle,
			Style: s.subtitle(),
		})
	}
	if styling.ShowLocation && item.Location != "" {
		children = append(children, types.Block{
			Kind:  types.BlockText,
			Role:  types.RoleLocation,
			Text:  item.Location,
			Style: s.location(),
		})
	}
	if item.Description != "" {
		children = append(children, types.Block{
			Kind:  types.BlockText,
			Text:  item.Description,
			Style: s.body(),
		})
	}
	if styling.ShowBullets && len(item.Bullets) > 0 {
		glyph := s.cfg.EntryLayout.ListMarker.Glyph()
		bullets := make([]types.Block, 0, len(item.Bullets))
		for _, b := range item.Bullets {
			st := s.body()
			st.Marker = glyph
			bullets = append(bullets, types.Block{Kind: types.BlockListItem, Text: b, Style: st})
		}
		children = append(children, types.Block{Kind: types.BlockList, Children: bullets})
	}
	if styling.ShowLinks && item.Link != "" {
		icon := types.Block{Kind: types.BlockMarker, Role: types.RoleLinkIcon, Text: "link", Style: s.linkIcon()}
		link := types.Block{Kind: types.BlockLink, Role: types.RoleLinkIcon, Text: item.Link, Href: item.Link, Style: s.linkIcon()}
		children = append(children, types.Block{Kind: types.BlockRow, Children: []types.Block{icon, link}})
	}
	if styling.ShowTags && len(item.Tags) > 0 {
		tags := make([]types.Block, 0, len(item.Tags))
		for _, tag := range item.Tags {
			st := s.body()
			st.Background = s.cfg.Theme.Border
			tags = append(tags, types.Block{Kind: types.BlockTag, Text: tag, Style: st})
		}
		children = append(children, types.Block{Kind: types.BlockRow, Children: tags})
	}

	return types.Block{Kind: types.BlockEntry, Children: children}
}

func (s *styler) customGrid(sec types.CustomSection) []types.Block {
	if len(sec.Content.Columns) == 0 {
		return []types.Block{{
			Kind:  types.BlockText,
			Role:  types.RolePlaceholder,
			Text:  placeholderDescription,
			Style: s.placeholderize(s.body()),
		}}
	}

	columns := make([]types.Block, 0, len(sec.Content.Columns))
	for _, col := range sec.Content.Columns {
		label := s.body()
		label.FontWeight = s.cfg.Typography.FontWeight.Headers
		children := []types.Block{{Kind: types.BlockText, Text: col.Name, Style: label}}
		for _, item := range col.Items {
			children = append(children, types.Block{Kind: types.BlockText, Text: item, Style: s.body()})
		}
		columns = append(columns, types.Block{Kind: types.BlockColumn, Children: children})
	}
	return []types.Block{{Kind: types.BlockRow, Children: columns}}
}
