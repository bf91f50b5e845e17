package render

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// renderSkills builds the skills section body. Grouped and flat-with-colons
// input render equivalently: one "Category: a, b" line per category. Flat
// entries without a colon render verbatim. An entirely empty skill set
// renders a single italic placeholder line instead of an empty section.
func (s *styler) renderSkills(set types.SkillSet) []types.Block {
	if set.IsEmpty() {
		return []types.Block{{
			Kind:  types.BlockText,
			Role:  types.RolePlaceholder,
			Text:  placeholderSkills,
			Style: s.placeholderize(s.body()),
		}}
	}

	var lines []types.Block
	if len(set.Groups) > 0 {
		for _, g := range set.Groups {
			if len(g.Items) == 0 {
				continue
			}
			lines = append(lines, s.skillLine(g.Category, strings.Join(g.Items, ", ")))
		}
		return lines
	}

	for _, raw := range set.Flat {
		if category, items, found := strings.Cut(raw, ":"); found {
			lines = append(lines, s.skillLine(strings.TrimSpace(category), strings.TrimSpace(items)))
			continue
		}
		lines = append(lines, types.Block{
			Kind:  types.BlockText,
			Text:  raw,
			Style: s.body(),
		})
	}
	return lines
}

// skillLine renders one "Category: items" line with the category emphasized.
func (s *styler) skillLine(category, items string) types.Block {
	label := s.body()
	label.FontWeight = s.cfg.Typography.FontWeight.Headers
	return types.Block{
		Kind: types.BlockRow,
		Children: []types.Block{
			{Kind: types.BlockText, Text: category + ": ", Style: label},
			{Kind: types.BlockText, Text: items, Style: s.body()},
		},
	}
}
