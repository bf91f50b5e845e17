package render

import (
	"github.com/jonathan/resume-studio/internal/skins"
	"github.com/jonathan/resume-studio/internal/types"
)

// Section display titles for built-in sections.
var sectionTitles = map[string]string{
	types.SectionSummary:        "Summary",
	types.SectionSkills:         "Skills",
	types.SectionExperience:     "Experience",
	types.SectionEducation:      "Education",
	types.SectionProjects:       "Projects",
	types.SectionCertifications: "Certifications",
	types.SectionActivities:     "Activities",
	types.SectionReferences:     "References",
}

// Render produces the styled block tree for a document under a resolved
// configuration and a registered template skin. It is pure and stateless:
// structurally equal inputs yield structurally equal trees, and concurrent
// calls are safe since each call allocates only local output.
//
// The only failure mode is an unregistered templateID; every data-shape
// problem inside the document degrades to placeholders instead.
func Render(doc *types.ResumeDocument, cfg types.RenderConfig, templateID string) (*types.RenderedDocument, error) {
	skin, ok := skins.Lookup(templateID)
	if !ok {
		return nil, &UnknownTemplateError{TemplateID: templateID}
	}
	if doc == nil {
		doc = &types.ResumeDocument{}
	}

	s := newStyler(cfg)

	sections := renderSections(s, doc, cfg)

	out := &types.RenderedDocument{
		TemplateID: templateID,
		Frame:      skin.Frame,
		Page:       s.page(),
	}

	if skin.Frame == types.FrameTwoColumn {
		out.Blocks = splitColumns(sections, skin.SidebarSections)
	} else {
		out.Blocks = sections
	}
	return out, nil
}

// renderSections walks the combined section ordering and renders each visible
// section. Built-in sections require presence in both the order and the
// visible set; custom sections require visibility only and slot in wherever
// the combined ordering places them, with any unlisted ones appended in
// position order.
func renderSections(s *styler, doc *types.ResumeDocument, cfg types.RenderConfig) []types.Block {
	order := doc.SectionOrder
	if len(order) == 0 {
		order = cfg.SectionOrder
	}

	visible := make(map[string]bool, len(doc.VisibleSections))
	for _, id := range doc.VisibleSections {
		visible[id] = true
	}

	customByID := make(map[string]types.CustomSection, len(doc.CustomSections))
	for _, cs := range doc.CustomSections {
		customByID[cs.ID] = cs
	}

	var blocks []types.Block
	rendered := make(map[string]bool, len(order))
	for _, id := range order {
		if rendered[id] || !visible[id] {
			continue
		}
		rendered[id] = true

		if cs, ok := customByID[id]; ok {
			blocks = append(blocks, sectionBlock(s, id, cs.Title, s.renderCustomSection(cs)))
			continue
		}
		if b, ok := builtinSection(s, doc, id); ok {
			blocks = append(blocks, b)
		}
	}

	// Custom sections absent from the combined ordering append at the end in
	// position order (CustomSections is already position-sorted).
	for _, cs := range doc.CustomSections {
		if rendered[cs.ID] || !visible[cs.ID] {
			continue
		}
		rendered[cs.ID] = true
		blocks = append(blocks, sectionBlock(s, cs.ID, cs.Title, s.renderCustomSection(cs)))
	}

	return blocks
}

// builtinSection renders one built-in section by id. Activities and
// references have no dedicated collection in the document; they render only
// when the author supplied a same-id custom section, so an unknown or empty
// id is skipped silently rather than erroring.
func builtinSection(s *styler, doc *types.ResumeDocument, id string) (types.Block, bool) {
	switch id {
	case types.SectionBasicDetails:
		return s.renderHeader(doc.PersonalInfo), true

	case types.SectionSummary:
		text, isPH := orPlaceholder(doc.Summary, placeholderSummary)
		style := s.body()
		role := ""
		if isPH {
			style = s.placeholderize(style)
			role = types.RolePlaceholder
		}
		body := []types.Block{{Kind: types.BlockText, Role: role, Text: text, Style: style}}
		return sectionBlock(s, id, sectionTitles[id], body), true

	case types.SectionSkills:
		return sectionBlock(s, id, sectionTitles[id], s.renderSkills(doc.Skills)), true

	case types.SectionExperience:
		body := entriesBody(s, len(doc.Experience), func(i int) entryFields {
			return experienceFields(doc.Experience[i])
		}, placeholderJobTitle, placeholderCompany)
		return sectionBlock(s, id, sectionTitles[id], body), true

	case types.SectionEducation:
		body := entriesBody(s, len(doc.Education), func(i int) entryFields {
			return educationFields(doc.Education[i])
		}, placeholderDegree, placeholderInstitution)
		return sectionBlock(s, id, sectionTitles[id], body), true

	case types.SectionProjects:
		body := entriesBody(s, len(doc.Projects), func(i int) entryFields {
			return projectFields(doc.Projects[i])
		}, placeholderProject, placeholderTechStack)
		return sectionBlock(s, id, sectionTitles[id], body), true

	case types.SectionCertifications:
		return sectionBlock(s, id, sectionTitles[id], s.renderCertifications(doc.Certifications)), true
	}

	return types.Block{}, false
}

// entriesBody renders every entry of a collection, or exactly one placeholder
// entry when the collection is empty.
func entriesBody(s *styler, n int, fields func(int) entryFields, titlePH, subtitlePH string) []types.Block {
	if n == 0 {
		return []types.Block{s.renderEntry(placeholderEntry(titlePH, subtitlePH))}
	}
	out := make([]types.Block, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.renderEntry(fields(i)))
	}
	return out
}

// sectionBlock wraps a heading and body into one section node. The section id
// travels in Role so hosts and tests can locate sections in the tree.
func sectionBlock(s *styler, id, title string, body []types.Block) types.Block {
	children := s.sectionHeading(title)
	children = append(children, body...)
	return types.Block{
		Kind:     types.BlockSection,
		Role:     id,
		Children: children,
	}
}

// splitColumns partitions rendered sections into a sidebar column and a main
// column for two-column frames, preserving relative order within each.
func splitColumns(sections []types.Block, sidebarIDs []string) []types.Block {
	sidebar := make(map[string]bool, len(sidebarIDs))
	for _, id := range sidebarIDs {
		sidebar[id] = true
	}

	var side, main []types.Block
	for _, b := range sections {
		if sidebar[b.Role] {
			side = append(side, b)
		} else {
			main = append(main, b)
		}
	}

	return []types.Block{{
		Kind: types.BlockRow,
		Children: []types.Block{
			{Kind: types.BlockColumn, Role: "sidebar", Children: side},
			{Kind: types.BlockColumn, Role: "main", Children: main},
		},
	}}
}
