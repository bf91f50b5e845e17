package render

import "github.com/jonathan/resume-studio/internal/types"

// renderCertifications builds one entry block per certification. A missing
// issue date renders a placeholder since the date has a fixed visual slot; a
// missing link is simply omitted.
func (s *styler) renderCertifications(certs []types.Certification) []types.Block {
	if len(certs) == 0 {
		return []types.Block{s.renderCertification(types.Certification{})}
	}
	out := make([]types.Block, 0, len(certs))
	for _, c := range certs {
		out = append(out, s.renderCertification(c))
	}
	return out
}

func (s *styler) renderCertification(c types.Certification) types.Block {
	name, namePH := orPlaceholder(c.CertificateName, placeholderCertificate)
	institute, instPH := orPlaceholder(c.InstituteName, placeholderInstitute)
	date, datePH := orPlaceholder(c.IssueDate, placeholderDates)

	children := []types.Block{
		{
			Kind: types.BlockRow,
			Children: []types.Block{
				s.fieldBlock(name, types.RoleDesignation, s.subheader(), namePH),
				s.fieldBlock(date, types.RoleDate, s.date(), datePH),
			},
		},
		s.fieldBlock(institute, types.RoleCompany, s.subtitle(), instPH),
	}

	if c.Link != "" {
		icon := types.Block{Kind: types.BlockMarker, Role: types.RoleLinkIcon, Text: "link", Style: s.linkIcon()}
		link := types.Block{Kind: types.BlockLink, Role: types.RoleLinkIcon, Text: c.Link, Href: c.Link, Style: s.linkIcon()}
		children = append(children, types.Block{Kind: types.BlockRow, Children: []types.Block{icon, link}})
	}

	entry := types.Block{Kind: types.BlockEntry, Children: children}
	if namePH && instPH {
		entry.Role = types.RolePlaceholder
	}
	return entry
}
