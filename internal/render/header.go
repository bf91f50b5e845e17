package render

import "github.com/jonathan/resume-studio/internal/types"

// renderHeader builds the document header: name, professional title, and the
// contact line. Missing name, title, email, phone, and location substitute
// placeholders; social links without a value are omitted since they have no
// mandatory visual slot.
func (s *styler) renderHeader(info types.PersonalInfo) types.Block {
	name, namePH := orPlaceholder(info.Name, placeholderName)
	title, titlePH := orPlaceholder(info.Title, placeholderTitle)

	nameStyle := s.name()
	if namePH {
		nameStyle = s.placeholderize(nameStyle)
	}
	titleStyle := s.title()
	if titlePH {
		titleStyle = s.placeholderize(titleStyle)
	}

	nameBlock := types.Block{Kind: types.BlockText, Role: types.RoleName, Text: name, Style: nameStyle}
	if namePH {
		nameBlock.Role = types.RolePlaceholder
	}
	titleBlock := types.Block{Kind: types.BlockText, Role: types.RoleTitle, Text: title, Style: titleStyle}
	if titlePH {
		titleBlock.Role = types.RolePlaceholder
	}

	var identity []types.Block
	if s.cfg.Title.Position == types.TitleBelow {
		identity = []types.Block{nameBlock, titleBlock}
	} else {
		separator := types.Block{
			Kind:  types.BlockText,
			Text:  s.cfg.Title.Separator.Glyph(),
			Style: s.title(),
		}
		identity = []types.Block{{
			Kind:     types.BlockRow,
			Children: []types.Block{nameBlock, separator, titleBlock},
		}}
	}

	children := append(identity, s.contactLine(info))

	return types.Block{
		Kind:     types.BlockHeader,
		Role:     types.SectionBasicDetails,
		Children: children,
	}
}

// contactLine renders the contact items in a fixed order. Each item pairs an
// icon marker (colored by the headerIcons accent toggle) with its text.
func (s *styler) contactLine(info types.PersonalInfo) types.Block {
	type contactField struct {
		icon        string
		value       string
		placeholder string // empty means omit when the value is blank
		href        string
	}

	fields := []contactField{
		{icon: "email", value: info.Email, placeholder: placeholderEmail},
		{icon: "phone", value: info.Phone, placeholder: placeholderPhone},
		{icon: "location", value: info.Location, placeholder: placeholderLocation},
		{icon: "website", value: info.Website, href: info.Website},
		{icon: "github", value: info.GitHub, href: info.GitHub},
		{icon: "linkedin", value: info.LinkedIn, href: info.LinkedIn},
	}

	var items []types.Block
	for _, f := range fields {
		value, isPH := f.value, false
		if value == "" {
			if f.placeholder == "" {
				continue
			}
			value, isPH = f.placeholder, true
		}

		icon := types.Block{
			Kind:  types.BlockMarker,
			Role:  types.RoleHeaderIcon,
			Text:  f.icon,
			Style: s.headerIcon(),
		}

		textStyle := s.body()
		role := types.RoleContact
		if isPH {
			textStyle = s.placeholderize(textStyle)
			role = types.RolePlaceholder
		}

		var text types.Block
		if f.href != "" && !isPH {
			text = types.Block{Kind: types.BlockLink, Role: role, Text: value, Href: f.href, Style: textStyle}
		} else {
			text = types.Block{Kind: types.BlockText, Role: role, Text: value, Style: textStyle}
		}

		items = append(items, types.Block{
			Kind:     types.BlockRow,
			Children: []types.Block{icon, text},
		})
	}

	return types.Block{
		Kind:     types.BlockRow,
		Role:     types.RoleContact,
		Children: items,
	}
}
