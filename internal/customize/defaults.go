// Package customize resolves partial user customization into a complete
// RenderConfig by overlaying it on template-specific and global defaults.
package customize

import "github.com/jonathan/resume-studio/internal/types"

// GlobalDefaults returns the application-wide base RenderConfig. Template
// defaults and user customization are layered on top of this, so every field
// here must hold a usable concrete value.
func GlobalDefaults() types.RenderConfig {
	return types.RenderConfig{
		Theme: types.Theme{
			Primary:    "#2d3748",
			Secondary:  "#4a5568",
			Accent:     "#3182ce",
			Background: "#ffffff",
			Text:       "#1a202c",
			TextLight:  "#718096",
			Border:     "#e2e8f0",
		},
		Typography: types.Typography{
			FontFamily: types.FontFamilies{
				Name:   "Helvetica",
				Header: "Helvetica",
				Body:   "Helvetica",
			},
			FontSize: types.FontSizes{
				Name:      24,
				Title:     14,
				Headers:   13,
				Body:      10.5,
				Subheader: 11.5,
			},
			FontWeight: types.FontWeights{
				Name:    700,
				Headers: 600,
				Body:    400,
			},
		},
		Layout: types.Layout{
			MarginX:        36,
			MarginY:        32,
			SectionSpacing: 16,
			LineHeight:     1.4,
		},
		ColorMode:  types.ColorBasic,
		AccentType: "solid",
		ApplyAccentTo: types.AccentTargets{
			Name:            false,
			Headings:        true,
			HeaderIcons:     false,
			DotsBarsBubbles: false,
			Dates:           false,
			LinkIcons:       true,
		},
		EntryLayout: types.EntryLayout{
			LayoutType:        types.LayoutTwoLines,
			SubtitlePlacement: types.SubtitleSameLine,
			SubtitleStyle:     types.SubtitleNormal,
			IndentBody:        false,
			ListMarker:        types.MarkerBullet,
			DescriptionFormat: types.FormatPoints,
		},
		Name: types.NameCustomization{
			Size: types.SizeMedium,
			Bold: true,
			Font: types.FontSlotName,
		},
		Title: types.TitleCustomization{
			Size:      types.SizeMedium,
			Position:  types.TitleBesides,
			Separator: types.SeparatorLine,
		},
		HeadingStyle: types.HeadingLeftUnderlineFull,
		SectionOrder: types.DefaultSectionOrder(),
	}
}
