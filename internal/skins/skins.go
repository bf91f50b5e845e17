// Package skins holds the declarative template descriptors. A skin is a
// template's fixed structural identity: its frame, default section order,
// and preferred customization defaults. All per-template variation lives in
// this table; the renderer itself is shared.
package skins

import "github.com/jonathan/resume-studio/internal/types"

// Descriptor describes one registered template skin. Defaults is a partial
// customization overlay applied between the global defaults and the user's
// own customization during resolution.
type Descriptor struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Frame           types.FrameKind          `json:"frame"`
	SidebarSections []string                 `json:"sidebar_sections,omitempty"`
	Motif           string                   `json:"motif"`
	Defaults        types.CustomizationInput `json:"-"`
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

// registry is the fixed set of skins, in catalog order.
var registry = []Descriptor{
	{
		ID:    "classic",
		Name:  "Classic",
		Frame: types.FrameSingleColumn,
		Motif: "traditional serif layout with full-width rules",
		Defaults: types.CustomizationInput{
			Theme: &types.ThemeInput{
				Accent: strp("#1a365d"),
			},
			Typography: &types.TypographyInput{
				FontFamily: &types.FontFamiliesInput{
					Name:   strp("Georgia"),
					Header: strp("Georgia"),
					Body:   strp("Georgia"),
				},
			},
			HeadingStyle: strp(string(types.HeadingLeftUnderlineFull)),
		},
	},
	{
		ID:    "modern",
		Name:  "Modern",
		Frame: types.FrameSingleColumn,
		Motif: "sans-serif with an extended heading bar and accent dates",
		Defaults: types.CustomizationInput{
			Theme: &types.ThemeInput{
				Accent: strp("#2b6cb0"),
			},
			HeadingStyle: strp(string(types.HeadingLeftExtended)),
			ApplyAccentTo: &types.AccentTargetsInput{
				Headings: boolp(true),
				Dates:    boolp(true),
			},
		},
	},
	{
		ID:    "elegant",
		Name:  "Elegant",
		Frame: types.FrameSingleColumn,
		Motif: "centered headings, generous spacing, muted palette",
		Defaults: types.CustomizationInput{
			Theme: &types.ThemeInput{
				Accent: strp("#6b46c1"),
			},
			HeadingStyle: strp(string(types.HeadingCenterUnderline)),
			Title: &types.TitleCustomizationInput{
				Position: strp(string(types.TitleBelow)),
			},
			Layout: &types.LayoutInput{
				SectionSpacing: intp(22),
			},
		},
	},
	{
		ID:    "compact",
		Name:  "Compact",
		Frame: types.FrameSingleColumn,
		Motif: "dense single page, dash markers, paragraph descriptions",
		Defaults: types.CustomizationInput{
			Theme: &types.ThemeInput{
				Accent: strp("#2d3748"),
			},
			HeadingStyle: strp(string(types.HeadingDoubleLine)),
			EntryLayout: &types.EntryLayoutInput{
				ListMarker:        strp(string(types.MarkerDash)),
				DescriptionFormat: strp(string(types.FormatParagraph)),
			},
			Layout: &types.LayoutInput{
				SectionSpacing: intp(10),
				LineHeight:     floatp(1.25),
			},
		},
	},
	{
		ID:              "sidebar",
		Name:            "Sidebar",
		Frame:           types.FrameTwoColumn,
		SidebarSections: []string{types.SectionBasicDetails, types.SectionSkills, types.SectionCertifications},
		Motif:           "two columns with contact and skills in a tinted sidebar",
		Defaults: types.CustomizationInput{
			Theme: &types.ThemeInput{
				Accent:     strp("#234e52"),
				Background: strp("#f7fafc"),
			},
			HeadingStyle: strp(string(types.HeadingBox)),
			ApplyAccentTo: &types.AccentTargetsInput{
				Headings:    boolp(true),
				HeaderIcons: boolp(true),
			},
		},
	},
	{
		ID:    "creative",
		Name:  "Creative",
		Frame: types.FrameSingleColumn,
		Motif: "wavy rules, accent name, icon-flanked entries",
		Defaults: types.CustomizationInput{
			Theme: &types.ThemeInput{
				Accent: strp("#c05621"),
			},
			HeadingStyle: strp(string(types.HeadingWavy)),
			EntryLayout: &types.EntryLayoutInput{
				LayoutType: strp(string(types.LayoutIconsLeftTextRight)),
			},
			ApplyAccentTo: &types.AccentTargetsInput{
				Name:            boolp(true),
				DotsBarsBubbles: boolp(true),
			},
		},
	},
	{
		ID:    "minimal",
		Name:  "Minimal",
		Frame: types.FrameSingleColumn,
		Motif: "no rules, centered headings, whitespace-driven",
		Defaults: types.CustomizationInput{
			Theme: &types.ThemeInput{
				Accent: strp("#1a202c"),
			},
			HeadingStyle: strp(string(types.HeadingCenterPlain)),
			Name: &types.NameCustomizationInput{
				Bold: boolp(false),
				Size: strp(string(types.SizeLarge)),
			},
		},
	},
}

func intp(i int) *int           { return &i }
func floatp(f float64) *float64 { return &f }

// byID is built once at init; the registry is never mutated afterwards.
var byID = func() map[string]*Descriptor {
	m := make(map[string]*Descriptor, len(registry))
	for i := range registry {
		m[registry[i].ID] = &registry[i]
	}
	return m
}()

// Lookup returns the descriptor for a template id.
func Lookup(id string) (*Descriptor, bool) {
	d, ok := byID[id]
	return d, ok
}

// All returns the skin catalog in registration order. The returned slice is a
// copy; callers may not mutate the registry through it.
func All() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// IDs returns the registered template ids in catalog order.
func IDs() []string {
	ids := make([]string, len(registry))
	for i, d := range registry {
		ids[i] = d.ID
	}
	return ids
}
