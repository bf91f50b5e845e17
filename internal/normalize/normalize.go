// Package normalize turns loosely-typed resume input into the canonical
// ResumeDocument consumed by rendering. Input may come from an AI-parsed
// file upload, the builder's own state, or a template's sample data; all
// three converge on the same shape.
package normalize

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/types"
)

// Normalize produces a canonical ResumeDocument from raw input. It never
// fails: wrong-typed fields coerce to empty values, unknown fields are
// dropped, and every top-level collection in the result is non-nil, so
// downstream code branches on emptiness rather than key presence.
//
// Legacy experience records that pack "Role — Company" into the title with a
// blank company pass through verbatim; splitting them is a display concern
// owned by the renderer.
func Normalize(raw any, source types.SourceKind) *types.ResumeDocument {
	m := toMap(raw)

	doc := &types.ResumeDocument{
		PersonalInfo:    normalizePersonalInfo(asMap(firstOf(m, "personal_info", "personalInfo", "basicDetails", "basic_details"))),
		Summary:         strField(m, "summary", "objective"),
		Skills:          normalizeSkills(firstOf(m, "skills")),
		Experience:      normalizeExperience(asSlice(firstOf(m, "experience", "workExperience", "work_experience"))),
		Education:       normalizeEducation(asSlice(firstOf(m, "education"))),
		Projects:        normalizeProjects(asSlice(firstOf(m, "projects"))),
		Certifications:  normalizeCertifications(asSlice(firstOf(m, "certifications"))),
		CustomSections:  normalizeCustomSections(asSlice(firstOf(m, "custom_sections", "customSections"))),
		SectionOrder:    sliceField(m, "section_order", "sectionOrder"),
		VisibleSections: sliceField(m, "visible_sections", "visibleSections"),
	}

	// Builder state already carries entry ids; parsed and sample data may not.
	ensureIDs(doc)

	if len(doc.SectionOrder) == 0 {
		doc.SectionOrder = types.DefaultSectionOrder()
	}
	if len(doc.VisibleSections) == 0 {
		// Builder state that explicitly says "nothing visible" is honored;
		// for other sources an absent set means everything is visible.
		_, explicit := field(m, "visible_sections", "visibleSections")
		if !(source == types.SourceBuilderState && explicit) {
			doc.VisibleSections = defaultVisibility(doc)
		}
	}

	return doc
}

// toMap converts supported raw shapes into a generic object. Typed documents
// round-trip through JSON so one code path handles every source kind.
func toMap(raw any) map[string]any {
	switch v := raw.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		return v
	case []byte:
		var m map[string]any
		if err := json.Unmarshal(v, &m); err != nil {
			return map[string]any{}
		}
		return m
	case string:
		var m map[string]any
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			return map[string]any{}
		}
		return m
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return map[string]any{}
		}
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			return map[string]any{}
		}
		return m
	}
}

func firstOf(m map[string]any, keys ...string) any {
	v, _ := field(m, keys...)
	return v
}

func normalizePersonalInfo(m map[string]any) types.PersonalInfo {
	if m == nil {
		return types.PersonalInfo{}
	}
	return types.PersonalInfo{
		Name:     strField(m, "name", "full_name", "fullName"),
		Title:    strField(m, "title", "professional_title", "professionalTitle", "headline"),
		Location: strField(m, "location", "address"),
		Email:    strField(m, "email"),
		Phone:    strField(m, "phone", "phone_number", "phoneNumber"),
		Website:  strField(m, "website", "portfolio"),
		GitHub:   strField(m, "github"),
		LinkedIn: strField(m, "linkedin"),
	}
}

// normalizeSkills accepts three shapes: a flat list of strings, an object
// mapping category names to item lists, or an already-canonical SkillSet
// object. Map input is ordered by category name so repeated normalization of
// the same payload is stable.
func normalizeSkills(v any) types.SkillSet {
	switch s := v.(type) {
	case nil:
		return types.SkillSet{Flat: []string{}}
	case []any, []string:
		return types.SkillSet{Flat: asStringSlice(s)}
	case map[string]any:
		// Canonical shape round-tripping through JSON.
		if _, hasFlat := field(s, "flat"); hasFlat {
			return types.SkillSet{Flat: sliceField(s, "flat")}
		}
		if g, hasGroups := field(s, "groups"); hasGroups {
			return types.SkillSet{Groups: normalizeSkillGroups(asSlice(g))}
		}
		// Category map: technical may nest one level deeper.
		if tech := asMap(firstOf(s, "technical")); tech != nil {
			return types.SkillSet{Groups: groupsFromMap(tech)}
		}
		if flat, ok := firstOf(s, "technical").([]any); ok {
			return types.SkillSet{Flat: asStringSlice(flat)}
		}
		return types.SkillSet{Groups: groupsFromMap(s)}
	}
	return types.SkillSet{Flat: []string{}}
}

func groupsFromMap(m map[string]any) []types.SkillGroup {
	categories := make([]string, 0, len(m))
	for k := range m {
		categories = append(categories, k)
	}
	sort.Strings(categories)

	groups := make([]types.SkillGroup, 0, len(categories))
	for _, cat := range categories {
		items := asStringSlice(m[cat])
		groups = append(groups, types.SkillGroup{Category: cat, Items: items})
	}
	return groups
}

func normalizeSkillGroups(items []any) []types.SkillGroup {
	groups := make([]types.SkillGroup, 0, len(items))
	for _, item := range items {
		m := asMap(item)
		if m == nil {
			continue
		}
		groups = append(groups, types.SkillGroup{
			Category: strField(m, "category", "name"),
			Items:    sliceField(m, "items", "skills"),
		})
	}
	return groups
}

func normalizeExperience(items []any) []types.ExperienceEntry {
	out := make([]types.ExperienceEntry, 0, len(items))
	for _, item := range items {
		m := asMap(item)
		if m == nil {
			continue
		}
		out = append(out, types.ExperienceEntry{
			ID:           strField(m, "id"),
			Title:        strField(m, "title", "role", "designation"),
			Company:      strField(m, "company", "employer", "organization"),
			Dates:        strField(m, "dates", "duration", "period"),
			Location:     strField(m, "location"),
			Description:  strField(m, "description"),
			Achievements: sliceField(m, "achievements", "bullets", "highlights"),
		})
	}
	return out
}

func normalizeEducation(items []any) []types.EducationEntry {
	out := make([]types.EducationEntry, 0, len(items))
	for _, item := range items {
		m := asMap(item)
		if m == nil {
			continue
		}
		out = append(out, types.EducationEntry{
			ID:          strField(m, "id"),
			Degree:      strField(m, "degree", "qualification"),
			Institution: strField(m, "institution", "school", "university"),
			Dates:       strField(m, "dates", "duration", "period"),
			Location:    strField(m, "location"),
			Details:     sliceField(m, "details", "highlights"),
		})
	}
	return out
}

func normalizeProjects(items []any) []types.ProjectEntry {
	out := make([]types.ProjectEntry, 0, len(items))
	for _, item := range items {
		m := asMap(item)
		if m == nil {
			continue
		}
		out = append(out, types.ProjectEntry{
			ID:          strField(m, "id"),
			Name:        strField(m, "name", "title"),
			Description: strField(m, "description"),
			TechStack:   strField(m, "tech_stack", "techStack", "technologies"),
			StartDate:   strField(m, "start_date", "startDate"),
			EndDate:     strField(m, "end_date", "endDate"),
			Link:        strField(m, "link", "url"),
		})
	}
	return out
}

func normalizeCertifications(items []any) []types.Certification {
	out := make([]types.Certification, 0, len(items))
	for _, item := range items {
		m := asMap(item)
		if m == nil {
			// Plain-string certificate names still render.
			if name := asString(item); name != "" {
				out = append(out, types.Certification{CertificateName: name})
			}
			continue
		}
		out = append(out, types.Certification{
			ID:              strField(m, "id"),
			CertificateName: strField(m, "certificate_name", "certificateName", "name"),
			InstituteName:   strField(m, "institute_name", "instituteName", "issuer"),
			IssueDate:       strField(m, "issue_date", "issueDate", "date"),
			Link:            strField(m, "link", "url"),
		})
	}
	return out
}

func normalizeCustomSections(items []any) []types.CustomSection {
	out := make([]types.CustomSection, 0, len(items))
	for i, item := range items {
		m := asMap(item)
		if m == nil {
			continue
		}
		sec := types.CustomSection{
			ID:       strField(m, "id"),
			Title:    strField(m, "title", "name"),
			Type:     parseCustomType(strField(m, "type")),
			Position: i,
			Content:  normalizeCustomContent(asMap(firstOf(m, "content"))),
			Styling:  normalizeCustomStyling(asMap(firstOf(m, "styling"))),
		}
		if v, ok := field(m, "position"); ok {
			sec.Position = asInt(v)
		}
		out = append(out, sec)
	}

	// Re-densify positions so the reorder invariant holds from the start.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	for i := range out {
		out[i].Position = i
	}
	return out
}

func parseCustomType(v string) types.CustomSectionType {
	switch t := types.CustomSectionType(strings.ToLower(v)); t {
	case types.CustomText, types.CustomList, types.CustomTimeline, types.CustomGrid, types.CustomMixed:
		return t
	}
	return types.CustomText
}

func normalizeCustomContent(m map[string]any) types.CustomContent {
	if m == nil {
		return types.CustomContent{}
	}
	content := types.CustomContent{
		Text: strField(m, "text"),
	}
	for _, item := range asSlice(firstOf(m, "items")) {
		im := asMap(item)
		if im == nil {
			if t := asString(item); t != "" {
				content.Items = append(content.Items, types.CustomItem{Title: t})
			}
			continue
		}
		content.Items = append(content.Items, types.CustomItem{
			Title:       strField(im, "title", "name"),
			Subtitle:    strField(im, "subtitle"),
			Description: strField(im, "description"),
			StartDate:   strField(im, "start_date", "startDate"),
			EndDate:     strField(im, "end_date", "endDate"),
			Location:    strField(im, "location"),
			Link:        strField(im, "link", "url"),
			Bullets:     sliceField(im, "bullets"),
			Tags:        sliceField(im, "tags"),
		})
	}
	for _, col := range asSlice(firstOf(m, "columns")) {
		cm := asMap(col)
		if cm == nil {
			continue
		}
		content.Columns = append(content.Columns, types.CustomColumn{
			Name:  strField(cm, "name", "title"),
			Items: sliceField(cm, "items"),
		})
	}
	return content
}

func normalizeCustomStyling(m map[string]any) types.CustomStyling {
	styling := types.DefaultCustomStyling()
	if m == nil {
		return styling
	}
	styling.ShowBullets = asBool(firstOf(m, "show_bullets", "showBullets"), styling.ShowBullets)
	styling.ShowDates = asBool(firstOf(m, "show_dates", "showDates"), styling.ShowDates)
	styling.ShowLocation = asBool(firstOf(m, "show_location", "showLocation"), styling.ShowLocation)
	styling.ShowLinks = asBool(firstOf(m, "show_links", "showLinks"), styling.ShowLinks)
	styling.ShowTags = asBool(firstOf(m, "show_tags", "showTags"), styling.ShowTags)
	if o := strField(m, "orientation"); o == "horizontal" || o == "vertical" {
		styling.Orientation = o
	}
	return styling
}

// defaultVisibility marks every built-in section plus all custom sections
// visible when the input carries no explicit visibility set.
func defaultVisibility(doc *types.ResumeDocument) []string {
	visible := types.DefaultSectionOrder()
	for _, cs := range doc.CustomSections {
		visible = append(visible, cs.ID)
	}
	return visible
}

// ensureIDs assigns ids to entries that arrived without one, so builder
// actions can address them.
func ensureIDs(doc *types.ResumeDocument) {
	for i := range doc.Experience {
		if doc.Experience[i].ID == "" {
			doc.Experience[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Education {
		if doc.Education[i].ID == "" {
			doc.Education[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Projects {
		if doc.Projects[i].ID == "" {
			doc.Projects[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Certifications {
		if doc.Certifications[i].ID == "" {
			doc.Certifications[i].ID = uuid.NewString()
		}
	}
	for i := range doc.CustomSections {
		if doc.CustomSections[i].ID == "" {
			doc.CustomSections[i].ID = uuid.NewString()
		}
	}
}
