// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SourceKind identifies where raw resume input originated.
type SourceKind string

const (
	// SourceParsedFile is data extracted from an uploaded resume file.
	SourceParsedFile SourceKind = "parsed-file"
	// SourceBuilderState is data authored through the builder forms.
	SourceBuilderState SourceKind = "builder-state"
	// SourceTemplateSample is the sample data shipped with a template.
	SourceTemplateSample SourceKind = "template-sample"
)

// Built-in section identifiers. Display order follows ResumeDocument.SectionOrder.
const (
	SectionBasicDetails   = "basic-details"
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionActivities     = "activities"
	SectionReferences     = "references"
)

// DefaultSectionOrder is the section sequence used when a document carries no
// explicit ordering.
func DefaultSectionOrder() []string {
	return []string{
		SectionBasicDetails,
		SectionSummary,
		SectionSkills,
		SectionExperience,
		SectionEducation,
		SectionProjects,
		SectionCertifications,
		SectionActivities,
		SectionReferences,
	}
}

// ResumeDocument is the canonical resume structure consumed by rendering.
// All collections are always non-nil after normalization; emptiness is
// signalled by length, never by key absence.
type ResumeDocument struct {
	PersonalInfo    PersonalInfo      `json:"personal_info"`
	Summary         string            `json:"summary"`
	Skills          SkillSet          `json:"skills"`
	Experience      []ExperienceEntry `json:"experience"`
	Education       []EducationEntry  `json:"education"`
	Projects        []ProjectEntry    `json:"projects"`
	Certifications  []Certification   `json:"certifications"`
	CustomSections  []CustomSection   `json:"custom_sections"`
	SectionOrder    []string          `json:"section_order"`
	VisibleSections []string          `json:"visible_sections"`
}

// PersonalInfo holds contact and identity fields. Every field is optional;
// the renderer substitutes placeholders for blanks.
type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// SkillSet carries skills in one of two shapes: a flat ordered list (entries
// may use "Category: items" form) or categorized groups. At most one of the
// two is populated; both empty means no skills.
type SkillSet struct {
	Flat   []string     `json:"flat,omitempty"`
	Groups []SkillGroup `json:"groups,omitempty"`
}

// SkillGroup is one named skill category. Categorized input arrives as a JSON
// object; the normalizer converts it to an ordered slice so repeated renders
// see a stable sequence.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// IsEmpty reports whether the set holds no skills in either shape.
func (s SkillSet) IsEmpty() bool {
	if len(s.Flat) > 0 {
		return false
	}
	for _, g := range s.Groups {
		if len(g.Items) > 0 {
			return false
		}
	}
	return true
}

// ExperienceEntry is a single job. Legacy records may pack "Role — Company"
// into Title with a blank Company; the document keeps that verbatim and the
// renderer applies a display-time split.
type ExperienceEntry struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Dates        string   `json:"dates"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements"`
}

// EducationEntry is a single degree or program.
type EducationEntry struct {
	ID          string   `json:"id"`
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Dates       string   `json:"dates"`
	Location    string   `json:"location,omitempty"`
	Details     []string `json:"details"`
}

// ProjectEntry is a single project.
type ProjectEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TechStack   string `json:"tech_stack"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Link        string `json:"link,omitempty"`
}

// Certification is a single certificate or credential.
type Certification struct {
	ID              string `json:"id"`
	CertificateName string `json:"certificate_name"`
	InstituteName   string `json:"institute_name"`
	IssueDate       string `json:"issue_date,omitempty"`
	Link            string `json:"link,omitempty"`
}
