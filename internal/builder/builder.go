// Package builder applies explicit editing actions to a ResumeDocument.
// There is no shared editing state: every action takes a document and returns
// a new document reference, leaving the input untouched, so the renderer can
// keep reading an old reference while an edit is in flight.
package builder

import (
	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/types"
)

// clone deep-copies a document through its value semantics. Slices are
// re-allocated; nested structs are value types already.
func clone(doc *types.ResumeDocument) *types.ResumeDocument {
	out := *doc
	out.Experience = append([]types.ExperienceEntry(nil), doc.Experience...)
	out.Education = append([]types.EducationEntry(nil), doc.Education...)
	out.Projects = append([]types.ProjectEntry(nil), doc.Projects...)
	out.Certifications = append([]types.Certification(nil), doc.Certifications...)
	out.CustomSections = append([]types.CustomSection(nil), doc.CustomSections...)
	out.SectionOrder = append([]string(nil), doc.SectionOrder...)
	out.VisibleSections = append([]string(nil), doc.VisibleSections...)
	return &out
}

// AddExperience appends an entry, assigning an id when absent.
func AddExperience(doc *types.ResumeDocument, entry types.ExperienceEntry) *types.ResumeDocument {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	out := clone(doc)
	out.Experience = append(out.Experience, entry)
	return out
}

// UpdateExperience replaces the entry with the same id; unknown ids are a
// no-op that still returns a fresh reference.
func UpdateExperience(doc *types.ResumeDocument, entry types.ExperienceEntry) *types.ResumeDocument {
	out := clone(doc)
	for i := range out.Experience {
		if out.Experience[i].ID == entry.ID {
			out.Experience[i] = entry
			break
		}
	}
	return out
}

// RemoveExperience drops the entry with the given id.
func RemoveExperience(doc *types.ResumeDocument, id string) *types.ResumeDocument {
	out := clone(doc)
	out.Experience = removeExperienceByID(out.Experience, id)
	return out
}

func removeExperienceByID(entries []types.ExperienceEntry, id string) []types.ExperienceEntry {
	for i := range entries {
		if entries[i].ID == id {
			return append(entries[:i], entries[i+1:]...)
		}
	}
	return entries
}

// AddEducation appends an entry, assigning an id when absent.
func AddEducation(doc *types.ResumeDocument, entry types.EducationEntry) *types.ResumeDocument {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	out := clone(doc)
	out.Education = append(out.Education, entry)
	return out
}

// UpdateEducation replaces the entry with the same id.
func UpdateEducation(doc *types.ResumeDocument, entry types.EducationEntry) *types.ResumeDocument {
	out := clone(doc)
	for i := range out.Education {
		if out.Education[i].ID == entry.ID {
			out.Education[i] = entry
			break
		}
	}
	return out
}

// RemoveEducation drops the entry with the given id.
func RemoveEducation(doc *types.ResumeDocument, id string) *types.ResumeDocument {
	out := clone(doc)
	for i := range out.Education {
		if out.Education[i].ID == id {
			out.Education = append(out.Education[:i], out.Education[i+1:]...)
			break
		}
	}
	return out
}

// AddProject appends an entry, assigning an id when absent.
func AddProject(doc *types.ResumeDocument, entry types.ProjectEntry) *types.ResumeDocument {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	out := clone(doc)
	out.Projects = append(out.Projects, entry)
	return out
}

// UpdateProject replaces the entry with the same id.
func UpdateProject(doc *types.ResumeDocument, entry types.ProjectEntry) *types.ResumeDocument {
	out := clone(doc)
	for i := range out.Projects {
		if out.Projects[i].ID == entry.ID {
			out.Projects[i] = entry
			break
		}
	}
	return out
}

// RemoveProject drops the entry with the given id.
func RemoveProject(doc *types.ResumeDocument, id string) *types.ResumeDocument {
	out := clone(doc)
	for i := range out.Projects {
		if out.Projects[i].ID == id {
			out.Projects = append(out.Projects[:i], out.Projects[i+1:]...)
			break
		}
	}
	return out
}

// SetSectionOrder replaces the display ordering.
func SetSectionOrder(doc *types.ResumeDocument, order []string) *types.ResumeDocument {
	out := clone(doc)
	out.SectionOrder = append([]string(nil), order...)
	return out
}

// SetSectionVisible adds or removes a section id from the visible set.
func SetSectionVisible(doc *types.ResumeDocument, id string, visible bool) *types.ResumeDocument {
	out := clone(doc)
	idx := -1
	for i, v := range out.VisibleSections {
		if v == id {
			idx = i
			break
		}
	}
	switch {
	case visible && idx < 0:
		out.VisibleSections = append(out.VisibleSections, id)
	case !visible && idx >= 0:
		out.VisibleSections = append(out.VisibleSections[:idx], out.VisibleSections[idx+1:]...)
	}
	return out
}
