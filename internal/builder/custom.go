package builder

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/types"
)

// Custom-section actions. Positions stay dense and monotonic (0..n-1 in
// slice order) after every action; the only reorder primitive is swapping a
// section with its neighbor.

// AddCustomSection appends a section at the end, assigning its id and
// position, and marks it visible.
func AddCustomSection(doc *types.ResumeDocument, sec types.CustomSection) *types.ResumeDocument {
	if sec.ID == "" {
		sec.ID = uuid.NewString()
	}
	out := clone(doc)
	sec.Position = len(out.CustomSections)
	out.CustomSections = append(out.CustomSections, sec)
	out.VisibleSections = append(out.VisibleSections, sec.ID)
	return out
}

// UpdateCustomSection replaces the section with the same id, keeping its
// position.
func UpdateCustomSection(doc *types.ResumeDocument, sec types.CustomSection) *types.ResumeDocument {
	out := clone(doc)
	for i := range out.CustomSections {
		if out.CustomSections[i].ID == sec.ID {
			sec.Position = out.CustomSections[i].Position
			out.CustomSections[i] = sec
			break
		}
	}
	return out
}

// RemoveCustomSection drops the section and re-densifies positions.
func RemoveCustomSection(doc *types.ResumeDocument, id string) *types.ResumeDocument {
	out := clone(doc)
	for i := range out.CustomSections {
		if out.CustomSections[i].ID == id {
			out.CustomSections = append(out.CustomSections[:i], out.CustomSections[i+1:]...)
			break
		}
	}
	renumber(out.CustomSections)
	out.VisibleSections = removeID(out.VisibleSections, id)
	return out
}

// MoveCustomSection swaps the section with its neighbor in the given
// direction (-1 moves toward the front, +1 toward the back). Moves past
// either end are no-ops.
func MoveCustomSection(doc *types.ResumeDocument, id string, direction int) *types.ResumeDocument {
	out := clone(doc)
	sort.SliceStable(out.CustomSections, func(i, j int) bool {
		return out.CustomSections[i].Position < out.CustomSections[j].Position
	})

	idx := -1
	for i := range out.CustomSections {
		if out.CustomSections[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return out
	}

	next := idx + direction
	if direction != -1 && direction != 1 || next < 0 || next >= len(out.CustomSections) {
		return out
	}

	out.CustomSections[idx], out.CustomSections[next] = out.CustomSections[next], out.CustomSections[idx]
	renumber(out.CustomSections)
	return out
}

// renumber reassigns dense monotonic positions in slice order.
func renumber(sections []types.CustomSection) {
	for i := range sections {
		sections[i].Position = i
	}
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
