package render

import "strings"

// emDashSeparator is the legacy separator packing "Role — Company" into a
// single title field.
const emDashSeparator = " — "

// splitTitleCompany derives a display designation and company from a legacy
// combined title. The split applies only when the entry's own company field
// is blank and the title actually contains the em-dash separator; otherwise
// both values pass through unchanged. This is a display-time inference, not a
// data rule: the document keeps the combined title so search and export see
// it verbatim, and this helper can be deleted once upstream data is fully
// normalized.
func splitTitleCompany(title, company string) (string, string) {
	if company != "" || !strings.Contains(title, emDashSeparator) {
		return title, company
	}
	parts := strings.SplitN(title, emDashSeparator, 2)
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
