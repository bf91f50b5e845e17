package render

// Placeholder strings substituted for absent document fields. Placeholders
// render italic in the theme's light text color and carry the placeholder
// role so hosts can style or strip them.
const (
	placeholderName        = "Your Name"
	placeholderTitle       = "Professional Title"
	placeholderEmail       = "email@example.com"
	placeholderPhone       = "Phone Number"
	placeholderLocation    = "Location"
	placeholderSummary     = "A brief professional summary highlighting your experience and goals."
	placeholderSkills      = "Add your skills to see them here."
	placeholderJobTitle    = "Job Title"
	placeholderCompany     = "Company Name"
	placeholderDegree      = "Degree"
	placeholderInstitution = "Institution"
	placeholderProject     = "Project Name"
	placeholderTechStack   = "Technologies Used"
	placeholderCertificate = "Certification Name"
	placeholderInstitute   = "Issuing Organization"
	placeholderDates       = "Start – End"
	placeholderDescription = "Describe your responsibilities and achievements."
)

// orPlaceholder returns value, or the placeholder with a true flag when value
// is empty.
func orPlaceholder(value, placeholder string) (string, bool) {
	if value == "" {
		return placeholder, true
	}
	return value, false
}
