package dto

// UpdateProfessorRequest carries the updatable professor profile fields.
// Only non-nil fields are written.
type UpdateProfessorRequest struct {
	Name                 *string `json:"name,omitempty"`
	Department           *string `json:"department,omitempty"`
	CollegeName          *string `json:"college_name,omitempty"`
	Qualification        *string `json:"qualification,omitempty"`
	ResearchAreas        *string `json:"research_areas,omitempty"`
	ExperienceYears      *int    `json:"experience_years,omitempty"`
	PreviousPublications *string `json:"previous_publications,omitempty"`
}

// IsEmpty reports whether the request carries no fields to update
func (r *UpdateProfessorRequest) IsEmpty() bool {
	return r.Name == nil && r.Department == nil && r.CollegeName == nil &&
		r.Qualification == nil && r.ResearchAreas == nil &&
		r.ExperienceYears == nil && r.PreviousPublications == nil
}
