package dto

// CreateGigRequest is the payload for posting a new gig.
// Status is not accepted from the client; new gigs always start open.
type CreateGigRequest struct {
	ProfessorID     string  `json:"professor_id" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	AreaOfStudy     string  `json:"area_of_study" binding:"required"`
	Technologies    *string `json:"technologies,omitempty"`
	TargetType      *string `json:"target_type,omitempty"`
	PaperType       *string `json:"paper_type,omitempty"`
	Timeline        *string `json:"timeline,omitempty"`
	YearRequirement *string `json:"year_requirement,omitempty"`
	CGPARequirement *string `json:"cgpa_requirement,omitempty"`
	Funded          bool    `json:"funded"`
	CandidateCount  *int    `json:"candidate_count,omitempty"`
}

// UpdateGigRequest carries the updatable gig fields. Only non-nil fields
// are written; an entirely empty request is rejected.
type UpdateGigRequest struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	AreaOfStudy     *string `json:"area_of_study,omitempty"`
	Technologies    *string `json:"technologies,omitempty"`
	TargetType      *string `json:"target_type,omitempty"`
	PaperType       *string `json:"paper_type,omitempty"`
	Timeline        *string `json:"timeline,omitempty"`
	YearRequirement *string `json:"year_requirement,omitempty"`
	CGPARequirement *string `json:"cgpa_requirement,omitempty"`
	Funded          *bool   `json:"funded,omitempty"`
	CandidateCount  *int    `json:"candidate_count,omitempty"`
}

// IsEmpty reports whether the request carries no fields to update
func (r *UpdateGigRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.AreaOfStudy == nil &&
		r.Technologies == nil && r.TargetType == nil && r.PaperType == nil &&
		r.Timeline == nil && r.YearRequirement == nil && r.CGPARequirement == nil &&
		r.Funded == nil && r.CandidateCount == nil
}

// CloseGigRequest optionally records where the resulting work was published
type CloseGigRequest struct {
	PublicationLink  *string `json:"publication_link,omitempty"`
	PublicationVenue *string `json:"publication_venue,omitempty"`
}

// HoldGigRequest pauses a gig with a reason
type HoldGigRequest struct {
	PausedReason string `json:"paused_reason" binding:"required"`
}
