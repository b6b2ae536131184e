package models

import "time"

// GigStatus enumerates the lifecycle states of a posted gig
type GigStatus string

const (
	// GigStatusOpen means the gig accepts applications
	GigStatusOpen GigStatus = "open"
	// GigStatusClosed means the gig finished, optionally with publication metadata
	GigStatusClosed GigStatus = "closed"
	// GigStatusOnHold means the gig is paused with a reason
	GigStatusOnHold GigStatus = "on-hold"
)

// IsValidGigStatus reports whether s is one of the recognized gig statuses
func IsValidGigStatus(s GigStatus) bool {
	switch s {
	case GigStatusOpen, GigStatusClosed, GigStatusOnHold:
		return true
	default:
		return false
	}
}

// Gig represents a research opportunity posted by a professor
type Gig struct {
	ID               string    `json:"id"`
	ProfessorID      string    `json:"professor_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	AreaOfStudy      string    `json:"area_of_study"`
	Technologies     *string   `json:"technologies,omitempty"`
	TargetType       *string   `json:"target_type,omitempty"`
	PaperType        *string   `json:"paper_type,omitempty"`
	Timeline         *string   `json:"timeline,omitempty"`
	YearRequirement  *string   `json:"year_requirement,omitempty"`
	CGPARequirement  *string   `json:"cgpa_requirement,omitempty"`
	Funded           bool      `json:"funded"`
	CandidateCount   *int      `json:"candidate_count,omitempty"`
	Status           GigStatus `json:"status"`
	PublicationLink  *string   `json:"publication_link,omitempty"`
	PublicationVenue *string   `json:"publication_venue,omitempty"`
	PausedReason     *string   `json:"paused_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
