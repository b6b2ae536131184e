package models

import "time"

// ApplicationStatus enumerates the lifecycle states of an application
type ApplicationStatus string

const (
	// ApplicationStatusPending is the initial state of every submission
	ApplicationStatusPending ApplicationStatus = "pending"
	// ApplicationStatusAccepted means the professor accepted the submission
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	// ApplicationStatusRejected means the professor declined the submission
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// IsValidApplicationStatus reports whether s is one of the recognized statuses
func IsValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// Application represents one student's submission against one gig.
// StudentID is nullable: rows created before accounts existed are keyed
// by student_email only.
type Application struct {
	ID           string            `json:"id"`
	GigID        string            `json:"gig_id"`
	StudentID    *string           `json:"student_id,omitempty"`
	StudentName  string            `json:"student_name"`
	StudentEmail string            `json:"student_email"`
	StudentYear  *string           `json:"student_year,omitempty"`
	StudentCGPA  *string           `json:"student_cgpa,omitempty"`
	ResumeLink   string            `json:"resume_link"`
	CoverLetter  *string           `json:"cover_letter,omitempty"`
	Status       ApplicationStatus `json:"status"`
	AppliedAt    time.Time         `json:"applied_at"`
}

// GigSummary is the subset of gig fields embedded in application listings
type GigSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      GigStatus `json:"status"`
}

// ApplicationWithGig pairs an application with a summary of its target gig.
// Gig is nil when the gig has been deleted.
type ApplicationWithGig struct {
	Application
	Gig *GigSummary `json:"gig"`
}
