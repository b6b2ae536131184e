package dto

// CreateApplicationRequest is the payload for submitting an application.
// Status and applied_at are never accepted from the client.
type CreateApplicationRequest struct {
	GigID        string  `json:"gig_id" binding:"required"`
	StudentID    *string `json:"student_id,omitempty"`
	StudentName  string  `json:"student_name" binding:"required"`
	StudentEmail string  `json:"student_email" binding:"required,email"`
	StudentYear  *string `json:"student_year,omitempty"`
	StudentCGPA  *string `json:"student_cgpa,omitempty"`
	ResumeLink   string  `json:"resume_link" binding:"required"`
	CoverLetter  *string `json:"cover_letter,omitempty"`
}

// UpdateApplicationStatusRequest carries the target status for an application
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// HasAppliedResponse is the duplicate-application check result
type HasAppliedResponse struct {
	HasApplied  bool        `json:"has_applied"`
	Application interface{} `json:"application,omitempty"`
}
