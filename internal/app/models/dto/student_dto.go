package dto

// RegisterStudentRequest is the student registration payload
type RegisterStudentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	RegNo       string  `json:"reg_no" binding:"required"`
	Department  string  `json:"department" binding:"required"`
	Year        string  `json:"year" binding:"required"`
	CollegeName *string `json:"college_name,omitempty"`
}

// UpdateStudentRequest carries the updatable student profile fields.
// Only non-nil fields are written.
type UpdateStudentRequest struct {
	Name        *string   `json:"name,omitempty"`
	Department  *string   `json:"department,omitempty"`
	Year        *string   `json:"year,omitempty"`
	CollegeName *string   `json:"college_name,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
	ResumeURL   *string   `json:"resume_url,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
}

// IsEmpty reports whether the request carries no fields to update
func (r *UpdateStudentRequest) IsEmpty() bool {
	return r.Name == nil && r.Department == nil && r.Year == nil &&
		r.CollegeName == nil && r.Skills == nil && r.ResumeURL == nil && r.Bio == nil
}
