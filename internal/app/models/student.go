package models

import "time"

// Student represents a student account and profile
type Student struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	RegNo          string     `json:"reg_no"`
	HashedPassword string     `json:"-"`
	Department     string     `json:"department"`
	Year           string     `json:"year"`
	CollegeName    *string    `json:"college_name,omitempty"`
	Skills         []string   `json:"skills"`
	ResumeURL      *string    `json:"resume_url,omitempty"`
	Bio            *string    `json:"bio,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}
