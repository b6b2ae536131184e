package models

import "time"

// Professor represents a professor account and profile
type Professor struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	HashedPassword       string    `json:"-"`
	Department           string    `json:"department"`
	CollegeName          string    `json:"college_name"`
	Qualification        string    `json:"qualification"`
	ResearchAreas        string    `json:"research_areas"`
	ExperienceYears      int       `json:"experience_years"`
	PreviousPublications string    `json:"previous_publications"`
	CreatedAt            time.Time `json:"created_at"`
}
