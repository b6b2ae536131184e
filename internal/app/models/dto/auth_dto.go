package dto

// RegisterRequest is the professor registration payload
type RegisterRequest struct {
	Name                 string `json:"name" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=8"`
	Department           string `json:"department" binding:"required"`
	CollegeName          string `json:"college_name" binding:"required"`
	Qualification        string `json:"qualification"`
	ResearchAreas        string `json:"research_areas"`
	ExperienceYears      int    `json:"experience_years"`
	PreviousPublications string `json:"previous_publications"`
}

// LoginRequest is the login payload shared by both roles
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned on successful professor login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int    `json:"expires_in" example:"3600"`
	ProfessorID string `json:"professor_id"`
}

// StudentTokenResponse is returned on successful student login
type StudentTokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type" example:"bearer"`
	ExpiresIn   int         `json:"expires_in" example:"3600"`
	StudentID   string      `json:"student_id"`
	Student     interface{} `json:"student"`
}
