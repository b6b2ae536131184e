package models

// UserRole identifies which side of the marketplace a user belongs to.
type UserRole string

const (
	// RoleProfessor marks accounts that post gigs
	RoleProfessor UserRole = "professor"
	// RoleStudent marks accounts that apply to gigs
	RoleStudent UserRole = "student"
)
