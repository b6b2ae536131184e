package dto

// SuccessResponse represents a minimal success payload
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// ModifiedResponse reports how many documents a bulk update touched
type ModifiedResponse struct {
	Success       bool  `json:"success" example:"true"`
	ModifiedCount int64 `json:"modified_count" example:"3"`
}

// UnreadCountResponse carries a user's unread notification count
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count" example:"2"`
}
