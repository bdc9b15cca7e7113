package model

// Admin represents a dashboard administrator account.
type Admin struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never serialize
}
