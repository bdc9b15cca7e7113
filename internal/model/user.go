package model

// User represents a registered user owning exactly one API key.
// A user is never created without a previously stored API key.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	APIKeyID  int64  `json:"apikey_id"`
}
