package domain

import "time"

// UserProfile is the denormalized user record mirrored into the document
// store. Its ID equals the identity provider's uid and is the document key.
type UserProfile struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// Account is the identity provider's own record for a user, distinct from
// the mirrored profile document. It never leaves the auth layer.
type Account struct {
	UID          string
	Email        string
	PasswordHash string
	DisplayName  string
	PhotoURL     string
	PhoneNumber  string
	Disabled     bool
	CreatedAt    time.Time
}
