package user

import "gorm.io/gorm"

// User is an account record keyed by email. PasswordHash is empty for
// federated (Google) accounts and is never serialized.
type User struct {
	gorm.Model
	Email          string  `gorm:"unique;not null" json:"email"`
	Name           string  `gorm:"not null" json:"name"`
	PasswordHash   string  `json:"-"`
	GoogleID       *string `gorm:"index" json:"google_id,omitempty"`
	Avatar         string  `json:"avatar,omitempty"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
}
