package entities

import (
	"github.com/google/uuid"
)

// User doubles as the public profile: one row per principal, id equals the
// id carried in the session token.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name,omitempty"`
	Bio        string    `gorm:"type:text" json:"bio,omitempty"`
	Password   string    `json:"-"`
	IsVerified bool      `json:"is_verified"`

	Timestamp
}
