package models

import "time"

// User is the login identity. Exactly one of Candidate/Company is attached,
// selected by UserType; the profile row is created in the same transaction
// as the user row.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	UserType     UserType `gorm:"type:varchar(20);not null" json:"user_type"`
	IsActive     bool     `gorm:"not null;default:true" json:"is_active"`

	// Relations
	Candidate     *Candidate     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"candidate,omitempty"`
	Company       *Company       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// RefreshToken is the persisted half of a refresh JWT. Deleting the row
// revokes the token even if its signature is still valid.
type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
