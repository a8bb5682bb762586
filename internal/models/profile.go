package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Candidate is the profile attached to a CANDIDATE user.
type Candidate struct {
	BaseModel
	UserID      string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FullName    string         `gorm:"not null" json:"full_name"`
	Phone       string         `json:"phone,omitempty"`
	CPF         *string        `gorm:"uniqueIndex" json:"cpf,omitempty"`
	DateOfBirth *time.Time     `json:"date_of_birth,omitempty"`
	Address     datatypes.JSON `gorm:"type:jsonb" json:"address,omitempty"`
	LinkedinURL string         `json:"linkedin_url,omitempty"`
	ResumeURL   string         `json:"resume_url,omitempty"`
	Skills      pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"skills"`
	Bio         string         `gorm:"type:text" json:"bio,omitempty"`
	Metadata    datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
}

// Company is the profile attached to a COMPANY user.
type Company struct {
	BaseModel
	UserID      string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CompanyName string         `gorm:"not null" json:"company_name"`
	CNPJ        string         `gorm:"uniqueIndex;not null" json:"cnpj"`
	Website     string         `json:"website,omitempty"`
	Industry    string         `json:"industry,omitempty"`
	Size        string         `json:"size,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	Address     datatypes.JSON `gorm:"type:jsonb" json:"address,omitempty"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	LogoURL     string         `json:"logo_url,omitempty"`
	Metadata    datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
}
