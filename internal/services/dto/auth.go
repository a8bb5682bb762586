package dto

import "talenthub_backend/internal/models"

// RegisterCandidateRequest registers a CANDIDATE user with its profile.
type RegisterCandidateRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FullName    string `json:"full_name" binding:"required"`
	Phone       string `json:"phone,omitempty"`
	CPF         string `json:"cpf,omitempty" validate:"omitempty,cpf"`
	DateOfBirth string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// RegisterCompanyRequest registers a COMPANY user with its profile.
type RegisterCompanyRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	CompanyName string `json:"company_name" binding:"required"`
	CNPJ        string `json:"cnpj" binding:"required" validate:"cnpj"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	Phone       string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CandidateSummary is the profile slice exposed in auth responses.
type CandidateSummary struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

type CompanySummary struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
}

// UserDTO is the sanitized user view. The password hash never leaves
// the service layer.
type UserDTO struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	UserType  models.UserType   `json:"user_type"`
	Candidate *CandidateSummary `json:"candidate,omitempty"`
	Company   *CompanySummary   `json:"company,omitempty"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

// TokenResponse is returned by refresh: a fresh pair, no user payload.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ProfileResponse is the current-user view for authenticated requests.
type ProfileResponse struct {
	UserID   string          `json:"user_id"`
	Email    string          `json:"email"`
	UserType models.UserType `json:"user_type"`
}
