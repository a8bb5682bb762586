package services

import "talenthub_backend/internal/email"

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService  AuthService
	EmailService email.Provider
}
