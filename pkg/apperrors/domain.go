package apperrors

import "net/http"

// Predefined errors for the authentication domain. The unauthorized
// variants deliberately share one generic message so the response body
// never reveals which internal check failed.
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrAccountDisabled    = New(CodeAccountDisabled, "auth", "Account is disabled", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "auth", "Authentication required", http.StatusUnauthorized)

	ErrEmailAlreadyExists = New(CodeConflict, "users", "Email already registered", http.StatusConflict)
	ErrCPFAlreadyExists   = New(CodeConflict, "candidates", "CPF already registered", http.StatusConflict)
	ErrCNPJAlreadyExists  = New(CodeConflict, "companies", "CNPJ already registered", http.StatusConflict)

	ErrUserNotFound = New(CodeNotFound, "users", "User not found", http.StatusNotFound)
)

// ErrConflict is the generic conflict factory used when a store
// constraint violation cannot be attributed to a known column.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}
