package auth

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor. 10 keeps login latency in the
// tens of milliseconds while staying expensive enough for offline attacks.
const PasswordCost = 10

// HashPassword returns the bcrypt hash of the plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a plaintext password against a stored hash.
// The comparison is constant-time inside bcrypt.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
