package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"talenthub_backend/internal/models"
)

// ErrInvalidToken covers bad signature, malformed token and expiry.
// Callers must not be able to tell these apart.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload shared by access and refresh tokens.
// Subject carries the user ID.
type Claims struct {
	Email    string          `json:"email"`
	UserType models.UserType `json:"userType"`
	jwt.RegisteredClaims
}

// TokenPair is the result of a successful issue: a short-lived access
// token and a long-lived refresh token, signed with independent secrets.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenManager signs and verifies JWTs. Secrets and lifetimes are fixed
// at construction from process configuration.
type TokenManager struct {
	accessSecret  []byte
	accessTTL     time.Duration
	refreshSecret []byte
	refreshTTL    time.Duration
}

func NewTokenManager(accessSecret string, accessTTL time.Duration, refreshSecret string, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		accessTTL:     accessTTL,
		refreshSecret: []byte(refreshSecret),
		refreshTTL:    refreshTTL,
	}
}

// RefreshTTL exposes the refresh lifetime so the service layer can set
// the expiry on the persisted refresh_tokens row.
func (m *TokenManager) RefreshTTL() time.Duration {
	return m.refreshTTL
}

// Issue builds the {sub, email, userType} payload and signs it twice:
// once per secret/TTL pair.
func (m *TokenManager) Issue(userID, email string, userType models.UserType) (*TokenPair, error) {
	accessToken, err := m.sign(userID, email, userType, m.accessSecret, m.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := m.sign(userID, email, userType, m.refreshSecret, m.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (m *TokenManager) sign(userID, email string, userType models.UserType, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:    email,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti makes every signed token unique, so a rotated
			// refresh token never collides with its predecessor
			// even inside one issuing second.
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAccess parses and validates an access token.
func (m *TokenManager) VerifyAccess(tokenStr string) (*Claims, error) {
	return m.verify(tokenStr, m.accessSecret)
}

// VerifyRefresh parses and validates a refresh token. An access token
// presented here fails on the signature check.
func (m *TokenManager) VerifyRefresh(tokenStr string) (*Claims, error) {
	return m.verify(tokenStr, m.refreshSecret)
}

func (m *TokenManager) verify(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
