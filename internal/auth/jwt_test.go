package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internal/models"
)

func newTestManager() *TokenManager {
	return NewTokenManager("access-secret", 15*time.Minute, "refresh-secret", 7*24*time.Hour)
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := newTestManager()

	pair, err := m.Issue("user-123", "a@b.com", models.UserTypeCandidate)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := m.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, models.UserTypeCandidate, claims.UserType)

	refreshClaims, err := m.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", refreshClaims.Subject)
}

func TestTokenManager_IssueIsUniquePerCall(t *testing.T) {
	m := newTestManager()

	p1, err := m.Issue("user-123", "a@b.com", models.UserTypeCandidate)
	require.NoError(t, err)
	p2, err := m.Issue("user-123", "a@b.com", models.UserTypeCandidate)
	require.NoError(t, err)

	// Same subject and same second must still yield distinct tokens.
	assert.NotEqual(t, p1.AccessToken, p2.AccessToken)
	assert.NotEqual(t, p1.RefreshToken, p2.RefreshToken)
}

func TestTokenManager_CrossSecretRejected(t *testing.T) {
	m := newTestManager()

	pair, err := m.Issue("user-123", "a@b.com", models.UserTypeCompany)
	require.NoError(t, err)

	// An access token must not be replayable as a refresh token, and
	// vice versa.
	_, err = m.VerifyRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecretRejected(t *testing.T) {
	m := newTestManager()
	other := NewTokenManager("other-access", 15*time.Minute, "other-refresh", 7*24*time.Hour)

	pair, err := m.Issue("user-123", "a@b.com", models.UserTypeCandidate)
	require.NoError(t, err)

	_, err = other.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = other.VerifyRefresh(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_ExpiredRejected(t *testing.T) {
	expired := NewTokenManager("access-secret", -1*time.Minute, "refresh-secret", -1*time.Minute)

	pair, err := expired.Issue("user-123", "a@b.com", models.UserTypeCandidate)
	require.NoError(t, err)

	_, err = expired.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = expired.VerifyRefresh(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_MalformedRejected(t *testing.T) {
	m := newTestManager()

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := m.VerifyAccess(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
