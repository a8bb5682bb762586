package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/email"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"
	"talenthub_backend/test/helpers"
)

type fixture struct {
	svc         services.AuthService
	userRepo    *helpers.FakeUserRepo
	refreshRepo *helpers.FakeRefreshTokenRepo
	tokens      *auth.TokenManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	userRepo := helpers.NewFakeUserRepo()
	refreshRepo := helpers.NewFakeRefreshTokenRepo()
	tokens := auth.NewTokenManager("access-secret", 15*time.Minute, "refresh-secret", 7*24*time.Hour)
	svc := services.NewAuthService(userRepo, refreshRepo, tokens, email.Noop{})
	return &fixture{svc: svc, userRepo: userRepo, refreshRepo: refreshRepo, tokens: tokens}
}

func candidateReq(emailAddr, cpf string) *dto.RegisterCandidateRequest {
	return &dto.RegisterCandidateRequest{
		Email:    emailAddr,
		Password: "longpass1",
		FullName: "Maria Silva",
		CPF:      cpf,
	}
}

func companyReq(emailAddr, cnpj string) *dto.RegisterCompanyRequest {
	return &dto.RegisterCompanyRequest{
		Email:       emailAddr,
		Password:    "longpass1",
		CompanyName: "Acme",
		CNPJ:        cnpj,
	}
}

// --- registration ---

func TestRegisterCandidate_ThenLogin(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.RegisterCandidate(nil, candidateReq("maria@test.com", "52998224725"))
	require.NoError(t, err)

	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, "maria@test.com", res.User.Email)
	assert.Equal(t, models.UserTypeCandidate, res.User.UserType)
	require.NotNil(t, res.User.Candidate)
	assert.Equal(t, "Maria Silva", res.User.Candidate.FullName)
	assert.Nil(t, res.User.Company)

	login, err := f.svc.Login(nil, &dto.LoginRequest{Email: "maria@test.com", Password: "longpass1"})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
	assert.NotEmpty(t, login.AccessToken)
}

func TestRegisterCandidate_OptionalFields(t *testing.T) {
	f := newFixture(t)

	req := candidateReq("opt@test.com", "")
	req.Phone = "+55 11 99999-0000"
	req.DateOfBirth = "1990-12-31"

	res, err := f.svc.RegisterCandidate(nil, req)
	require.NoError(t, err)

	stored := f.userRepo.Users[res.User.ID]
	require.NotNil(t, stored.Candidate)
	assert.Equal(t, "+55 11 99999-0000", stored.Candidate.Phone)
	require.NotNil(t, stored.Candidate.DateOfBirth)
	assert.Equal(t, 1990, stored.Candidate.DateOfBirth.Year())
	assert.Nil(t, stored.Candidate.CPF)
}

func TestRegisterCompany_Scenario(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.RegisterCompany(nil, &dto.RegisterCompanyRequest{
		Email:       "a@b.com",
		Password:    "longpass1",
		CompanyName: "Acme",
		CNPJ:        "12345678900019",
	})
	require.NoError(t, err)
	require.NotNil(t, res.User.Company)
	assert.NotEmpty(t, res.User.Company.ID)
	assert.Equal(t, "Acme", res.User.Company.CompanyName)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)

	// Same email, different CNPJ: still an email conflict.
	_, err = f.svc.RegisterCompany(nil, companyReq("a@b.com", "99999999000199"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_DuplicateEmail_AcrossKinds(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.RegisterCandidate(nil, candidateReq("dup@test.com", ""))
	require.NoError(t, err)

	_, err = f.svc.RegisterCompany(nil, companyReq("dup@test.com", "12345678900019"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = f.svc.RegisterCandidate(nil, candidateReq("dup@test.com", "52998224725"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterCandidate_DuplicateCPF(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.RegisterCandidate(nil, candidateReq("one@test.com", "52998224725"))
	require.NoError(t, err)

	_, err = f.svc.RegisterCandidate(nil, candidateReq("two@test.com", "52998224725"))
	assert.ErrorIs(t, err, apperrors.ErrCPFAlreadyExists)
}

func TestRegisterCompany_DuplicateCNPJ(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.RegisterCompany(nil, companyReq("one@test.com", "12345678900019"))
	require.NoError(t, err)

	_, err = f.svc.RegisterCompany(nil, companyReq("two@test.com", "12345678900019"))
	assert.ErrorIs(t, err, apperrors.ErrCNPJAlreadyExists)
}

func TestRegister_LostRace_MapsStoreConflict(t *testing.T) {
	f := newFixture(t)

	// The advisory pre-check passes but the store reports the unique
	// violation a concurrent registration won.
	f.userRepo.CreateErr = repositories.ErrEmailTaken
	_, err := f.svc.RegisterCandidate(nil, candidateReq("race@test.com", ""))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	f.userRepo.CreateErr = repositories.ErrCPFTaken
	_, err = f.svc.RegisterCandidate(nil, candidateReq("race@test.com", "52998224725"))
	assert.ErrorIs(t, err, apperrors.ErrCPFAlreadyExists)

	f.userRepo.CreateErr = repositories.ErrCNPJTaken
	_, err = f.svc.RegisterCompany(nil, companyReq("race@test.com", "12345678900019"))
	assert.ErrorIs(t, err, apperrors.ErrCNPJAlreadyExists)
}

func TestRegisterCandidate_BadDateOfBirth(t *testing.T) {
	f := newFixture(t)

	req := candidateReq("dob@test.com", "")
	req.DateOfBirth = "31/12/1990"
	_, err := f.svc.RegisterCandidate(nil, req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

// --- login ---

func TestLogin_UnknownEmailAndWrongPassword_SameError(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.RegisterCandidate(nil, candidateReq("known@test.com", ""))
	require.NoError(t, err)

	_, errUnknown := f.svc.Login(nil, &dto.LoginRequest{Email: "ghost@test.com", Password: "longpass1"})
	_, errWrongPw := f.svc.Login(nil, &dto.LoginRequest{Email: "known@test.com", Password: "wrongpass"})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, apperrors.ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.RegisterCandidate(nil, candidateReq("off@test.com", ""))
	require.NoError(t, err)
	f.userRepo.Users[res.User.ID].IsActive = false

	// Correct password reveals the disabled state...
	_, err = f.svc.Login(nil, &dto.LoginRequest{Email: "off@test.com", Password: "longpass1"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)

	// ...a wrong password never does.
	_, err = f.svc.Login(nil, &dto.LoginRequest{Email: "off@test.com", Password: "wrongpass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

// --- refresh ---

func TestRefresh_RotatesTokenPair(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.RegisterCandidate(nil, candidateReq("rot@test.com", ""))
	require.NoError(t, err)

	refreshed, err := f.svc.Refresh(nil, res.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
	assert.NotEqual(t, res.RefreshToken, refreshed.RefreshToken)

	// The old refresh token is revoked by rotation.
	_, err = f.svc.Refresh(nil, res.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	// The new one works.
	_, err = f.svc.Refresh(nil, refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.RegisterCandidate(nil, candidateReq("acc@test.com", ""))
	require.NoError(t, err)

	// Signed under the access secret, so refresh verification fails.
	_, err = f.svc.Refresh(nil, res.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefresh_RevokedAndGarbageRejected(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.RegisterCandidate(nil, candidateReq("rev@test.com", ""))
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(nil, res.RefreshToken))

	// Valid signature, but the revocation row is gone.
	_, err = f.svc.Refresh(nil, res.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = f.svc.Refresh(nil, "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefresh_InactiveUserRejected(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.RegisterCandidate(nil, candidateReq("ina@test.com", ""))
	require.NoError(t, err)
	f.userRepo.Users[res.User.ID].IsActive = false

	_, err = f.svc.Refresh(nil, res.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestLogout_UnknownTokenRejected(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Logout(nil, "never-issued")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// --- validate credentials ---

func TestValidateCredentials(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.RegisterCandidate(nil, candidateReq("val@test.com", ""))
	require.NoError(t, err)

	user, err := f.svc.ValidateCredentials(nil, "val@test.com", "longpass1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "val@test.com", user.Email)
	assert.Empty(t, user.PasswordHash, "password hash must be stripped")

	user, err = f.svc.ValidateCredentials(nil, "val@test.com", "wrongpass")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = f.svc.ValidateCredentials(nil, "ghost@test.com", "longpass1")
	require.NoError(t, err)
	assert.Nil(t, user)
}
