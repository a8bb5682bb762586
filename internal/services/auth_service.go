package services

import (
	"time"

	"gorm.io/gorm"

	"talenthub_backend/internal/auth"
	"talenthub_backend/internal/email"
	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"
)

// AuthService is the identity core: registration, credential
// verification and the token lifecycle.
type AuthService interface {
	RegisterCandidate(db *gorm.DB, req *dto.RegisterCandidateRequest) (*dto.AuthResponse, error)
	RegisterCompany(db *gorm.DB, req *dto.RegisterCompanyRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (*dto.TokenResponse, error)
	Logout(db *gorm.DB, refreshToken string) error

	// ValidateCredentials is a side-effect-free lookup+verify used by
	// alternate auth flows. It returns (nil, nil) on any mismatch and
	// never reports which check failed.
	ValidateCredentials(db *gorm.DB, email, password string) (*models.User, error)
}

type authService struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	tokens           *auth.TokenManager
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	tokens *auth.TokenManager,
	emailProvider email.Provider,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokens:           tokens,
		emailProvider:    emailProvider,
	}
}

func (s *authService) RegisterCandidate(db *gorm.DB, req *dto.RegisterCandidateRequest) (*dto.AuthResponse, error) {
	// Advisory pre-checks. The unique constraints in the store are the
	// real guarantor; Create below maps their violations to the same
	// conflict errors.
	if err := s.checkEmailFree(db, req.Email); err != nil {
		return nil, err
	}
	if req.CPF != "" {
		existing, err := s.userRepo.FindCandidateByCPF(db, req.CPF)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if existing != nil {
			return nil, apperrors.ErrCPFAlreadyExists
		}
	}

	// Hashing is deliberately slow; it runs before any store write so
	// no transaction is held open across it.
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	candidate := &models.Candidate{
		FullName: req.FullName,
		Phone:    req.Phone,
	}
	if req.CPF != "" {
		cpf := req.CPF
		candidate.CPF = &cpf
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid date_of_birth, expected YYYY-MM-DD")
		}
		candidate.DateOfBirth = &dob
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		UserType:     models.UserTypeCandidate,
		IsActive:     true,
		Candidate:    candidate,
	}

	if err := s.createUser(db, user); err != nil {
		return nil, err
	}

	return s.finishRegistration(db, user, req.FullName)
}

func (s *authService) RegisterCompany(db *gorm.DB, req *dto.RegisterCompanyRequest) (*dto.AuthResponse, error) {
	if err := s.checkEmailFree(db, req.Email); err != nil {
		return nil, err
	}
	existing, err := s.userRepo.FindCompanyByCNPJ(db, req.CNPJ)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrCNPJAlreadyExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		UserType:     models.UserTypeCompany,
		IsActive:     true,
		Company: &models.Company{
			CompanyName: req.CompanyName,
			CNPJ:        req.CNPJ,
			Website:     req.Website,
			Phone:       req.Phone,
		},
	}

	if err := s.createUser(db, user); err != nil {
		return nil, err
	}

	return s.finishRegistration(db, user, req.CompanyName)
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Same error as a wrong password: no account-enumeration oracle.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	// Password before activation state: a disabled account is only
	// revealed to callers holding valid credentials.
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	tokens, err := s.issueTokens(db, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         buildUserDTO(user),
	}, nil
}

func (s *authService) Refresh(db *gorm.DB, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// The persisted row is the revocation handle: a verified signature
	// alone is not enough.
	stored, err := s.refreshTokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, claims.Subject)
	if err != nil || !user.IsActive {
		return nil, apperrors.ErrInvalidToken
	}

	// Rotate: both tokens are replaced, the old refresh row is deleted.
	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	tokens, err := s.issueTokens(db, user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *authService) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) ValidateCredentials(db *gorm.DB, emailAddr, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil
	}

	user.PasswordHash = ""
	return user, nil
}

// --- helpers ---

func (s *authService) checkEmailFree(db *gorm.DB, emailAddr string) error {
	_, err := s.userRepo.FindByEmail(db, emailAddr)
	if err == nil {
		return apperrors.ErrEmailAlreadyExists
	}
	if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

// createUser persists the user+profile unit and maps constraint
// violations from a lost registration race onto the conflict errors the
// pre-checks would have produced.
func (s *authService) createUser(db *gorm.DB, user *models.User) error {
	err := s.userRepo.Create(db, user)
	switch {
	case err == nil:
		return nil
	case apperrors.Is(err, repositories.ErrEmailTaken):
		return apperrors.ErrEmailAlreadyExists
	case apperrors.Is(err, repositories.ErrCPFTaken):
		return apperrors.ErrCPFAlreadyExists
	case apperrors.Is(err, repositories.ErrCNPJTaken):
		return apperrors.ErrCNPJAlreadyExists
	default:
		return apperrors.InternalError(err)
	}
}

func (s *authService) finishRegistration(db *gorm.DB, user *models.User, displayName string) (*dto.AuthResponse, error) {
	tokens, err := s.issueTokens(db, user)
	if err != nil {
		return nil, err
	}

	s.sendWelcomeEmail(user.Email, displayName)

	return &dto.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         buildUserDTO(user),
	}, nil
}

// issueTokens signs a fresh pair and records the refresh half so it can
// be revoked later.
func (s *authService) issueTokens(db *gorm.DB, user *models.User) (*auth.TokenPair, error) {
	tokens, err := s.tokens.Issue(user.ID, user.Email, user.UserType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	row := &models.RefreshToken{
		UserID:    user.ID,
		Token:     tokens.RefreshToken,
		ExpiresAt: time.Now().Add(s.tokens.RefreshTTL()),
	}
	if err := s.refreshTokenRepo.Create(db, row); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return tokens, nil
}

func (s *authService) sendWelcomeEmail(to, name string) {
	if s.emailProvider == nil {
		return
	}
	go func() {
		if err := s.emailProvider.SendWelcome(to, name); err != nil {
			logger.Warn("failed to send welcome email", "error", err)
		}
	}()
}

func buildUserDTO(user *models.User) dto.UserDTO {
	out := dto.UserDTO{
		ID:       user.ID,
		Email:    user.Email,
		UserType: user.UserType,
	}

	if user.Candidate != nil {
		out.Candidate = &dto.CandidateSummary{
			ID:       user.Candidate.ID,
			FullName: user.Candidate.FullName,
		}
	}
	if user.Company != nil {
		out.Company = &dto.CompanySummary{
			ID:          user.Company.ID,
			CompanyName: user.Company.CompanyName,
		}
	}
	return out
}
