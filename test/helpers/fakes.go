// Package helpers provides in-memory repository fakes for unit tests.
// The *gorm.DB handle every repository method receives is ignored.
package helpers

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
)

// FakeUserRepo implements repositories.UserRepository on a map.
type FakeUserRepo struct {
	Users map[string]*models.User // by id

	// CreateErr, when set, is returned by Create unconditionally. Used
	// to simulate a uniqueness race lost at the store layer.
	CreateErr error
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{Users: make(map[string]*models.User)}
}

func (r *FakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if u, ok := r.Users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *FakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.Users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *FakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	for _, u := range r.Users {
		if u.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}
	user.ID = uuid.NewString()
	if user.Candidate != nil {
		user.Candidate.ID = uuid.NewString()
		user.Candidate.UserID = user.ID
	}
	if user.Company != nil {
		user.Company.ID = uuid.NewString()
		user.Company.UserID = user.ID
	}
	cp := *user
	r.Users[user.ID] = &cp
	return nil
}

func (r *FakeUserRepo) FindCandidateByCPF(_ *gorm.DB, cpf string) (*models.Candidate, error) {
	for _, u := range r.Users {
		if u.Candidate != nil && u.Candidate.CPF != nil && *u.Candidate.CPF == cpf {
			cp := *u.Candidate
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *FakeUserRepo) FindCompanyByCNPJ(_ *gorm.DB, cnpj string) (*models.Company, error) {
	for _, u := range r.Users {
		if u.Company != nil && u.Company.CNPJ == cnpj {
			cp := *u.Company
			return &cp, nil
		}
	}
	return nil, nil
}

// FakeRefreshTokenRepo implements repositories.RefreshTokenRepository.
type FakeRefreshTokenRepo struct {
	Tokens map[string]*models.RefreshToken // by token string
}

func NewFakeRefreshTokenRepo() *FakeRefreshTokenRepo {
	return &FakeRefreshTokenRepo{Tokens: make(map[string]*models.RefreshToken)}
}

func (r *FakeRefreshTokenRepo) Create(_ *gorm.DB, token *models.RefreshToken) error {
	token.ID = uuid.NewString()
	cp := *token
	r.Tokens[token.Token] = &cp
	return nil
}

func (r *FakeRefreshTokenRepo) FindByToken(_ *gorm.DB, tokenString string) (*models.RefreshToken, error) {
	if t, ok := r.Tokens[tokenString]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, repositories.ErrRefreshTokenNotFound
}

func (r *FakeRefreshTokenRepo) DeleteByToken(_ *gorm.DB, tokenString string) error {
	if _, ok := r.Tokens[tokenString]; !ok {
		return repositories.ErrRefreshTokenNotFound
	}
	delete(r.Tokens, tokenString)
	return nil
}

func (r *FakeRefreshTokenRepo) DeleteByUserID(_ *gorm.DB, userID string) error {
	for token, t := range r.Tokens {
		if t.UserID == userID {
			delete(r.Tokens, token)
		}
	}
	return nil
}

func (r *FakeRefreshTokenRepo) DeleteExpired(_ *gorm.DB) error {
	for token, t := range r.Tokens {
		if time.Now().After(t.ExpiresAt) {
			delete(r.Tokens, token)
		}
	}
	return nil
}
