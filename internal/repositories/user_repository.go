package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"talenthub_backend/internal/models"
)

// Sentinel errors translated by the service layer into AppErrors.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrCPFTaken     = errors.New("cpf already registered")
	ErrCNPJTaken    = errors.New("cnpj already registered")
)

// UserRepository persists users and their 1:1 profiles. Implementations
// are stateless; the caller passes the db handle (pool or transaction)
// on every call.
type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)

	// Create inserts the user row and its nested Candidate/Company
	// profile as one atomic unit. Unique violations surface as the
	// sentinel errors above regardless of which row tripped them.
	Create(db *gorm.DB, user *models.User) error

	FindCandidateByCPF(db *gorm.DB, cpf string) (*models.Candidate, error)
	FindCompanyByCNPJ(db *gorm.DB, cnpj string) (*models.Company, error)
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("Candidate").Preload("Company").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Preload("Candidate").Preload("Company").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		// GORM creates the nested Candidate/Company association inside
		// the same transaction; if the profile insert fails the user
		// row is rolled back with it.
		return tx.Create(user).Error
	})
	if err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func (r *userRepository) FindCandidateByCPF(db *gorm.DB, cpf string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := db.First(&candidate, "cpf = ?", cpf).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *userRepository) FindCompanyByCNPJ(db *gorm.DB, cnpj string) (*models.Company, error) {
	var company models.Company
	err := db.First(&company, "cnpj = ?", cnpj).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

// translateUniqueViolation maps Postgres 23505 errors onto the sentinel
// errors the pre-checks produce, so a lost race against a concurrent
// registration yields the same contract as the advisory check.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return ErrEmailTaken
	case strings.Contains(pgErr.ConstraintName, "cpf"):
		return ErrCPFTaken
	case strings.Contains(pgErr.ConstraintName, "cnpj"):
		return ErrCNPJTaken
	default:
		return err
	}
}
