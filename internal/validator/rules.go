package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"talenthub_backend/internal/models"
)

// registerCustomRules installs the project-specific validation tags.
//
// cpf/cnpj validate shape only (digit count, optional ./-/ separators).
// Check-digit verification is not enforced: the store treats both as
// opaque unique identifiers and upstream systems submit test documents
// that carry no valid check digits.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup bug.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("cpf", validateCPF)
	mustRegister("cnpj", validateCNPJ)
	mustRegister("is-user-type", validateUserType)
}

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is 'required' territory
	}
	return models.UserType(value).Valid()
}

// validateCPF accepts an 11-digit CPF, with or without formatting.
func validateCPF(fl validator.FieldLevel) bool {
	digits := onlyDigits(fl.Field().String())
	return len(digits) == 11
}

// validateCNPJ accepts a 14-digit CNPJ, with or without formatting.
func validateCNPJ(fl validator.FieldLevel) bool {
	digits := onlyDigits(fl.Field().String())
	return len(digits) == 14
}

// onlyDigits strips the usual document separators and returns nil when
// any other character is present.
func onlyDigits(s string) []int {
	var digits []int
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-' || r == '/':
			// formatting characters are tolerated
		default:
			return nil
		}
	}
	return digits
}
