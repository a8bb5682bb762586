package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type candidateDoc struct {
	CPF string `json:"cpf" validate:"omitempty,cpf"`
}

type companyDoc struct {
	CNPJ string `json:"cnpj" validate:"cnpj"`
}

func TestValidateCPF(t *testing.T) {
	v := New()

	valid := []string{"", "52998224725", "529.982.247-25", "12345678901"}
	for _, cpf := range valid {
		assert.NoError(t, v.Validate(&candidateDoc{CPF: cpf}), "cpf %q", cpf)
	}

	invalid := []string{"1234567890", "123456789012", "5299822472a", "529982247 25"}
	for _, cpf := range invalid {
		err := v.Validate(&candidateDoc{CPF: cpf})
		assert.Error(t, err, "cpf %q", cpf)

		vErr, ok := err.(*ValidationError)
		assert.True(t, ok)
		assert.Contains(t, vErr.Errors, "cpf")
	}
}

func TestValidateCNPJ(t *testing.T) {
	v := New()

	valid := []string{"12345678900019", "11.222.333/0001-81"}
	for _, cnpj := range valid {
		assert.NoError(t, v.Validate(&companyDoc{CNPJ: cnpj}), "cnpj %q", cnpj)
	}

	invalid := []string{"", "1234567890001", "123456789000190", "1234567890001x"}
	for _, cnpj := range invalid {
		assert.Error(t, v.Validate(&companyDoc{CNPJ: cnpj}), "cnpj %q", cnpj)
	}
}

func TestValidationError_FieldNamesFromJSONTags(t *testing.T) {
	v := New()

	type payload struct {
		EmailAddress string `json:"email" validate:"required,email"`
	}

	err := v.Validate(&payload{EmailAddress: "not-an-email"})
	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "EmailAddress")
}
