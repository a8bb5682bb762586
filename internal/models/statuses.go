package models

type UserType string

const (
	UserTypeCandidate UserType = "CANDIDATE"
	UserTypeCompany   UserType = "COMPANY"
)

// Valid reports whether t is one of the known user types.
func (t UserType) Valid() bool {
	return t == UserTypeCandidate || t == UserTypeCompany
}
