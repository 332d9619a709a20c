package model

// TokenManager issues and validates service tokens guarding the storage
// API.
type TokenManager interface {
	Generate(subject string) (string, error)
	Parse(tokenString string) (string, error)
}
