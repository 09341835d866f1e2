package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for operator tokens.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService validates the bearer tokens presented to operator endpoints.
type TokenService interface {
	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
