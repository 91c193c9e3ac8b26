package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the JWT claims carried by every authenticated request.
// Role is needed server-side to gate the admin route group.
type SessionClaims struct {
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed JWT for an authenticated user.
func GenerateSessionToken(username, role, displayName, secret, issuer string, expiry time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		Role:        role,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
