package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by an advisor session token.
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT signs an HS512 session token for email that expires expiryDuration after issuedAt.
func GenerateJWT(email, role, secret string, expiryDuration time.Duration, issuer string, issuedAt time.Time) (string, error) {
	claims := SessionClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a session token string, validates its signature and standard claims.
// It returns the SessionClaims if the token is valid, or an error otherwise.
func ParseAndValidateJWT(tokenString string, secretKey string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		return nil, err // This will include errors like token expired, signature invalid, etc.
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
