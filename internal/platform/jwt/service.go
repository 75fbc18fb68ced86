// Package jwtmw provides signed bearer token issuance, verification and
// the Gin middleware that guards protected routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed payload or an expired token. Callers must not distinguish
// between these cases.
var ErrInvalidToken = errors.New("invalid token")

// Issuer defines the interface for access token issuance.
type Issuer interface {
	// IssueToken creates a signed token whose subject is the given email.
	IssueToken(email string) (string, error)
}

// Verifier defines the interface for access token verification.
type Verifier interface {
	// VerifyToken checks the token and returns its subject email.
	VerifyToken(tokenStr string) (string, error)
}

// Service issues and verifies HS256-signed bearer tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service with the provided secret and token lifetime.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// IssueToken creates a signed JWT with standard claims.
// The token is valid strictly while now < exp.
func (s *Service) IssueToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"exp": now.Add(s.ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken parses and validates a token string and returns the subject email.
// Any failure (signature, shape, expiry) is reported as ErrInvalidToken.
func (s *Service) VerifyToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
