// Package auth implements the stateless session token service: issuance and
// validation of signed, self-contained bearer tokens. Tokens carry only a
// subject and an expiry; there is no server-side session state.
package auth

import (
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService signs and verifies session tokens (HS256). The signing secret
// is injected once at construction and never read from the environment per
// call. The now field is a seam for tests that need to move the clock.
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewTokenService constructs a TokenService with the given HMAC secret and
// token lifetime.
func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	return &TokenService{secret: secret, validity: validity, now: time.Now}
}

// Issue produces a signed token asserting {sub: userID, exp: now + validity}.
func (s *TokenService) Issue(userID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		IssuedAt:  jwt.NewNumericDate(now),
	})

	return token.SignedString(s.secret)
}

// Validate verifies the signature and expiry of a token and returns its
// subject. Malformed, tampered and expired tokens all fail with
// common.ErrInvalidToken; the causes are intentionally not distinguished.
func (s *TokenService) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil || !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
