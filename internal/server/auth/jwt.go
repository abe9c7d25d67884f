// Package auth holds the credential primitives: password hashing and session
// token signing/verification.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"userauth-server/internal/common"
)

// Claims is the session token payload: user identity plus the standard
// registered claims (issued-at, expiry, subject).
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session tokens with a shared HMAC secret.
type TokenManager struct {
	secret   []byte
	validity time.Duration
}

// NewTokenManager constructs a TokenManager. An empty secret is rejected:
// tokens signed with a guessable key are worthless.
func NewTokenManager(secret string, validity time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("token manager: secret must not be empty")
	}
	return &TokenManager{secret: []byte(secret), validity: validity}, nil
}

// Validity returns the configured token lifetime.
func (m *TokenManager) Validity() time.Duration {
	return m.validity
}

// Sign issues an HS256 token carrying the user's id, email, and role.
func (m *TokenManager) Sign(userID, email, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrSigning, err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the decoded claims.
// Expired tokens yield common.ErrTokenExpired; any other defect yields
// common.ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
