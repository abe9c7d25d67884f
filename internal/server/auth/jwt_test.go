package auth

import (
	"errors"
	"testing"
	"time"

	"userauth-server/internal/common"
)

func newTestManager(t *testing.T, validity time.Duration) *TokenManager {
	t.Helper()
	m, err := NewTokenManager("super-secret", validity)
	if err != nil {
		t.Fatalf("NewTokenManager error: %v", err)
	}
	return m
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenManager("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret, got nil")
	}
}

func TestSignAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, time.Hour)

	tok, err := m.Sign("u1", "a@b.com", "user")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "a@b.com" || claims.Role != "user" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.Subject != "u1" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "u1")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, -1*time.Second)

	tok, err := m.Sign("u1", "a@b.com", "user")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	_, err = m.Verify(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("want common.ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, time.Hour)
	tok, err := m.Sign("u2", "c@d.com", "admin")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	other, err := NewTokenManager("different-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager error: %v", err)
	}

	_, err = other.Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_TamperedToken(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, time.Hour)
	tok, err := m.Sign("u1", "a@b.com", "user")
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	// Flip one byte of the payload.
	b := []byte(tok)
	mid := len(b) / 2
	if b[mid] == 'A' {
		b[mid] = 'B'
	} else {
		b[mid] = 'A'
	}

	_, err = m.Verify(string(b))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, time.Hour)

	_, err := m.Verify("not.a.jwt")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want common.ErrInvalidToken, got %v", err)
	}
}
