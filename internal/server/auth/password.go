package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"userauth-server/internal/common"
)

// HashCost is the fixed bcrypt work factor applied to every stored password.
const HashCost = 10

// HashPassword derives a salted one-way hash of plaintext. Primitive
// failures surface as common.ErrHashing; the cause stays server-side.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), HashCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrHashing, err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// A legitimate mismatch is (false, nil); only primitive-level failures
// (malformed hash, etc.) return an error.
func CheckPassword(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", common.ErrComparison, err)
	}
}
