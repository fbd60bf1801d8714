package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/moneynest/money_tracker_app/internal/apperrors"
)

// MinPINLength is the shortest PIN the entry screen accepts.
const MinPINLength = 4

// HashPIN validates and hashes a plaintext PIN using bcrypt. PINs shorter
// than MinPINLength are rejected before any hashing happens.
func HashPIN(pin string) (string, error) {
	if len(pin) < MinPINLength {
		return "", fmt.Errorf("%w: PIN must be at least %d characters", apperrors.ErrValidation, MinPINLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPINHash compares a plaintext PIN with a bcrypt hash.
func CheckPINHash(pin, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
