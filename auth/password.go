package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tjhs/sportrental/apperr"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// ValidatePassword checks a plaintext password against the local policy.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return apperr.Validationf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// HashPassword validates and hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
