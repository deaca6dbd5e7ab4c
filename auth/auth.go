// Package auth verifies user credentials and issues session tokens.
// There is no bypass credential of any kind: every login goes through the
// same bcrypt comparison.
package auth

import (
	"fmt"
	"log/slog"

	"github.com/tjhs/sportrental/apperr"
	"github.com/tjhs/sportrental/model"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so callers cannot tell which one failed.
var ErrInvalidCredentials = apperr.Unauthorizedf("invalid credentials")

// UserLookup is the subset of the store needed to authenticate.
type UserLookup interface {
	GetUserByEmail(email string) (*model.User, error)
}

// Authenticate verifies an email/password pair and issues a session token.
func Authenticate(users UserLookup, secret, email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperr.Validationf("email and password are required")
	}

	u, err := users.GetUserByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("looking up user: %w", err)
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !CheckPassword(u.PasswordHash, password) {
		slog.Warn("login failed", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(secret, u)
	if err != nil {
		return nil, "", fmt.Errorf("generating token: %w", err)
	}

	slog.Info("user logged in", "email", u.Email, "role", u.Role)
	return u, token, nil
}
