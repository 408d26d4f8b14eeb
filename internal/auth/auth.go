// Package auth implements the sign-in gate. No credential is verified: a
// successful login only carries the email forward for display.
package auth

import (
	"errors"
	"strings"
)

var (
	// ErrMissingEmail is returned when no email was entered.
	ErrMissingEmail = errors.New("email is required")
	// ErrMissingPassword is returned when no password was entered.
	ErrMissingPassword = errors.New("password is required")
	// ErrPasswordMismatch is returned by Signup when the confirmation differs.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Identity is the signed-in user.
type Identity struct {
	Email string
}

// Login signs a user in.
func Login(email, password string) (Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Identity{}, ErrMissingEmail
	}
	if password == "" {
		return Identity{}, ErrMissingPassword
	}
	return Identity{Email: email}, nil
}

// Signup creates an account and signs it in. The password must match its
// confirmation.
func Signup(email, password, confirm string) (Identity, error) {
	if password != confirm {
		return Identity{}, ErrPasswordMismatch
	}
	return Login(email, password)
}

// Initials returns the first two characters of the email, upper-cased.
func (i Identity) Initials() string {
	r := []rune(i.Email)
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

// SignedIn reports whether the identity came from a successful login.
func (i Identity) SignedIn() bool {
	return i.Email != ""
}
