package auth

import (
	"errors"
	"testing"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"ok", "ana@uni.edu", "pw", nil},
		{"trims email", "  ana@uni.edu ", "pw", nil},
		{"missing email", " ", "pw", ErrMissingEmail},
		{"missing password", "ana@uni.edu", "", ErrMissingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Login(tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && id.Email != "ana@uni.edu" {
				t.Fatalf("Email = %q", id.Email)
			}
		})
	}
}

func TestSignup_RequiresMatchingConfirmation(t *testing.T) {
	if _, err := Signup("a@b.c", "one", "two"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("Signup mismatch err = %v, want ErrPasswordMismatch", err)
	}
	id, err := Signup("a@b.c", "same", "same")
	if err != nil || !id.SignedIn() {
		t.Fatalf("Signup = %+v, %v", id, err)
	}
}

func TestInitials(t *testing.T) {
	for email, want := range map[string]string{
		"sam@uni.edu": "SA",
		"q":           "Q",
		"":            "",
	} {
		if got := (Identity{Email: email}).Initials(); got != want {
			t.Errorf("Initials(%q) = %q, want %q", email, got, want)
		}
	}
}
