// Package validation contains the credential well-formedness rules shared
// by the session store and by UI-level form validators. The functions are
// pure and perform no I/O.
//
// Two consumption styles are provided: Check* helpers short-circuit on the
// first violation (used before any state mutation), Collect* helpers gather
// every field violation for display. Both run the same predicates.
package validation

import (
	"errors"
	"strings"
)

const (
	// MinPasswordLen is the strength floor enforced at signup time.
	// Login deliberately accepts any non-empty password so that accounts
	// created before the floor was raised can still sign in.
	MinPasswordLen = 6

	// MinNameLen is the minimum trimmed length of a signup name.
	MinNameLen = 2
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("email must contain @")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrNameRequired     = errors.New("name is required")
	ErrNameTooShort     = errors.New("name must be at least 2 characters")
)

// ValidateEmail checks that email is non-empty after trimming and
// contains an @.
func ValidateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return ErrEmailRequired
	}
	if !strings.Contains(trimmed, "@") {
		return ErrEmailInvalid
	}
	return nil
}

// ValidateLoginPassword only requires a non-empty password.
func ValidateLoginPassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ValidateSignupPassword additionally enforces MinPasswordLen.
func ValidateSignupPassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateName checks that name is non-empty after trimming and at least
// MinNameLen runes long.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	if len([]rune(trimmed)) < MinNameLen {
		return ErrNameTooShort
	}
	return nil
}

// CheckLogin returns the first rule violation for a login attempt, or nil.
func CheckLogin(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidateLoginPassword(password)
}

// CheckSignup returns the first rule violation for a signup attempt, or nil.
func CheckSignup(name, email, password string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidateSignupPassword(password)
}

// CollectLogin evaluates every login rule and returns violations keyed by
// field name. The map is empty when the input is well-formed.
func CollectLogin(email, password string) map[string]error {
	out := make(map[string]error)
	if err := ValidateEmail(email); err != nil {
		out["email"] = err
	}
	if err := ValidateLoginPassword(password); err != nil {
		out["password"] = err
	}
	return out
}

// CollectSignup evaluates every signup rule and returns violations keyed
// by field name.
func CollectSignup(name, email, password string) map[string]error {
	out := make(map[string]error)
	if err := ValidateName(name); err != nil {
		out["name"] = err
	}
	if err := ValidateEmail(email); err != nil {
		out["email"] = err
	}
	if err := ValidateSignupPassword(password); err != nil {
		out["password"] = err
	}
	return out
}
