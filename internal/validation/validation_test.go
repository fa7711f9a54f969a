package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  error
	}{
		{"valid", "a@b.com", nil},
		{"empty", "", ErrEmailRequired},
		{"whitespace only", "   ", ErrEmailRequired},
		{"missing at", "not-an-email", ErrEmailInvalid},
		{"at is enough", "a@b", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateEmail(tc.email), tc.want)
		})
	}
}

func TestValidatePasswords_AsymmetricFloor(t *testing.T) {
	// Login requires only non-empty; signup enforces the length floor.
	require.NoError(t, ValidateLoginPassword("x"))
	require.ErrorIs(t, ValidateSignupPassword("x"), ErrPasswordTooShort)

	require.ErrorIs(t, ValidateLoginPassword(""), ErrPasswordRequired)
	require.ErrorIs(t, ValidateSignupPassword(""), ErrPasswordRequired)

	require.NoError(t, ValidateSignupPassword("abcdef"))
	require.ErrorIs(t, ValidateSignupPassword("abcde"), ErrPasswordTooShort)
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"valid", "Jo", nil},
		{"empty", "", ErrNameRequired},
		{"whitespace only", "  ", ErrNameRequired},
		{"single rune", "J", ErrNameTooShort},
		{"trimmed single rune", " J ", ErrNameTooShort},
		{"multibyte", "Ж!", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateName(tc.in), tc.want)
		})
	}
}

func TestCheckLogin_FirstViolationWins(t *testing.T) {
	require.ErrorIs(t, CheckLogin("", ""), ErrEmailRequired)
	require.ErrorIs(t, CheckLogin("a@b.com", ""), ErrPasswordRequired)
	require.NoError(t, CheckLogin("a@b.com", "x"))
}

func TestCheckSignup_FirstViolationWins(t *testing.T) {
	require.ErrorIs(t, CheckSignup("", "", ""), ErrNameRequired)
	require.ErrorIs(t, CheckSignup("Jo", "", ""), ErrEmailRequired)
	require.ErrorIs(t, CheckSignup("Jo", "jo@x.com", "abc"), ErrPasswordTooShort)
	require.NoError(t, CheckSignup("Jo", "jo@x.com", "abcdef"))
}

func TestCollect_AgreesWithCheck(t *testing.T) {
	// The collect-all variants must run the same predicates as the
	// short-circuiting ones.
	errs := CollectSignup("", "bad", "abc")
	require.Len(t, errs, 3)
	assert.ErrorIs(t, errs["name"], ErrNameRequired)
	assert.ErrorIs(t, errs["email"], ErrEmailInvalid)
	assert.ErrorIs(t, errs["password"], ErrPasswordTooShort)

	require.Empty(t, CollectSignup("Jo", "jo@x.com", "abcdef"))

	errs = CollectLogin("", "")
	require.Len(t, errs, 2)
	require.Empty(t, CollectLogin("a@b.com", "x"))
}
