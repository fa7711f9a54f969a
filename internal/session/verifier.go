package session

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrAuthenticationFailed is returned by a CredentialVerifier when the
// credentials are well-formed but rejected.
var ErrAuthenticationFailed = errors.New("authentication failed")

// CredentialVerifier performs the authentication check for login.
// Production implementations verify against a backend; the store's contract
// does not change when one is swapped in.
type CredentialVerifier interface {
	Verify(ctx context.Context, creds LoginCredentials) (*User, error)
}

// LocalVerifier accepts any well-formed credentials and manufactures a user
// record with a fresh ID and a name derived from the email local-part.
// It is a development stand-in, not a security boundary.
type LocalVerifier struct{}

func NewLocalVerifier() *LocalVerifier { return &LocalVerifier{} }

func (v *LocalVerifier) Verify(ctx context.Context, creds LoginCredentials) (*User, error) {
	email := strings.TrimSpace(creds.Email)
	return &User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  emailLocalPart(email),
	}, nil
}

func emailLocalPart(email string) string {
	return strings.SplitN(email, "@", 2)[0]
}

var _ CredentialVerifier = (*LocalVerifier)(nil)
