package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/appstate/internal/kvstore"
)

// newTestApp builds an App over an in-memory store with scripted input
// and captured output.
func newTestApp(t *testing.T, kv kvstore.Store, input string) (*App, *bytes.Buffer) {
	t.Helper()
	a := NewApp(kv, nil)
	var out bytes.Buffer
	a.reader = bufio.NewReader(strings.NewReader(input))
	a.out = &out
	return a, &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte(pw), nil }
}

func TestApp_Restore_ResolvesBothStores(t *testing.T) {
	a, _ := newTestApp(t, kvstore.NewMemoryStore(), "")

	a.Restore(context.Background())

	assert.False(t, a.sessions.State().IsInitializing)
	assert.False(t, a.prefs.State().IsLoading)
	assert.False(t, a.isLoggedIn())
}

func TestApp_LoginCommand(t *testing.T) {
	stubPassword(t, "x")
	kv := kvstore.NewMemoryStore()
	a, out := newTestApp(t, kv, "a@b.com\n")
	a.Restore(context.Background())

	a.login(context.Background())

	require.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Welcome back, a!")

	// the record made it to the backend
	_, err := kv.Get(context.Background(), "session.user")
	require.NoError(t, err)
}

func TestApp_LoginCommand_ShowsValidationError(t *testing.T) {
	stubPassword(t, "x")
	a, out := newTestApp(t, kvstore.NewMemoryStore(), "not-an-email\n")
	a.Restore(context.Background())

	a.login(context.Background())

	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Login failed")
}

func TestApp_SignupThenLogout(t *testing.T) {
	stubPassword(t, "abcdef")
	a, out := newTestApp(t, kvstore.NewMemoryStore(), "Jo\njo@x.com\n")
	a.Restore(context.Background())

	a.signup(context.Background())
	require.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Welcome, Jo!")

	a.logout(context.Background())
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Logged out")
}

func TestApp_ToggleAndStatus(t *testing.T) {
	a, out := newTestApp(t, kvstore.NewMemoryStore(), "")
	a.Restore(context.Background())

	a.toggle(context.Background())
	assert.Contains(t, out.String(), "Display mode: dark")

	a.status()
	assert.Contains(t, out.String(), "Not signed in")
}
