// Package session owns the client-side authentication state: the current
// user, loading and initialization flags, and the login/signup/logout
// operations. State is persisted best-effort through a key-value store so
// the next cold start can restore the session.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mkravets/appstate/internal/kvstore"
	"github.com/mkravets/appstate/internal/logging"
	"github.com/mkravets/appstate/internal/validation"
)

// UserKey is the fixed key the serialized user record lives under.
// The preference store owns a disjoint key; the namespaces never overlap.
const UserKey = "session.user"

// LoginCredentials are transient login inputs: validated, then discarded.
type LoginCredentials struct {
	Email    string
	Password string
}

// SignupCredentials are transient signup inputs.
type SignupCredentials struct {
	Name     string
	Email    string
	Password string
}

// State is a snapshot of the session. IsAuthenticated always equals
// (User != nil). IsInitializing is true only until the one-time startup
// restore completes.
type State struct {
	User            *User
	IsLoading       bool
	IsAuthenticated bool
	IsInitializing  bool
}

// Result is the structured outcome of a login or signup attempt. How a
// failure is displayed is the presentation layer's concern.
type Result struct {
	OK   bool
	User *User
	Err  error
}

// Store holds session state and coordinates its persistence. Construct one
// per process at startup and pass it to consumers; operations are safe for
// concurrent use and mutations are serialized by an in-flight permit.
type Store struct {
	kv       kvstore.Store
	verifier CredentialVerifier
	log      logging.Logger

	// opMu is the single in-flight session-mutation permit: login, signup,
	// and logout never overlap.
	opMu sync.Mutex

	mu      sync.RWMutex
	state   State
	subs    map[int]func(State)
	nextSub int
}

// NewStore constructs a session store in the initializing state. Call
// Restore once at process start to resolve it. A nil logger is replaced
// with a no-op one.
func NewStore(kv kvstore.Store, verifier CredentialVerifier, log logging.Logger) *Store {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Store{
		kv:       kv,
		verifier: verifier,
		log:      log.With("store", "session"),
		state:    State{IsInitializing: true},
		subs:     make(map[int]func(State)),
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// setState applies mutate under the lock, then notifies subscribers with
// the resulting snapshot outside of it.
func (s *Store) setState(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	s.state.IsAuthenticated = s.state.User != nil
	snapshot := s.state
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Restore performs the one-time startup read of the persisted user record.
// It always resolves IsInitializing to false: a read failure or an
// unparseable record resolves to the unauthenticated state rather than a
// stale session or an indefinite loading state.
func (s *Store) Restore(ctx context.Context) {
	var user *User

	raw, err := s.kv.Get(ctx, UserKey)
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
		// nothing persisted, start logged out
	case err != nil:
		s.log.Warn(ctx, "session restore read failed, starting logged out", "error", err)
	default:
		user, err = unmarshalUser(raw)
		if err != nil {
			s.log.Warn(ctx, "persisted session record is invalid, starting logged out", "error", err)
			user = nil
		}
	}

	s.setState(func(st *State) {
		st.User = user
		st.IsInitializing = false
		st.IsLoading = false
	})
}

// Login validates the credentials, runs the authentication check, and on
// success installs the new user and persists it. Persistence failures are
// logged and swallowed: in-memory state is the authoritative client-side
// truth, durability only affects the next cold start.
func (s *Store) Login(ctx context.Context, creds LoginCredentials) Result {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := validation.CheckLogin(creds.Email, creds.Password); err != nil {
		return Result{Err: err}
	}

	s.setState(func(st *State) { st.IsLoading = true })

	user, err := s.verifier.Verify(ctx, creds)
	if err != nil {
		s.setState(func(st *State) { st.IsLoading = false })
		return Result{Err: err}
	}

	s.setState(func(st *State) {
		st.User = user
		st.IsLoading = false
	})
	s.persistUser(ctx, user)

	return Result{OK: true, User: user}
}

// Signup validates the inputs (including the password strength floor that
// login deliberately does not enforce), creates a new user with a fresh ID
// and the given name, and installs and persists it like Login.
func (s *Store) Signup(ctx context.Context, creds SignupCredentials) Result {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := validation.CheckSignup(creds.Name, creds.Email, creds.Password); err != nil {
		return Result{Err: err}
	}

	s.setState(func(st *State) { st.IsLoading = true })

	user := &User{
		ID:    uuid.NewString(),
		Email: strings.TrimSpace(creds.Email),
		Name:  strings.TrimSpace(creds.Name),
	}

	s.setState(func(st *State) {
		st.User = user
		st.IsLoading = false
	})
	s.persistUser(ctx, user)

	return Result{OK: true, User: user}
}

// Logout removes the persisted record and resets the state. It never fails
// visibly: a failed remove is logged and the in-memory reset happens
// regardless. Calling it twice is safe.
func (s *Store) Logout(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.kv.Remove(ctx, UserKey); err != nil {
		s.log.Warn(ctx, "failed to remove persisted session", "error", err)
	}

	s.setState(func(st *State) {
		st.User = nil
		st.IsLoading = false
		st.IsInitializing = false
	})
}

func (s *Store) persistUser(ctx context.Context, u *User) {
	raw, err := marshalUser(u)
	if err != nil {
		s.log.Error(ctx, "failed to serialize session for persistence", "error", err)
		return
	}
	if err := s.kv.Set(ctx, UserKey, raw); err != nil {
		s.log.Warn(ctx, "failed to persist session", "error", err, "user_id", u.ID)
	}
}
