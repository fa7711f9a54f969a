// Package preferences owns the persisted UI preference state. The only
// preference today is the display mode; it follows the same
// restore-then-mutate pattern as the session store.
package preferences

import (
	"context"
	"errors"
	"sync"

	"github.com/mkravets/appstate/internal/kvstore"
	"github.com/mkravets/appstate/internal/logging"
)

// ModeKey is the fixed key the display mode literal lives under.
const ModeKey = "preferences.mode"

// Mode is the display mode. It is stored as its literal string.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// parseMode adopts only the two recognized literals; anything else keeps
// the default.
func parseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeLight, ModeDark:
		return Mode(s), true
	}
	return ModeLight, false
}

// State is a snapshot of the preference store. IsLoading is true only
// during the one-time startup restore.
type State struct {
	Mode      Mode
	IsLoading bool
}

// Store holds the display mode and persists it best-effort. The in-memory
// value is authoritative immediately; durability only matters to the next
// cold start.
type Store struct {
	kv  kvstore.Store
	log logging.Logger

	mu      sync.RWMutex
	state   State
	subs    map[int]func(State)
	nextSub int
}

// NewStore constructs a preference store in the loading state with the
// default mode. Call Restore once at process start.
func NewStore(kv kvstore.Store, log logging.Logger) *Store {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Store{
		kv:    kv,
		log:   log.With("store", "preferences"),
		state: State{Mode: ModeLight, IsLoading: true},
		subs:  make(map[int]func(State)),
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

func (s *Store) setState(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
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

// Restore performs the one-time startup read. Unrecognized or missing
// values keep the default; IsLoading always resolves to false.
func (s *Store) Restore(ctx context.Context) {
	mode := ModeLight

	raw, err := s.kv.Get(ctx, ModeKey)
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
		// nothing persisted, keep the default
	case err != nil:
		s.log.Warn(ctx, "preference restore read failed, keeping default", "error", err)
	default:
		parsed, ok := parseMode(raw)
		if !ok {
			s.log.Warn(ctx, "ignoring unrecognized persisted mode", "value", raw)
		}
		mode = parsed
	}

	s.setState(func(st *State) {
		st.Mode = mode
		st.IsLoading = false
	})
}

// Toggle flips the mode. The flip is authoritative immediately; the write
// behind it is best-effort and never reverts it.
func (s *Store) Toggle(ctx context.Context) {
	var next Mode
	s.setState(func(st *State) {
		if st.Mode == ModeLight {
			st.Mode = ModeDark
		} else {
			st.Mode = ModeLight
		}
		next = st.Mode
	})

	if err := s.kv.Set(ctx, ModeKey, string(next)); err != nil {
		s.log.Warn(ctx, "failed to persist mode", "error", err, "mode", next)
	}
}
