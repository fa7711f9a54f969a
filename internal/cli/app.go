// Package cli is the interactive demo shell over the state stores. It is a
// presentation-layer collaborator: it reads state snapshots, invokes store
// operations, and decides how failures are displayed.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"github.com/mkravets/appstate/internal/kvstore"
	"github.com/mkravets/appstate/internal/logging"
	"github.com/mkravets/appstate/internal/preferences"
	"github.com/mkravets/appstate/internal/session"
)

// App wires both state stores, constructed once at process start and
// passed explicitly (no ambient globals).
type App struct {
	sessions *session.Store
	prefs    *preferences.Store
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(kv kvstore.Store, log logging.Logger) *App {
	return &App{
		sessions: session.NewStore(kv, session.NewLocalVerifier(), log),
		prefs:    preferences.NewStore(kv, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

// Restore runs both startup restores. They are independent and may
// interleave; each resolves its own loading flag.
func (a *App) Restore(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.sessions.Restore(ctx)
	}()
	go func() {
		defer wg.Done()
		a.prefs.Restore(ctx)
	}()
	wg.Wait()
}

func (a *App) isLoggedIn() bool {
	return a.sessions.State().IsAuthenticated
}
