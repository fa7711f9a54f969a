package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) prompt() string {
	st := a.sessions.State()
	who := ""
	if st.IsAuthenticated {
		who = st.User.Name
	}
	mode := a.prefs.State().Mode
	if who != "" {
		return fmt.Sprintf("appstate (%s %s)> ", who, mode)
	}
	return fmt.Sprintf("appstate (%s)> ", mode)
}

// Run is the interactive command loop. It returns when the user quits or
// stdin closes.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to appstate (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprint(a.out, a.prompt())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: status, toggle, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, signup, status, toggle, exit")
			}
		case "login":
			a.login(ctx)
		case "signup":
			a.signup(ctx)
		case "logout":
			a.logout(ctx)
		case "toggle":
			a.toggle(ctx)
		case "status":
			a.status()
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
