package cli

import (
	"context"
	"fmt"

	"github.com/mkravets/appstate/internal/session"
)

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	res := a.sessions.Login(ctx, session.LoginCredentials{Email: email, Password: password})
	if !res.OK {
		fmt.Fprintf(a.out, "Login failed: %v\n", res.Err)
		return
	}
	fmt.Fprintf(a.out, "Welcome back, %s!\n", res.User.Name)
}

func (a *App) signup(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	res := a.sessions.Signup(ctx, session.SignupCredentials{Name: name, Email: email, Password: password})
	if !res.OK {
		fmt.Fprintf(a.out, "Signup failed: %v\n", res.Err)
		return
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", res.User.Name)
}

func (a *App) logout(ctx context.Context) {
	a.sessions.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) toggle(ctx context.Context) {
	a.prefs.Toggle(ctx)
	fmt.Fprintf(a.out, "Display mode: %s\n", a.prefs.State().Mode)
}

func (a *App) status() {
	st := a.sessions.State()
	if st.IsAuthenticated {
		fmt.Fprintf(a.out, "Signed in as %s <%s>\n", st.User.Name, st.User.Email)
	} else {
		fmt.Fprintln(a.out, "Not signed in")
	}
	fmt.Fprintf(a.out, "Display mode: %s\n", a.prefs.State().Mode)
}
