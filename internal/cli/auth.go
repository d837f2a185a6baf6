package cli

import (
	"context"
	"fmt"

	"github.com/bloodlink/admincli/internal/models"
)

// readLine and readPassword are indirections used to facilitate testing.
var readLine = ReadLine
var readPassword = ReadPassword

// loginCmd prompts for credentials and a "remember me" choice, then asks the
// session gate to log in. On success the gate has already navigated to the
// default screen; if the guard had remembered a screen the user originally
// asked for, we return there instead.
func (a *App) loginCmd(ctx context.Context) {
	email, err := readLine(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	password, err := readPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	remember, err := ReadBool(a.reader, "Stay logged in on this machine?", false, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	if err := a.gate.Login(ctx, email, password, remember); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err.Error())
		return
	}

	if from := a.router.ConsumeFrom(); from != "" {
		_ = a.router.Navigate(ctx, from)
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", a.gate.User().Email)
	a.listCurrent()
}

// registerCmd exists to keep the auth surface uniform; the gate always
// refuses it for admin accounts.
func (a *App) registerCmd(ctx context.Context) {
	fullName, err := readLine(a.reader, "Full name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	email, err := readLine(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	password, err := readPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	form := models.RegisterForm{FullName: fullName, Email: email, Password: password}
	if err := a.gate.Register(ctx, form); err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err.Error())
		return
	}
}
