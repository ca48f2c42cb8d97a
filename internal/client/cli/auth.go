package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/salesmatch/internal/client/controller"
	"github.com/dmitrijs2005/salesmatch/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and starts a session. Any non-empty
// pair is accepted by the backend. On success the account list is loaded
// afresh with default criteria and shown.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	creds := session.Credentials{Username: userName, Password: string(password)}
	if err := a.service.Authenticate(ctx, creds); err != nil {
		a.notifier.Error("Login failed: " + controller.Message(err))
		return err
	}

	a.setUserName(userName)
	a.notifier.Success("Login successful")

	a.controller.Reset()
	if err := a.controller.Activate(ctx); err != nil {
		return err
	}
	return a.render()
}

// Logout ends the session locally, then asks the backend to reset the demo
// data. The local session is gone even if the backend call fails.
func (a *App) Logout(ctx context.Context) error {
	a.controller.Reset()
	a.setUserName("")

	err := a.service.Logout(ctx)
	if err != nil {
		a.logger.Warn(ctx, "backend logout failed", "error", err)
		a.notifier.Error(controller.Message(err))
	}

	fmt.Fprintln(a.out, "Logged out")
	return err
}
