package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and creates a new
// account. On success the session token returned by the server is installed
// and the client is logged in. The password byte slice is wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Register(ctx, email, string(password)); err != nil {
		return err
	}

	a.email = email
	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and authenticates. On success the
// session token is installed. The password byte slice is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, email, string(password)); err != nil {
		return err
	}

	a.email = email
	fmt.Println("Logged in")
	return nil
}

// Logout forgets the session token. The server keeps no session state, so
// there is nothing to revoke remotely.
func (a *App) Logout(ctx context.Context) error {
	a.api.ClearToken()
	a.email = ""
	a.lastList = nil
	return nil
}
