package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/thentamil/novelreader/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
// On success the session is already persisted by the auth service; the
// command only updates the prompt identity.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.auth.Login(ctx, models.LoginPayload{Email: email, Password: password})
	if err != nil {
		printError(err)
		return err
	}

	a.setIdentity(&resp.User)
	fmt.Printf("Logged in as %s\n", a.userName)
	return nil
}

// Signup prompts for a new account and logs the user in on success.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.auth.Signup(ctx, models.SignupPayload{Name: name, Email: email, Password: password})
	if err != nil {
		printError(err)
		return err
	}

	a.setIdentity(&resp.User)
	fmt.Printf("Welcome, %s!\n", a.userName)
	return nil
}

func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.auth.ForgotPassword(ctx, email)
	if err != nil {
		printError(err)
		return err
	}

	fmt.Println(msg)
	return nil
}

func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.auth.ResetPassword(ctx, token, password)
	if err != nil {
		printError(err)
		return err
	}

	fmt.Println(msg)
	return nil
}

// Logout aborts in-flight reads, clears the persisted session and drops the
// in-memory identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printError(err)
		return err
	}
	a.clearIdentity()
	fmt.Println("Logged out.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		printError(err)
		return err
	}
	if u == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> role=%s\n", u.Name, u.Email, u.Role)
	return nil
}
