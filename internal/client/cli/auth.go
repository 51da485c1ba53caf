package cli

import (
	"context"
	"errors"
	"fmt"
)

var errPasswordMismatch = errors.New("passwords do not match")

func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	password, err := a.newPassword("Enter password")
	if err != nil {
		a.printErr(err)
		return err
	}

	if err := a.client.Register(ctx, userName, password); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Registered. You can log in now.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	password, err := GetHidden(a.reader, "Enter password", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	expiresAt, err := a.client.Login(ctx, userName, password)
	if err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Login successful, session valid until %s\n", expiresAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := GetHidden(a.reader, "Enter current password", a.out)
	if err != nil {
		a.printErr(err)
		return err
	}

	newPassword, err := a.newPassword("Enter new password")
	if err != nil {
		a.printErr(err)
		return err
	}

	if err := a.client.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		a.printErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

// Whoami prints the logged in account as the server records it.
func (a *App) Whoami(ctx context.Context) error {
	p, err := a.client.Profile(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}

	lastLogin := "never"
	if p.GetLastLoginAt() != nil {
		lastLogin = formatTime(p.GetLastLoginAt())
	}
	fmt.Fprintf(a.out, "User:       %s\n", p.GetUsername())
	fmt.Fprintf(a.out, "ID:         %s\n", p.GetUserId())
	fmt.Fprintf(a.out, "Created:    %s\n", formatTime(p.GetCreatedAt()))
	fmt.Fprintf(a.out, "Last login: %s\n", lastLogin)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// newPassword reads a password twice and checks both entries match.
func (a *App) newPassword(prompt string) (string, error) {
	password, err := GetHidden(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	confirm, err := GetHidden(a.reader, "Repeat password", a.out)
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", errPasswordMismatch
	}
	return password, nil
}
