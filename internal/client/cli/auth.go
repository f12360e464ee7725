package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/warnwave/warnwave-cli/internal/common"
)

// test seams
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register opens the register form, collects credentials and creates an
// account. A successful registration also logs the user in.
func (a *App) Register(ctx context.Context) error {
	a.shell.OpenRegister()
	defer a.shell.CloseModals()

	username, err := getSimpleText(a.reader, "Enter username:")
	if err != nil {
		return err
	}

	password, err := getPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, username, password); err != nil {
		log.Printf("Registration failed: %v", err)
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login opens the login form, collects credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	a.shell.OpenLogin()
	defer a.shell.CloseModals()

	username, err := getSimpleText(a.reader, "Enter username:")
	if err != nil {
		return err
	}

	password, err := getPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, username, password); err != nil {
		log.Printf("Login failed: %v", err)
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Logout clears the session, in memory and on disk.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		log.Printf("Logout failed: %v", err)
		return err
	}

	fmt.Println("Logged out.")
	return nil
}
