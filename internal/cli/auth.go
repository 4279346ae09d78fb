// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// auth.go - Login, logout, and whoami command handlers.
//
// Commands:
//   login [email]    Sign in; the password is read without echo
//   logout           Sign out
//   whoami           Show the current operator
//
// Examples:
//   sentinel login admin@sentinel.ai
//   sentinel whoami --json

package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jeranaias/sentinel-tui/internal/identity"
	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// =============================================================================
// LOGIN
// =============================================================================

// HandleLogin handles the "login" command.
func HandleLogin(args Args) error {
	parser := NewArgParser(args.Rest)
	store := openStore()

	if current := store.Current(); current != nil {
		fmt.Printf("Already signed in as %s. Run 'sentinel logout' first to switch.\n", current.Email)
		return nil
	}

	email := parser.Positional(0)
	if email == "" {
		var err error
		email, err = promptLine("Email: ")
		if err != nil {
			return NewCommandError("login", "could not read email", err)
		}
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrUsage("login", "an email is required", "sentinel login admin@sentinel.ai")
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return NewCommandError("login", "could not read password", err)
	}

	user, err := store.Login(email, password)
	if err != nil {
		return err
	}

	fmt.Println(styles.RenderSuccess(fmt.Sprintf("Signed in as %s (%s)", user.Name, user.Role)))
	return nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read when piped.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	if IsStdinTTY() {
		passBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(passBytes), nil
	}

	return promptLine("")
}

// promptLine reads one line from stdin.
func promptLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Print(prompt)
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// =============================================================================
// LOGOUT
// =============================================================================

// HandleLogout handles the "logout" command.
func HandleLogout(args Args) error {
	store := openStore()

	user := store.Current()
	if user == nil {
		fmt.Println("Not signed in.")
		return nil
	}

	if err := store.Logout(); err != nil {
		return NewCommandError("logout", "could not clear the session", err)
	}

	fmt.Println(styles.RenderSuccess(fmt.Sprintf("Signed out %s", user.Email)))
	return nil
}

// =============================================================================
// WHOAMI
// =============================================================================

// HandleWhoami handles the "whoami" command.
func HandleWhoami(args Args) error {
	store := openStore()
	user, err := requireLogin(store)
	if err != nil {
		return err
	}

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"email": user.Email,
			"name":  user.Name,
			"role":  string(user.Role),
			"admin": user.IsAdmin(),
		})
	}

	printKV("Email", user.Email)
	printKV("Name", user.Name)
	printKV("Role", roleLabel(user.Role))
	return nil
}

// roleLabel renders the role with its badge color.
func roleLabel(role identity.Role) string {
	if role == identity.RoleAdmin {
		return okStyle.Render(string(role))
	}
	return string(role)
}
