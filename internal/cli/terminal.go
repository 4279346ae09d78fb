// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - TTY detection and terminal geometry helpers.

package cli

import (
	"os"

	"golang.org/x/term"
)

// IsStdinTTY reports whether stdin is an interactive terminal.
func IsStdinTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY reports whether stdout is an interactive terminal.
// Markdown rendering and color are disabled when piping.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the terminal width, or 80 when it cannot be
// determined.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
