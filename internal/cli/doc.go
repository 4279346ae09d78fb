// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-interactive command surface of the
// Sentinel client.
//
// Commands either run entirely in the terminal (ask, logs, login, status,
// config) or hand off to the full-screen TUI (the default command). Every
// handler follows the same pattern: parse with ArgParser, do the work,
// return an error for main to turn into an exit code with GetExitCode.
package cli
