// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Shared error handling for the Sentinel CLI commands.
//
// Every handler returns an error; main converts it into an exit code
// with GetExitCode. Handlers never call os.Exit themselves.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/sentinel-tui/internal/config"
	"github.com/jeranaias/sentinel-tui/internal/gateway"
	"github.com/jeranaias/sentinel-tui/internal/identity"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitGeneralError indicates a general or unknown error.
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments.
	ExitUsageError = 2
	// ExitConfigError indicates a configuration error.
	ExitConfigError = 3
	// ExitAuthError indicates an authentication or authorization failure.
	ExitAuthError = 4
	// ExitNetworkError indicates the gateway could not be reached.
	ExitNetworkError = 5
	// ExitTimeoutError indicates a gateway request timed out.
	ExitTimeoutError = 8
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError wraps a failure inside a command handler with context.
type CommandError struct {
	Command string // Command that failed (e.g. "logs", "config")
	Reason  string // Human-readable reason
	Err     error  // Underlying error, if any
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Command, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Command, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError represents invalid arguments to a command.
type UsageError struct {
	Command string
	Reason  string
	Example string
}

func (e *UsageError) Error() string {
	msg := fmt.Sprintf("usage: %s: %s", e.Command, e.Reason)
	if e.Example != "" {
		msg += fmt.Sprintf("\nExample: %s", e.Example)
	}
	return msg
}

// PermissionError represents an authorization failure.
type PermissionError struct {
	Action string
	Role   string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s requires the admin role (current role: %s)", e.Action, e.Role)
}

// =============================================================================
// ERROR CONSTRUCTION
// =============================================================================

// NewCommandError creates a CommandError.
func NewCommandError(command, reason string, err error) error {
	return &CommandError{Command: command, Reason: reason, Err: err}
}

// ErrUsage creates a UsageError.
func ErrUsage(command, reason, example string) error {
	return &UsageError{Command: command, Reason: reason, Example: example}
}

// ErrAdminOnly creates a PermissionError for an admin-gated action.
func ErrAdminOnly(action string, role identity.Role) error {
	return &PermissionError{Action: action, Role: role.String()}
}

// =============================================================================
// DISPLAY
// =============================================================================

// DisplayError prints an error in a consistent format. In JSON mode the
// output is a structured object for scripting.
func DisplayError(err error, jsonMode bool) {
	if err == nil {
		return
	}

	if jsonMode {
		out := map[string]any{
			"success": false,
			"error":   err.Error(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
		return
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", errorLabelStyle.Render("[ERROR]"), err.Error())
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// GetExitCode maps an error to its exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	var permErr *PermissionError
	if errors.As(err, &permErr) {
		return ExitAuthError
	}

	if errors.Is(err, identity.ErrNotAuthenticated) || errors.Is(err, identity.ErrInvalidCredentials) {
		return ExitAuthError
	}

	if gateway.IsTimeout(err) {
		return ExitTimeoutError
	}
	if gateway.IsUnreachable(err) || gateway.IsBadResponse(err) || gateway.IsMalformed(err) {
		return ExitNetworkError
	}

	var cfgErr config.ValidationError
	var cfgErrs config.ValidateErrors
	if errors.As(err, &cfgErr) || errors.As(err, &cfgErrs) {
		return ExitConfigError
	}

	return ExitGeneralError
}
