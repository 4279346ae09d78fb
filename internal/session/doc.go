// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the chat transcript and its single-flight submission
// discipline.
//
// Exactly one prompt may be in flight at a time. Submitting while busy is a
// silent no-op. Every accepted submission eventually settles with either a
// gateway reply or a connection-error message, and each settled exchange
// grows the transcript by exactly two messages.
//
// # Key Types
//
//   - Controller: transcript + single-flight state machine
//   - Receipt: handle returned by Begin, used to settle or fail the attempt
//
// # Usage
//
// Event-driven callers (the TUI) drive the controller with Begin/Settle/Fail
// from their update loop. Blocking callers (the CLI) use Submit, which wraps
// the same lifecycle around a synchronous gateway call.
package session
