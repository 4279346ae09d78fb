// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view for the Sentinel TUI.
//
// The view renders the session transcript in a scrollable viewport with a
// single-line prompt input underneath. Submissions go through the session
// controller, which enforces the one-in-flight discipline; the view only
// reflects controller state and never mutates the transcript directly.
//
// Gateway calls run as Bubble Tea commands. Each command carries the
// exchange sequence number it was issued for, so a reply landing after the
// transcript moved on is dropped by the controller rather than misfiled.
package chat
