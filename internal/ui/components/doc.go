// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the reusable visual components for the
// Sentinel TUI: the bottom status bar, the welcome screen, loading
// spinners, and the error display box.
//
// Components hold no application logic. Views own the state and push it
// in through setters; components only render.
package components
