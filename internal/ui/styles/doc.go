// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the Sentinel TUI.
//
// All colors are defined as lipgloss.AdaptiveColor pairs so the same theme
// works on light and dark terminal backgrounds. The Theme struct bundles
// every style the views need; construct one with NewTheme at startup and
// pass it down.
//
// # Key Types
//
//   - Theme: all configured lipgloss styles plus terminal capability flags
//   - StatusIndicatorSet: ASCII shape indicators for colorblind accessibility
//
// # Usage
//
//	theme := styles.NewTheme()
//	fmt.Println(theme.VerdictBlocked.Render("BLOCKED"))
package styles
