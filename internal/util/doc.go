// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the Sentinel client.
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth, PadRight: display-width helpers for the log table
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	// Truncate long strings safely for display
//	display := util.TruncateRunes(longText, 50)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0600)
package util
