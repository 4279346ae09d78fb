// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logs provides the audit trail view for the Sentinel TUI.
//
// The view is a filterable table over the gateway's audit log. Text,
// severity, and category predicates are delegated to the auditlog engine;
// the view owns only presentation state (cursor position and the filter
// input widget). Selecting a row and pressing Enter expands it in place to
// show the prompt, the redacted prompt, the model reply, and the security
// evaluation. At most one row is expanded at a time.
package logs
