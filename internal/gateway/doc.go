// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gateway provides the HTTP client for the Sentinel orchestrator API.
//
// The orchestrator sits between this client and the language model: every
// prompt is routed through threat scoring (shield) and PII redaction (scrub)
// before it may reach the model. This package covers the two endpoints the
// client consumes:
//
//   - POST {base}/chat  - submit a prompt, receive verdict + output
//   - GET  {base}/logs  - fetch the audit trail
//
// Errors are categorized into a small taxonomy (ErrTypeUnreachable,
// ErrTypeBadResponse, ErrTypeMalformed) so callers can render them without
// string matching. All calls take a context and never panic on malformed
// backend payloads.
package gateway
