// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat transcripts and audit logs.
//
// This package defines the core domain types used throughout the application
// for representing transcript messages, security verdicts, and audit log
// entries fetched from the Sentinel gateway.
//
// # Key Types
//
//   - Message: Single transcript message with role, content, timestamp, and
//     optional security verdict information
//   - VerdictInfo: Outcome of the gateway's security evaluation for a prompt
//   - LogEntry: One row of the gateway audit trail (read-only to this client)
//   - Role: Message role enumeration (user, assistant, system)
//
// # Usage
//
// Create transcript messages:
//
//	msg := model.NewUserMessage("what is python")
//	reply := model.NewAssistantMessage("Python is ...", model.VerdictInfo{
//	    Verdict: model.VerdictClean,
//	    Score:   1,
//	})
package model
