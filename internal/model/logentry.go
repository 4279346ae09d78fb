// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "strings"

// =============================================================================
// SEVERITY TYPE
// =============================================================================

// Severity is the qualitative risk level of a logged event.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity normalizes a severity string. Unknown values are passed
// through unchanged so that filtering simply never matches them.
func ParseSeverity(s string) Severity {
	return Severity(strings.ToLower(strings.TrimSpace(s)))
}

// =============================================================================
// STATUS TYPE
// =============================================================================

// Status is the triage state of a logged event.
type Status string

const (
	StatusResolved      Status = "Resolved"
	StatusPending       Status = "Pending"
	StatusInvestigating Status = "Investigating"
	StatusBlocked       Status = "Blocked"
	StatusActive        Status = "Active"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// =============================================================================
// LOG ENTRY TYPE
// =============================================================================

// LogEntry is one row of the gateway audit trail.
//
// Entries are created by the backend and are read-only to this client.
// Once fetched they are immutable for the lifetime of the view; filtering
// never mutates the source collection.
type LogEntry struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	Event     string   `json:"event"`
	Severity  Severity `json:"severity"`
	Status    Status   `json:"status"`

	// Optional attribution
	UserID   string `json:"userId,omitempty"`
	UserName string `json:"userName,omitempty"`

	// Optional prompt/response detail (shown in the expanded row)
	OriginalPrompt string `json:"originalPrompt,omitempty"`
	RedactedPrompt string `json:"redactedPrompt,omitempty"`
	AIResponse     string `json:"aiResponse,omitempty"`

	// Optional security evaluation detail
	SecurityScore    *float64 `json:"securityScore,omitempty"`
	Verdict          Verdict  `json:"verdict,omitempty"`
	LatencyMs        *int     `json:"latencyMs,omitempty"`
	RedactedEntities []string `json:"redactedEntities,omitempty"`
}

// DisplayUser returns the user name or a placeholder when attribution
// is missing.
func (e *LogEntry) DisplayUser() string {
	if e.UserName != "" {
		return e.UserName
	}
	return "Unknown"
}

// HasDetail reports whether the entry has any expanded-row content.
func (e *LogEntry) HasDetail() bool {
	return e.OriginalPrompt != "" || e.RedactedPrompt != "" || e.AIResponse != "" ||
		e.SecurityScore != nil || e.LatencyMs != nil || len(e.RedactedEntities) > 0
}
