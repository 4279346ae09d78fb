// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat transcripts and audit logs.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Sentinel AI"
	case RoleSystem:
		return "System"
	default:
		return string(r)
	}
}

// =============================================================================
// VERDICT TYPE
// =============================================================================

// Verdict is the binary outcome of the gateway's security evaluation.
type Verdict string

const (
	VerdictClean   Verdict = "CLEAN"
	VerdictBlocked Verdict = "BLOCKED"
)

// String returns the string representation of the verdict.
func (v Verdict) String() string {
	return string(v)
}

// VerdictInfo holds the security evaluation attached to a gateway reply.
type VerdictInfo struct {
	// Verdict is CLEAN or BLOCKED.
	Verdict Verdict `json:"verdict"`

	// Score is the gateway's confidence that the prompt is safe, in [0,1].
	Score float64 `json:"score"`

	// RedactedEntities lists the canonical entity labels (EMAIL, SSN, ...)
	// that were redacted from the prompt before it reached the model.
	// Always non-nil; empty when nothing was redacted.
	RedactedEntities []string `json:"redacted_entities"`
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a chat transcript.
//
// Messages are created only by the session controller: one per user
// submission, one per gateway reply or error. They live only for the
// process lifetime and are never persisted.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content
	Content string `json:"content"`

	// SecurityInfo is set on gateway replies (assistant and blocked system
	// messages). It is nil on user messages and on connection-error messages.
	SecurityInfo *VerdictInfo `json:"security_info,omitempty"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role Role, content string) *Message {
	return &Message{
		ID:        generateID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) *Message {
	return NewMessage(RoleUser, content)
}

// NewAssistantMessage creates a new assistant message carrying verdict info.
func NewAssistantMessage(content string, info VerdictInfo) *Message {
	msg := NewMessage(RoleAssistant, content)
	msg.SecurityInfo = &info
	return msg
}

// NewSystemMessage creates a new system message without verdict info.
func NewSystemMessage(content string) *Message {
	return NewMessage(RoleSystem, content)
}

// NewBlockedMessage creates a system message for a blocked prompt,
// carrying the verdict info that explains the block.
func NewBlockedMessage(content string, info VerdictInfo) *Message {
	msg := NewMessage(RoleSystem, content)
	msg.SecurityInfo = &info
	return msg
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// IsBlocked reports whether this message carries a BLOCKED verdict.
func (m *Message) IsBlocked() bool {
	return m.SecurityInfo != nil && m.SecurityInfo.Verdict == VerdictBlocked
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxLen {
		return m.Content
	}
	return string(runes[:maxLen-3]) + "..."
}

// IsEmpty returns true if the message has no content.
func (m *Message) IsEmpty() bool {
	return len(m.Content) == 0
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateID creates a unique message ID.
func generateID() string {
	return "msg_" + uuid.NewString()
}
