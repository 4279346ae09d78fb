// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gateway

// =============================================================================
// CHAT REQUEST / RESPONSE TYPES
// =============================================================================

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	// Prompt is the user's natural-language prompt.
	Prompt string `json:"prompt"`

	// Model is the model identifier the orchestrator should route to
	// (e.g. "gemini-2.5-flash"). Optional; the orchestrator has a default.
	Model string `json:"model,omitempty"`
}

// ChatResponse is the body of a successful POST /chat.
//
// Every field below Blocked/Output is optional on the wire; consumers must
// tolerate absence (see the verdict package for the defaulting rules).
type ChatResponse struct {
	// Blocked reports whether the prompt was stopped by security policy.
	Blocked bool `json:"blocked"`

	// Output is the model reply (CLEAN) or the block reason (BLOCKED).
	Output string `json:"output"`

	// Meta carries the shield and scrubber evaluations, when present.
	Meta *Meta `json:"meta,omitempty"`
}

// Meta holds the per-stage evaluations attached to a chat response.
type Meta struct {
	Shield *ShieldMeta `json:"shield,omitempty"`
	Scrub  *ScrubMeta  `json:"scrub,omitempty"`
}

// ShieldMeta is the threat-scoring stage result.
type ShieldMeta struct {
	// SecurityScore is the shield's confidence the prompt is safe, in [0,1].
	SecurityScore *float64 `json:"security_score,omitempty"`
}

// ScrubMeta is the PII-redaction stage result.
type ScrubMeta struct {
	// Redactions maps decorated placeholder keys (e.g. "[EMAIL_1]") to the
	// original spans they replaced.
	Redactions map[string]string `json:"redactions,omitempty"`
}

// =============================================================================
// WIRE DECODING HELPERS
// =============================================================================

// chatResponseWire mirrors ChatResponse with pointer fields so that a body
// missing the expected shape entirely can be detected instead of silently
// zero-valued.
type chatResponseWire struct {
	Blocked *bool   `json:"blocked"`
	Output  *string `json:"output"`
	Meta    *Meta   `json:"meta"`
}

// errorEnvelope is the degenerate object shape some endpoints return in
// place of their success payload (e.g. {"detail": "unauthorized"}).
type errorEnvelope struct {
	Detail  string `json:"detail"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// message returns the first non-empty field of the envelope.
func (e errorEnvelope) message() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Error != "":
		return e.Error
	default:
		return e.Message
	}
}
