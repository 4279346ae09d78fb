// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/jeranaias/sentinel-tui/internal/gateway"
)

// =============================================================================
// GATEWAY MESSAGES
// =============================================================================

// VerdictMsg delivers the gateway's reply for a submitted prompt.
type VerdictMsg struct {
	Seq      uint64
	Response *gateway.ChatResponse
}

// VerdictErrMsg delivers a gateway failure for a submitted prompt.
type VerdictErrMsg struct {
	Seq uint64
	Err error
}

// GatewayStatusMsg reports gateway reachability from a health probe.
type GatewayStatusMsg struct {
	Running bool
}

// =============================================================================
// UI MESSAGES
// =============================================================================

// ClearTranscriptMsg requests that the visible transcript be cleared.
type ClearTranscriptMsg struct{}
