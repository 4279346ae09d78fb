// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package verdict turns raw gateway chat responses into display-ready
// transcript messages.
//
// The interpretation rules are pure: no I/O, no clock, no randomness beyond
// message ID generation. Given the same response the interpreter always
// produces the same role, content, verdict, score, and redaction summary.
package verdict

import (
	"strings"

	"github.com/jeranaias/sentinel-tui/internal/gateway"
	"github.com/jeranaias/sentinel-tui/internal/model"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// BlockedBanner is prepended to the block reason when a prompt is stopped.
const BlockedBanner = "🛡️ **Security Violation: Blocked by Sentinel**\n\n"

// ConnectionErrorMessage is shown in place of a reply when the orchestrator
// cannot be reached or answers unusably.
const ConnectionErrorMessage = "⚠️ **Connection Error**: Could not reach the security orchestrator."

// Default scores used when the shield stage reported nothing.
const (
	defaultBlockedScore = 0.0
	defaultCleanScore   = 1.0
)

// =============================================================================
// INTERPRETATION
// =============================================================================

// Interpret converts a gateway chat response into the transcript message
// that represents it.
//
// Blocked responses become system messages with the block banner prepended
// to the reason. Clean responses become assistant messages with the raw
// output. Both carry VerdictInfo with the shield score (defaulted when
// absent) and the deduplicated redaction summary.
func Interpret(resp *gateway.ChatResponse) *model.Message {
	info := buildInfo(resp)

	if resp.Blocked {
		return model.NewBlockedMessage(BlockedBanner+resp.Output, info)
	}
	return model.NewAssistantMessage(resp.Output, info)
}

// InterpretError converts a gateway call failure into the system message
// that represents it. All failure categories render the same way; the
// distinction only matters for logging.
func InterpretError(err error) *model.Message {
	_ = err
	return model.NewSystemMessage(ConnectionErrorMessage)
}

// buildInfo assembles the VerdictInfo for a response, applying the score
// defaults and deriving the redaction summary on the clean path.
func buildInfo(resp *gateway.ChatResponse) model.VerdictInfo {
	info := model.VerdictInfo{
		Verdict:          model.VerdictClean,
		RedactedEntities: []string{},
	}
	if resp.Blocked {
		info.Verdict = model.VerdictBlocked
		info.Score = defaultBlockedScore
	} else {
		info.Score = defaultCleanScore
	}

	if resp.Meta != nil {
		if resp.Meta.Shield != nil && resp.Meta.Shield.SecurityScore != nil {
			info.Score = *resp.Meta.Shield.SecurityScore
		}
		// Redactions are a clean-path annotation; a scrub map on a
		// blocked response is ignored.
		if !resp.Blocked && resp.Meta.Scrub != nil {
			info.RedactedEntities = SummarizeRedactions(resp.Meta.Scrub.Redactions)
		}
	}

	return info
}

// =============================================================================
// REDACTION SUMMARY
// =============================================================================

// SummarizeRedactions reduces a scrubber redaction map to the ordered,
// deduplicated list of entity labels it touched.
//
// Keys arrive decorated ("[EMAIL_1]", "[SSN_2]") and are stripped to their
// canonical label. Duplicate labels keep their first-seen position. Keys
// that don't match any known decoration pass through unchanged rather than
// being dropped; a surprising key is still worth showing.
//
// The result is always non-nil.
func SummarizeRedactions(redactions map[string]string) []string {
	labels := make([]string, 0, len(redactions))
	seen := make(map[string]struct{}, len(redactions))

	for _, key := range sortedKeys(redactions) {
		label := ParseRedactionKey(key)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	return labels
}

// ParseRedactionKey strips the scrubber's placeholder decoration from a
// redaction key, returning the canonical entity label.
//
//	"[EMAIL_1]" -> "EMAIL"
//	"<SSN>"     -> "SSN"
//	"PHONE"     -> "PHONE" (unrecognized form, passed through)
func ParseRedactionKey(key string) string {
	switch {
	case strings.HasPrefix(key, "[") && strings.HasSuffix(key, "]"):
		inner := key[1 : len(key)-1]
		return stripIndexSuffix(inner)
	case strings.HasPrefix(key, "<") && strings.HasSuffix(key, ">"):
		return stripIndexSuffix(key[1 : len(key)-1])
	default:
		return key
	}
}

// stripIndexSuffix removes a trailing "_<digits>" counter from a label.
// "EMAIL_1" -> "EMAIL"; "EMAIL" and "EMAIL_X" are left alone.
func stripIndexSuffix(label string) string {
	idx := strings.LastIndexByte(label, '_')
	if idx < 0 || idx == len(label)-1 {
		return label
	}
	for _, r := range label[idx+1:] {
		if r < '0' || r > '9' {
			return label
		}
	}
	return label[:idx]
}

// sortedKeys returns the map keys in deterministic order. Go map iteration
// is randomized, and the summary's "first-seen" ordering must be stable
// across runs of the same response.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Insertion sort; redaction maps are tiny.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}
