// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package verdict

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jeranaias/sentinel-tui/internal/gateway"
	"github.com/jeranaias/sentinel-tui/internal/model"
)

func scorePtr(v float64) *float64 { return &v }

// =============================================================================
// INTERPRET TESTS
// =============================================================================

func TestInterpretClean(t *testing.T) {
	msg := Interpret(&gateway.ChatResponse{
		Blocked: false,
		Output:  "Here is the answer.",
		Meta: &gateway.Meta{
			Shield: &gateway.ShieldMeta{SecurityScore: scorePtr(0.92)},
		},
	})

	if msg.Role != model.RoleAssistant {
		t.Errorf("Role = %q, want assistant", msg.Role)
	}
	if msg.Content != "Here is the answer." {
		t.Errorf("Content = %q", msg.Content)
	}
	if msg.SecurityInfo == nil {
		t.Fatal("SecurityInfo is nil")
	}
	if msg.SecurityInfo.Verdict != model.VerdictClean {
		t.Errorf("Verdict = %q, want CLEAN", msg.SecurityInfo.Verdict)
	}
	if msg.SecurityInfo.Score != 0.92 {
		t.Errorf("Score = %v, want 0.92", msg.SecurityInfo.Score)
	}
}

func TestInterpretBlocked(t *testing.T) {
	msg := Interpret(&gateway.ChatResponse{
		Blocked: true,
		Output:  "Prompt injection detected.",
	})

	if msg.Role != model.RoleSystem {
		t.Errorf("Role = %q, want system", msg.Role)
	}
	if !strings.HasPrefix(msg.Content, BlockedBanner) {
		t.Errorf("Content missing banner prefix: %q", msg.Content)
	}
	if !strings.HasSuffix(msg.Content, "Prompt injection detected.") {
		t.Errorf("Content missing block reason: %q", msg.Content)
	}
	if !msg.IsBlocked() {
		t.Error("IsBlocked() = false, want true")
	}
}

func TestInterpretBlockedIgnoresScrub(t *testing.T) {
	msg := Interpret(&gateway.ChatResponse{
		Blocked: true,
		Output:  "Prompt injection detected.",
		Meta: &gateway.Meta{
			Scrub: &gateway.ScrubMeta{
				Redactions: map[string]string{"[EMAIL_1]": "a@b.com"},
			},
		},
	})

	if msg.SecurityInfo == nil {
		t.Fatal("SecurityInfo is nil")
	}
	if got := msg.SecurityInfo.RedactedEntities; len(got) != 0 {
		t.Errorf("blocked message carries redactions %v, want none", got)
	}
	if msg.SecurityInfo.RedactedEntities == nil {
		t.Error("RedactedEntities is nil, want empty slice")
	}
}

func TestInterpretScoreDefaults(t *testing.T) {
	tests := []struct {
		name      string
		resp      *gateway.ChatResponse
		wantScore float64
	}{
		{"blocked without meta", &gateway.ChatResponse{Blocked: true, Output: "no"}, 0.0},
		{"clean without meta", &gateway.ChatResponse{Blocked: false, Output: "yes"}, 1.0},
		{"clean with empty meta", &gateway.ChatResponse{Blocked: false, Output: "yes", Meta: &gateway.Meta{}}, 1.0},
		{"blocked with score", &gateway.ChatResponse{
			Blocked: true, Output: "no",
			Meta: &gateway.Meta{Shield: &gateway.ShieldMeta{SecurityScore: scorePtr(0.12)}},
		}, 0.12},
		{"clean with zero score", &gateway.ChatResponse{
			Blocked: false, Output: "yes",
			Meta: &gateway.Meta{Shield: &gateway.ShieldMeta{SecurityScore: scorePtr(0.0)}},
		}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Interpret(tt.resp)
			if msg.SecurityInfo.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", msg.SecurityInfo.Score, tt.wantScore)
			}
		})
	}
}

func TestInterpretRedactionsAlwaysNonNil(t *testing.T) {
	msg := Interpret(&gateway.ChatResponse{Blocked: false, Output: "hi"})
	if msg.SecurityInfo.RedactedEntities == nil {
		t.Error("RedactedEntities is nil, want empty slice")
	}
	if len(msg.SecurityInfo.RedactedEntities) != 0 {
		t.Errorf("RedactedEntities = %v, want empty", msg.SecurityInfo.RedactedEntities)
	}
}

func TestInterpretError(t *testing.T) {
	msg := InterpretError(gateway.ErrUnreachable)

	if msg.Role != model.RoleSystem {
		t.Errorf("Role = %q, want system", msg.Role)
	}
	if msg.Content != ConnectionErrorMessage {
		t.Errorf("Content = %q", msg.Content)
	}
	if msg.SecurityInfo != nil {
		t.Error("SecurityInfo should be nil on connection errors")
	}
}

// =============================================================================
// REDACTION SUMMARY TESTS
// =============================================================================

func TestSummarizeRedactions(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]string
		want []string
	}{
		{
			"dedupes repeated labels",
			map[string]string{
				"[EMAIL_1]": "a@b.com",
				"[EMAIL_2]": "c@d.com",
				"[SSN_1]":   "123-45-6789",
			},
			[]string{"EMAIL", "SSN"},
		},
		{
			"passes unknown forms through",
			map[string]string{"PHONE": "555-0100"},
			[]string{"PHONE"},
		},
		{
			"angle bracket form",
			map[string]string{"<SSN>": "123-45-6789"},
			[]string{"SSN"},
		},
		{
			"empty map",
			map[string]string{},
			[]string{},
		},
		{
			"nil map",
			nil,
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeRedactions(tt.in)
			if got == nil {
				t.Fatal("result is nil, want non-nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SummarizeRedactions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarizeRedactionsDeterministic(t *testing.T) {
	in := map[string]string{
		"[SSN_1]":   "x",
		"[EMAIL_1]": "y",
		"[PHONE_3]": "z",
	}

	first := SummarizeRedactions(in)
	for i := 0; i < 20; i++ {
		if got := SummarizeRedactions(in); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: %v != %v", i, got, first)
		}
	}
}

func TestParseRedactionKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"[EMAIL_1]", "EMAIL"},
		{"[EMAIL_12]", "EMAIL"},
		{"[CREDIT_CARD_1]", "CREDIT_CARD"},
		{"[SSN]", "SSN"},
		{"<SSN>", "SSN"},
		{"<SSN_2>", "SSN"},
		{"EMAIL_X", "EMAIL_X"},
		{"EMAIL_", "EMAIL_"},
		{"PHONE", "PHONE"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ParseRedactionKey(tt.key); got != tt.want {
			t.Errorf("ParseRedactionKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
