// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/sentinel-tui/internal/gateway"
	"github.com/jeranaias/sentinel-tui/internal/model"
	"github.com/jeranaias/sentinel-tui/internal/session"
	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

func newTestModel() Model {
	client := gateway.NewClient()
	controller := session.NewController(client)
	m := New(styles.NewTheme(), controller, client)
	m.SetSize(100, 30)
	return m
}

func floatPtr(f float64) *float64 { return &f }

// =============================================================================
// SUBMISSION TESTS
// =============================================================================

func TestSubmitAppendsUserMessage(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("what is python")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.controller.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.controller.Len())
	}
	if !m.Busy() {
		t.Error("view should be busy after submit")
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared after submit")
	}
}

func TestSubmitEmptyIsNoOp(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("   ")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.controller.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.controller.Len())
	}
	if m.Busy() {
		t.Error("view should not be busy after rejected submit")
	}
}

func TestSubmitWhileBusyIsNoOp(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("first")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.input.SetValue("second")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.controller.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (busy submit must be dropped)", m.controller.Len())
	}
}

func TestVerdictSettlesExchange(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("hello")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	score := floatPtr(0.97)
	m, _ = m.Update(VerdictMsg{
		Seq: 1,
		Response: &gateway.ChatResponse{
			Output: "hi there",
			Meta:   &gateway.Meta{Shield: &gateway.ShieldMeta{SecurityScore: score}},
		},
	})

	if m.controller.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.controller.Len())
	}
	if m.Busy() {
		t.Error("view should be ready after verdict")
	}
}

func TestStaleVerdictDropped(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("hello")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = m.Update(VerdictMsg{Seq: 42, Response: &gateway.ChatResponse{Output: "late"}})

	if m.controller.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (stale verdict must be dropped)", m.controller.Len())
	}
	if !m.Busy() {
		t.Error("view should stay busy when a stale verdict arrives")
	}
}

func TestVerdictErrorSettlesExchange(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("hello")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = m.Update(VerdictErrMsg{Seq: 1, Err: gateway.ErrUnreachable})

	if m.controller.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.controller.Len())
	}
	if m.Busy() {
		t.Error("view should be ready after error settles")
	}
}

func TestClearTranscript(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("hello")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(VerdictMsg{Seq: 1, Response: &gateway.ChatResponse{Output: "hi"}})

	m, _ = m.Update(ClearTranscriptMsg{})

	if m.controller.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after clear", m.controller.Len())
	}
}

// =============================================================================
// RENDERING TESTS
// =============================================================================

func TestRenderVerdictLineClean(t *testing.T) {
	m := newTestModel()
	msg := model.NewAssistantMessage("hi", model.VerdictInfo{
		Verdict:          model.VerdictClean,
		Score:            0.95,
		RedactedEntities: []string{"EMAIL"},
	})

	line := m.renderVerdictLine(msg)
	for _, want := range []string{"CLEAN", "0.95", "EMAIL"} {
		if !strings.Contains(line, want) {
			t.Errorf("verdict line missing %q: %q", want, line)
		}
	}
}

func TestRenderVerdictLineBlocked(t *testing.T) {
	m := newTestModel()
	msg := model.NewBlockedMessage("blocked", model.VerdictInfo{
		Verdict:          model.VerdictBlocked,
		Score:            0,
		RedactedEntities: []string{},
	})

	line := m.renderVerdictLine(msg)
	if !strings.Contains(line, "BLOCKED") {
		t.Errorf("verdict line missing BLOCKED: %q", line)
	}
	if !strings.Contains(line, styles.StatusIndicators.Blocked) {
		t.Errorf("verdict line missing shield indicator: %q", line)
	}
}

func TestRenderVerdictLineHiddenScores(t *testing.T) {
	m := newTestModel()
	m.SetShowScores(false)
	msg := model.NewAssistantMessage("hi", model.VerdictInfo{
		Verdict: model.VerdictClean,
		Score:   0.95,
	})

	line := m.renderVerdictLine(msg)
	if strings.Contains(line, "0.95") {
		t.Errorf("score should be hidden: %q", line)
	}
}

func TestRenderVerdictLineNoInfo(t *testing.T) {
	m := newTestModel()
	msg := model.NewSystemMessage("notice")

	if line := m.renderVerdictLine(msg); line != "" {
		t.Errorf("system notice should have no verdict line, got %q", line)
	}
}

func TestViewRendersTranscript(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("hello")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(VerdictMsg{Seq: 1, Response: &gateway.ChatResponse{Output: "hi there"}})

	view := m.View()
	if !strings.Contains(view, "hi there") {
		t.Error("view should contain the assistant reply")
	}
}

// =============================================================================
// TEXT WRAPPING TESTS
// =============================================================================

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
	}{
		{"short", "hello", 20},
		{"wraps", "the quick brown fox jumps over the lazy dog", 10},
		{"long word", "aaaaaaaaaaaaaaaaaaaaaaaaa", 10},
		{"multiline", "one\ntwo three four five six", 10},
		{"empty", "", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := wrapText(tt.input, tt.width)
			for _, line := range strings.Split(out, "\n") {
				if len([]rune(line)) > tt.width {
					t.Errorf("line %q exceeds width %d", line, tt.width)
				}
			}
		})
	}
}

func TestWrapTextPreservesWords(t *testing.T) {
	out := wrapText("alpha beta gamma", 5)
	for _, word := range []string{"alpha", "beta", "gamma"} {
		if !strings.Contains(out, word) {
			t.Errorf("wrapped output missing %q: %q", word, out)
		}
	}
}
