// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/jeranaias/sentinel-tui/internal/gateway"
	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusStrings(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusReady, "Ready"},
		{StatusSubmitting, "Waiting for verdict..."},
		{StatusLoading, "Loading..."},
		{StatusError, "Error"},
		{StatusOffline, "Gateway offline"},
		{Status(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
		if tt.status.Icon() == "" {
			t.Errorf("Status(%d).Icon() is empty", tt.status)
		}
	}
}

func TestStatusBarViewWidths(t *testing.T) {
	theme := styles.NewTheme()
	bar := NewStatusBar(theme)
	bar.SetGateway("http://localhost:9000", "gemini-2.5-flash")
	bar.SetUser("Admin User", "admin")
	bar.SetConnected(true)

	// Every layout must render without panic and produce output.
	for _, width := range []int{40, 80, 120} {
		bar.SetWidth(width)
		if bar.View() == "" {
			t.Errorf("View() at width %d is empty", width)
		}
	}
}

func TestStatusBarWideShowsGateway(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme())
	bar.SetWidth(140)
	bar.SetGateway("http://localhost:9000", "gemini-2.5-flash")

	view := bar.View()
	if !strings.Contains(view, "http://localhost:9000") {
		t.Error("wide view should show the gateway URL")
	}
	if !strings.Contains(view, "gemini-2.5-flash") {
		t.Error("wide view should show the model name")
	}
}

func TestStatusBarDisconnectedFlipsStatus(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme())
	bar.SetStatus(StatusReady)
	bar.SetConnected(false)

	if bar.Status != StatusOffline {
		t.Errorf("Status = %v, want StatusOffline", bar.Status)
	}
}

func TestStatusBarRoleBadge(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme())
	bar.SetWidth(140)
	bar.SetUser("John Employee", "employee")

	view := bar.View()
	if !strings.Contains(view, "John Employee") {
		t.Error("wide view should show the operator name")
	}
	if !strings.Contains(view, "EMPLOYEE") {
		t.Error("wide view should show the uppercase role badge")
	}
}

// =============================================================================
// WELCOME TESTS
// =============================================================================

func TestWelcomeView(t *testing.T) {
	w := NewWelcome(styles.NewTheme())
	w.SetVersion("1.0.0")
	w.SetGateway("http://localhost:9000", "gemini-2.5-flash")
	w.SetUser("Admin User")
	w.SetSize(100, 30)

	view := w.View()
	for _, want := range []string{"v1.0.0", "http://localhost:9000", "Admin User", "Press any key"} {
		if !strings.Contains(view, want) {
			t.Errorf("welcome view missing %q", want)
		}
	}
}

func TestWelcomeCompactOnShortTerminal(t *testing.T) {
	w := NewWelcome(styles.NewTheme())
	w.SetSize(80, 10)

	view := w.View()
	if !strings.Contains(view, "SENTINEL") {
		t.Error("compact view should show the one-line logo")
	}
}

// =============================================================================
// SPINNER TESTS
// =============================================================================

func TestSpinnerLifecycle(t *testing.T) {
	s := NewVerdictSpinner()

	if s.Active() {
		t.Error("spinner should start inactive")
	}
	if s.View() != "" {
		t.Error("inactive spinner should render nothing")
	}

	cmd := s.Start()
	if cmd == nil {
		t.Error("Start() should return a tick command")
	}
	if !s.Active() {
		t.Error("spinner should be active after Start")
	}
	if !strings.Contains(s.View(), "Waiting for verdict") {
		t.Errorf("spinner view = %q, want verdict message", s.View())
	}

	s.Stop()
	if s.Active() {
		t.Error("spinner should be inactive after Stop")
	}
}

// =============================================================================
// ERROR BOX TESTS
// =============================================================================

func TestErrorBoxNil(t *testing.T) {
	box := NewErrorBox(styles.NewTheme())
	if box.Render(nil) != "" {
		t.Error("nil error should render nothing")
	}
}

func TestErrorBoxIncludesMessage(t *testing.T) {
	box := NewErrorBox(styles.NewTheme())
	box.SetWidth(70)

	out := box.Render(errors.New("something broke"))
	if !strings.Contains(out, "something broke") {
		t.Errorf("error box missing message: %q", out)
	}
}

func TestHintFor(t *testing.T) {
	if hint := HintFor(gateway.ErrUnreachable); !strings.Contains(hint, "gateway is running") {
		t.Errorf("unreachable hint = %q", hint)
	}

	if hint := HintFor(errors.New("misc")); hint != "" {
		t.Errorf("unknown error should have no hint, got %q", hint)
	}
}
