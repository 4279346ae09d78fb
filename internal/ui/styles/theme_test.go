// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

// =============================================================================
// THEME TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme() = nil")
	}
}

func TestSetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)

	if theme.Width != 120 {
		t.Errorf("Width = %d, want 120", theme.Width)
	}
	if theme.Height != 40 {
		t.Errorf("Height = %d, want 40", theme.Height)
	}
}

func TestSeverityStyle(t *testing.T) {
	theme := NewTheme()

	// Known severities map to dedicated styles; unknown falls back to muted.
	for _, severity := range []string{"high", "medium", "low", "unknown", ""} {
		style := theme.SeverityStyle(severity)
		// Rendering must never panic regardless of input.
		_ = style.Render(severity)
	}
}

// =============================================================================
// STATUS INDICATOR TESTS
// =============================================================================

func TestStatusIndicatorsAreASCII(t *testing.T) {
	indicators := []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Info,
		StatusIndicators.Blocked,
		StatusIndicators.Pending,
	}

	for _, ind := range indicators {
		if ind == "" {
			t.Error("empty status indicator")
		}
		for _, r := range ind {
			if r > 127 {
				t.Errorf("indicator %q contains non-ASCII rune %q", ind, r)
			}
		}
	}
}

func TestRenderHelpersIncludeIndicator(t *testing.T) {
	tests := []struct {
		name      string
		render    func(string) string
		indicator string
	}{
		{"success", RenderSuccess, StatusIndicators.Success},
		{"error", RenderError, StatusIndicators.Error},
		{"warning", RenderWarning, StatusIndicators.Warning},
		{"info", RenderInfo, StatusIndicators.Info},
		{"blocked", RenderBlocked, StatusIndicators.Blocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.render("message")
			if !strings.Contains(out, tt.indicator) {
				t.Errorf("output %q missing indicator %q", out, tt.indicator)
			}
			if !strings.Contains(out, "message") {
				t.Errorf("output %q missing message text", out)
			}
		})
	}
}

// =============================================================================
// COLOR TESTS
// =============================================================================

func TestSeverityColorFallback(t *testing.T) {
	if SeverityColor("critical") != TextMuted {
		t.Error("unknown severity should fall back to TextMuted")
	}
	if SeverityColor("high") != SeverityHighColor {
		t.Error("high severity color mismatch")
	}
}

func TestAdaptiveColorsHaveBothVariants(t *testing.T) {
	colors := map[string]struct{ light, dark string }{
		"Purple":      {Purple.Light, Purple.Dark},
		"Cyan":        {Cyan.Light, Cyan.Dark},
		"Emerald":     {Emerald.Light, Emerald.Dark},
		"Rose":        {Rose.Light, Rose.Dark},
		"Amber":       {Amber.Light, Amber.Dark},
		"TextPrimary": {TextPrimary.Light, TextPrimary.Dark},
	}

	for name, c := range colors {
		if !strings.HasPrefix(c.light, "#") || !strings.HasPrefix(c.dark, "#") {
			t.Errorf("%s missing light/dark hex values: %q / %q", name, c.light, c.dark)
		}
	}
}
