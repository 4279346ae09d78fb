// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sentinel-tui/internal/gateway"
	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// =============================================================================
// ERROR DISPLAY COMPONENT
// =============================================================================

// ErrorBox renders an error in a bordered box with a hint line when one
// is available for the error class.
type ErrorBox struct {
	theme *styles.Theme
	width int
}

// NewErrorBox creates a new error display component.
func NewErrorBox(theme *styles.Theme) *ErrorBox {
	return &ErrorBox{theme: theme, width: 60}
}

// SetWidth updates the box width.
func (e *ErrorBox) SetWidth(width int) {
	e.width = width
}

// Render formats an error for display. Returns an empty string for nil.
func (e *ErrorBox) Render(err error) string {
	if err == nil {
		return ""
	}

	title := styles.RenderError("Error")
	body := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Render(err.Error())

	lines := []string{title, "", body}

	if hint := HintFor(err); hint != "" {
		hintLine := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Render("Hint: " + hint)
		lines = append(lines, "", hintLine)
	}

	boxWidth := e.width
	if boxWidth > 76 {
		boxWidth = 76
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Rose).
		Padding(0, 1).
		Width(boxWidth).
		Render(strings.Join(lines, "\n"))
}

// HintFor returns a short recovery hint for known error classes, or an
// empty string when no hint applies.
func HintFor(err error) string {
	switch {
	case gateway.IsUnreachable(err):
		return "Check that the Sentinel gateway is running and the API URL in your config is correct."
	case gateway.IsTimeout(err):
		return "The gateway took too long to respond. Try again, or raise timeout_secs in your config."
	case gateway.IsBadResponse(err):
		return "The gateway rejected the request. Check the gateway logs for details."
	case gateway.IsMalformed(err):
		return "The gateway returned an unexpected payload. The gateway and client versions may not match."
	default:
		return ""
	}
}
