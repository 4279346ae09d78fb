// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER COMPONENT
// =============================================================================

// Spinner is a loading spinner with a message and optional elapsed timer.
type Spinner struct {
	spinner spinner.Model

	message   string
	startTime time.Time

	isActive  bool
	showTimer bool
}

// NewSpinner creates a new spinner with default ASCII-compatible settings.
func NewSpinner() Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(styles.Purple)

	return Spinner{
		spinner:   s,
		message:   "Loading",
		showTimer: true,
	}
}

// NewVerdictSpinner creates a spinner for the waiting-on-gateway state.
func NewVerdictSpinner() Spinner {
	s := NewSpinner()
	s.message = "Waiting for verdict"
	return s
}

// NewLogsSpinner creates a spinner for the audit log fetch state.
func NewLogsSpinner() Spinner {
	s := NewSpinner()
	s.message = "Fetching audit log"
	s.showTimer = false
	return s
}

// SetMessage updates the spinner message.
func (s *Spinner) SetMessage(message string) {
	s.message = message
}

// Start activates the spinner and resets the elapsed timer.
func (s *Spinner) Start() tea.Cmd {
	s.isActive = true
	s.startTime = time.Now()
	return s.spinner.Tick
}

// Stop deactivates the spinner.
func (s *Spinner) Stop() {
	s.isActive = false
}

// Active reports whether the spinner is running.
func (s *Spinner) Active() bool {
	return s.isActive
}

// Update advances the spinner animation.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	if !s.isActive {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// View renders the spinner line, or an empty string when inactive.
func (s *Spinner) View() string {
	if !s.isActive {
		return ""
	}

	msgStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	out := s.spinner.View() + " " + msgStyle.Render(s.message+"...")

	if s.showTimer {
		elapsed := time.Since(s.startTime).Round(time.Second)
		timerStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		out += " " + timerStyle.Render(fmt.Sprintf("(%s)", elapsed))
	}

	return out
}
