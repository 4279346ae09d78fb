// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom status bar
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusSubmitting
	StatusLoading
	StatusError
	StatusOffline
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusSubmitting:
		return "Waiting for verdict..."
	case StatusLoading:
		return "Loading..."
	case StatusError:
		return "Error"
	case StatusOffline:
		return "Gateway offline"
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the status.
// ACCESSIBILITY: Uses distinct shapes alongside colors for colorblind users
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusSubmitting, StatusLoading:
		return styles.StatusIndicators.Pending
	case StatusError:
		return styles.StatusIndicators.Error
	case StatusOffline:
		return styles.StatusIndicators.Warning
	default:
		return "?"
	}
}

// StatusBar represents the bottom status bar.
type StatusBar struct {
	GatewayURL    string // Gateway base URL
	ModelName     string // Model routed through the gateway
	UserName      string // Logged-in operator name, empty when logged out
	UserRole      string // "admin" or "employee"
	Connected     bool   // Last known gateway reachability
	Status        Status // Current status
	Width         int    // Available width
	ShowShortcuts bool   // Show keyboard shortcuts
	theme         *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Status:        StatusReady,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetStatus updates the current status.
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// SetGateway updates the gateway URL and model display.
func (s *StatusBar) SetGateway(url, model string) {
	s.GatewayURL = url
	s.ModelName = model
}

// SetConnected updates the gateway reachability indicator.
func (s *StatusBar) SetConnected(connected bool) {
	s.Connected = connected
	if !connected && s.Status == StatusReady {
		s.Status = StatusOffline
	}
	if connected && s.Status == StatusOffline {
		s.Status = StatusReady
	}
}

// SetUser updates the logged-in operator display. Pass empty strings
// when logged out.
func (s *StatusBar) SetUser(name, role string) {
	s.UserName = name
	s.UserRole = role
}

// View renders the status bar.
func (s *StatusBar) View() string {
	// Choose layout based on width
	if s.Width < 60 {
		return s.viewNarrow()
	}
	if s.Width < 100 {
		return s.viewMedium()
	}
	return s.viewWide()
}

// viewNarrow renders a compact status bar for narrow terminals
// Format: [GW] user Status
func (s *StatusBar) viewNarrow() string {
	parts := []string{}

	// Gateway reachability (compact)
	gwStyle := s.getConnectionStyle()
	parts = append(parts, gwStyle.Render(s.getConnectionIcon()))

	// Role badge first letter only
	if s.UserRole != "" {
		roleStyle := s.getRoleStyle()
		parts = append(parts, roleStyle.Render(strings.ToUpper(s.UserRole[:1])))
	}

	modeSection := "[" + strings.Join(parts, "|") + "]"

	// Status
	statusStyle := s.getStatusStyle()
	statusText := statusStyle.Render(s.Status.Icon())

	separator := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" ")

	result := modeSection + separator + statusText

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Width(s.Width).
		Render(result)
}

// viewMedium renders a medium-width status bar
// Format: gateway | model | user (role) | Status
func (s *StatusBar) viewMedium() string {
	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	parts := []string{}

	// Gateway reachability
	// ACCESSIBILITY: Uses high contrast colors for colorblind users
	gwStyle := s.getConnectionStyle()
	parts = append(parts, gwStyle.Render(s.getConnectionIcon()+" gateway"))

	// Model (truncated if needed)
	if s.ModelName != "" {
		modelName := s.ModelName
		modelRunes := []rune(modelName)
		if len(modelRunes) > 15 {
			modelName = string(modelRunes[:12]) + "..."
		}
		modelStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		parts = append(parts, modelStyle.Render(modelName))
	}

	// Operator with role badge
	if s.UserName != "" {
		parts = append(parts, s.renderUserBadge())
	}

	// Status
	statusStyle := s.getStatusStyle()
	parts = append(parts, statusStyle.Render(s.Status.String()))

	result := strings.Join(parts, separator)

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Padding(0, 1).
		Width(s.Width).
		Render(result)
}

// viewWide renders a full-featured status bar for wide terminals
// Format: [OK] gateway http://... | gemini-2.5-flash | user (role) ... Status shortcuts
func (s *StatusBar) viewWide() string {
	// Left section: gateway, model, operator
	leftParts := []string{}

	gwStyle := s.getConnectionStyle()
	gwText := s.getConnectionIcon() + " gateway"
	if s.GatewayURL != "" {
		gwText += " " + s.GatewayURL
	}
	leftParts = append(leftParts, gwStyle.Render(gwText))

	if s.ModelName != "" {
		modelStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
		leftParts = append(leftParts, modelStyle.Render(s.ModelName))
	}

	if s.UserName != "" {
		leftParts = append(leftParts, s.renderUserBadge())
	}

	leftSep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")
	leftSection := strings.Join(leftParts, leftSep)

	// Right section: status and shortcuts
	rightParts := []string{}

	statusStyle := s.getStatusStyle()
	rightParts = append(rightParts, statusStyle.Render(s.Status.String()))

	if s.ShowShortcuts {
		rightParts = append(rightParts, s.renderShortcuts())
	}

	rightSection := strings.Join(rightParts, " ")

	// Calculate spacing
	leftWidth := lipgloss.Width(leftSection)
	rightWidth := lipgloss.Width(rightSection)

	spacing := s.Width - leftWidth - rightWidth - 4 // Account for padding
	if spacing < 1 {
		spacing = 1
	}

	result := leftSection + strings.Repeat(" ", spacing) + rightSection

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(styles.Overlay).
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Padding(0, 1).
		Width(s.Width).
		Render(result)
}

// ==========================================================================
// HELPER RENDER METHODS
// ==========================================================================

// renderUserBadge renders the operator name with a colored role badge.
func (s *StatusBar) renderUserBadge() string {
	nameStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	badge := s.getRoleStyle().Render(strings.ToUpper(s.UserRole))
	if s.UserRole == "" {
		return nameStyle.Render(s.UserName)
	}
	return nameStyle.Render(s.UserName) + " " + badge
}

// renderShortcuts renders keyboard shortcut hints
func (s *StatusBar) renderShortcuts() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted)

	shortcuts := []string{
		keyStyle.Render("Tab") + descStyle.Render("switch"),
		keyStyle.Render("^L") + descStyle.Render("logout"),
		keyStyle.Render("^C") + descStyle.Render("quit"),
	}

	return strings.Join(shortcuts, " ")
}

// getConnectionStyle returns the style for the gateway indicator
// ACCESSIBILITY: Uses high contrast colors with bold for colorblind users
func (s *StatusBar) getConnectionStyle() lipgloss.Style {
	if s.Connected {
		return lipgloss.NewStyle().Foreground(styles.SuccessHighContrast).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(styles.ErrorHighContrast).Bold(true)
}

// getConnectionIcon returns an icon for gateway reachability
// ACCESSIBILITY: Uses distinct shapes alongside colors for colorblind users
func (s *StatusBar) getConnectionIcon() string {
	if s.Connected {
		return styles.StatusIndicators.Success
	}
	return styles.StatusIndicators.Error
}

// getRoleStyle returns the style for the operator role badge.
func (s *StatusBar) getRoleStyle() lipgloss.Style {
	switch s.UserRole {
	case "admin":
		return lipgloss.NewStyle().Foreground(styles.Purple).Bold(true)
	case "employee":
		return lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(styles.TextMuted)
	}
}

// getStatusStyle returns the style for the current status
// ACCESSIBILITY: Uses high contrast colors with bold for colorblind users
func (s *StatusBar) getStatusStyle() lipgloss.Style {
	switch s.Status {
	case StatusReady:
		return lipgloss.NewStyle().Foreground(styles.SuccessHighContrast).Bold(true)
	case StatusSubmitting:
		return lipgloss.NewStyle().Foreground(styles.InfoHighContrast).Bold(true)
	case StatusLoading:
		return lipgloss.NewStyle().Foreground(styles.WarningHighContrast).Bold(true)
	case StatusError:
		return lipgloss.NewStyle().Foreground(styles.ErrorHighContrast).Bold(true)
	case StatusOffline:
		return lipgloss.NewStyle().Foreground(styles.WarningHighContrast).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(styles.TextMuted)
	}
}
