// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the Sentinel TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Purple - Primary accent, assistant messages, selections
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Cyan - Brand color, info, shortcut keys, user highlights
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Success states, CLEAN verdicts, resolved events
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Errors, BLOCKED verdicts, high severity
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, medium severity, pending states
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders, separators, subtle backgrounds
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, timestamps, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

// User message bubble - Blue tones
var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1D4ED8"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#E0F2FE"}
var UserBubbleBorder = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

// Assistant message bubble - Soft purple/violet tones
var AssistantBubbleBg = lipgloss.AdaptiveColor{Light: "#F5F3FF", Dark: "#3B3655"}
var AssistantBubbleFg = lipgloss.AdaptiveColor{Light: "#5B4B8A", Dark: "#E9E4F5"}
var AssistantBubbleBorder = lipgloss.AdaptiveColor{Light: "#C4B5FD", Dark: "#A78BFA"}

// Blocked message bubble - Rose tones for security violations
var BlockedBubbleBg = lipgloss.AdaptiveColor{Light: "#FEE2E2", Dark: "#881337"}
var BlockedBubbleFg = lipgloss.AdaptiveColor{Light: "#991B1B", Dark: "#FECACA"}
var BlockedBubbleBorder = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// System message bubble - Amber/yellow tones
var SystemBubbleBg = lipgloss.AdaptiveColor{Light: "#FEF3C7", Dark: "#78350F"}
var SystemBubbleFg = lipgloss.AdaptiveColor{Light: "#92400E", Dark: "#FEF3C7"}
var SystemBubbleBorder = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

// =============================================================================
// SEVERITY COLORS
// =============================================================================

// SeverityHighColor - High severity audit events
var SeverityHighColor = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}

// SeverityMediumColor - Medium severity audit events
var SeverityMediumColor = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}

// SeverityLowColor - Low severity audit events
var SeverityLowColor = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// =============================================================================
// ACCESSIBILITY: Shapes and high contrast for colorblind users
// =============================================================================

// StatusIndicatorSet contains text/shape indicators for status states.
// These symbols provide visual cues beyond color for colorblind accessibility.
type StatusIndicatorSet struct {
	Success string // Checkmark for success states
	Error   string // X mark for error states
	Warning string // Warning triangle for caution states
	Info    string // Info circle for informational states
	Blocked string // Shield for blocked prompts
	Pending string // Empty brackets for in-progress states
}

// StatusIndicators provides accessible shape/text indicators alongside colors.
// ACCESSIBILITY: ASCII-only indicators for maximum compatibility.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
	Blocked: "[SHIELD]",
	Pending: "[ ]",
}

// High contrast success - works for most color blindness types
var SuccessHighContrast = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#22C55E"}

// High contrast error - distinct from green even for colorblind users
var ErrorHighContrast = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}

// High contrast warning - deuteranopia-friendly amber
var WarningHighContrast = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}

// High contrast info - distinct from red/green spectrum
var InfoHighContrast = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}

// =============================================================================
// ACCESSIBILITY: Helper functions for rendering accessible status messages
// =============================================================================

// RenderSuccess renders a success message with checkmark indicator and high contrast green.
func RenderSuccess(message string) string {
	style := lipgloss.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)
	return style.Render(StatusIndicators.Success + " " + message)
}

// RenderError renders an error message with X mark indicator and high contrast red.
func RenderError(message string) string {
	style := lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)
	return style.Render(StatusIndicators.Error + " " + message)
}

// RenderWarning renders a warning message with warning indicator and high contrast amber.
func RenderWarning(message string) string {
	style := lipgloss.NewStyle().
		Foreground(WarningHighContrast).
		Bold(true)
	return style.Render(StatusIndicators.Warning + " " + message)
}

// RenderInfo renders an info message with info indicator and high contrast blue.
func RenderInfo(message string) string {
	style := lipgloss.NewStyle().
		Foreground(InfoHighContrast).
		Bold(true)
	return style.Render(StatusIndicators.Info + " " + message)
}

// RenderBlocked renders a blocked-prompt notice with shield indicator.
func RenderBlocked(message string) string {
	style := lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)
	return style.Render(StatusIndicators.Blocked + " " + message)
}

// SeverityColor returns the color for a severity string.
func SeverityColor(severity string) lipgloss.AdaptiveColor {
	switch severity {
	case "high":
		return SeverityHighColor
	case "medium":
		return SeverityMediumColor
	case "low":
		return SeverityLowColor
	default:
		return TextMuted
	}
}
