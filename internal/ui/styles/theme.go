// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	TabActive      lipgloss.Style
	TabInactive    lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	SystemBubble    lipgloss.Style
	BlockedBubble   lipgloss.Style
	VerdictClean    lipgloss.Style
	VerdictBlocked  lipgloss.Style
	RedactionTag    lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusOnline lipgloss.Style
	StatusError  lipgloss.Style
	RoleAdmin    lipgloss.Style
	RoleEmployee lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// AUDIT LOG TABLE STYLES
	// ==========================================================================

	LogHeader       lipgloss.Style
	LogRow          lipgloss.Style
	LogRowSelected  lipgloss.Style
	LogRowExpanded  lipgloss.Style
	LogDetailLabel  lipgloss.Style
	LogDetailValue  lipgloss.Style
	SeverityHigh    lipgloss.Style
	SeverityMedium  lipgloss.Style
	SeverityLow     lipgloss.Style
	FilterBar       lipgloss.Style
	FilterActive    lipgloss.Style
	FilterInactive  lipgloss.Style
	LogEmptyNotice  lipgloss.Style
	LogErrorNotice  lipgloss.Style

	// ==========================================================================
	// LOGIN FORM STYLES
	// ==========================================================================

	LoginBox     lipgloss.Style
	LoginTitle   lipgloss.Style
	LoginLabel   lipgloss.Style
	LoginHint    lipgloss.Style
	LoginError   lipgloss.Style

	// ==========================================================================
	// SPINNER AND LOADING STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// WELCOME SCREEN STYLES
	// ==========================================================================

	WelcomeBox      lipgloss.Style
	WelcomeLogo     lipgloss.Style
	WelcomeVersion  lipgloss.Style
	WelcomeInfo     lipgloss.Style
	WelcomePressKey lipgloss.Style

	// ==========================================================================
	// ACCESSIBILITY: Status indicator styles
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Purple).
		Padding(0, 2)

	t.TabInactive = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 2)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		Background(AssistantBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.SystemBubble = lipgloss.NewStyle().
		Foreground(SystemBubbleFg).
		Background(SystemBubbleBg).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(SystemBubbleBorder).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.BlockedBubble = lipgloss.NewStyle().
		Foreground(BlockedBubbleFg).
		Background(BlockedBubbleBg).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(BlockedBubbleBorder).
		Padding(0, 2)

	t.VerdictClean = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.VerdictBlocked = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.RedactionTag = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Amber).
		Padding(0, 1).
		Bold(true)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusOnline = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.StatusError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.RoleAdmin = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.RoleEmployee = lipgloss.NewStyle().
		Foreground(Cyan)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Audit log table
	t.LogHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.LogRow = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.LogRowSelected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 1)

	t.LogRowExpanded = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Purple).
		Padding(0, 2)

	t.LogDetailLabel = lipgloss.NewStyle().
		Foreground(TextMuted).
		Width(18)

	t.LogDetailValue = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.SeverityHigh = lipgloss.NewStyle().
		Foreground(SeverityHighColor).
		Bold(true)

	t.SeverityMedium = lipgloss.NewStyle().
		Foreground(SeverityMediumColor).
		Bold(true)

	t.SeverityLow = lipgloss.NewStyle().
		Foreground(SeverityLowColor)

	t.FilterBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.FilterActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Cyan).
		Padding(0, 1).
		Bold(true)

	t.FilterInactive = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)

	t.LogEmptyNotice = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Padding(1, 2)

	t.LogErrorNotice = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true).
		Padding(1, 2)

	// Login form
	t.LoginBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 4)

	t.LoginTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple).
		Align(lipgloss.Center)

	t.LoginLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.LoginHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.LoginError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	// Spinner and loading
	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Welcome screen
	t.WelcomeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.WelcomeLogo = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.WelcomeVersion = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.WelcomeInfo = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.WelcomePressKey = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true).
		Blink(false)

	// Accessibility status styles
	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(WarningHighContrast).
		Bold(true)

	t.InfoStyle = lipgloss.NewStyle().
		Foreground(InfoHighContrast).
		Bold(true)
}

// SetSize updates the theme's layout dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// SeverityStyle returns the style for a severity string.
func (t *Theme) SeverityStyle(severity string) lipgloss.Style {
	switch severity {
	case "high":
		return t.SeverityHigh
	case "medium":
		return t.SeverityMedium
	case "low":
		return t.SeverityLow
	default:
		return lipgloss.NewStyle().Foreground(TextMuted)
	}
}
