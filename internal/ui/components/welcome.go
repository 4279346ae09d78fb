// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// =============================================================================
// WELCOME SCREEN COMPONENT
// =============================================================================

// Welcome is the splash screen shown after login, before the first prompt.
type Welcome struct {
	theme      *styles.Theme
	version    string
	gatewayURL string
	model      string
	userName   string
	width      int
	height     int
}

// NewWelcome creates a new welcome screen component.
func NewWelcome(theme *styles.Theme) *Welcome {
	return &Welcome{
		theme:   theme,
		version: "dev",
	}
}

// SetVersion sets the version string shown under the logo.
func (w *Welcome) SetVersion(version string) {
	w.version = version
}

// SetGateway sets the gateway URL and model shown in the info block.
func (w *Welcome) SetGateway(url, model string) {
	w.gatewayURL = url
	w.model = model
}

// SetUser sets the operator name shown in the greeting.
func (w *Welcome) SetUser(name string) {
	w.userName = name
}

// SetSize updates the component dimensions.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// Init implements tea.Model.
func (w *Welcome) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. The welcome screen is static.
func (w *Welcome) Update(msg tea.Msg) (*Welcome, tea.Cmd) {
	if m, ok := msg.(tea.WindowSizeMsg); ok {
		w.SetSize(m.Width, m.Height)
	}
	return w, nil
}

// View renders the welcome screen centered in the available space.
func (w *Welcome) View() string {
	sections := []string{}

	// Pick logo size based on available height
	if w.height >= 16 {
		sections = append(sections, w.renderLogo())
	} else {
		sections = append(sections, w.renderLogoCompact())
	}

	sections = append(sections, w.renderVersion())

	if w.height >= 14 {
		sections = append(sections, "", w.renderGatewayInfo())
	}

	sections = append(sections, "", w.renderPressKey())

	content := strings.Join(sections, "\n")

	if w.width <= 0 || w.height <= 0 {
		return content
	}

	return lipgloss.Place(
		w.width, w.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

// renderLogo renders the full ASCII logo.
func (w *Welcome) renderLogo() string {
	logo := strings.Join([]string{
		` ____  _____ _   _ _____ ___ _   _ _____ _     `,
		`/ ___|| ____| \ | |_   _|_ _| \ | | ____| |    `,
		`\___ \|  _| |  \| | | |  | ||  \| |  _| | |    `,
		` ___) | |___| |\  | | |  | || |\  | |___| |___ `,
		`|____/|_____|_| \_| |_| |___|_| \_|_____|_____|`,
	}, "\n")

	return lipgloss.NewStyle().
		Foreground(styles.Purple).
		Bold(true).
		Render(logo)
}

// renderLogoCompact renders a one-line logo for short terminals.
func (w *Welcome) renderLogoCompact() string {
	return lipgloss.NewStyle().
		Foreground(styles.Purple).
		Bold(true).
		Render("SENTINEL")
}

// renderVersion renders the tagline and version.
func (w *Welcome) renderVersion() string {
	tagline := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render("AI Security Gateway Console")

	version := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render("v" + w.version)

	return tagline + "  " + version
}

// renderGatewayInfo renders the gateway target and greeting.
func (w *Welcome) renderGatewayInfo() string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)

	lines := []string{}
	if w.userName != "" {
		lines = append(lines, labelStyle.Render("Operator: ")+valueStyle.Render(w.userName))
	}
	if w.gatewayURL != "" {
		lines = append(lines, labelStyle.Render("Gateway:  ")+valueStyle.Render(w.gatewayURL))
	}
	if w.model != "" {
		lines = append(lines, labelStyle.Render("Model:    ")+valueStyle.Render(w.model))
	}

	return strings.Join(lines, "\n")
}

// renderPressKey renders the continue hint.
func (w *Welcome) renderPressKey() string {
	return lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true).
		Render("Press any key to continue")
}
