// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login provides the sign-in form for the Sentinel TUI.
//
// The form validates against the local identity store. On success it emits
// a SuccessMsg for the root model to act on; the form itself never
// navigates.
package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sentinel-tui/internal/identity"
	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// SuccessMsg reports a completed sign-in.
type SuccessMsg struct {
	User *identity.User
}

// =============================================================================
// LOGIN MODEL
// =============================================================================

// field indexes for focus cycling.
const (
	fieldEmail = iota
	fieldPassword
	fieldCount
)

// Model is the Bubble Tea model for the sign-in form.
type Model struct {
	theme *styles.Theme
	store *identity.Store

	email    textinput.Model
	password textinput.Model
	focus    int

	errText string

	width  int
	height int
}

// New creates a new sign-in form backed by the given identity store.
func New(theme *styles.Theme, store *identity.Store) Model {
	email := textinput.New()
	email.Placeholder = "you@sentinel.ai"
	email.Prompt = ""
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = ""
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return Model{
		theme:    theme,
		store:    store,
		email:    email,
		password: password,
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.cycleFocus(msg.String())
			return m, textinput.Blink

		case "enter":
			if m.focus == fieldEmail {
				m.cycleFocus("tab")
				return m, textinput.Blink
			}
			return m.attempt()
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	if m.focus == fieldEmail {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// cycleFocus moves focus between the two fields.
func (m *Model) cycleFocus(key string) {
	if key == "shift+tab" || key == "up" {
		m.focus = (m.focus - 1 + fieldCount) % fieldCount
	} else {
		m.focus = (m.focus + 1) % fieldCount
	}

	if m.focus == fieldEmail {
		m.email.Focus()
		m.password.Blur()
	} else {
		m.password.Focus()
		m.email.Blur()
	}
}

// attempt validates the credentials against the identity store.
func (m Model) attempt() (Model, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()

	if email == "" || password == "" {
		m.errText = "Email and password are required."
		return m, nil
	}

	user, err := m.store.Login(email, password)
	if err != nil {
		m.errText = "Invalid email or password."
		m.password.SetValue("")
		return m, nil
	}

	m.errText = ""
	return m, func() tea.Msg { return SuccessMsg{User: user} }
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the sign-in form centered in the window.
func (m Model) View() string {
	title := m.theme.LoginTitle.Render("SENTINEL")
	subtitle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render("AI Security Gateway Console")

	emailLabel := m.theme.LoginLabel.Render("Email")
	passwordLabel := m.theme.LoginLabel.Render("Password")

	var errLine string
	if m.errText != "" {
		errLine = m.theme.LoginError.Render(styles.StatusIndicators.Error + " " + m.errText)
	}

	hint := m.theme.LoginHint.Render(
		"Demo accounts:\n" +
			"  admin@sentinel.ai / admin123\n" +
			"  employee@sentinel.ai / employee123",
	)

	form := []string{
		title,
		subtitle,
		"",
		emailLabel,
		m.email.View(),
		"",
		passwordLabel,
		m.password.View(),
	}
	if errLine != "" {
		form = append(form, "", errLine)
	}
	form = append(form, "", hint)

	box := m.theme.LoginBox.Render(strings.Join(form, "\n"))

	if m.width <= 0 || m.height <= 0 {
		return box
	}

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
