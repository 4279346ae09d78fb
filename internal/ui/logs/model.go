// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logs

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/sentinel-tui/internal/auditlog"
	"github.com/jeranaias/sentinel-tui/internal/ui/components"
	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// =============================================================================
// VIEW STATE
// =============================================================================

// State represents the current state of the logs view.
type State int

const (
	StateLoading State = iota // Fetch in flight
	StateReady                // Table visible
	StateError                // Fetch failed
)

// severityCycle is the order the severity filter steps through.
var severityCycle = []string{auditlog.SeverityAll, "high", "medium", "low"}

// =============================================================================
// MESSAGES
// =============================================================================

// LoadedMsg reports the outcome of an audit trail fetch.
type LoadedMsg struct {
	Err error
}

// =============================================================================
// LOGS MODEL
// =============================================================================

// Model is the Bubble Tea model for the audit trail view.
type Model struct {
	// State
	state   State
	lastErr error

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Engine owns filtering and expansion
	engine *auditlog.Engine

	// Presentation state
	selected      int
	filterInput   textinput.Model
	filterFocused bool
	severityIdx   int
	categoryIdx   int

	// UI components
	spinner components.Spinner
	errBox  *components.ErrorBox
}

// New creates a new audit trail view.
func New(theme *styles.Theme, engine *auditlog.Engine) Model {
	filter := textinput.New()
	filter.Placeholder = "filter events, users, prompts..."
	filter.Prompt = "/ "
	filter.CharLimit = 200

	return Model{
		state:       StateLoading,
		theme:       theme,
		engine:      engine,
		filterInput: filter,
		spinner:     components.NewLogsSpinner(),
		errBox:      components.NewErrorBox(theme),
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.filterInput.Width = width - 40
	m.errBox.SetWidth(width - 4)
}

// Loading reports whether a fetch is in flight.
func (m *Model) Loading() bool {
	return m.state == StateLoading
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init implements tea.Model. The first fetch starts immediately.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Start(), m.loadCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filterFocused {
			return m.updateFilterInput(msg)
		}
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case LoadedMsg:
		m.spinner.Stop()
		if msg.Err != nil {
			m.state = StateError
			m.lastErr = msg.Err
		} else {
			m.state = StateReady
			m.lastErr = nil
			m.selected = 0
		}
	}

	if cmd := m.spinner.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes table navigation keys.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "/":
		m.filterFocused = true
		m.filterInput.Focus()
		return textinput.Blink

	case "s":
		m.severityIdx = (m.severityIdx + 1) % len(severityCycle)
		m.applyFilter()

	case "c":
		m.categoryIdx = (m.categoryIdx + 1) % len(auditlog.Categories())
		m.applyFilter()

	case "r":
		m.state = StateLoading
		return tea.Batch(m.spinner.Start(), m.loadCmd())

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.engine.Visible())-1 {
			m.selected++
		}

	case "enter", " ":
		visible := m.engine.Visible()
		if m.selected >= 0 && m.selected < len(visible) {
			m.engine.ToggleExpand(visible[m.selected].ID)
		}

	case "esc":
		if id, ok := m.engine.Expansion().ExpandedID(); ok {
			m.engine.ToggleExpand(id)
		}
	}

	return nil
}

// updateFilterInput routes keys to the filter text input while it has focus.
func (m Model) updateFilterInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filterFocused = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter pushes the current widget state into the engine and clamps
// the cursor to the new visible set.
func (m *Model) applyFilter() {
	m.engine.SetFilter(auditlog.Filter{
		Text:     m.filterInput.Value(),
		Severity: severityCycle[m.severityIdx],
		Category: auditlog.Categories()[m.categoryIdx],
	})

	if visible := len(m.engine.Visible()); m.selected >= visible {
		m.selected = visible - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// loadCmd fetches the audit trail in the background.
func (m *Model) loadCmd() tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		return LoadedMsg{Err: engine.Load(context.Background())}
	}
}
