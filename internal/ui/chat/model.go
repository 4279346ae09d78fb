// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/sentinel-tui/internal/gateway"
	"github.com/jeranaias/sentinel-tui/internal/session"
	"github.com/jeranaias/sentinel-tui/internal/ui/components"
	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateReady      State = iota // Ready for input
	StateSubmitting              // Prompt in flight, waiting for verdict
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Session
	controller *session.Controller
	client     *gateway.Client

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  components.Spinner

	// Markdown rendering of assistant replies
	markdown bool
	renderer *glamour.TermRenderer

	// Display options
	showScores bool
}

// New creates a new chat view.
func New(theme *styles.Theme, controller *session.Controller, client *gateway.Client) Model {
	input := textinput.New()
	input.Placeholder = "Type a prompt..."
	input.Prompt = "> "
	input.CharLimit = 4000
	input.Focus()

	vp := viewport.New(80, 20)

	return Model{
		state:      StateReady,
		theme:      theme,
		controller: controller,
		client:     client,
		viewport:   vp,
		input:      input,
		spinner:    components.NewVerdictSpinner(),
		showScores: true,
	}
}

// SetMarkdown enables glamour rendering of assistant replies.
func (m *Model) SetMarkdown(enabled bool) {
	m.markdown = enabled
	m.rebuildRenderer()
}

// SetShowScores toggles the security score line under replies.
func (m *Model) SetShowScores(show bool) {
	m.showScores = show
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// Input line (1) + its padding (2) leaves the rest for the transcript.
	viewportHeight := height - 3
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = viewportHeight
	m.input.Width = width - 4

	m.rebuildRenderer()
	m.refreshViewport()
}

// Busy reports whether a prompt is in flight.
func (m *Model) Busy() bool {
	return m.state == StateSubmitting
}

// rebuildRenderer recreates the glamour renderer for the current width.
func (m *Model) rebuildRenderer() {
	if !m.markdown {
		m.renderer = nil
		return
	}

	wrap := m.width - 10
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		// Fall back to plain text rendering
		m.renderer = nil
		return
	}
	m.renderer = renderer
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if cmd := m.submit(); cmd != nil {
				cmds = append(cmds, cmd)
			}
			// Fall through to component updates below for cursor state.
		case "ctrl+u":
			m.input.SetValue("")
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case VerdictMsg:
		if m.controller.Settle(msg.Seq, msg.Response) {
			m.settleUI()
		}

	case VerdictErrMsg:
		if m.controller.Fail(msg.Seq, msg.Err) {
			m.settleUI()
		}

	case ClearTranscriptMsg:
		m.controller.Clear()
		m.refreshViewport()
	}

	if cmd := m.spinner.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit pushes the current input through the session controller.
// Returns nil when the controller refuses the submission (empty input,
// prompt already in flight, or not authenticated).
func (m *Model) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())

	seq, ok := m.controller.Begin(text)
	if !ok {
		return nil
	}

	m.input.SetValue("")
	m.state = StateSubmitting
	m.refreshViewport()

	tick := m.spinner.Start()
	return tea.Batch(tick, m.chatCmd(seq, text))
}

// chatCmd issues the gateway call for one exchange. The sequence number is
// captured so the reply settles only its own exchange.
func (m *Model) chatCmd(seq uint64, prompt string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.Chat(context.Background(), gateway.ChatRequest{Prompt: prompt})
		if err != nil {
			return VerdictErrMsg{Seq: seq, Err: err}
		}
		return VerdictMsg{Seq: seq, Response: resp}
	}
}

// settleUI transitions the view back to ready after an exchange settles.
func (m *Model) settleUI() {
	m.state = StateReady
	m.spinner.Stop()
	m.refreshViewport()
	m.viewport.GotoBottom()
}

// refreshViewport re-renders the transcript into the viewport.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderMessages())
}
