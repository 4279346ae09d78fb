// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sentinel-tui/internal/model"
	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the chat view: transcript viewport above, input line below.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	transcript := m.viewport.View()
	input := m.renderInput()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		transcript,
		input,
	)
}

// renderInput renders the prompt line, replaced by the spinner while a
// prompt is in flight.
func (m Model) renderInput() string {
	var line string
	if m.state == StateSubmitting {
		line = m.spinner.View()
	} else {
		line = m.input.View()
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(styles.Overlay).
		Padding(0, 1).
		Width(m.width).
		Render(line)
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// renderMessages renders the full transcript.
func (m *Model) renderMessages() string {
	messages := m.controller.Messages()
	if len(messages) == 0 {
		return m.renderEmptyState()
	}

	var parts []string
	for _, msg := range messages {
		parts = append(parts, m.renderMessage(msg))
	}

	return strings.Join(parts, "\n")
}

// renderMessage renders a single message based on its role and verdict.
func (m *Model) renderMessage(msg *model.Message) string {
	switch {
	case msg.Role == model.RoleUser:
		return m.renderUserMessage(msg)
	case msg.IsBlocked():
		return m.renderBlockedMessage(msg)
	case msg.Role == model.RoleAssistant:
		return m.renderAssistantMessage(msg)
	default:
		return m.renderSystemMessage(msg)
	}
}

// renderEmptyState renders the hint shown before the first exchange.
func (m *Model) renderEmptyState() string {
	hint := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true).
		Render("Every prompt is screened by the gateway before it reaches the model.\nType a prompt and press Enter.")

	if m.width <= 0 || m.viewport.Height <= 0 {
		return hint
	}

	return lipgloss.Place(
		m.width, m.viewport.Height,
		lipgloss.Center, lipgloss.Center,
		hint,
	)
}

// renderUserMessage renders a user message right-aligned in blue tones.
func (m *Model) renderUserMessage(msg *model.Message) string {
	maxWidth := m.bubbleWidth()

	bubble := m.theme.UserBubble.MaxWidth(maxWidth)
	rendered := bubble.Render(wrapText(msg.Content, maxWidth-4))

	// Push the bubble to the right edge
	marginLeft := m.width - lipgloss.Width(rendered) - 2
	if marginLeft < 0 {
		marginLeft = 0
	}

	return lipgloss.NewStyle().
		MarginLeft(marginLeft).
		MarginTop(1).
		Render(rendered)
}

// renderAssistantMessage renders a clean gateway reply with its verdict line.
func (m *Model) renderAssistantMessage(msg *model.Message) string {
	maxWidth := m.bubbleWidth()

	content := msg.Content
	if m.renderer != nil {
		if out, err := m.renderer.Render(content); err == nil {
			content = strings.TrimRight(out, "\n")
		}
	} else {
		content = wrapText(content, maxWidth-4)
	}

	bubble := m.theme.AssistantBubble.MaxWidth(maxWidth)
	rendered := bubble.Render(content)

	if line := m.renderVerdictLine(msg); line != "" {
		rendered += "\n" + line
	}

	return lipgloss.NewStyle().
		MarginTop(1).
		MarginLeft(1).
		Render(rendered)
}

// renderBlockedMessage renders a blocked exchange in rose tones.
func (m *Model) renderBlockedMessage(msg *model.Message) string {
	maxWidth := m.bubbleWidth()

	bubble := m.theme.BlockedBubble.MaxWidth(maxWidth)
	rendered := bubble.Render(wrapText(msg.Content, maxWidth-4))

	if line := m.renderVerdictLine(msg); line != "" {
		rendered += "\n" + line
	}

	return lipgloss.NewStyle().
		MarginTop(1).
		MarginLeft(1).
		Render(rendered)
}

// renderSystemMessage renders notices and connection errors in amber tones.
func (m *Model) renderSystemMessage(msg *model.Message) string {
	maxWidth := m.bubbleWidth()

	bubble := m.theme.SystemBubble.MaxWidth(maxWidth)
	rendered := bubble.Render(wrapText(msg.Content, maxWidth-4))

	return lipgloss.NewStyle().
		MarginTop(1).
		MarginLeft(1).
		Render(rendered)
}

// renderVerdictLine renders the verdict badge, security score, and
// redaction tags under a gateway reply.
func (m *Model) renderVerdictLine(msg *model.Message) string {
	info := msg.SecurityInfo
	if info == nil {
		return ""
	}

	parts := []string{}

	if info.Verdict == model.VerdictBlocked {
		parts = append(parts, m.theme.VerdictBlocked.Render(styles.StatusIndicators.Blocked+" BLOCKED"))
	} else {
		parts = append(parts, m.theme.VerdictClean.Render(styles.StatusIndicators.Success+" CLEAN"))
	}

	if m.showScores {
		scoreStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		parts = append(parts, scoreStyle.Render(fmt.Sprintf("score %.2f", info.Score)))
	}

	for _, entity := range info.RedactedEntities {
		parts = append(parts, m.theme.RedactionTag.Render(entity))
	}

	line := strings.Join(parts, " ")
	return lipgloss.NewStyle().MarginLeft(1).Render(line)
}

// bubbleWidth returns the maximum bubble width for the current terminal.
func (m *Model) bubbleWidth() int {
	maxWidth := m.width - 8
	if maxWidth < 20 {
		maxWidth = 20
	}
	return maxWidth
}

// =============================================================================
// TEXT HELPERS
// =============================================================================

// wrapText wraps text at word boundaries to the given width. Words longer
// than the width are hard-split.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

// wrapLine wraps a single line at word boundaries.
func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var lines []string
	var current strings.Builder
	currentLen := 0

	for _, word := range words {
		wordLen := len([]rune(word))

		// Hard-split words that cannot fit on any line
		for wordLen > width {
			if currentLen > 0 {
				lines = append(lines, current.String())
				current.Reset()
				currentLen = 0
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
			wordLen = len([]rune(word))
		}

		if currentLen > 0 && currentLen+1+wordLen > width {
			lines = append(lines, current.String())
			current.Reset()
			currentLen = 0
		}

		if currentLen > 0 {
			current.WriteString(" ")
			currentLen++
		}
		current.WriteString(word)
		currentLen += wordLen
	}

	if currentLen > 0 {
		lines = append(lines, current.String())
	}

	return lines
}
