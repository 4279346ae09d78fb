// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Terminal output styling shared by the CLI commands.

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sentinel-tui/internal/model"
	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	errorLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Rose)

	labelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	okStyle = lipgloss.NewStyle().
		Foreground(styles.Emerald)

	warnStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	blockedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Rose)

	cleanStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	redactionStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	mutedStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)
)

// severityCellStyle returns the color style for a severity table cell.
func severityCellStyle(severity model.Severity) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.SeverityColor(string(severity)))
}

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer renders assistant replies for terminal display.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown, falling back to the raw content when
// the renderer is unavailable.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayReply prints a reply, rendering markdown only on a TTY so piped
// output stays clean.
func displayReply(content string, markdown bool) {
	if markdown && IsStdoutTTY() {
		fmt.Print(renderMarkdown(content))
		return
	}
	fmt.Println(content)
}

// =============================================================================
// VERDICT LINE
// =============================================================================

// formatVerdictLine formats the security verdict trailer for a reply.
// Returns "" when the message carries no verdict.
func formatVerdictLine(msg *model.Message, showScore bool) string {
	info := msg.SecurityInfo
	if info == nil {
		return ""
	}

	var parts []string
	if info.Verdict == model.VerdictBlocked {
		parts = append(parts, blockedStyle.Render(styles.StatusIndicators.Blocked+" BLOCKED"))
	} else {
		parts = append(parts, cleanStyle.Render(styles.StatusIndicators.Success+" CLEAN"))
	}

	if showScore {
		parts = append(parts, mutedStyle.Render(fmt.Sprintf("score %.2f", info.Score)))
	}

	for _, entity := range info.RedactedEntities {
		parts = append(parts, redactionStyle.Render("["+entity+"]"))
	}

	return strings.Join(parts, "  ")
}
