// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sentinel-tui/internal/model"
	"github.com/jeranaias/sentinel-tui/internal/ui/styles"
	"github.com/jeranaias/sentinel-tui/internal/util"
)

// Column widths for the fixed columns. The event column absorbs the rest.
const (
	colTimestamp = 20
	colSeverity  = 9
	colUser      = 16
	colStatus    = 14
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the audit trail view.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLoading:
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.spinner.View(),
		)
	case StateError:
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.errBox.Render(m.lastErr),
		)
	}

	sections := []string{
		m.renderFilterBar(),
		m.renderHeader(),
		m.renderRows(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// =============================================================================
// FILTER BAR
// =============================================================================

// renderFilterBar renders the filter controls and the visible/total count.
func (m Model) renderFilterBar() string {
	sep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")

	parts := []string{m.filterInput.View()}

	severity := severityCycle[m.severityIdx]
	severityLabel := "Severity: " + severity
	if severity == "all" {
		parts = append(parts, m.theme.FilterInactive.Render(severityLabel))
	} else {
		parts = append(parts, m.theme.FilterActive.Render(severityLabel))
	}

	category := m.engine.GetFilter().Category
	categoryLabel := "Category: " + category.DisplayName()
	if category == "all" || category == "" {
		parts = append(parts, m.theme.FilterInactive.Render(categoryLabel))
	} else {
		parts = append(parts, m.theme.FilterActive.Render(categoryLabel))
	}

	count := fmt.Sprintf("%d/%d", len(m.engine.Visible()), m.engine.Total())
	parts = append(parts, lipgloss.NewStyle().Foreground(styles.TextMuted).Render(count))

	return m.theme.FilterBar.Width(m.width).Render(strings.Join(parts, sep))
}

// =============================================================================
// TABLE
// =============================================================================

// renderHeader renders the column header row.
func (m Model) renderHeader() string {
	header := util.PadRight("TIMESTAMP", colTimestamp) +
		util.PadRight("SEVERITY", colSeverity) +
		util.PadRight("EVENT", m.eventWidth()) +
		util.PadRight("USER", colUser) +
		"STATUS"

	return m.theme.LogHeader.Width(m.width).Render(header)
}

// renderRows renders the visible entries, with the expanded detail block
// under its row.
func (m Model) renderRows() string {
	visible := m.engine.Visible()

	if len(visible) == 0 {
		notice := m.engine.Notice()
		if notice == "" && m.engine.Total() > 0 {
			notice = "No events match the active filters."
		} else if notice == "" {
			notice = "The audit trail is empty."
		}
		return m.theme.LogEmptyNotice.Width(m.width).Render(notice)
	}

	var rows []string
	for i := range visible {
		entry := &visible[i]
		rows = append(rows, m.renderRow(entry, i == m.selected))
		if m.engine.Expansion().IsExpanded(entry.ID) {
			rows = append(rows, m.renderDetail(entry))
		}
	}

	return strings.Join(rows, "\n")
}

// renderRow renders one table row.
func (m Model) renderRow(entry *model.LogEntry, selected bool) string {
	severity := m.theme.SeverityStyle(string(entry.Severity)).
		Render(util.PadRight(string(entry.Severity), colSeverity))

	row := util.PadRight(entry.Timestamp, colTimestamp) +
		severity +
		util.PadRight(util.TruncateWidth(entry.Event, m.eventWidth()-1), m.eventWidth()) +
		util.PadRight(util.TruncateWidth(entry.DisplayUser(), colUser-1), colUser) +
		string(entry.Status)

	if selected {
		return m.theme.LogRowSelected.Width(m.width).Render(row)
	}
	return m.theme.LogRow.Width(m.width).Render(row)
}

// renderDetail renders the expanded block for one entry.
func (m Model) renderDetail(entry *model.LogEntry) string {
	label := m.theme.LogDetailLabel
	value := m.theme.LogDetailValue

	wrap := m.width - 24
	if wrap < 20 {
		wrap = 20
	}

	var lines []string
	add := func(name, val string) {
		if val == "" {
			return
		}
		lines = append(lines, label.Render(util.PadRight(name, 18))+value.Render(util.TruncateWidth(val, wrap)))
	}

	add("Original prompt", entry.OriginalPrompt)
	add("Redacted prompt", entry.RedactedPrompt)
	add("AI response", entry.AIResponse)
	if entry.Verdict != "" {
		add("Verdict", string(entry.Verdict))
	}
	if entry.SecurityScore != nil {
		add("Security score", fmt.Sprintf("%.2f", *entry.SecurityScore))
	}
	if entry.LatencyMs != nil {
		add("Latency", fmt.Sprintf("%d ms", *entry.LatencyMs))
	}
	if len(entry.RedactedEntities) > 0 {
		tags := make([]string, len(entry.RedactedEntities))
		for i, e := range entry.RedactedEntities {
			tags[i] = m.theme.RedactionTag.Render(e)
		}
		lines = append(lines, label.Render(util.PadRight("Redacted", 18))+strings.Join(tags, " "))
	}

	if len(lines) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.TextMuted).Render("No additional detail recorded."))
	}

	return m.theme.LogRowExpanded.Width(m.width).Render(strings.Join(lines, "\n"))
}

// eventWidth returns the flexible event column width.
func (m Model) eventWidth() int {
	w := m.width - colTimestamp - colSeverity - colUser - colStatus - 2
	if w < 12 {
		w = 12
	}
	return w
}
