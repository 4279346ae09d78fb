// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// logs.go - Audit trail command handler.
//
// Command: logs
// Short:   Print the gateway audit trail (admin only)
// Aliases: audit
//
// Examples:
//   sentinel logs
//   sentinel logs --severity high
//   sentinel logs --category injection --filter mallory
//   sentinel logs --json --limit 50
//
// Flags:
//   --severity LEVEL    all, high, medium, or low
//   --category NAME     all, injection, pii, or malicious
//   -f, --filter TEXT   Case-insensitive text match
//   --limit N           Show at most N entries
//   --detail            Include prompt/response detail per entry

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/sentinel-tui/internal/auditlog"
	"github.com/jeranaias/sentinel-tui/internal/model"
	"github.com/jeranaias/sentinel-tui/internal/util"
)

// Fixed column widths; the event column gets the remainder.
const (
	logsColTimestamp = 20
	logsColSeverity  = 9
	logsColUser      = 16
)

// HandleLogs handles the "logs" command.
func HandleLogs(args Args) error {
	parser := NewArgParser(args.Rest)

	store := openStore()
	user, err := requireLogin(store)
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		return ErrAdminOnly("viewing the audit trail", user.Role)
	}

	filter, err := parseLogsFilter(parser)
	if err != nil {
		return err
	}

	engine := auditlog.NewEngine(buildClient(args))
	if err := engine.Load(context.Background()); err != nil {
		return NewCommandError("logs", "could not fetch the audit trail", err)
	}
	engine.SetFilter(filter)

	entries := engine.Visible()
	if limit := parser.FlagIntOrDefault("limit", 0); limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if notice := engine.Notice(); notice != "" && len(entries) == 0 {
		fmt.Println(warnStyle.Render(notice))
		return nil
	}
	if len(entries) == 0 {
		if engine.Total() > 0 {
			fmt.Println(mutedStyle.Render("No events match the given filters."))
		} else {
			fmt.Println(mutedStyle.Render("The audit trail is empty."))
		}
		return nil
	}

	printLogsTable(entries, parser.BoolFlag("detail"))

	if !args.Quiet {
		fmt.Println()
		fmt.Println(mutedStyle.Render(fmt.Sprintf("%d of %d events", len(entries), engine.Total())))
	}
	return nil
}

// parseLogsFilter builds the engine filter from the command flags.
func parseLogsFilter(parser *ArgParser) (auditlog.Filter, error) {
	severity := strings.ToLower(parser.FlagOrDefault("severity", auditlog.SeverityAll))
	switch severity {
	case auditlog.SeverityAll, "high", "medium", "low":
	default:
		return auditlog.Filter{}, ErrUsage("logs",
			fmt.Sprintf("unknown severity %q", severity),
			"sentinel logs --severity high")
	}

	category := auditlog.Category(strings.ToLower(parser.FlagOrDefault("category", string(auditlog.CategoryAll))))
	valid := false
	for _, c := range auditlog.Categories() {
		if c == category {
			valid = true
			break
		}
	}
	if !valid {
		return auditlog.Filter{}, ErrUsage("logs",
			fmt.Sprintf("unknown category %q", category),
			"sentinel logs --category injection")
	}

	text := parser.FlagOrDefault("filter", parser.Flag("f"))
	if text == "" {
		text = parser.Flag("search")
	}

	return auditlog.Filter{
		Text:     text,
		Severity: severity,
		Category: category,
	}, nil
}

// printLogsTable prints the entries as an aligned table.
func printLogsTable(entries []model.LogEntry, detail bool) {
	width := TerminalWidth()
	eventWidth := width - logsColTimestamp - logsColSeverity - logsColUser - 14
	if eventWidth < 12 {
		eventWidth = 12
	}

	header := util.PadRight("TIMESTAMP", logsColTimestamp) +
		util.PadRight("SEVERITY", logsColSeverity) +
		util.PadRight("EVENT", eventWidth) +
		util.PadRight("USER", logsColUser) +
		"STATUS"
	fmt.Println(labelStyle.Width(width).Render(header))

	for i := range entries {
		entry := &entries[i]

		severity := severityCellStyle(entry.Severity).
			Render(util.PadRight(string(entry.Severity), logsColSeverity))

		fmt.Println(util.PadRight(entry.Timestamp, logsColTimestamp) +
			severity +
			util.PadRight(util.TruncateWidth(entry.Event, eventWidth-1), eventWidth) +
			util.PadRight(util.TruncateWidth(entry.DisplayUser(), logsColUser-1), logsColUser) +
			string(entry.Status))

		if detail && entry.HasDetail() {
			printLogDetail(entry)
		}
	}
}

// printLogDetail prints the expanded fields under an entry's row.
func printLogDetail(entry *model.LogEntry) {
	add := func(name, val string) {
		if val == "" {
			return
		}
		fmt.Printf("    %s %s\n", labelStyle.Render(name), val)
	}

	add("Original", entry.OriginalPrompt)
	add("Redacted", entry.RedactedPrompt)
	add("Response", entry.AIResponse)
	if entry.Verdict != "" {
		add("Verdict", string(entry.Verdict))
	}
	if entry.SecurityScore != nil {
		add("Score", fmt.Sprintf("%.2f", *entry.SecurityScore))
	}
	if entry.LatencyMs != nil {
		add("Latency", fmt.Sprintf("%d ms", *entry.LatencyMs))
	}
	if len(entry.RedactedEntities) > 0 {
		add("Entities", strings.Join(entry.RedactedEntities, ", "))
	}
}
